package handler

import (
	"mime/multipart"
	"strconv"

	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/response"
	"github.com/Kapi0622/Kapi-gallery/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminPhotoHandler struct {
	adminSvc service.PhotoAdminService
}

func NewAdminPhotoHandler(adminSvc service.PhotoAdminService) *AdminPhotoHandler {
	return &AdminPhotoHandler{
		adminSvc: adminSvc,
	}
}

// ListPhotos 管理端全量列表（排序视图）
func (s *AdminPhotoHandler) ListPhotos(c *gin.Context) {
	photos, err := s.adminSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photos)
}

// UploadPhoto 新建：multipart 表单 + 文件
func (s *AdminPhotoHandler) UploadPhoto(c *gin.Context) {
	var form dto.PhotoFormDTO
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrFileRequired)
		return
	}

	payload, closeFn, err := openUpload(fileHeader)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer closeFn()

	photo, err := s.adminSvc.Upload(c.Request.Context(), &form, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photo)
}

// UpdatePhoto 编辑：文件可选，不传则仅更新元数据
func (s *AdminPhotoHandler) UpdatePhoto(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var form dto.PhotoFormDTO
	if err = c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	var payload *service.UploadPayload
	if fileHeader, fErr := c.FormFile("file"); fErr == nil {
		p, closeFn, oErr := openUpload(fileHeader)
		if oErr != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		defer closeFn()
		payload = p
	}

	photo, err := s.adminSvc.Update(c.Request.Context(), photoID, &form, payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photo)
}

// DeletePhoto 删除记录与对象
func (s *AdminPhotoHandler) DeletePhoto(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.adminSvc.Delete(c.Request.Context(), photoID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ReorderPhotos 按给定 id 顺序整批重写 sort_order
func (s *AdminPhotoHandler) ReorderPhotos(c *gin.Context) {
	var req dto.ReorderDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.adminSvc.Reorder(c.Request.Context(), req.IDs); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func openUpload(fileHeader *multipart.FileHeader) (*service.UploadPayload, func(), error) {
	reader, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	payload := &service.UploadPayload{
		Reader:   reader,
		Size:     fileHeader.Size,
		Filename: fileHeader.Filename,
	}
	return payload, func() { _ = reader.Close() }, nil
}
