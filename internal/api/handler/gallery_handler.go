package handler

import (
	"strconv"

	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/response"
	"github.com/Kapi0622/Kapi-gallery/internal/service"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	gallerySvc service.GalleryService
}

func NewGalleryHandler(gallerySvc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		gallerySvc: gallerySvc,
	}
}

// ListPhotos 公开画廊分页
func (s *GalleryHandler) ListPhotos(c *gin.Context) {
	var query dto.PhotoListQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	page := s.gallerySvc.ListPage(c.Request.Context(), query.Page, query.PageSize)
	response.Success(c, page)
}

// GetPhoto 详情弹窗数据
func (s *GalleryHandler) GetPhoto(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	photo, err := s.gallerySvc.GetPhoto(c.Request.Context(), photoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photo)
}

// LikePhoto 点赞：存储侧原子自增
func (s *GalleryHandler) LikePhoto(c *gin.Context) {
	photoID, err := strconv.ParseUint(c.Param("photo_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.gallerySvc.LikePhoto(c.Request.Context(), photoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListTags 上传页标签候选面板
func (s *GalleryHandler) ListTags(c *gin.Context) {
	tags, err := s.gallerySvc.AllTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}
