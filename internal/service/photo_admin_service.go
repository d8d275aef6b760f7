package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/model"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/util"
	"github.com/Kapi0622/Kapi-gallery/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadPayload 已打开的上传文件
type UploadPayload struct {
	Reader   io.ReadSeeker
	Size     int64
	Filename string
}

type PhotoAdminService interface {
	ListAll(ctx context.Context) ([]*dto.PhotoDTO, error)
	Upload(ctx context.Context, form *dto.PhotoFormDTO, file *UploadPayload) (*dto.PhotoDTO, error)
	Update(ctx context.Context, id uint64, form *dto.PhotoFormDTO, file *UploadPayload) (*dto.PhotoDTO, error)
	Delete(ctx context.Context, id uint64) error
	Reorder(ctx context.Context, ids []uint64) error
}

type photoAdminServiceImpl struct {
	photoRepo repository.PhotoRepo
	store     ObjectStore
	tracker   BlobTracker
	gallery   GalleryService
}

func NewPhotoAdminService(photoRepo repository.PhotoRepo, store ObjectStore, tracker BlobTracker, gallery GalleryService) PhotoAdminService {
	return &photoAdminServiceImpl{
		photoRepo: photoRepo,
		store:     store,
		tracker:   tracker,
		gallery:   gallery,
	}
}

func (s *photoAdminServiceImpl) ListAll(ctx context.Context) ([]*dto.PhotoDTO, error) {
	photos, err := s.photoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PhotoDTO, 0, len(photos))
	for _, photo := range photos {
		item, cErr := toPhotoDTO(s.store, photo)
		if cErr != nil {
			log.ErrorContext(ctx, "failed to map photo", "id", photo.ID, "err", cErr)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// Upload 先登记再传对象，落库成功后注销登记；中途失败的对象交清理任务回收
func (s *photoAdminServiceImpl) Upload(ctx context.Context, form *dto.PhotoFormDTO, file *UploadPayload) (*dto.PhotoDTO, error) {
	if file == nil || file.Reader == nil {
		return nil, ErrFileRequired
	}

	contentType, err := util.GetSafeContentType(file.Reader)
	if err != nil {
		return nil, ErrParamInvalid
	}

	mediaType, err := resolveMediaType(contentType, form.MediaType)
	if err != nil {
		return nil, err
	}

	width, height := form.Width, form.Height
	if mediaType == consts.MediaTypeImage {
		if w, h, dErr := util.GetImageDimensions(file.Reader); dErr == nil {
			width, height = w, h
		} else {
			log.WarnContext(ctx, "failed to decode image dimensions", "filename", file.Filename, "err", dErr)
		}
	}

	displayAt := parseTakenAt(form.TakenAt)
	objectName := buildObjectName(file.Filename)

	s.tracker.MarkPending(ctx, objectName)

	if err = s.store.Upload(ctx, objectName, file.Reader, file.Size, contentType); err != nil {
		log.ErrorContext(ctx, "object upload failed", "path", objectName, "err", err)
		s.tracker.Clear(ctx, objectName)
		return nil, ErrStorageUpload
	}

	photo := &model.Photo{
		StoragePath:  objectName,
		Width:        width,
		Height:       height,
		Title:        optional(form.Title),
		LocationNote: optional(form.LocationNote),
		Tags:         util.ParseTagInput(form.Tags),
		MediaType:    mediaType,
		TakenAt:      displayAt,
		CreatedAt:    displayAt,
	}

	if err = s.photoRepo.Create(ctx, photo); err != nil {
		// 对象已在桶里，保留 pending 登记，由清理任务回收
		log.ErrorContext(ctx, "photo insert failed after upload", "path", objectName, "err", err)
		return nil, UnExpectedError
	}

	s.tracker.Clear(ctx, objectName)
	return s.gallery.GetPhoto(ctx, photo.ID)
}

// Update 换图时先传新对象再改指向，旧对象最后移除；移除失败登记 retired
func (s *photoAdminServiceImpl) Update(ctx context.Context, id uint64, form *dto.PhotoFormDTO, file *UploadPayload) (*dto.PhotoDTO, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	oldPath := ""
	if file != nil && file.Reader != nil {
		contentType, cErr := util.GetSafeContentType(file.Reader)
		if cErr != nil {
			return nil, ErrParamInvalid
		}

		mediaType, mErr := resolveMediaType(contentType, form.MediaType)
		if mErr != nil {
			return nil, mErr
		}

		if mediaType == consts.MediaTypeImage {
			if w, h, dErr := util.GetImageDimensions(file.Reader); dErr == nil {
				photo.Width, photo.Height = w, h
			}
		} else if form.Width > 0 {
			photo.Width, photo.Height = form.Width, form.Height
		}

		objectName := buildObjectName(file.Filename)
		s.tracker.MarkPending(ctx, objectName)

		if err = s.store.Upload(ctx, objectName, file.Reader, file.Size, contentType); err != nil {
			log.ErrorContext(ctx, "object upload failed", "path", objectName, "err", err)
			s.tracker.Clear(ctx, objectName)
			return nil, ErrStorageUpload
		}

		oldPath = photo.StoragePath
		photo.StoragePath = objectName
		photo.MediaType = mediaType
	}

	photo.Title = optional(form.Title)
	photo.LocationNote = optional(form.LocationNote)
	photo.Tags = util.ParseTagInput(form.Tags)
	if form.TakenAt != "" {
		displayAt := parseTakenAt(form.TakenAt)
		photo.TakenAt = displayAt
		// 展示时间兼做排序键
		photo.CreatedAt = displayAt
	}

	if err = s.photoRepo.Update(ctx, photo); err != nil {
		log.ErrorContext(ctx, "photo update failed", "id", id, "err", err)
		return nil, UnExpectedError
	}

	s.tracker.Clear(ctx, photo.StoragePath)

	if oldPath != "" {
		if rErr := s.store.Remove(ctx, oldPath); rErr != nil {
			log.WarnContext(ctx, "failed to remove replaced object, queued for sweep", "path", oldPath, "err", rErr)
			s.tracker.MarkRetired(ctx, oldPath)
		}
	}

	return s.gallery.GetPhoto(ctx, photo.ID)
}

// Delete 先删记录再删对象：列表立即不可见，对象删除失败交清理任务重试
func (s *photoAdminServiceImpl) Delete(ctx context.Context, id uint64) error {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	if err = s.photoRepo.Delete(ctx, id); err != nil {
		log.ErrorContext(ctx, "photo delete failed", "id", id, "err", err)
		return UnExpectedError
	}

	if err = s.store.Remove(ctx, photo.StoragePath); err != nil {
		log.WarnContext(ctx, "failed to remove object, queued for sweep", "path", photo.StoragePath, "err", err)
		s.tracker.MarkRetired(ctx, photo.StoragePath)
	}

	return nil
}

// Reorder sort_order = 列表下标，单事务整批写入
func (s *photoAdminServiceImpl) Reorder(ctx context.Context, ids []uint64) error {
	seen := make(map[uint64]struct{}, len(ids))
	updates := make([]repository.SortOrderUpdate, 0, len(ids))
	for i, id := range ids {
		if _, dup := seen[id]; dup {
			return ErrReorderMismatch
		}
		seen[id] = struct{}{}
		updates = append(updates, repository.SortOrderUpdate{ID: id, SortOrder: i})
	}

	if err := s.photoRepo.UpdateSortOrders(ctx, updates); err != nil {
		log.ErrorContext(ctx, "bulk reorder failed, nothing saved", "err", err)
		return UnExpectedError
	}
	return nil
}

// buildObjectName 时间前缀 + 随机后缀 + 原始扩展名
func buildObjectName(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s%d-%s%s",
		time.Now().Format("2006/01/02/"),
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		ext,
	)
}

func resolveMediaType(contentType, requested string) (string, error) {
	switch {
	case strings.HasPrefix(contentType, consts.MimePrefixImage):
		return consts.MediaTypeImage, nil
	case strings.HasPrefix(contentType, consts.MimePrefixVideo):
		return consts.MediaTypeVideo, nil
	case requested == consts.MediaTypeVideo:
		// 部分容器格式嗅探不出 video/*，以表单声明为准
		return consts.MediaTypeVideo, nil
	default:
		return "", ErrFileNotSupported
	}
}

// parseTakenAt 解析表单时间，空值或格式错误回退为当前时间
func parseTakenAt(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	if t, err := time.ParseInLocation(consts.TakenAtLayout, raw, time.Local); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Now()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
