package service

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/model"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/util"
	"github.com/Kapi0622/Kapi-gallery/internal/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type GalleryService interface {
	ListPage(ctx context.Context, page, pageSize int) *dto.PhotoPageDTO
	GetPhoto(ctx context.Context, id uint64) (*dto.PhotoDTO, error)
	LikePhoto(ctx context.Context, id uint64) (*dto.LikeResultDTO, error)
	AllTags(ctx context.Context) ([]string, error)
}

type galleryServiceImpl struct {
	photoRepo repository.PhotoRepo
	store     ObjectStore
}

func NewGalleryService(photoRepo repository.PhotoRepo, store ObjectStore) GalleryService {
	return &galleryServiceImpl{
		photoRepo: photoRepo,
		store:     store,
	}
}

// ListPage 按 (sort_order asc, created_at desc) 返回一页。
// 存储层报错时只记日志并返回空页，画廊页面永远不抛错。
func (s *galleryServiceImpl) ListPage(ctx context.Context, page, pageSize int) *dto.PhotoPageDTO {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > consts.MaxPageSize {
		pageSize = consts.DefaultPageSize
	}

	result := &dto.PhotoPageDTO{
		Items:   []*dto.PhotoDTO{},
		Page:    page,
		HasMore: false,
	}

	photos, err := s.photoRepo.ListPage(ctx, page, pageSize)
	if err != nil {
		log.ErrorContext(ctx, "failed to list photo page", "page", page, "err", err)
		return result
	}

	for _, photo := range photos {
		item, cErr := toPhotoDTO(s.store, photo)
		if cErr != nil {
			log.ErrorContext(ctx, "failed to map photo", "id", photo.ID, "err", cErr)
			continue
		}
		result.Items = append(result.Items, item)
	}

	total, err := s.photoRepo.Count(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to count photos", "err", err)
		return result
	}
	result.HasMore = int64(page*pageSize) < total

	return result
}

func (s *galleryServiceImpl) GetPhoto(ctx context.Context, id uint64) (*dto.PhotoDTO, error) {
	photo, err := s.photoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return toPhotoDTO(s.store, photo)
}

// LikePhoto 委托存储侧原子自增，返回最新计数
func (s *galleryServiceImpl) LikePhoto(ctx context.Context, id uint64) (*dto.LikeResultDTO, error) {
	count, err := s.photoRepo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &dto.LikeResultDTO{ID: id, LikesCount: count}, nil
}

// AllTags 标签候选面板：全量标签列保序去重
func (s *galleryServiceImpl) AllTags(ctx context.Context) ([]string, error) {
	lists, err := s.photoRepo.AllTagLists(ctx)
	if err != nil {
		return nil, err
	}

	raw := make([][]string, 0, len(lists))
	for _, list := range lists {
		raw = append(raw, list)
	}
	return util.MergeTagLists(raw), nil
}

// toPhotoDTO 补默认值并拼公开 URL
func toPhotoDTO(store ObjectStore, photo *model.Photo) (*dto.PhotoDTO, error) {
	item := &dto.PhotoDTO{}
	if err := copier.Copy(item, photo); err != nil {
		return nil, err
	}

	if item.MediaType == "" {
		item.MediaType = consts.MediaTypeImage
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	item.TakenAt = photo.TakenAt.Format(time.RFC3339)
	item.CreatedAt = photo.CreatedAt.Format(time.RFC3339)
	item.PublicURL = store.PublicURL(photo.StoragePath)

	return item, nil
}
