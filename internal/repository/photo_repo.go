package repository

import (
	"context"

	"github.com/Kapi0622/Kapi-gallery/internal/model"

	"gorm.io/gorm"
)

// SortOrderUpdate 单条排序赋值
type SortOrderUpdate struct {
	ID        uint64
	SortOrder int
}

type PhotoRepo interface {
	ListPage(ctx context.Context, page, pageSize int) ([]*model.Photo, error)
	ListAll(ctx context.Context) ([]*model.Photo, error)
	GetByID(ctx context.Context, id uint64) (*model.Photo, error)
	Create(ctx context.Context, photo *model.Photo) error
	Update(ctx context.Context, photo *model.Photo) error
	Delete(ctx context.Context, id uint64) error
	UpdateSortOrders(ctx context.Context, updates []SortOrderUpdate) error
	IncrementLikes(ctx context.Context, id uint64) (int, error)
	AllTagLists(ctx context.Context) ([]model.TagList, error)
	Count(ctx context.Context) (int64, error)
}

type photoRepoImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepo {
	return &photoRepoImpl{
		db: db,
	}
}

// sortOrder 为主排序键，相同时按创建时间倒序
func (s *photoRepoImpl) ordered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("created_at DESC")
}

func (s *photoRepoImpl) ListPage(ctx context.Context, page, pageSize int) ([]*model.Photo, error) {
	var photos []*model.Photo
	offset := (page - 1) * pageSize
	err := s.ordered(s.db.WithContext(ctx)).Offset(offset).Limit(pageSize).Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *photoRepoImpl) ListAll(ctx context.Context) ([]*model.Photo, error) {
	var photos []*model.Photo
	err := s.ordered(s.db.WithContext(ctx)).Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *photoRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Photo, error) {
	var photo model.Photo
	err := s.db.WithContext(ctx).First(&photo, id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *photoRepoImpl) Create(ctx context.Context, photo *model.Photo) error {
	return s.db.WithContext(ctx).Create(photo).Error
}

func (s *photoRepoImpl) Update(ctx context.Context, photo *model.Photo) error {
	return s.db.WithContext(ctx).Save(photo).Error
}

func (s *photoRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Photo{}, id).Error
}

// UpdateSortOrders 整批排序重写，单事务保证不会出现半套顺序
func (s *photoRepoImpl) UpdateSortOrders(ctx context.Context, updates []SortOrderUpdate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			err := tx.Model(&model.Photo{}).Where("id = ?", u.ID).Update("sort_order", u.SortOrder).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// IncrementLikes 存储侧原子自增，并发点赞不丢更新
func (s *photoRepoImpl) IncrementLikes(ctx context.Context, id uint64) (int, error) {
	res := s.db.WithContext(ctx).Model(&model.Photo{}).Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var photo model.Photo
	if err := s.db.WithContext(ctx).Select("likes_count").First(&photo, id).Error; err != nil {
		return 0, err
	}
	return photo.LikesCount, nil
}

func (s *photoRepoImpl) AllTagLists(ctx context.Context) ([]model.TagList, error) {
	var rows []model.Photo
	err := s.db.WithContext(ctx).Select("tags").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	lists := make([]model.TagList, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, row.Tags)
	}
	return lists, nil
}

func (s *photoRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Photo{}).Count(&count).Error
	return count, err
}
