package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Kapi0622/Kapi-gallery/internal/model"
	"github.com/Kapi0622/Kapi-gallery/internal/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGalleryService_ListPage(t *testing.T) {
	ctx := context.Background()
	takenAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success with defaults and public url", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		photos := []*model.Photo{
			{
				ID:          1,
				StoragePath: "2025/06/01/a.jpg",
				MediaType:   "",
				Tags:        nil,
				TakenAt:     takenAt,
				CreatedAt:   takenAt,
			},
			{
				ID:          2,
				StoragePath: "2025/06/01/b.mp4",
				MediaType:   "video",
				Tags:        model.TagList{"旅行"},
				TakenAt:     takenAt,
				CreatedAt:   takenAt,
				LikesCount:  3,
			},
		}

		mockRepo.On("ListPage", ctx, 1, 12).Return(photos, nil)
		mockRepo.On("Count", ctx).Return(int64(30), nil)
		mockStore.On("PublicURL", "2025/06/01/a.jpg").Return("http://cdn.local/kapi-photos/2025/06/01/a.jpg")
		mockStore.On("PublicURL", "2025/06/01/b.mp4").Return("http://cdn.local/kapi-photos/2025/06/01/b.mp4")

		svc := service.NewGalleryService(mockRepo, mockStore)
		page := svc.ListPage(ctx, 1, 12)

		require.Len(t, page.Items, 2)
		require.Equal(t, 1, page.Page)
		require.True(t, page.HasMore)

		first := page.Items[0]
		require.Equal(t, uint64(1), first.ID)
		require.Equal(t, "image", first.MediaType)
		require.NotNil(t, first.Tags)
		require.Empty(t, first.Tags)
		require.Equal(t, "http://cdn.local/kapi-photos/2025/06/01/a.jpg", first.PublicURL)
		require.Equal(t, takenAt.Format(time.RFC3339), first.TakenAt)

		second := page.Items[1]
		require.Equal(t, "video", second.MediaType)
		require.Equal(t, []string{"旅行"}, second.Tags)
		require.Equal(t, 3, second.LikesCount)
	})

	t.Run("last page has no more", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		mockRepo.On("ListPage", ctx, 3, 12).Return([]*model.Photo{
			{ID: 25, StoragePath: "x.jpg", TakenAt: takenAt, CreatedAt: takenAt},
		}, nil)
		mockRepo.On("Count", ctx).Return(int64(25), nil)
		mockStore.On("PublicURL", "x.jpg").Return("http://cdn.local/kapi-photos/x.jpg")

		svc := service.NewGalleryService(mockRepo, mockStore)
		page := svc.ListPage(ctx, 3, 12)

		require.Len(t, page.Items, 1)
		require.False(t, page.HasMore)
	})

	t.Run("repo error returns empty page instead of failing", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		mockRepo.On("ListPage", ctx, 1, 12).Return(nil, errors.New("connection refused"))

		svc := service.NewGalleryService(mockRepo, mockStore)
		page := svc.ListPage(ctx, 1, 12)

		require.NotNil(t, page)
		require.Empty(t, page.Items)
		require.False(t, page.HasMore)
		mockRepo.AssertNotCalled(t, "Count", mock.Anything)
	})

	t.Run("invalid paging falls back to defaults", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		mockRepo.On("ListPage", ctx, 1, 12).Return([]*model.Photo{}, nil)
		mockRepo.On("Count", ctx).Return(int64(0), nil)

		svc := service.NewGalleryService(mockRepo, mockStore)
		page := svc.ListPage(ctx, -3, 9999)

		require.Equal(t, 1, page.Page)
		require.Empty(t, page.Items)
		mockRepo.AssertExpectations(t)
	})
}

func TestGalleryService_GetPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to domain error", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		mockRepo.On("GetByID", ctx, uint64(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := service.NewGalleryService(mockRepo, mockStore)
		item, err := svc.GetPhoto(ctx, 99)

		require.Nil(t, item)
		require.ErrorIs(t, err, service.ErrPhotoNotFound)
	})

	t.Run("found", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		title := "海边"
		mockRepo.On("GetByID", ctx, uint64(7)).Return(&model.Photo{
			ID:          7,
			StoragePath: "p.jpg",
			Title:       &title,
			TakenAt:     time.Now(),
			CreatedAt:   time.Now(),
		}, nil)
		mockStore.On("PublicURL", "p.jpg").Return("http://cdn.local/kapi-photos/p.jpg")

		svc := service.NewGalleryService(mockRepo, mockStore)
		item, err := svc.GetPhoto(ctx, 7)

		require.NoError(t, err)
		require.Equal(t, uint64(7), item.ID)
		require.NotNil(t, item.Title)
		require.Equal(t, "海边", *item.Title)
	})
}

func TestGalleryService_LikePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("returns latest count", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		mockRepo.On("IncrementLikes", ctx, uint64(5)).Return(42, nil)

		svc := service.NewGalleryService(mockRepo, mockStore)
		result, err := svc.LikePhoto(ctx, 5)

		require.NoError(t, err)
		require.Equal(t, uint64(5), result.ID)
		require.Equal(t, 42, result.LikesCount)
	})

	t.Run("missing photo", func(t *testing.T) {
		mockRepo := NewMockPhotoRepo()
		mockStore := NewMockObjectStore()

		mockRepo.On("IncrementLikes", ctx, uint64(404)).Return(0, gorm.ErrRecordNotFound)

		svc := service.NewGalleryService(mockRepo, mockStore)
		_, err := svc.LikePhoto(ctx, 404)

		require.ErrorIs(t, err, service.ErrPhotoNotFound)
	})
}

func TestGalleryService_AllTags(t *testing.T) {
	ctx := context.Background()

	mockRepo := NewMockPhotoRepo()
	mockStore := NewMockObjectStore()

	mockRepo.On("AllTagLists", ctx).Return([]model.TagList{
		{"旅行", "海边"},
		nil,
		{"海边", "夜景"},
	}, nil)

	svc := service.NewGalleryService(mockRepo, mockStore)
	tags, err := svc.AllTags(ctx)

	require.NoError(t, err)
	require.Equal(t, []string{"旅行", "海边", "夜景"}, tags)
}
