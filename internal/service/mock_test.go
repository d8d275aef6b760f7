package service_test

import (
	"context"
	"io"

	"github.com/Kapi0622/Kapi-gallery/internal/model"
	"github.com/Kapi0622/Kapi-gallery/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockPhotoRepo is a mock implementation of repository.PhotoRepo
type MockPhotoRepo struct {
	mock.Mock
}

func NewMockPhotoRepo() *MockPhotoRepo {
	return &MockPhotoRepo{}
}

func (m *MockPhotoRepo) ListPage(ctx context.Context, page, pageSize int) ([]*model.Photo, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Photo), args.Error(1)
}

func (m *MockPhotoRepo) ListAll(ctx context.Context) ([]*model.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Photo), args.Error(1)
}

func (m *MockPhotoRepo) GetByID(ctx context.Context, id uint64) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *MockPhotoRepo) Create(ctx context.Context, photo *model.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepo) Update(ctx context.Context, photo *model.Photo) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *MockPhotoRepo) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPhotoRepo) UpdateSortOrders(ctx context.Context, updates []repository.SortOrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockPhotoRepo) IncrementLikes(ctx context.Context, id uint64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockPhotoRepo) AllTagLists(ctx context.Context) ([]model.TagList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TagList), args.Error(1)
}

func (m *MockPhotoRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockObjectStore is a mock implementation of service.ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{}
}

func (m *MockObjectStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) Remove(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockObjectStore) PublicURL(objectName string) string {
	args := m.Called(objectName)
	return args.String(0)
}

// MockBlobTracker is a mock implementation of service.BlobTracker
type MockBlobTracker struct {
	mock.Mock
}

func NewMockBlobTracker() *MockBlobTracker {
	return &MockBlobTracker{}
}

func (m *MockBlobTracker) MarkPending(ctx context.Context, path string) {
	m.Called(ctx, path)
}

func (m *MockBlobTracker) MarkRetired(ctx context.Context, path string) {
	m.Called(ctx, path)
}

func (m *MockBlobTracker) Clear(ctx context.Context, path string) {
	m.Called(ctx, path)
}
