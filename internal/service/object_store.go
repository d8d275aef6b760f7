package service

import (
	"context"
	"io"

	"github.com/Kapi0622/Kapi-gallery/internal/pkg/minio"
)

// ObjectStore 对象存储契约：上传、删除、公开访问 URL
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
}

type minioStore struct{}

// NewMinioStore 返回基于 MinIO 的对象存储实现
func NewMinioStore() ObjectStore {
	return &minioStore{}
}

func (s *minioStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := minio.UploadFile(ctx, objectName, reader, size, contentType)
	return err
}

func (s *minioStore) Remove(ctx context.Context, objectName string) error {
	return minio.DeleteFile(ctx, objectName)
}

func (s *minioStore) PublicURL(objectName string) string {
	return minio.GetPublicURL(objectName)
}
