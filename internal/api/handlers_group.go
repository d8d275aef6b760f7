package api

import "github.com/Kapi0622/Kapi-gallery/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	GalleryHandler    *handler.GalleryHandler
	AdminPhotoHandler *handler.AdminPhotoHandler
	AuthHandler       *handler.AuthHandler
}
