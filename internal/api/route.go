package api

import (
	"net/http"

	"github.com/Kapi0622/Kapi-gallery/internal/api/middleware"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 无需登录即可访问的公开画廊接口
		photoGroup := apiGroup.Group("/photos")
		{
			photoGroup.GET("", group.GalleryHandler.ListPhotos)
			photoGroup.GET("/:photo_id", group.GalleryHandler.GetPhoto)
			photoGroup.POST("/:photo_id/like", group.GalleryHandler.LikePhoto)
		}

		apiGroup.GET("/tags", group.GalleryHandler.ListTags)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/logout", group.AuthHandler.Logout)
			authGroup.GET("/session", group.AuthHandler.Session)
		}
	}

	// /admin 前缀统一走路由守卫
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware(middleware.RedisRevocationChecker))
	{
		adminAPIGroup := adminGroup.Group("/api")
		{
			adminAPIGroup.GET("/photos", group.AdminPhotoHandler.ListPhotos)
			adminAPIGroup.POST("/photos", group.AdminPhotoHandler.UploadPhoto)
			adminAPIGroup.PUT("/photos/order", group.AdminPhotoHandler.ReorderPhotos)
			adminAPIGroup.PUT("/photos/:photo_id", group.AdminPhotoHandler.UpdatePhoto)
			adminAPIGroup.DELETE("/photos/:photo_id", group.AdminPhotoHandler.DeletePhoto)
		}
	}

	return r
}
