package wire

import (
	"github.com/Kapi0622/Kapi-gallery/internal/api"
	"github.com/Kapi0622/Kapi-gallery/internal/api/handler"
	"github.com/Kapi0622/Kapi-gallery/internal/job"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/cron"
	"github.com/Kapi0622/Kapi-gallery/internal/repository"
	"github.com/Kapi0622/Kapi-gallery/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	photoRepo := repository.NewPhotoRepository(db)

	store := service.NewMinioStore()
	tracker := service.NewRedisBlobTracker()

	galleryService := service.NewGalleryService(photoRepo, store)
	adminService := service.NewPhotoAdminService(photoRepo, store, tracker, galleryService)
	authService := service.NewAuthService()

	handlers := &api.HandlersGroup{
		GalleryHandler:    handler.NewGalleryHandler(galleryService),
		AdminPhotoHandler: handler.NewAdminPhotoHandler(adminService),
		AuthHandler:       handler.NewAuthHandler(authService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewBlobSweepJob())

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
