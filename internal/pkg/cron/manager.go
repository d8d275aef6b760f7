package cron

import (
	log "log/slog"

	"github.com/Kapi0622/Kapi-gallery/internal/api/config"
	"github.com/Kapi0622/Kapi-gallery/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	blobSweepJob *job.BlobSweepJob
}

func NewCronManager(blobSweepJob *job.BlobSweepJob) *Manager {
	return &Manager{
		engine:       cron.New(),
		blobSweepJob: blobSweepJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(config.Cfg.Sweep.Schedule, s.blobSweepJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
