package job

import (
	"context"
	log "log/slog"
	"time"

	"github.com/Kapi0622/Kapi-gallery/internal/api/config"
	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/minio"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/redis"

	"github.com/goccy/go-json"
)

// BlobSweepJob 对账任务：回收上传后未落库的孤儿对象，重试删除失败的旧对象
type BlobSweepJob struct{}

func NewBlobSweepJob() *BlobSweepJob {
	return &BlobSweepJob{}
}

func (s *BlobSweepJob) Run() {
	ctx := context.Background()
	log.Info("start blob sweep job")

	entries, err := redis.HGetAll(ctx, consts.BlobSweepKey)
	if err != nil {
		log.Error("failed to get blob sweep hash", "err", err)
		return
	}

	now := time.Now().Unix()
	pendingTTL := int64(config.Cfg.Sweep.PendingHours) * 3600
	count := 0

	for path, val := range entries {
		var entry dto.BlobSweepEntry
		if err := json.Unmarshal([]byte(val), &entry); err != nil {
			log.Warn("invalid blob sweep entry format", "path", path)
			continue
		}

		// pending 留出完整的上传+落库窗口，避免误删进行中的上传
		if entry.State == dto.BlobStatePending && now-entry.CreatedAt <= pendingTTL {
			continue
		}

		if err = minio.DeleteFile(ctx, path); err != nil {
			log.Error("failed to delete blob from minio", "path", path, "state", entry.State, "err", err)
			continue
		}

		if err = redis.HDel(ctx, consts.BlobSweepKey, path); err != nil {
			log.Error("failed to remove blob sweep entry", "path", path, "err", err)
		}

		count++
		log.Info("swept unreferenced blob", "path", path, "state", entry.State)
	}

	if count > 0 {
		log.Info("blob sweep job finished", "swept_count", count)
	}
}
