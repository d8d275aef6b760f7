package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/redis"

	"github.com/goccy/go-json"
)

// BlobTracker 登记多步写入过程中的中间态对象，供清理任务兜底。
// 上传先登记 pending，落库成功后注销；删除失败的旧对象登记 retired 由任务重试。
type BlobTracker interface {
	MarkPending(ctx context.Context, path string)
	MarkRetired(ctx context.Context, path string)
	Clear(ctx context.Context, path string)
}

type redisBlobTracker struct{}

func NewRedisBlobTracker() BlobTracker {
	return &redisBlobTracker{}
}

func (s *redisBlobTracker) mark(ctx context.Context, path, state string) {
	entry := dto.BlobSweepEntry{
		State:     state,
		CreatedAt: time.Now().Unix(),
	}
	b, _ := json.Marshal(entry)
	if err := redis.HSet(ctx, consts.BlobSweepKey, path, string(b)); err != nil {
		// 登记失败只记日志，不阻塞主流程
		log.ErrorContext(ctx, "failed to register blob for sweep", "path", path, "state", state, "err", err)
	}
}

func (s *redisBlobTracker) MarkPending(ctx context.Context, path string) {
	s.mark(ctx, path, dto.BlobStatePending)
}

func (s *redisBlobTracker) MarkRetired(ctx context.Context, path string) {
	s.mark(ctx, path, dto.BlobStateRetired)
}

func (s *redisBlobTracker) Clear(ctx context.Context, path string) {
	if err := redis.HDel(ctx, consts.BlobSweepKey, path); err != nil {
		log.ErrorContext(ctx, "failed to clear blob sweep entry", "path", path, "err", err)
	}
}
