package cache

import (
	"context"
	"fmt"
	"time"

	"alertnet_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// A view by the same user counts again after a day.
const viewDedupTTL = 24 * time.Hour

// ViewTracker deduplicates alert views so repeated opens by the same
// viewer don't inflate the counter.
type ViewTracker interface {
	FirstView(ctx context.Context, alertID, viewerID string) bool
}

type RedisViewTracker struct {
	client *redis.Client
}

func NewRedisViewTracker(client *redis.Client) *RedisViewTracker {
	return &RedisViewTracker{client: client}
}

func (t *RedisViewTracker) FirstView(ctx context.Context, alertID, viewerID string) bool {
	key := fmt.Sprintf("alert:view:%s:%s", alertID, viewerID)
	ok, err := t.client.SetNX(ctx, key, 1, viewDedupTTL).Result()
	if err != nil {
		// Counting a duplicate view beats dropping a real one.
		logger.Warn("view tracker unavailable, counting view", "error", err)
		return true
	}
	return ok
}

// NoopViewTracker counts every view. Used when redis is not configured.
type NoopViewTracker struct{}

func (NoopViewTracker) FirstView(context.Context, string, string) bool { return true }
