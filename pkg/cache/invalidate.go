package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Invalidate xóa keys và chỉ log warning khi lỗi.
// Cache lỗi không được làm fail request. c có thể nil (Redis disabled).
func Invalidate(ctx context.Context, c Cache, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}
