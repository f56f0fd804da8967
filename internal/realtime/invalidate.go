package realtime

import (
	"context"

	"go.uber.org/zap"
)

type Invalidator interface {
	Invalidate(ctx context.Context, table string) error
}

// ForwardInvalidations drops cached queries for every table that changes,
// including writes made by the upstream agent directly in the database.
// It returns when ctx is cancelled.
func ForwardInvalidations(ctx context.Context, hub *Hub, inv Invalidator, logger *zap.Logger) {
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.C:
			if !ok {
				return
			}
			if err := inv.Invalidate(ctx, ev.Table); err != nil {
				logger.Warn("Cache invalidation failed", zap.String("table", ev.Table), zap.Error(err))
			}
		}
	}
}
