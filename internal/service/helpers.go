package service

import (
	"context"
	"strings"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueryCache is the subset of the Redis query cache the services rely on.
type QueryCache interface {
	Lookup(ctx context.Context, table, key string, dest any) (hit bool, entry string, err error)
	StoreAt(ctx context.Context, entry string, value any) error
	Invalidate(ctx context.Context, table string) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// cachedList serves a table read from the cache and fills it on a miss.
// Cache failures are logged and the database answers instead. The result is
// stored under the entry resolved before loading, so an invalidation that
// lands mid-load leaves it unreachable.
func cachedList[T any](ctx context.Context, cache QueryCache, logger *zap.Logger, table, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var entry string
	if cache != nil {
		var items []T
		hit, resolved, err := cache.Lookup(ctx, table, key, &items)
		if err != nil {
			logger.Warn("Query cache read failed", zap.String("table", table), zap.Error(err))
		} else if hit {
			return items, nil
		}
		entry = resolved
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if entry != "" {
		if err := cache.StoreAt(ctx, entry, items); err != nil {
			logger.Warn("Query cache write failed", zap.String("table", table), zap.Error(err))
		}
	}
	return items, nil
}

func invalidate(ctx context.Context, cache QueryCache, logger *zap.Logger, tables ...string) {
	if cache == nil {
		return
	}
	for _, table := range tables {
		if err := cache.Invalidate(ctx, table); err != nil {
			logger.Warn("Query cache invalidation failed", zap.String("table", table), zap.Error(err))
		}
	}
}

// optionalID turns a blank select value into NULL.
func optionalID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
