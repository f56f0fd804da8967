package queue

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ObjectDeleter removes objects from the bucket.
type ObjectDeleter interface {
	Delete(ctx context.Context, key string) error
}

type Queue struct {
	storage ObjectDeleter
	logger  *zap.Logger
}

func NewQueue(storage ObjectDeleter, logger *zap.Logger) *Queue {
	return &Queue{
		storage: storage,
		logger:  logger,
	}
}

// Register wires the task types this server processes. Agent tasks are left
// for the upstream worker.
func (j *Queue) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypeDeleteObject, j.HandleDeleteObjectTask)
}
