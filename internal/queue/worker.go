package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func (j *Queue) HandleDeleteObjectTask(ctx context.Context, task *asynq.Task) error {
	var payload DeleteObjectPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decoding %s payload: %v: %w", task.Type(), err, asynq.SkipRetry)
	}
	if payload.Key == "" {
		return fmt.Errorf("empty object key: %w", asynq.SkipRetry)
	}

	if err := j.storage.Delete(ctx, payload.Key); err != nil {
		j.logger.Warn("Deleting stored object failed", zap.String("key", payload.Key), zap.Error(err))
		return err
	}

	j.logger.Info("Stored object deleted", zap.String("key", payload.Key))
	return nil
}
