package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskTypeDeleteObject  = "storage:delete_object"
	TaskTypeAnalyzeClient = "agent:analyze_client"
)

const (
	QueueDefault = "default"
	// QueueAgent is drained by the upstream analysis process, not by this
	// server.
	QueueAgent = "agent"
)

type DeleteObjectPayload struct {
	Key string `json:"key"`
}

type AnalyzeClientPayload struct {
	ClientID    string    `json:"client_id"`
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

func NewDeleteObjectTask(key string) (*asynq.Task, error) {
	payload, err := json.Marshal(DeleteObjectPayload{Key: key})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeDeleteObject, payload,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(5),
	), nil
}

func NewAnalyzeClientTask(payload AnalyzeClientPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeAnalyzeClient, data,
		asynq.Queue(QueueAgent),
		asynq.Timeout(30*time.Minute),
	), nil
}
