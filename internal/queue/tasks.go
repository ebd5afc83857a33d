package queue

import (
	"encoding/json"

	"github.com/storefront-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskToastDispatch 前端通知分发任务
	TaskToastDispatch = constants.TaskToastDispatch
)

// ToastDispatchPayload 前端通知任务载荷
type ToastDispatchPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	OwnerID     string `json:"owner_id,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

// NewToastDispatchTask 创建前端通知分发任务
func NewToastDispatchTask(payload ToastDispatchPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskToastDispatch, body), nil
}
