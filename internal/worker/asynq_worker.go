package worker

import (
	"context"
	"encoding/json"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/notify"
	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskToastDispatch, c.handleToastDispatch)
}

// handleToastDispatch 将入队的前端通知发布到 Redis 通道，
// 供订阅了该通道的 UI 即时展示。
func (c *Consumer) handleToastDispatch(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_toast_dispatch_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ToastDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_toast_dispatch_unmarshal_failed", "error", err)
		return err
	}

	channel := "storefront:toasts"
	if c.Config != nil && c.Config.Notify.Channel != "" {
		channel = c.Config.Notify.Channel
	}
	toast := notify.Toast{
		Title:       payload.Title,
		Description: payload.Description,
		Severity:    payload.Severity,
		OwnerID:     payload.OwnerID,
		RequestID:   payload.RequestID,
	}
	if err := cache.PublishJSON(ctx, channel, toast); err != nil {
		logger.Warnw("worker_toast_dispatch_publish_failed", "channel", channel, "error", err)
		return err
	}
	logger.Debugw("worker_toast_dispatched",
		"title", payload.Title,
		"severity", payload.Severity,
		"owner_id", payload.OwnerID,
	)
	return nil
}
