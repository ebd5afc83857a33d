package notify

import (
	"context"
	"strings"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/queue"
)

// Toast 用户侧弹窗通知
type Toast struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	OwnerID     string `json:"owner_id,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

// Notifier 通知出口。Push 不返回错误：通知失败不能影响主流程。
type Notifier interface {
	Push(ctx context.Context, toast Toast)
}

// Center 通知中心。优先入队交给 worker 分发，
// 队列不可用时直接发布到 Redis 通道，两者都不可用时仅记录日志。
type Center struct {
	queueClient *queue.Client
	channel     string
}

// NewCenter 创建通知中心
func NewCenter(queueClient *queue.Client, channel string) *Center {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = "storefront:toasts"
	}
	return &Center{
		queueClient: queueClient,
		channel:     channel,
	}
}

// Channel 返回发布通道名
func (c *Center) Channel() string {
	if c == nil {
		return ""
	}
	return c.channel
}

// Push 发送通知
func (c *Center) Push(ctx context.Context, toast Toast) {
	if c == nil {
		return
	}
	if strings.TrimSpace(toast.Severity) == "" {
		toast.Severity = constants.ToastSeverityError
	}
	logger.Warnw("storefront_toast",
		"title", toast.Title,
		"description", toast.Description,
		"severity", toast.Severity,
		"owner_id", toast.OwnerID,
		"request_id", toast.RequestID,
	)

	if c.queueClient.Enabled() {
		err := c.queueClient.EnqueueToastDispatch(queue.ToastDispatchPayload{
			Title:       toast.Title,
			Description: toast.Description,
			Severity:    toast.Severity,
			OwnerID:     toast.OwnerID,
			RequestID:   toast.RequestID,
		})
		if err == nil {
			return
		}
		logger.Warnw("toast_enqueue_failed", "error", err)
	}

	if err := cache.PublishJSON(ctx, c.channel, toast); err != nil {
		logger.Warnw("toast_publish_failed", "channel", c.channel, "error", err)
	}
}
