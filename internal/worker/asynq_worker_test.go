package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandleToastDispatchInvalidPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{Config: &config.Config{}})
	task := asynq.NewTask(queue.TaskToastDispatch, []byte("{not json"))
	if err := consumer.handleToastDispatch(context.Background(), task); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestHandleToastDispatchWithoutRedisIsNoop(t *testing.T) {
	consumer := NewConsumer(&provider.Container{Config: &config.Config{}})
	payload, err := json.Marshal(queue.ToastDispatchPayload{
		Title:       "Error fetching cart",
		Description: "connection refused",
		Severity:    "error",
		OwnerID:     "owner-1",
	})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	task := asynq.NewTask(queue.TaskToastDispatch, payload)
	if err := consumer.handleToastDispatch(context.Background(), task); err != nil {
		t.Fatalf("dispatch without redis should be a no-op: %v", err)
	}
}

func TestRegisterNilSafe(t *testing.T) {
	var consumer *Consumer
	consumer.Register(nil)
	NewConsumer(nil).Register(nil)
}
