package service

import (
	"context"
	"errors"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/notify"
)

// 参数校验错误，由调用方直接转换为 400 响应，不触发前端通知。
var (
	ErrOwnerIDRequired   = errors.New("owner id is required")
	ErrCategoryIDInvalid = errors.New("category id is invalid")
	ErrProductIDInvalid  = errors.New("product id is invalid")
	ErrCartIDRequired    = errors.New("cart id is required")
	ErrCartItemInvalid   = errors.New("cart item is invalid")
)

// backendFailure 统一的后端失败出口：推送用户侧通知，
// 并返回携带后端原始消息与固定客户端错误码的错误。
func backendFailure(notifier notify.Notifier, title, ownerID string, err error) error {
	if notifier != nil {
		notifier.Push(context.Background(), notify.Toast{
			Title:       title,
			Description: err.Error(),
			Severity:    constants.ToastSeverityError,
			OwnerID:     ownerID,
		})
	}
	return response.WrapError(response.CodeBadRequest, err.Error(), err)
}
