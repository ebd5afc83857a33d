package shared

import (
	"errors"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondAppError 按服务层返回的错误响应。
// *response.AppError 携带后端消息与固定客户端错误码，原样透出；
// 其余错误按内部错误处理。
func RespondAppError(c *gin.Context, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		RequestLog(c).Errorw("backend_operation_failed",
			"code", appErr.Code,
			"message", appErr.Message,
		)
		response.Error(c, appErr.Code, appErr.Message)
		return
	}
	RespondError(c, response.CodeBadRequest, err.Error(), nil)
}
