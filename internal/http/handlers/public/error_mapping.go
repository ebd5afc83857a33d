package public

import (
	handlershared "github.com/storefront-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// respondServiceError 统一透出服务层错误
func respondServiceError(c *gin.Context, err error) {
	handlershared.RespondAppError(c, err)
}
