package shared

import (
	"strings"

	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextString 从上下文提取非空字符串值，缺失或类型不符时直接响应 401。
func GetContextString(c *gin.Context, key, missingMsg string) (string, bool) {
	value, ok := c.Get(key)
	if !ok {
		response.Unauthorized(c, missingMsg)
		c.Abort()
		return "", false
	}
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		response.Unauthorized(c, missingMsg)
		c.Abort()
		return "", false
	}
	return s, true
}
