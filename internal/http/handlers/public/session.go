package public

import (
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreateSessionRequest 会话签发请求。owner_id 可选，
// 传入已有会话标识可在令牌过期后续期。
type CreateSessionRequest struct {
	OwnerID string `json:"owner_id"`
}

// CreateSession 签发匿名会话令牌
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	token, ownerID, expiresAt, err := h.SessionService.IssueToken(req.OwnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"token":      token,
		"owner_id":   ownerID,
		"expires_at": expiresAt,
	})
}
