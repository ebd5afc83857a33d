package public

import (
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// WishlistItemRequest 收藏请求
type WishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist 获取当前会话的收藏列表
func (h *Handler) GetWishlist(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.ListByUser(ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddWishlistItem 添加收藏
func (h *Handler) AddWishlistItem(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	var req WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.WishlistService.Add(ownerID, req.ProductID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// RemoveWishlistItem 取消收藏
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "product_id")
	if !ok {
		return
	}
	if err := h.WishlistService.Remove(ownerID, productID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}
