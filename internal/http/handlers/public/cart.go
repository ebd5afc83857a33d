package public

import (
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UpsertCartRequest 购物车 upsert 请求
type UpsertCartRequest struct {
	ID string `json:"id"`
}

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ID        string       `json:"id"`
	CartID    string       `json:"cart_id" binding:"required"`
	ProductID uint         `json:"product_id" binding:"required"`
	Quantity  int          `json:"quantity" binding:"required"`
	UnitPrice models.Money `json:"unit_price"`
}

// UpsertCartItemsRequest 购物车项批量请求
type UpsertCartItemsRequest struct {
	Items []CartItemRequest `json:"items" binding:"required"`
}

// GetCart 获取当前会话最近更新的购物车。
// 没有购物车时返回空数据而不是错误。
func (h *Handler) GetCart(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCartByOwner(ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// UpsertCart 插入或更新购物车
func (h *Handler) UpsertCart(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	var req UpsertCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cart, err := h.CartService.UpsertCart(service.UpsertCartInput{
		ID:      req.ID,
		OwnerID: ownerID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// UpsertCartItems 批量插入或更新购物车项
func (h *Handler) UpsertCartItems(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	var req UpsertCartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	inputs := make([]service.CartItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, service.CartItemInput{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	items, err := h.CartService.UpsertCartItems(ownerID, inputs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// DeleteCart 按 ID 删除购物车
func (h *Handler) DeleteCart(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	if err := h.CartService.DeleteCart(ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// DeleteCartItem 按 ID 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		return
	}
	if err := h.CartService.DeleteCartItem(ownerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
