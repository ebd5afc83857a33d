package service

import (
	"strings"
	"time"

	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/notify"
	"github.com/storefront-next/internal/repository"

	"github.com/google/uuid"
)

// UpsertCartInput 购物车 upsert 输入
type UpsertCartInput struct {
	ID      string
	OwnerID string
}

// CartItemInput 购物车项 upsert 输入
type CartItemInput struct {
	ID        string
	CartID    string
	ProductID uint
	Quantity  int
	UnitPrice models.Money
}

// CartService 购物车服务
type CartService struct {
	cartRepo repository.CartRepository
	notifier notify.Notifier
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, notifier notify.Notifier) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		notifier: notifier,
	}
}

// GetCartByOwner 获取用户最近更新的购物车。
// 没有购物车不算失败：返回 (nil, nil)，不推送通知。
func (s *CartService) GetCartByOwner(ownerID string) (*models.Cart, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrOwnerIDRequired
	}
	cart, err := s.cartRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, backendFailure(s.notifier, "Error fetching cart", ownerID, err)
	}
	return cart, nil
}

// UpsertCart 插入或更新购物车。ID 为空时由服务端生成。
func (s *CartService) UpsertCart(input UpsertCartInput) (*models.Cart, error) {
	ownerID := strings.TrimSpace(input.OwnerID)
	if ownerID == "" {
		return nil, ErrOwnerIDRequired
	}
	cartID := strings.TrimSpace(input.ID)
	if cartID == "" {
		cartID = uuid.NewString()
	}
	cart := &models.Cart{
		ID:        cartID,
		CreatedBy: ownerID,
		UpdatedAt: time.Now(),
	}
	if err := s.cartRepo.Upsert(cart); err != nil {
		return nil, backendFailure(s.notifier, "Error saving cart", ownerID, err)
	}
	return cart, nil
}

// UpsertCartItems 批量插入或更新购物车项
func (s *CartService) UpsertCartItems(ownerID string, inputs []CartItemInput) ([]models.CartItem, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrOwnerIDRequired
	}
	if len(inputs) == 0 {
		return []models.CartItem{}, nil
	}

	now := time.Now()
	items := make([]models.CartItem, 0, len(inputs))
	for _, input := range inputs {
		if strings.TrimSpace(input.CartID) == "" {
			return nil, ErrCartIDRequired
		}
		if input.ProductID == 0 || input.Quantity <= 0 {
			return nil, ErrCartItemInvalid
		}
		itemID := strings.TrimSpace(input.ID)
		if itemID == "" {
			itemID = uuid.NewString()
		}
		items = append(items, models.CartItem{
			ID:              itemID,
			CartID:          strings.TrimSpace(input.CartID),
			ProductID:       input.ProductID,
			Quantity:        input.Quantity,
			UnitPriceAmount: input.UnitPrice,
			UpdatedAt:       now,
		})
	}

	if err := s.cartRepo.UpsertItems(items); err != nil {
		return nil, backendFailure(s.notifier, "Error saving cart items", ownerID, err)
	}
	return items, nil
}

// DeleteCart 按 ID 删除购物车
func (s *CartService) DeleteCart(ownerID, cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return ErrCartIDRequired
	}
	if err := s.cartRepo.Delete(cartID); err != nil {
		return backendFailure(s.notifier, "Error deleting cart", ownerID, err)
	}
	return nil
}

// DeleteCartItem 按 ID 删除购物车项
func (s *CartService) DeleteCartItem(ownerID, itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrCartItemInvalid
	}
	if err := s.cartRepo.DeleteItem(itemID); err != nil {
		return backendFailure(s.notifier, "Error deleting cart item", ownerID, err)
	}
	return nil
}
