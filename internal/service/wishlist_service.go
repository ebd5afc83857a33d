package service

import (
	"strings"

	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/notify"
	"github.com/storefront-next/internal/repository"
)

// WishlistService 收藏服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	notifier     notify.Notifier
}

// NewWishlistService 创建收藏服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, notifier notify.Notifier) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		notifier:     notifier,
	}
}

// ListByUser 获取用户收藏
func (s *WishlistService) ListByUser(userID string) ([]models.WishlistItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrOwnerIDRequired
	}
	items, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, backendFailure(s.notifier, "Error fetching wishlist", userID, err)
	}
	return items, nil
}

// Add 添加收藏，(user, product) 重复添加幂等。
func (s *WishlistService) Add(userID string, productID uint) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrOwnerIDRequired
	}
	if productID == 0 {
		return ErrProductIDInvalid
	}
	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Add(item); err != nil {
		return backendFailure(s.notifier, "Error adding to wishlist", userID, err)
	}
	return nil
}

// Remove 取消收藏
func (s *WishlistService) Remove(userID string, productID uint) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrOwnerIDRequired
	}
	if productID == 0 {
		return ErrProductIDInvalid
	}
	if err := s.wishlistRepo.Remove(userID, productID); err != nil {
		return backendFailure(s.notifier, "Error removing from wishlist", userID, err)
	}
	return nil
}
