package repository

import (
	"errors"

	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByOwner(ownerID string) (*models.Cart, error)
	Upsert(cart *models.Cart) error
	UpsertItems(items []models.CartItem) error
	Delete(cartID string) error
	DeleteItem(itemID string) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByOwner 获取用户最近更新的购物车。
// 未找到不算失败，返回 (nil, nil)。
func (r *GormCartRepository) GetByOwner(ownerID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").
		Where("created_by = ?", ownerID).
		Order("updated_at DESC").
		Limit(1).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Upsert 按 ID 插入或更新购物车
func (r *GormCartRepository) Upsert(cart *models.Cart) error {
	if cart == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(cart).Error
}

// UpsertItems 按 ID 批量插入或更新购物车项
func (r *GormCartRepository) UpsertItems(items []models.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&items).Error
}

// Delete 按 ID 删除购物车
func (r *GormCartRepository) Delete(cartID string) error {
	return r.db.Where("id = ?", cartID).Delete(&models.Cart{}).Error
}

// DeleteItem 按 ID 删除购物车项
func (r *GormCartRepository) DeleteItem(itemID string) error {
	return r.db.Where("id = ?", itemID).Delete(&models.CartItem{}).Error
}
