package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 分类表
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`                   // 主键
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`       // 唯一标识
	Name      string         `gorm:"type:varchar(255);not null" json:"name"` // 分类名称
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// ProductCategory 商品与分类的多对多关联表
type ProductCategory struct {
	ProductID  uint `gorm:"primarykey" json:"product_id"`  // 商品ID
	CategoryID uint `gorm:"primarykey" json:"category_id"` // 分类ID
}

// TableName 指定表名
func (ProductCategory) TableName() string {
	return "products_categories"
}
