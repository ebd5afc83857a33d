package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                          // 主键
	VendorID          uint           `gorm:"not null;index" json:"vendor_id"`                               // 供应商ID
	Name              string         `gorm:"type:varchar(255);not null;index" json:"name"`                  // 商品名称
	UnitPriceAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`      // 单价金额
	UnitPriceCurrency string         `gorm:"type:varchar(3);not null;default:'usd'" json:"currency_code"`  // 货币代码
	InStock           bool           `gorm:"default:true;index" json:"in_stock"`                           // 是否有库存
	Thumbnail         string         `gorm:"type:varchar(500)" json:"thumbnail"`                           // 主图
	ProductType       string         `gorm:"type:varchar(40);index" json:"product_type"`                   // 商品类型
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt         time.Time      `json:"updated_at"`                                                   // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间

	// 关联
	Vendor     Vendor     `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`                                                         // 供应商信息
	Categories []Category `gorm:"many2many:products_categories;joinForeignKey:ProductID;joinReferences:CategoryID" json:"categories,omitempty"` // 所属分类
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
