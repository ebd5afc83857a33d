package models

import "time"

// Cart 购物车表。ID 由客户端生成（UUID），以便前端离线创建后整体 upsert。
type Cart struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`           // 主键（UUID）
	CreatedBy string    `gorm:"type:varchar(36);not null;index" json:"created_by"` // 所属会话ID
	CreatedAt time.Time `json:"created_at"`                                      // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                         // 更新时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "cart"
}

// CartItem 购物车项，批量 upsert
type CartItem struct {
	ID              string    `gorm:"type:varchar(36);primarykey" json:"id"`          // 主键（UUID）
	CartID          string    `gorm:"type:varchar(36);not null;index" json:"cart_id"` // 所属购物车ID
	ProductID       uint      `gorm:"not null;index" json:"product_id"`               // 商品ID
	Quantity        int       `gorm:"not null" json:"quantity"`                       // 数量
	UnitPriceAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 加入时单价快照
	CreatedAt       time.Time `json:"created_at"`                                     // 创建时间
	UpdatedAt       time.Time `json:"updated_at"`                                     // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名（与后端既有表保持一致）
func (CartItem) TableName() string {
	return "cartItem"
}
