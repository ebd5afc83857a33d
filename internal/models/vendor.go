package models

import (
	"time"

	"gorm.io/gorm"
)

// Vendor 供应商表
type Vendor struct {
	ID        uint           `gorm:"primarykey" json:"id"`                        // 主键
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`      // 供应商名称
	CreatedAt time.Time      `json:"created_at"`                                  // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间
}

// TableName 指定表名
func (Vendor) TableName() string {
	return "vendors"
}
