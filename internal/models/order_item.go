package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
// 说明：标题、单价与单件重量均为下单时快照。
type OrderItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderID     uint           `gorm:"index;not null" json:"order_id"`                             // 订单ID
	ProductID   uint           `gorm:"index;not null" json:"product_id"`                           // 商品ID
	TitleJSON   JSON           `gorm:"type:json;not null" json:"title"`                            // 商品标题快照
	Purity      string         `gorm:"type:varchar(20)" json:"purity"`                             // 成色快照
	UnitPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`    // 单价
	UnitWeight  Weight         `gorm:"type:decimal(12,2);not null;default:0" json:"unit_weight"`   // 单件重量（克）
	Quantity    int            `gorm:"not null" json:"quantity"`                                   // 数量
	TotalPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`   // 小计
	TotalWeight Weight         `gorm:"type:decimal(14,2);not null;default:0" json:"total_weight"`  // 重量小计（克）
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
