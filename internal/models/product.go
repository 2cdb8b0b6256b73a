package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 银制商品表
// 说明：每个商品是单一规格的银条/银币/银饰，重量以克为单位。
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                       // 主键
	CategoryID      uint           `gorm:"not null;index" json:"category_id"`                          // 分类ID
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`                           // 唯一标识
	TitleJSON       JSON           `gorm:"type:json;not null" json:"title"`                            // 多语言标题
	DescriptionJSON JSON           `gorm:"type:json" json:"description"`                               // 多语言描述
	ContentJSON     JSON           `gorm:"type:json" json:"content"`                                   // 多语言详情（Markdown）
	Brand           string         `gorm:"type:varchar(120)" json:"brand"`                             // 品牌/厂牌
	Purity          string         `gorm:"type:varchar(20);not null;default:'999'" json:"purity"`      // 成色（如 999、925）
	WeightGrams     Weight         `gorm:"type:decimal(12,2);not null;default:0" json:"weight_grams"`  // 单件重量（克）
	PriceAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`  // 标价
	Images          StringArray    `gorm:"type:json" json:"images"`                                    // 图片数组
	Tags            StringArray    `gorm:"type:json" json:"tags"`                                      // 标签数组
	StockTotal      int            `gorm:"not null;default:0" json:"stock_total"`                      // 库存总量（0 表示不限制）
	StockSold       int            `gorm:"not null;default:0" json:"stock_sold"`                       // 已售数量
	IsActive        bool           `gorm:"default:true;index" json:"is_active"`                        // 是否上架
	SortOrder       int            `gorm:"default:0;index" json:"sort_order"`                          // 排序权重
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                 // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
