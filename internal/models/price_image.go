package models

import "time"

// PriceImage 当日银价展示图
// 说明：前台只展示最新启用的一条记录。
type PriceImage struct {
	ID               uint      `gorm:"primarykey" json:"id"`                          // 主键
	ImagePath        string    `gorm:"type:varchar(500);not null" json:"image_path"`  // 图片路径
	Caption          string    `gorm:"type:varchar(255)" json:"caption"`              // 说明文字
	IsActive         bool      `gorm:"default:true;index" json:"is_active"`           // 是否启用
	UpdatedByAdminID uint      `gorm:"index" json:"updated_by_admin_id"`              // 更新管理员ID
	CreatedAt        time.Time `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt        time.Time `json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (PriceImage) TableName() string {
	return "price_images"
}
