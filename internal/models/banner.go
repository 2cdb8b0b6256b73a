package models

import (
	"time"

	"gorm.io/gorm"
)

// Banner 首页轮播图
type Banner struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name         string         `gorm:"type:varchar(120);not null;index" json:"name"`              // 后台名称
	Position     string         `gorm:"type:varchar(60);not null;index" json:"position"`           // 投放位置
	TitleJSON    JSON           `gorm:"type:json" json:"title"`                                    // 多语言标题
	SubtitleJSON JSON           `gorm:"type:json" json:"subtitle"`                                 // 多语言副标题
	Image        string         `gorm:"type:varchar(500);not null" json:"image"`                   // 主图
	MobileImage  string         `gorm:"type:varchar(500)" json:"mobile_image"`                     // 移动端图片
	LinkType     string         `gorm:"type:varchar(20);not null;default:'none'" json:"link_type"` // 跳转类型
	LinkValue    string         `gorm:"type:varchar(1000)" json:"link_value"`                      // 跳转值
	OpenInNewTab bool           `gorm:"default:false" json:"open_in_new_tab"`                      // 是否新窗口打开
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`                       // 是否启用
	StartAt      *time.Time     `gorm:"index" json:"start_at"`                                     // 生效时间
	EndAt        *time.Time     `gorm:"index" json:"end_at"`                                       // 失效时间
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`                         // 排序
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}
