package models

import (
	"time"

	"gorm.io/gorm"
)

// CommissionRecord 推广佣金账目记录
// 说明：同一订单至多产生一条记录，金额在写入后不可变更，
// 余额由账目求和得出，不在档案上冗余存储。
type CommissionRecord struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                                                          // 主键
	AffiliateProfileID uint           `gorm:"not null;index;index:idx_commission_order_unique,unique" json:"affiliate_profile_id"` // 推广档案ID
	OrderID            uint           `gorm:"not null;index:idx_commission_order_unique,unique" json:"order_id"`             // 订单ID
	OrderNo            string         `gorm:"type:varchar(64);index" json:"order_no"`                                        // 订单编号快照
	BaseAmount         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"base_amount"`                      // 佣金基数（订单应付总额）
	RatePercent        Money          `gorm:"type:decimal(10,2);not null;default:0" json:"rate_percent"`                     // 佣金比例（百分比）
	Amount             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`                           // 佣金金额
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                                                       // 创建时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                                                // 软删除时间

	AffiliateProfile AffiliateProfile `gorm:"foreignKey:AffiliateProfileID" json:"affiliate_profile,omitempty"` // 推广档案
	Order            Order            `gorm:"foreignKey:OrderID" json:"order,omitempty"`                        // 关联订单
}

// TableName 指定表名
func (CommissionRecord) TableName() string {
	return "commission_records"
}
