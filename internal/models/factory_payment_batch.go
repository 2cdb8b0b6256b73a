package models

import (
	"time"

	"gorm.io/gorm"
)

// FactoryPaymentBatch 工厂付款批次
// 说明：按截止时间把未归批的在产订单归入一个批次，
// 用于对工厂的货款结算；订单至多归属一个批次。
type FactoryPaymentBatch struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                       // 主键
	BatchNo          string         `gorm:"uniqueIndex;not null" json:"batch_no"`                       // 批次编号
	CutoffAt         time.Time      `gorm:"index;not null" json:"cutoff_at"`                            // 截止时间
	OrderCount       int            `gorm:"not null;default:0" json:"order_count"`                      // 订单数量
	TotalAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 金额合计
	TotalWeight      Weight         `gorm:"type:decimal(16,2);not null;default:0" json:"total_weight"`  // 重量合计（克）
	Status           string         `gorm:"type:varchar(20);not null;index" json:"status"`              // 状态（unpaid/paid）
	ProofPath        string         `gorm:"type:varchar(500)" json:"proof_path,omitempty"`              // 付款凭证路径
	Note             string         `gorm:"type:varchar(1000)" json:"note,omitempty"`                   // 备注
	CreatedByAdminID uint           `gorm:"index" json:"created_by_admin_id"`                           // 创建管理员ID
	PaidAt           *time.Time     `gorm:"index" json:"paid_at,omitempty"`                             // 付款时间
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Orders []Order `gorm:"foreignKey:FactoryBatchID" json:"orders,omitempty"` // 批次内订单
}

// TableName 指定表名
func (FactoryPaymentBatch) TableName() string {
	return "factory_payment_batches"
}
