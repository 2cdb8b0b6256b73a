package models

import (
	"time"

	"gorm.io/gorm"
)

// PayoutRequest 佣金提现申请
// 说明：状态只允许 pending -> processed / pending -> rejected，
// processed 必须携带转账凭证。
type PayoutRequest struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                                      // 主键
	AffiliateProfileID uint           `gorm:"not null;index" json:"affiliate_profile_id"`                // 推广档案ID
	Amount             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`       // 提现金额
	Currency           string         `gorm:"not null" json:"currency"`                                  // 币种
	BankName           string         `gorm:"type:varchar(120);not null" json:"bank_name"`               // 银行名称
	BankAccountNumber  string         `gorm:"type:varchar(64);not null" json:"bank_account_number"`      // 银行账号
	BankAccountHolder  string         `gorm:"type:varchar(120);not null" json:"bank_account_holder"`     // 开户人姓名
	Status             string         `gorm:"type:varchar(20);not null;index" json:"status"`             // 状态
	ProofPath          string         `gorm:"type:varchar(500)" json:"proof_path,omitempty"`             // 转账凭证路径
	RejectReason       string         `gorm:"type:varchar(500)" json:"reject_reason,omitempty"`          // 驳回原因
	ReviewedByAdminID  *uint          `gorm:"index" json:"reviewed_by_admin_id,omitempty"`               // 审核管理员ID
	ReviewedAt         *time.Time     `gorm:"index" json:"reviewed_at,omitempty"`                        // 审核时间
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	AffiliateProfile AffiliateProfile `gorm:"foreignKey:AffiliateProfileID" json:"affiliate_profile,omitempty"` // 推广档案
}

// TableName 指定表名
func (PayoutRequest) TableName() string {
	return "payout_requests"
}
