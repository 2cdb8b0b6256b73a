package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
// 说明：订单同时承担发票角色，金额字段满足
// total_amount = sub_total + shipping_fee - discount_amount。
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	OrderNo        string         `gorm:"uniqueIndex;not null" json:"order_no"`                        // 订单编号（发票号）
	UserID         uint           `gorm:"index;not null" json:"user_id"`                               // 用户ID
	Status         string         `gorm:"index;not null" json:"status"`                                // 订单状态
	Currency       string         `gorm:"not null" json:"currency"`                                    // 币种
	SubTotal       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"sub_total"`      // 商品小计
	ShippingFee    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_fee"`   // 运费
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`// 优惠金额
	TotalAmount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`   // 应付总额
	TotalWeight    Weight         `gorm:"type:decimal(14,2);not null;default:0" json:"total_weight"`   // 总重量（克）

	// 收货信息
	RecipientName string `gorm:"type:varchar(120);not null" json:"recipient_name"` // 收件人
	RecipientPhone string `gorm:"type:varchar(40);not null" json:"recipient_phone"` // 联系电话
	AddressLine   string `gorm:"type:varchar(500);not null" json:"address_line"`   // 详细地址
	City          string `gorm:"type:varchar(120)" json:"city"`                    // 城市
	Province      string `gorm:"type:varchar(120)" json:"province"`                // 省/州
	PostalCode    string `gorm:"type:varchar(20)" json:"postal_code"`              // 邮编
	BuyerNote     string `gorm:"type:varchar(1000)" json:"buyer_note"`             // 买家备注

	// 推广归属快照（下单时落库，不随档案变更）
	AffiliateProfileID *uint  `gorm:"index" json:"affiliate_profile_id,omitempty"` // 推广档案ID
	AffiliateCode      string `gorm:"type:varchar(32);index" json:"affiliate_code,omitempty"` // 推广码快照

	// 付款（仅支持银行转账 + 凭证审核）
	PaymentProofPath string     `gorm:"type:varchar(500)" json:"payment_proof_path,omitempty"` // 付款凭证路径
	PaymentProofAt   *time.Time `gorm:"index" json:"payment_proof_at,omitempty"`               // 凭证提交时间

	// 发货
	Courier        string     `gorm:"type:varchar(120)" json:"courier,omitempty"`         // 承运商
	TrackingNumber string     `gorm:"type:varchar(120)" json:"tracking_number,omitempty"` // 运单号
	AdminNote      string     `gorm:"type:varchar(1000)" json:"admin_note,omitempty"`     // 后台备注

	// 工厂付款批次归属（一个订单至多属于一个批次）
	FactoryBatchID *uint `gorm:"index" json:"factory_batch_id,omitempty"` // 批次ID

	ConfirmedAt *time.Time     `gorm:"index" json:"confirmed_at"` // 后台核价时间
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`      // 付款确认时间
	ShippedAt   *time.Time     `gorm:"index" json:"shipped_at"`   // 发货时间
	CompletedAt *time.Time     `gorm:"index" json:"completed_at"` // 完成时间
	CanceledAt  *time.Time     `gorm:"index" json:"canceled_at"`  // 取消时间
	ClientIP    string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"` // 下单客户端IP
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`            // 软删除时间

	Items []OrderItem          `gorm:"foreignKey:OrderID" json:"items,omitempty"`          // 订单项
	Batch *FactoryPaymentBatch `gorm:"foreignKey:FactoryBatchID" json:"batch,omitempty"`   // 所属批次
	User  *User                `gorm:"foreignKey:UserID" json:"user,omitempty"`            // 下单用户
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
