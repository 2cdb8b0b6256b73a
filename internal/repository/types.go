package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// BannerListFilter 查询 Banner 列表的过滤条件
type BannerListFilter struct {
	Page      int
	PageSize  int
	Position  string
	Search    string
	IsActive  *bool
	OrderBy   string
	OnlyValid bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page               int
	PageSize           int
	UserID             uint
	Status             string
	OrderNo            string
	AffiliateProfileID uint
	UnbatchedOnly      bool
	CreatedFrom        *time.Time
	CreatedTo          *time.Time
}

// CommissionListFilter 查询佣金账目列表的过滤条件
type CommissionListFilter struct {
	Page               int
	PageSize           int
	AffiliateProfileID uint
	OrderNo            string
	CreatedFrom        *time.Time
	CreatedTo          *time.Time
}

// PayoutListFilter 查询提现申请列表的过滤条件
type PayoutListFilter struct {
	Page               int
	PageSize           int
	AffiliateProfileID uint
	Status             string
	CreatedFrom        *time.Time
	CreatedTo          *time.Time
}

// FactoryBatchListFilter 查询工厂付款批次列表的过滤条件
type FactoryBatchListFilter struct {
	Page        int
	PageSize    int
	Status      string
	BatchNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AffiliateProfileListFilter 查询推广档案列表的过滤条件
type AffiliateProfileListFilter struct {
	Page     int
	PageSize int
	Status   string
	Keyword  string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page          int
	PageSize      int
	Keyword       string
	Status        string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	LastLoginFrom *time.Time
	LastLoginTo   *time.Time
}

// UserLoginLogListFilter 查询用户登录日志列表的过滤条件
type UserLoginLogListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Email       string
	Status      string
	FailReason  string
	ClientIP    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// AuthzAuditLogListFilter 查询权限审计日志列表的过滤条件
type AuthzAuditLogListFilter struct {
	Page            int
	PageSize        int
	OperatorAdminID uint
	TargetAdminID   uint
	Action          string
	Role            string
	Object          string
	Method          string
	CreatedFrom     *time.Time
	CreatedTo       *time.Time
}
