package service

import "errors"

// 服务层哨兵错误，handler 通过 errors.Is 映射为响应码与多语言文案。
var (
	ErrNotFound = errors.New("record not found")

	// 认证与账户
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("weak password")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserDisabled       = errors.New("user disabled")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAgreementRequired  = errors.New("agreement not accepted")
	ErrProfileEmpty       = errors.New("profile update empty")
	ErrEmailChangeInvalid = errors.New("email change invalid")
	ErrEmailChangeExists  = errors.New("email change target exists")

	// 邮箱验证码
	ErrVerifyCodeInvalid          = errors.New("verify code invalid")
	ErrVerifyCodeExpired          = errors.New("verify code expired")
	ErrVerifyCodeTooFrequent      = errors.New("verify code requested too frequently")
	ErrVerifyCodeAttemptsExceeded = errors.New("verify code attempts exceeded")
	ErrInvalidVerifyPurpose       = errors.New("verify purpose not supported")

	// 验证码（人机校验）
	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")

	// 邮件
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
	ErrSMTPConfigInvalid         = errors.New("smtp config invalid")

	// 商品与分类
	ErrSlugExists          = errors.New("slug already exists")
	ErrCategoryInUse       = errors.New("category still has products")
	ErrProductInactive     = errors.New("product inactive")
	ErrProductPriceInvalid = errors.New("product price invalid")
	ErrInsufficientStock   = errors.New("insufficient stock")

	// 购物车与下单
	ErrCartEmpty          = errors.New("cart is empty")
	ErrQuantityInvalid    = errors.New("quantity invalid")
	ErrAddressRequired    = errors.New("shipping address required")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderStatusInvalid = errors.New("order status transition invalid")
	ErrOrderTotalMismatch = errors.New("order total mismatch")

	// 付款凭证
	ErrPaymentProofRequired = errors.New("payment proof required")

	// 推广返利
	ErrAffiliateNotOpened            = errors.New("affiliate not opened")
	ErrAffiliateDisabled             = errors.New("affiliate disabled")
	ErrAffiliateProfileStatusInvalid = errors.New("affiliate profile status invalid")
	ErrReferralCodeInvalid           = errors.New("referral code invalid")
	ErrReferralCodeGenerateFailed    = errors.New("referral code generate failed")
	ErrSelfReferral                  = errors.New("self referral not allowed")
	ErrAffiliateConfigInvalid        = errors.New("affiliate config invalid")

	// 佣金提现
	ErrPayoutBelowMinimum        = errors.New("payout below minimum amount")
	ErrPayoutInsufficientBalance = errors.New("payout insufficient balance")
	ErrPayoutStatusInvalid       = errors.New("payout status invalid")
	ErrPayoutProofRequired       = errors.New("payout proof required")
	ErrBankAccountRequired       = errors.New("bank account required")

	// 工厂付款批次
	ErrBatchEmpty         = errors.New("no orders match batch cutoff")
	ErrBatchStatusInvalid = errors.New("batch status invalid")
	ErrBatchProofRequired = errors.New("batch payment proof required")
	ErrCutoffInvalid      = errors.New("cutoff time invalid")

	// 上传
	ErrUploadTooLarge    = errors.New("upload exceeds size limit")
	ErrUploadTypeInvalid = errors.New("upload type not allowed")

	// 其他后台
	ErrInvalidBanner         = errors.New("banner payload invalid")
	ErrDashboardRangeInvalid = errors.New("dashboard range invalid")
)
