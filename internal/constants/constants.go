package constants

// 订单状态常量
const (
	OrderStatusPendingConfirmation = "pending_confirmation"
	OrderStatusUnpaid              = "unpaid"
	OrderStatusPaymentReview       = "payment_review"
	OrderStatusPreparing           = "preparing"
	OrderStatusShipping            = "shipping"
	OrderStatusCompleted           = "completed"
	OrderStatusCanceled            = "canceled"
)

// 推广档案状态常量
const (
	AffiliateProfileStatusActive   = "active"
	AffiliateProfileStatusDisabled = "disabled"
)

// 提现申请状态常量
const (
	PayoutStatusPending   = "pending"
	PayoutStatusProcessed = "processed"
	PayoutStatusRejected  = "rejected"
)

// 提现审核动作常量
const (
	PayoutActionProcess = "process"
	PayoutActionReject  = "reject"
)

// 工厂付款批次状态常量
const (
	FactoryBatchStatusUnpaid = "unpaid"
	FactoryBatchStatusPaid   = "paid"
)

// 上传场景常量
const (
	UploadScenePaymentProof = "payment_proof"
	UploadScenePayoutProof  = "payout_proof"
	UploadSceneFactoryProof = "factory_proof"
	UploadSceneProduct      = "product"
	UploadSceneBanner       = "banner"
	UploadScenePriceImage   = "price_image"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 登录日志状态常量
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// 登录日志失败原因常量
const (
	LoginLogFailReasonBadRequest         = "bad_request"
	LoginLogFailReasonCaptchaRequired    = "captcha_required"
	LoginLogFailReasonCaptchaInvalid     = "captcha_invalid"
	LoginLogFailReasonInvalidEmail       = "invalid_email"
	LoginLogFailReasonInvalidCredentials = "invalid_credentials"
	LoginLogFailReasonEmailNotVerified   = "email_not_verified"
	LoginLogFailReasonUserDisabled       = "user_disabled"
	LoginLogFailReasonInternalError      = "internal_error"
)

// 登录日志来源常量
const (
	LoginLogSourceWeb = "web"
)

// 验证码用途常量
const (
	VerifyPurposeRegister       = "register"
	VerifyPurposeReset          = "reset"
	VerifyPurposeChangeEmailOld = "change_email_old"
	VerifyPurposeChangeEmailNew = "change_email_new"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码校验场景常量
const (
	CaptchaSceneLogin            = "login"
	CaptchaSceneRegisterSendCode = "register_send_code"
	CaptchaSceneResetSendCode    = "reset_send_code"
)

// 队列常量
const (
	QueueDefault          = "default"
	TaskOrderStatusEmail  = "order:status_email"
	TaskOrderCommission   = "order:commission"
	TaskPayoutResultEmail = "payout:result_email"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "bl"
)

// 设置键常量
const (
	SettingKeySiteConfig      = "site_config"
	SettingKeySMTPConfig      = "smtp_config"
	SettingKeyCaptchaConfig   = "captcha_config"
	SettingKeyAffiliateConfig = "affiliate_config"
	SettingFieldSiteCurrency  = "currency"
)

// 币种常量
const (
	SiteCurrencyDefault = "IDR"
)

// 站点语言常量
const (
	LocaleIDID = "id-ID"
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleIDID, LocaleEnUS, LocaleZhCN}

// Banner 位置常量
const (
	BannerPositionHomeHero = "home_hero"
)

// Banner 跳转类型常量
const (
	BannerLinkTypeNone     = "none"
	BannerLinkTypeInternal = "internal"
	BannerLinkTypeExternal = "external"
)
