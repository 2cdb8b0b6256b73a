package public

import (
	"errors"

	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrAddressRequired, code: response.CodeBadRequest, key: "error.address_required"},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, key: "error.product_unavailable"},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest, key: "error.product_out_of_stock"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var orderActionErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, key: "error.order_status_conflict"},
	{target: service.ErrPaymentProofRequired, code: response.CodeBadRequest, key: "error.payment_proof_required"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, key: "error.product_unavailable"},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest, key: "error.product_out_of_stock"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

var affiliateErrorRules = []mappedHandlerError{
	{target: service.ErrAffiliateNotOpened, code: response.CodeBadRequest, key: "error.affiliate_not_opened"},
	{target: service.ErrAffiliateDisabled, code: response.CodeBadRequest, key: "error.affiliate_disabled"},
	{target: service.ErrReferralCodeGenerateFailed, code: response.CodeInternal, key: "error.referral_code_generate_failed"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, key: "error.user_disabled"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
}

var payoutApplyErrorRules = []mappedHandlerError{
	{target: service.ErrPayoutBelowMinimum, code: response.CodeBadRequest, key: "error.payout_below_minimum"},
	{target: service.ErrPayoutInsufficientBalance, code: response.CodeBadRequest, key: "error.payout_insufficient_balance"},
	{target: service.ErrBankAccountRequired, code: response.CodeBadRequest, key: "error.bank_account_required"},
}

var verifyCodeErrorRules = []mappedHandlerError{
	{target: service.ErrVerifyCodeInvalid, code: response.CodeBadRequest, key: "error.verify_code_invalid"},
	{target: service.ErrVerifyCodeExpired, code: response.CodeBadRequest, key: "error.verify_code_expired"},
	{target: service.ErrVerifyCodeAttemptsExceeded, code: response.CodeBadRequest, key: "error.verify_code_attempts_exceeded"},
	{target: service.ErrInvalidVerifyPurpose, code: response.CodeBadRequest, key: "error.verify_purpose_invalid"},
}

var captchaErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
	{target: service.ErrCaptchaConfigInvalid, code: response.CodeInternal, key: "error.captcha_config_invalid"},
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
}

func respondOrderActionError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderActionErrorRules, response.CodeInternal, "error.internal")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
}

func respondPayoutApplyError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(affiliateErrorRules, payoutApplyErrorRules), response.CodeInternal, "error.internal")
}

func respondCaptchaError(c *gin.Context, err error) {
	respondWithMappedError(c, err, captchaErrorRules, response.CodeInternal, "error.internal")
}
