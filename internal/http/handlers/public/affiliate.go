package public

import (
	"strconv"
	"strings"

	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AffiliateTrackClickRequest 推广点击记录请求
type AffiliateTrackClickRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
	LandingPath  string `json:"landing_path"`
	Referrer     string `json:"referrer"`
}

// TrackAffiliateClick 记录推广链接点击，无效推广码静默忽略。
func (h *Handler) TrackAffiliateClick(c *gin.Context) {
	var req AffiliateTrackClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if h.AffiliateService != nil {
		if err := h.AffiliateService.TrackClick(service.AffiliateTrackClickInput{
			ReferralCode: req.ReferralCode,
			LandingPath:  req.LandingPath,
			Referrer:     req.Referrer,
			ClientIP:     c.ClientIP(),
			UserAgent:    c.GetHeader("User-Agent"),
		}); err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
	}
	response.Success(c, gin.H{"ok": true})
}

// EnableAffiliate 开通推广返利
func (h *Handler) EnableAffiliate(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if h.AffiliateService == nil {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return
	}

	profile, err := h.AffiliateService.EnableAffiliate(uid)
	if err != nil {
		respondWithMappedError(c, err, affiliateErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, profile)
}

// GetAffiliateDashboard 获取推广返利看板
func (h *Handler) GetAffiliateDashboard(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if h.AffiliateService == nil {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return
	}
	data, err := h.AffiliateService.GetUserDashboard(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, data)
}

// ListAffiliateCommissions 查询我的推广佣金记录
func (h *Handler) ListAffiliateCommissions(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if h.AffiliateService == nil {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	rows, total, err := h.AffiliateService.ListUserCommissions(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, rows, response.BuildPagination(page, pageSize, total))
}

// ListAffiliatePayouts 查询我的提现申请记录
func (h *Handler) ListAffiliatePayouts(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if h.AffiliateService == nil {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	status := strings.TrimSpace(c.Query("status"))

	rows, total, err := h.AffiliateService.ListUserPayouts(uid, page, pageSize, status)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, rows, response.BuildPagination(page, pageSize, total))
}

// PayoutApplyRequest 提现申请请求
type PayoutApplyRequest struct {
	Amount            string `json:"amount" binding:"required"`
	BankName          string `json:"bank_name" binding:"required"`
	BankAccountNumber string `json:"bank_account_number" binding:"required"`
	BankAccountHolder string `json:"bank_account_holder" binding:"required"`
}

// ApplyAffiliatePayout 提交佣金提现申请
func (h *Handler) ApplyAffiliatePayout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if h.AffiliateService == nil {
		respondError(c, response.CodeInternal, "error.internal", nil)
		return
	}

	var req PayoutApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	payout, err := h.AffiliateService.ApplyPayout(uid, service.PayoutApplyInput{
		Amount:            amount,
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankAccountHolder: req.BankAccountHolder,
	})
	if err != nil {
		respondPayoutApplyError(c, err)
		return
	}
	response.Success(c, payout)
}
