package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/repository"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AffiliateProfileStatusRequest 返利用户状态更新请求
type AffiliateProfileStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListAffiliateProfiles 管理端推广用户列表，附带佣金余额
func (h *Handler) ListAffiliateProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	rows, total, err := h.AffiliateService.ListAdminProfiles(repository.AffiliateProfileListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		Keyword:  strings.TrimSpace(c.Query("keyword")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, rows, response.BuildPagination(page, pageSize, total))
}

// UpdateAffiliateProfileStatus 管理端启用/停用推广档案
func (h *Handler) UpdateAffiliateProfileStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AffiliateProfileStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	row, err := h.AffiliateService.UpdateProfileStatus(uint(id), strings.TrimSpace(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.affiliate_not_found", nil)
		case errors.Is(err, service.ErrAffiliateProfileStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, row)
}

// ListAdminAffiliateCommissions 管理端佣金账目列表
func (h *Handler) ListAdminAffiliateCommissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	profileID, _ := strconv.ParseUint(strings.TrimSpace(c.Query("affiliate_profile_id")), 10, 64)

	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	rows, total, err := h.AffiliateService.ListAdminCommissions(repository.CommissionListFilter{
		Page:               page,
		PageSize:           pageSize,
		AffiliateProfileID: uint(profileID),
		OrderNo:            strings.TrimSpace(c.Query("order_no")),
		CreatedFrom:        createdFrom,
		CreatedTo:          createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, rows, response.BuildPagination(page, pageSize, total))
}

// ListAdminAffiliatePayouts 管理端提现审核列表
func (h *Handler) ListAdminAffiliatePayouts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)
	profileID, _ := strconv.ParseUint(strings.TrimSpace(c.Query("affiliate_profile_id")), 10, 64)

	rows, total, err := h.AffiliateService.ListAdminPayouts(repository.PayoutListFilter{
		Page:               page,
		PageSize:           pageSize,
		AffiliateProfileID: uint(profileID),
		Status:             strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, rows, response.BuildPagination(page, pageSize, total))
}

// PayoutReviewRequest 提现审核请求
type PayoutReviewRequest struct {
	Action       string `json:"action" binding:"required"`
	ProofPath    string `json:"proof_path"`
	RejectReason string `json:"reject_reason"`
}

// ReviewAffiliatePayout 审核提现：打款需附转账凭证，驳回需填写原因
func (h *Handler) ReviewAffiliatePayout(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req PayoutReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	row, err := h.AffiliateService.ReviewPayout(adminID, uint(id), service.PayoutReviewInput{
		Action:       req.Action,
		ProofPath:    req.ProofPath,
		RejectReason: req.RejectReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.payout_not_found", nil)
		case errors.Is(err, service.ErrPayoutStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.payout_status_conflict", nil)
		case errors.Is(err, service.ErrPayoutProofRequired):
			respondError(c, response.CodeBadRequest, "error.payout_proof_required", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, row)
}
