package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/repository"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildFactoryBatchRequest 生成工厂付款批次请求
type BuildFactoryBatchRequest struct {
	CutoffAt string `json:"cutoff_at" binding:"required"`
	Note     string `json:"note"`
}

// BuildFactoryBatch 按截单时间汇总未入批订单，生成付款批次
func (h *Handler) BuildFactoryBatch(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	var req BuildFactoryBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	cutoffAt, err := time.Parse(time.RFC3339, strings.TrimSpace(req.CutoffAt))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.cutoff_invalid", nil)
		return
	}

	batch, err := h.FactoryBatchService.BuildBatch(service.BuildBatchInput{
		CutoffAt:       cutoffAt,
		Note:           req.Note,
		CreatedByAdmin: adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCutoffInvalid):
			respondError(c, response.CodeBadRequest, "error.cutoff_invalid", nil)
		case errors.Is(err, service.ErrBatchEmpty):
			respondError(c, response.CodeBadRequest, "error.batch_empty", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, batch)
}

// SettleFactoryBatchRequest 批次打款请求
type SettleFactoryBatchRequest struct {
	ProofPath string `json:"proof_path" binding:"required"`
	Note      string `json:"note"`
}

// SettleFactoryBatch 登记向工厂的转账凭证，批次转入已打款
func (h *Handler) SettleFactoryBatch(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	batchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || batchID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req SettleFactoryBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	batch, err := h.FactoryBatchService.SettleBatch(uint(batchID), service.SettleBatchInput{
		ProofPath:       req.ProofPath,
		Note:            req.Note,
		ReviewedByAdmin: adminID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.batch_not_found", nil)
		case errors.Is(err, service.ErrBatchProofRequired):
			respondError(c, response.CodeBadRequest, "error.batch_proof_required", nil)
		case errors.Is(err, service.ErrBatchStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.batch_status_conflict", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	response.Success(c, batch)
}

// GetFactoryBatch 批次详情，含订单与总克重汇总
func (h *Handler) GetFactoryBatch(c *gin.Context) {
	batchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || batchID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	batch, err := h.FactoryBatchService.GetBatch(uint(batchID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.batch_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, batch)
}

// ListFactoryBatches 批次列表
func (h *Handler) ListFactoryBatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

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

	batches, total, err := h.FactoryBatchService.ListBatches(repository.FactoryBatchListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      strings.TrimSpace(c.Query("status")),
		BatchNo:     strings.TrimSpace(c.Query("batch_no")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, batches, response.BuildPagination(page, pageSize, total))
}
