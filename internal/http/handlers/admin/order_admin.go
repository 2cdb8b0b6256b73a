package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminOrderListItem 管理端订单列表返回
type AdminOrderListItem struct {
	models.Order
	UserEmail       string `json:"user_email,omitempty"`
	UserDisplayName string `json:"user_display_name,omitempty"`
}

// AdminOrderDetail 管理端订单详情返回
type AdminOrderDetail struct {
	models.Order
	UserEmail       string `json:"user_email,omitempty"`
	UserDisplayName string `json:"user_display_name,omitempty"`
}

// AdminListOrders 管理端订单列表
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	userIDStr := strings.TrimSpace(c.Query("user_id"))
	orderNo := strings.TrimSpace(c.Query("order_no"))
	affiliateIDStr := strings.TrimSpace(c.Query("affiliate_profile_id"))
	createdFromRaw := strings.TrimSpace(c.Query("created_from"))
	createdToRaw := strings.TrimSpace(c.Query("created_to"))

	createdFrom, err := parseTimeNullable(createdFromRaw)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(createdToRaw)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	var userID uint
	if userIDStr != "" {
		if parsed, err := strconv.ParseUint(userIDStr, 10, 64); err == nil {
			userID = uint(parsed)
		}
	}
	var affiliateProfileID uint
	if affiliateIDStr != "" {
		if parsed, err := strconv.ParseUint(affiliateIDStr, 10, 64); err == nil {
			affiliateProfileID = uint(parsed)
		}
	}

	orders, total, err := h.OrderService.ListOrdersForAdmin(repository.OrderListFilter{
		Page:               page,
		PageSize:           pageSize,
		UserID:             userID,
		Status:             status,
		OrderNo:            orderNo,
		AffiliateProfileID: affiliateProfileID,
		CreatedFrom:        createdFrom,
		CreatedTo:          createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	userMap := map[uint]models.User{}
	userIDs := make([]uint, 0, len(orders))
	seen := map[uint]struct{}{}
	for _, order := range orders {
		if order.UserID == 0 {
			continue
		}
		if _, ok := seen[order.UserID]; ok {
			continue
		}
		seen[order.UserID] = struct{}{}
		userIDs = append(userIDs, order.UserID)
	}
	if len(userIDs) > 0 {
		users, err := h.UserRepo.ListByIDs(userIDs)
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		for _, user := range users {
			userMap[user.ID] = user
		}
	}

	items := make([]AdminOrderListItem, 0, len(orders))
	for _, order := range orders {
		var email, displayName string
		if user, ok := userMap[order.UserID]; ok {
			email = user.Email
			displayName = user.DisplayName
		}
		items = append(items, AdminOrderListItem{
			Order:           order,
			UserEmail:       email,
			UserDisplayName: displayName,
		})
	}

	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// AdminGetOrder 管理端订单详情
func (h *Handler) AdminGetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetOrderForAdmin(uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}
	var email, displayName string
	if order.UserID != 0 {
		user, err := h.UserRepo.GetByID(order.UserID)
		if err != nil {
			respondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		if user != nil {
			email = user.Email
			displayName = user.DisplayName
		}
	}

	response.Success(c, AdminOrderDetail{
		Order:           *order,
		UserEmail:       email,
		UserDisplayName: displayName,
	})
}

// AdminConfirmPricingRequest 核价确认请求
type AdminConfirmPricingRequest struct {
	ShippingFee    string `json:"shipping_fee" binding:"required"`
	DiscountAmount string `json:"discount_amount"`
	AdminNote      string `json:"admin_note"`
}

// AdminConfirmPricing 核价：填入运费与折扣后进入待付款
func (h *Handler) AdminConfirmPricing(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminConfirmPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	shippingFee, err := decimal.NewFromString(strings.TrimSpace(req.ShippingFee))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	discountAmount := decimal.Zero
	if strings.TrimSpace(req.DiscountAmount) != "" {
		discountAmount, err = decimal.NewFromString(strings.TrimSpace(req.DiscountAmount))
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
	}

	order, err := h.OrderService.ConfirmPricing(uint(orderID), service.ConfirmPricingInput{
		ShippingFee:    shippingFee,
		DiscountAmount: discountAmount,
		AdminNote:      req.AdminNote,
	})
	if err != nil {
		respondAdminOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// AdminVerifyPaymentRequest 付款审核请求
type AdminVerifyPaymentRequest struct {
	Approve   *bool  `json:"approve" binding:"required"`
	AdminNote string `json:"admin_note"`
}

// AdminVerifyPayment 审核转账凭证：通过进入备货，驳回退回待付款
func (h *Handler) AdminVerifyPayment(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminVerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.VerifyPayment(uint(orderID), *req.Approve, req.AdminNote)
	if err != nil {
		respondAdminOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// AdminShipOrderRequest 发货请求
type AdminShipOrderRequest struct {
	Courier        string `json:"courier" binding:"required"`
	TrackingNumber string `json:"tracking_number" binding:"required"`
	AdminNote      string `json:"admin_note"`
}

// AdminShipOrder 发货
func (h *Handler) AdminShipOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminShipOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.ShipOrder(uint(orderID), service.ShipOrderInput{
		Courier:        req.Courier,
		TrackingNumber: req.TrackingNumber,
		AdminNote:      req.AdminNote,
	})
	if err != nil {
		respondAdminOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// AdminCompleteOrder 完成订单，触发返利结算
func (h *Handler) AdminCompleteOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.CompleteOrder(uint(orderID))
	if err != nil {
		respondAdminOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// AdminCancelOrderRequest 管理端取消订单请求
type AdminCancelOrderRequest struct {
	AdminNote string `json:"admin_note"`
}

// AdminCancelOrder 管理端取消订单
func (h *Handler) AdminCancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req AdminCancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.CancelAdminOrder(uint(orderID), req.AdminNote)
	if err != nil {
		respondAdminOrderError(c, err)
		return
	}
	response.Success(c, order)
}

func respondAdminOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
	case errors.Is(err, service.ErrOrderStatusInvalid):
		respondError(c, response.CodeBadRequest, "error.order_status_conflict", nil)
	case errors.Is(err, service.ErrOrderTotalMismatch):
		respondError(c, response.CodeBadRequest, "error.order_total_mismatch", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}
