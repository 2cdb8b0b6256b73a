package public

import (
	"strconv"
	"strings"

	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/repository"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemRequest 订单项请求
type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CheckoutRequest 创建订单请求
// from_cart 为 true 时使用购物车内容并忽略 items。
type CheckoutRequest struct {
	FromCart       bool               `json:"from_cart"`
	Items          []OrderItemRequest `json:"items"`
	RecipientName  string             `json:"recipient_name" binding:"required"`
	RecipientPhone string             `json:"recipient_phone" binding:"required"`
	AddressLine    string             `json:"address_line" binding:"required"`
	City           string             `json:"city"`
	Province       string             `json:"province"`
	PostalCode     string             `json:"postal_code"`
	BuyerNote      string             `json:"buyer_note"`
}

// CreateOrder 创建订单，订单号同时作为发票号。
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	items := make([]service.CheckoutItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CheckoutItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.OrderService.Checkout(service.CheckoutInput{
		UserID:         uid,
		FromCart:       req.FromCart,
		Items:          items,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		AddressLine:    req.AddressLine,
		City:           req.City,
		Province:       req.Province,
		PostalCode:     req.PostalCode,
		BuyerNote:      req.BuyerNote,
		ClientIP:       c.ClientIP(),
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	response.Success(c, order)
}

// ListOrders 获取当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListOrdersByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondOrderActionError(c, err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetOrderByUser(uint(orderID), uid)
	if err != nil {
		respondOrderActionError(c, err)
		return
	}
	response.Success(c, order)
}

// GetOrderByOrderNo 按订单号（发票号）获取订单详情
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetOrderByUserOrderNo(orderNo, uid)
	if err != nil {
		respondOrderActionError(c, err)
		return
	}
	response.Success(c, order)
}

// SubmitPaymentProofRequest 提交转账凭证请求
type SubmitPaymentProofRequest struct {
	ProofPath string `json:"proof_path" binding:"required"`
}

// SubmitPaymentProof 提交银行转账凭证，订单转入付款审核。
func (h *Handler) SubmitPaymentProof(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req SubmitPaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.SubmitPaymentProof(uid, uint(orderID), req.ProofPath)
	if err != nil {
		respondOrderActionError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder 用户取消订单
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.CancelUserOrder(uid, uint(orderID))
	if err != nil {
		respondOrderActionError(c, err)
		return
	}
	response.Success(c, order)
}
