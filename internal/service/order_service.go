package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/logger"
	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/queue"
	"github.com/bullion-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
// 订单从待核价开始走固定状态机，付款仅支持银行转账加人工审核。
type OrderService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	cartRepo       repository.CartRepository
	userRepo       repository.UserRepository
	affiliateRepo  repository.AffiliateRepository
	queueClient    *queue.Client
	settingService *SettingService
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	affiliateRepo repository.AffiliateRepository,
	queueClient *queue.Client,
	settingService *SettingService,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		cartRepo:       cartRepo,
		userRepo:       userRepo,
		affiliateRepo:  affiliateRepo,
		queueClient:    queueClient,
		settingService: settingService,
	}
}

// CheckoutItemInput 下单商品项输入
type CheckoutItemInput struct {
	ProductID uint
	Quantity  int
}

// CheckoutInput 下单输入
// FromCart 为 true 时忽略 Items，使用购物车内容并在成功后清空购物车。
type CheckoutInput struct {
	UserID         uint
	FromCart       bool
	Items          []CheckoutItemInput
	RecipientName  string
	RecipientPhone string
	AddressLine    string
	City           string
	Province       string
	PostalCode     string
	BuyerNote      string
	ClientIP       string
}

// ConfirmPricingInput 后台核价输入
type ConfirmPricingInput struct {
	ShippingFee    decimal.Decimal
	DiscountAmount decimal.Decimal
	AdminNote      string
}

// ShipOrderInput 发货输入
type ShipOrderInput struct {
	Courier        string
	TrackingNumber string
	AdminNote      string
}

// Checkout 创建订单（状态从待核价开始）
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	if input.UserID == 0 || s.orderRepo == nil || s.productRepo == nil {
		return nil, ErrNotFound
	}
	if err := validateCheckoutAddress(input); err != nil {
		return nil, err
	}

	items, err := s.resolveCheckoutItems(input)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	currency := s.resolveCurrency()
	affiliateProfileID, affiliateCode, err := s.resolveOrderAffiliate(input.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		OrderNo:            generateOrderNo(),
		UserID:             input.UserID,
		Status:             constants.OrderStatusPendingConfirmation,
		Currency:           currency,
		ShippingFee:        models.NewMoneyFromDecimal(decimal.Zero),
		DiscountAmount:     models.NewMoneyFromDecimal(decimal.Zero),
		RecipientName:      strings.TrimSpace(input.RecipientName),
		RecipientPhone:     strings.TrimSpace(input.RecipientPhone),
		AddressLine:        strings.TrimSpace(input.AddressLine),
		City:               strings.TrimSpace(input.City),
		Province:           strings.TrimSpace(input.Province),
		PostalCode:         strings.TrimSpace(input.PostalCode),
		BuyerNote:          strings.TrimSpace(input.BuyerNote),
		AffiliateProfileID: affiliateProfileID,
		AffiliateCode:      affiliateCode,
		ClientIP:           strings.TrimSpace(input.ClientIP),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		orderItems := make([]models.OrderItem, 0, len(items))
		subTotal := decimal.Zero
		totalWeight := decimal.Zero
		for _, item := range items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return ErrNotFound
			}
			if !product.IsActive {
				return ErrProductInactive
			}
			if item.Quantity <= 0 {
				return ErrQuantityInvalid
			}
			affected, err := productRepo.ConsumeStock(product.ID, item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}

			quantity := decimal.NewFromInt(int64(item.Quantity))
			linePrice := product.PriceAmount.Decimal.Mul(quantity).Round(2)
			lineWeight := product.WeightGrams.Decimal.Mul(quantity).Round(2)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				TitleJSON:   product.TitleJSON,
				Purity:      product.Purity,
				UnitPrice:   product.PriceAmount,
				UnitWeight:  product.WeightGrams,
				Quantity:    item.Quantity,
				TotalPrice:  models.NewMoneyFromDecimal(linePrice),
				TotalWeight: models.NewWeightFromDecimal(lineWeight),
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			subTotal = subTotal.Add(linePrice).Round(2)
			totalWeight = totalWeight.Add(lineWeight).Round(2)
		}

		order.SubTotal = models.NewMoneyFromDecimal(subTotal)
		order.TotalAmount = models.NewMoneyFromDecimal(subTotal)
		order.TotalWeight = models.NewWeightFromDecimal(totalWeight)
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}

		if input.FromCart && s.cartRepo != nil {
			if err := s.cartRepo.WithTx(tx).ClearByUser(input.UserID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// SubmitPaymentProof 用户提交银行转账凭证，订单转入付款审核。
func (s *OrderService) SubmitPaymentProof(userID, orderID uint, proofPath string) (*models.Order, error) {
	if userID == 0 || orderID == 0 || s.orderRepo == nil {
		return nil, ErrOrderNotFound
	}
	proofPath = strings.TrimSpace(proofPath)
	if proofPath == "" {
		return nil, ErrPaymentProofRequired
	}

	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransitionOrderStatus(order.Status, constants.OrderStatusPaymentReview) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	ok, err := s.orderRepo.UpdateStatusFrom(order.ID, order.Status, constants.OrderStatusPaymentReview, map[string]interface{}{
		"payment_proof_path": proofPath,
		"payment_proof_at":   now,
		"updated_at":         now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderStatusInvalid
	}
	s.notifyOrderStatus(order.ID, constants.OrderStatusPaymentReview)
	return s.orderRepo.GetByID(order.ID)
}

// CancelUserOrder 用户取消订单，仅限核价、待付款、付款审核三个状态。
func (s *OrderService) CancelUserOrder(userID, orderID uint) (*models.Order, error) {
	if userID == 0 || orderID == 0 || s.orderRepo == nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.cancelOrder(order, "")
}

// ConfirmPricing 后台核价：确认运费与优惠后订单转入待付款。
func (s *OrderService) ConfirmPricing(orderID uint, input ConfirmPricingInput) (*models.Order, error) {
	if orderID == 0 || s.orderRepo == nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransitionOrderStatus(order.Status, constants.OrderStatusUnpaid) {
		return nil, ErrOrderStatusInvalid
	}

	shippingFee := input.ShippingFee.Round(2)
	discount := input.DiscountAmount.Round(2)
	if shippingFee.LessThan(decimal.Zero) || discount.LessThan(decimal.Zero) {
		return nil, ErrOrderTotalMismatch
	}
	subTotal := order.SubTotal.Decimal.Round(2)
	totalAmount := subTotal.Add(shippingFee).Sub(discount).Round(2)
	if totalAmount.LessThan(decimal.Zero) {
		return nil, ErrOrderTotalMismatch
	}

	now := time.Now()
	ok, err := s.orderRepo.UpdateStatusFrom(order.ID, order.Status, constants.OrderStatusUnpaid, map[string]interface{}{
		"shipping_fee":    shippingFee,
		"discount_amount": discount,
		"total_amount":    totalAmount,
		"admin_note":      strings.TrimSpace(input.AdminNote),
		"confirmed_at":    now,
		"updated_at":      now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderStatusInvalid
	}
	s.notifyOrderStatus(order.ID, constants.OrderStatusUnpaid)
	return s.orderRepo.GetByID(order.ID)
}

// VerifyPayment 后台审核转账凭证。
// 通过后订单进入备货，驳回则退回待付款，等待用户重新提交凭证。
func (s *OrderService) VerifyPayment(orderID uint, approve bool, adminNote string) (*models.Order, error) {
	if orderID == 0 || s.orderRepo == nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPaymentReview {
		return nil, ErrOrderStatusInvalid
	}
	if approve && strings.TrimSpace(order.PaymentProofPath) == "" {
		return nil, ErrPaymentProofRequired
	}

	now := time.Now()
	targetStatus := constants.OrderStatusUnpaid
	updates := map[string]interface{}{
		"admin_note": strings.TrimSpace(adminNote),
		"updated_at": now,
	}
	if approve {
		targetStatus = constants.OrderStatusPreparing
		updates["paid_at"] = now
	}

	ok, err := s.orderRepo.UpdateStatusFrom(order.ID, order.Status, targetStatus, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderStatusInvalid
	}
	s.notifyOrderStatus(order.ID, targetStatus)
	return s.orderRepo.GetByID(order.ID)
}

// ShipOrder 后台发货，备货转入运输。
func (s *OrderService) ShipOrder(orderID uint, input ShipOrderInput) (*models.Order, error) {
	if orderID == 0 || s.orderRepo == nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransitionOrderStatus(order.Status, constants.OrderStatusShipping) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{
		"courier":         strings.TrimSpace(input.Courier),
		"tracking_number": strings.TrimSpace(input.TrackingNumber),
		"shipped_at":      now,
		"updated_at":      now,
	}
	if note := strings.TrimSpace(input.AdminNote); note != "" {
		updates["admin_note"] = note
	}
	ok, err := s.orderRepo.UpdateStatusFrom(order.ID, order.Status, constants.OrderStatusShipping, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderStatusInvalid
	}
	s.notifyOrderStatus(order.ID, constants.OrderStatusShipping)
	return s.orderRepo.GetByID(order.ID)
}

// CompleteOrder 后台完成订单，完成后异步触发佣金入账。
func (s *OrderService) CompleteOrder(orderID uint) (*models.Order, error) {
	if orderID == 0 || s.orderRepo == nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransitionOrderStatus(order.Status, constants.OrderStatusCompleted) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	ok, err := s.orderRepo.UpdateStatusFrom(order.ID, order.Status, constants.OrderStatusCompleted, map[string]interface{}{
		"completed_at": now,
		"updated_at":   now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderStatusInvalid
	}

	s.notifyOrderStatus(order.ID, constants.OrderStatusCompleted)
	if s.queueClient != nil && order.AffiliateProfileID != nil && *order.AffiliateProfileID > 0 {
		if err := s.queueClient.EnqueueOrderCommission(queue.OrderCommissionPayload{OrderID: order.ID}); err != nil {
			logger.Warnw("order_enqueue_commission_failed",
				"order_id", order.ID,
				"error", err,
			)
		}
	}
	return s.orderRepo.GetByID(order.ID)
}

// CancelAdminOrder 后台取消订单
func (s *OrderService) CancelAdminOrder(orderID uint, adminNote string) (*models.Order, error) {
	if orderID == 0 || s.orderRepo == nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.cancelOrder(order, adminNote)
}

// cancelOrder 执行取消：回补库存后落终态
func (s *OrderService) cancelOrder(order *models.Order, adminNote string) (*models.Order, error) {
	if !IsCancelableOrderStatus(order.Status) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		updates := map[string]interface{}{
			"canceled_at": now,
			"updated_at":  now,
		}
		if note := strings.TrimSpace(adminNote); note != "" {
			updates["admin_note"] = note
		}
		ok, err := orderRepo.UpdateStatusFrom(order.ID, order.Status, constants.OrderStatusCanceled, updates)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderStatusInvalid
		}

		if s.productRepo != nil {
			productRepo := s.productRepo.WithTx(tx)
			for _, item := range order.Items {
				if _, err := productRepo.ReleaseStock(item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyOrderStatus(order.ID, constants.OrderStatusCanceled)
	return s.orderRepo.GetByID(order.ID)
}

// resolveCheckoutItems 整理下单商品项（购物车或直接提交）
func (s *OrderService) resolveCheckoutItems(input CheckoutInput) ([]CheckoutItemInput, error) {
	if input.FromCart {
		if s.cartRepo == nil {
			return nil, ErrCartEmpty
		}
		cartItems, err := s.cartRepo.ListByUser(input.UserID)
		if err != nil {
			return nil, err
		}
		items := make([]CheckoutItemInput, 0, len(cartItems))
		for _, cartItem := range cartItems {
			items = append(items, CheckoutItemInput{
				ProductID: cartItem.ProductID,
				Quantity:  cartItem.Quantity,
			})
		}
		return items, nil
	}

	items := make([]CheckoutItemInput, 0, len(input.Items))
	seen := make(map[uint]int)
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, ErrQuantityInvalid
		}
		if idx, ok := seen[item.ProductID]; ok {
			items[idx].Quantity += item.Quantity
			continue
		}
		seen[item.ProductID] = len(items)
		items = append(items, item)
	}
	return items, nil
}

// resolveOrderAffiliate 取用户注册归属的推广档案作为订单归因快照
func (s *OrderService) resolveOrderAffiliate(userID uint) (*uint, string, error) {
	if s.userRepo == nil || s.affiliateRepo == nil {
		return nil, "", nil
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.ReferredByProfileID == nil || *user.ReferredByProfileID == 0 {
		return nil, "", nil
	}
	profile, err := s.affiliateRepo.GetProfileByID(*user.ReferredByProfileID)
	if err != nil {
		return nil, "", err
	}
	if profile == nil {
		return nil, "", nil
	}
	// 自推自买不留归因
	if profile.UserID == userID {
		return nil, "", nil
	}
	profileID := profile.ID
	return &profileID, profile.ReferralCode, nil
}

func (s *OrderService) resolveCurrency() string {
	if s.settingService == nil {
		return constants.SiteCurrencyDefault
	}
	currency := strings.TrimSpace(s.settingService.GetSiteCurrency())
	if currency == "" {
		return constants.SiteCurrencyDefault
	}
	return currency
}

// notifyOrderStatus 异步发送状态变更邮件，失败只记录日志不影响主流程。
func (s *OrderService) notifyOrderStatus(orderID uint, status string) {
	skipped, err := enqueueOrderStatusEmailTaskIfEligible(s.orderRepo, s.queueClient, orderID, status)
	if err != nil {
		logger.Warnw("order_enqueue_status_email_failed",
			"order_id", orderID,
			"status", status,
			"error", err,
		)
		return
	}
	if skipped {
		logger.Debugw("order_status_email_skipped",
			"order_id", orderID,
			"status", status,
		)
	}
}

func validateCheckoutAddress(input CheckoutInput) error {
	if strings.TrimSpace(input.RecipientName) == "" ||
		strings.TrimSpace(input.RecipientPhone) == "" ||
		strings.TrimSpace(input.AddressLine) == "" {
		return ErrAddressRequired
	}
	return nil
}

// generateOrderNo 生成订单号（同时作为发票号）
func generateOrderNo() string {
	now := time.Now()
	suffix := make([]byte, 0, 6)
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			suffix = append(suffix, '0')
			continue
		}
		suffix = append(suffix, digits[n.Int64()])
	}
	return fmt.Sprintf("INV%s%s", now.Format("20060102150405"), string(suffix))
}
