package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestCheckoutAggregateTotalsAndWeight(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	buyer := createOrderTestUser(t, db, "buyer-totals@example.com", nil)
	bar := createOrderTestProduct(t, db, "silver-bar-100g", "1550000", "100", 10, true)
	coin := createOrderTestProduct(t, db, "silver-coin-1oz", "520000", "31.1", 10, true)

	order, err := svc.Checkout(CheckoutInput{
		UserID: buyer.ID,
		Items: []CheckoutItemInput{
			{ProductID: bar.ID, Quantity: 2},
			{ProductID: coin.ID, Quantity: 1},
			{ProductID: bar.ID, Quantity: 1}, // 重复商品应合并
		},
		RecipientName:  "Budi",
		RecipientPhone: "0812000111",
		AddressLine:    "Jl. Sudirman 1",
		City:           "Jakarta",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Status != constants.OrderStatusPendingConfirmation {
		t.Fatalf("expected pending confirmation, got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "INV") {
		t.Fatalf("unexpected order no: %s", order.OrderNo)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected merged into 2 items, got %d", len(order.Items))
	}
	// 3 * 1,550,000 + 1 * 520,000 = 5,170,000
	if !order.SubTotal.Decimal.Equal(decimal.RequireFromString("5170000")) {
		t.Fatalf("unexpected sub total: %s", order.SubTotal.Decimal)
	}
	if !order.TotalAmount.Decimal.Equal(order.SubTotal.Decimal) {
		t.Fatalf("expected total equals sub total before pricing, got %s", order.TotalAmount.Decimal)
	}
	// 3 * 100g + 1 * 31.1g = 331.1g
	if !order.TotalWeight.Decimal.Equal(decimal.RequireFromString("331.1")) {
		t.Fatalf("unexpected total weight: %s", order.TotalWeight.Decimal)
	}

	reloaded := reloadOrderTestProduct(t, db, bar.ID)
	if reloaded.StockSold != 3 {
		t.Fatalf("expected 3 sold for bar, got %d", reloaded.StockSold)
	}
}

func TestCheckoutFromCartClearCart(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	buyer := createOrderTestUser(t, db, "buyer-cart@example.com", nil)
	bar := createOrderTestProduct(t, db, "cart-silver-bar", "1000000", "100", 5, true)
	if err := db.Create(&models.CartItem{UserID: buyer.ID, ProductID: bar.ID, Quantity: 2}).Error; err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	order, err := svc.Checkout(CheckoutInput{
		UserID:         buyer.ID,
		FromCart:       true,
		RecipientName:  "Budi",
		RecipientPhone: "0812000111",
		AddressLine:    "Jl. Sudirman 1",
	})
	if err != nil {
		t.Fatalf("checkout from cart failed: %v", err)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}

	var remaining int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected cart cleared, got %d items", remaining)
	}
}

func TestCheckoutValidateInput(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	buyer := createOrderTestUser(t, db, "buyer-invalid@example.com", nil)
	active := createOrderTestProduct(t, db, "valid-product", "100000", "10", 5, true)
	inactive := createOrderTestProduct(t, db, "inactive-product", "100000", "10", 5, false)

	address := CheckoutInput{
		UserID:         buyer.ID,
		RecipientName:  "Budi",
		RecipientPhone: "0812000111",
		AddressLine:    "Jl. Sudirman 1",
	}

	noAddress := address
	noAddress.AddressLine = "  "
	noAddress.Items = []CheckoutItemInput{{ProductID: active.ID, Quantity: 1}}
	if _, err := svc.Checkout(noAddress); !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("expected ErrAddressRequired, got %v", err)
	}

	empty := address
	if _, err := svc.Checkout(empty); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	badQuantity := address
	badQuantity.Items = []CheckoutItemInput{{ProductID: active.ID, Quantity: 0}}
	if _, err := svc.Checkout(badQuantity); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}

	offShelf := address
	offShelf.Items = []CheckoutItemInput{{ProductID: inactive.ID, Quantity: 1}}
	if _, err := svc.Checkout(offShelf); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("expected ErrProductInactive, got %v", err)
	}
}

func TestCheckoutInsufficientStockRollback(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	buyer := createOrderTestUser(t, db, "buyer-stock@example.com", nil)
	low := createOrderTestProduct(t, db, "low-stock-bar", "100000", "10", 2, true)
	normal := createOrderTestProduct(t, db, "normal-stock-bar", "100000", "10", 10, true)

	_, err := svc.Checkout(CheckoutInput{
		UserID: buyer.ID,
		Items: []CheckoutItemInput{
			{ProductID: normal.ID, Quantity: 1},
			{ProductID: low.ID, Quantity: 3},
		},
		RecipientName:  "Budi",
		RecipientPhone: "0812000111",
		AddressLine:    "Jl. Sudirman 1",
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// 事务回滚后已扣库存应恢复
	if reloaded := reloadOrderTestProduct(t, db, normal.ID); reloaded.StockSold != 0 {
		t.Fatalf("expected stock rollback, got sold %d", reloaded.StockSold)
	}
	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no order created, got %d", orderCount)
	}
}

func TestCheckoutUnlimitedStockProduct(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	buyer := createOrderTestUser(t, db, "buyer-unlimited@example.com", nil)
	unlimited := createOrderTestProduct(t, db, "unlimited-gift", "80000", "10", 0, true)

	order, err := svc.Checkout(CheckoutInput{
		UserID:         buyer.ID,
		Items:          []CheckoutItemInput{{ProductID: unlimited.ID, Quantity: 100}},
		RecipientName:  "Budi",
		RecipientPhone: "0812000111",
		AddressLine:    "Jl. Sudirman 1",
	})
	if err != nil {
		t.Fatalf("checkout unlimited product failed: %v", err)
	}
	if order.Items[0].Quantity != 100 {
		t.Fatalf("unexpected quantity: %d", order.Items[0].Quantity)
	}
}

func TestCheckoutSnapshotReferrerAttribution(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	promoter := createOrderTestUser(t, db, "promoter@example.com", nil)
	profile := models.AffiliateProfile{
		UserID:       promoter.ID,
		ReferralCode: "PROMO123",
		Status:       constants.AffiliateProfileStatusActive,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile failed: %v", err)
	}

	buyer := createOrderTestUser(t, db, "referred-buyer@example.com", &profile.ID)
	bar := createOrderTestProduct(t, db, "referred-bar", "100000", "10", 5, true)

	order, err := svc.Checkout(CheckoutInput{
		UserID:         buyer.ID,
		Items:          []CheckoutItemInput{{ProductID: bar.ID, Quantity: 1}},
		RecipientName:  "Rina",
		RecipientPhone: "0812000222",
		AddressLine:    "Jl. Thamrin 2",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.AffiliateProfileID == nil || *order.AffiliateProfileID != profile.ID {
		t.Fatalf("expected affiliate attribution, got %+v", order.AffiliateProfileID)
	}
	if order.AffiliateCode != "PROMO123" {
		t.Fatalf("unexpected affiliate code snapshot: %s", order.AffiliateCode)
	}

	// 推广人自己下单不留归因
	selfOrder, err := svc.Checkout(CheckoutInput{
		UserID:         promoter.ID,
		Items:          []CheckoutItemInput{{ProductID: bar.ID, Quantity: 1}},
		RecipientName:  "Agus",
		RecipientPhone: "0812000333",
		AddressLine:    "Jl. Gatot Subroto 3",
	})
	if err != nil {
		t.Fatalf("self checkout failed: %v", err)
	}
	if selfOrder.AffiliateProfileID != nil || selfOrder.AffiliateCode != "" {
		t.Fatalf("expected no self attribution, got %+v %q", selfOrder.AffiliateProfileID, selfOrder.AffiliateCode)
	}
}

func TestConfirmPricingRecalculateTotal(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	order := checkoutOrderTestFixture(t, svc, db, "pricing@example.com", "1000000", 1)

	priced, err := svc.ConfirmPricing(order.ID, ConfirmPricingInput{
		ShippingFee:    decimal.RequireFromString("45000"),
		DiscountAmount: decimal.RequireFromString("20000"),
		AdminNote:      "ongkir JNE reguler",
	})
	if err != nil {
		t.Fatalf("confirm pricing failed: %v", err)
	}
	if priced.Status != constants.OrderStatusUnpaid {
		t.Fatalf("expected unpaid after pricing, got %s", priced.Status)
	}
	if !priced.TotalAmount.Decimal.Equal(decimal.RequireFromString("1025000")) {
		t.Fatalf("unexpected total: %s", priced.TotalAmount.Decimal)
	}
	if priced.ConfirmedAt == nil {
		t.Fatalf("expected confirmed_at set")
	}

	// 优惠超过应付金额应被拒绝
	other := checkoutOrderTestFixture(t, svc, db, "pricing-negative@example.com", "100000", 1)
	_, err = svc.ConfirmPricing(other.ID, ConfirmPricingInput{
		ShippingFee:    decimal.Zero,
		DiscountAmount: decimal.RequireFromString("200000"),
	})
	if !errors.Is(err, ErrOrderTotalMismatch) {
		t.Fatalf("expected ErrOrderTotalMismatch, got %v", err)
	}

	// 已核价订单不可重复核价
	if _, err := svc.ConfirmPricing(priced.ID, ConfirmPricingInput{}); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid on re-pricing, got %v", err)
	}
}

func TestSubmitPaymentProofTransition(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	order := checkoutOrderTestFixture(t, svc, db, "proof@example.com", "500000", 1)

	// 核价前不可提交凭证
	if _, err := svc.SubmitPaymentProof(order.UserID, order.ID, "/uploads/payment_proof/a.jpg"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid before pricing, got %v", err)
	}

	if _, err := svc.ConfirmPricing(order.ID, ConfirmPricingInput{}); err != nil {
		t.Fatalf("confirm pricing failed: %v", err)
	}

	if _, err := svc.SubmitPaymentProof(order.UserID, order.ID, "   "); !errors.Is(err, ErrPaymentProofRequired) {
		t.Fatalf("expected ErrPaymentProofRequired, got %v", err)
	}

	reviewed, err := svc.SubmitPaymentProof(order.UserID, order.ID, "/uploads/payment_proof/a.jpg")
	if err != nil {
		t.Fatalf("submit proof failed: %v", err)
	}
	if reviewed.Status != constants.OrderStatusPaymentReview {
		t.Fatalf("expected payment review, got %s", reviewed.Status)
	}
	if reviewed.PaymentProofPath == "" || reviewed.PaymentProofAt == nil {
		t.Fatalf("expected proof snapshot, got %+v", reviewed)
	}

	// 他人订单不可提交
	stranger := createOrderTestUser(t, db, "stranger@example.com", nil)
	if _, err := svc.SubmitPaymentProof(stranger.ID, order.ID, "/uploads/payment_proof/b.jpg"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}
}

func TestVerifyPaymentApproveAndReject(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	order := checkoutOrderTestFixture(t, svc, db, "verify@example.com", "500000", 1)
	if _, err := svc.ConfirmPricing(order.ID, ConfirmPricingInput{}); err != nil {
		t.Fatalf("confirm pricing failed: %v", err)
	}
	if _, err := svc.SubmitPaymentProof(order.UserID, order.ID, "/uploads/payment_proof/a.jpg"); err != nil {
		t.Fatalf("submit proof failed: %v", err)
	}

	// 驳回退回待付款，允许重新提交
	rejected, err := svc.VerifyPayment(order.ID, false, "金额不符")
	if err != nil {
		t.Fatalf("reject payment failed: %v", err)
	}
	if rejected.Status != constants.OrderStatusUnpaid {
		t.Fatalf("expected back to unpaid, got %s", rejected.Status)
	}
	if rejected.PaidAt != nil {
		t.Fatalf("expected no paid_at after reject")
	}

	if _, err := svc.SubmitPaymentProof(order.UserID, order.ID, "/uploads/payment_proof/b.jpg"); err != nil {
		t.Fatalf("resubmit proof failed: %v", err)
	}
	approved, err := svc.VerifyPayment(order.ID, true, "")
	if err != nil {
		t.Fatalf("approve payment failed: %v", err)
	}
	if approved.Status != constants.OrderStatusPreparing {
		t.Fatalf("expected preparing, got %s", approved.Status)
	}
	if approved.PaidAt == nil {
		t.Fatalf("expected paid_at set")
	}

	// 非审核状态不可审核
	if _, err := svc.VerifyPayment(order.ID, true, ""); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}
}

func TestShipAndCompleteOrder(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	order := checkoutOrderTestFixture(t, svc, db, "ship@example.com", "500000", 1)
	if _, err := svc.ConfirmPricing(order.ID, ConfirmPricingInput{}); err != nil {
		t.Fatalf("confirm pricing failed: %v", err)
	}
	if _, err := svc.SubmitPaymentProof(order.UserID, order.ID, "/uploads/payment_proof/a.jpg"); err != nil {
		t.Fatalf("submit proof failed: %v", err)
	}
	if _, err := svc.VerifyPayment(order.ID, true, ""); err != nil {
		t.Fatalf("approve payment failed: %v", err)
	}

	// 备货前不能完成
	if _, err := svc.CompleteOrder(order.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid before shipping, got %v", err)
	}

	shipped, err := svc.ShipOrder(order.ID, ShipOrderInput{
		Courier:        "JNE",
		TrackingNumber: "JNE123456789",
	})
	if err != nil {
		t.Fatalf("ship order failed: %v", err)
	}
	if shipped.Status != constants.OrderStatusShipping || shipped.TrackingNumber != "JNE123456789" {
		t.Fatalf("unexpected shipped order: %+v", shipped)
	}
	if shipped.ShippedAt == nil {
		t.Fatalf("expected shipped_at set")
	}

	completed, err := svc.CompleteOrder(order.ID)
	if err != nil {
		t.Fatalf("complete order failed: %v", err)
	}
	if completed.Status != constants.OrderStatusCompleted || completed.CompletedAt == nil {
		t.Fatalf("unexpected completed order: %+v", completed)
	}
}

func TestCancelOrderReleaseStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	buyer := createOrderTestUser(t, db, "cancel@example.com", nil)
	bar := createOrderTestProduct(t, db, "cancel-bar", "100000", "10", 5, true)
	order, err := svc.Checkout(CheckoutInput{
		UserID:         buyer.ID,
		Items:          []CheckoutItemInput{{ProductID: bar.ID, Quantity: 2}},
		RecipientName:  "Budi",
		RecipientPhone: "0812000111",
		AddressLine:    "Jl. Sudirman 1",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if reloaded := reloadOrderTestProduct(t, db, bar.ID); reloaded.StockSold != 2 {
		t.Fatalf("expected 2 sold, got %d", reloaded.StockSold)
	}

	canceled, err := svc.CancelUserOrder(buyer.ID, order.ID)
	if err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if canceled.Status != constants.OrderStatusCanceled || canceled.CanceledAt == nil {
		t.Fatalf("unexpected canceled order: %+v", canceled)
	}
	if reloaded := reloadOrderTestProduct(t, db, bar.ID); reloaded.StockSold != 0 {
		t.Fatalf("expected stock released, got sold %d", reloaded.StockSold)
	}

	// 终态订单不可再取消
	if _, err := svc.CancelUserOrder(buyer.ID, order.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}
}

func TestOrderStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.OrderStatusPendingConfirmation, constants.OrderStatusUnpaid, true},
		{constants.OrderStatusPendingConfirmation, constants.OrderStatusPreparing, false},
		{constants.OrderStatusUnpaid, constants.OrderStatusPaymentReview, true},
		{constants.OrderStatusPaymentReview, constants.OrderStatusPreparing, true},
		{constants.OrderStatusPaymentReview, constants.OrderStatusUnpaid, true},
		{constants.OrderStatusPreparing, constants.OrderStatusShipping, true},
		{constants.OrderStatusPreparing, constants.OrderStatusCanceled, false},
		{constants.OrderStatusShipping, constants.OrderStatusCompleted, true},
		{constants.OrderStatusShipping, constants.OrderStatusCanceled, false},
		{constants.OrderStatusCompleted, constants.OrderStatusShipping, false},
		{constants.OrderStatusCanceled, constants.OrderStatusUnpaid, false},
	}
	for _, tc := range cases {
		if got := CanTransitionOrderStatus(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("transition %s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}

	if !IsTerminalOrderStatus(constants.OrderStatusCompleted) || !IsTerminalOrderStatus(constants.OrderStatusCanceled) {
		t.Fatalf("expected completed/canceled terminal")
	}
	if IsTerminalOrderStatus(constants.OrderStatusShipping) {
		t.Fatalf("shipping should not be terminal")
	}
}

func TestGenerateOrderNoFormat(t *testing.T) {
	orderNo := generateOrderNo()
	if !strings.HasPrefix(orderNo, "INV") {
		t.Fatalf("expected INV prefix, got %s", orderNo)
	}
	// INV + 14 位时间戳 + 6 位随机数字
	if len(orderNo) != 3+14+6 {
		t.Fatalf("unexpected order no length: %s", orderNo)
	}
	for _, r := range orderNo[3:] {
		if r < '0' || r > '9' {
			t.Fatalf("unexpected character in order no: %s", orderNo)
		}
	}
}

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:order_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.AffiliateProfile{},
		&models.AffiliateClick{},
		&models.CommissionRecord{},
		&models.FactoryPaymentBatch{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		repository.NewAffiliateRepository(db),
		nil,
		NewSettingService(repository.NewSettingRepository(db)),
	)
	return svc, db
}

func createOrderTestUser(t *testing.T, db *gorm.DB, email string, referredBy *uint) models.User {
	t.Helper()

	row := models.User{
		Email:               email,
		PasswordHash:        "hash",
		DisplayName:         "tester",
		Status:              constants.UserStatusActive,
		ReferredByProfileID: referredBy,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return row
}

func createOrderTestProduct(t *testing.T, db *gorm.DB, slug, price, weight string, stockTotal int, active bool) models.Product {
	t.Helper()

	row := models.Product{
		CategoryID:  1,
		Slug:        slug,
		TitleJSON:   models.JSON{"id-ID": slug},
		Purity:      "999",
		WeightGrams: models.NewWeightFromDecimal(decimal.RequireFromString(weight)),
		PriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		StockTotal:  stockTotal,
		IsActive:    active,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return row
}

func reloadOrderTestProduct(t *testing.T, db *gorm.DB, id uint) models.Product {
	t.Helper()

	var row models.Product
	if err := db.First(&row, id).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	return row
}

// checkoutOrderTestFixture 创建单品订单用于状态流转测试
func checkoutOrderTestFixture(t *testing.T, svc *OrderService, db *gorm.DB, email, price string, quantity int) *models.Order {
	t.Helper()

	buyer := createOrderTestUser(t, db, email, nil)
	product := createOrderTestProduct(t, db, "fixture-"+email, price, "100", 10, true)
	order, err := svc.Checkout(CheckoutInput{
		UserID:         buyer.ID,
		Items:          []CheckoutItemInput{{ProductID: product.ID, Quantity: quantity}},
		RecipientName:  "Budi",
		RecipientPhone: "0812000111",
		AddressLine:    "Jl. Sudirman 1",
	})
	if err != nil {
		t.Fatalf("checkout fixture failed: %v", err)
	}
	return order
}
