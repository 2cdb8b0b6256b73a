package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestEnableAffiliateCreateActiveProfile(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	user := createAffiliateTestUser(t, db, "affiliate-open@example.com", "Budi Santoso")
	profile, err := svc.EnableAffiliate(user.ID)
	if err != nil {
		t.Fatalf("enable affiliate failed: %v", err)
	}
	if profile == nil || profile.UserID != user.ID {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.Status != constants.AffiliateProfileStatusActive {
		t.Fatalf("expected active profile, got %s", profile.Status)
	}
	if len(profile.ReferralCode) == 0 {
		t.Fatalf("expected generated referral code")
	}

	again, err := svc.EnableAffiliate(user.ID)
	if err != nil {
		t.Fatalf("re-enable affiliate failed: %v", err)
	}
	if again == nil || again.ID != profile.ID || again.ReferralCode != profile.ReferralCode {
		t.Fatalf("expected idempotent enable, first=%+v second=%+v", profile, again)
	}
}

func TestResolveReferrerRejectInvalidOrDisabledCode(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	if _, err := svc.ResolveReferrer("NO-SUCH-CODE"); !errors.Is(err, ErrReferralCodeInvalid) {
		t.Fatalf("expected ErrReferralCodeInvalid for unknown code, got %v", err)
	}

	promoter := createAffiliateTestUser(t, db, "affiliate-disabled@example.com", "Sari")
	createAffiliateTestProfile(t, db, promoter.ID, "SARI2233", constants.AffiliateProfileStatusDisabled)
	if _, err := svc.ResolveReferrer("sari2233"); !errors.Is(err, ErrReferralCodeInvalid) {
		t.Fatalf("expected ErrReferralCodeInvalid for disabled profile, got %v", err)
	}

	active := createAffiliateTestUser(t, db, "affiliate-active@example.com", "Dewi")
	profile := createAffiliateTestProfile(t, db, active.ID, "DEWI4455", constants.AffiliateProfileStatusActive)
	resolved, err := svc.ResolveReferrer("  dewi4455  ")
	if err != nil {
		t.Fatalf("resolve active referrer failed: %v", err)
	}
	if resolved == nil || resolved.ID != profile.ID {
		t.Fatalf("unexpected resolved profile: %+v", resolved)
	}
}

func TestHandleOrderCompletedCreateCommissionOnce(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	promoter := createAffiliateTestUser(t, db, "affiliate-promoter@example.com", "Agus")
	buyer := createAffiliateTestUser(t, db, "affiliate-buyer@example.com", "Rina")
	profile := createAffiliateTestProfile(t, db, promoter.ID, "AGUS7788", constants.AffiliateProfileStatusActive)
	order := createAffiliateTestOrder(t, db, buyer.ID, &profile.ID, constants.OrderStatusCompleted, "1000000")

	if err := svc.HandleOrderCompleted(order.ID); err != nil {
		t.Fatalf("handle order completed failed: %v", err)
	}

	var records []models.CommissionRecord
	if err := db.Where("order_id = ?", order.ID).Find(&records).Error; err != nil {
		t.Fatalf("load commission records failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one commission record, got %d", len(records))
	}
	// 默认佣金比例 2.5%：1,000,000 * 2.5% = 25,000
	if !records[0].Amount.Decimal.Equal(decimal.RequireFromString("25000")) {
		t.Fatalf("unexpected commission amount: %s", records[0].Amount.Decimal)
	}
	if records[0].AffiliateProfileID != profile.ID || records[0].OrderNo != order.OrderNo {
		t.Fatalf("unexpected commission record: %+v", records[0])
	}

	// 重复触发不重复入账
	if err := svc.HandleOrderCompleted(order.ID); err != nil {
		t.Fatalf("replay handle order completed failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.CommissionRecord{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		t.Fatalf("count commission records failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected commission recorded once, got %d", count)
	}
}

func TestHandleOrderCompletedSkipSelfReferralAndUnfinishedOrder(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	promoter := createAffiliateTestUser(t, db, "affiliate-selfbuy@example.com", "Tono")
	profile := createAffiliateTestProfile(t, db, promoter.ID, "TONO1122", constants.AffiliateProfileStatusActive)

	selfOrder := createAffiliateTestOrder(t, db, promoter.ID, &profile.ID, constants.OrderStatusCompleted, "500000")
	if err := svc.HandleOrderCompleted(selfOrder.ID); err != nil {
		t.Fatalf("handle self order failed: %v", err)
	}

	buyer := createAffiliateTestUser(t, db, "affiliate-early@example.com", "Lina")
	shippingOrder := createAffiliateTestOrder(t, db, buyer.ID, &profile.ID, constants.OrderStatusShipping, "500000")
	if err := svc.HandleOrderCompleted(shippingOrder.ID); err != nil {
		t.Fatalf("handle shipping order failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CommissionRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count commission records failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no commission for self referral or unfinished order, got %d", count)
	}
}

func TestGetBalanceSubtractPaidAndPendingPayouts(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	promoter := createAffiliateTestUser(t, db, "affiliate-balance@example.com", "Wati")
	profile := createAffiliateTestProfile(t, db, promoter.ID, "WATI3344", constants.AffiliateProfileStatusActive)

	createAffiliateTestCommission(t, db, profile.ID, 9001, "60000")
	createAffiliateTestCommission(t, db, profile.ID, 9002, "40000")
	createAffiliateTestPayout(t, db, profile.ID, "30000", constants.PayoutStatusProcessed)
	createAffiliateTestPayout(t, db, profile.ID, "20000", constants.PayoutStatusPending)
	createAffiliateTestPayout(t, db, profile.ID, "15000", constants.PayoutStatusRejected)

	balance, err := svc.GetBalance(profile.ID)
	if err != nil {
		t.Fatalf("get balance failed: %v", err)
	}
	if !balance.TotalCommission.Decimal.Equal(decimal.RequireFromString("100000")) {
		t.Fatalf("unexpected total commission: %s", balance.TotalCommission.Decimal)
	}
	if !balance.PaidPayout.Decimal.Equal(decimal.RequireFromString("30000")) {
		t.Fatalf("unexpected paid payout: %s", balance.PaidPayout.Decimal)
	}
	if !balance.PendingPayout.Decimal.Equal(decimal.RequireFromString("20000")) {
		t.Fatalf("unexpected pending payout: %s", balance.PendingPayout.Decimal)
	}
	// 被驳回的提现不占用余额
	if !balance.Available.Decimal.Equal(decimal.RequireFromString("50000")) {
		t.Fatalf("unexpected available balance: %s", balance.Available.Decimal)
	}
}

func TestApplyPayoutValidateAmountAndBalance(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	promoter := createAffiliateTestUser(t, db, "affiliate-payout@example.com", "Eka")
	profile := createAffiliateTestProfile(t, db, promoter.ID, "EKA55667", constants.AffiliateProfileStatusActive)
	createAffiliateTestCommission(t, db, profile.ID, 9101, "50000")

	input := PayoutApplyInput{
		Amount:            decimal.RequireFromString("5000"),
		BankName:          "BCA",
		BankAccountNumber: "1234567890",
		BankAccountHolder: "Eka Putri",
	}
	if _, err := svc.ApplyPayout(promoter.ID, input); !errors.Is(err, ErrPayoutBelowMinimum) {
		t.Fatalf("expected ErrPayoutBelowMinimum, got %v", err)
	}

	input.Amount = decimal.RequireFromString("60000")
	if _, err := svc.ApplyPayout(promoter.ID, input); !errors.Is(err, ErrPayoutInsufficientBalance) {
		t.Fatalf("expected ErrPayoutInsufficientBalance, got %v", err)
	}

	input.Amount = decimal.RequireFromString("30000")
	input.BankAccountNumber = "   "
	if _, err := svc.ApplyPayout(promoter.ID, input); !errors.Is(err, ErrBankAccountRequired) {
		t.Fatalf("expected ErrBankAccountRequired, got %v", err)
	}

	input.BankAccountNumber = "1234567890"
	payout, err := svc.ApplyPayout(promoter.ID, input)
	if err != nil {
		t.Fatalf("apply payout failed: %v", err)
	}
	if payout == nil || payout.Status != constants.PayoutStatusPending {
		t.Fatalf("expected pending payout, got %+v", payout)
	}
	if !payout.Amount.Decimal.Equal(decimal.RequireFromString("30000")) {
		t.Fatalf("unexpected payout amount: %s", payout.Amount.Decimal)
	}

	// 待处理申请占用余额：剩余 20,000，再申请 30,000 应被拒绝
	if _, err := svc.ApplyPayout(promoter.ID, input); !errors.Is(err, ErrPayoutInsufficientBalance) {
		t.Fatalf("expected ErrPayoutInsufficientBalance after pending payout, got %v", err)
	}
}

func TestApplyPayoutRequireOpenedProfile(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	user := createAffiliateTestUser(t, db, "affiliate-unopened@example.com", "Joko")
	input := PayoutApplyInput{
		Amount:            decimal.RequireFromString("20000"),
		BankName:          "BCA",
		BankAccountNumber: "1234567890",
		BankAccountHolder: "Joko",
	}
	if _, err := svc.ApplyPayout(user.ID, input); !errors.Is(err, ErrAffiliateNotOpened) {
		t.Fatalf("expected ErrAffiliateNotOpened, got %v", err)
	}
}

func TestReviewPayoutTransitions(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	promoter := createAffiliateTestUser(t, db, "affiliate-review@example.com", "Maya")
	profile := createAffiliateTestProfile(t, db, promoter.ID, "MAYA8899", constants.AffiliateProfileStatusActive)
	pending := createAffiliateTestPayout(t, db, profile.ID, "25000", constants.PayoutStatusPending)

	// 标记打款必须附转账凭证
	if _, err := svc.ReviewPayout(1, pending.ID, PayoutReviewInput{Action: constants.PayoutActionProcess}); !errors.Is(err, ErrPayoutProofRequired) {
		t.Fatalf("expected ErrPayoutProofRequired, got %v", err)
	}

	processed, err := svc.ReviewPayout(1, pending.ID, PayoutReviewInput{
		Action:    constants.PayoutActionProcess,
		ProofPath: "/uploads/payout_proof/2026/01/proof.jpg",
	})
	if err != nil {
		t.Fatalf("process payout failed: %v", err)
	}
	if processed.Status != constants.PayoutStatusProcessed || processed.ProofPath == "" {
		t.Fatalf("unexpected processed payout: %+v", processed)
	}
	if processed.ReviewedByAdminID == nil || *processed.ReviewedByAdminID != 1 || processed.ReviewedAt == nil {
		t.Fatalf("expected reviewer snapshot, got %+v", processed)
	}

	// 已终态的申请不可再次审核
	if _, err := svc.ReviewPayout(1, pending.ID, PayoutReviewInput{Action: constants.PayoutActionReject, RejectReason: "dup"}); !errors.Is(err, ErrPayoutStatusInvalid) {
		t.Fatalf("expected ErrPayoutStatusInvalid on re-review, got %v", err)
	}

	other := createAffiliateTestPayout(t, db, profile.ID, "12000", constants.PayoutStatusPending)
	rejected, err := svc.ReviewPayout(2, other.ID, PayoutReviewInput{
		Action:       constants.PayoutActionReject,
		RejectReason: "账户信息不符",
	})
	if err != nil {
		t.Fatalf("reject payout failed: %v", err)
	}
	if rejected.Status != constants.PayoutStatusRejected || rejected.RejectReason != "账户信息不符" {
		t.Fatalf("unexpected rejected payout: %+v", rejected)
	}
}

func TestUpdateProfileStatusValidateEnum(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	user := createAffiliateTestUser(t, db, "affiliate-status@example.com", "Nina")
	profile := createAffiliateTestProfile(t, db, user.ID, "NINA6677", constants.AffiliateProfileStatusActive)

	if _, err := svc.UpdateProfileStatus(profile.ID, "suspended"); !errors.Is(err, ErrAffiliateProfileStatusInvalid) {
		t.Fatalf("expected ErrAffiliateProfileStatusInvalid, got %v", err)
	}

	disabled, err := svc.UpdateProfileStatus(profile.ID, constants.AffiliateProfileStatusDisabled)
	if err != nil {
		t.Fatalf("disable profile failed: %v", err)
	}
	if disabled == nil || disabled.Status != constants.AffiliateProfileStatusDisabled {
		t.Fatalf("expected disabled profile, got %+v", disabled)
	}

	enabled, err := svc.UpdateProfileStatus(profile.ID, constants.AffiliateProfileStatusActive)
	if err != nil {
		t.Fatalf("re-enable profile failed: %v", err)
	}
	if enabled == nil || enabled.Status != constants.AffiliateProfileStatusActive {
		t.Fatalf("expected active profile, got %+v", enabled)
	}
}

func TestTrackClickIgnoreUnknownCode(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)

	promoter := createAffiliateTestUser(t, db, "affiliate-click@example.com", "Rudi")
	profile := createAffiliateTestProfile(t, db, promoter.ID, "RUDI9900", constants.AffiliateProfileStatusActive)

	if err := svc.TrackClick(AffiliateTrackClickInput{ReferralCode: "UNKNOWN1", LandingPath: "/"}); err != nil {
		t.Fatalf("track unknown code failed: %v", err)
	}
	if err := svc.TrackClick(AffiliateTrackClickInput{
		ReferralCode: "rudi9900",
		LandingPath:  "/products/silver-bar-100g",
		ClientIP:     "203.0.113.8",
	}); err != nil {
		t.Fatalf("track click failed: %v", err)
	}

	var clicks []models.AffiliateClick
	if err := db.Find(&clicks).Error; err != nil {
		t.Fatalf("load clicks failed: %v", err)
	}
	if len(clicks) != 1 || clicks[0].AffiliateProfileID != profile.ID {
		t.Fatalf("expected one click for known code, got %+v", clicks)
	}
	if clicks[0].LandingPath != "/products/silver-bar-100g" {
		t.Fatalf("unexpected landing path: %s", clicks[0].LandingPath)
	}
}

func TestReferralCodePrefixFallback(t *testing.T) {
	if got := referralCodePrefix("Budi Santoso"); got != "BUDISA" {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if got := referralCodePrefix("张伟"); got != "AG" {
		t.Fatalf("expected fallback prefix for non-ASCII name, got %s", got)
	}
	if got := referralCodePrefix("  a1!  "); got != "A1" {
		t.Fatalf("unexpected prefix: %s", got)
	}
}

func setupAffiliateServiceTest(t *testing.T) (*AffiliateService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:affiliate_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.AffiliateProfile{},
		&models.AffiliateClick{},
		&models.CommissionRecord{},
		&models.PayoutRequest{},
		&models.Order{},
		&models.OrderItem{},
		&models.FactoryPaymentBatch{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	settingSvc := NewSettingService(repository.NewSettingRepository(db))
	svc := NewAffiliateService(
		repository.NewAffiliateRepository(db),
		repository.NewUserRepository(db),
		repository.NewOrderRepository(db),
		nil,
		settingSvc,
	)
	return svc, db
}

func createAffiliateTestUser(t *testing.T, db *gorm.DB, email, displayName string) models.User {
	t.Helper()

	row := models.User{
		Email:        email,
		PasswordHash: "hash",
		DisplayName:  displayName,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return row
}

func createAffiliateTestProfile(t *testing.T, db *gorm.DB, userID uint, code, status string) models.AffiliateProfile {
	t.Helper()

	row := models.AffiliateProfile{
		UserID:       userID,
		ReferralCode: code,
		Status:       status,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create affiliate profile failed: %v", err)
	}
	return row
}

func createAffiliateTestOrder(t *testing.T, db *gorm.DB, userID uint, profileID *uint, status, totalAmount string) models.Order {
	t.Helper()

	amount := decimal.RequireFromString(totalAmount)
	row := models.Order{
		OrderNo:            fmt.Sprintf("INV%d%06d", time.Now().Unix(), userID),
		UserID:             userID,
		Status:             status,
		Currency:           constants.SiteCurrencyDefault,
		SubTotal:           models.NewMoneyFromDecimal(amount),
		TotalAmount:        models.NewMoneyFromDecimal(amount),
		AffiliateProfileID: profileID,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return row
}

func createAffiliateTestCommission(t *testing.T, db *gorm.DB, profileID, orderID uint, amount string) {
	t.Helper()

	value := decimal.RequireFromString(amount)
	row := models.CommissionRecord{
		AffiliateProfileID: profileID,
		OrderID:            orderID,
		OrderNo:            fmt.Sprintf("INV%d%06d", time.Now().Unix(), orderID),
		BaseAmount:         models.NewMoneyFromDecimal(value.Mul(decimal.NewFromInt(40))),
		RatePercent:        models.NewMoneyFromDecimal(decimal.RequireFromString("2.5")),
		Amount:             models.NewMoneyFromDecimal(value),
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create commission record failed: %v", err)
	}
}

func createAffiliateTestPayout(t *testing.T, db *gorm.DB, profileID uint, amount, status string) models.PayoutRequest {
	t.Helper()

	row := models.PayoutRequest{
		AffiliateProfileID: profileID,
		Amount:             models.NewMoneyFromDecimal(decimal.RequireFromString(amount)),
		Currency:           constants.SiteCurrencyDefault,
		BankName:           "BCA",
		BankAccountNumber:  "1234567890",
		BankAccountHolder:  "tester",
		Status:             status,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create payout request failed: %v", err)
	}
	return row
}
