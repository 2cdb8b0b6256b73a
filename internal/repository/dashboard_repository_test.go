package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupDashboardRepositoryTest(t *testing.T) (*GormDashboardRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:dashboard_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.AffiliateProfile{},
		&models.CommissionRecord{},
		&models.PayoutRequest{},
		&models.FactoryPaymentBatch{},
	); err != nil {
		t.Fatalf("migrate dashboard models failed: %v", err)
	}
	return NewDashboardRepository(db), db
}

func createDashboardTestOrder(t *testing.T, db *gorm.DB, orderNo, status, amount, weight string, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:     orderNo,
		UserID:      1,
		Status:      status,
		Currency:    constants.SiteCurrencyDefault,
		SubTotal:    models.NewMoneyFromDecimal(decimal.RequireFromString(amount)),
		TotalAmount: models.NewMoneyFromDecimal(decimal.RequireFromString(amount)),
		TotalWeight: models.NewWeightFromDecimal(decimal.RequireFromString(weight)),
		CreatedAt:   createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestGetOverviewAggregateOrdersAndRevenue(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	now := time.Now()

	createDashboardTestOrder(t, db, "INV-OV-1", constants.OrderStatusPendingConfirmation, "100000", "10", now)
	createDashboardTestOrder(t, db, "INV-OV-2", constants.OrderStatusUnpaid, "200000", "20", now)
	createDashboardTestOrder(t, db, "INV-OV-3", constants.OrderStatusPreparing, "300000", "30", now)
	createDashboardTestOrder(t, db, "INV-OV-4", constants.OrderStatusCompleted, "400000", "40", now)
	// 已取消订单不计入付费营收
	createDashboardTestOrder(t, db, "INV-OV-5", constants.OrderStatusCanceled, "900000", "90", now)
	// 统计区间之外
	createDashboardTestOrder(t, db, "INV-OV-6", constants.OrderStatusCompleted, "700000", "70", now.Add(-48*time.Hour))

	if err := db.Create(&models.PayoutRequest{
		AffiliateProfileID: 1,
		Amount:             models.NewMoneyFromDecimal(decimal.RequireFromString("25000")),
		Currency:           constants.SiteCurrencyDefault,
		BankName:           "BCA",
		BankAccountNumber:  "123",
		BankAccountHolder:  "tester",
		Status:             constants.PayoutStatusPending,
	}).Error; err != nil {
		t.Fatalf("seed payout failed: %v", err)
	}
	if err := db.Create(&models.FactoryPaymentBatch{
		BatchNo: "FB202601010001",
		Status:  constants.FactoryBatchStatusUnpaid,
	}).Error; err != nil {
		t.Fatalf("seed batch failed: %v", err)
	}

	overview, err := repo.GetOverview(now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if overview.OrdersTotal != 5 {
		t.Fatalf("orders total want 5 got %d", overview.OrdersTotal)
	}
	if overview.PendingConfirmation != 1 || overview.AwaitingPayment != 1 || overview.InProduction != 1 || overview.CompletedOrders != 1 {
		t.Fatalf("unexpected status counters: %+v", overview)
	}
	// 付费营收 = 备货 300,000 + 完成 400,000
	if overview.RevenuePaid != 700000 {
		t.Fatalf("revenue want 700000 got %.2f", overview.RevenuePaid)
	}
	if overview.WeightPaidGrams != 70 {
		t.Fatalf("weight want 70 got %.2f", overview.WeightPaidGrams)
	}
	if overview.PendingPayouts != 1 || overview.PendingPayoutAmount != 25000 {
		t.Fatalf("unexpected payout counters: %+v", overview)
	}
	if overview.UnpaidBatches != 1 {
		t.Fatalf("unpaid batches want 1 got %d", overview.UnpaidBatches)
	}
}

func TestGetOrderTrendsGroupByDay(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	createDashboardTestOrder(t, db, "INV-TR-1", constants.OrderStatusUnpaid, "100000", "10", base)
	createDashboardTestOrder(t, db, "INV-TR-2", constants.OrderStatusCompleted, "100000", "10", base)
	createDashboardTestOrder(t, db, "INV-TR-3", constants.OrderStatusCompleted, "100000", "10", base.Add(24*time.Hour))

	rows, err := repo.GetOrderTrends(base.Add(-time.Hour), base.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("get order trends failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("trend rows want 2 got %d", len(rows))
	}
	if rows[0].Day != "2026-01-10" || rows[0].OrdersTotal != 2 || rows[0].OrdersPaid != 1 {
		t.Fatalf("unexpected first trend row: %+v", rows[0])
	}
	if rows[1].Day != "2026-01-11" || rows[1].OrdersTotal != 1 || rows[1].OrdersPaid != 1 {
		t.Fatalf("unexpected second trend row: %+v", rows[1])
	}
}

func TestGetTopProductsRankByPaidAmount(t *testing.T) {
	repo, db := setupDashboardRepositoryTest(t)
	now := time.Now()

	paid := createDashboardTestOrder(t, db, "INV-TP-1", constants.OrderStatusCompleted, "3100000", "200", now)
	unpaid := createDashboardTestOrder(t, db, "INV-TP-2", constants.OrderStatusUnpaid, "1550000", "100", now)

	items := []models.OrderItem{
		{
			OrderID:     paid.ID,
			ProductID:   11,
			TitleJSON:   models.JSON{"id-ID": "Batangan Perak 100g"},
			UnitPrice:   models.NewMoneyFromDecimal(decimal.RequireFromString("1550000")),
			UnitWeight:  models.NewWeightFromDecimal(decimal.RequireFromString("100")),
			Quantity:    2,
			TotalPrice:  models.NewMoneyFromDecimal(decimal.RequireFromString("3100000")),
			TotalWeight: models.NewWeightFromDecimal(decimal.RequireFromString("200")),
		},
		{
			OrderID:     unpaid.ID,
			ProductID:   12,
			TitleJSON:   models.JSON{"id-ID": "Koin Perak 1oz"},
			UnitPrice:   models.NewMoneyFromDecimal(decimal.RequireFromString("520000")),
			UnitWeight:  models.NewWeightFromDecimal(decimal.RequireFromString("31.1")),
			Quantity:    1,
			TotalPrice:  models.NewMoneyFromDecimal(decimal.RequireFromString("520000")),
			TotalWeight: models.NewWeightFromDecimal(decimal.RequireFromString("31.1")),
		},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create order items failed: %v", err)
	}

	rows, err := repo.GetTopProducts(now.Add(-time.Hour), now.Add(time.Hour), 5)
	if err != nil {
		t.Fatalf("get top products failed: %v", err)
	}
	// 未付费订单的商品不参与排行
	if len(rows) != 1 {
		t.Fatalf("rows len want 1 got %d", len(rows))
	}
	if rows[0].ProductID != 11 || rows[0].PaidOrders != 1 || rows[0].Quantity != 2 {
		t.Fatalf("unexpected ranking row: %+v", rows[0])
	}
	if rows[0].PaidAmount != 3100000 {
		t.Fatalf("paid amount want 3100000 got %.2f", rows[0].PaidAmount)
	}
	if rows[0].Title != "Batangan Perak 100g" {
		t.Fatalf("unexpected title: %s", rows[0].Title)
	}
}
