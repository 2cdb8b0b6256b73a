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

func TestBuildBatchAggregateEligibleOrders(t *testing.T) {
	svc, db := setupFactoryBatchServiceTest(t)
	base := time.Now().Add(-2 * time.Hour)

	createBatchTestOrder(t, db, "INV-FB-1", constants.OrderStatusPreparing, "1000000", "100", base, nil)
	createBatchTestOrder(t, db, "INV-FB-2", constants.OrderStatusShipping, "500000", "50", base, nil)
	// 未确认付款的订单不入批
	createBatchTestOrder(t, db, "INV-FB-3", constants.OrderStatusUnpaid, "700000", "70", base, nil)
	// 截止时间之后的订单不入批
	createBatchTestOrder(t, db, "INV-FB-4", constants.OrderStatusPreparing, "900000", "90", time.Now().Add(time.Hour), nil)

	cutoff := time.Now().Add(-time.Minute)
	batch, err := svc.BuildBatch(BuildBatchInput{CutoffAt: cutoff, CreatedByAdmin: 1})
	if err != nil {
		t.Fatalf("build batch failed: %v", err)
	}
	if !strings.HasPrefix(batch.BatchNo, "FB") {
		t.Fatalf("unexpected batch no: %s", batch.BatchNo)
	}
	if batch.OrderCount != 2 {
		t.Fatalf("order count want 2 got %d", batch.OrderCount)
	}
	if !batch.TotalAmount.Decimal.Equal(decimal.RequireFromString("1500000")) {
		t.Fatalf("unexpected total amount: %s", batch.TotalAmount.Decimal)
	}
	if !batch.TotalWeight.Decimal.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("unexpected total weight: %s", batch.TotalWeight.Decimal)
	}
	if batch.Status != constants.FactoryBatchStatusUnpaid {
		t.Fatalf("expected unpaid batch, got %s", batch.Status)
	}

	var batched int64
	if err := db.Model(&models.Order{}).Where("factory_batch_id = ?", batch.ID).Count(&batched).Error; err != nil {
		t.Fatalf("count batched orders failed: %v", err)
	}
	if batched != 2 {
		t.Fatalf("expected 2 orders assigned, got %d", batched)
	}
}

func TestBuildBatchExcludeAlreadyBatchedOrders(t *testing.T) {
	svc, db := setupFactoryBatchServiceTest(t)
	base := time.Now().Add(-2 * time.Hour)

	createBatchTestOrder(t, db, "INV-FB-A", constants.OrderStatusPreparing, "1000000", "100", base, nil)
	cutoff := time.Now().Add(-time.Minute)

	first, err := svc.BuildBatch(BuildBatchInput{CutoffAt: cutoff, CreatedByAdmin: 1})
	if err != nil {
		t.Fatalf("first batch failed: %v", err)
	}
	if first.OrderCount != 1 {
		t.Fatalf("first batch order count want 1 got %d", first.OrderCount)
	}

	// 已归批订单不会进入第二个批次
	if _, err := svc.BuildBatch(BuildBatchInput{CutoffAt: cutoff, CreatedByAdmin: 1}); !errors.Is(err, ErrBatchEmpty) {
		t.Fatalf("expected ErrBatchEmpty on rebuild, got %v", err)
	}
}

func TestBuildBatchValidateCutoff(t *testing.T) {
	svc, _ := setupFactoryBatchServiceTest(t)

	if _, err := svc.BuildBatch(BuildBatchInput{CreatedByAdmin: 1}); !errors.Is(err, ErrCutoffInvalid) {
		t.Fatalf("expected ErrCutoffInvalid for zero cutoff, got %v", err)
	}
	if _, err := svc.BuildBatch(BuildBatchInput{CutoffAt: time.Now().Add(time.Hour), CreatedByAdmin: 1}); !errors.Is(err, ErrCutoffInvalid) {
		t.Fatalf("expected ErrCutoffInvalid for future cutoff, got %v", err)
	}
	if _, err := svc.BuildBatch(BuildBatchInput{CutoffAt: time.Now().Add(-time.Minute), CreatedByAdmin: 1}); !errors.Is(err, ErrBatchEmpty) {
		t.Fatalf("expected ErrBatchEmpty without orders, got %v", err)
	}
}

func TestSettleBatchRequireProofAndUnpaidStatus(t *testing.T) {
	svc, db := setupFactoryBatchServiceTest(t)
	base := time.Now().Add(-2 * time.Hour)

	createBatchTestOrder(t, db, "INV-FB-S", constants.OrderStatusCompleted, "1000000", "100", base, nil)
	batch, err := svc.BuildBatch(BuildBatchInput{CutoffAt: time.Now().Add(-time.Minute), CreatedByAdmin: 1})
	if err != nil {
		t.Fatalf("build batch failed: %v", err)
	}

	if _, err := svc.SettleBatch(batch.ID, SettleBatchInput{ReviewedByAdmin: 1}); !errors.Is(err, ErrBatchProofRequired) {
		t.Fatalf("expected ErrBatchProofRequired, got %v", err)
	}

	settled, err := svc.SettleBatch(batch.ID, SettleBatchInput{
		ProofPath:       "/uploads/factory_proof/2026/01/transfer.jpg",
		Note:            "transfer via BCA",
		ReviewedByAdmin: 1,
	})
	if err != nil {
		t.Fatalf("settle batch failed: %v", err)
	}
	if settled.Status != constants.FactoryBatchStatusPaid || settled.PaidAt == nil {
		t.Fatalf("unexpected settled batch: %+v", settled)
	}
	if settled.ProofPath == "" || settled.Note != "transfer via BCA" {
		t.Fatalf("expected proof and note persisted, got %+v", settled)
	}

	// 已付款批次不可重复打款
	if _, err := svc.SettleBatch(batch.ID, SettleBatchInput{ProofPath: "/uploads/factory_proof/dup.jpg"}); !errors.Is(err, ErrBatchStatusInvalid) {
		t.Fatalf("expected ErrBatchStatusInvalid on re-settle, got %v", err)
	}
}

func TestGenerateBatchNoFormat(t *testing.T) {
	batchNo := generateBatchNo()
	if !strings.HasPrefix(batchNo, "FB") {
		t.Fatalf("expected FB prefix, got %s", batchNo)
	}
	// FB + 14 位时间戳 + 4 位随机数字
	if len(batchNo) != 2+14+4 {
		t.Fatalf("unexpected batch no length: %s", batchNo)
	}
	for _, r := range batchNo[2:] {
		if r < '0' || r > '9' {
			t.Fatalf("unexpected character in batch no: %s", batchNo)
		}
	}
}

func setupFactoryBatchServiceTest(t *testing.T) (*FactoryBatchService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:factory_batch_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.FactoryPaymentBatch{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewFactoryBatchService(
		repository.NewFactoryBatchRepository(db),
		repository.NewOrderRepository(db),
	), db
}

func createBatchTestOrder(t *testing.T, db *gorm.DB, orderNo, status, amount, weight string, createdAt time.Time, batchID *uint) models.Order {
	t.Helper()

	row := models.Order{
		OrderNo:        orderNo,
		UserID:         1,
		Status:         status,
		Currency:       constants.SiteCurrencyDefault,
		SubTotal:       models.NewMoneyFromDecimal(decimal.RequireFromString(amount)),
		TotalAmount:    models.NewMoneyFromDecimal(decimal.RequireFromString(amount)),
		TotalWeight:    models.NewWeightFromDecimal(decimal.RequireFromString(weight)),
		FactoryBatchID: batchID,
		CreatedAt:      createdAt,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return row
}
