package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestProductCreateValidatePriceWeightAndSlug(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	input := CreateProductInput{
		CategoryID:  1,
		Slug:        "silver-bar-100g",
		TitleJSON:   map[string]interface{}{"id-ID": "Batangan Perak 100g"},
		Brand:       "Antam",
		WeightGrams: decimal.RequireFromString("100"),
		PriceAmount: decimal.RequireFromString("1550000"),
	}
	created, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if created.Purity != "999" {
		t.Fatalf("expected default purity 999, got %s", created.Purity)
	}
	if !created.IsActive {
		t.Fatalf("expected active by default")
	}

	if _, err := svc.Create(input); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists for duplicate slug, got %v", err)
	}

	zeroPrice := input
	zeroPrice.Slug = "zero-price"
	zeroPrice.PriceAmount = decimal.Zero
	if _, err := svc.Create(zeroPrice); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected ErrProductPriceInvalid, got %v", err)
	}

	zeroWeight := input
	zeroWeight.Slug = "zero-weight"
	zeroWeight.WeightGrams = decimal.Zero
	if _, err := svc.Create(zeroWeight); !errors.Is(err, ErrProductPriceInvalid) {
		t.Fatalf("expected ErrProductPriceInvalid for zero weight, got %v", err)
	}

	negativeStock := input
	negativeStock.Slug = "negative-stock"
	bad := -1
	negativeStock.StockTotal = &bad
	if _, err := svc.Create(negativeStock); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
}

func TestProductUpdateGuardStockBelowSold(t *testing.T) {
	svc, db := setupProductServiceTest(t)

	created, err := svc.Create(CreateProductInput{
		CategoryID:  1,
		Slug:        "stock-guard",
		TitleJSON:   map[string]interface{}{"id-ID": "Koin Perak"},
		WeightGrams: decimal.RequireFromString("31.1"),
		PriceAmount: decimal.RequireFromString("520000"),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", created.ID).
		Updates(map[string]interface{}{"stock_total": 10, "stock_sold": 5}).Error; err != nil {
		t.Fatalf("seed sold stock failed: %v", err)
	}

	input := CreateProductInput{
		CategoryID:  1,
		Slug:        "stock-guard",
		TitleJSON:   map[string]interface{}{"id-ID": "Koin Perak"},
		WeightGrams: decimal.RequireFromString("31.1"),
		PriceAmount: decimal.RequireFromString("520000"),
	}
	tooLow := 3
	input.StockTotal = &tooLow
	if _, err := svc.Update(created.ID, input); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid when total below sold, got %v", err)
	}

	unlimited := 0
	input.StockTotal = &unlimited
	updated, err := svc.Update(created.ID, input)
	if err != nil {
		t.Fatalf("update to unlimited failed: %v", err)
	}
	if updated.StockTotal != 0 {
		t.Fatalf("expected unlimited stock, got %d", updated.StockTotal)
	}
}

func TestProductUpdateRejectSlugCollision(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	base := CreateProductInput{
		CategoryID:  1,
		TitleJSON:   map[string]interface{}{"id-ID": "Perak"},
		WeightGrams: decimal.RequireFromString("10"),
		PriceAmount: decimal.RequireFromString("100000"),
	}

	first := base
	first.Slug = "slug-a"
	if _, err := svc.Create(first); err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second := base
	second.Slug = "slug-b"
	created, err := svc.Create(second)
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	collide := base
	collide.Slug = "slug-a"
	if _, err := svc.Update(created.ID, collide); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists on slug collision, got %v", err)
	}

	// 保持自身 slug 不算冲突
	keep := base
	keep.Slug = "slug-b"
	if _, err := svc.Update(created.ID, keep); err != nil {
		t.Fatalf("update with own slug failed: %v", err)
	}
}

func TestGetPublicBySlugHideInactive(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	inactive := false
	if _, err := svc.Create(CreateProductInput{
		CategoryID:  1,
		Slug:        "hidden-bar",
		TitleJSON:   map[string]interface{}{"id-ID": "Perak"},
		WeightGrams: decimal.RequireFromString("10"),
		PriceAmount: decimal.RequireFromString("100000"),
		IsActive:    &inactive,
	}); err != nil {
		t.Fatalf("create inactive product failed: %v", err)
	}

	if _, err := svc.GetPublicBySlug("hidden-bar"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive product, got %v", err)
	}
	if _, err := svc.GetPublicBySlug("no-such-slug"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown slug, got %v", err)
	}
}

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:product_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db)), db
}
