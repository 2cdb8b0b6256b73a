//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Category{},
		&models.Banner{},
		&models.CommissionRecord{},
		&models.PayoutRequest{},
		&models.AffiliateProfile{},
		&models.FactoryPaymentBatch{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Banner{},
		&models.Order{},
		&models.OrderItem{},
		&models.AffiliateProfile{},
		&models.CommissionRecord{},
		&models.PayoutRequest{},
		&models.FactoryPaymentBatch{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresLocalizedJSONSearchRepositories(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	category := &models.Category{
		Slug:     "pg-category",
		NameJSON: models.JSON{"id-ID": "Kategori Postgres"},
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	productRepo := NewProductRepository(db)
	product := &models.Product{
		CategoryID:      category.ID,
		Slug:            "pg-product-bar",
		TitleJSON:       models.JSON{"id-ID": "Batangan Perak Murni"},
		DescriptionJSON: models.JSON{"en-US": "fine silver bullion bar"},
		Purity:          "999",
		WeightGrams:     models.NewWeightFromDecimal(decimal.NewFromInt(100)),
		PriceAmount:     models.NewMoneyFromDecimal(decimal.NewFromInt(1550000)),
		StockTotal:      10,
		IsActive:        true,
	}
	if err := productRepo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	productRows, productTotal, err := productRepo.List(ProductListFilter{
		Page:   1,
		Search: "Batangan",
	})
	if err != nil {
		t.Fatalf("product list search id-ID failed: %v", err)
	}
	if productTotal != 1 || len(productRows) != 1 {
		t.Fatalf("product list search id-ID want 1 got total=%d len=%d", productTotal, len(productRows))
	}

	productRows, productTotal, err = productRepo.List(ProductListFilter{
		Page:   1,
		Search: "bullion",
	})
	if err != nil {
		t.Fatalf("product list search en-US failed: %v", err)
	}
	if productTotal != 1 || len(productRows) != 1 {
		t.Fatalf("product list search en-US want 1 got total=%d len=%d", productTotal, len(productRows))
	}

	bannerRepo := NewBannerRepository(db)
	banner := &models.Banner{
		Name:      "pg-home-banner",
		Position:  "home_hero",
		TitleJSON: models.JSON{"id-ID": "Promo Kemerdekaan"},
		Image:     "/banner.png",
		LinkType:  "none",
		IsActive:  true,
	}
	if err := bannerRepo.Create(banner); err != nil {
		t.Fatalf("create banner failed: %v", err)
	}

	bannerRows, bannerTotal, err := bannerRepo.List(BannerListFilter{
		Page:   1,
		Search: "Promo",
	})
	if err != nil {
		t.Fatalf("banner list search failed: %v", err)
	}
	if bannerTotal != 1 || len(bannerRows) != 1 {
		t.Fatalf("banner list search want 1 got total=%d len=%d", bannerTotal, len(bannerRows))
	}
}

func TestPostgresDashboardQueries(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewDashboardRepository(db)
	now := time.Now().UTC().Truncate(time.Second)

	category := &models.Category{
		Slug:     "pg-dashboard-category",
		NameJSON: models.JSON{"id-ID": "Kategori Dasbor"},
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	product := &models.Product{
		CategoryID:  category.ID,
		Slug:        "pg-dashboard-product",
		TitleJSON:   models.JSON{"id-ID": "Koin Perak Dasbor"},
		Purity:      "999",
		WeightGrams: models.NewWeightFromDecimal(decimal.RequireFromString("31.1")),
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(520000)),
		IsActive:    true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order := &models.Order{
		OrderNo:     "PG-ORDER-001",
		UserID:      1,
		Status:      constants.OrderStatusCompleted,
		Currency:    constants.SiteCurrencyDefault,
		SubTotal:    models.NewMoneyFromDecimal(decimal.NewFromInt(1040000)),
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(1040000)),
		TotalWeight: models.NewWeightFromDecimal(decimal.RequireFromString("62.2")),
		CreatedAt:   now,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	orderItem := &models.OrderItem{
		OrderID:     order.ID,
		ProductID:   product.ID,
		TitleJSON:   models.JSON{"id-ID": "Koin Perak Dasbor"},
		Purity:      "999",
		UnitPrice:   models.NewMoneyFromDecimal(decimal.NewFromInt(520000)),
		UnitWeight:  models.NewWeightFromDecimal(decimal.RequireFromString("31.1")),
		Quantity:    2,
		TotalPrice:  models.NewMoneyFromDecimal(decimal.NewFromInt(1040000)),
		TotalWeight: models.NewWeightFromDecimal(decimal.RequireFromString("62.2")),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(orderItem).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	startAt := now.Add(-time.Hour)
	endAt := now.Add(time.Hour)

	topProducts, err := repo.GetTopProducts(startAt, endAt, 5)
	if err != nil {
		t.Fatalf("get top products failed: %v", err)
	}
	if len(topProducts) != 1 {
		t.Fatalf("top products len want 1 got %d", len(topProducts))
	}
	if topProducts[0].Title != "Koin Perak Dasbor" {
		t.Fatalf("top product title want Koin Perak Dasbor got %s", topProducts[0].Title)
	}

	orderTrends, err := repo.GetOrderTrends(startAt, endAt)
	if err != nil {
		t.Fatalf("get order trends failed: %v", err)
	}
	if len(orderTrends) == 0 {
		t.Fatalf("order trends should not be empty")
	}
	if strings.TrimSpace(orderTrends[0].Day) == "" {
		t.Fatalf("order trend day should not be empty")
	}

	overview, err := repo.GetOverview(startAt, endAt)
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if overview.CompletedOrders != 1 {
		t.Fatalf("completed orders want 1 got %d", overview.CompletedOrders)
	}
}
