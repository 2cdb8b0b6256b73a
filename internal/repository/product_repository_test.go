package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/bullion-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createRepoTestProduct(t *testing.T, repo *GormProductRepository, slug string, categoryID uint, total, sold int, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  categoryID,
		Slug:        slug,
		TitleJSON:   models.JSON{"id-ID": "Perak " + slug, "en-US": "Silver " + slug},
		Brand:       "Antam",
		Purity:      "999",
		WeightGrams: models.NewWeightFromDecimal(decimal.NewFromInt(100)),
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(1550000)),
		StockTotal:  total,
		StockSold:   sold,
		IsActive:    active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestConsumeStockGuardAvailable(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createRepoTestProduct(t, repo, "consume-guard", 1, 10, 0, true)

	affected, err := repo.ConsumeStock(product.ID, 3)
	if err != nil {
		t.Fatalf("consume stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("consume affected want 1 got %d", affected)
	}

	// 超出剩余量的扣减不生效
	affected, err = repo.ConsumeStock(product.ID, 8)
	if err != nil {
		t.Fatalf("consume over available failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("consume over available affected want 0 got %d", affected)
	}

	affected, err = repo.ConsumeStock(product.ID, 7)
	if err != nil {
		t.Fatalf("consume exact available failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("consume exact available affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockSold != 10 {
		t.Fatalf("sold want 10 got %d", got.StockSold)
	}
}

func TestConsumeStockUnlimitedAlwaysSucceeds(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createRepoTestProduct(t, repo, "consume-unlimited", 1, 0, 0, true)

	affected, err := repo.ConsumeStock(product.ID, 100)
	if err != nil {
		t.Fatalf("consume unlimited failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("consume unlimited affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockSold != 100 {
		t.Fatalf("sold want 100 got %d", got.StockSold)
	}
}

func TestReleaseStockGuardSold(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createRepoTestProduct(t, repo, "release-guard", 1, 10, 2, true)

	affected, err := repo.ReleaseStock(product.ID, 5)
	if err != nil {
		t.Fatalf("release over sold failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("release over sold affected want 0 got %d", affected)
	}

	affected, err = repo.ReleaseStock(product.ID, 2)
	if err != nil {
		t.Fatalf("release stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("release affected want 1 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.StockSold != 0 {
		t.Fatalf("sold want 0 got %d", got.StockSold)
	}
}

func TestProductListFilterActiveCategoryAndSearch(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	if err := db.Create(&models.Category{Slug: "silver-bars", NameJSON: models.JSON{"id-ID": "Batangan Perak"}}).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	createRepoTestProduct(t, repo, "bar-100g", 1, 10, 0, true)
	createRepoTestProduct(t, repo, "bar-250g", 1, 10, 0, false)
	createRepoTestProduct(t, repo, "coin-1oz", 2, 10, 0, true)

	active, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, OnlyActive: true})
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if total != 2 || len(active) != 2 {
		t.Fatalf("expected 2 active products, got total=%d len=%d", total, len(active))
	}
	for _, item := range active {
		if !item.IsActive {
			t.Fatalf("inactive product leaked: %s", item.Slug)
		}
	}

	byCategory, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, CategoryID: "1"})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 2 || len(byCategory) != 2 {
		t.Fatalf("expected 2 products in category 1, got total=%d len=%d", total, len(byCategory))
	}

	bySearch, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "coin"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 || len(bySearch) != 1 || bySearch[0].Slug != "coin-1oz" {
		t.Fatalf("unexpected search result: total=%d %+v", total, bySearch)
	}
}

func TestGetBySlugRespectActiveFlag(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createRepoTestProduct(t, repo, "off-shelf", 1, 10, 0, false)

	hidden, err := repo.GetBySlug("off-shelf", true)
	if err != nil {
		t.Fatalf("get hidden failed: %v", err)
	}
	if hidden != nil {
		t.Fatalf("expected nil for inactive product in public query")
	}

	admin, err := repo.GetBySlug("off-shelf", false)
	if err != nil {
		t.Fatalf("get admin failed: %v", err)
	}
	if admin == nil || admin.Slug != "off-shelf" {
		t.Fatalf("expected admin query to return inactive product, got %+v", admin)
	}
}

func TestCountBySlugExcludeSelf(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createRepoTestProduct(t, repo, "count-slug", 1, 10, 0, true)

	count, err := repo.CountBySlug("count-slug", nil)
	if err != nil {
		t.Fatalf("count slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("count-slug", &product.ID)
	if err != nil {
		t.Fatalf("count slug exclude self failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding self want 0 got %d", count)
	}
}
