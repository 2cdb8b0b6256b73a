package service

import (
	"strings"

	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProductInput 创建/更新商品输入
type CreateProductInput struct {
	CategoryID      uint
	Slug            string
	TitleJSON       map[string]interface{}
	DescriptionJSON map[string]interface{}
	ContentJSON     map[string]interface{}
	Brand           string
	Purity          string
	WeightGrams     decimal.Decimal
	PriceAmount     decimal.Decimal
	Images          []string
	Tags            []string
	StockTotal      *int
	IsActive        *bool
	SortOrder       int
}

// ListPublic 获取公开商品列表
func (s *ProductService) ListPublic(categoryID, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       search,
		OnlyActive:   true,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetPublicBySlug 获取公开商品详情
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListAdmin 获取后台商品列表
func (s *ProductService) ListAdmin(categoryID, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       search,
		OnlyActive:   false,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetAdminByID 获取后台商品详情
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	priceAmount := input.PriceAmount.Round(2)
	weightGrams := input.WeightGrams.Round(2)
	if priceAmount.LessThanOrEqual(decimal.Zero) || weightGrams.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, ErrSlugExists
	}
	count, err := s.repo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	stockTotal := 0
	if input.StockTotal != nil {
		stockTotal = *input.StockTotal
	}
	if stockTotal < 0 {
		return nil, ErrQuantityInvalid
	}
	purity := strings.TrimSpace(input.Purity)
	if purity == "" {
		purity = "999"
	}

	product := models.Product{
		CategoryID:      input.CategoryID,
		Slug:            slug,
		TitleJSON:       models.JSON(input.TitleJSON),
		DescriptionJSON: models.JSON(input.DescriptionJSON),
		ContentJSON:     models.JSON(input.ContentJSON),
		Brand:           strings.TrimSpace(input.Brand),
		Purity:          purity,
		WeightGrams:     models.NewWeightFromDecimal(weightGrams),
		PriceAmount:     models.NewMoneyFromDecimal(priceAmount),
		Images:          models.StringArray(input.Images),
		Tags:            models.StringArray(input.Tags),
		StockTotal:      stockTotal,
		StockSold:       0,
		IsActive:        isActive,
		SortOrder:       input.SortOrder,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input CreateProductInput) (*models.Product, error) {
	priceAmount := input.PriceAmount.Round(2)
	weightGrams := input.WeightGrams.Round(2)
	if priceAmount.LessThanOrEqual(decimal.Zero) || weightGrams.LessThanOrEqual(decimal.Zero) {
		return nil, ErrProductPriceInvalid
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, ErrSlugExists
	}
	count, err := s.repo.CountBySlug(slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	product.CategoryID = input.CategoryID
	product.Slug = slug
	product.TitleJSON = models.JSON(input.TitleJSON)
	product.DescriptionJSON = models.JSON(input.DescriptionJSON)
	product.ContentJSON = models.JSON(input.ContentJSON)
	product.Brand = strings.TrimSpace(input.Brand)
	if purity := strings.TrimSpace(input.Purity); purity != "" {
		product.Purity = purity
	}
	product.WeightGrams = models.NewWeightFromDecimal(weightGrams)
	product.PriceAmount = models.NewMoneyFromDecimal(priceAmount)
	product.Images = models.StringArray(input.Images)
	product.Tags = models.StringArray(input.Tags)
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.StockTotal != nil {
		stockTotal := *input.StockTotal
		if stockTotal < 0 {
			return nil, ErrQuantityInvalid
		}
		// 库存总量不得低于已售数量
		if stockTotal > 0 && stockTotal < product.StockSold {
			return nil, ErrQuantityInvalid
		}
		product.StockTotal = stockTotal
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
