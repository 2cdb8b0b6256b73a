package service

import (
	"time"

	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ProductID  uint            `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  models.Money    `json:"unit_price"`
	UnitWeight models.Weight   `json:"unit_weight"`
	LinePrice  models.Money    `json:"line_price"`
	LineWeight models.Weight   `json:"line_weight"`
	Product    *models.Product `json:"product"`
}

// CartSummary 购物车汇总
type CartSummary struct {
	Items       []CartItemDetail `json:"items"`
	SubTotal    models.Money     `json:"sub_total"`
	TotalWeight models.Weight    `json:"total_weight"`
}

// UpsertCartItemInput 购物车更新输入
type UpsertCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车，已下架商品顺手移出购物车。
func (s *CartService) ListByUser(userID uint) (CartSummary, error) {
	summary := CartSummary{
		Items:       []CartItemDetail{},
		SubTotal:    models.NewMoneyFromDecimal(decimal.Zero),
		TotalWeight: models.NewWeightFromDecimal(decimal.Zero),
	}
	if userID == 0 {
		return summary, ErrNotFound
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return summary, err
	}

	subTotal := decimal.Zero
	totalWeight := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return summary, err
			}
			product = p
		}
		if product == nil || !product.IsActive {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}

		quantity := decimal.NewFromInt(int64(item.Quantity))
		linePrice := product.PriceAmount.Decimal.Mul(quantity).Round(2)
		lineWeight := product.WeightGrams.Decimal.Mul(quantity).Round(2)
		summary.Items = append(summary.Items, CartItemDetail{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  product.PriceAmount,
			UnitWeight: product.WeightGrams,
			LinePrice:  models.NewMoneyFromDecimal(linePrice),
			LineWeight: models.NewWeightFromDecimal(lineWeight),
			Product:    product,
		})
		subTotal = subTotal.Add(linePrice).Round(2)
		totalWeight = totalWeight.Add(lineWeight).Round(2)
	}
	summary.SubTotal = models.NewMoneyFromDecimal(subTotal)
	summary.TotalWeight = models.NewWeightFromDecimal(totalWeight)
	return summary, nil
}

// UpsertItem 添加或更新购物车项
func (s *CartService) UpsertItem(input UpsertCartItemInput) error {
	if input.UserID == 0 || input.ProductID == 0 || input.Quantity <= 0 {
		return ErrQuantityInvalid
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductInactive
	}
	if product.StockTotal > 0 && product.StockTotal-product.StockSold < input.Quantity {
		return ErrInsufficientStock
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.cartRepo.Upsert(item)
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrNotFound
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrNotFound
	}
	return s.cartRepo.ClearByUser(userID)
}
