package repository

import (
	"time"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error)
	GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error)
	GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error)
}

// DashboardOverviewRow 仪表盘总览原始统计结果
type DashboardOverviewRow struct {
	OrdersTotal         int64
	PendingConfirmation int64
	AwaitingPayment     int64
	PaymentReview       int64
	InProduction        int64
	CompletedOrders     int64
	RevenuePaid         float64
	WeightPaidGrams     float64
	CommissionTotal     float64
	PendingPayouts      int64
	PendingPayoutAmount float64
	UnpaidBatches       int64
	NewUsers            int64
	ActiveProducts      int64
}

// DashboardOrderTrendRow 订单趋势统计
type DashboardOrderTrendRow struct {
	Day         string
	OrdersTotal int64
	OrdersPaid  int64
}

// DashboardProductRankingRow 商品排行原始行
type DashboardProductRankingRow struct {
	ProductID  uint
	Title      string
	PaidOrders int64
	Quantity   int64
	PaidAmount float64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

func paidOrderStatuses() []string {
	return []string{
		constants.OrderStatusPreparing,
		constants.OrderStatusShipping,
		constants.OrderStatusCompleted,
	}
}

// GetOverview 获取总览统计
func (r *GormDashboardRepository) GetOverview(startAt, endAt time.Time) (DashboardOverviewRow, error) {
	result := DashboardOverviewRow{}

	orderBase := func() *gorm.DB {
		return r.db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", startAt, endAt)
	}

	if err := orderBase().Count(&result.OrdersTotal).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusPendingConfirmation).Count(&result.PendingConfirmation).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusUnpaid).Count(&result.AwaitingPayment).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusPaymentReview).Count(&result.PaymentReview).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status IN ?", []string{constants.OrderStatusPreparing, constants.OrderStatusShipping}).Count(&result.InProduction).Error; err != nil {
		return result, err
	}
	if err := orderBase().Where("status = ?", constants.OrderStatusCompleted).Count(&result.CompletedOrders).Error; err != nil {
		return result, err
	}

	var revenueRow struct {
		Amount float64
		Grams  float64
	}
	if err := orderBase().
		Select("COALESCE(SUM(total_amount), 0) AS amount, COALESCE(SUM(total_weight), 0) AS grams").
		Where("status IN ?", paidOrderStatuses()).
		Scan(&revenueRow).Error; err != nil {
		return result, err
	}
	result.RevenuePaid = revenueRow.Amount
	result.WeightPaidGrams = revenueRow.Grams

	var commissionRow struct {
		Amount float64
	}
	if err := r.db.Model(&models.CommissionRecord{}).
		Select("COALESCE(SUM(amount), 0) AS amount").
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Scan(&commissionRow).Error; err != nil {
		return result, err
	}
	result.CommissionTotal = commissionRow.Amount

	var payoutRow struct {
		Total  int64
		Amount float64
	}
	if err := r.db.Model(&models.PayoutRequest{}).
		Select("COUNT(*) AS total, COALESCE(SUM(amount), 0) AS amount").
		Where("status = ?", constants.PayoutStatusPending).
		Scan(&payoutRow).Error; err != nil {
		return result, err
	}
	result.PendingPayouts = payoutRow.Total
	result.PendingPayoutAmount = payoutRow.Amount

	if err := r.db.Model(&models.FactoryPaymentBatch{}).
		Where("status = ?", constants.FactoryBatchStatusUnpaid).
		Count(&result.UnpaidBatches).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.User{}).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Count(&result.NewUsers).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&result.ActiveProducts).Error; err != nil {
		return result, err
	}

	return result, nil
}

// GetOrderTrends 按天统计订单趋势
func (r *GormDashboardRepository) GetOrderTrends(startAt, endAt time.Time) ([]DashboardOrderTrendRow, error) {
	dayExpr := "strftime('%Y-%m-%d', created_at)"
	if dbDialectName(r.db) == "postgres" {
		dayExpr = "to_char(created_at, 'YYYY-MM-DD')"
	}

	var rows []DashboardOrderTrendRow
	if err := r.db.Model(&models.Order{}).
		Select(dayExpr+" AS day, COUNT(*) AS orders_total, SUM(CASE WHEN status IN ? THEN 1 ELSE 0 END) AS orders_paid", paidOrderStatuses()).
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Group("day").
		Order("day asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTopProducts 统计付费订单中的商品排行
func (r *GormDashboardRepository) GetTopProducts(startAt, endAt time.Time, limit int) ([]DashboardProductRankingRow, error) {
	if limit <= 0 {
		limit = 10
	}

	titleExpr := localizedJSONCoalesceExpr(r.db, "order_items.title_json")
	var rows []DashboardProductRankingRow
	if err := r.db.Model(&models.OrderItem{}).
		Select("order_items.product_id AS product_id, "+
			"MAX("+titleExpr+") AS title, "+
			"COUNT(DISTINCT order_items.order_id) AS paid_orders, "+
			"COALESCE(SUM(order_items.quantity), 0) AS quantity, "+
			"COALESCE(SUM(order_items.total_price), 0) AS paid_amount").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.status IN ?", startAt, endAt, paidOrderStatuses()).
		Group("order_items.product_id").
		Order("paid_amount DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
