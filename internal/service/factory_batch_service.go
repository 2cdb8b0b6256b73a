package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FactoryBatchService 工厂付款批次服务
// 按截止时间把未归批的在产订单聚合成一个批次，用于对工厂统一转账。
type FactoryBatchService struct {
	batchRepo repository.FactoryBatchRepository
	orderRepo repository.OrderRepository
}

// NewFactoryBatchService 创建工厂付款批次服务
func NewFactoryBatchService(batchRepo repository.FactoryBatchRepository, orderRepo repository.OrderRepository) *FactoryBatchService {
	return &FactoryBatchService{
		batchRepo: batchRepo,
		orderRepo: orderRepo,
	}
}

// BuildBatchInput 创建批次输入
type BuildBatchInput struct {
	CutoffAt       time.Time
	Note           string
	CreatedByAdmin uint
}

// SettleBatchInput 批次打款输入
type SettleBatchInput struct {
	ProofPath       string
	Note            string
	ReviewedByAdmin uint
}

// batchEligibleOrderStatuses 可入批的订单状态：已确认付款且未取消。
func batchEligibleOrderStatuses() []string {
	return []string{
		constants.OrderStatusPreparing,
		constants.OrderStatusShipping,
		constants.OrderStatusCompleted,
	}
}

// BuildBatch 按截止时间聚合订单生成付款批次。
// 候选订单在事务内加行锁，归批后订单不会进入后续批次；没有匹配订单时返回 ErrBatchEmpty。
func (s *FactoryBatchService) BuildBatch(input BuildBatchInput) (*models.FactoryPaymentBatch, error) {
	if s.batchRepo == nil || s.orderRepo == nil {
		return nil, ErrNotFound
	}
	if input.CutoffAt.IsZero() || input.CutoffAt.After(time.Now()) {
		return nil, ErrCutoffInvalid
	}

	var createdID uint
	err := s.batchRepo.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		batchRepo := s.batchRepo.WithTx(tx)

		orders, err := orderRepo.ListUnbatchedForUpdate(input.CutoffAt, batchEligibleOrderStatuses())
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return ErrBatchEmpty
		}

		totalAmount := decimal.Zero
		totalWeight := decimal.Zero
		orderIDs := make([]uint, 0, len(orders))
		for _, order := range orders {
			totalAmount = totalAmount.Add(order.TotalAmount.Decimal).Round(2)
			totalWeight = totalWeight.Add(order.TotalWeight.Decimal).Round(2)
			orderIDs = append(orderIDs, order.ID)
		}

		batch := &models.FactoryPaymentBatch{
			BatchNo:          generateBatchNo(),
			CutoffAt:         input.CutoffAt,
			OrderCount:       len(orders),
			TotalAmount:      models.NewMoneyFromDecimal(totalAmount),
			TotalWeight:      models.NewWeightFromDecimal(totalWeight),
			Status:           constants.FactoryBatchStatusUnpaid,
			Note:             strings.TrimSpace(input.Note),
			CreatedByAdminID: input.CreatedByAdmin,
		}
		if err := batchRepo.Create(batch); err != nil {
			return err
		}
		if err := orderRepo.AssignBatch(orderIDs, batch.ID); err != nil {
			return err
		}
		createdID = batch.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.batchRepo.GetByID(createdID)
}

// SettleBatch 标记批次已付款，必须附转账凭证。
func (s *FactoryBatchService) SettleBatch(batchID uint, input SettleBatchInput) (*models.FactoryPaymentBatch, error) {
	if batchID == 0 || s.batchRepo == nil {
		return nil, ErrNotFound
	}
	proofPath := strings.TrimSpace(input.ProofPath)
	if proofPath == "" {
		return nil, ErrBatchProofRequired
	}

	err := s.batchRepo.Transaction(func(tx *gorm.DB) error {
		batchRepo := s.batchRepo.WithTx(tx)
		batch, err := batchRepo.GetByIDForUpdate(batchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return ErrNotFound
		}
		if batch.Status != constants.FactoryBatchStatusUnpaid {
			return ErrBatchStatusInvalid
		}

		now := time.Now()
		batch.Status = constants.FactoryBatchStatusPaid
		batch.ProofPath = proofPath
		batch.PaidAt = &now
		if note := strings.TrimSpace(input.Note); note != "" {
			batch.Note = note
		}
		return batchRepo.Update(batch)
	})
	if err != nil {
		return nil, err
	}
	return s.batchRepo.GetByID(batchID)
}

// GetBatch 批次详情（含订单与订单项）
func (s *FactoryBatchService) GetBatch(batchID uint) (*models.FactoryPaymentBatch, error) {
	if batchID == 0 || s.batchRepo == nil {
		return nil, ErrNotFound
	}
	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrNotFound
	}
	return batch, nil
}

// ListBatches 批次列表
func (s *FactoryBatchService) ListBatches(filter repository.FactoryBatchListFilter) ([]models.FactoryPaymentBatch, int64, error) {
	if s.batchRepo == nil {
		return []models.FactoryPaymentBatch{}, 0, nil
	}
	return s.batchRepo.List(filter)
}

// generateBatchNo 生成批次号
func generateBatchNo() string {
	now := time.Now()
	suffix := make([]byte, 0, 4)
	const digits = "0123456789"
	max := big.NewInt(int64(len(digits)))
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			suffix = append(suffix, '0')
			continue
		}
		suffix = append(suffix, digits[n.Int64()])
	}
	return fmt.Sprintf("FB%s%s", now.Format("20060102150405"), string(suffix))
}
