package repository

import (
	"errors"

	"github.com/bullion-next/internal/models"

	"gorm.io/gorm"
)

// FactoryBatchRepository 工厂付款批次数据访问接口
type FactoryBatchRepository interface {
	Create(batch *models.FactoryPaymentBatch) error
	GetByID(id uint) (*models.FactoryPaymentBatch, error)
	GetByIDForUpdate(id uint) (*models.FactoryPaymentBatch, error)
	GetByBatchNo(batchNo string) (*models.FactoryPaymentBatch, error)
	List(filter FactoryBatchListFilter) ([]models.FactoryPaymentBatch, int64, error)
	Update(batch *models.FactoryPaymentBatch) error
	WithTx(tx *gorm.DB) FactoryBatchRepository
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormFactoryBatchRepository GORM 实现
type GormFactoryBatchRepository struct {
	db *gorm.DB
}

// NewFactoryBatchRepository 创建批次仓库
func NewFactoryBatchRepository(db *gorm.DB) *GormFactoryBatchRepository {
	return &GormFactoryBatchRepository{db: db}
}

// WithTx 绑定事务
func (r *GormFactoryBatchRepository) WithTx(tx *gorm.DB) FactoryBatchRepository {
	if tx == nil {
		return r
	}
	return &GormFactoryBatchRepository{db: tx}
}

// Transaction 执行事务
func (r *GormFactoryBatchRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// Create 创建批次
func (r *GormFactoryBatchRepository) Create(batch *models.FactoryPaymentBatch) error {
	return r.db.Create(batch).Error
}

// GetByID 按 ID 获取批次（含订单）
func (r *GormFactoryBatchRepository) GetByID(id uint) (*models.FactoryPaymentBatch, error) {
	var batch models.FactoryPaymentBatch
	if err := r.db.Preload("Orders").Preload("Orders.Items").First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// GetByIDForUpdate 按 ID 锁定读取批次（需在事务中调用）
func (r *GormFactoryBatchRepository) GetByIDForUpdate(id uint) (*models.FactoryPaymentBatch, error) {
	var batch models.FactoryPaymentBatch
	if err := withUpdateLock(r.db).
		First(&batch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// GetByBatchNo 按批次号获取批次
func (r *GormFactoryBatchRepository) GetByBatchNo(batchNo string) (*models.FactoryPaymentBatch, error) {
	var batch models.FactoryPaymentBatch
	if err := r.db.Where("batch_no = ?", batchNo).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// List 批次列表
func (r *GormFactoryBatchRepository) List(filter FactoryBatchListFilter) ([]models.FactoryPaymentBatch, int64, error) {
	query := r.db.Model(&models.FactoryPaymentBatch{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.BatchNo != "" {
		query = query.Where("batch_no = ?", filter.BatchNo)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var batches []models.FactoryPaymentBatch
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&batches).Error; err != nil {
		return nil, 0, err
	}
	return batches, total, nil
}

// Update 保存批次
func (r *GormFactoryBatchRepository) Update(batch *models.FactoryPaymentBatch) error {
	return r.db.Save(batch).Error
}
