package repository

import (
	"errors"

	"github.com/bullion-next/internal/models"

	"gorm.io/gorm"
)

// PriceImageRepository 银价展示图数据访问接口
type PriceImageRepository interface {
	GetLatestActive() (*models.PriceImage, error)
	Create(image *models.PriceImage) error
	DeactivateAll() error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) PriceImageRepository
}

// GormPriceImageRepository GORM 实现
type GormPriceImageRepository struct {
	db *gorm.DB
}

// NewPriceImageRepository 创建银价展示图仓库
func NewPriceImageRepository(db *gorm.DB) *GormPriceImageRepository {
	return &GormPriceImageRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPriceImageRepository) WithTx(tx *gorm.DB) PriceImageRepository {
	if tx == nil {
		return r
	}
	return &GormPriceImageRepository{db: tx}
}

// Transaction 执行事务
func (r *GormPriceImageRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// GetLatestActive 获取最新启用的价格图
func (r *GormPriceImageRepository) GetLatestActive() (*models.PriceImage, error) {
	var image models.PriceImage
	if err := r.db.Where("is_active = ?", true).Order("id desc").First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Create 写入新价格图
func (r *GormPriceImageRepository) Create(image *models.PriceImage) error {
	return r.db.Create(image).Error
}

// DeactivateAll 停用全部历史价格图
func (r *GormPriceImageRepository) DeactivateAll() error {
	return r.db.Model(&models.PriceImage{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}
