package service

import (
	"strings"

	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/repository"

	"gorm.io/gorm"
)

// PriceImageService 银价展示图服务
// 前台只展示最新启用的一张价格图，后台更新时停用历史记录。
type PriceImageService struct {
	repo repository.PriceImageRepository
}

// NewPriceImageService 创建银价展示图服务
func NewPriceImageService(repo repository.PriceImageRepository) *PriceImageService {
	return &PriceImageService{repo: repo}
}

// GetCurrent 获取当前展示的价格图，未配置时返回 nil。
func (s *PriceImageService) GetCurrent() (*models.PriceImage, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetLatestActive()
}

// UpdateCurrent 发布新的价格图并停用历史记录
func (s *PriceImageService) UpdateCurrent(adminID uint, imagePath, caption string) (*models.PriceImage, error) {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" || s.repo == nil {
		return nil, ErrNotFound
	}

	image := &models.PriceImage{
		ImagePath:        imagePath,
		Caption:          strings.TrimSpace(caption),
		IsActive:         true,
		UpdatedByAdminID: adminID,
	}
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		if err := repoTx.DeactivateAll(); err != nil {
			return err
		}
		return repoTx.Create(image)
	})
	if err != nil {
		return nil, err
	}
	return image, nil
}
