package repository

import (
	"errors"

	"github.com/bullion-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AffiliateRepository 推广返利数据访问接口
type AffiliateRepository interface {
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AffiliateRepository

	CreateProfile(profile *models.AffiliateProfile) error
	GetProfileByID(id uint) (*models.AffiliateProfile, error)
	GetProfileByIDForUpdate(id uint) (*models.AffiliateProfile, error)
	GetProfileByUserID(userID uint) (*models.AffiliateProfile, error)
	GetProfileByCode(code string) (*models.AffiliateProfile, error)
	UpdateProfileStatus(id uint, status string) error
	ListProfiles(filter AffiliateProfileListFilter) ([]models.AffiliateProfile, int64, error)

	CreateClick(click *models.AffiliateClick) error
	CountClicksByProfile(profileID uint) (int64, error)

	CreateCommission(record *models.CommissionRecord) error
	GetCommissionByOrderID(orderID uint) (*models.CommissionRecord, error)
	ListCommissions(filter CommissionListFilter) ([]models.CommissionRecord, int64, error)
	SumCommissionByProfile(profileID uint) (decimal.Decimal, error)
	CountCommissionsByProfile(profileID uint) (int64, error)

	CreatePayout(payout *models.PayoutRequest) error
	GetPayoutByID(id uint) (*models.PayoutRequest, error)
	GetPayoutByIDForUpdate(id uint) (*models.PayoutRequest, error)
	ListPayouts(filter PayoutListFilter) ([]models.PayoutRequest, int64, error)
	SumPayoutsByStatus(profileID uint, status string) (decimal.Decimal, error)
	UpdatePayout(payout *models.PayoutRequest) error
}

// GormAffiliateRepository GORM 推广返利仓储
type GormAffiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository 创建推广返利仓储
func NewAffiliateRepository(db *gorm.DB) *GormAffiliateRepository {
	return &GormAffiliateRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAffiliateRepository) WithTx(tx *gorm.DB) AffiliateRepository {
	if tx == nil {
		return r
	}
	return &GormAffiliateRepository{db: tx}
}

// Transaction 执行事务
func (r *GormAffiliateRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// CreateProfile 创建推广档案
func (r *GormAffiliateRepository) CreateProfile(profile *models.AffiliateProfile) error {
	return r.db.Create(profile).Error
}

// GetProfileByID 按 ID 获取推广档案
func (r *GormAffiliateRepository) GetProfileByID(id uint) (*models.AffiliateProfile, error) {
	var profile models.AffiliateProfile
	if err := r.db.Preload("User").First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfileByIDForUpdate 按 ID 锁定读取推广档案（需在事务中调用）
func (r *GormAffiliateRepository) GetProfileByIDForUpdate(id uint) (*models.AffiliateProfile, error) {
	var profile models.AffiliateProfile
	if err := withUpdateLock(r.db).
		First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfileByUserID 按用户 ID 获取推广档案
func (r *GormAffiliateRepository) GetProfileByUserID(userID uint) (*models.AffiliateProfile, error) {
	var profile models.AffiliateProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// GetProfileByCode 按推广码获取档案
func (r *GormAffiliateRepository) GetProfileByCode(code string) (*models.AffiliateProfile, error) {
	var profile models.AffiliateProfile
	if err := r.db.Where("referral_code = ?", code).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfileStatus 更新推广档案状态
func (r *GormAffiliateRepository) UpdateProfileStatus(id uint, status string) error {
	return r.db.Model(&models.AffiliateProfile{}).Where("id = ?", id).Update("status", status).Error
}

// ListProfiles 推广档案列表
func (r *GormAffiliateRepository) ListProfiles(filter AffiliateProfileListFilter) ([]models.AffiliateProfile, int64, error) {
	query := r.db.Model(&models.AffiliateProfile{})
	if filter.Status != "" {
		query = query.Where("affiliate_profiles.status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.
			Joins("LEFT JOIN users ON users.id = affiliate_profiles.user_id").
			Where("affiliate_profiles.referral_code LIKE ? OR users.email LIKE ? OR users.display_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.AffiliateProfile
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("User").Order("affiliate_profiles.id desc").Find(&profiles).Error; err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// CreateClick 记录推广链接点击
func (r *GormAffiliateRepository) CreateClick(click *models.AffiliateClick) error {
	return r.db.Create(click).Error
}

// CountClicksByProfile 统计推广点击次数
func (r *GormAffiliateRepository) CountClicksByProfile(profileID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.AffiliateClick{}).
		Where("affiliate_profile_id = ?", profileID).
		Count(&total).Error
	return total, err
}

// CreateCommission 写入佣金账目
func (r *GormAffiliateRepository) CreateCommission(record *models.CommissionRecord) error {
	return r.db.Create(record).Error
}

// GetCommissionByOrderID 按订单查询佣金账目
func (r *GormAffiliateRepository) GetCommissionByOrderID(orderID uint) (*models.CommissionRecord, error) {
	var record models.CommissionRecord
	if err := r.db.Where("order_id = ?", orderID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ListCommissions 佣金账目列表
func (r *GormAffiliateRepository) ListCommissions(filter CommissionListFilter) ([]models.CommissionRecord, int64, error) {
	query := r.db.Model(&models.CommissionRecord{})
	if filter.AffiliateProfileID != 0 {
		query = query.Where("affiliate_profile_id = ?", filter.AffiliateProfileID)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
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

	var records []models.CommissionRecord
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("id desc").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// SumCommissionByProfile 统计累计佣金
func (r *GormAffiliateRepository) SumCommissionByProfile(profileID uint) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.CommissionRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("affiliate_profile_id = ?", profileID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// CountCommissionsByProfile 统计佣金笔数
func (r *GormAffiliateRepository) CountCommissionsByProfile(profileID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.CommissionRecord{}).
		Where("affiliate_profile_id = ?", profileID).
		Count(&total).Error
	return total, err
}

// CreatePayout 创建提现申请
func (r *GormAffiliateRepository) CreatePayout(payout *models.PayoutRequest) error {
	return r.db.Create(payout).Error
}

// GetPayoutByID 按 ID 获取提现申请
func (r *GormAffiliateRepository) GetPayoutByID(id uint) (*models.PayoutRequest, error) {
	var payout models.PayoutRequest
	if err := r.db.Preload("AffiliateProfile").Preload("AffiliateProfile.User").First(&payout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payout, nil
}

// GetPayoutByIDForUpdate 按 ID 锁定读取提现申请（需在事务中调用）
func (r *GormAffiliateRepository) GetPayoutByIDForUpdate(id uint) (*models.PayoutRequest, error) {
	var payout models.PayoutRequest
	if err := withUpdateLock(r.db).
		First(&payout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payout, nil
}

// ListPayouts 提现申请列表
func (r *GormAffiliateRepository) ListPayouts(filter PayoutListFilter) ([]models.PayoutRequest, int64, error) {
	query := r.db.Model(&models.PayoutRequest{})
	if filter.AffiliateProfileID != 0 {
		query = query.Where("affiliate_profile_id = ?", filter.AffiliateProfileID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
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

	var payouts []models.PayoutRequest
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("AffiliateProfile").Preload("AffiliateProfile.User").Order("id desc").Find(&payouts).Error; err != nil {
		return nil, 0, err
	}
	return payouts, total, nil
}

// SumPayoutsByStatus 按状态统计提现金额
func (r *GormAffiliateRepository) SumPayoutsByStatus(profileID uint, status string) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.PayoutRequest{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("affiliate_profile_id = ? AND status = ?", profileID, status).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// UpdatePayout 保存提现申请
func (r *GormAffiliateRepository) UpdatePayout(payout *models.PayoutRequest) error {
	return r.db.Save(payout).Error
}
