package service

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/logger"
	"github.com/bullion-next/internal/models"
	"github.com/bullion-next/internal/queue"
	"github.com/bullion-next/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	referralCodePrefixMaxLen = 6
	referralCodeSuffixLen    = 4
	referralCodeMaxRetry     = 8
)

// AffiliateService 推广返利业务服务
type AffiliateService struct {
	repo           repository.AffiliateRepository
	userRepo       repository.UserRepository
	orderRepo      repository.OrderRepository
	queueClient    *queue.Client
	settingService *SettingService
}

// NewAffiliateService 创建推广返利服务
func NewAffiliateService(
	repo repository.AffiliateRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	queueClient *queue.Client,
	settingService *SettingService,
) *AffiliateService {
	return &AffiliateService{
		repo:           repo,
		userRepo:       userRepo,
		orderRepo:      orderRepo,
		queueClient:    queueClient,
		settingService: settingService,
	}
}

// AffiliateTrackClickInput 推广点击记录输入
type AffiliateTrackClickInput struct {
	ReferralCode string
	LandingPath  string
	Referrer     string
	ClientIP     string
	UserAgent    string
}

// AffiliateBalance 佣金余额快照
// 可提余额 = 累计佣金 - 已打款提现 - 待处理提现。
type AffiliateBalance struct {
	TotalCommission models.Money `json:"total_commission"`
	PaidPayout      models.Money `json:"paid_payout"`
	PendingPayout   models.Money `json:"pending_payout"`
	Available       models.Money `json:"available"`
}

// AffiliateDashboard 推广用户中心数据
type AffiliateDashboard struct {
	Opened             bool             `json:"opened"`
	ReferralCode       string           `json:"referral_code"`
	PromotionPath      string           `json:"promotion_path"`
	ClickCount         int64            `json:"click_count"`
	ReferredOrderCount int64            `json:"referred_order_count"`
	ConversionRate     float64          `json:"conversion_rate"`
	Balance            AffiliateBalance `json:"balance"`
}

// PayoutApplyInput 提现申请输入
type PayoutApplyInput struct {
	Amount            decimal.Decimal
	BankName          string
	BankAccountNumber string
	BankAccountHolder string
}

// PayoutReviewInput 后台提现审核输入
type PayoutReviewInput struct {
	Action       string
	ProofPath    string
	RejectReason string
}

// AffiliateAdminProfileItem 后台推广用户列表项
type AffiliateAdminProfileItem struct {
	Profile models.AffiliateProfile `json:"profile"`
	Balance AffiliateBalance        `json:"balance"`
}

// EnableAffiliate 为用户开通推广返利，推广码取自昵称前缀加随机后缀。
func (s *AffiliateService) EnableAffiliate(userID uint) (*models.AffiliateProfile, error) {
	if userID == 0 || s.repo == nil || s.userRepo == nil {
		return nil, ErrNotFound
	}
	setting, err := s.settingService.GetAffiliateSetting()
	if err != nil {
		return nil, err
	}
	if !setting.Enabled {
		return nil, ErrAffiliateDisabled
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(user.Status) == constants.UserStatusDisabled {
		return nil, ErrUserDisabled
	}

	existing, err := s.repo.GetProfileByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	prefix := referralCodePrefix(user.DisplayName)
	for i := 0; i < referralCodeMaxRetry; i++ {
		suffix, genErr := randomReferralSuffix(referralCodeSuffixLen)
		if genErr != nil {
			return nil, genErr
		}
		profile := &models.AffiliateProfile{
			UserID:       userID,
			ReferralCode: prefix + suffix,
			Status:       constants.AffiliateProfileStatusActive,
		}
		if err := s.repo.CreateProfile(profile); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		return s.repo.GetProfileByID(profile.ID)
	}
	return nil, ErrReferralCodeGenerateFailed
}

// ResolveReferrer 校验注册时填写的推广码并返回推荐人档案。
// 推广码无效或档案停用时返回 ErrReferralCodeInvalid。
func (s *AffiliateService) ResolveReferrer(rawCode string) (*models.AffiliateProfile, error) {
	code := normalizeReferralCode(rawCode)
	if code == "" {
		return nil, nil
	}
	if s.repo == nil {
		return nil, ErrReferralCodeInvalid
	}
	profile, err := s.repo.GetProfileByCode(code)
	if err != nil {
		return nil, err
	}
	if profile == nil || strings.TrimSpace(profile.Status) != constants.AffiliateProfileStatusActive {
		return nil, ErrReferralCodeInvalid
	}
	return profile, nil
}

// TrackClick 记录推广链接点击
func (s *AffiliateService) TrackClick(input AffiliateTrackClickInput) error {
	if s.repo == nil {
		return nil
	}
	code := normalizeReferralCode(input.ReferralCode)
	if code == "" {
		return nil
	}
	setting, err := s.settingService.GetAffiliateSetting()
	if err != nil {
		return err
	}
	if !setting.Enabled {
		return nil
	}
	profile, err := s.repo.GetProfileByCode(code)
	if err != nil {
		return err
	}
	if profile == nil || strings.TrimSpace(profile.Status) != constants.AffiliateProfileStatusActive {
		return nil
	}

	click := &models.AffiliateClick{
		AffiliateProfileID: profile.ID,
		LandingPath:        strings.TrimSpace(input.LandingPath),
		Referrer:           strings.TrimSpace(input.Referrer),
		ClientIP:           strings.TrimSpace(input.ClientIP),
		UserAgent:          strings.TrimSpace(input.UserAgent),
		CreatedAt:          time.Now(),
	}
	return s.repo.CreateClick(click)
}

// HandleOrderCompleted 订单完成后生成佣金账目，同一订单只入账一次。
func (s *AffiliateService) HandleOrderCompleted(orderID uint) error {
	if orderID == 0 || s.repo == nil || s.orderRepo == nil {
		return nil
	}
	setting, err := s.settingService.GetAffiliateSetting()
	if err != nil {
		return err
	}
	if !setting.Enabled || setting.CommissionRatePercent <= 0 {
		return nil
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil || order.Status != constants.OrderStatusCompleted {
		return nil
	}
	if order.AffiliateProfileID == nil || *order.AffiliateProfileID == 0 {
		return nil
	}

	profile, err := s.repo.GetProfileByID(*order.AffiliateProfileID)
	if err != nil {
		return err
	}
	if profile == nil || strings.TrimSpace(profile.Status) != constants.AffiliateProfileStatusActive {
		return nil
	}
	// 自推自买不产生佣金
	if order.UserID > 0 && profile.UserID == order.UserID {
		return nil
	}

	existing, err := s.repo.GetCommissionByOrderID(order.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	baseAmount := order.TotalAmount.Decimal.Round(2)
	if baseAmount.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	rate := decimal.NewFromFloat(setting.CommissionRatePercent).Round(2)
	amount := baseAmount.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	record := &models.CommissionRecord{
		AffiliateProfileID: profile.ID,
		OrderID:            order.ID,
		OrderNo:            order.OrderNo,
		BaseAmount:         models.NewMoneyFromDecimal(baseAmount),
		RatePercent:        models.NewMoneyFromDecimal(rate),
		Amount:             models.NewMoneyFromDecimal(amount),
	}
	if err := s.repo.CreateCommission(record); err != nil {
		// 并发重放时唯一索引兜底
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// GetBalance 计算佣金余额
func (s *AffiliateService) GetBalance(profileID uint) (AffiliateBalance, error) {
	return s.balanceWithRepo(s.repo, profileID)
}

func (s *AffiliateService) balanceWithRepo(repo repository.AffiliateRepository, profileID uint) (AffiliateBalance, error) {
	balance := AffiliateBalance{
		TotalCommission: models.NewMoneyFromDecimal(decimal.Zero),
		PaidPayout:      models.NewMoneyFromDecimal(decimal.Zero),
		PendingPayout:   models.NewMoneyFromDecimal(decimal.Zero),
		Available:       models.NewMoneyFromDecimal(decimal.Zero),
	}
	if profileID == 0 || repo == nil {
		return balance, nil
	}
	total, err := repo.SumCommissionByProfile(profileID)
	if err != nil {
		return balance, err
	}
	paid, err := repo.SumPayoutsByStatus(profileID, constants.PayoutStatusProcessed)
	if err != nil {
		return balance, err
	}
	pending, err := repo.SumPayoutsByStatus(profileID, constants.PayoutStatusPending)
	if err != nil {
		return balance, err
	}
	available := total.Sub(paid).Sub(pending).Round(2)

	balance.TotalCommission = models.NewMoneyFromDecimal(total.Round(2))
	balance.PaidPayout = models.NewMoneyFromDecimal(paid.Round(2))
	balance.PendingPayout = models.NewMoneyFromDecimal(pending.Round(2))
	balance.Available = models.NewMoneyFromDecimal(available)
	return balance, nil
}

// GetUserDashboard 获取用户推广中心数据
func (s *AffiliateService) GetUserDashboard(userID uint) (AffiliateDashboard, error) {
	dashboard := AffiliateDashboard{
		Balance: AffiliateBalance{
			TotalCommission: models.NewMoneyFromDecimal(decimal.Zero),
			PaidPayout:      models.NewMoneyFromDecimal(decimal.Zero),
			PendingPayout:   models.NewMoneyFromDecimal(decimal.Zero),
			Available:       models.NewMoneyFromDecimal(decimal.Zero),
		},
	}
	if userID == 0 || s.repo == nil {
		return dashboard, nil
	}
	profile, err := s.repo.GetProfileByUserID(userID)
	if err != nil {
		return dashboard, err
	}
	if profile == nil {
		return dashboard, nil
	}

	clickCount, err := s.repo.CountClicksByProfile(profile.ID)
	if err != nil {
		return dashboard, err
	}
	orderCount, err := s.repo.CountCommissionsByProfile(profile.ID)
	if err != nil {
		return dashboard, err
	}
	balance, err := s.GetBalance(profile.ID)
	if err != nil {
		return dashboard, err
	}

	dashboard.Opened = true
	dashboard.ReferralCode = profile.ReferralCode
	dashboard.PromotionPath = "/?ref=" + profile.ReferralCode
	dashboard.ClickCount = clickCount
	dashboard.ReferredOrderCount = orderCount
	dashboard.ConversionRate = calcAffiliateConversion(orderCount, clickCount)
	dashboard.Balance = balance
	return dashboard, nil
}

// ListUserCommissions 查询用户佣金记录
func (s *AffiliateService) ListUserCommissions(userID uint, page, pageSize int) ([]models.CommissionRecord, int64, error) {
	if userID == 0 || s.repo == nil {
		return []models.CommissionRecord{}, 0, nil
	}
	profile, err := s.repo.GetProfileByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	if profile == nil {
		return []models.CommissionRecord{}, 0, nil
	}
	return s.repo.ListCommissions(repository.CommissionListFilter{
		Page:               page,
		PageSize:           pageSize,
		AffiliateProfileID: profile.ID,
	})
}

// ListUserPayouts 查询用户提现记录
func (s *AffiliateService) ListUserPayouts(userID uint, page, pageSize int, status string) ([]models.PayoutRequest, int64, error) {
	if userID == 0 || s.repo == nil {
		return []models.PayoutRequest{}, 0, nil
	}
	profile, err := s.repo.GetProfileByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	if profile == nil {
		return []models.PayoutRequest{}, 0, nil
	}
	return s.repo.ListPayouts(repository.PayoutListFilter{
		Page:               page,
		PageSize:           pageSize,
		AffiliateProfileID: profile.ID,
		Status:             strings.TrimSpace(status),
	})
}

// ApplyPayout 用户提交提现申请。
// 事务内锁定推广档案后按账目重新计算余额，杜绝并发申请超提。
func (s *AffiliateService) ApplyPayout(userID uint, input PayoutApplyInput) (*models.PayoutRequest, error) {
	if userID == 0 || s.repo == nil {
		return nil, ErrAffiliateNotOpened
	}
	setting, err := s.settingService.GetAffiliateSetting()
	if err != nil {
		return nil, err
	}
	if !setting.Enabled {
		return nil, ErrAffiliateDisabled
	}

	amount := input.Amount.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrPayoutBelowMinimum
	}
	minAmount := decimal.NewFromFloat(setting.MinPayoutAmount).Round(2)
	if amount.LessThan(minAmount) {
		return nil, ErrPayoutBelowMinimum
	}
	bankName := strings.TrimSpace(input.BankName)
	accountNumber := strings.TrimSpace(input.BankAccountNumber)
	accountHolder := strings.TrimSpace(input.BankAccountHolder)
	if bankName == "" || accountNumber == "" || accountHolder == "" {
		return nil, ErrBankAccountRequired
	}

	var createdID uint
	err = s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		profile, err := repoTx.GetProfileByUserID(userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return ErrAffiliateNotOpened
		}
		if strings.TrimSpace(profile.Status) != constants.AffiliateProfileStatusActive {
			return ErrAffiliateNotOpened
		}
		locked, err := repoTx.GetProfileByIDForUpdate(profile.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrAffiliateNotOpened
		}

		balance, err := s.balanceWithRepo(repoTx, locked.ID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(balance.Available.Decimal) {
			return ErrPayoutInsufficientBalance
		}

		payout := &models.PayoutRequest{
			AffiliateProfileID: locked.ID,
			Amount:             models.NewMoneyFromDecimal(amount),
			Currency:           constants.SiteCurrencyDefault,
			BankName:           bankName,
			BankAccountNumber:  accountNumber,
			BankAccountHolder:  accountHolder,
			Status:             constants.PayoutStatusPending,
		}
		if err := repoTx.CreatePayout(payout); err != nil {
			return err
		}
		createdID = payout.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetPayoutByID(createdID)
}

// ReviewPayout 管理端审核提现申请。
// 仅允许 pending -> processed/rejected，标记打款必须附转账凭证。
func (s *AffiliateService) ReviewPayout(adminID, payoutID uint, input PayoutReviewInput) (*models.PayoutRequest, error) {
	if payoutID == 0 || s.repo == nil {
		return nil, ErrNotFound
	}
	action := strings.ToLower(strings.TrimSpace(input.Action))
	if action != constants.PayoutActionProcess && action != constants.PayoutActionReject {
		return nil, ErrPayoutStatusInvalid
	}
	proofPath := strings.TrimSpace(input.ProofPath)
	if action == constants.PayoutActionProcess && proofPath == "" {
		return nil, ErrPayoutProofRequired
	}

	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		payout, err := repoTx.GetPayoutByIDForUpdate(payoutID)
		if err != nil {
			return err
		}
		if payout == nil {
			return ErrNotFound
		}
		if payout.Status != constants.PayoutStatusPending {
			return ErrPayoutStatusInvalid
		}

		now := time.Now()
		payout.ReviewedByAdminID = &adminID
		payout.ReviewedAt = &now
		if action == constants.PayoutActionProcess {
			payout.Status = constants.PayoutStatusProcessed
			payout.ProofPath = proofPath
			payout.RejectReason = ""
		} else {
			payout.Status = constants.PayoutStatusRejected
			payout.RejectReason = strings.TrimSpace(input.RejectReason)
		}
		return repoTx.UpdatePayout(payout)
	})
	if err != nil {
		return nil, err
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueuePayoutResultEmail(queue.PayoutResultEmailPayload{PayoutID: payoutID}); err != nil {
			logger.Warnw("payout_enqueue_result_email_failed",
				"payout_id", payoutID,
				"error", err,
			)
		}
	}
	return s.repo.GetPayoutByID(payoutID)
}

// UpdateProfileStatus 管理端更新推广档案状态
func (s *AffiliateService) UpdateProfileStatus(profileID uint, rawStatus string) (*models.AffiliateProfile, error) {
	if profileID == 0 || s.repo == nil {
		return nil, ErrNotFound
	}
	nextStatus := strings.TrimSpace(rawStatus)
	if nextStatus != constants.AffiliateProfileStatusActive && nextStatus != constants.AffiliateProfileStatusDisabled {
		return nil, ErrAffiliateProfileStatusInvalid
	}

	profile, err := s.repo.GetProfileByID(profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(profile.Status) == nextStatus {
		return profile, nil
	}
	if err := s.repo.UpdateProfileStatus(profileID, nextStatus); err != nil {
		return nil, err
	}
	return s.repo.GetProfileByID(profileID)
}

// ListAdminProfiles 后台查询推广用户列表（附余额快照）
func (s *AffiliateService) ListAdminProfiles(filter repository.AffiliateProfileListFilter) ([]AffiliateAdminProfileItem, int64, error) {
	if s.repo == nil {
		return []AffiliateAdminProfileItem{}, 0, nil
	}
	rows, total, err := s.repo.ListProfiles(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]AffiliateAdminProfileItem, 0, len(rows))
	for _, row := range rows {
		balance, err := s.GetBalance(row.ID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, AffiliateAdminProfileItem{
			Profile: row,
			Balance: balance,
		})
	}
	return result, total, nil
}

// ListAdminCommissions 后台查询佣金账目
func (s *AffiliateService) ListAdminCommissions(filter repository.CommissionListFilter) ([]models.CommissionRecord, int64, error) {
	if s.repo == nil {
		return []models.CommissionRecord{}, 0, nil
	}
	return s.repo.ListCommissions(filter)
}

// ListAdminPayouts 后台查询提现申请
func (s *AffiliateService) ListAdminPayouts(filter repository.PayoutListFilter) ([]models.PayoutRequest, int64, error) {
	if s.repo == nil {
		return []models.PayoutRequest{}, 0, nil
	}
	return s.repo.ListPayouts(filter)
}

func calcAffiliateConversion(orders, clicks int64) float64 {
	if clicks <= 0 || orders <= 0 {
		return 0
	}
	value := (float64(orders) / float64(clicks)) * 100
	return math.Round(value*100) / 100
}

func normalizeReferralCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// referralCodePrefix 提取昵称中的字母数字作为推广码前缀，无可用字符时回退 AG。
func referralCodePrefix(displayName string) string {
	var builder strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(displayName)) {
		if builder.Len() >= referralCodePrefixMaxLen {
			break
		}
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	if builder.Len() == 0 {
		return "AG"
	}
	return builder.String()
}

func randomReferralSuffix(length int) (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	var builder strings.Builder
	builder.Grow(length)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}
	return builder.String(), nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
