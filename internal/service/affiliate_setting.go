package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/models"
)

const (
	affiliateCommissionRateMin = 0
	affiliateCommissionRateMax = 100
	affiliateMinPayoutFloor    = 0

	affiliateDefaultCommissionRate = 2.5
	affiliateDefaultMinPayout      = 10000
)

// AffiliateSetting 推广返利配置
type AffiliateSetting struct {
	Enabled               bool    `json:"enabled"`
	CommissionRatePercent float64 `json:"commission_rate_percent"`
	MinPayoutAmount       float64 `json:"min_payout_amount"`
}

// AffiliateDefaultSetting 默认推广返利配置
func AffiliateDefaultSetting() AffiliateSetting {
	return NormalizeAffiliateSetting(AffiliateSetting{
		Enabled:               true,
		CommissionRatePercent: affiliateDefaultCommissionRate,
		MinPayoutAmount:       affiliateDefaultMinPayout,
	})
}

// NormalizeAffiliateSetting 归一化推广返利配置
func NormalizeAffiliateSetting(setting AffiliateSetting) AffiliateSetting {
	setting.CommissionRatePercent = roundAffiliateDecimal(setting.CommissionRatePercent)
	if setting.CommissionRatePercent < affiliateCommissionRateMin {
		setting.CommissionRatePercent = affiliateCommissionRateMin
	}
	if setting.CommissionRatePercent > affiliateCommissionRateMax {
		setting.CommissionRatePercent = affiliateCommissionRateMax
	}

	setting.MinPayoutAmount = roundAffiliateDecimal(setting.MinPayoutAmount)
	if setting.MinPayoutAmount < affiliateMinPayoutFloor {
		setting.MinPayoutAmount = affiliateMinPayoutFloor
	}
	return setting
}

// ValidateAffiliateSetting 校验推广返利配置
func ValidateAffiliateSetting(setting AffiliateSetting) error {
	normalized := NormalizeAffiliateSetting(setting)
	if normalized.CommissionRatePercent < affiliateCommissionRateMin || normalized.CommissionRatePercent > affiliateCommissionRateMax {
		return fmt.Errorf("%w: 返利比例必须在 0-100 之间", ErrAffiliateConfigInvalid)
	}
	if normalized.MinPayoutAmount < affiliateMinPayoutFloor {
		return fmt.Errorf("%w: 最低提现金额不能小于 0", ErrAffiliateConfigInvalid)
	}
	return nil
}

// AffiliateSettingToMap 将推广返利配置转换为 settings 存储结构
func AffiliateSettingToMap(setting AffiliateSetting) map[string]interface{} {
	normalized := NormalizeAffiliateSetting(setting)
	return map[string]interface{}{
		"enabled":                 normalized.Enabled,
		"commission_rate_percent": normalized.CommissionRatePercent,
		"min_payout_amount":       normalized.MinPayoutAmount,
	}
}

func affiliateSettingFromJSON(raw models.JSON, fallback AffiliateSetting) AffiliateSetting {
	result := fallback

	if enabledRaw, ok := raw["enabled"]; ok {
		result.Enabled = parseSettingBool(enabledRaw)
	}
	if rateRaw, ok := raw["commission_rate_percent"]; ok {
		if parsed, err := parseSettingFloat(rateRaw); err == nil {
			result.CommissionRatePercent = parsed
		}
	}
	if minPayoutRaw, ok := raw["min_payout_amount"]; ok {
		if parsed, err := parseSettingFloat(minPayoutRaw); err == nil {
			result.MinPayoutAmount = parsed
		}
	}

	return NormalizeAffiliateSetting(result)
}

func normalizeAffiliateSettingMap(value map[string]interface{}) models.JSON {
	setting := affiliateSettingFromJSON(models.JSON(value), AffiliateDefaultSetting())
	return models.JSON(AffiliateSettingToMap(setting))
}

// GetAffiliateSetting 获取推广返利设置（优先 settings，空时回退默认）
func (s *SettingService) GetAffiliateSetting() (AffiliateSetting, error) {
	fallback := AffiliateDefaultSetting()
	if s == nil {
		return fallback, nil
	}

	value, err := s.GetByKey(constants.SettingKeyAffiliateConfig)
	if err != nil {
		return fallback, err
	}
	if value == nil {
		return fallback, nil
	}
	return affiliateSettingFromJSON(value, fallback), nil
}

// UpdateAffiliateSetting 更新推广返利设置
func (s *SettingService) UpdateAffiliateSetting(setting AffiliateSetting) (AffiliateSetting, error) {
	normalized := NormalizeAffiliateSetting(setting)
	if err := ValidateAffiliateSetting(normalized); err != nil {
		return AffiliateDefaultSetting(), err
	}
	if _, err := s.Update(constants.SettingKeyAffiliateConfig, AffiliateSettingToMap(normalized)); err != nil {
		return AffiliateDefaultSetting(), err
	}
	return normalized, nil
}

func parseSettingFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("empty string")
		}
		return strconv.ParseFloat(trimmed, 64)
	default:
		return 0, fmt.Errorf("unsupported value type")
	}
}

func roundAffiliateDecimal(value float64) float64 {
	return math.Round(value*100) / 100
}
