package service

import (
	"errors"
	"testing"

	"github.com/bullion-next/internal/constants"
)

func TestGetAffiliateSettingFallbackDefaults(t *testing.T) {
	repo := newMockSettingRepo()
	svc := NewSettingService(repo)

	setting, err := svc.GetAffiliateSetting()
	if err != nil {
		t.Fatalf("get affiliate setting failed: %v", err)
	}
	if !setting.Enabled {
		t.Fatalf("expected default enabled true")
	}
	if setting.CommissionRatePercent != 2.5 {
		t.Fatalf("expected default commission rate 2.5, got %v", setting.CommissionRatePercent)
	}
	if setting.MinPayoutAmount != 10000 {
		t.Fatalf("expected default min payout 10000, got %v", setting.MinPayoutAmount)
	}
}

func TestUpdateAffiliateSettingNormalize(t *testing.T) {
	repo := newMockSettingRepo()
	svc := NewSettingService(repo)

	setting, err := svc.UpdateAffiliateSetting(AffiliateSetting{
		Enabled:               true,
		CommissionRatePercent: 123.456,
		MinPayoutAmount:       -100.239,
	})
	if err != nil {
		t.Fatalf("update affiliate setting failed: %v", err)
	}
	if !setting.Enabled {
		t.Fatalf("expected enabled true")
	}
	if setting.CommissionRatePercent != 100 {
		t.Fatalf("expected commission rate clamp to 100, got %v", setting.CommissionRatePercent)
	}
	if setting.MinPayoutAmount != 0 {
		t.Fatalf("expected min payout clamp to 0, got %v", setting.MinPayoutAmount)
	}

	saved, ok := repo.store[constants.SettingKeyAffiliateConfig]
	if !ok {
		t.Fatalf("expected affiliate setting saved")
	}
	if saved["commission_rate_percent"] != 100.0 {
		t.Fatalf("expected saved commission rate 100, got %v", saved["commission_rate_percent"])
	}

	// 更新后的读取应返回存储值而不是默认值
	reloaded, err := svc.GetAffiliateSetting()
	if err != nil {
		t.Fatalf("reload affiliate setting failed: %v", err)
	}
	if reloaded.CommissionRatePercent != 100 || reloaded.MinPayoutAmount != 0 {
		t.Fatalf("unexpected reloaded setting: %+v", reloaded)
	}
}

func TestAffiliateSettingFromJSONPartialKeys(t *testing.T) {
	repo := newMockSettingRepo()
	svc := NewSettingService(repo)

	if _, err := svc.Update(constants.SettingKeyAffiliateConfig, map[string]interface{}{
		"commission_rate_percent": "7.5",
	}); err != nil {
		t.Fatalf("seed partial setting failed: %v", err)
	}

	setting, err := svc.GetAffiliateSetting()
	if err != nil {
		t.Fatalf("get affiliate setting failed: %v", err)
	}
	if setting.CommissionRatePercent != 7.5 {
		t.Fatalf("expected parsed rate 7.5, got %v", setting.CommissionRatePercent)
	}
	// 未提供的键沿用默认值
	if setting.MinPayoutAmount != 10000 {
		t.Fatalf("expected default min payout preserved, got %v", setting.MinPayoutAmount)
	}
}

func TestValidateAffiliateSettingRange(t *testing.T) {
	if err := ValidateAffiliateSetting(AffiliateSetting{
		Enabled:               true,
		CommissionRatePercent: 2.5,
		MinPayoutAmount:       10000,
	}); err != nil {
		t.Fatalf("expected valid setting, got %v", err)
	}

	// 归一化会把越界值钳回合法区间，校验不应报错
	if err := ValidateAffiliateSetting(AffiliateSetting{
		CommissionRatePercent: -5,
		MinPayoutAmount:       -1,
	}); err != nil && !errors.Is(err, ErrAffiliateConfigInvalid) {
		t.Fatalf("unexpected error type: %v", err)
	}
}
