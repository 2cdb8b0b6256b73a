package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/i18n"
	"github.com/bullion-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildOrderStatusContent(t *testing.T) {
	tests := []struct {
		name                string
		locale              string
		status              string
		tracking            string
		wantSubjectContains []string
		wantBodyContains    []string
	}{
		{
			name:   "unpaid_id",
			locale: constants.LocaleIDID,
			status: constants.OrderStatusUnpaid,
			wantSubjectContains: []string{
				"Pembaruan Pesanan",
				"Menunggu Pembayaran",
			},
			wantBodyContains: []string{
				"INV-UNPAID",
				"unggah bukti pembayaran",
			},
		},
		{
			name:   "canceled_en",
			locale: constants.LocaleEnUS,
			status: constants.OrderStatusCanceled,
			wantSubjectContains: []string{
				"Order Update",
				"Canceled",
			},
			wantBodyContains: []string{
				"Order INV-CANCEL has been canceled",
			},
		},
		{
			name:     "shipping_with_tracking_zh",
			locale:   constants.LocaleZhCN,
			status:   constants.OrderStatusShipping,
			tracking: "JNE REG 001234",
			wantSubjectContains: []string{
				"订单状态更新",
				"配送中",
			},
			wantBodyContains: []string{
				"已发货",
				"JNE REG 001234",
			},
		},
		{
			name:   "shipping_without_tracking_en",
			locale: constants.LocaleEnUS,
			status: constants.OrderStatusShipping,
			wantSubjectContains: []string{
				"Order Update",
				"Shipping",
			},
			wantBodyContains: []string{
				"Shipping info: -",
			},
		},
		{
			name:   "unknown_status_fallback_en",
			locale: constants.LocaleEnUS,
			status: "archived",
			wantSubjectContains: []string{
				"Order Update",
				"archived",
			},
			wantBodyContains: []string{
				"is now archived",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := OrderStatusEmailInput{
				OrderNo:      pickOrderNo(tt.status),
				Status:       tt.status,
				Amount:       models.NewMoneyFromDecimal(decimal.NewFromInt(1550000)),
				Currency:     constants.SiteCurrencyDefault,
				TrackingInfo: tt.tracking,
			}
			subject, body := buildOrderStatusContent(input, tt.locale)
			for _, expected := range tt.wantSubjectContains {
				if !strings.Contains(subject, expected) {
					t.Fatalf("subject missing %q: %s", expected, subject)
				}
			}
			for _, expected := range tt.wantBodyContains {
				if !strings.Contains(body, expected) {
					t.Fatalf("body missing %q: %s", expected, body)
				}
			}
		})
	}
}

func pickOrderNo(status string) string {
	switch status {
	case constants.OrderStatusUnpaid:
		return "INV-UNPAID"
	case constants.OrderStatusCanceled:
		return "INV-CANCEL"
	default:
		return "INV-SHIP"
	}
}

func TestBuildPayoutResultContent(t *testing.T) {
	processed := PayoutResultEmailInput{
		Status:   constants.PayoutStatusProcessed,
		Amount:   models.NewMoneyFromDecimal(decimal.NewFromInt(50000)),
		Currency: constants.SiteCurrencyDefault,
	}
	subject, body := buildPayoutResultContent(processed, constants.LocaleIDID)
	if !strings.Contains(subject, "Hasil Pencairan Komisi") {
		t.Fatalf("unexpected processed subject: %s", subject)
	}
	if !strings.Contains(body, "telah ditransfer") {
		t.Fatalf("unexpected processed body: %s", body)
	}

	rejected := PayoutResultEmailInput{
		Status:       constants.PayoutStatusRejected,
		Amount:       models.NewMoneyFromDecimal(decimal.NewFromInt(50000)),
		Currency:     constants.SiteCurrencyDefault,
		RejectReason: "nomor rekening tidak cocok",
	}
	_, body = buildPayoutResultContent(rejected, constants.LocaleIDID)
	if !strings.Contains(body, "ditolak") || !strings.Contains(body, "nomor rekening tidak cocok") {
		t.Fatalf("unexpected rejected body: %s", body)
	}

	// 驳回原因为空时以占位符兜底
	rejected.RejectReason = "  "
	_, body = buildPayoutResultContent(rejected, constants.LocaleEnUS)
	if !strings.Contains(body, "Reason: -") {
		t.Fatalf("expected placeholder reason, got: %s", body)
	}
}

func TestBuildVerifyCodeContentByPurpose(t *testing.T) {
	subject, body := buildVerifyCodeContent("852013", constants.VerifyPurposeRegister, constants.LocaleEnUS)
	if subject != "Registration Verification Code" {
		t.Fatalf("unexpected register subject: %s", subject)
	}
	if !strings.Contains(body, "852013") {
		t.Fatalf("body missing code: %s", body)
	}

	subject, _ = buildVerifyCodeContent("852013", constants.VerifyPurposeReset, constants.LocaleIDID)
	if subject != "Kode Verifikasi Atur Ulang Kata Sandi" {
		t.Fatalf("unexpected reset subject: %s", subject)
	}

	subject, _ = buildVerifyCodeContent("852013", "unknown", constants.LocaleIDID)
	if subject != "Kode Verifikasi Email" {
		t.Fatalf("unexpected generic subject: %s", subject)
	}
}

func TestResolveEmailLocale(t *testing.T) {
	if got := resolveEmailLocale("id"); got != constants.LocaleIDID {
		t.Fatalf("expected id prefix match, got %s", got)
	}
	if got := resolveEmailLocale("EN-us"); got != constants.LocaleEnUS {
		t.Fatalf("expected case-insensitive match, got %s", got)
	}
	if got := resolveEmailLocale("fr-FR"); got != i18n.DefaultLocale {
		t.Fatalf("expected default locale fallback, got %s", got)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "smtp_550_no_such_recipient",
			err:  errors.New("550 No such recipient here"),
			want: true,
		},
		{
			name: "smtp_user_unknown",
			err:  errors.New("SMTP 5.1.1 user unknown"),
			want: true,
		},
		{
			name: "smtp_550_mailbox_unavailable",
			err:  errors.New("550 mailbox unavailable"),
			want: true,
		},
		{
			name: "network_timeout",
			err:  errors.New("dial tcp timeout"),
			want: false,
		},
		{
			name: "nil_error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEmailRecipientRejected(tt.err); got != tt.want {
				t.Fatalf("isEmailRecipientRejected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeEmailSendError(t *testing.T) {
	rejected := errors.New("550 No such recipient here")
	if got := normalizeEmailSendError(rejected); !errors.Is(got, ErrEmailRecipientRejected) {
		t.Fatalf("normalizeEmailSendError() expected ErrEmailRecipientRejected, got %v", got)
	}

	networkErr := errors.New("dial tcp timeout")
	if got := normalizeEmailSendError(networkErr); !errors.Is(got, networkErr) {
		t.Fatalf("normalizeEmailSendError() should keep original error, got %v", got)
	}

	if got := normalizeEmailSendError(nil); got != nil {
		t.Fatalf("normalizeEmailSendError(nil) should be nil, got %v", got)
	}
}
