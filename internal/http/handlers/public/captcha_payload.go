package public

import (
	"strings"

	"github.com/bullion-next/internal/service"
)

// CaptchaPayloadRequest 验证码请求载荷
// 未启用场景允许空载荷，由 service 层根据配置判定是否必填。
type CaptchaPayloadRequest struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

func (r CaptchaPayloadRequest) toServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:   strings.TrimSpace(r.CaptchaID),
		CaptchaCode: strings.TrimSpace(r.CaptchaCode),
	}
}
