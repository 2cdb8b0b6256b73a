package i18n

import (
	"fmt"
	"strings"

	"github.com/bullion-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 站点默认语言
const DefaultLocale = constants.LocaleIDID

// contextLocaleKey 请求上下文中的语言键
const contextLocaleKey = "locale"

// ResolveLocale 解析请求语言
// 优先级：query 参数 locale > Accept-Language 头 > 默认语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if cached, ok := c.Get(contextLocaleKey); ok {
		if locale, ok := cached.(string); ok && locale != "" {
			return locale
		}
	}

	locale := NormalizeLocale(c.Query("locale"))
	if locale == "" {
		locale = matchAcceptLanguage(c.GetHeader("Accept-Language"))
	}
	if locale == "" {
		locale = DefaultLocale
	}
	c.Set(contextLocaleKey, locale)
	return locale
}

// NormalizeLocale 规范化语言标识，不支持的语言返回空串
func NormalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, locale := range constants.SupportedLocales {
		if strings.EqualFold(raw, locale) {
			return locale
		}
	}
	// 仅语言前缀匹配（如 id 匹配 id-ID）
	prefix := strings.ToLower(strings.SplitN(raw, "-", 2)[0])
	for _, locale := range constants.SupportedLocales {
		if strings.ToLower(strings.SplitN(locale, "-", 2)[0]) == prefix {
			return locale
		}
	}
	return ""
}

func matchAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := NormalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return ""
}

// T 按语言取文案，缺失时回退默认语言，再缺失时返回键本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if locale != DefaultLocale {
		if msg, ok := messages[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 按语言取格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
