package service

import (
	"testing"

	"github.com/bullion-next/internal/constants"
)

func TestUpdateSiteSettingNormalized(t *testing.T) {
	repo := newMockSettingRepo()
	svc := NewSettingService(repo)

	result, err := svc.Update(constants.SettingKeySiteConfig, map[string]interface{}{
		"currency": "  idr ",
		"brand": map[string]interface{}{
			"site_name": "  Perak Murni  ",
		},
		"contact": map[string]interface{}{
			"telegram": "  https://t.me/perakmurni  ",
			"whatsapp": 123,
		},
		"seo": map[string]interface{}{
			"title": map[string]interface{}{
				"id-ID": "  Jual Perak Batangan  ",
				"en-US": "  Silver Bullion Store  ",
			},
		},
		"about": map[string]interface{}{
			"hero": map[string]interface{}{
				"title": map[string]interface{}{
					"id-ID": "  Tentang Kami  ",
					"en-US": "  About Us  ",
				},
				"subtitle": map[string]interface{}{
					"id-ID": "  Perak murni langsung dari pabrik  ",
				},
			},
			"introduction": map[string]interface{}{
				"id-ID": "  Kami menyediakan perak batangan bersertifikat  ",
				"en-US": 123,
			},
			"services": map[string]interface{}{
				"title": map[string]interface{}{
					"id-ID": "  Layanan Kami  ",
				},
				"items": []interface{}{
					map[string]interface{}{
						"id-ID": "  Pengiriman ke seluruh Indonesia  ",
						"en-US": "  Nationwide delivery  ",
					},
					map[string]interface{}{
						"id-ID": "",
						"en-US": "",
						"zh-CN": "",
					},
					"invalid",
				},
			},
			"contact": map[string]interface{}{
				"title": map[string]interface{}{
					"id-ID": "  Hubungi Kami  ",
				},
				"text": map[string]interface{}{
					"id-ID": "  Hubungi kami melalui kanal berikut  ",
					"en-US": "  Contact us via channels below  ",
				},
			},
		},
		"languages": []interface{}{" id-ID ", "en-US", "", "en-US"},
	})
	if err != nil {
		t.Fatalf("update site config failed: %v", err)
	}

	if result[constants.SettingFieldSiteCurrency] != "IDR" {
		t.Fatalf("unexpected currency: %v", result[constants.SettingFieldSiteCurrency])
	}

	brand, ok := result["brand"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid brand payload type: %T", result["brand"])
	}
	if brand["site_name"] != "Perak Murni" {
		t.Fatalf("unexpected brand.site_name: %v", brand["site_name"])
	}

	contact, ok := result["contact"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid contact payload type: %T", result["contact"])
	}
	if contact["telegram"] != "https://t.me/perakmurni" {
		t.Fatalf("unexpected telegram: %v", contact["telegram"])
	}
	if contact["whatsapp"] != "" {
		t.Fatalf("unexpected whatsapp: %v", contact["whatsapp"])
	}

	seo, ok := result["seo"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid seo payload type: %T", result["seo"])
	}
	title, ok := seo["title"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid seo.title payload type: %T", seo["title"])
	}
	if title["id-ID"] != "Jual Perak Batangan" {
		t.Fatalf("unexpected seo.title.id-ID: %v", title["id-ID"])
	}
	if title["en-US"] != "Silver Bullion Store" {
		t.Fatalf("unexpected seo.title.en-US: %v", title["en-US"])
	}
	if title["zh-CN"] != "" {
		t.Fatalf("unexpected seo.title.zh-CN: %v", title["zh-CN"])
	}

	legal, ok := result["legal"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid legal payload type: %T", result["legal"])
	}
	privacy, ok := legal["privacy"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid legal.privacy payload type: %T", legal["privacy"])
	}
	if privacy["id-ID"] != "" || privacy["en-US"] != "" || privacy["zh-CN"] != "" {
		t.Fatalf("unexpected legal.privacy payload: %+v", privacy)
	}

	about, ok := result["about"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about payload type: %T", result["about"])
	}

	hero, ok := about["hero"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.hero payload type: %T", about["hero"])
	}
	heroTitle, ok := hero["title"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.hero.title payload type: %T", hero["title"])
	}
	if heroTitle["id-ID"] != "Tentang Kami" || heroTitle["en-US"] != "About Us" || heroTitle["zh-CN"] != "" {
		t.Fatalf("unexpected about.hero.title payload: %+v", heroTitle)
	}

	introduction, ok := about["introduction"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.introduction payload type: %T", about["introduction"])
	}
	if introduction["id-ID"] != "Kami menyediakan perak batangan bersertifikat" || introduction["en-US"] != "" {
		t.Fatalf("unexpected about.introduction payload: %+v", introduction)
	}

	services, ok := about["services"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.services payload type: %T", about["services"])
	}
	serviceItems, ok := services["items"].([]interface{})
	if !ok {
		t.Fatalf("invalid about.services.items payload type: %T", services["items"])
	}
	if len(serviceItems) != 1 {
		t.Fatalf("unexpected about.services.items size: %d", len(serviceItems))
	}
	serviceItem, ok := serviceItems[0].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.services.items[0] payload type: %T", serviceItems[0])
	}
	if serviceItem["id-ID"] != "Pengiriman ke seluruh Indonesia" || serviceItem["en-US"] != "Nationwide delivery" || serviceItem["zh-CN"] != "" {
		t.Fatalf("unexpected about.services.items[0] payload: %+v", serviceItem)
	}

	aboutContact, ok := about["contact"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.contact payload type: %T", about["contact"])
	}
	contactText, ok := aboutContact["text"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.contact.text payload type: %T", aboutContact["text"])
	}
	if contactText["id-ID"] != "Hubungi kami melalui kanal berikut" || contactText["en-US"] != "Contact us via channels below" {
		t.Fatalf("unexpected about.contact.text payload: %+v", contactText)
	}

	languages, ok := result["languages"].([]string)
	if !ok {
		t.Fatalf("invalid languages payload type: %T", result["languages"])
	}
	if len(languages) != 2 || languages[0] != "id-ID" || languages[1] != "en-US" {
		t.Fatalf("unexpected languages: %+v", languages)
	}
}

func TestUpdateSiteSettingNormalizedDefaults(t *testing.T) {
	repo := newMockSettingRepo()
	svc := NewSettingService(repo)

	result, err := svc.Update(constants.SettingKeySiteConfig, map[string]interface{}{})
	if err != nil {
		t.Fatalf("update site config failed: %v", err)
	}

	// 未提供币种时回退站点默认币种
	if result[constants.SettingFieldSiteCurrency] != constants.SiteCurrencyDefault {
		t.Fatalf("unexpected default currency: %v", result[constants.SettingFieldSiteCurrency])
	}

	brand, ok := result["brand"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid brand payload type: %T", result["brand"])
	}
	if brand["site_name"] != "" {
		t.Fatalf("unexpected default brand payload: %+v", brand)
	}

	about, ok := result["about"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about payload type: %T", result["about"])
	}

	hero, ok := about["hero"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.hero payload type: %T", about["hero"])
	}
	heroTitle, ok := hero["title"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.hero.title payload type: %T", hero["title"])
	}
	if heroTitle["id-ID"] != "" || heroTitle["en-US"] != "" || heroTitle["zh-CN"] != "" {
		t.Fatalf("unexpected default about.hero.title: %+v", heroTitle)
	}

	services, ok := about["services"].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid about.services payload type: %T", about["services"])
	}
	serviceItems, ok := services["items"].([]interface{})
	if !ok {
		t.Fatalf("invalid about.services.items payload type: %T", services["items"])
	}
	if len(serviceItems) != 0 {
		t.Fatalf("unexpected default about.services.items size: %d", len(serviceItems))
	}

	// 未提供 languages 键时不落库
	if _, exists := result["languages"]; exists {
		t.Fatalf("languages should stay absent when not provided")
	}
}

func TestNormalizeSiteScripts(t *testing.T) {
	scripts := normalizeSiteScripts([]interface{}{
		map[string]interface{}{
			"name":     "  analytics  ",
			"enabled":  "true",
			"position": "body_end",
			"code":     "  console.log('ok')  ",
		},
		map[string]interface{}{
			"name": "empty-code",
			"code": "   ",
		},
		map[string]interface{}{
			"name":     "bad-position",
			"enabled":  1,
			"position": "sidebar",
			"code":     "window.x=1",
		},
		"invalid",
	})

	if len(scripts) != 2 {
		t.Fatalf("scripts len want 2 got %d", len(scripts))
	}

	first, ok := scripts[0].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid script payload type: %T", scripts[0])
	}
	if first["name"] != "analytics" || first["enabled"] != true || first["position"] != "body_end" {
		t.Fatalf("unexpected first script: %+v", first)
	}

	second, ok := scripts[1].(map[string]interface{})
	if !ok {
		t.Fatalf("invalid script payload type: %T", scripts[1])
	}
	// 非法位置回退 head
	if second["position"] != "head" || second["enabled"] != true {
		t.Fatalf("unexpected second script: %+v", second)
	}
}

func TestNormalizeSiteLanguagesFallback(t *testing.T) {
	languages := normalizeSiteLanguages([]interface{}{"", "   "})
	if len(languages) != len(constants.SupportedLocales) {
		t.Fatalf("expected fallback to supported locales, got %+v", languages)
	}

	languages = normalizeSiteLanguages("not-a-list")
	if len(languages) != len(constants.SupportedLocales) || languages[0] != constants.LocaleIDID {
		t.Fatalf("expected supported locales for invalid payload, got %+v", languages)
	}
}
