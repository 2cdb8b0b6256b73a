package main

import (
	"fmt"
	"time"

	"github.com/bullion-next/internal/config"
	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/logger"
	"github.com/bullion-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			NameJSON: models.JSON(map[string]interface{}{
				"zh-CN": "银条",
				"id-ID": "Batangan Perak",
				"en-US": "Silver Bars",
			}),
			Slug:      "silver-bars",
			SortOrder: 300,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"zh-CN": "银币",
				"id-ID": "Koin Perak",
				"en-US": "Silver Coins",
			}),
			Slug:      "silver-coins",
			SortOrder: 200,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"zh-CN": "银饰礼品",
				"id-ID": "Perhiasan & Hadiah",
				"en-US": "Silver Gifts",
			}),
			Slug:      "silver-gifts",
			SortOrder: 100,
		},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"silver-bars", "silver-coins", "silver-gifts"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	barsID := categoryIDs["silver-bars"]
	coinsID := categoryIDs["silver-coins"]
	giftsID := categoryIDs["silver-gifts"]

	// 添加商品
	products := []models.Product{
		{
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "精炼银条 100 克",
				"id-ID": "Batangan Perak Murni 100 Gram",
				"en-US": "Fine Silver Bar 100g",
			}),
			Slug: "silver-bar-100g",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"zh-CN": "999 纯银铸造，附出厂证书与独立编号。",
				"id-ID": "Perak murni 999 dengan sertifikat dan nomor seri.",
				"en-US": "Cast 999 fine silver with certificate and serial number.",
			}),
			ContentJSON: models.JSON(map[string]interface{}{
				"zh-CN": "每根银条均由合作精炼厂铸造，成色 999，随附出厂证书。下单后客服按当日银价核算运费并确认总价。",
				"id-ID": "Setiap batangan dicetak oleh pabrik pemurnian mitra, kadar 999, disertai sertifikat. Setelah pemesanan, admin mengonfirmasi total harga sesuai harga perak hari ini.",
				"en-US": "Each bar is cast by our partner refinery at 999 fineness and ships with a certificate. After checkout the back office confirms shipping and the final total against the daily silver price.",
			}),
			Brand:       "Antam",
			Purity:      "999",
			WeightGrams: models.NewWeightFromDecimal(decimal.NewFromInt(100)),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(1750000)),
			CategoryID:  barsID,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1610375461246-83df859d849d?w=800",
			}),
			Tags:       models.StringArray([]string{"Bar", "999", "Certificate"}),
			StockTotal: 50,
			IsActive:   true,
			SortOrder:  300,
		},
		{
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "精炼银条 250 克",
				"id-ID": "Batangan Perak Murni 250 Gram",
				"en-US": "Fine Silver Bar 250g",
			}),
			Slug: "silver-bar-250g",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"zh-CN": "999 纯银，适合长期储蓄的规格。",
				"id-ID": "Perak murni 999, ukuran favorit untuk tabungan jangka panjang.",
				"en-US": "999 fine silver, a favorite size for long-term savings.",
			}),
			Brand:       "Antam",
			Purity:      "999",
			WeightGrams: models.NewWeightFromDecimal(decimal.NewFromInt(250)),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(4300000)),
			CategoryID:  barsID,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1605792657660-596af9009e82?w=800",
			}),
			Tags:       models.StringArray([]string{"Bar", "999"}),
			StockTotal: 30,
			IsActive:   true,
			SortOrder:  290,
		},
		{
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "精炼银条 1 千克",
				"id-ID": "Batangan Perak Murni 1 Kilogram",
				"en-US": "Fine Silver Bar 1kg",
			}),
			Slug: "silver-bar-1kg",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"zh-CN": "1000 克整条，大额储蓄首选，工厂直供。",
				"id-ID": "Batangan 1000 gram langsung dari pabrik, pilihan untuk investasi besar.",
				"en-US": "Full 1000 gram bar supplied directly from the factory.",
			}),
			Brand:       "Antam",
			Purity:      "999",
			WeightGrams: models.NewWeightFromDecimal(decimal.NewFromInt(1000)),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(16800000)),
			CategoryID:  barsID,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1567427018141-0584cfcbf1b8?w=800",
			}),
			Tags:       models.StringArray([]string{"Bar", "999", "Kilo"}),
			StockTotal: 10,
			IsActive:   true,
			SortOrder:  280,
		},
		{
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "纪念银币 1 盎司",
				"id-ID": "Koin Perak 1 Oz",
				"en-US": "Silver Coin 1 Oz",
			}),
			Slug: "silver-coin-1oz",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"zh-CN": "31.1 克纪念银币，独立密封包装。",
				"id-ID": "Koin perak 31,1 gram dalam kemasan kapsul tersegel.",
				"en-US": "31.1 gram commemorative coin in a sealed capsule.",
			}),
			Brand:       "Bullion-Next Mint",
			Purity:      "999",
			WeightGrams: models.NewWeightFromDecimal(decimal.NewFromFloat(31.1)),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(620000)),
			CategoryID:  coinsID,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1621155346337-1d19476ba7d6?w=800",
			}),
			Tags:       models.StringArray([]string{"Coin", "1oz"}),
			StockTotal: 200,
			IsActive:   true,
			SortOrder:  200,
		},
		{
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "迷你银条 10 克（礼品装）",
				"id-ID": "Batangan Mini 10 Gram (Edisi Hadiah)",
				"en-US": "Mini Silver Bar 10g (Gift Edition)",
			}),
			Slug: "silver-gift-10g",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"zh-CN": "10 克迷你银条，附礼盒包装，适合馈赠。",
				"id-ID": "Batangan mini 10 gram dengan kotak hadiah.",
				"en-US": "10 gram mini bar with a gift box.",
			}),
			Brand:       "Bullion-Next Mint",
			Purity:      "999",
			WeightGrams: models.NewWeightFromDecimal(decimal.NewFromInt(10)),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(210000)),
			CategoryID:  giftsID,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1599707367072-cd6ada2bc375?w=800",
			}),
			Tags:       models.StringArray([]string{"Gift", "Mini"}),
			StockTotal: 0,
			IsActive:   true,
			SortOrder:  100,
		},
		{
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "925 银手链",
				"id-ID": "Gelang Perak 925",
				"en-US": "925 Silver Bracelet",
			}),
			Slug: "silver-bracelet-925",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"zh-CN": "925 成色手工银饰，约 18 克。",
				"id-ID": "Gelang perak 925 buatan tangan, sekitar 18 gram.",
				"en-US": "Handmade 925 silver bracelet, about 18 grams.",
			}),
			Brand:       "Bullion-Next Atelier",
			Purity:      "925",
			WeightGrams: models.NewWeightFromDecimal(decimal.NewFromInt(18)),
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(380000)),
			CategoryID:  giftsID,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800",
			}),
			Tags:       models.StringArray([]string{"Jewelry", "925"}),
			StockTotal: 40,
			IsActive:   true,
			SortOrder:  90,
		},
	}

	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category_id missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			existing.TitleJSON = prod.TitleJSON
			existing.DescriptionJSON = prod.DescriptionJSON
			existing.ContentJSON = prod.ContentJSON
			existing.Brand = prod.Brand
			existing.Purity = prod.Purity
			existing.WeightGrams = prod.WeightGrams
			existing.PriceAmount = prod.PriceAmount
			existing.CategoryID = prod.CategoryID
			existing.Images = prod.Images
			existing.Tags = prod.Tags
			existing.StockTotal = prod.StockTotal
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	// 添加 Banner（首页主视觉）
	now := time.Now()
	primaryStart := now.Add(-24 * time.Hour)
	primaryEnd := now.AddDate(0, 2, 0)
	secondaryStart := now.Add(-12 * time.Hour)
	secondaryEnd := now.AddDate(0, 1, 0)
	draftStart := now.Add(-6 * time.Hour)
	draftEnd := now.AddDate(0, 0, 15)

	banners := []models.Banner{
		{
			Name:     "首页主视觉-银条储蓄",
			Position: constants.BannerPositionHomeHero,
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "足银储蓄，从一根银条开始",
				"id-ID": "Mulai Menabung Perak Hari Ini",
				"en-US": "Start Saving in Fine Silver",
			}),
			SubtitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "100 克至 1 千克银条，工厂直供",
				"id-ID": "Batangan 100g hingga 1kg langsung dari pabrik",
				"en-US": "Bars from 100g to 1kg straight from the factory",
			}),
			Image:        "https://images.unsplash.com/photo-1610375461246-83df859d849d?auto=format&fit=crop&w=1920&q=80",
			MobileImage:  "https://images.unsplash.com/photo-1610375461246-83df859d849d?auto=format&fit=crop&w=900&q=80",
			LinkType:     constants.BannerLinkTypeInternal,
			LinkValue:    "/products?category=silver-bars",
			OpenInNewTab: false,
			IsActive:     true,
			StartAt:      &primaryStart,
			EndAt:        &primaryEnd,
			SortOrder:    300,
		},
		{
			Name:     "首页主视觉-推广返利",
			Position: constants.BannerPositionHomeHero,
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "推荐好友，赚取佣金",
				"id-ID": "Ajak Teman, Dapatkan Komisi",
				"en-US": "Refer Friends, Earn Commission",
			}),
			SubtitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "好友完成订单即得 2.5% 返利",
				"id-ID": "Komisi 2,5% untuk setiap pesanan selesai",
				"en-US": "2.5% on every completed referred order",
			}),
			Image:        "https://images.unsplash.com/photo-1556740749-887f6717d7e4?auto=format&fit=crop&w=1920&q=80",
			MobileImage:  "https://images.unsplash.com/photo-1556740749-887f6717d7e4?auto=format&fit=crop&w=900&q=80",
			LinkType:     constants.BannerLinkTypeInternal,
			LinkValue:    "/affiliate",
			OpenInNewTab: false,
			IsActive:     true,
			StartAt:      &secondaryStart,
			EndAt:        &secondaryEnd,
			SortOrder:    200,
		},
		{
			Name:     "首页主视觉-预备素材",
			Position: constants.BannerPositionHomeHero,
			TitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "后台预备 Banner",
				"id-ID": "Banner Cadangan",
				"en-US": "Prepared Banner",
			}),
			SubtitleJSON: models.JSON(map[string]interface{}{
				"zh-CN": "用于演示启停与排序调整",
				"id-ID": "Untuk demo pengaturan urutan dan status",
				"en-US": "For demo of enable and sorting controls",
			}),
			Image:        "https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=1920&q=80",
			MobileImage:  "https://images.unsplash.com/photo-1545239351-1141bd82e8a6?auto=format&fit=crop&w=900&q=80",
			LinkType:     constants.BannerLinkTypeNone,
			LinkValue:    "",
			OpenInNewTab: false,
			IsActive:     false,
			StartAt:      &draftStart,
			EndAt:        &draftEnd,
			SortOrder:    100,
		},
	}

	for _, banner := range banners {
		var existing models.Banner
		if err := models.DB.Where("name = ? AND position = ?", banner.Name, banner.Position).First(&existing).Error; err != nil {
			if err := models.DB.Select("*").Create(&banner).Error; err != nil {
				stdLog.Printf("Failed to create banner %s: %v", banner.Name, err)
			} else {
				stdLog.Printf("Created banner: %s", banner.Name)
			}
		} else {
			existing.TitleJSON = banner.TitleJSON
			existing.SubtitleJSON = banner.SubtitleJSON
			existing.Image = banner.Image
			existing.MobileImage = banner.MobileImage
			existing.LinkType = banner.LinkType
			existing.LinkValue = banner.LinkValue
			existing.OpenInNewTab = banner.OpenInNewTab
			existing.IsActive = banner.IsActive
			existing.StartAt = banner.StartAt
			existing.EndAt = banner.EndAt
			existing.SortOrder = banner.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update banner %s: %v", banner.Name, err)
			} else {
				stdLog.Printf("Updated banner: %s", banner.Name)
			}
		}
	}

	// 当日银价图占位
	var priceImage models.PriceImage
	if err := models.DB.Where("is_active = ?", true).Order("id DESC").First(&priceImage).Error; err != nil {
		priceImage = models.PriceImage{
			ImagePath: "/uploads/price_image/sample-daily-price.jpg",
			Caption:   "今日银价（示例数据，请在后台更新）",
			IsActive:  true,
		}
		if err := models.DB.Create(&priceImage).Error; err != nil {
			stdLog.Printf("Failed to create price image: %v", err)
		} else {
			stdLog.Println("Created sample price image")
		}
	} else {
		stdLog.Println("Price image already exists")
	}

	// 更新网站配置
	configData := map[string]interface{}{
		"languages": []string{"zh-CN", "id-ID", "en-US"},
		"currency":  constants.SiteCurrencyDefault,
		"contact": map[string]string{
			"telegram": "https://t.me/bullionnext",
			"whatsapp": "https://wa.me/6281234567890",
		},
		"bank_transfer": map[string]string{
			"bank_name":      "BCA",
			"account_number": "8888888888",
			"account_holder": "PT Bullion Next",
		},
	}

	var setting models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeySiteConfig).First(&setting).Error; err != nil {
		setting = models.Setting{
			Key:       constants.SettingKeySiteConfig,
			ValueJSON: models.JSON(configData),
		}
		if err := models.DB.Create(&setting).Error; err != nil {
			stdLog.Printf("Failed to create setting: %v", err)
		} else {
			stdLog.Println("Created site config")
		}
	} else {
		setting.ValueJSON = models.JSON(configData)
		if err := models.DB.Save(&setting).Error; err != nil {
			stdLog.Printf("Failed to update setting: %v", err)
		} else {
			stdLog.Println("Updated site config")
		}
	}

	// 推广返利默认配置
	affiliateData := map[string]interface{}{
		"enabled":                 true,
		"commission_rate_percent": 2.5,
		"min_payout_amount":       10000,
	}
	var affiliateSetting models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeyAffiliateConfig).First(&affiliateSetting).Error; err != nil {
		affiliateSetting = models.Setting{
			Key:       constants.SettingKeyAffiliateConfig,
			ValueJSON: models.JSON(affiliateData),
		}
		if err := models.DB.Create(&affiliateSetting).Error; err != nil {
			stdLog.Printf("Failed to create affiliate setting: %v", err)
		} else {
			stdLog.Println("Created affiliate config")
		}
	} else {
		stdLog.Println("Affiliate config already exists")
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories (bars / coins / gifts)")
	fmt.Println("- 6 Products")
	fmt.Println("- 3 Banners (home_hero)")
	fmt.Println("- 1 Price image placeholder")
	fmt.Println("- Site + affiliate configuration")
}
