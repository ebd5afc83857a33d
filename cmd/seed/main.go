package main

import (
	"fmt"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

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

	// 添加供应商
	vendors := []models.Vendor{
		{Name: "Acme Audio"},
		{Name: "Northwind Living"},
		{Name: "Pixel Gear"},
	}

	vendorIDs := map[string]uint{}
	for _, v := range vendors {
		var existing models.Vendor
		if err := models.DB.Where("name = ?", v.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&v).Error; err != nil {
				stdLog.Printf("Failed to create vendor %s: %v", v.Name, err)
				continue
			}
			stdLog.Printf("Created vendor: %s", v.Name)
			vendorIDs[v.Name] = v.ID
		} else {
			stdLog.Printf("Vendor already exists: %s", existing.Name)
			vendorIDs[existing.Name] = existing.ID
		}
	}

	// 添加分类
	categories := []models.Category{
		{Slug: "electronics", Name: "Electronics"},
		{Slug: "lifestyle", Name: "Lifestyle"},
		{Slug: "accessories", Name: "Accessories"},
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
	if err := models.DB.Where("slug IN ?", []string{"electronics", "lifestyle", "accessories"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加商品
	seedProducts := []struct {
		Product    models.Product
		Categories []string
	}{
		{
			Product: models.Product{
				Name:              "Wireless Bluetooth Earphones",
				UnitPriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
				UnitPriceCurrency: constants.SiteCurrencyDefault,
				InStock:           true,
				Thumbnail:         "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
				ProductType:       "audio",
				VendorID:          vendorIDs["Acme Audio"],
			},
			Categories: []string{"electronics"},
		},
		{
			Product: models.Product{
				Name:              "Smart Watch",
				UnitPriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
				UnitPriceCurrency: constants.SiteCurrencyDefault,
				InStock:           true,
				Thumbnail:         "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
				ProductType:       "wearable",
				VendorID:          vendorIDs["Pixel Gear"],
			},
			Categories: []string{"electronics", "accessories"},
		},
		{
			Product: models.Product{
				Name:              "Portable Power Bank",
				UnitPriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
				UnitPriceCurrency: constants.SiteCurrencyDefault,
				InStock:           true,
				Thumbnail:         "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
				ProductType:       "charging",
				VendorID:          vendorIDs["Pixel Gear"],
			},
			Categories: []string{"accessories"},
		},
		{
			Product: models.Product{
				Name:              "Multi-function Backpack",
				UnitPriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
				UnitPriceCurrency: constants.SiteCurrencyDefault,
				InStock:           true,
				Thumbnail:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
				ProductType:       "bags",
				VendorID:          vendorIDs["Northwind Living"],
			},
			Categories: []string{"lifestyle"},
		},
		{
			Product: models.Product{
				Name:              "Noise Cancelling Headphones",
				UnitPriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(249.00)),
				UnitPriceCurrency: constants.SiteCurrencyDefault,
				InStock:           false,
				Thumbnail:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800",
				ProductType:       "audio",
				VendorID:          vendorIDs["Acme Audio"],
			},
			Categories: []string{"electronics"},
		},
		{
			Product: models.Product{
				Name:              "Ceramic Pour-over Kettle",
				UnitPriceAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(59.50)),
				UnitPriceCurrency: constants.SiteCurrencyDefault,
				InStock:           true,
				Thumbnail:         "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=800",
				ProductType:       "kitchen",
				VendorID:          vendorIDs["Northwind Living"],
			},
			Categories: []string{"lifestyle"},
		},
	}

	for _, entry := range seedProducts {
		prod := entry.Product
		if prod.VendorID == 0 {
			stdLog.Printf("Skip product %s: vendor_id missing", prod.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
				continue
			}
			stdLog.Printf("Created product: %s", prod.Name)
		} else {
			existing.UnitPriceAmount = prod.UnitPriceAmount
			existing.UnitPriceCurrency = prod.UnitPriceCurrency
			existing.InStock = prod.InStock
			existing.Thumbnail = prod.Thumbnail
			existing.ProductType = prod.ProductType
			existing.VendorID = prod.VendorID
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
				continue
			}
			prod = existing
			stdLog.Printf("Updated product: %s", prod.Name)
		}

		// 绑定商品分类
		for _, slug := range entry.Categories {
			categoryID := categoryIDs[slug]
			if categoryID == 0 {
				stdLog.Printf("Skip category link %s -> %s: category missing", prod.Name, slug)
				continue
			}
			var link models.ProductCategory
			if err := models.DB.Where("product_id = ? AND category_id = ?", prod.ID, categoryID).First(&link).Error; err != nil {
				link = models.ProductCategory{ProductID: prod.ID, CategoryID: categoryID}
				if err := models.DB.Create(&link).Error; err != nil {
					stdLog.Printf("Failed to link product %s to %s: %v", prod.Name, slug, err)
				}
			}
		}
	}

	fmt.Println("\n✅ Test data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Vendors")
	fmt.Println("- 3 Categories")
	fmt.Println("- 6 Products with category links")
}
