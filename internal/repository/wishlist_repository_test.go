package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/storefront-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupWishlistRepositoryTest(t *testing.T) (*GormWishlistRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:wishlist_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Vendor{}, &models.Product{}, &models.WishlistItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewWishlistRepository(db), db
}

func seedWishlistProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()
	product := models.Product{
		VendorID:        1,
		Name:            name,
		UnitPriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("10.00")),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	repo, db := setupWishlistRepositoryTest(t)
	product := seedWishlistProduct(t, db, "earbuds")

	for i := 0; i < 2; i++ {
		if err := repo.Add(&models.WishlistItem{UserID: "user-1", ProductID: product.ID}); err != nil {
			t.Fatalf("add wishlist item failed: %v", err)
		}
	}

	var count int64
	if err := db.Model(&models.WishlistItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count wishlist failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 wishlist row, got %d", count)
	}
}

func TestWishlistRemoveDeletesPair(t *testing.T) {
	repo, db := setupWishlistRepositoryTest(t)
	product := seedWishlistProduct(t, db, "kettle")

	if err := repo.Add(&models.WishlistItem{UserID: "user-1", ProductID: product.ID}); err != nil {
		t.Fatalf("add wishlist item failed: %v", err)
	}
	if err := repo.Add(&models.WishlistItem{UserID: "user-2", ProductID: product.ID}); err != nil {
		t.Fatalf("add wishlist item failed: %v", err)
	}

	if err := repo.Remove("user-1", product.ID); err != nil {
		t.Fatalf("remove wishlist item failed: %v", err)
	}

	items, err := repo.ListByUser("user-1")
	if err != nil {
		t.Fatalf("list wishlist failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %d items", len(items))
	}

	// 其他用户的同商品收藏不受影响
	items, err = repo.ListByUser("user-2")
	if err != nil {
		t.Fatalf("list wishlist failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item for user-2, got %d", len(items))
	}
}

func TestWishlistListPreloadsProductNewestFirst(t *testing.T) {
	repo, db := setupWishlistRepositoryTest(t)
	first := seedWishlistProduct(t, db, "first pick")
	second := seedWishlistProduct(t, db, "second pick")

	now := time.Now()
	older := models.WishlistItem{UserID: "user-1", ProductID: first.ID, CreatedAt: now.Add(-time.Hour)}
	if err := db.Create(&older).Error; err != nil {
		t.Fatalf("create wishlist item failed: %v", err)
	}
	newer := models.WishlistItem{UserID: "user-1", ProductID: second.ID, CreatedAt: now}
	if err := db.Create(&newer).Error; err != nil {
		t.Fatalf("create wishlist item failed: %v", err)
	}

	items, err := repo.ListByUser("user-1")
	if err != nil {
		t.Fatalf("list wishlist failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ProductID != second.ID {
		t.Fatalf("expected newest first, got product %d", items[0].ProductID)
	}
	if items[0].Product == nil || items[0].Product.Name != "second pick" {
		t.Fatalf("expected product preloaded, got %+v", items[0].Product)
	}
}
