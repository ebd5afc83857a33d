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

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartRepository(db), db
}

func TestGetByOwnerReturnsNilWhenMissing(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	cart, err := repo.GetByOwner("nobody")
	if err != nil {
		t.Fatalf("empty fetch should not fail: %v", err)
	}
	if cart != nil {
		t.Fatalf("expected nil cart, got %+v", cart)
	}
}

func TestGetByOwnerReturnsMostRecentlyUpdatedWithItems(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	now := time.Now()
	old := models.Cart{ID: "cart-old", CreatedBy: "owner-1", CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour)}
	recent := models.Cart{ID: "cart-new", CreatedBy: "owner-1", CreatedAt: now.Add(-time.Hour), UpdatedAt: now}
	other := models.Cart{ID: "cart-other", CreatedBy: "owner-2", CreatedAt: now, UpdatedAt: now.Add(time.Hour)}
	for _, cart := range []models.Cart{old, recent, other} {
		if err := db.Create(&cart).Error; err != nil {
			t.Fatalf("create cart failed: %v", err)
		}
	}
	item := models.CartItem{
		ID:              "item-1",
		CartID:          "cart-new",
		ProductID:       42,
		Quantity:        2,
		UnitPriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("19.99")),
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	cart, err := repo.GetByOwner("owner-1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart == nil || cart.ID != "cart-new" {
		t.Fatalf("expected cart-new, got %+v", cart)
	}
	if len(cart.Items) != 1 || cart.Items[0].ID != "item-1" {
		t.Fatalf("expected items preloaded, got %+v", cart.Items)
	}
}

func TestUpsertCartInsertsThenUpdates(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	cart := &models.Cart{ID: "cart-1", CreatedBy: "owner-1"}
	if err := repo.Upsert(cart); err != nil {
		t.Fatalf("insert cart failed: %v", err)
	}

	updated := &models.Cart{ID: "cart-1", CreatedBy: "owner-2"}
	if err := repo.Upsert(updated); err != nil {
		t.Fatalf("update cart failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 cart row, got %d", count)
	}

	var got models.Cart
	if err := db.First(&got, "id = ?", "cart-1").Error; err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if got.CreatedBy != "owner-2" {
		t.Fatalf("expected created_by updated, got %s", got.CreatedBy)
	}
}

func TestUpsertItemsBatch(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	if err := repo.Upsert(&models.Cart{ID: "cart-1", CreatedBy: "owner-1"}); err != nil {
		t.Fatalf("insert cart failed: %v", err)
	}

	items := []models.CartItem{
		{ID: "item-1", CartID: "cart-1", ProductID: 1, Quantity: 1, UnitPriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("5.00"))},
		{ID: "item-2", CartID: "cart-1", ProductID: 2, Quantity: 3, UnitPriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("7.50"))},
	}
	if err := repo.UpsertItems(items); err != nil {
		t.Fatalf("insert items failed: %v", err)
	}

	// 同一 ID 再次写入覆盖数量
	items[0].Quantity = 4
	if err := repo.UpsertItems(items[:1]); err != nil {
		t.Fatalf("update item failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 item rows, got %d", count)
	}

	var got models.CartItem
	if err := db.First(&got, "id = ?", "item-1").Error; err != nil {
		t.Fatalf("reload item failed: %v", err)
	}
	if got.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", got.Quantity)
	}

	if err := repo.UpsertItems(nil); err != nil {
		t.Fatalf("empty batch should be a no-op: %v", err)
	}
}

func TestDeleteCartAndItem(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	if err := repo.Upsert(&models.Cart{ID: "cart-1", CreatedBy: "owner-1"}); err != nil {
		t.Fatalf("insert cart failed: %v", err)
	}
	if err := repo.UpsertItems([]models.CartItem{
		{ID: "item-1", CartID: "cart-1", ProductID: 1, Quantity: 1},
	}); err != nil {
		t.Fatalf("insert item failed: %v", err)
	}

	if err := repo.DeleteItem("item-1"); err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	if err := repo.Delete("cart-1"); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}

	var carts, items int64
	if err := db.Model(&models.Cart{}).Count(&carts).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if err := db.Model(&models.CartItem{}).Count(&items).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if carts != 0 || items != 0 {
		t.Fatalf("expected empty tables, got carts=%d items=%d", carts, items)
	}

	// 删除不存在的 ID 不报错
	if err := repo.Delete("missing"); err != nil {
		t.Fatalf("delete missing cart failed: %v", err)
	}
}
