package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/notify"
	"github.com/storefront-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recordingNotifier 记录推送的通知
type recordingNotifier struct {
	toasts []notify.Toast
}

func (n *recordingNotifier) Push(_ context.Context, toast notify.Toast) {
	n.toasts = append(n.toasts, toast)
}

// failingProductRepo 所有操作返回固定错误
type failingProductRepo struct {
	err error
}

func (r *failingProductRepo) ListByCategory(uint, repository.CategoryProductsFilter) ([]models.Product, error) {
	return nil, r.err
}

func (r *failingProductRepo) CountByCategory(uint, repository.CategoryProductsFilter) (int64, error) {
	return 0, r.err
}

func (r *failingProductRepo) GetByID(uint) (*models.Product, error) {
	return nil, r.err
}

func (r *failingProductRepo) SearchByNamePrefix(string) ([]models.Product, error) {
	return nil, r.err
}

func (r *failingProductRepo) Create(*models.Product) error {
	return r.err
}

func (r *failingProductRepo) AttachCategory(uint, uint) error {
	return r.err
}

// failingCategoryRepo 所有操作返回固定错误
type failingCategoryRepo struct {
	err error
}

func (r *failingCategoryRepo) List() ([]models.Category, error) {
	return nil, r.err
}

func (r *failingCategoryRepo) GetByID(uint) (*models.Category, error) {
	return nil, r.err
}

func (r *failingCategoryRepo) GetBySlug(string) (*models.Category, error) {
	return nil, r.err
}

func (r *failingCategoryRepo) Create(*models.Category) error {
	return r.err
}

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *recordingNotifier, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Vendor{}, &models.Category{}, &models.Product{}, &models.ProductCategory{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	notifier := &recordingNotifier{}
	svc := NewCatalogService(repository.NewProductRepository(db), repository.NewCategoryRepository(db), notifier)
	return svc, notifier, db
}

func TestCatalogServiceBackendFailurePushesToast(t *testing.T) {
	backendErr := errors.New("connection refused")
	notifier := &recordingNotifier{}
	svc := NewCatalogService(&failingProductRepo{err: backendErr}, &failingCategoryRepo{err: backendErr}, notifier)

	_, err := svc.ListProductsByCategory(1, repository.CategoryProductsFilter{})
	if err == nil {
		t.Fatal("expected error")
	}
	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != response.CodeBadRequest {
		t.Fatalf("expected code %d, got %d", response.CodeBadRequest, appErr.Code)
	}
	if appErr.Message != backendErr.Error() {
		t.Fatalf("expected message %q, got %q", backendErr.Error(), appErr.Message)
	}
	if len(notifier.toasts) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(notifier.toasts))
	}
	toast := notifier.toasts[0]
	if toast.Title != "Error fetching products" {
		t.Fatalf("unexpected toast title: %s", toast.Title)
	}
	if toast.Description != backendErr.Error() {
		t.Fatalf("unexpected toast description: %s", toast.Description)
	}
	if toast.Severity != constants.ToastSeverityError {
		t.Fatalf("unexpected toast severity: %s", toast.Severity)
	}
}

func TestCatalogServiceEveryOperationNotifiesOnFailure(t *testing.T) {
	backendErr := errors.New("backend down")
	notifier := &recordingNotifier{}
	svc := NewCatalogService(&failingProductRepo{err: backendErr}, &failingCategoryRepo{err: backendErr}, notifier)

	calls := []struct {
		title string
		run   func() error
	}{
		{"Error fetching products", func() error {
			_, err := svc.ListProductsByCategory(1, repository.CategoryProductsFilter{})
			return err
		}},
		{"Error fetching product count", func() error {
			_, err := svc.CountProductsByCategory(1, repository.CategoryProductsFilter{})
			return err
		}},
		{"Error fetching product", func() error {
			_, err := svc.GetProduct(1)
			return err
		}},
		{"Error searching products", func() error {
			_, err := svc.SearchProducts("abc")
			return err
		}},
		{"Error fetching categories", func() error {
			_, err := svc.ListCategories()
			return err
		}},
		{"Error fetching category", func() error {
			_, err := svc.GetCategory(1)
			return err
		}},
	}
	for i, call := range calls {
		if err := call.run(); err == nil {
			t.Fatalf("operation %q should fail", call.title)
		}
		if len(notifier.toasts) != i+1 {
			t.Fatalf("operation %q should push a toast", call.title)
		}
		if notifier.toasts[i].Title != call.title {
			t.Fatalf("toast title want %q got %q", call.title, notifier.toasts[i].Title)
		}
	}
}

func TestCatalogServiceValidationSkipsToast(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewCatalogService(&failingProductRepo{err: errors.New("unused")}, &failingCategoryRepo{err: errors.New("unused")}, notifier)

	if _, err := svc.ListProductsByCategory(0, repository.CategoryProductsFilter{}); !errors.Is(err, ErrCategoryIDInvalid) {
		t.Fatalf("expected category validation error, got %v", err)
	}
	if _, err := svc.GetProduct(0); !errors.Is(err, ErrProductIDInvalid) {
		t.Fatalf("expected product validation error, got %v", err)
	}
	if len(notifier.toasts) != 0 {
		t.Fatalf("validation errors should not push toasts, got %d", len(notifier.toasts))
	}
}

func TestCatalogServiceFetchesProductWithVendor(t *testing.T) {
	svc, notifier, db := setupCatalogServiceTest(t)
	vendor := models.Vendor{Name: "Acme Audio"}
	if err := db.Create(&vendor).Error; err != nil {
		t.Fatalf("create vendor failed: %v", err)
	}
	product := models.Product{
		VendorID:        vendor.ID,
		Name:            "earbuds",
		UnitPriceAmount: models.NewMoneyFromDecimal(decimal.RequireFromString("20.00")),
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	got, err := svc.GetProduct(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.Vendor.Name != "Acme Audio" {
		t.Fatalf("expected vendor name, got %q", got.Vendor.Name)
	}
	if len(notifier.toasts) != 0 {
		t.Fatalf("success should not push toasts, got %d", len(notifier.toasts))
	}
}

func TestCatalogServiceListCategoriesSortedBySlug(t *testing.T) {
	svc, _, db := setupCatalogServiceTest(t)
	for _, slug := range []string{"lifestyle", "accessories", "electronics"} {
		if err := db.Create(&models.Category{Slug: slug, Name: slug}).Error; err != nil {
			t.Fatalf("create category failed: %v", err)
		}
	}

	categories, err := svc.ListCategories()
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	expected := []string{"accessories", "electronics", "lifestyle"}
	if len(categories) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(categories))
	}
	for i, slug := range expected {
		if categories[i].Slug != slug {
			t.Fatalf("position %d want %s got %s", i, slug, categories[i].Slug)
		}
	}
}
