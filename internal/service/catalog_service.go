package service

import (
	"strings"

	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/notify"
	"github.com/storefront-next/internal/repository"
)

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	notifier     notify.Notifier
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, notifier notify.Notifier) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		notifier:     notifier,
	}
}

// ListProductsByCategory 分类商品列表。Offset/Limit 原样透传。
func (s *CatalogService) ListProductsByCategory(categoryID uint, filter repository.CategoryProductsFilter) ([]models.Product, error) {
	if categoryID == 0 {
		return nil, ErrCategoryIDInvalid
	}
	products, err := s.productRepo.ListByCategory(categoryID, filter)
	if err != nil {
		return nil, backendFailure(s.notifier, "Error fetching products", "", err)
	}
	return products, nil
}

// CountProductsByCategory 分类商品总数，使用相同的过滤条件。
func (s *CatalogService) CountProductsByCategory(categoryID uint, filter repository.CategoryProductsFilter) (int64, error) {
	if categoryID == 0 {
		return 0, ErrCategoryIDInvalid
	}
	total, err := s.productRepo.CountByCategory(categoryID, filter)
	if err != nil {
		return 0, backendFailure(s.notifier, "Error fetching product count", "", err)
	}
	return total, nil
}

// GetProduct 单个商品，附带供应商名称。
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrProductIDInvalid
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, backendFailure(s.notifier, "Error fetching product", "", err)
	}
	return product, nil
}

// SearchProducts 名称前缀搜索，委托给后端存储过程。
func (s *CatalogService) SearchProducts(prefix string) ([]models.Product, error) {
	products, err := s.productRepo.SearchByNamePrefix(strings.TrimSpace(prefix))
	if err != nil {
		return nil, backendFailure(s.notifier, "Error searching products", "", err)
	}
	return products, nil
}

// ListCategories 分类列表
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, backendFailure(s.notifier, "Error fetching categories", "", err)
	}
	return categories, nil
}

// GetCategory 根据 ID 获取分类
func (s *CatalogService) GetCategory(id uint) (*models.Category, error) {
	if id == 0 {
		return nil, ErrCategoryIDInvalid
	}
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, backendFailure(s.notifier, "Error fetching category", "", err)
	}
	return category, nil
}

// GetCategoryBySlug 根据 slug 获取分类，店面导航按 slug 取。
func (s *CatalogService) GetCategoryBySlug(slug string) (*models.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrCategoryIDInvalid
	}
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, backendFailure(s.notifier, "Error fetching category", "", err)
	}
	return category, nil
}
