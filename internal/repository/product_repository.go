package repository

import (
	"strings"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	ListByCategory(categoryID uint, filter CategoryProductsFilter) ([]models.Product, error)
	CountByCategory(categoryID uint, filter CategoryProductsFilter) (int64, error)
	GetByID(id uint) (*models.Product, error)
	SearchByNamePrefix(prefix string) ([]models.Product, error)
	Create(product *models.Product) error
	AttachCategory(productID, categoryID uint) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// categoryScopedQuery 构建分类商品基础查询：内连接关联表，未关联的商品不会出现。
func (r *GormProductRepository) categoryScopedQuery(categoryID uint, filter CategoryProductsFilter) *gorm.DB {
	query := r.db.Model(&models.Product{}).
		Joins("INNER JOIN products_categories pc ON pc.product_id = products.id").
		Where("pc.category_id = ?", categoryID)
	if len(filter.ProductTypes) > 0 {
		query = query.Where("products.product_type IN ?", filter.ProductTypes)
	}
	return query
}

// applySortOrder 应用排序选项。manual 及未知取值不追加 ORDER BY。
func applySortOrder(query *gorm.DB, sortOrder string) *gorm.DB {
	if query == nil {
		return query
	}
	switch strings.ToLower(strings.TrimSpace(sortOrder)) {
	case constants.SortPriceAsc:
		return query.Order("products.unit_price_amount ASC")
	case constants.SortPriceDesc:
		return query.Order("products.unit_price_amount DESC")
	case constants.SortNameAsc:
		return query.Order("products.name ASC")
	case constants.SortNameDesc:
		return query.Order("products.name DESC")
	case constants.SortLatest:
		return query.Order("products.created_at DESC")
	default:
		return query
	}
}

// ListByCategory 分类商品列表
func (r *GormProductRepository) ListByCategory(categoryID uint, filter CategoryProductsFilter) ([]models.Product, error) {
	var products []models.Product
	query := r.categoryScopedQuery(categoryID, filter)
	query = applySortOrder(query, filter.SortOrder)
	query = applyRange(query, filter.Offset, filter.Limit)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountByCategory 分类商品总数，精确计数且不应用分页。
func (r *GormProductRepository) CountByCategory(categoryID uint, filter CategoryProductsFilter) (int64, error) {
	var total int64
	if err := r.categoryScopedQuery(categoryID, filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetByID 根据 ID 获取商品，附带供应商信息。
// 未找到时错误原样上抛：空结果兜底仅适用于购物车查询。
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Vendor").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchByNamePrefix 名称前缀搜索。postgres 委托给后端存储过程，
// sqlite 没有存储过程，退化为前缀 LIKE。
func (r *GormProductRepository) SearchByNamePrefix(prefix string) ([]models.Product, error) {
	var products []models.Product
	if isPostgresDialect(dbDialectName(r.db)) {
		err := r.db.Raw("SELECT * FROM "+constants.ProcSearchProductsByNamePrefix+"(?)", prefix).Scan(&products).Error
		if err != nil {
			return nil, err
		}
		return products, nil
	}
	pattern := escapeLikePattern(strings.TrimSpace(prefix)) + "%"
	if err := r.db.Where("name LIKE ? ESCAPE '\\'", pattern).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// AttachCategory 建立商品与分类的关联
func (r *GormProductRepository) AttachCategory(productID, categoryID uint) error {
	return r.db.Create(&models.ProductCategory{
		ProductID:  productID,
		CategoryID: categoryID,
	}).Error
}
