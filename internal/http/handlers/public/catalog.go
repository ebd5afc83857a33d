package public

import (
	"strconv"
	"strings"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"

	"github.com/gin-gonic/gin"
)

const defaultProductPageLimit = 20

// ProductDetailView 商品详情响应，展开供应商名称。
type ProductDetailView struct {
	models.Product
	VendorName string `json:"vendor_name"`
}

func parseCategoryProductsFilter(c *gin.Context) repository.CategoryProductsFilter {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultProductPageLimit)))

	types := make([]string, 0)
	for _, t := range c.QueryArray("product_type") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			types = append(types, trimmed)
		}
	}

	return repository.CategoryProductsFilter{
		Offset:       offset,
		Limit:        limit,
		ProductTypes: types,
		SortOrder:    strings.TrimSpace(c.Query("order")),
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetCategory 获取单个分类。路径参数优先按数字 ID 解析，
// 非数字时按 slug 查找，供导航直接使用。
func (h *Handler) GetCategory(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		response.BadRequest(c, "invalid id")
		return
	}

	var (
		category *models.Category
		err      error
	)
	if value, parseErr := strconv.ParseUint(raw, 10, 64); parseErr == nil && value > 0 {
		category, err = h.CatalogService.GetCategory(uint(value))
	} else {
		category, err = h.CatalogService.GetCategoryBySlug(raw)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"category": category})
}

// GetProductsByCategory 分类商品列表
func (h *Handler) GetProductsByCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	filter := parseCategoryProductsFilter(c)
	products, err := h.CatalogService.ListProductsByCategory(id, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProductCountByCategory 分类商品总数，使用与列表相同的过滤条件。
func (h *Handler) GetProductCountByCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	filter := parseCategoryProductsFilter(c)
	total, err := h.CatalogService.CountProductsByCategory(id, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"total": total})
}

// GetProduct 获取单个商品，附带供应商名称。
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.CatalogService.GetProduct(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"product": ProductDetailView{
		Product:    *product,
		VendorName: product.Vendor.Name,
	}})
}

// SearchProducts 名称前缀搜索
func (h *Handler) SearchProducts(c *gin.Context) {
	prefix := strings.TrimSpace(c.Query("prefix"))
	products, err := h.CatalogService.SearchProducts(prefix)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"products": products})
}
