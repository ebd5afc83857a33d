package repository

// CategoryProductsFilter 分类商品查询的过滤条件。
// Offset/Limit 原样透传给后端，不做页码换算。
type CategoryProductsFilter struct {
	Offset       int
	Limit        int
	ProductTypes []string
	SortOrder    string
}
