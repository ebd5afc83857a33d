package constants

// 商品排序选项常量
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortLatest    = "latest"
	SortManual    = "manual"
)

// 通知级别常量
const (
	ToastSeverityError   = "error"
	ToastSeverityWarning = "warning"
	ToastSeverityInfo    = "info"
)

// 货币默认值
const (
	SiteCurrencyDefault = "usd"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskToastDispatch = "toast:dispatch"
)

// 后端存储过程名称
const (
	ProcSearchProductsByNamePrefix = "search_products_by_name_prefix"
)
