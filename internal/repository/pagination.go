package repository

import "gorm.io/gorm"

// applyRange 应用偏移量分页。查询范围为 [offset, offset+limit-1]，
// offset/limit 不做换算，limit <= 0 时不限制行数。
func applyRange(query *gorm.DB, offset, limit int) *gorm.DB {
	if query == nil {
		return query
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query
}
