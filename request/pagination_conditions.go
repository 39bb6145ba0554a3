package request

import (
	"fmt"

	"gorm.io/gorm"
)

type PaginationConditions struct {
	Limit         *int    `json:"limit"`
	Offset        *int    `json:"offset"`
	SortBy        *string `json:"sortBy"`
	Order         *string `json:"order"` // ASC or DESC
	GreaterThanID *uint   `json:"greaterThanId"`
	LessThanID    *uint   `json:"lessThanId"`
}

// ApplyPaginationConditions applies offset/ID based pagination, sorting and
// limit to a query, in that order.
func ApplyPaginationConditions(query *gorm.DB, conditions PaginationConditions) *gorm.DB {
	if conditions.Offset != nil && *conditions.Offset > 0 {
		query = query.Offset(*conditions.Offset)
	}

	if conditions.GreaterThanID != nil {
		query = query.Where("id > ?", *conditions.GreaterThanID)
	}
	if conditions.LessThanID != nil {
		query = query.Where("id < ?", *conditions.LessThanID)
	}

	sortBy := "id"
	if conditions.SortBy != nil {
		sortBy = *conditions.SortBy
	}
	order := "DESC"
	if conditions.Order != nil {
		order = *conditions.Order
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, order))

	if conditions.Limit != nil && *conditions.Limit > 0 {
		query = query.Limit(*conditions.Limit)
	}

	return query
}
