package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/scm/backend/internal/domain/shared"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is invalid, empty, or not in
// the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most documents
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// DocumentSortFields contains allowed sort fields for numbered documents
var DocumentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status":     true,
}

// InventoryItemSortFields contains allowed sort fields for inventory items
var InventoryItemSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"item_code":  true,
	"item_name":  true,
	"warehouse":  true,
	"stock_qty":  true,
	"system_qty": true,
	"unit_price": true,
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"name":         true,
	"credit_limit": true,
	"credit_used":  true,
}

// applyOrdering applies validated ordering to a query
func applyOrdering(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowedFields, "created_at")
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
}

// applyPagination applies page/page-size limits. PageSize 0 means no limit:
// callers that need a full snapshot (the MRP stock load) pass it explicitly.
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyListFilter combines ordering and pagination for list queries
func applyListFilter(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool) *gorm.DB {
	return applyPagination(applyOrdering(query, filter, allowedFields), filter)
}
