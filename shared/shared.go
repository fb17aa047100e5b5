package shared

import (
	"aircon/shared/constant"
	"aircon/shared/dto"
	"aircon/shared/timezone"
	"reflect"
	"strings"
)

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// Page is one slice of an already filtered and ordered sequence.
type Page[T any] struct {
	Items     []T
	Page      int
	PageSize  int
	TotalPage int
	TotalData int
}

// Paginate slices items into the requested page. A non-positive pageSize returns every item on
// page 1, a page below 1 is treated as page 1, and a page past the end yields no items.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	total := len(items)

	if page < 1 {
		page = 1
	}

	if pageSize <= 0 {
		return Page[T]{
			Items:     items,
			Page:      1,
			PageSize:  total,
			TotalPage: 1,
			TotalData: total,
		}
	}

	res := Page[T]{
		Items:     []T{},
		Page:      page,
		PageSize:  pageSize,
		TotalPage: CalculateTotalPage(total, pageSize),
		TotalData: total,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return res
	}

	end := min(start+pageSize, total)
	res.Items = items[start:end]

	return res
}

// TransformFields maps the non-zero db-tagged fields of data to their columns and stamps the
// update audit columns. Pointer fields count as set whenever they are non-nil.
func TransformFields(data any, username string) map[string]any {
	value := reflect.ValueOf(data)
	fields := make(map[string]any, value.NumField()+2) //nolint:mnd

	for index := range value.NumField() {
		column := value.Type().Field(index).Tag.Get("db")
		if column == "" || column == "-" || value.Field(index).IsZero() {
			continue
		}

		fields[column] = value.Field(index).Interface()
	}

	fields[constant.FieldUpdatedAt] = timezone.Now()
	fields[constant.FieldUpdatedBy] = username

	return fields
}

// FilterByID matches a single row by its key column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the prefix and parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}
