package grid

import "fmt"

type (
	// Column describes one addressable field of a record, including its
	// name and a ValueSelector for retrieving the field's value. Columns
	// are supplied once per Grid and are immutable for its lifetime
	Column[Msg any] interface {
		// Name returns the column's unique name
		Name() ColumnName

		// Label returns the column's display label
		Label() string

		// Select retrieves the column's raw value from a record
		Select(Msg) any

		// Display resolves the column's display string for a record. A
		// nil value resolves to the empty string rather than failing
		Display(Msg) string

		// IsSortable returns whether the view may sort on this column
		IsSortable() bool

		// IsFilterable returns whether free-text and per-column filters
		// consider this column
		IsFilterable() bool

		// Width returns the column's fixed width, or zero if unspecified
		Width() int
	}

	// ColumnName is exactly what you think it is
	ColumnName string

	// ValueSelector retrieves a column's raw value from a record. A nil
	// ValueSelector, or one returning nil, resolves to the empty string
	ValueSelector[Msg any] func(Msg) any

	// Renderer produces a display string from a record and the raw value
	// already selected from it
	Renderer[Msg any] func(Msg, any) string
)

// DisplayValue renders a raw column value as its display string. It is
// the fail-soft resolution point shared by filtering and rendering: nil
// resolves to the empty string
func DisplayValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
