package view

import "github.com/kode4food/gridiron/grid"

// Apply composes the filter and sort stages into the derived visible
// view. Filtering always precedes sorting, so comparisons never touch
// excluded records, and the result is deterministic for the same
// (rows, filter, sort) inputs
func Apply[Msg any](
	rows []Msg, f grid.FilterState, s grid.SortState,
	cols []grid.Column[Msg],
) []Msg {
	return Sort(Filter(rows, f, cols), s, cols)
}
