package grid

import "maps"

type (
	// FilterState captures a free-text query plus per-column filter
	// strings. A column key is present only while its filter is
	// non-empty; absence means no filter on that column. FilterState
	// values are immutable; the With methods return modified copies
	FilterState struct {
		Query   string
		Columns map[ColumnName]string
	}

	// SortState identifies the single active sort column and direction.
	// The zero value means no active sort
	SortState struct {
		Key       ColumnName
		Direction Direction
	}

	// Direction orders a sorted view
	Direction int
)

const (
	// Ascending orders a view by natural comparison
	Ascending Direction = iota

	// Descending orders a view by negated natural comparison
	Descending
)

// IsEmpty returns whether the FilterState matches every record
func (f FilterState) IsEmpty() bool {
	return f.Query == "" && len(f.Columns) == 0
}

// WithQuery returns a copy of the FilterState carrying a new free-text
// query
func (f FilterState) WithQuery(q string) FilterState {
	f.Query = q
	return f
}

// WithColumn returns a copy of the FilterState with the named column's
// filter replaced. An empty value removes the column's entry
func (f FilterState) WithColumn(n ColumnName, v string) FilterState {
	cols := maps.Clone(f.Columns)
	if cols == nil {
		cols = map[ColumnName]string{}
	}
	if v == "" {
		delete(cols, n)
	} else {
		cols[n] = v
	}
	if len(cols) == 0 {
		cols = nil
	}
	f.Columns = cols
	return f
}

// IsActive returns whether a sort is currently applied
func (s SortState) IsActive() bool {
	return s.Key != ""
}

// Cycle advances the SortState for the named column. Toggling the same
// column cycles ascending, descending, then none; toggling a different
// column starts over at ascending
func (s SortState) Cycle(n ColumnName) SortState {
	if s.Key != n {
		return SortState{Key: n, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return SortState{Key: n, Direction: Descending}
	}
	return SortState{}
}
