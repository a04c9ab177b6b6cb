package grid

import (
	"github.com/kode4food/gridiron/closer"
	"github.com/kode4food/gridiron/selection"
)

type (
	// Grid is an interface that owns a record collection along with the
	// filter, sort, and selection state applied to it. The visible view is
	// derived deterministically from that state; a Grid never mutates the
	// records it is given, only reorders and filters references to them
	Grid[Msg any, Key comparable] interface {
		closer.Closer

		// Rows returns the filtered and sorted view of the collection
		Rows() []Msg

		// VisibleCount returns the number of rows in the current view
		VisibleCount() int

		// TotalCount returns the size of the full record collection
		TotalCount() int

		// Search feeds a raw free-text query through the Grid's debouncer.
		// Only the value left standing after the quiet period reaches the
		// filter pipeline
		Search(query string)

		// SetQuery applies a free-text query immediately, bypassing the
		// debouncer
		SetQuery(query string)

		// SetColumnFilter applies a per-column filter. An empty value
		// removes the column's filter entirely
		SetColumnFilter(ColumnName, string)

		// ClearFilters removes the free-text query and all column filters
		ClearFilters()

		// FilterState returns the currently applied FilterState
		FilterState() FilterState

		// ToggleSort cycles the named column through ascending, descending,
		// and unsorted. Ignored for columns not marked sortable
		ToggleSort(ColumnName)

		// SetSort replaces the active SortState
		SetSort(SortState)

		// SortState returns the currently active SortState
		SortState() SortState

		// Selection returns the Grid's selection model
		Selection() *selection.Model[Key]

		// ToggleSelect flips the selection state of the record with the
		// given key, returning whether it is now selected. Keys not present
		// in the collection are ignored
		ToggleSelect(Key) bool

		// SelectAllVisible replaces the selection with exactly the keys of
		// the currently visible rows
		SelectAllVisible()

		// VisibleKeys returns the keys of the current view, in view order
		VisibleKeys() []Key

		// SelectedRows returns the selected records, in view order first
		// and then collection order for selected records not in view
		SelectedRows() []Msg

		// Header returns the tri-state value of the select-all checkbox
		// for the current view
		Header() selection.HeaderState

		// Window computes the renderable index range of the current view
		// for the given scroll offset
		Window(scrollOffset int) Range

		// Refresh replaces the record collection wholesale. Filter and
		// sort state are untouched; the selection is pruned to keys that
		// survive the refresh
		Refresh(records []Msg)

		// Updates returns a channel that receives a coalesced notification
		// whenever the Grid's state changes
		Updates() <-chan struct{}
	}

	// KeySelector extracts the stable unique identifier from a record
	KeySelector[Msg any, Key comparable] func(Msg) Key
)

// Error messages
const (
	ErrNoColumns           = "at least one column is required"
	ErrDuplicateColumnName = "column name duplicated in grid: %s"
	ErrKeySelectorRequired = "a key selector is required"
)
