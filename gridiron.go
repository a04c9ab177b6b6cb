package gridiron

import (
	"time"

	"github.com/kode4food/gridiron/debounce"
	"github.com/kode4food/gridiron/dispatch"
	"github.com/kode4food/gridiron/grid"
	"github.com/kode4food/gridiron/grid/config"
	gridImpl "github.com/kode4food/gridiron/internal/grid"
	"github.com/kode4food/gridiron/selection"
)

// NewGrid instantiates a new Grid over an already-fetched record
// collection, given a key selector, a set of column descriptors, and
// configuration Options
func NewGrid[Msg any, Key comparable](
	records []Msg, key grid.KeySelector[Msg, Key],
	cols []grid.Column[Msg], o ...config.Option,
) (grid.Grid[Msg, Key], error) {
	return gridImpl.Make(records, key, cols, o...)
}

// NewDispatcher instantiates a bulk-operation Dispatcher bound to the
// provided selection Model
func NewDispatcher[Msg any, Key comparable](
	sel *selection.Model[Key],
) *dispatch.Dispatcher[Msg, Key] {
	return dispatch.Make[Msg](sel)
}

// NewDebouncer instantiates a standalone Debouncer, for consumers such
// as a global cross-entity search that debounce outside of any Grid
func NewDebouncer[Msg any](delay time.Duration) *debounce.Debouncer[Msg] {
	return debounce.Make[Msg](delay)
}
