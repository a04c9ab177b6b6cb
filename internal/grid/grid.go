package grid

import (
	"errors"
	"slices"
	"sync"

	"github.com/kode4food/gridiron/closer"
	"github.com/kode4food/gridiron/debounce"
	"github.com/kode4food/gridiron/grid"
	"github.com/kode4food/gridiron/grid/config"
	"github.com/kode4food/gridiron/internal/sync/channel"
	"github.com/kode4food/gridiron/selection"
	"github.com/kode4food/gridiron/view"
)

// Grid is the internal implementation of a grid.Grid. It is the sole
// owner of the filter, sort, and selection state for its mounted
// lifetime; the visible view is cached and recomputed lazily whenever
// any input changes
type Grid[Msg any, Key comparable] struct {
	closer.Closer
	cfg   *config.Config
	key   grid.KeySelector[Msg, Key]
	cols  *columnSet[Msg]
	sel   *selection.Model[Key]
	deb   *debounce.Debouncer[string]
	ready *channel.ReadyWait

	mu      sync.RWMutex
	records []Msg
	keys    map[Key]struct{}
	filter  grid.FilterState
	sort    grid.SortState
	derived []Msg
	dirty   bool
}

// Make instantiates a new internal Grid instance
func Make[Msg any, Key comparable](
	records []Msg, key grid.KeySelector[Msg, Key],
	cols []grid.Column[Msg], o ...config.Option,
) (grid.Grid[Msg, Key], error) {
	if key == nil {
		return nil, errors.New(grid.ErrKeySelectorRequired)
	}
	cfg, err := config.Make(o...)
	if err != nil {
		return nil, err
	}
	cs, err := makeColumnSet(cols)
	if err != nil {
		return nil, err
	}

	g := &Grid[Msg, Key]{
		cfg:     cfg,
		key:     key,
		cols:    cs,
		sel:     selection.Make[Key](),
		deb:     debounce.Make[string](cfg.Debounce),
		ready:   channel.MakeReadyWait(),
		records: slices.Clone(records),
		dirty:   true,
	}
	g.keys = g.index(g.records)
	g.Closer = closer.Make(func() {
		g.deb.Close()
		g.ready.Close()
	})
	g.watchSearch()
	return g, nil
}

func (g *Grid[Msg, Key]) index(records []Msg) map[Key]struct{} {
	keys := make(map[Key]struct{}, len(records))
	for _, m := range records {
		keys[g.key(m)] = struct{}{}
	}
	return keys
}

// watchSearch forwards settled search input from the debouncer to the
// filter pipeline until the Grid is closed
func (g *Grid[_, _]) watchSearch() {
	go func() {
		for {
			select {
			case <-g.IsClosed():
				return
			case q := <-g.deb.Values():
				g.SetQuery(q)
			}
		}
	}()
}

func (g *Grid[Msg, _]) Rows() []Msg {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.visible()
}

func (g *Grid[_, _]) VisibleCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.visible())
}

func (g *Grid[_, _]) TotalCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.records)
}

func (g *Grid[_, _]) Search(query string) {
	if !g.cfg.Searchable {
		return
	}
	g.deb.Observe(query)
}

func (g *Grid[_, _]) SetQuery(query string) {
	g.mu.Lock()
	g.filter = g.filter.WithQuery(query)
	g.dirty = true
	g.mu.Unlock()
	g.ready.Notify()
}

func (g *Grid[_, _]) SetColumnFilter(n grid.ColumnName, v string) {
	g.mu.Lock()
	g.filter = g.filter.WithColumn(n, v)
	g.dirty = true
	g.mu.Unlock()
	g.ready.Notify()
}

func (g *Grid[_, _]) ClearFilters() {
	g.mu.Lock()
	g.filter = grid.FilterState{}
	g.dirty = true
	g.mu.Unlock()
	g.ready.Notify()
}

func (g *Grid[_, _]) FilterState() grid.FilterState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.filter
}

func (g *Grid[_, _]) ToggleSort(n grid.ColumnName) {
	if !g.cfg.Sortable {
		return
	}
	if c, ok := g.cols.lookup(n); !ok || !c.IsSortable() {
		return
	}
	g.mu.Lock()
	g.sort = g.sort.Cycle(n)
	g.dirty = true
	g.mu.Unlock()
	g.ready.Notify()
}

func (g *Grid[_, _]) SetSort(s grid.SortState) {
	g.mu.Lock()
	g.sort = s
	g.dirty = true
	g.mu.Unlock()
	g.ready.Notify()
}

func (g *Grid[_, _]) SortState() grid.SortState {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sort
}

func (g *Grid[_, Key]) Selection() *selection.Model[Key] {
	return g.sel
}

func (g *Grid[_, Key]) ToggleSelect(k Key) bool {
	if !g.cfg.Selectable {
		return false
	}
	g.mu.RLock()
	_, ok := g.keys[k]
	g.mu.RUnlock()
	if !ok {
		return false
	}
	res := g.sel.Toggle(k)
	g.ready.Notify()
	return res
}

func (g *Grid[_, _]) SelectAllVisible() {
	if !g.cfg.Selectable {
		return
	}
	g.sel.SelectAll(g.VisibleKeys())
	g.ready.Notify()
}

func (g *Grid[_, Key]) VisibleKeys() []Key {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows := g.visible()
	res := make([]Key, len(rows))
	for i, m := range rows {
		res[i] = g.key(m)
	}
	return res
}

func (g *Grid[Msg, Key]) SelectedRows() []Msg {
	g.mu.Lock()
	defer g.mu.Unlock()

	res := make([]Msg, 0, g.sel.Count())
	seen := map[Key]struct{}{}
	for _, m := range g.visible() {
		k := g.key(m)
		if g.sel.IsSelected(k) {
			res = append(res, m)
			seen[k] = struct{}{}
		}
	}
	for _, m := range g.records {
		k := g.key(m)
		if _, ok := seen[k]; ok {
			continue
		}
		if g.sel.IsSelected(k) {
			res = append(res, m)
		}
	}
	return res
}

func (g *Grid[_, _]) Header() selection.HeaderState {
	if !g.cfg.Selectable {
		return selection.HeaderNone
	}
	return g.sel.Header(g.VisibleCount())
}

func (g *Grid[_, _]) Window(scrollOffset int) grid.Range {
	g.mu.Lock()
	total := len(g.visible())
	g.mu.Unlock()

	return view.ComputeRange(
		total, g.cfg.RowHeight, g.cfg.ViewportHeight, scrollOffset,
		g.cfg.Overscan,
	)
}

func (g *Grid[Msg, Key]) Refresh(records []Msg) {
	g.mu.Lock()
	g.records = slices.Clone(records)
	g.keys = g.index(g.records)
	g.dirty = true
	keys := g.keys
	g.mu.Unlock()

	g.sel.Prune(func(k Key) bool {
		_, ok := keys[k]
		return ok
	})
	g.ready.Notify()
}

func (g *Grid[_, _]) Updates() <-chan struct{} {
	return g.ready.Wait()
}

// visible recomputes the derived view if any input has changed since
// it was last materialized. Callers must hold the write lock
func (g *Grid[Msg, _]) visible() []Msg {
	if g.dirty {
		g.derived = view.Apply(g.records, g.filter, g.sort, g.cols.all())
		g.dirty = false
	}
	return g.derived
}
