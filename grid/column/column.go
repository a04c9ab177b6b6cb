package column

import "github.com/kode4food/gridiron/grid"

type (
	// Option applies a setting to a column under construction
	Option[Msg any] func(*column[Msg])

	column[Msg any] struct {
		name   grid.ColumnName
		label  string
		value  grid.ValueSelector[Msg]
		render grid.Renderer[Msg]
		width  int
		static bool
		hidden bool
	}
)

// Make instantiates a new Column instance. Columns default to being
// both sortable and filterable
func Make[Msg any](
	n grid.ColumnName, v grid.ValueSelector[Msg], o ...Option[Msg],
) grid.Column[Msg] {
	res := &column[Msg]{
		name:  n,
		label: string(n),
		value: v,
	}
	for _, opt := range o {
		opt(res)
	}
	return res
}

// WithLabel sets the display label of a column. The default label is
// the column's name
func WithLabel[Msg any](l string) Option[Msg] {
	return func(c *column[Msg]) {
		c.label = l
	}
}

// WithWidth sets a fixed display width for a column
func WithWidth[Msg any](w int) Option[Msg] {
	return func(c *column[Msg]) {
		c.width = w
	}
}

// WithRenderer installs a display transform that produces the column's
// display string from the record and its already-selected raw value
func WithRenderer[Msg any](r grid.Renderer[Msg]) Option[Msg] {
	return func(c *column[Msg]) {
		c.render = r
	}
}

// Unsortable marks a column as excluded from sorting
func Unsortable[Msg any]() Option[Msg] {
	return func(c *column[Msg]) {
		c.static = true
	}
}

// Unfilterable marks a column as excluded from free-text and
// per-column filtering
func Unfilterable[Msg any]() Option[Msg] {
	return func(c *column[Msg]) {
		c.hidden = true
	}
}

func (c *column[_]) Name() grid.ColumnName {
	return c.name
}

func (c *column[_]) Label() string {
	return c.label
}

func (c *column[Msg]) Select(m Msg) any {
	if c.value == nil {
		return nil
	}
	return c.value(m)
}

func (c *column[Msg]) Display(m Msg) string {
	raw := c.Select(m)
	if c.render != nil {
		return c.render(m, raw)
	}
	return grid.DisplayValue(raw)
}

func (c *column[_]) IsSortable() bool {
	return !c.static
}

func (c *column[_]) IsFilterable() bool {
	return !c.hidden
}

func (c *column[_]) Width() int {
	return c.width
}
