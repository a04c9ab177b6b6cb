package view

import (
	"slices"
	"strings"

	"github.com/kode4food/gridiron/grid"
)

// Sort orders a record collection by the active sort column. An
// inactive SortState is the identity transform. The sort is stable:
// records whose resolved values compare equal keep their relative
// input order. The input is never mutated
func Sort[Msg any](
	rows []Msg, s grid.SortState, cols []grid.Column[Msg],
) []Msg {
	res := append([]Msg{}, rows...)
	if !s.IsActive() {
		return res
	}

	var col grid.Column[Msg]
	for _, c := range cols {
		if c.Name() == s.Key {
			col = c
			break
		}
	}
	if col == nil {
		return res
	}

	slices.SortStableFunc(res, func(l, r Msg) int {
		c := Compare(col.Select(l), col.Select(r))
		if s.Direction == grid.Descending {
			return -c
		}
		return c
	})
	return res
}

// Compare orders two resolved column values by natural comparison.
// Numeric values of any width compare numerically, including against
// each other; everything else, and any mix of value types that has no
// natural order, falls back to comparing string renderings. Compare
// never panics on heterogeneous inputs
func Compare(l, r any) int {
	switch {
	case l == nil && r == nil:
		return 0
	case l == nil:
		return -1
	case r == nil:
		return 1
	}

	if lf, ok := toFloat(l); ok {
		if rf, ok := toFloat(r); ok {
			switch {
			case lf < rf:
				return -1
			case lf > rf:
				return 1
			default:
				return 0
			}
		}
	}

	if ls, ok := l.(string); ok {
		if rs, ok := r.(string); ok {
			return strings.Compare(ls, rs)
		}
	}

	return strings.Compare(grid.DisplayValue(l), grid.DisplayValue(r))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
