package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/kode4food/gridiron/grid"
)

// Filter applies a FilterState to a record collection, returning a new
// sequence that preserves the relative order of matches. A record
// matches the free-text query if any filterable column's display value
// contains it, case-insensitively; each per-column filter must also
// match its own column. The input is never mutated
func Filter[Msg any](
	rows []Msg, s grid.FilterState, cols []grid.Column[Msg],
) []Msg {
	if s.IsEmpty() {
		return append([]Msg{}, rows...)
	}

	byName := make(map[grid.ColumnName]grid.Column[Msg], len(cols))
	for _, c := range cols {
		byName[c.Name()] = c
	}

	res := make([]Msg, 0, len(rows))
	for _, m := range rows {
		if !matchesQuery(m, s.Query, cols) {
			continue
		}
		if !matchesColumns(m, s.Columns, byName) {
			continue
		}
		res = append(res, m)
	}
	return res
}

// Matches reports whether a single record satisfies the FilterState.
// Filter is equivalent to retaining the records for which Matches
// returns true
func Matches[Msg any](
	m Msg, s grid.FilterState, cols []grid.Column[Msg],
) bool {
	if !matchesQuery(m, s.Query, cols) {
		return false
	}
	byName := make(map[grid.ColumnName]grid.Column[Msg], len(cols))
	for _, c := range cols {
		byName[c.Name()] = c
	}
	return matchesColumns(m, s.Columns, byName)
}

func matchesQuery[Msg any](
	m Msg, query string, cols []grid.Column[Msg],
) bool {
	if query == "" {
		return true
	}
	for _, c := range cols {
		if !c.IsFilterable() {
			continue
		}
		if containsFold(c.Display(m), query) {
			return true
		}
	}
	return false
}

func matchesColumns[Msg any](
	m Msg, filters map[grid.ColumnName]string,
	byName map[grid.ColumnName]grid.Column[Msg],
) bool {
	for name, want := range filters {
		c, ok := byName[name]
		if !ok {
			// An unknown column resolves to the empty value, which a
			// non-empty filter can never match
			return false
		}
		if !containsFold(c.Display(m), want) {
			return false
		}
	}
	return true
}

// containsFold reports whether substr occurs within s under Unicode
// case folding
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	m := search.New(language.Und, search.IgnoreCase)
	start, _ := m.IndexString(s, substr)
	return start >= 0
}
