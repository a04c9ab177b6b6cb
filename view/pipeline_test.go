package view_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/kode4food/gridiron/grid"
	"github.com/kode4food/gridiron/view"
)

func TestApplyFiltersBeforeSorting(t *testing.T) {
	as := assert.New(t)

	f := grid.FilterState{}.WithColumn("category", "seals")
	s := grid.SortState{Key: "stock", Direction: grid.Ascending}
	res := view.Apply(someItems(), f, s, itemColumns())

	want := []item{
		{ID: "3", Name: "JOINT plat", Category: "seals", Stock: 1},
		{ID: "1", Name: "Joint torique", Category: "seals", Stock: 4},
		{ID: "4", Name: "Gasket joint", Category: "seals", Stock: 9},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		as.Fail("unexpected pipeline output", diff)
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	as := assert.New(t)

	f := grid.FilterState{}.WithQuery("a")
	s := grid.SortState{Key: "name", Direction: grid.Descending}
	cols := itemColumns()

	first := view.Apply(someItems(), f, s, cols)
	for i := 0; i < 5; i++ {
		again := view.Apply(someItems(), f, s, cols)
		as.Empty(cmp.Diff(first, again))
	}
}
