package gridiron_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/gridiron"
	"github.com/kode4food/gridiron/dispatch"
	"github.com/kode4food/gridiron/grid"
	"github.com/kode4food/gridiron/grid/column"
	"github.com/kode4food/gridiron/grid/config"
)

type article struct {
	ID          string
	Designation string
	Stock       int
}

func articleColumns() []grid.Column[article] {
	return []grid.Column[article]{
		column.Make("designation",
			func(a article) any { return a.Designation },
		),
		column.Make("stockActuel",
			func(a article) any { return a.Stock },
		),
	}
}

// a thousand articles, three of which are joints
func thousandArticles() []article {
	res := make([]article, 0, 1000)
	for i := 0; i < 1000; i++ {
		a := article{
			ID:          fmt.Sprintf("ART-%04d", i),
			Designation: fmt.Sprintf("Bearing %04d", i),
			Stock:       i % 250,
		}
		switch i {
		case 100:
			a.Designation = "Joint torique"
			a.Stock = 40
		case 500:
			a.Designation = "Joint plat"
			a.Stock = 5
		case 900:
			a.Designation = "Joint spi"
			a.Stock = 17
		}
		res = append(res, a)
	}
	return res
}

func TestGridEndToEnd(t *testing.T) {
	as := assert.New(t)

	g, err := gridiron.NewGrid(
		thousandArticles(),
		func(a article) string { return a.ID },
		articleColumns(),
		config.WithDebounce(0),
	)
	as.Nil(err)
	defer g.Close()

	g.SetColumnFilter("designation", "joint")
	g.ToggleSort("stockActuel")

	rows := g.Rows()
	as.Equal(3, g.VisibleCount())
	as.Equal([]string{"Joint plat", "Joint spi", "Joint torique"},
		[]string{
			rows[0].Designation, rows[1].Designation, rows[2].Designation,
		})

	g.ToggleSelect(rows[0].ID)
	g.ToggleSelect(rows[1].ID)
	as.Equal(2, g.Selection().Count())

	d := gridiron.NewDispatcher[article](g.Selection())
	res, err := d.Execute(
		context.Background(),
		dispatch.Operation{Type: dispatch.OpDelete},
		g.SelectedRows(),
		func(_ context.Context, _ dispatch.Operation, b []article) error {
			as.Len(b, 2)
			return nil
		},
	)
	as.Nil(err)
	as.Equal(2, res.Succeeded)
	as.Equal(2, res.Total)
	as.Empty(res.Failures)
	as.Zero(g.Selection().Count())
}

func TestNewDebouncer(t *testing.T) {
	as := assert.New(t)

	d := gridiron.NewDebouncer[string](0)
	defer d.Close()

	d.Observe("global search")
	as.Equal("global search", <-d.Values())
}
