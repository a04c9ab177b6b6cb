package dispatch_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/gridiron/dispatch"
	internal "github.com/kode4food/gridiron/internal/testing"
	"github.com/kode4food/gridiron/selection"
)

type article struct {
	ID   string
	Name string
}

func fiveSelected() (*selection.Model[string], []article) {
	sel := selection.Make[string]()
	batch := make([]article, 5)
	for i := range batch {
		id := string(rune('a' + i))
		batch[i] = article{ID: id, Name: "article " + id}
		sel.Toggle(id)
	}
	return sel, batch
}

func TestExecuteSuccess(t *testing.T) {
	as := assert.New(t)

	sel, batch := fiveSelected()
	d := dispatch.Make[article](sel)

	calls := 0
	res, err := d.Execute(
		context.Background(),
		dispatch.Operation{Type: dispatch.OpDelete},
		batch,
		func(_ context.Context, op dispatch.Operation, b []article) error {
			calls++
			as.Equal(dispatch.OpDelete, op.Type)
			as.Len(b, 5)
			return nil
		},
	)

	as.Nil(err)
	as.Equal(1, calls, "executor must be invoked exactly once per batch")
	as.Equal(5, res.Succeeded)
	as.Equal(5, res.Total)
	as.Empty(res.Failures)
	as.Zero(sel.Count(), "selection cleared after success")
}

func TestExecuteFailurePreservesSelection(t *testing.T) {
	as := assert.New(t)

	sel, batch := fiveSelected()
	d := dispatch.Make[article](sel)

	boom := errors.New("network")
	_, err := d.Execute(
		context.Background(),
		dispatch.Operation{Type: dispatch.OpUpdateStock},
		batch,
		func(context.Context, dispatch.Operation, []article) error {
			return boom
		},
	)

	as.NotNil(err)
	as.True(errors.Is(err, boom), "executor error surfaced as-is")
	as.Equal(5, sel.Count(), "selection preserved for retry")
	as.False(d.IsPending())
}

func TestExecuteFailsFast(t *testing.T) {
	as := assert.New(t)

	sel, batch := fiveSelected()
	d := dispatch.Make[article](sel)

	called := false
	exec := func(context.Context, dispatch.Operation, []article) error {
		called = true
		return nil
	}

	// empty batch is a validation error, not a network one
	_, err := d.Execute(
		context.Background(),
		dispatch.Operation{Type: dispatch.OpDelete},
		nil, exec,
	)
	as.ErrorIs(err, dispatch.ErrNoneSelected)

	_, err = d.Execute(
		context.Background(), dispatch.Operation{}, batch, exec,
	)
	as.ErrorIs(err, dispatch.ErrTypeRequired)

	_, err = d.Execute(
		context.Background(),
		dispatch.Operation{Type: "frobnicate"}, batch, exec,
	)
	as.ErrorIs(err, dispatch.ErrUnknownType)

	as.False(called, "no executor call for rejected dispatches")
	as.Equal(5, sel.Count())
}

func TestExecuteRejectsWhilePending(t *testing.T) {
	as := assert.New(t)

	sel, batch := fiveSelected()
	d := dispatch.Make[article](sel)

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := d.Execute(
			context.Background(),
			dispatch.Operation{Type: dispatch.OpExport},
			batch,
			func(context.Context, dispatch.Operation, []article) error {
				close(started)
				<-release
				return nil
			},
		)
		done <- err
	}()

	<-started
	as.True(d.IsPending())
	_, err := d.Execute(
		context.Background(),
		dispatch.Operation{Type: dispatch.OpExport},
		batch,
		func(context.Context, dispatch.Operation, []article) error {
			return nil
		},
	)
	as.ErrorIs(err, dispatch.ErrDispatchPending)

	close(release)
	as.Nil(<-done)
	as.False(d.IsPending())
}

func TestExecuteLogsDispatch(t *testing.T) {
	as := assert.New(t)

	handler := internal.NewTestSlogHandler()
	prev := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(prev)

	sel, batch := fiveSelected()
	d := dispatch.Make[article](sel)
	_, err := d.Execute(
		context.Background(),
		dispatch.Operation{Type: dispatch.OpTag},
		batch,
		func(context.Context, dispatch.Operation, []article) error {
			return nil
		},
	)
	as.Nil(err)

	select {
	case r := <-handler.Logs:
		as.Equal("dispatching bulk operation", r.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a dispatch log record")
	}
}

func TestOpTypeValidity(t *testing.T) {
	as := assert.New(t)

	for _, op := range []dispatch.OpType{
		dispatch.OpDelete, dispatch.OpUpdateCategory,
		dispatch.OpUpdatePrice, dispatch.OpUpdateStock,
		dispatch.OpExport, dispatch.OpDuplicate,
		dispatch.OpTag, dispatch.OpArchive,
	} {
		as.True(op.IsValid())
	}
	as.False(dispatch.OpType("frobnicate").IsValid())
	as.False(dispatch.OpType("").IsValid())
}
