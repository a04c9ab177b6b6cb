package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/kode4food/gridiron/selection"
)

type (
	// OpType tags a bulk operation with one of a fixed set of actions
	OpType string

	// Operation describes one user-confirmed bulk action: a type tag
	// plus an operation-specific payload. An Operation is constructed
	// transiently, consumed once by a Dispatcher, then discarded
	Operation struct {
		Type OpType
		Data any
	}

	// Failure reports one record that an executor could not process
	Failure struct {
		RecordID string
		Reason   string
	}

	// Result aggregates the outcome of a single dispatch
	Result struct {
		ID        uuid.UUID
		Succeeded int
		Failures  []Failure
		Total     int
	}

	// Executor performs the bulk operation's actual side effect,
	// typically a network request, once for the whole batch. It is
	// supplied by the external collaborator
	Executor[Msg any] func(context.Context, Operation, []Msg) error

	// Dispatcher hands a confirmed Operation and the selected records
	// to an Executor, exactly once per batch, and reports the
	// aggregate outcome. At most one dispatch may be in flight at a
	// time; a second dispatch is rejected until the first settles
	Dispatcher[Msg any, Key comparable] struct {
		selected *selection.Model[Key]
		pending  atomic.Bool
	}
)

// The fixed set of bulk operations
const (
	OpDelete         OpType = "delete"
	OpUpdateCategory OpType = "update-category"
	OpUpdatePrice    OpType = "update-price"
	OpUpdateStock    OpType = "update-stock"
	OpExport         OpType = "export"
	OpDuplicate      OpType = "duplicate"
	OpTag            OpType = "tag"
	OpArchive        OpType = "archive"
)

var (
	ErrNoneSelected    = errors.New("no records selected for dispatch")
	ErrTypeRequired    = errors.New("operation type is required")
	ErrUnknownType     = errors.New("unknown operation type")
	ErrDispatchPending = errors.New("a dispatch is already pending")

	opTypes = map[OpType]bool{
		OpDelete:         true,
		OpUpdateCategory: true,
		OpUpdatePrice:    true,
		OpUpdateStock:    true,
		OpExport:         true,
		OpDuplicate:      true,
		OpTag:            true,
		OpArchive:        true,
	}
)

// IsValid returns whether the OpType belongs to the fixed operation set
func (o OpType) IsValid() bool {
	return opTypes[o]
}

// Make instantiates a Dispatcher bound to a selection Model. The model
// is cleared after a successful dispatch and left untouched by a
// failed one. A nil model is permitted for callers that manage
// selection themselves
func Make[Msg any, Key comparable](
	sel *selection.Model[Key],
) *Dispatcher[Msg, Key] {
	return &Dispatcher[Msg, Key]{
		selected: sel,
	}
}

// Execute validates the Operation and batch, invokes the Executor
// exactly once for the whole batch, and reports the outcome. An empty
// batch or a missing operation type fails fast before the Executor is
// ever invoked. On Executor failure the error is surfaced to the
// caller, wrapped with dispatch context, and the selection is
// preserved so the user can retry; the selection is cleared only
// strictly after the Executor returns success
func (d *Dispatcher[Msg, Key]) Execute(
	ctx context.Context, op Operation, batch []Msg, exec Executor[Msg],
) (Result, error) {
	if len(batch) == 0 {
		return Result{}, ErrNoneSelected
	}
	if op.Type == "" {
		return Result{}, ErrTypeRequired
	}
	if !op.Type.IsValid() {
		return Result{}, eris.Wrapf(ErrUnknownType, "%s", op.Type)
	}
	if !d.pending.CompareAndSwap(false, true) {
		return Result{}, ErrDispatchPending
	}
	defer d.pending.Store(false)

	id := uuid.New()
	slog.Debug("dispatching bulk operation",
		"id", id, "type", op.Type, "count", len(batch))

	if err := exec(ctx, op, batch); err != nil {
		slog.Debug("bulk operation failed",
			"id", id, "type", op.Type, "error", err)
		return Result{}, eris.Wrapf(err, "bulk %s failed", op.Type)
	}

	if d.selected != nil {
		d.selected.Clear()
	}
	return Result{
		ID:        id,
		Succeeded: len(batch),
		Failures:  []Failure{},
		Total:     len(batch),
	}, nil
}

// IsPending returns whether a dispatch is currently in flight
func (d *Dispatcher[_, _]) IsPending() bool {
	return d.pending.Load()
}
