package debounce

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/kode4food/gridiron/closer"
)

// Debouncer delays propagation of a rapidly-changing value until input
// pauses. Every observed value resets the quiet-period timer; only the
// value still standing when the timer elapses uninterrupted is emitted
// on the Values channel. A superseded value is never emitted
type Debouncer[Msg any] struct {
	closer.Closer
	delay time.Duration
	out   chan Msg
	timer *time.Timer
	mu    sync.Mutex
}

const outCap = 1 // must be non-zero

// Make instantiates a new Debouncer with the given quiet period. A
// zero delay emits every observed value immediately. The Debouncer
// must be closed when its observing component is torn down; no timer
// fires after Close
func Make[Msg any](delay time.Duration) *Debouncer[Msg] {
	res := &Debouncer[Msg]{
		delay: delay,
		out:   make(chan Msg, outCap),
	}
	res.Closer = closer.Make(func() {
		res.mu.Lock()
		defer res.mu.Unlock()
		if res.timer != nil {
			res.timer.Stop()
			res.timer = nil
		}
	})
	runtime.SetFinalizer(res, debouncerDebugFinalizer[Msg])
	return res
}

// Observe feeds a new raw value to the Debouncer, resetting the quiet
// period. Values observed after Close are discarded
func (d *Debouncer[Msg]) Observe(m Msg) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if closer.IsClosed(d) {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.delay <= 0 {
		d.emit(m)
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if closer.IsClosed(d) {
			return
		}
		d.emit(m)
	})
}

// Values returns the channel on which settled values are emitted. The
// channel carries at most the latest settled value; an unconsumed
// value is replaced rather than queued
func (d *Debouncer[Msg]) Values() <-chan Msg {
	return d.out
}

func (d *Debouncer[Msg]) emit(m Msg) {
	select {
	case d.out <- m:
	default:
		select {
		case <-d.out:
		default:
		}
		d.out <- m
	}
}

func debouncerDebugFinalizer[Msg any](d *Debouncer[Msg]) {
	if !closer.IsClosed(d) {
		slog.Debug("debouncer not closed before garbage collection")
	}
}
