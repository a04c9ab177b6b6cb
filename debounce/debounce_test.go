package debounce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/gridiron/closer"
	"github.com/kode4food/gridiron/debounce"
)

func TestDebounceSuppression(t *testing.T) {
	as := assert.New(t)

	d := debounce.Make[string](100 * time.Millisecond)
	defer d.Close()

	// rapid keystrokes: only the final value may ever be observed
	d.Observe("a")
	time.Sleep(20 * time.Millisecond)
	d.Observe("ar")
	time.Sleep(20 * time.Millisecond)
	d.Observe("art")

	select {
	case v := <-d.Values():
		as.Equal("art", v)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for debounced value")
	}

	// nothing else arrives afterwards
	select {
	case v := <-d.Values():
		t.Fatalf("superseded value propagated: %s", v)
	case <-time.After(150 * time.Millisecond):
		// Expected path
	}
}

func TestDebounceMultipleBursts(t *testing.T) {
	as := assert.New(t)

	d := debounce.Make[int](50 * time.Millisecond)
	defer d.Close()

	d.Observe(1)
	d.Observe(2)
	v := <-d.Values()
	as.Equal(2, v)

	d.Observe(3)
	d.Observe(4)
	v = <-d.Values()
	as.Equal(4, v)
}

func TestDebounceZeroDelay(t *testing.T) {
	as := assert.New(t)

	d := debounce.Make[string](0)
	defer d.Close()

	d.Observe("now")
	select {
	case v := <-d.Values():
		as.Equal("now", v)
	case <-time.After(time.Second):
		t.Fatal("zero-delay value never arrived")
	}
}

func TestDebounceLatestWins(t *testing.T) {
	as := assert.New(t)

	d := debounce.Make[string](10 * time.Millisecond)
	defer d.Close()

	// an unconsumed settled value is replaced by a newer one
	d.Observe("stale")
	time.Sleep(50 * time.Millisecond)
	d.Observe("fresh")
	time.Sleep(50 * time.Millisecond)

	as.Equal("fresh", <-d.Values())
}

func TestDebounceClose(t *testing.T) {
	as := assert.New(t)

	d := debounce.Make[string](30 * time.Millisecond)
	d.Observe("pending")
	d.Close()
	as.True(closer.IsClosed(d))

	// the armed timer must not fire after teardown
	select {
	case v := <-d.Values():
		t.Fatalf("value emitted after close: %s", v)
	case <-time.After(100 * time.Millisecond):
		// Expected path
	}

	// observations after close are discarded
	d.Observe("ignored")
	select {
	case <-d.Values():
		t.Fatal("value emitted after close")
	case <-time.After(50 * time.Millisecond):
	}
}
