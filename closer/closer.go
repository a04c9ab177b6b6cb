package closer

type (
	// Closer is a type that can be explicitly torn down. Closing is
	// idempotent, and IsClosed exposes a channel so that teardown can
	// participate in a select
	Closer interface {
		// Close tears down the instance. Calling Close more than once
		// is a no-op
		Close()

		// IsClosed returns a channel that is closed once Close has been
		// called
		IsClosed() <-chan struct{}
	}

	closer struct {
		closed  chan struct{}
		onClose func()
	}
)

// Make instantiates a Closer that invokes onClose exactly once, the
// first time Close is called. onClose may be nil
func Make(onClose func()) Closer {
	return &closer{
		closed:  make(chan struct{}),
		onClose: onClose,
	}
}

// IsClosed returns whether the specified Closer has been closed
func IsClosed(c Closer) bool {
	select {
	case <-c.IsClosed():
		return true
	default:
		return false
	}
}

func (c *closer) Close() {
	select {
	case <-c.closed:
		return
	default:
		close(c.closed)
		if c.onClose != nil {
			c.onClose()
		}
	}
}

func (c *closer) IsClosed() <-chan struct{} {
	return c.closed
}
