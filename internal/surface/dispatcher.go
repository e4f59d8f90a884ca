package surface

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Do after Close.
var ErrClosed = errors.New("surface dispatcher closed")

type call struct {
	fn   func(*Surface)
	done chan struct{}
}

// Dispatcher serializes every access to a Surface onto a single goroutine,
// so front ends running on different goroutines share one board.
type Dispatcher struct {
	surface *Surface
	calls   chan call
	quit    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewDispatcher starts the consumer goroutine for s.
func NewDispatcher(s *Surface) *Dispatcher {
	d := &Dispatcher{
		surface: s,
		calls:   make(chan call),
		quit:    make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for {
		select {
		case c := <-d.calls:
			c.fn(d.surface)
			close(c.done)
		case <-d.quit:
			return
		}
	}
}

// Do runs fn on the dispatcher goroutine and waits for it to finish.
// Callbacks fired by the surface also run on that goroutine.
func (d *Dispatcher) Do(ctx context.Context, fn func(*Surface)) error {
	c := call{fn: fn, done: make(chan struct{})}
	select {
	case d.calls <- c:
	case <-d.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-c.done
	return nil
}

// Close stops the consumer goroutine. Pending Do calls return ErrClosed.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.quit) })
	d.wg.Wait()
}
