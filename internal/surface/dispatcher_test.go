package surface

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ShapeBoard/internal/shape"

	"gonum.org/v1/gonum/spatial/r2"
)

func r(x, y float64) r2.Vec { return r2.Vec{X: x, Y: y} }

func TestDispatcherSerializesCalls(t *testing.T) {
	d := NewDispatcher(newTestSurface(shape.KindRectangle))
	defer d.Close()

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := d.Do(context.Background(), func(s *Surface) {
				x := float64(10 + i)
				s.PointerDown(x, 10)
				s.PointerUp(x+20, 40)
			})
			if err != nil {
				t.Errorf("Do() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	var n int
	if err := d.Do(context.Background(), func(s *Surface) { n = len(s.Scene()) }); err != nil {
		t.Fatal(err)
	}
	if n != workers {
		t.Errorf("scene has %d shapes, want %d", n, workers)
	}
}

func TestDispatcherClosed(t *testing.T) {
	d := NewDispatcher(newTestSurface(shape.KindCircle))
	d.Close()
	d.Close()

	ran := false
	err := d.Do(context.Background(), func(*Surface) { ran = true })
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Do() after Close error = %v, want ErrClosed", err)
	}
	if ran {
		t.Error("Do() ran fn after Close")
	}
}

func TestDispatcherContextCancelled(t *testing.T) {
	d := NewDispatcher(newTestSurface(shape.KindCircle))
	defer d.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	go d.Do(context.Background(), func(*Surface) {
		close(started)
		<-release
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Do(ctx, func(*Surface) { t.Error("cancelled call ran") })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
	close(release)
}
