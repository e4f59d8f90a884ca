// Package state holds the drawing session: tool configuration, the gesture
// in progress and the history of committed shapes.
package state

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ShapeBoard/internal/geometry"
	"ShapeBoard/internal/shape"

	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrEmptyHistory is returned by Undo when nothing has been drawn.
	ErrEmptyHistory = errors.New("nothing to undo")
	// ErrNoGesture is returned by EndGesture without a preceding BeginGesture.
	ErrNoGesture = errors.New("no gesture in progress")
)

// GestureState is the press/release state of the pointer.
type GestureState int

const (
	Idle GestureState = iota
	Pressed
)

func (g GestureState) String() string {
	if g == Pressed {
		return "Pressed"
	}
	return "Idle"
}

// Session owns the tool configuration and shape history of one board.
// It is not safe for concurrent use; see surface.Dispatcher.
type Session struct {
	config  ToolConfig
	history History
	state   GestureState
	origin  r2.Vec
	nextID  func() string
	now     func() time.Time
}

// NewSession starts an empty board drawing with cfg.
func NewSession(cfg ToolConfig, opts ...Option) *Session {
	s := &Session{
		config: cfg,
		nextID: newShapeID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the current tool configuration.
func (s *Session) Config() ToolConfig {
	return s.config
}

// Update merges u into the tool configuration. Shapes already drawn keep
// the attributes they were committed with.
func (s *Session) Update(u ConfigUpdate) ToolConfig {
	cfg, ignored := s.config.apply(u)
	for _, field := range ignored {
		log.Printf("[SESSION] Ignoring invalid %s", field)
	}
	s.config = cfg
	return s.config
}

// State reports whether a gesture is in progress.
func (s *Session) State() GestureState {
	return s.state
}

// BeginGesture records the press position. A press while already pressed
// restarts the gesture from p.
func (s *Session) BeginGesture(p r2.Vec) {
	if s.state == Pressed {
		log.Printf("[SESSION] Press at %v while pressed, restarting gesture", p)
	}
	s.origin = p
	s.state = Pressed
}

// CancelGesture drops the gesture in progress without drawing anything.
func (s *Session) CancelGesture() {
	s.state = Idle
}

// Preview returns the shape the gesture would commit if released at p.
// Previews are not validated and never enter the history.
func (s *Session) Preview(p r2.Vec) (shape.Shape, bool) {
	if s.state != Pressed {
		return shape.Shape{}, false
	}
	g, err := shape.Build(s.config.Kind, s.origin, p)
	if err != nil {
		return shape.Shape{}, false
	}
	return shape.Shape{Kind: s.config.Kind, Geometry: g, Style: s.config.Style()}, true
}

// EndGesture finishes the gesture at p. The session is Idle afterwards
// whether or not a shape was committed.
func (s *Session) EndGesture(p r2.Vec) (shape.Shape, error) {
	if s.state != Pressed {
		return shape.Shape{}, ErrNoGesture
	}
	s.state = Idle

	g, err := shape.Build(s.config.Kind, s.origin, p)
	if err != nil {
		return shape.Shape{}, fmt.Errorf("commit %s: %w", s.config.Kind, err)
	}

	committed := shape.Shape{
		ID:        s.nextID(),
		Kind:      s.config.Kind,
		Geometry:  g,
		Style:     s.config.Style(),
		CreatedAt: s.now(),
	}
	s.history.Push(committed)
	log.Printf("[SESSION] Committed %s %s (%d in history)", committed.Kind, committed.ID, s.history.Len())
	return committed, nil
}

// HitTest returns the most recently drawn shape containing p.
func (s *Session) HitTest(p r2.Vec) (shape.Shape, bool) {
	var hit shape.Shape
	found := false
	s.history.Each(func(candidate shape.Shape) bool {
		if geometry.Contains(candidate.Geometry, p) {
			hit, found = candidate, true
			return false
		}
		return true
	})
	return hit, found
}

// Undo removes and returns the most recently committed shape.
func (s *Session) Undo() (shape.Shape, error) {
	removed, ok := s.history.Pop()
	if !ok {
		return shape.Shape{}, ErrEmptyHistory
	}
	log.Printf("[SESSION] Undo %s %s", removed.Kind, removed.ID)
	return removed, nil
}

// Clear empties the history and returns the number of shapes removed.
func (s *Session) Clear() int {
	n := s.history.Clear()
	log.Printf("[SESSION] Cleared %d shapes", n)
	return n
}

// Shapes returns the committed shapes in commit order.
func (s *Session) Shapes() []shape.Shape {
	return s.history.Shapes()
}

// Len returns the number of committed shapes.
func (s *Session) Len() int {
	return s.history.Len()
}
