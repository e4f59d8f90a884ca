package state

import "ShapeBoard/internal/shape"

// History is the stack of committed shapes, oldest first.
type History struct {
	shapes []shape.Shape
}

// Push appends s as the newest shape.
func (h *History) Push(s shape.Shape) {
	h.shapes = append(h.shapes, s)
}

// Pop removes and returns the newest shape.
func (h *History) Pop() (shape.Shape, bool) {
	n := len(h.shapes)
	if n == 0 {
		return shape.Shape{}, false
	}
	s := h.shapes[n-1]
	h.shapes[n-1] = shape.Shape{}
	h.shapes = h.shapes[:n-1]
	return s, true
}

// Clear drops every shape and returns how many there were.
func (h *History) Clear() int {
	n := len(h.shapes)
	h.shapes = nil
	return n
}

// Len returns the number of committed shapes.
func (h *History) Len() int {
	return len(h.shapes)
}

// Shapes returns a copy of the history in commit order.
func (h *History) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(h.shapes))
	copy(out, h.shapes)
	return out
}

// Each visits shapes newest first until fn returns false.
func (h *History) Each(fn func(shape.Shape) bool) {
	for i := len(h.shapes) - 1; i >= 0; i-- {
		if !fn(h.shapes[i]) {
			return
		}
	}
}
