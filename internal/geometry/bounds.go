package geometry

import (
	"math"

	"ShapeBoard/internal/shape"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max r2.Vec
}

// Bounds returns the bounding box of g.
func Bounds(g shape.Geometry) Box {
	switch g := g.(type) {
	case shape.Circle:
		r := r2.Vec{X: g.Radius, Y: g.Radius}
		return Box{Min: r2.Sub(g.Center, r), Max: r2.Add(g.Center, r)}
	case shape.Ellipse:
		r := r2.Vec{X: g.RX, Y: g.RY}
		return Box{Min: r2.Sub(g.Center, r), Max: r2.Add(g.Center, r)}
	case shape.Rect:
		return Box{Min: g.Min, Max: r2.Add(g.Min, r2.Vec{X: g.Width, Y: g.Height})}
	case shape.Segment:
		return Box{
			Min: r2.Vec{X: math.Min(g.From.X, g.To.X), Y: math.Min(g.From.Y, g.To.Y)},
			Max: r2.Vec{X: math.Max(g.From.X, g.To.X), Y: math.Max(g.From.Y, g.To.Y)},
		}
	default:
		panic(unknown(g))
	}
}

// Width returns the horizontal extent of b.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of b.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

func (b Box) inflate(d float64) Box {
	pad := r2.Vec{X: d, Y: d}
	return Box{Min: r2.Sub(b.Min, pad), Max: r2.Add(b.Max, pad)}
}

func (b Box) contains(p r2.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
