// Package geometry measures and hit-tests committed shape outlines.
package geometry

import (
	"fmt"
	"math"

	"ShapeBoard/internal/shape"

	"gonum.org/v1/gonum/spatial/r2"
)

// LineTolerance is how far, in canvas pixels, a point may sit from a line
// segment and still count as touching it.
const LineTolerance = 3.0

// Area returns the enclosed area of g. Lines enclose nothing and report 0.
func Area(g shape.Geometry) float64 {
	switch g := g.(type) {
	case shape.Circle:
		return math.Pi * g.Radius * g.Radius
	case shape.Ellipse:
		return math.Pi * g.RX * g.RY
	case shape.Rect:
		return g.Width * g.Height
	case shape.Segment:
		return 0
	default:
		panic(unknown(g))
	}
}

// Perimeter returns the outline length of g.
//
// Ellipses use the approximation 2π·√((rx²+ry²)/2). For a line the
// perimeter is its length.
func Perimeter(g shape.Geometry) float64 {
	switch g := g.(type) {
	case shape.Circle:
		return 2 * math.Pi * g.Radius
	case shape.Ellipse:
		return 2 * math.Pi * math.Sqrt((g.RX*g.RX+g.RY*g.RY)/2)
	case shape.Rect:
		return 2 * (g.Width + g.Height)
	case shape.Segment:
		return r2.Norm(r2.Sub(g.To, g.From))
	default:
		panic(unknown(g))
	}
}

// Contains reports whether p lies inside or on the boundary of g.
// Degenerate outlines (see IsDegenerate) contain nothing.
func Contains(g shape.Geometry, p r2.Vec) bool {
	if IsDegenerate(g) || !Bounds(g).inflate(LineTolerance).contains(p) {
		return false
	}

	switch g := g.(type) {
	case shape.Circle:
		return r2.Norm2(r2.Sub(p, g.Center)) <= g.Radius*g.Radius
	case shape.Ellipse:
		nx := (p.X - g.Center.X) / g.RX
		ny := (p.Y - g.Center.Y) / g.RY
		return nx*nx+ny*ny <= 1
	case shape.Rect:
		return p.X >= g.Min.X && p.X <= g.Min.X+g.Width &&
			p.Y >= g.Min.Y && p.Y <= g.Min.Y+g.Height
	case shape.Segment:
		return DistanceToSegment(p, g.From, g.To) <= LineTolerance
	default:
		panic(unknown(g))
	}
}

// IsDegenerate reports outlines with nothing to hit: closed shapes with zero
// area and zero-length lines. A plain click produces one of these.
func IsDegenerate(g shape.Geometry) bool {
	switch g := g.(type) {
	case shape.Segment:
		return g.From == g.To
	default:
		return Area(g) == 0
	}
}

// DistanceToSegment returns the distance from p to the closest point of the
// segment a-b.
func DistanceToSegment(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	abLen2 := r2.Norm2(ab)
	if abLen2 == 0 {
		return r2.Norm(r2.Sub(p, a))
	}
	t := r2.Dot(r2.Sub(p, a), ab) / abLen2
	t = math.Max(0, math.Min(1, t))
	closest := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm(r2.Sub(p, closest))
}

func unknown(g shape.Geometry) string {
	return fmt.Sprintf("geometry: unknown outline %T", g)
}
