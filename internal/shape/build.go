package shape

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Build turns a press at origin and a release at release into the outline
// for kind.
//
// Any coordinate at or below zero rejects the gesture, including shapes
// that would legitimately touch the top or left edge of the canvas.
func Build(kind Kind, origin, release r2.Vec) (Geometry, error) {
	if origin.X <= 0 || origin.Y <= 0 || release.X <= 0 || release.Y <= 0 {
		return nil, &InvalidGeometryError{Kind: kind, Origin: origin, Release: release}
	}

	mid := r2.Scale(0.5, r2.Add(origin, release))
	dx := math.Abs(release.X - origin.X)
	dy := math.Abs(release.Y - origin.Y)
	corner := r2.Vec{X: math.Min(origin.X, release.X), Y: math.Min(origin.Y, release.Y)}

	switch kind {
	case KindCircle:
		diameter := r2.Norm(r2.Sub(release, origin))
		return Circle{Center: mid, Radius: diameter / 2}, nil
	case KindOval:
		return Ellipse{Center: mid, RX: dx / 2, RY: dy / 2}, nil
	case KindRectangle:
		return Rect{Min: corner, Width: dx, Height: dy}, nil
	case KindSquare:
		side := math.Min(dx, dy)
		return Rect{Min: corner, Width: side, Height: side}, nil
	case KindLine:
		return Segment{From: origin, To: release}, nil
	default:
		return nil, fmt.Errorf("build: unsupported kind %v", kind)
	}
}
