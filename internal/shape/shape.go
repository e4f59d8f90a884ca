package shape

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind is the drawing tool selected when a gesture commits.
type Kind int

const (
	KindCircle Kind = iota
	KindOval
	KindRectangle
	KindSquare
	KindLine
)

var kindNames = [...]string{
	KindCircle:    "Circle",
	KindOval:      "Oval",
	KindRectangle: "Rectangle",
	KindSquare:    "Square",
	KindLine:      "Line",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every kind in menu order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindOval, KindRectangle, KindSquare, KindLine}
}

// ParseKind maps a menu label ("circle", "Oval", ...) back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", name)
}

// Geometry is the closed set of shape outlines. Only the types in this
// package implement it.
type Geometry interface {
	geometry()
}

// Circle is a circle given by its center and radius.
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Ellipse is an axis-aligned ellipse, the outline of the Oval tool.
type Ellipse struct {
	Center r2.Vec
	RX, RY float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Squares are Rects with Width == Height.
type Rect struct {
	Min           r2.Vec
	Width, Height float64
}

// Segment is a straight line between two endpoints.
type Segment struct {
	From, To r2.Vec
}

func (Circle) geometry()  {}
func (Ellipse) geometry() {}
func (Rect) geometry()    {}
func (Segment) geometry() {}

// Style holds the rendering attributes captured when a shape is committed.
type Style struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
}

// Transparent is the fill used for hollow shapes.
var Transparent = color.NRGBA{}

// Filled reports whether the shape paints its interior.
func (s Style) Filled() bool {
	return s.Fill.A > 0
}

// Shape is a committed drawing. Shapes are values and are never edited
// after they enter the history.
type Shape struct {
	ID        string
	Kind      Kind
	Geometry  Geometry
	Style     Style
	CreatedAt time.Time
}

// InvalidGeometryError reports a gesture rejected by the canvas origin guard.
type InvalidGeometryError struct {
	Kind            Kind
	Origin, Release r2.Vec
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("Invalid dimensions for %s", e.Kind)
}
