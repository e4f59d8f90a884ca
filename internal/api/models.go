package api

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/surface"

	"github.com/gogpu/gg"
)

// PointRequest carries canvas-local pointer coordinates.
type PointRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// EventResponse is returned by pointer and command endpoints. Shape is the
// committed, clicked or undone shape when there is one.
type EventResponse struct {
	Shape  *ShapeDTO `json:"shape,omitempty"`
	Status string    `json:"status"`
}

// ConfigRequest is a partial tool configuration update.
type ConfigRequest struct {
	Shape       *string  `json:"shape,omitempty"`
	FillColor   *string  `json:"fill_color,omitempty"`
	StrokeColor *string  `json:"stroke_color,omitempty"`
	Filled      *bool    `json:"filled,omitempty"`
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
	Background  *string  `json:"background,omitempty"`
}

func (r ConfigRequest) update() (state.ConfigUpdate, error) {
	var u state.ConfigUpdate
	if r.Shape != nil {
		kind, err := shape.ParseKind(*r.Shape)
		if err != nil {
			return u, err
		}
		u.Kind = &kind
	}
	if r.FillColor != nil {
		c, err := parseHexColor(*r.FillColor)
		if err != nil {
			return u, fmt.Errorf("fill_color: %w", err)
		}
		u.FillColor = &c
	}
	if r.StrokeColor != nil {
		c, err := parseHexColor(*r.StrokeColor)
		if err != nil {
			return u, fmt.Errorf("stroke_color: %w", err)
		}
		u.StrokeColor = &c
	}
	u.Filled = r.Filled
	u.StrokeWidth = r.StrokeWidth
	if r.Background != nil {
		bg, err := state.ParseBackground(*r.Background)
		if err != nil {
			return u, err
		}
		u.Background = &bg
	}
	return u, nil
}

// parseHexColor accepts #RGB, #RGBA, #RRGGBB and #RRGGBBAA.
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
	}
	c, ok := gg.Hex(hex).Color().(color.NRGBA)
	if !ok {
		return color.NRGBA{}, errors.New("unexpected color model")
	}
	return c, nil
}

// ConfigDTO is the JSON form of the tool configuration.
type ConfigDTO struct {
	Shape       string  `json:"shape"`
	FillColor   string  `json:"fill_color"`
	StrokeColor string  `json:"stroke_color"`
	Filled      bool    `json:"filled"`
	StrokeWidth float64 `json:"stroke_width"`
	Background  string  `json:"background"`
}

func newConfigDTO(c state.ToolConfig) ConfigDTO {
	return ConfigDTO{
		Shape:       c.Kind.String(),
		FillColor:   hexColor(c.FillColor),
		StrokeColor: hexColor(c.StrokeColor),
		Filled:      c.Filled,
		StrokeWidth: c.StrokeWidth,
		Background:  c.Background.String(),
	}
}

// ShapeDTO is the JSON form of a committed shape with its measurements.
type ShapeDTO struct {
	ID          string             `json:"id"`
	Kind        string             `json:"kind"`
	Geometry    map[string]float64 `json:"geometry"`
	Fill        string             `json:"fill"`
	Stroke      string             `json:"stroke"`
	StrokeWidth float64            `json:"stroke_width"`
	Area        float64            `json:"area"`
	Perimeter   float64            `json:"perimeter"`
}

func newShapeDTO(s shape.Shape) ShapeDTO {
	report := surface.Measure(s)
	return ShapeDTO{
		ID:          s.ID,
		Kind:        s.Kind.String(),
		Geometry:    geometryFields(s.Geometry),
		Fill:        hexColor(s.Style.Fill),
		Stroke:      hexColor(s.Style.Stroke),
		StrokeWidth: s.Style.StrokeWidth,
		Area:        report.Area,
		Perimeter:   report.Perimeter,
	}
}

func geometryFields(g shape.Geometry) map[string]float64 {
	switch g := g.(type) {
	case shape.Circle:
		return map[string]float64{"cx": g.Center.X, "cy": g.Center.Y, "r": g.Radius}
	case shape.Ellipse:
		return map[string]float64{"cx": g.Center.X, "cy": g.Center.Y, "rx": g.RX, "ry": g.RY}
	case shape.Rect:
		return map[string]float64{"x": g.Min.X, "y": g.Min.Y, "width": g.Width, "height": g.Height}
	case shape.Segment:
		return map[string]float64{"x1": g.From.X, "y1": g.From.Y, "x2": g.To.X, "y2": g.To.Y}
	default:
		panic(fmt.Sprintf("api: unknown outline %T", g))
	}
}
