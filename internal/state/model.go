package state

import (
	"fmt"
	"image/color"
	"strings"

	"ShapeBoard/internal/shape"

	"golang.org/x/image/colornames"
)

// Background is one of the canvas background presets.
type Background int

const (
	BackgroundWhite Background = iota
	BackgroundLightGray
	BackgroundLightYellow
	BackgroundLightBlue
	BackgroundLightGreen
)

var backgrounds = [...]struct {
	name  string
	color color.RGBA
}{
	BackgroundWhite:       {"White", colornames.White},
	BackgroundLightGray:   {"Light Gray", colornames.Lightgray},
	BackgroundLightYellow: {"Light Yellow", colornames.Lightyellow},
	BackgroundLightBlue:   {"Light Blue", colornames.Lightblue},
	BackgroundLightGreen:  {"Light Green", colornames.Lightgreen},
}

func (b Background) String() string {
	if b < 0 || int(b) >= len(backgrounds) {
		return fmt.Sprintf("Background(%d)", int(b))
	}
	return backgrounds[b].name
}

// Color returns the canvas color for b.
func (b Background) Color() color.NRGBA {
	if b < 0 || int(b) >= len(backgrounds) {
		b = BackgroundWhite
	}
	c := backgrounds[b].color
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Backgrounds lists the presets in menu order.
func Backgrounds() []Background {
	return []Background{
		BackgroundWhite,
		BackgroundLightGray,
		BackgroundLightYellow,
		BackgroundLightBlue,
		BackgroundLightGreen,
	}
}

// ParseBackground accepts "Light Gray", "lightgray" or "light-gray".
func ParseBackground(name string) (Background, error) {
	key := normalizeName(name)
	for i, bg := range backgrounds {
		if normalizeName(bg.name) == key {
			return Background(i), nil
		}
	}
	return 0, fmt.Errorf("unknown background %q", name)
}

func normalizeName(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(s))
}

// StrokeWidths are the pen sizes offered by the tool panel. Other positive
// widths are accepted too.
var StrokeWidths = []float64{2.0, 4.0, 6.0}

// ToolConfig is the drawing configuration applied to the next committed shape.
type ToolConfig struct {
	Kind        shape.Kind
	FillColor   color.NRGBA
	StrokeColor color.NRGBA
	Filled      bool
	StrokeWidth float64
	Background  Background
}

// DefaultToolConfig draws filled black circles with a medium pen on white.
func DefaultToolConfig() ToolConfig {
	black := color.NRGBA{A: 0xff}
	return ToolConfig{
		Kind:        shape.KindCircle,
		FillColor:   black,
		StrokeColor: black,
		Filled:      true,
		StrokeWidth: 4.0,
		Background:  BackgroundWhite,
	}
}

// Style snapshots the attributes a shape keeps for its whole life.
func (c ToolConfig) Style() shape.Style {
	fill := shape.Transparent
	if c.Filled {
		fill = c.FillColor
	}
	return shape.Style{
		Fill:        fill,
		Stroke:      c.StrokeColor,
		StrokeWidth: c.StrokeWidth,
	}
}

// ConfigUpdate changes the fields that are set and leaves the rest alone.
type ConfigUpdate struct {
	Kind        *shape.Kind
	FillColor   *color.NRGBA
	StrokeColor *color.NRGBA
	Filled      *bool
	StrokeWidth *float64
	Background  *Background
}

// apply returns c with u merged in. Non-positive stroke widths are dropped.
func (c ToolConfig) apply(u ConfigUpdate) (ToolConfig, []string) {
	var ignored []string
	if u.Kind != nil {
		c.Kind = *u.Kind
	}
	if u.FillColor != nil {
		c.FillColor = *u.FillColor
	}
	if u.StrokeColor != nil {
		c.StrokeColor = *u.StrokeColor
	}
	if u.Filled != nil {
		c.Filled = *u.Filled
	}
	if u.StrokeWidth != nil {
		if *u.StrokeWidth > 0 {
			c.StrokeWidth = *u.StrokeWidth
		} else {
			ignored = append(ignored, fmt.Sprintf("stroke width %v", *u.StrokeWidth))
		}
	}
	if u.Background != nil {
		c.Background = *u.Background
	}
	return c, ignored
}
