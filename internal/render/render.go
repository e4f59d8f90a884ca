// Package render rasterizes a board scene with gogpu/gg.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"ShapeBoard/internal/shape"

	"github.com/gogpu/gg"
)

// PreviewAlpha scales the opacity of the in-progress shape.
const PreviewAlpha = 0.5

// Scene is everything drawn on the canvas. Scale maps canvas units to
// pixels for HiDPI outputs; zero means 1.
type Scene struct {
	Width, Height int
	Scale         float64
	Background    color.Color
	Shapes        []shape.Shape
	Preview       *shape.Shape
}

// Image rasterizes the scene.
func Image(sc Scene) (image.Image, error) {
	dc, err := draw(sc)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// EncodePNG rasterizes the scene and writes it to w as PNG.
func EncodePNG(w io.Writer, sc Scene) error {
	dc, err := draw(sc)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

func draw(sc Scene) (*gg.Context, error) {
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", sc.Width, sc.Height)
	}
	dc := gg.NewContext(sc.Width, sc.Height)

	bg := sc.Background
	if bg == nil {
		bg = color.White
	}
	dc.ClearWithColor(gg.FromColor(bg))

	if sc.Scale > 0 && sc.Scale != 1 {
		dc.Scale(sc.Scale, sc.Scale)
	}
	for _, s := range sc.Shapes {
		if err := Shape(dc, s); err != nil {
			dc.Close()
			return nil, fmt.Errorf("render %s %s: %w", s.Kind, s.ID, err)
		}
	}
	if sc.Preview != nil {
		preview := *sc.Preview
		preview.Style.Fill = fade(preview.Style.Fill)
		preview.Style.Stroke = fade(preview.Style.Stroke)
		if err := Shape(dc, preview); err != nil {
			dc.Close()
			return nil, fmt.Errorf("render preview: %w", err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("render flush: %w", err)
	}
	return dc, nil
}

// Shape draws s onto dc: the fill first, then the outline.
func Shape(dc *gg.Context, s shape.Shape) error {
	trace(dc, s.Geometry)
	if _, isLine := s.Geometry.(shape.Segment); !isLine && s.Style.Filled() {
		setColor(dc, s.Style.Fill)
		if err := dc.FillPreserve(); err != nil {
			dc.ClearPath()
			return err
		}
	}
	if s.Style.StrokeWidth <= 0 || s.Style.Stroke.A == 0 {
		dc.ClearPath()
		return nil
	}
	setColor(dc, s.Style.Stroke)
	dc.SetLineWidth(s.Style.StrokeWidth)
	return dc.Stroke()
}

func trace(dc *gg.Context, g shape.Geometry) {
	switch g := g.(type) {
	case shape.Circle:
		dc.DrawCircle(g.Center.X, g.Center.Y, g.Radius)
	case shape.Ellipse:
		dc.DrawEllipse(g.Center.X, g.Center.Y, g.RX, g.RY)
	case shape.Rect:
		dc.DrawRectangle(g.Min.X, g.Min.Y, g.Width, g.Height)
	case shape.Segment:
		dc.DrawLine(g.From.X, g.From.Y, g.To.X, g.To.Y)
	default:
		panic(fmt.Sprintf("render: unknown outline %T", g))
	}
}

// setColor passes straight alpha through; gg.FromColor would hand gg
// premultiplied components.
func setColor(dc *gg.Context, c color.NRGBA) {
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}

func fade(c color.NRGBA) color.NRGBA {
	c.A = uint8(float64(c.A) * PreviewAlpha)
	return c
}
