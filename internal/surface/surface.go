// Package surface adapts pointer, configuration and command events from a
// front end into drawing session calls and reports what to render.
package surface

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"ShapeBoard/internal/geometry"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/state"

	"gonum.org/v1/gonum/spatial/r2"
)

// Report is the measurement shown for a clicked shape.
type Report struct {
	Shape     shape.Shape
	Area      float64
	Perimeter float64
}

// Measure computes the report for s.
func Measure(s shape.Shape) Report {
	return Report{
		Shape:     s,
		Area:      geometry.Area(s.Geometry),
		Perimeter: geometry.Perimeter(s.Geometry),
	}
}

// Lines formats the report the way the info area shows it.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf("Shape Area: %.2f", r.Area),
		fmt.Sprintf("Shape Perimeter: %.2f", r.Perimeter),
	}
}

// Surface is the toolkit-independent side of the drawing board. Front ends
// feed it events and subscribe to the On* callbacks to render.
//
// A Surface is not safe for concurrent use; wrap it in a Dispatcher when
// events arrive from several goroutines.
type Surface struct {
	session *state.Session
	scene   []shape.Shape
	status  string

	OnShapeAdded   func(shape.Shape)
	OnShapeRemoved func(shape.Shape)
	OnCleared      func()
	OnPreview      func(preview *shape.Shape)
	OnStatus       func(text string)
	OnBackground   func(color.NRGBA)
	OnExit         func()
}

// New wraps session.
func New(session *state.Session) *Surface {
	return &Surface{session: session}
}

// Session exposes the underlying drawing session.
func (s *Surface) Session() *state.Session {
	return s.session
}

// Scene returns the rendered shapes, bottom-most first.
func (s *Surface) Scene() []shape.Shape {
	out := make([]shape.Shape, len(s.scene))
	copy(out, s.scene)
	return out
}

// Status returns the text currently shown in the info area.
func (s *Surface) Status() string {
	return s.status
}

// Background returns the canvas color.
func (s *Surface) Background() color.NRGBA {
	return s.session.Config().Background.Color()
}

// PointerDown starts a gesture at (x, y).
func (s *Surface) PointerDown(x, y float64) {
	s.session.BeginGesture(r2.Vec{X: x, Y: y})
}

// PointerUp finishes the gesture and adds the committed shape to the scene.
// A rejected gesture appends a diagnostic naming the shape kind instead.
func (s *Surface) PointerUp(x, y float64) (shape.Shape, bool) {
	wasPressed := s.session.State() == state.Pressed
	committed, err := s.session.EndGesture(r2.Vec{X: x, Y: y})
	if wasPressed && s.OnPreview != nil {
		s.OnPreview(nil)
	}

	var invalid *shape.InvalidGeometryError
	switch {
	case err == nil:
		s.scene = append(s.scene, committed)
		if s.OnShapeAdded != nil {
			s.OnShapeAdded(committed)
		}
		return committed, true
	case errors.As(err, &invalid):
		log.Printf("[SURFACE] Rejected gesture: %v", err)
		s.appendStatus(invalid.Error())
	case errors.Is(err, state.ErrNoGesture):
		log.Printf("[SURFACE] Release at (%v, %v) without press", x, y)
	default:
		log.Printf("[SURFACE] Gesture failed: %v", err)
	}
	return shape.Shape{}, false
}

// PointerMoved shows the pointer position and, mid-gesture, the preview.
func (s *Surface) PointerMoved(x, y float64) {
	s.setStatus(fmt.Sprintf("Mouse position = [%s, %s]", formatCoord(x), formatCoord(y)))
	if s.session.State() != state.Pressed || s.OnPreview == nil {
		return
	}
	if preview, ok := s.session.Preview(r2.Vec{X: x, Y: y}); ok {
		s.OnPreview(&preview)
	} else {
		s.OnPreview(nil)
	}
}

// PointerClicked hit-tests the scene and appends area and perimeter of the
// topmost shape under the pointer.
func (s *Surface) PointerClicked(x, y float64) (Report, bool) {
	hit, ok := s.session.HitTest(r2.Vec{X: x, Y: y})
	if !ok {
		return Report{}, false
	}
	report := Measure(hit)
	s.appendStatus(report.Lines()...)
	return report, true
}

// SelectKind sets the shape drawn by the next gesture.
func (s *Surface) SelectKind(kind shape.Kind) {
	s.session.Update(state.ConfigUpdate{Kind: &kind})
}

// SetFillColor sets the fill for future shapes.
func (s *Surface) SetFillColor(c color.Color) {
	fill := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.session.Update(state.ConfigUpdate{FillColor: &fill})
}

// SetStrokeColor sets the outline color for future shapes.
func (s *Surface) SetStrokeColor(c color.Color) {
	stroke := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.session.Update(state.ConfigUpdate{StrokeColor: &stroke})
}

// SetFilled toggles filling for future shapes.
func (s *Surface) SetFilled(filled bool) {
	s.session.Update(state.ConfigUpdate{Filled: &filled})
}

// SelectStrokeWidth sets the pen size for future shapes.
func (s *Surface) SelectStrokeWidth(width float64) {
	s.session.Update(state.ConfigUpdate{StrokeWidth: &width})
}

// SelectBackground recolors the canvas. Committed shapes are untouched.
func (s *Surface) SelectBackground(bg state.Background) {
	s.session.Update(state.ConfigUpdate{Background: &bg})
	if s.OnBackground != nil {
		s.OnBackground(bg.Color())
	}
}

// Undo removes the newest shape from the history and the scene.
func (s *Surface) Undo() (shape.Shape, bool) {
	removed, err := s.session.Undo()
	if err != nil {
		if errors.Is(err, state.ErrEmptyHistory) {
			s.appendStatus("Nothing to undo")
		}
		return shape.Shape{}, false
	}
	for i := len(s.scene) - 1; i >= 0; i-- {
		if s.scene[i].ID == removed.ID {
			s.scene = append(s.scene[:i], s.scene[i+1:]...)
			break
		}
	}
	if s.OnShapeRemoved != nil {
		s.OnShapeRemoved(removed)
	}
	return removed, true
}

// Clear removes every shape from the history and the scene.
func (s *Surface) Clear() {
	s.session.Clear()
	s.scene = nil
	if s.OnCleared != nil {
		s.OnCleared()
	}
}

// Exit asks the front end to close.
func (s *Surface) Exit() {
	log.Println("[SURFACE] Exit requested")
	if s.OnExit != nil {
		s.OnExit()
	}
}

func (s *Surface) setStatus(text string) {
	s.status = text
	s.publishStatus()
}

func (s *Surface) appendStatus(lines ...string) {
	s.status += "\n" + strings.Join(lines, "\n")
	s.publishStatus()
}

func (s *Surface) publishStatus() {
	if s.OnStatus != nil {
		s.OnStatus(s.status)
	}
}

// formatCoord prints integral coordinates as "12.0" and keeps the fraction
// otherwise.
func formatCoord(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(text, ".eEnN") {
		text += ".0"
	}
	return text
}
