package ui

import (
	"context"
	"image"
	"image/color"
	"log"
	"sync"

	"ShapeBoard/internal/render"
	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing area. It forwards pointer events to the board
// and paints the board's scene.
type BoardWidget struct {
	widget.BaseWidget
	board *surface.Dispatcher

	mu         sync.RWMutex
	shapes     []shape.Shape
	preview    *shape.Shape
	background color.NRGBA

	// OnStatus receives the info area text, on the fyne goroutine.
	OnStatus func(text string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget subscribes a widget to board.
func NewBoardWidget(board *surface.Dispatcher) *BoardWidget {
	b := &BoardWidget{board: board, background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	b.ExtendBaseWidget(b)
	b.send(b.attach)
	return b
}

// attach runs on the dispatcher goroutine.
func (b *BoardWidget) attach(sf *surface.Surface) {
	b.mu.Lock()
	b.shapes = sf.Scene()
	b.background = sf.Background()
	b.mu.Unlock()

	sf.OnShapeAdded = func(s shape.Shape) {
		b.mu.Lock()
		b.shapes = append(b.shapes, s)
		b.mu.Unlock()
		b.refreshLater()
	}
	sf.OnShapeRemoved = func(s shape.Shape) {
		b.mu.Lock()
		for i := len(b.shapes) - 1; i >= 0; i-- {
			if b.shapes[i].ID == s.ID {
				b.shapes = append(b.shapes[:i], b.shapes[i+1:]...)
				break
			}
		}
		b.mu.Unlock()
		b.refreshLater()
	}
	sf.OnCleared = func() {
		b.mu.Lock()
		b.shapes = nil
		b.mu.Unlock()
		b.refreshLater()
	}
	sf.OnPreview = func(p *shape.Shape) {
		b.mu.Lock()
		b.preview = p
		b.mu.Unlock()
		b.refreshLater()
	}
	sf.OnBackground = func(c color.NRGBA) {
		b.mu.Lock()
		b.background = c
		b.mu.Unlock()
		b.refreshLater()
	}
	sf.OnStatus = func(text string) {
		fyne.Do(func() {
			if b.OnStatus != nil {
				b.OnStatus(text)
			}
		})
	}
}

// send runs fn on the board and waits for it.
func (b *BoardWidget) send(fn func(*surface.Surface)) {
	if err := b.board.Do(context.Background(), fn); err != nil {
		log.Printf("[UI] Board unavailable: %v", err)
	}
}

func (b *BoardWidget) refreshLater() {
	fyne.Do(b.Refresh)
}

// Shapes returns the shapes currently painted, bottom-most first.
func (b *BoardWidget) Shapes() []shape.Shape {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]shape.Shape, len(b.shapes))
	copy(out, b.shapes)
	return out
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := float64(e.Position.X), float64(e.Position.Y)
	b.send(func(sf *surface.Surface) { sf.PointerDown(x, y) })
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := float64(e.Position.X), float64(e.Position.Y)
	b.send(func(sf *surface.Surface) { sf.PointerUp(x, y) })
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	x, y := float64(e.Position.X), float64(e.Position.Y)
	b.send(func(sf *surface.Surface) { sf.PointerMoved(x, y) })
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	x, y := float64(e.Position.X), float64(e.Position.Y)
	b.send(func(sf *surface.Surface) { sf.PointerClicked(x, y) })
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// paint is the raster generator; w and h are in pixels.
func (b *BoardWidget) paint(w, h int) image.Image {
	b.mu.RLock()
	sc := render.Scene{
		Width:      w,
		Height:     h,
		Background: b.background,
		Shapes:     append([]shape.Shape(nil), b.shapes...),
		Preview:    b.preview,
	}
	b.mu.RUnlock()

	if size := b.Size(); size.Width > 0 {
		sc.Scale = float64(w) / float64(size.Width)
	}
	img, err := render.Image(sc)
	if err != nil {
		log.Printf("[UI] Render failed: %v", err)
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	return img
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{
		board:  b,
		raster: canvas.NewRaster(b.paint),
	}
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	raster *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *boardWidgetRenderer) Destroy() {}
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
