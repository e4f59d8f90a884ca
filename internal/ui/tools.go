package ui

import (
	"fmt"
	"image/color"

	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func()
	rect     *canvas.Rectangle
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c
		s.rect.Refresh()
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color)
	s.rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// colorButton is a swatch that opens a color picker and reports the choice.
func colorButton(win fyne.Window, title string, initial color.Color, chosen func(color.Color)) fyne.CanvasObject {
	var swatch *colorSwatch
	swatch = newColorSwatch(initial, func() {
		picker := dialog.NewColorPicker(title, "", func(c color.Color) {
			swatch.SetColor(c)
			chosen(c)
		}, win)
		picker.Advanced = true
		picker.SetColor(swatch.Color)
		picker.Show()
	})
	return swatch
}

func penSizeLabel(width float64) string {
	names := map[float64]string{2: "Small", 4: "Medium", 6: "Large"}
	return fmt.Sprintf("%s (%g)", names[width], width)
}

// --- The Tool Panel ---
func NewToolPanel(board *BoardWidget, win fyne.Window, initial state.ToolConfig) fyne.CanvasObject {
	// Shape selection
	kindNames := make([]string, 0, len(shape.Kinds()))
	for _, k := range shape.Kinds() {
		kindNames = append(kindNames, k.String())
	}
	shapeSelect := widget.NewSelect(kindNames, func(name string) {
		kind, err := shape.ParseKind(name)
		if err != nil {
			return
		}
		board.send(func(sf *surface.Surface) { sf.SelectKind(kind) })
	})
	shapeSelect.SetSelected(initial.Kind.String())

	// Fill and stroke colors
	fillButton := colorButton(win, "Fill Color", initial.FillColor, func(c color.Color) {
		board.send(func(sf *surface.Surface) { sf.SetFillColor(c) })
	})
	strokeButton := colorButton(win, "Stroke Color", initial.StrokeColor, func(c color.Color) {
		board.send(func(sf *surface.Surface) { sf.SetStrokeColor(c) })
	})

	fillCheck := widget.NewCheck("Fill Shape", func(filled bool) {
		board.send(func(sf *surface.Surface) { sf.SetFilled(filled) })
	})
	fillCheck.SetChecked(initial.Filled)

	// Pen size
	widths := make(map[string]float64, len(state.StrokeWidths))
	widthLabels := make([]string, 0, len(state.StrokeWidths))
	for _, w := range state.StrokeWidths {
		label := penSizeLabel(w)
		widths[label] = w
		widthLabels = append(widthLabels, label)
	}
	penSize := widget.NewRadioGroup(widthLabels, func(label string) {
		if w, ok := widths[label]; ok {
			board.send(func(sf *surface.Surface) { sf.SelectStrokeWidth(w) })
		}
	})
	penSize.SetSelected(penSizeLabel(initial.StrokeWidth))

	// Background
	bgNames := make([]string, 0, len(state.Backgrounds()))
	for _, bg := range state.Backgrounds() {
		bgNames = append(bgNames, bg.String())
	}
	background := widget.NewRadioGroup(bgNames, func(name string) {
		bg, err := state.ParseBackground(name)
		if err != nil {
			return
		}
		board.send(func(sf *surface.Surface) { sf.SelectBackground(bg) })
	})
	background.SetSelected(initial.Background.String())

	// Commands
	undoButton := widget.NewButton("Undo", func() {
		board.send(func(sf *surface.Surface) { sf.Undo() })
	})
	clearButton := widget.NewButton("Clear", func() {
		board.send(func(sf *surface.Surface) { sf.Clear() })
	})
	exitButton := widget.NewButton("Exit", func() {
		board.send(func(sf *surface.Surface) { sf.Exit() })
	})

	// Info area
	info := widget.NewLabel("")
	info.Wrapping = fyne.TextWrapWord
	board.OnStatus = info.SetText
	infoScroll := container.NewVScroll(info)
	infoScroll.SetMinSize(fyne.NewSize(200, 100))

	// --- Assemble everything ---
	controls := container.NewVBox(
		widget.NewLabel("Shape:"), shapeSelect,
		widget.NewLabel("Fill Color:"), fillButton,
		widget.NewLabel("Stroke Color:"), strokeButton,
		fillCheck, undoButton, clearButton,
		widget.NewLabel("Pen Size:"), penSize,
		widget.NewLabel("Background Color:"), background, exitButton,
	)
	return container.NewBorder(controls, nil, nil, nil, infoScroll)
}
