package ui

import (
	"ShapeBoard/internal/config"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/surface"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the drawing window for board and blocks until it closes.
func RunApp(cfg *config.Config, board *surface.Dispatcher) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Shape Drawing Application")
	myWindow.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	// Create the interactive board widget
	boardWidget := NewBoardWidget(board)
	var initial state.ToolConfig
	boardWidget.send(func(sf *surface.Surface) {
		sf.OnExit = func() { fyne.Do(myApp.Quit) }
		initial = sf.Session().Config()
	})

	// Create the tool panel and pass it a reference to the board
	panel := NewToolPanel(boardWidget, myWindow, initial)

	// Set up the main layout
	content := container.NewBorder(nil, nil, panel, nil, boardWidget)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
