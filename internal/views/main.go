package views

import (
	"csv-flashcards/internal/controllers"
	"csv-flashcards/internal/models"
	"csv-flashcards/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
)

// DeckExtensions are the file types offered by the open dialog
var DeckExtensions = []string{".csv", ".txt"}

var _ controllers.View = (*MainView)(nil)

// MainView represents the main application view using MVC pattern
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	cardDisplay   *components.CardDisplay
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	handlers controllers.Handlers
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	view.setupKeyboard()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.cardDisplay = components.NewCardDisplay()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewPadded(mv.cardDisplay.GetContainer()),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetLoadHandler(func() {
		if mv.handlers.Open != nil {
			mv.handlers.Open()
		}
	})

	mv.toolbar.SetRevealHandler(func() {
		if mv.handlers.Reveal != nil {
			mv.handlers.Reveal()
		}
	})

	mv.toolbar.SetNextHandler(func() {
		if mv.handlers.Advance != nil {
			mv.handlers.Advance()
		}
	})

	mv.toolbar.SetLoopHandler(func(enabled bool) {
		if mv.handlers.Loop != nil {
			mv.handlers.Loop(enabled)
		}
	})

	mv.toolbar.SetDeselectHandler(mv.Deselect)

	mv.cardDisplay.SetRestartHandler(func() {
		if mv.handlers.Restart != nil {
			mv.handlers.Restart()
		}
	})
}

// setupKeyboard binds the space bar and the window shortcuts. Space only
// reaches the canvas when no widget holds focus.
func (mv *MainView) setupKeyboard() {
	canvas := mv.window.Canvas()

	canvas.SetOnTypedRune(func(r rune) {
		if r == ' ' && mv.handlers.Toggle != nil {
			mv.handlers.Toggle()
		}
	})

	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		if mv.handlers.Open != nil {
			mv.handlers.Open()
		}
	})

	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		if mv.handlers.Restart != nil {
			mv.handlers.Restart()
		}
	})
}

// SetHandlers wires the controller actions into the view
func (mv *MainView) SetHandlers(h controllers.Handlers) {
	mv.handlers = h
}

// UI update methods - called by controller on the UI thread

// Render applies a session snapshot to every component
func (mv *MainView) Render(d models.Display) {
	mv.cardDisplay.SetCard(d.Question, d.Answer)
	mv.cardDisplay.SetRestartEnabled(d.CanRestart)
	mv.toolbar.SetControls(d.CanReveal, d.CanAdvance)
	mv.toolbar.SetLoop(d.Loop)
	mv.statusBar.SetProgress(d.Progress, d.Fraction())
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowInformation(title, err.Error(), mv.window)
}

// ShowOpenDialog displays a file selection dialog limited to deck files
func (mv *MainView) ShowOpenDialog(callback func(fyne.URIReadCloser, error)) {
	fd := dialog.NewFileOpen(callback, mv.window)
	fd.SetFilter(storage.NewExtensionFileFilter(DeckExtensions))
	fd.Resize(fyne.NewSize(800, 500))
	fd.Show()
}

// Deselect drops keyboard focus so the space bar drives the deck again
func (mv *MainView) Deselect() {
	mv.window.Canvas().Unfocus()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
