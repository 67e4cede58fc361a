package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar represents the main application toolbar
type Toolbar struct {
	container      *fyne.Container
	loadButton     *widget.Button
	revealButton   *widget.Button
	nextButton     *widget.Button
	loopCheck      *widget.Check
	deselectButton *widget.Button

	// Event handlers
	loadHandler     func()
	revealHandler   func()
	nextHandler     func()
	loopHandler     func(bool)
	deselectHandler func()

	// Set while Render syncs the loop check so it does not echo back
	syncing bool
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.loadButton = widget.NewButtonWithIcon("Load CSV", theme.FolderOpenIcon(), nil)
	t.loadButton.Importance = widget.HighImportance

	t.revealButton = widget.NewButton("Show Answer", nil)
	t.revealButton.Disable()

	t.nextButton = widget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), nil)
	t.nextButton.Disable()

	t.loopCheck = widget.NewCheck("Loop", nil)

	t.deselectButton = widget.NewButton("Deselect All", nil)
	t.deselectButton.Importance = widget.LowImportance
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewCenter(container.NewHBox(
		t.loadButton,
		widget.NewSeparator(),
		t.revealButton,
		t.nextButton,
		t.loopCheck,
		widget.NewSeparator(),
		t.deselectButton,
	))
}

// setupEventHandlers connects button events
func (t *Toolbar) setupEventHandlers() {
	t.loadButton.OnTapped = func() {
		if t.loadHandler != nil {
			t.loadHandler()
		}
	}

	t.revealButton.OnTapped = func() {
		if t.revealHandler != nil {
			t.revealHandler()
		}
	}

	t.nextButton.OnTapped = func() {
		if t.nextHandler != nil {
			t.nextHandler()
		}
	}

	t.loopCheck.OnChanged = func(enabled bool) {
		if t.syncing {
			return
		}
		if t.loopHandler != nil {
			t.loopHandler(enabled)
		}
	}

	t.deselectButton.OnTapped = func() {
		if t.deselectHandler != nil {
			t.deselectHandler()
		}
	}
}

func (t *Toolbar) SetLoadHandler(handler func()) {
	t.loadHandler = handler
}

func (t *Toolbar) SetRevealHandler(handler func()) {
	t.revealHandler = handler
}

func (t *Toolbar) SetNextHandler(handler func()) {
	t.nextHandler = handler
}

func (t *Toolbar) SetLoopHandler(handler func(bool)) {
	t.loopHandler = handler
}

func (t *Toolbar) SetDeselectHandler(handler func()) {
	t.deselectHandler = handler
}

// SetControls enables or disables the card navigation buttons
func (t *Toolbar) SetControls(canReveal, canAdvance bool) {
	setEnabled(t.revealButton, canReveal)
	setEnabled(t.nextButton, canAdvance)
}

// SetLoop reflects the session loop flag without firing the loop handler
func (t *Toolbar) SetLoop(enabled bool) {
	if t.loopCheck.Checked == enabled {
		return
	}
	t.syncing = true
	t.loopCheck.SetChecked(enabled)
	t.syncing = false
}

// IsLoopChecked returns the loop toggle state
func (t *Toolbar) IsLoopChecked() bool {
	return t.loopCheck.Checked
}

func (t *Toolbar) GetLoadButton() *widget.Button { return t.loadButton }
func (t *Toolbar) GetRevealButton() *widget.Button { return t.revealButton }
func (t *Toolbar) GetNextButton() *widget.Button { return t.nextButton }
func (t *Toolbar) GetLoopCheck() *widget.Check { return t.loopCheck }
func (t *Toolbar) GetDeselectButton() *widget.Button { return t.deselectButton }

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() fyne.CanvasObject {
	return t.container
}

type enabler interface {
	Enable()
	Disable()
}

func setEnabled(w enabler, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
