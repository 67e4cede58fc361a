package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays deck progress and the last status message
type StatusBar struct {
	container     *fyne.Container
	statusLabel   *widget.Label
	progressLabel *widget.Label
	progressBar   *widget.ProgressBar
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.progressLabel = widget.NewLabel("No cards loaded")
	sb.progressBar = widget.NewProgressBar()
	sb.progressBar.TextFormatter = func() string { return "" }
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewBorder(
		nil,
		nil,
		sb.progressLabel,
		sb.statusLabel,
		sb.progressBar,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetProgress updates the progress text and bar (0.0 to 1.0)
func (sb *StatusBar) SetProgress(text string, progress float64) {
	if progress < 0.0 {
		progress = 0.0
	} else if progress > 1.0 {
		progress = 1.0
	}
	sb.progressLabel.SetText(text)
	sb.progressBar.SetValue(progress)
}

// GetProgress returns the progress text and value
func (sb *StatusBar) GetProgress() (string, float64) {
	return sb.progressLabel.Text, sb.progressBar.Value
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() fyne.CanvasObject {
	return sb.container
}
