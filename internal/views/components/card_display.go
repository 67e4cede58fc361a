package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	questionMinHeight = 100
	answerMinHeight   = 250
)

// CardDisplay shows the question and answer of the current card
type CardDisplay struct {
	container      *fyne.Container
	questionLabel  *widget.Label
	answerLabel    *widget.Label
	restartButton  *widget.Button
	restartHandler func()
}

// NewCardDisplay creates a new card display component
func NewCardDisplay() *CardDisplay {
	cd := &CardDisplay{}
	cd.createComponents()
	cd.buildLayout()
	return cd
}

func (cd *CardDisplay) createComponents() {
	cd.questionLabel = widget.NewLabel("")
	cd.questionLabel.Wrapping = fyne.TextWrapWord
	cd.questionLabel.TextStyle = fyne.TextStyle{Bold: true}

	cd.answerLabel = widget.NewLabel("")
	cd.answerLabel.Wrapping = fyne.TextWrapWord

	cd.restartButton = widget.NewButton("Restart", func() {
		if cd.restartHandler != nil {
			cd.restartHandler()
		}
	})
	cd.restartButton.Disable()
}

func (cd *CardDisplay) buildLayout() {
	questionScroll := container.NewVScroll(cd.questionLabel)
	questionScroll.SetMinSize(fyne.NewSize(0, questionMinHeight))

	answerScroll := container.NewVScroll(cd.answerLabel)
	answerScroll.SetMinSize(fyne.NewSize(0, answerMinHeight))

	cd.container = container.NewVBox(
		widget.NewCard("", "Question", questionScroll),
		widget.NewCard("", "Answer", answerScroll),
		container.New(layout.NewCenterLayout(), cd.restartButton),
	)
}

func (cd *CardDisplay) SetRestartHandler(handler func()) {
	cd.restartHandler = handler
}

// SetCard updates both sides of the card; an empty answer clears the area
func (cd *CardDisplay) SetCard(question, answer string) {
	cd.questionLabel.SetText(question)
	cd.answerLabel.SetText(answer)
}

// SetRestartEnabled enables or disables the restart button
func (cd *CardDisplay) SetRestartEnabled(enabled bool) {
	setEnabled(cd.restartButton, enabled)
}

// GetQuestion returns the displayed question text
func (cd *CardDisplay) GetQuestion() string {
	return cd.questionLabel.Text
}

// GetAnswer returns the displayed answer text
func (cd *CardDisplay) GetAnswer() string {
	return cd.answerLabel.Text
}

// GetRestartButton returns the restart button
func (cd *CardDisplay) GetRestartButton() *widget.Button {
	return cd.restartButton
}

// GetContainer returns the card display container
func (cd *CardDisplay) GetContainer() fyne.CanvasObject {
	return cd.container
}
