// Package tui is a terminal front-end for a study session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "csv-flashcards/internal/errors"
	"csv-flashcards/internal/logger"
	"csv-flashcards/internal/models"
	"csv-flashcards/internal/services"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 72

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleQuestion = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(1, 2)
	styleAnswer   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 2)
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleBarFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type deckLoadedMsg struct {
	deck *services.LoadedDeck
}

type loadFailedMsg struct {
	err error
}

// Model drives a session from the keyboard: space toggles, n advances,
// r restarts, l flips looping and q quits.
type Model struct {
	repo        *models.SessionRepository
	deckService *services.DeckService
	rng         models.Shuffler
	logger      logger.Logger
	path        string

	status   string
	failed   bool
	width    int
	quitting bool
}

// New creates a model. A non-empty path is loaded when the program starts.
func New(deckService *services.DeckService, repo *models.SessionRepository, rng models.Shuffler, log logger.Logger, path string) Model {
	return Model{
		repo:        repo,
		deckService: deckService,
		rng:         rng,
		logger:      log,
		path:        path,
		status:      "Ready",
		width:       defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	if m.path == "" {
		return nil
	}
	return m.loadDeck(m.path)
}

func (m Model) loadDeck(path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), services.DefaultLoadTimeout)
		defer cancel()

		deck, err := m.deckService.LoadFile(ctx, path)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return deckLoadedMsg{deck: deck}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = max(min(msg.Width, 100), 20)
		}
		return m, nil

	case deckLoadedMsg:
		session := m.repo.ReplaceDeck(msg.deck.Cards, msg.deck.Source, m.rng)
		m.failed = false
		if session.State() == models.StateEmpty {
			m.status = fmt.Sprintf("No cards found in %s", msg.deck.Source.Name)
		} else {
			m.status = fmt.Sprintf("Loaded %d cards from %s", session.Len(), msg.deck.Source.Name)
		}
		return m, nil

	case loadFailedMsg:
		m.logger.Error("TUI", msg.err, nil)
		m.failed = true
		m.status = fmt.Sprintf("%s: %v", apperrors.Title(msg.err), msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case " ":
		m.transition("toggle", func(s models.Session) models.Session { return s.Toggle(m.rng) })
	case "n", "right":
		m.transition("advance", func(s models.Session) models.Session { return s.Advance(m.rng) })
	case "r":
		m.transition("restart", func(s models.Session) models.Session { return s.Restart(m.rng) })
	case "l":
		m.transition("loop", func(s models.Session) models.Session { return s.SetLoop(!s.LoopEnabled()) })
	}
	return m, nil
}

func (m Model) transition(action string, fn func(models.Session) models.Session) {
	after := m.repo.Update(fn)
	m.logger.Debug("TUI", "session transition", map[string]interface{}{
		"action":   action,
		"to":       after.State().String(),
		"position": after.Position(),
	})
}

// Session returns the current session snapshot
func (m Model) Session() models.Session {
	return m.repo.Current()
}

// Status returns the status line text
func (m Model) Status() string {
	return m.status
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	session := m.repo.Current()
	d := session.Display()
	inner := m.width - 4

	var b strings.Builder
	b.WriteString(styleTitle.Render("CSV Flashcards"))
	b.WriteString("\n\n")
	b.WriteString(styleQuestion.Width(inner).Render(d.Question))
	b.WriteString("\n")
	if d.Answer != "" {
		b.WriteString(styleAnswer.Width(inner).Render(d.Answer))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(progressBar(d, inner/2))
	b.WriteString(" ")
	b.WriteString(d.Progress)
	if d.Loop {
		b.WriteString(styleSubtle.Render("  [loop]"))
	}
	b.WriteString("\n")

	if m.failed {
		b.WriteString(styleError.Render(m.status))
	} else {
		b.WriteString(styleSubtle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(styleSubtle.Render(help(d, session.AnswerVisible())))
	b.WriteString("\n")

	return b.String()
}

func progressBar(d models.Display, width int) string {
	if width < 1 {
		return ""
	}
	filled := int(d.Fraction() * float64(width))
	return styleBarFull.Render(strings.Repeat("█", filled)) + styleSubtle.Render(strings.Repeat("░", width-filled))
}

func help(d models.Display, answerVisible bool) string {
	var keys []string
	switch {
	case d.CanReveal && !answerVisible:
		keys = append(keys, "space: show answer")
	case d.CanAdvance:
		keys = append(keys, "space: next")
	}
	if d.CanAdvance {
		keys = append(keys, "n: next")
	}
	if d.CanRestart {
		keys = append(keys, "r: restart")
	}
	keys = append(keys, "l: loop", "q: quit")
	return strings.Join(keys, " • ")
}

// Run starts the terminal program and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
