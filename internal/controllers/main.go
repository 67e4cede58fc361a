package controllers

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "csv-flashcards/internal/errors"
	"csv-flashcards/internal/logger"
	"csv-flashcards/internal/models"
	"csv-flashcards/internal/services"

	"fyne.io/fyne/v2"
)

// LoadTimeout bounds a single deck read
const LoadTimeout = services.DefaultLoadTimeout

// Handlers are the user actions a view forwards to the controller
type Handlers struct {
	Open    func()
	Reveal  func()
	Advance func()
	Restart func()
	Loop    func(bool)
	Toggle  func()
}

// View is the presentation side of the application
type View interface {
	SetHandlers(h Handlers)
	Render(d models.Display)
	UpdateStatus(status string)
	ShowError(title string, err error)
	ShowOpenDialog(callback func(fyne.URIReadCloser, error))
}

// Option configures a MainController
type Option func(*MainController)

// WithMainThread sets how work is handed back to the UI thread once a
// background load finishes. Defaults to fyne.Do.
func WithMainThread(run func(func())) Option {
	return func(mc *MainController) {
		mc.runOnMain = run
	}
}

// WithLoadTimeout bounds each deck read. Defaults to LoadTimeout.
func WithLoadTimeout(d time.Duration) Option {
	return func(mc *MainController) {
		mc.loadTimeout = d
	}
}

// MainController mediates between the session, the deck service and the view
type MainController struct {
	deckService *services.DeckService
	repo        *models.SessionRepository
	rng         models.Shuffler
	logger      logger.Logger
	view        View
	runOnMain   func(func())
	loadTimeout time.Duration

	// Load management
	mu         sync.Mutex
	loadCancel context.CancelFunc
	loadSeq    uint64
	loads      sync.WaitGroup
	shutdown   bool
}

// NewMainController creates a new main controller
func NewMainController(
	deckService *services.DeckService,
	repo *models.SessionRepository,
	rng models.Shuffler,
	log logger.Logger,
	opts ...Option,
) *MainController {
	mc := &MainController{
		deckService: deckService,
		repo:        repo,
		rng:         rng,
		logger:      log,
		runOnMain:   fyne.Do,
		loadTimeout: LoadTimeout,
	}
	for _, opt := range opts {
		opt(mc)
	}
	return mc
}

// SetView associates the view with this controller and renders the current session
func (mc *MainController) SetView(view View) {
	mc.view = view
	view.SetHandlers(Handlers{
		Open:    mc.OpenDeck,
		Reveal:  mc.Reveal,
		Advance: mc.Advance,
		Restart: mc.Restart,
		Loop:    mc.SetLoop,
		Toggle:  mc.Toggle,
	})
	view.Render(mc.Display())
}

// Display returns the derived view of the current session
func (mc *MainController) Display() models.Display {
	return mc.repo.Current().Display()
}

// Session returns the current session snapshot
func (mc *MainController) Session() models.Session {
	return mc.repo.Current()
}

// OpenDeck asks the view for a file and loads it
func (mc *MainController) OpenDeck() {
	if mc.view == nil {
		return
	}
	mc.view.ShowOpenDialog(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mc.handleError(apperrors.NewFileOpenError("selected file", err))
			return
		}
		if reader == nil {
			// dialog dismissed
			return
		}
		mc.LoadURI(reader)
	})
}

// LoadURI loads a deck from a dialog reader in the background
func (mc *MainController) LoadURI(reader fyne.URIReadCloser) {
	name := "deck"
	if uri := reader.URI(); uri != nil {
		name = uri.Name()
	}
	started := mc.startLoad(name, func(ctx context.Context) (*services.LoadedDeck, error) {
		return mc.deckService.LoadURI(ctx, reader)
	})
	if !started {
		reader.Close()
	}
}

// LoadFile loads a deck from a path in the background
func (mc *MainController) LoadFile(path string) {
	mc.startLoad(path, func(ctx context.Context) (*services.LoadedDeck, error) {
		return mc.deckService.LoadFile(ctx, path)
	})
}

// startLoad cancels any in-flight load and reads the new deck off the UI
// thread. Only the most recent load is applied. It reports false once the
// controller has shut down.
func (mc *MainController) startLoad(name string, read func(context.Context) (*services.LoadedDeck, error)) bool {
	mc.mu.Lock()
	if mc.shutdown {
		mc.mu.Unlock()
		return false
	}
	if mc.loadCancel != nil {
		mc.loadCancel()
	}
	ctx, cancel := context.WithTimeout(context.Background(), mc.loadTimeout)
	mc.loadCancel = cancel
	mc.loadSeq++
	seq := mc.loadSeq
	mc.loads.Add(1)
	mc.mu.Unlock()

	mc.updateStatus(fmt.Sprintf("Loading %s...", name))

	go func() {
		defer mc.loads.Done()
		defer cancel()

		deck, err := read(ctx)

		mc.runOnMain(func() {
			if !mc.isCurrentLoad(seq) {
				mc.logger.Debug("MainController", "discarding superseded load", map[string]interface{}{
					"file": name,
				})
				return
			}
			if err != nil {
				mc.handleError(err)
				return
			}
			mc.applyDeck(deck)
		})
	}()

	return true
}

func (mc *MainController) isCurrentLoad(seq uint64) bool {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return seq == mc.loadSeq && !mc.shutdown
}

// applyDeck swaps the loaded deck into the session and re-renders
func (mc *MainController) applyDeck(deck *services.LoadedDeck) {
	session := mc.repo.ReplaceDeck(deck.Cards, deck.Source, mc.rng)

	if session.State() == models.StateEmpty {
		mc.updateStatus(fmt.Sprintf("No cards found in %s", deck.Source.Name))
	} else {
		mc.updateStatus(fmt.Sprintf("Loaded %d cards from %s", session.Len(), deck.Source.Name))
	}
	mc.render(session)
}

// Reveal shows the answer of the current card
func (mc *MainController) Reveal() {
	mc.transition("reveal", models.Session.Reveal)
}

// Advance moves to the next card
func (mc *MainController) Advance() {
	mc.transition("advance", func(s models.Session) models.Session { return s.Advance(mc.rng) })
}

// Restart re-shuffles the deck and starts over
func (mc *MainController) Restart() {
	mc.transition("restart", func(s models.Session) models.Session { return s.Restart(mc.rng) })
}

// SetLoop turns wrap-around at the end of the deck on or off
func (mc *MainController) SetLoop(enabled bool) {
	mc.transition("loop", func(s models.Session) models.Session { return s.SetLoop(enabled) })
}

// Toggle is the single-key action: reveal, then advance
func (mc *MainController) Toggle() {
	mc.transition("toggle", func(s models.Session) models.Session { return s.Toggle(mc.rng) })
}

func (mc *MainController) transition(action string, fn func(models.Session) models.Session) {
	var before models.Session
	after := mc.repo.Update(func(s models.Session) models.Session {
		before = s
		return fn(s)
	})

	mc.logger.Debug("MainController", "session transition", map[string]interface{}{
		"action":   action,
		"from":     before.State().String(),
		"to":       after.State().String(),
		"position": after.Position(),
	})

	if before.State() == models.StateActive && after.State() == models.StateExhausted {
		fields := map[string]interface{}{"cards": after.Len()}
		if src := mc.repo.Source(); src != nil {
			fields["deck_id"] = src.ID
			fields["file"] = src.Name
		}
		mc.logger.Info("MainController", "deck completed", fields)
	}

	mc.render(after)
}

func (mc *MainController) render(s models.Session) {
	if mc.view != nil {
		mc.view.Render(s.Display())
	}
}

func (mc *MainController) updateStatus(status string) {
	if mc.view != nil {
		mc.view.UpdateStatus(status)
	}
}

// handleError reports a non-fatal error; the session is left as it was
func (mc *MainController) handleError(err error) {
	if apperrors.HasCode(err, apperrors.ErrCodeCancelled) {
		mc.logger.Debug("MainController", "load cancelled", map[string]interface{}{"error": err.Error()})
		mc.updateStatus("Ready")
		return
	}

	mc.logger.Error("MainController", err, nil)
	mc.updateStatus("Ready")
	if mc.view != nil {
		mc.view.ShowError(apperrors.Title(err), err)
	}
}

// Wait blocks until background loads have finished
func (mc *MainController) Wait() {
	mc.loads.Wait()
}

// Shutdown cancels any in-flight load and waits for it to return
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	if mc.shutdown {
		mc.mu.Unlock()
		return
	}
	mc.shutdown = true
	if mc.loadCancel != nil {
		mc.loadCancel()
	}
	mc.mu.Unlock()

	mc.loads.Wait()
	mc.logger.Info("MainController", "controller shut down", map[string]interface{}{
		"decks_loaded": mc.repo.LoadCount(),
	})
}
