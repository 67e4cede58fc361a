package services

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	apperrors "csv-flashcards/internal/errors"
	"csv-flashcards/internal/logger"
	"csv-flashcards/internal/models"
	"csv-flashcards/internal/parser"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

const (
	// MaxDeckBytes bounds how much of a file is read into memory
	MaxDeckBytes = 16 << 20
	// DefaultLoadTimeout bounds a single deck read
	DefaultLoadTimeout = 30 * time.Second
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadedDeck is the parsed content of one deck file
type LoadedDeck struct {
	Source   models.DeckSource
	Cards    []models.Card
	Report   parser.Report
	Duration time.Duration
}

// DeckService reads deck files and turns them into cards
type DeckService struct {
	logger logger.Logger
	newID  func() string
	now    func() time.Time
}

// NewDeckService creates a new deck service
func NewDeckService(log logger.Logger) *DeckService {
	return &DeckService{
		logger: log,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// LoadURI reads a deck from a file picked in a dialog. The reader is closed.
func (ds *DeckService) LoadURI(ctx context.Context, reader fyne.URIReadCloser) (*LoadedDeck, error) {
	defer reader.Close()

	name := "deck"
	if uri := reader.URI(); uri != nil {
		name = uri.Name()
	}
	return ds.ReadDeck(ctx, reader, name)
}

// LoadFile reads a deck from a path on disk
func (ds *DeckService) LoadFile(ctx context.Context, path string) (*LoadedDeck, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		ds.logger.Error("DeckService", err, map[string]interface{}{"path": path})
		return nil, apperrors.NewFileOpenError(name, err)
	}
	defer f.Close()

	return ds.ReadDeck(ctx, f, name)
}

// ReadDeck reads and parses deck text from r. name is used for messages only.
func (ds *DeckService) ReadDeck(ctx context.Context, r io.Reader, name string) (*LoadedDeck, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(name, err)
	}

	startTime := ds.now()
	id := ds.newID()
	log := ds.logger.With(map[string]interface{}{"deck_id": id, "file": name})

	data, err := io.ReadAll(io.LimitReader(bufio.NewReader(&contextReader{ctx: ctx, r: r}), MaxDeckBytes+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, contextError(name, ctxErr)
		}
		log.Error("DeckService", err, nil)
		return nil, apperrors.NewFileReadError(name, err)
	}
	if len(data) > MaxDeckBytes {
		err := fmt.Errorf("file exceeds %d bytes", MaxDeckBytes)
		log.Error("DeckService", err, nil)
		return nil, apperrors.NewFileReadError(name, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cards, report := parser.ParseWithReport(string(data))

	deck := &LoadedDeck{
		Source: models.DeckSource{
			ID:       id,
			Name:     name,
			Cards:    len(cards),
			LoadedAt: ds.now(),
		},
		Cards:    cards,
		Report:   report,
		Duration: ds.now().Sub(startTime),
	}

	log.Debug("DeckService", "deck tokenized", map[string]interface{}{
		"bytes":              len(data),
		"lines":              report.Lines,
		"continuation_lines": report.ContinuationLines,
		"segments":           report.Segments,
		"dropped_segments":   report.DroppedSegments,
		"blank_cards":        report.BlankCards,
	})
	if len(cards) == 0 {
		log.Warning("DeckService", "no cards found", nil)
	} else {
		log.Info("DeckService", "deck loaded", map[string]interface{}{
			"cards":    len(cards),
			"duration": deck.Duration.String(),
		})
	}

	return deck, nil
}

// contextError maps a finished context to an AppError. Only an explicit
// cancel is CANCELLED; an expired deadline is a FILE_READ failure.
func contextError(name string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewFileReadError(name, fmt.Errorf("read timed out: %w", err))
	}
	return apperrors.NewCancelledError(name, err)
}

// contextReader stops a read as soon as its context is cancelled
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
