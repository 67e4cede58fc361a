package models_test

import (
	"sync"
	"testing"
	"time"

	"csv-flashcards/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_StartsEmpty(t *testing.T) {
	repo := models.NewSessionRepository()

	assert.Equal(t, models.StateEmpty, repo.Current().State())
	assert.Nil(t, repo.Source())
	assert.Zero(t, repo.LoadCount())
}

func TestSessionRepository_ReplaceDeck(t *testing.T) {
	repo := models.NewSessionRepository()
	repo.Update(func(s models.Session) models.Session { return s.SetLoop(true) })

	loadedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := repo.ReplaceDeck(sampleCards(3), models.DeckSource{ID: "abc", Name: "deck.csv", LoadedAt: loadedAt}, seeded())

	assert.Equal(t, models.StateActive, s.State())
	assert.True(t, s.LoopEnabled())
	assert.Equal(t, s, repo.Current())

	src := repo.Source()
	require.NotNil(t, src)
	assert.Equal(t, "deck.csv", src.Name)
	assert.Equal(t, 3, src.Cards)
	assert.Equal(t, loadedAt, src.LoadedAt)
	assert.Equal(t, 1, repo.LoadCount())
}

func TestSessionRepository_SourceIsCopy(t *testing.T) {
	repo := models.NewSessionRepository()
	repo.ReplaceDeck(sampleCards(1), models.DeckSource{Name: "a.csv"}, seeded())

	repo.Source().Name = "mutated"

	assert.Equal(t, "a.csv", repo.Source().Name)
}

func TestSessionRepository_ConcurrentUpdates(t *testing.T) {
	repo := models.NewSessionRepository()
	repo.ReplaceDeck(sampleCards(50), models.DeckSource{}, seeded())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 3; j++ {
				repo.Update(func(s models.Session) models.Session { return s.Advance(nil) })
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 30, repo.Current().Position())
}
