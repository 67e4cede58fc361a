package models

import (
	"math/rand/v2"
	"time"
)

// Card is a single question/answer pair read from a deck file
type Card struct {
	Question string
	Answer   string
}

// IsBlank reports whether both sides of the card are empty
func (c Card) IsBlank() bool {
	return c.Question == "" && c.Answer == ""
}

// Shuffler permutes n elements through swap. *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// shuffledCopy returns a shuffled copy of cards, leaving the input untouched
func shuffledCopy(cards []Card, rng Shuffler) []Card {
	deck := make([]Card, len(cards))
	copy(deck, cards)
	if rng != nil {
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
	}
	return deck
}

// NewShuffler returns a PCG-backed source. A zero seed draws one from the clock.
func NewShuffler(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
