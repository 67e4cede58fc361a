package models

import "fmt"

const (
	PlaceholderText = "Question will appear here"
	CompletedText   = "You've completed all flashcards!"
)

// State is the coarse position of a session in its lifecycle
type State int

const (
	StateEmpty State = iota
	StateActive
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of a study session. Every transition
// returns a new value; the receiver and its deck are never modified.
type Session struct {
	deck          []Card
	position      int
	answerVisible bool
	loop          bool
}

// NewSession returns the startup session: no deck, position zero
func NewSession() Session {
	return Session{}
}

// State derives the lifecycle state from deck length and position
func (s Session) State() State {
	switch {
	case len(s.deck) == 0:
		return StateEmpty
	case s.position < len(s.deck):
		return StateActive
	default:
		return StateExhausted
	}
}

func (s Session) Position() int       { return s.position }
func (s Session) Len() int            { return len(s.deck) }
func (s Session) AnswerVisible() bool { return s.answerVisible }
func (s Session) LoopEnabled() bool   { return s.loop }

// Deck returns a copy of the current card order
func (s Session) Deck() []Card {
	deck := make([]Card, len(s.deck))
	copy(deck, s.deck)
	return deck
}

// Current returns the card under the cursor, if the session is active
func (s Session) Current() (Card, bool) {
	if s.State() != StateActive {
		return Card{}, false
	}
	return s.deck[s.position], true
}

// Load replaces the deck with a shuffled copy of cards and rewinds to the first card.
// An empty cards slice yields an empty session. The loop flag is kept.
func (s Session) Load(cards []Card, rng Shuffler) Session {
	next := Session{loop: s.loop}
	if len(cards) == 0 {
		return next
	}
	next.deck = shuffledCopy(cards, rng)
	return next
}

// Reveal makes the current answer visible. Only meaningful while active.
func (s Session) Reveal() Session {
	if s.State() != StateActive {
		return s
	}
	s.answerVisible = true
	return s
}

// Advance moves to the next card. Reaching the end either wraps to a
// freshly shuffled deck (loop on) or exhausts the session.
func (s Session) Advance(rng Shuffler) Session {
	if s.State() != StateActive {
		return s
	}

	s.position++
	s.answerVisible = false
	if s.position < len(s.deck) {
		return s
	}
	if s.loop {
		return s.Restart(rng)
	}
	return s
}

// Restart re-shuffles the loaded deck and rewinds to the first card
func (s Session) Restart(rng Shuffler) Session {
	if s.State() == StateEmpty {
		return s
	}
	return Session{
		deck: shuffledCopy(s.deck, rng),
		loop: s.loop,
	}
}

// SetLoop toggles wrap-around at the end of the deck
func (s Session) SetLoop(enabled bool) Session {
	s.loop = enabled
	return s
}

// Toggle reveals a hidden answer, or advances once the answer is showing
func (s Session) Toggle(rng Shuffler) Session {
	if s.State() != StateActive {
		return s
	}
	if s.answerVisible {
		return s.Advance(rng)
	}
	return s.Reveal()
}

// Display is everything a front-end needs to render a session
type Display struct {
	State      State
	Question   string
	Answer     string
	CanReveal  bool
	CanAdvance bool
	CanRestart bool
	Position   int
	Total      int
	Progress   string
	Loop       bool
}

// Fraction reports progress through the deck in [0, 1]
func (d Display) Fraction() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Position) / float64(d.Total)
}

// Display derives the view of the session. It has no side effects.
func (s Session) Display() Display {
	d := Display{
		State:    s.State(),
		Position: s.position,
		Total:    len(s.deck),
		Loop:     s.loop,
	}

	switch d.State {
	case StateEmpty:
		d.Question = PlaceholderText
		d.Progress = "No cards loaded"
	case StateActive:
		card := s.deck[s.position]
		d.Question = card.Question
		if s.answerVisible {
			d.Answer = card.Answer
		}
		d.CanReveal = true
		d.CanAdvance = true
		d.CanRestart = true
		d.Progress = fmt.Sprintf("Card %d of %d", s.position+1, len(s.deck))
	case StateExhausted:
		d.Question = CompletedText
		d.CanRestart = true
		d.Progress = fmt.Sprintf("%d of %d", len(s.deck), len(s.deck))
	}

	return d
}
