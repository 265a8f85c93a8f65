package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/pokerhands/internal/deck"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

// ErrMalformedHand is returned when a hand does not contain exactly five
// distinct cards.
var ErrMalformedHand = errors.New("malformed hand")

// Hand is exactly five distinct cards in deal order. Build one with NewHand
// so the distinctness invariant holds.
type Hand [HandSize]deck.Card

// NewHand validates and builds a hand from five distinct cards.
func NewHand(cards []deck.Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: want %d cards, got %d", ErrMalformedHand, HandSize, len(cards))
	}
	seen := make(map[deck.Card]bool, HandSize)
	for i, c := range cards {
		if seen[c] {
			return h, fmt.Errorf("%w: duplicate card %s", ErrMalformedHand, c)
		}
		seen[c] = true
		h[i] = c
	}
	return h, nil
}

// MustHand parses card notation into a Hand and panics on failure.
// Intended for tests and fixed literals.
func MustHand(s string) Hand {
	h, err := NewHand(deck.MustParseCards(s))
	if err != nil {
		panic(err.Error())
	}
	return h
}

// Cards returns the hand's cards as a fresh slice.
func (h Hand) Cards() []deck.Card {
	return h[:]
}

// String returns the hand in compact notation (e.g. "2♣ 3♦ 4♥ 5♠ 6♣")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
