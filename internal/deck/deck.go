package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInsufficientCards is returned by Draw when the deck holds fewer cards
// than requested.
var ErrInsufficientCards = errors.New("insufficient cards in deck")

// Deck represents an ordered deck of playing cards, at most one of each.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full 52-card deck in canonical order: ranks ascending by
// order (ace first), suits ascending within each rank. The deck is not
// shuffled. A nil rng falls back to the shared global source; pass a seeded
// rng for reproducible shuffles.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// Reset restores the deck to the full 52 cards in canonical order.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for rank := Ace; rank <= King; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.intN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Draw removes and returns the top n cards. If fewer than n remain the deck
// is left untouched and the error wraps ErrInsufficientCards.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(d.cards))
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// Size returns the number of cards remaining in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}
