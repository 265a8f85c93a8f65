package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors, matched with errors.Is.
var (
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)

// ParseRank parses a rank from its short form ("A", "7", "10", "T") or long
// name ("ace", "king"). Matching is case-insensitive.
func ParseRank(s string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "ace":
		return Ace, nil
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "t":
		return Ten, nil
	case "j", "jack":
		return Jack, nil
	case "q", "queen":
		return Queen, nil
	case "k", "king":
		return King, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
}

// ParseSuit parses a suit from its name ("hearts"), single letter ("h") or
// glyph ("♥"). Matching is case-insensitive.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "clubs", "♣":
		return Clubs, nil
	case "d", "diamonds", "♦":
		return Diamonds, nil
	case "h", "hearts", "♥":
		return Hearts, nil
	case "s", "spades", "♠":
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
	}
}

// NewCard builds a card from textual rank and suit tokens.
func NewCard(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: r, Suit: s}, nil
}

// ParseCard parses compact card notation: the final rune is the suit and
// everything before it is the rank ("As", "10h", "K♦", "queen♠").
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	return NewCard(string(runes[:len(runes)-1]), string(runes[len(runes)-1:]))
}

// ParseCards parses a list of cards separated by whitespace or commas.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", f, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on failure. Intended for tests and
// fixed literals.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}
