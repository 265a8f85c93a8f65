// Package deck models playing cards and a standard 52-card deck.
package deck

import "strings"

// Suit represents a card suit. Suits order alphabetically
// (clubs < diamonds < hearts < spades) and only break ties between
// cards of equal rank.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the suit glyph (e.g. "♠")
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the suit name (e.g. "spades")
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Ranks order ace low: the ace sits before
// the two, and the king is highest. The zero value is not a valid rank.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Order returns the rank's position in the deck ordering, 1 (ace) through
// 13 (king). Straight adjacency is defined on orders.
func (r Rank) Order() int {
	return int(r)
}

// Value returns the rank's worth when comparing single cards: face value
// for two through ten, 10 for the court cards, 11 for the ace.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Jack:
		return 10
	default:
		return int(r)
	}
}

// String returns the short form of a rank ("A", "7", "10", "K")
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return r.Name()
	}
}

// Name returns the long form of a rank ("ace", "7", "10", "king")
func (r Rank) Name() string {
	switch r {
	case Ace:
		return "ace"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// Card represents a playing card. Cards are value types: two cards compare
// equal exactly when rank and suit both match.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the compact form of a card (e.g. "A♠" or "10♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form of a card (e.g. "Ace of Spades")
func (c Card) Name() string {
	return title(c.Rank.Name()) + " of " + title(c.Suit.Name())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Less reports whether c sorts before other in the deck ordering:
// rank order first (ace lowest), suit second.
func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit < other.Suit
}

// title uppercases the first letter of an ASCII name
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
