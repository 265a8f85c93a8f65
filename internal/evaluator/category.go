// Package evaluator classifies five-card poker hands. Unlike a scoring
// evaluator it reports every category a hand realizes, with the exact card
// combinations that realize each one.
package evaluator

import (
	"fmt"
	"strings"
)

// Category identifies a poker hand category, ordered weakest (HighCard)
// to strongest (RoyalFlush). A royal flush is its own category and is not
// reported as a straight flush.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// String returns the category display name
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Categories returns every category in ascending strength order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory parses a category display name. Matching is
// case-insensitive and treats hyphens and underscores as spaces, so
// "full-house", "FULL_HOUSE" and "Full House" all parse.
func ParseCategory(s string) (Category, error) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(s))
	norm = strings.Join(strings.Fields(norm), " ")
	for i, name := range categoryNames {
		if norm == strings.ToLower(name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", s)
}
