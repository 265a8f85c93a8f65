package evaluator

import (
	"sort"
	"strings"

	"github.com/lox/pokerhands/internal/deck"
)

// Combo is an ordered card combination realizing a category.
type Combo []deck.Card

// String returns the combo in compact notation (e.g. "9♥ 9♦ 9♠")
func (c Combo) String() string {
	parts := make([]string, len(c))
	for i, card := range c {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}

// Report holds every category a hand realizes together with the card
// combinations realizing each. Reports are built by Evaluate.
type Report struct {
	combos map[Category][]Combo
}

func (r *Report) add(c Category, combo Combo) {
	if r.combos == nil {
		r.combos = make(map[Category][]Combo)
	}
	r.combos[c] = append(r.combos[c], combo)
}

// Has reports whether the hand realizes the category.
func (r Report) Has(c Category) bool {
	return len(r.combos[c]) > 0
}

// Realizations returns the combinations realizing the category, in the
// deterministic order Evaluate produced them.
func (r Report) Realizations(c Category) []Combo {
	return r.combos[c]
}

// Categories returns the realized categories in ascending strength order.
func (r Report) Categories() []Category {
	out := make([]Category, 0, len(r.combos))
	for c := range r.combos {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strongest returns the strongest realization of the category. When several
// combinations realize it, the one with the highest card sequence wins:
// cards are compared pairwise from strongest down by (value, order, suit).
func (r Report) Strongest(c Category) (Combo, bool) {
	combos := r.combos[c]
	if len(combos) == 0 {
		return nil, false
	}
	best := combos[0]
	for _, combo := range combos[1:] {
		if strongerCombo(combo, best) {
			best = combo
		}
	}
	return best, true
}

// Best returns the strongest category the hand realizes together with its
// strongest realization. Every evaluated hand has at least a high card, so
// Best always succeeds on a report built by Evaluate.
func (r Report) Best() (Category, Combo) {
	for i := int(RoyalFlush); i >= 0; i-- {
		if combo, ok := r.Strongest(Category(i)); ok {
			return Category(i), combo
		}
	}
	return HighCard, nil
}

// compareCards orders cards by single-card strength: value first, deck
// order second, suit last.
func compareCards(a, b deck.Card) int {
	if av, bv := a.Rank.Value(), b.Rank.Value(); av != bv {
		return av - bv
	}
	if ao, bo := a.Rank.Order(), b.Rank.Order(); ao != bo {
		return ao - bo
	}
	return int(a.Suit) - int(b.Suit)
}

func strongerCombo(a, b Combo) bool {
	as := sortedByStrength(a)
	bs := sortedByStrength(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if cmp := compareCards(as[i], bs[i]); cmp != 0 {
			return cmp > 0
		}
	}
	return len(as) > len(bs)
}

// sortedByStrength returns a copy sorted strongest card first.
func sortedByStrength(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool { return compareCards(out[i], out[j]) > 0 })
	return out
}
