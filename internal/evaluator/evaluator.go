package evaluator

import (
	"sort"

	"github.com/lox/pokerhands/internal/deck"
)

// Evaluate classifies a hand, producing the full report of every category
// it realizes. Detection runs per category so overlapping structure shows
// up everywhere it applies: a full house also reports its pairs and its
// three of a kind, a straight flush also reports the straight and the
// flush, and every hand reports a high card.
func Evaluate(h Hand) Report {
	var r Report

	r.add(HighCard, Combo{highCard(h)})

	pairs := nOfAKind(h, 2)
	for _, p := range pairs {
		r.add(Pair, p)
	}
	for _, t := range nOfAKind(h, 3) {
		r.add(ThreeOfAKind, t)
	}
	for _, q := range nOfAKind(h, 4) {
		r.add(FourOfAKind, q)
	}
	for _, tp := range twoPairs(pairs) {
		r.add(TwoPair, tp)
	}
	if fh, ok := fullHouse(h); ok {
		r.add(FullHouse, fh)
	}

	straightCombo, isStraight, aceHigh := straight(h)
	if isStraight {
		r.add(Straight, straightCombo)
	}
	flushCombo, isFlush := flush(h)
	if isFlush {
		r.add(Flush, flushCombo)
	}

	// A royal flush is reported instead of, not in addition to, a plain
	// straight flush.
	if isStraight && isFlush {
		if aceHigh {
			r.add(RoyalFlush, straightCombo)
		} else {
			r.add(StraightFlush, straightCombo)
		}
	}

	return r
}

// highCard returns the card maximizing (value, order), breaking remaining
// ties by suit so the report is deterministic.
func highCard(h Hand) deck.Card {
	best := h[0]
	for _, c := range h[1:] {
		if compareCards(c, best) > 0 {
			best = c
		}
	}
	return best
}

// nOfAKind returns every n-card combination drawn from a single rank
// holding at least n copies. Combinations come out suit-ascending within a
// rank and rank-ascending across ranks.
func nOfAKind(h Hand, n int) []Combo {
	var combos []Combo
	for _, group := range rankGroups(h) {
		if len(group) < n {
			continue
		}
		combos = append(combos, combinations(group, n)...)
	}
	return combos
}

// twoPairs returns every unordered pairing of card-disjoint pair
// combinations, lower-ranked pair first. Four of a kind contributes its
// three disjoint pair splits.
func twoPairs(pairs []Combo) []Combo {
	var combos []Combo
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if overlaps(pairs[i], pairs[j]) {
				continue
			}
			combo := make(Combo, 0, 4)
			combo = append(combo, pairs[i]...)
			combo = append(combo, pairs[j]...)
			combos = append(combos, combo)
		}
	}
	return combos
}

// fullHouse detects exactly two ranks with counts three and two. The combo
// is the whole hand in canonical order.
func fullHouse(h Hand) (Combo, bool) {
	groups := rankGroups(h)
	if len(groups) != 2 {
		return nil, false
	}
	if len(groups[0]) != 2 && len(groups[0]) != 3 {
		return nil, false
	}
	return Combo(sortedCanonical(h[:])), true
}

// straight detects five consecutive orders, or the ace-high special case
// {ace, 10, jack, queen, king}. The combo is order-ascending, except
// ace-high which sorts by (value, order) so the ace lands last. The third
// result reports the ace-high case, which is what separates a royal flush
// from a straight flush.
func straight(h Hand) (Combo, bool, bool) {
	sorted := sortedCanonical(h[:])
	if isAceHigh(sorted) {
		return Combo(sortedByValue(sorted)), true, true
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank.Order() != sorted[i-1].Rank.Order()+1 {
			return nil, false, false
		}
	}
	return Combo(sorted), true, false
}

// isAceHigh reports whether order-sorted cards are exactly A 10 J Q K.
func isAceHigh(sorted []deck.Card) bool {
	want := [HandSize]int{1, 10, 11, 12, 13}
	for i, c := range sorted {
		if c.Rank.Order() != want[i] {
			return false
		}
	}
	return true
}

// flush detects a single-suit hand. The combo is the whole hand in
// canonical order.
func flush(h Hand) (Combo, bool) {
	for _, c := range h[1:] {
		if c.Suit != h[0].Suit {
			return nil, false
		}
	}
	return Combo(sortedCanonical(h[:])), true
}

// rankGroups buckets the hand by rank: each bucket suit-ascending, buckets
// rank-ascending.
func rankGroups(h Hand) [][]deck.Card {
	sorted := sortedCanonical(h[:])
	var groups [][]deck.Card
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1][0].Rank == c.Rank {
			groups[n-1] = append(groups[n-1], c)
		} else {
			groups = append(groups, []deck.Card{c})
		}
	}
	return groups
}

// combinations enumerates every k-card combination, preserving input order.
func combinations(cards []deck.Card, k int) []Combo {
	if k == 0 {
		return []Combo{{}}
	}
	if len(cards) < k {
		return nil
	}
	var out []Combo
	for _, rest := range combinations(cards[1:], k-1) {
		combo := make(Combo, 0, k)
		combo = append(combo, cards[0])
		combo = append(combo, rest...)
		out = append(out, combo)
	}
	return append(out, combinations(cards[1:], k)...)
}

func overlaps(a, b Combo) bool {
	for _, ca := range a {
		for _, cb := range b {
			if ca == cb {
				return true
			}
		}
	}
	return false
}

// sortedCanonical returns a copy in the deck ordering: rank order (ace
// low) first, suit second.
func sortedCanonical(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// sortedByValue returns a copy sorted ascending by (value, order, suit),
// which places the ace last in an ace-high straight.
func sortedByValue(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool { return compareCards(out[i], out[j]) < 0 })
	return out
}
