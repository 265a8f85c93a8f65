package evaluator

import (
	"testing"

	"github.com/lox/pokerhands/internal/deck"
)

func TestEvaluateBestCategory(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected Category
	}{
		{
			name:     "royal flush",
			cards:    "10♠ J♠ Q♠ K♠ A♠",
			expected: RoyalFlush,
		},
		{
			name:     "straight flush",
			cards:    "5♥ 6♥ 7♥ 8♥ 9♥",
			expected: StraightFlush,
		},
		{
			name:     "wheel straight flush",
			cards:    "A♠ 2♠ 3♠ 4♠ 5♠",
			expected: StraightFlush,
		},
		{
			name:     "four of a kind",
			cards:    "7♣ 7♦ 7♥ 7♠ Q♦",
			expected: FourOfAKind,
		},
		{
			name:     "full house",
			cards:    "9♥ 9♦ 9♠ K♣ K♥",
			expected: FullHouse,
		},
		{
			name:     "flush",
			cards:    "2♠ 5♠ 9♠ J♠ K♠",
			expected: Flush,
		},
		{
			name:     "straight",
			cards:    "2♣ 3♦ 4♥ 5♠ 6♣",
			expected: Straight,
		},
		{
			name:     "wheel straight",
			cards:    "A♣ 2♦ 3♥ 4♠ 5♣",
			expected: Straight,
		},
		{
			name:     "ace high straight",
			cards:    "10♣ J♦ Q♥ K♠ A♣",
			expected: Straight,
		},
		{
			name:     "three of a kind",
			cards:    "4♣ 4♦ 4♥ 9♠ K♣",
			expected: ThreeOfAKind,
		},
		{
			name:     "two pair",
			cards:    "4♣ 4♦ 9♥ 9♠ K♣",
			expected: TwoPair,
		},
		{
			name:     "pair",
			cards:    "4♣ 4♦ 7♥ 9♠ K♣",
			expected: Pair,
		},
		{
			name:     "high card",
			cards:    "2♣ 5♦ 9♥ J♠ K♣",
			expected: HighCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(MustHand(tt.cards))
			best, combo := report.Best()
			if best != tt.expected {
				t.Errorf("best category = %s, want %s", best, tt.expected)
			}
			if len(combo) == 0 {
				t.Error("best combo should not be empty")
			}
		})
	}
}

func TestEvaluateRealizedCategories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected []Category
	}{
		{
			// A royal flush reports straight and flush but not straight flush.
			name:     "royal flush",
			cards:    "10♥ J♥ Q♥ K♥ A♥",
			expected: []Category{HighCard, Straight, Flush, RoyalFlush},
		},
		{
			name:     "straight flush",
			cards:    "5♦ 6♦ 7♦ 8♦ 9♦",
			expected: []Category{HighCard, Straight, Flush, StraightFlush},
		},
		{
			name:     "four of a kind",
			cards:    "7♣ 7♦ 7♥ 7♠ Q♦",
			expected: []Category{HighCard, Pair, TwoPair, ThreeOfAKind, FourOfAKind},
		},
		{
			name:     "full house",
			cards:    "9♥ 9♦ 9♠ K♣ K♥",
			expected: []Category{HighCard, Pair, TwoPair, ThreeOfAKind, FullHouse},
		},
		{
			name:     "plain flush",
			cards:    "2♠ 5♠ 9♠ J♠ K♠",
			expected: []Category{HighCard, Flush},
		},
		{
			name:     "plain straight",
			cards:    "2♣ 3♦ 4♥ 5♠ 6♣",
			expected: []Category{HighCard, Straight},
		},
		{
			name:     "two pair",
			cards:    "4♣ 4♦ 9♥ 9♠ K♣",
			expected: []Category{HighCard, Pair, TwoPair},
		},
		{
			name:     "high card only",
			cards:    "2♣ 5♦ 9♥ J♠ K♣",
			expected: []Category{HighCard},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(MustHand(tt.cards))
			got := report.Categories()
			if len(got) != len(tt.expected) {
				t.Fatalf("realized %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("realized %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestEvaluateRealizationCounts(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		count    int
	}{
		// Three nines give C(3,2) pair splits plus the pair of kings.
		{"full house pairs", "9♥ 9♦ 9♠ K♣ K♥", Pair, 4},
		{"full house trips", "9♥ 9♦ 9♠ K♣ K♥", ThreeOfAKind, 1},
		// Each nine-pair combines with the king pair.
		{"full house two pairs", "9♥ 9♦ 9♠ K♣ K♥", TwoPair, 3},
		{"full house itself", "9♥ 9♦ 9♠ K♣ K♥", FullHouse, 1},
		// Four sevens: C(4,2) pairs, C(4,3) trips, three disjoint pair splits.
		{"quads pairs", "7♣ 7♦ 7♥ 7♠ Q♦", Pair, 6},
		{"quads trips", "7♣ 7♦ 7♥ 7♠ Q♦", ThreeOfAKind, 4},
		{"quads two pairs", "7♣ 7♦ 7♥ 7♠ Q♦", TwoPair, 3},
		{"quads itself", "7♣ 7♦ 7♥ 7♠ Q♦", FourOfAKind, 1},
		{"quads no full house", "7♣ 7♦ 7♥ 7♠ Q♦", FullHouse, 0},
		{"single pair", "4♣ 4♦ 7♥ 9♠ K♣", Pair, 1},
		{"two distinct pairs", "4♣ 4♦ 9♥ 9♠ K♣", TwoPair, 1},
		{"high card always one", "2♣ 5♦ 9♥ J♠ K♣", HighCard, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(MustHand(tt.cards))
			if got := len(report.Realizations(tt.category)); got != tt.count {
				t.Errorf("%s realizations = %d, want %d", tt.category, got, tt.count)
			}
		})
	}
}

func TestEvaluateRoyalFlushExcludesStraightFlush(t *testing.T) {
	report := Evaluate(MustHand("10♠ J♠ Q♠ K♠ A♠"))

	if !report.Has(RoyalFlush) {
		t.Error("royal hand should report Royal Flush")
	}
	if report.Has(StraightFlush) {
		t.Error("royal hand should not report Straight Flush")
	}
	if !report.Has(Straight) || !report.Has(Flush) {
		t.Error("royal hand should still report Straight and Flush")
	}
}

func TestEvaluateStraightComboOrdering(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected string
	}{
		{"regular ascending", "6♣ 3♦ 4♥ 2♠ 5♣", "2♠ 3♦ 4♥ 5♣ 6♣"},
		{"wheel keeps ace first", "5♣ A♦ 3♥ 4♠ 2♣", "A♦ 2♣ 3♥ 4♠ 5♣"},
		{"ace high puts ace last", "A♣ Q♥ 10♦ K♠ J♣", "10♦ J♣ Q♥ K♠ A♣"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(MustHand(tt.cards))
			combos := report.Realizations(Straight)
			if len(combos) != 1 {
				t.Fatalf("expected one straight realization, got %d", len(combos))
			}
			if got := combos[0].String(); got != tt.expected {
				t.Errorf("straight combo = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEvaluateWheelStraightFlushIsNotRoyal(t *testing.T) {
	report := Evaluate(MustHand("A♠ 2♠ 3♠ 4♠ 5♠"))

	if !report.Has(StraightFlush) {
		t.Error("wheel straight flush should report Straight Flush")
	}
	if report.Has(RoyalFlush) {
		t.Error("wheel straight flush should not report Royal Flush")
	}

	combos := report.Realizations(StraightFlush)
	if len(combos) != 1 {
		t.Fatalf("expected one straight flush realization, got %d", len(combos))
	}
	if got := combos[0].String(); got != "A♠ 2♠ 3♠ 4♠ 5♠" {
		t.Errorf("wheel combo = %q, want ace first", got)
	}
}

func TestEvaluateHighCardSelection(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected string
	}{
		// Ace outvalues every court card.
		{"ace beats king", "2♣ 5♦ 9♥ K♠ A♣", "A♣"},
		// Jack and king tie on value, order decides.
		{"king beats jack on order", "2♣ 5♦ 9♥ J♠ K♣", "K♣"},
		{"queen beats jack on order", "2♣ 5♦ 9♥ J♠ Q♣", "Q♣"},
		// Equal rank falls back to suit order.
		{"suit breaks exact tie", "J♥ J♠ 3♣ 4♦ 6♣", "J♠"},
		{"ten beats nine", "2♣ 3♦ 5♥ 9♠ 10♣", "10♣"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(MustHand(tt.cards))
			combos := report.Realizations(HighCard)
			if len(combos) != 1 || len(combos[0]) != 1 {
				t.Fatalf("high card should have exactly one single-card realization, got %v", combos)
			}
			if got := combos[0][0].String(); got != tt.expected {
				t.Errorf("high card = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestEvaluateFlushComboCanonicalOrder(t *testing.T) {
	report := Evaluate(MustHand("K♠ 2♠ J♠ 5♠ 9♠"))
	combos := report.Realizations(Flush)
	if len(combos) != 1 {
		t.Fatalf("expected one flush realization, got %d", len(combos))
	}
	if got := combos[0].String(); got != "2♠ 5♠ 9♠ J♠ K♠" {
		t.Errorf("flush combo = %q, want canonical order", got)
	}
}

func TestEvaluatePairComboSuitsAscending(t *testing.T) {
	report := Evaluate(MustHand("4♠ 4♣ 7♥ 9♠ K♣"))
	combos := report.Realizations(Pair)
	if len(combos) != 1 {
		t.Fatalf("expected one pair realization, got %d", len(combos))
	}
	if got := combos[0].String(); got != "4♣ 4♠" {
		t.Errorf("pair combo = %q, want suits ascending", got)
	}
}

func TestEvaluateNearMisses(t *testing.T) {
	tests := []struct {
		name   string
		cards  string
		absent Category
	}{
		{"four card straight", "2♣ 3♦ 4♥ 5♠ 7♣", Straight},
		{"gap straight", "2♣ 3♦ 4♥ 6♠ 7♣", Straight},
		{"queen king ace two three does not wrap", "Q♣ K♦ A♥ 2♠ 3♣", Straight},
		{"four card flush", "2♠ 5♠ 9♠ J♠ K♥", Flush},
		{"trips plus kicker is not a full house", "9♥ 9♦ 9♠ K♣ Q♥", FullHouse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(MustHand(tt.cards))
			if report.Has(tt.absent) {
				t.Errorf("%s should not be realized by %s", tt.absent, tt.cards)
			}
		})
	}
}

func TestEvaluateDealOrderIndependent(t *testing.T) {
	a := Evaluate(MustHand("9♥ 9♦ 9♠ K♣ K♥"))
	b := Evaluate(MustHand("K♥ 9♠ K♣ 9♦ 9♥"))

	ca, cb := a.Categories(), b.Categories()
	if len(ca) != len(cb) {
		t.Fatalf("category sets differ: %v vs %v", ca, cb)
	}
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("category sets differ: %v vs %v", ca, cb)
		}
	}
	for _, c := range ca {
		if len(a.Realizations(c)) != len(b.Realizations(c)) {
			t.Errorf("%s realization counts differ", c)
		}
	}

	bestA, comboA := a.Best()
	bestB, comboB := b.Best()
	if bestA != bestB || comboA.String() != comboB.String() {
		t.Errorf("best differs: %s %q vs %s %q", bestA, comboA, bestB, comboB)
	}
}

func TestEvaluateAllPairsOfKind(t *testing.T) {
	// Three nines: pair combos enumerate suit-ascending subsets.
	report := Evaluate(MustHand("9♥ 9♦ 9♠ K♣ K♥"))

	expected := []string{"9♦ 9♥", "9♦ 9♠", "9♥ 9♠", "K♣ K♥"}
	combos := report.Realizations(Pair)
	if len(combos) != len(expected) {
		t.Fatalf("pair realizations = %d, want %d", len(combos), len(expected))
	}
	for i, combo := range combos {
		if combo.String() != expected[i] {
			t.Errorf("pair %d = %q, want %q", i, combo, expected[i])
		}
	}
}

func TestEvaluateTwoPairDisjointness(t *testing.T) {
	report := Evaluate(MustHand("7♣ 7♦ 7♥ 7♠ Q♦"))

	for _, combo := range report.Realizations(TwoPair) {
		seen := make(map[deck.Card]bool)
		for _, c := range combo {
			if seen[c] {
				t.Errorf("two pair combo %q reuses card %s", combo, c)
			}
			seen[c] = true
		}
		if len(combo) != 4 {
			t.Errorf("two pair combo %q should have 4 cards", combo)
		}
	}
}
