package deck

import (
	"errors"
	"testing"
)

func TestParseRank(t *testing.T) {
	tests := []struct {
		input    string
		expected Rank
		wantErr  bool
	}{
		{"A", Ace, false},
		{"a", Ace, false},
		{"ace", Ace, false},
		{"ACE", Ace, false},
		{"2", Two, false},
		{"9", Nine, false},
		{"10", Ten, false},
		{"T", Ten, false},
		{"t", Ten, false},
		{"J", Jack, false},
		{"jack", Jack, false},
		{"queen", Queen, false},
		{"K", King, false},
		{"king", King, false},
		{" K ", King, false},
		{"1", 0, true},
		{"11", 0, true},
		{"x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRank(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRank) {
				t.Errorf("ParseRank(%q) error = %v, want ErrInvalidRank", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRank(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseRank(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseSuit(t *testing.T) {
	tests := []struct {
		input    string
		expected Suit
		wantErr  bool
	}{
		{"c", Clubs, false},
		{"clubs", Clubs, false},
		{"♣", Clubs, false},
		{"d", Diamonds, false},
		{"DIAMONDS", Diamonds, false},
		{"♦", Diamonds, false},
		{"h", Hearts, false},
		{"hearts", Hearts, false},
		{"♥", Hearts, false},
		{"s", Spades, false},
		{"spades", Spades, false},
		{"♠", Spades, false},
		{"x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSuit(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidSuit) {
				t.Errorf("ParseSuit(%q) error = %v, want ErrInvalidSuit", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSuit(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseSuit(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewCard(t *testing.T) {
	card, err := NewCard("king", "hearts")
	if err != nil {
		t.Fatalf("NewCard() unexpected error: %v", err)
	}
	if card != (Card{Rank: King, Suit: Hearts}) {
		t.Errorf("NewCard() = %v, want K♥", card)
	}

	if _, err := NewCard("bogus", "hearts"); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("expected ErrInvalidRank, got %v", err)
	}
	if _, err := NewCard("king", "bogus"); !errors.Is(err, ErrInvalidSuit) {
		t.Errorf("expected ErrInvalidSuit, got %v", err)
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{"letter suit", "As", Card{Rank: Ace, Suit: Spades}, false},
		{"glyph suit", "A♠", Card{Rank: Ace, Suit: Spades}, false},
		{"ten", "10h", Card{Rank: Ten, Suit: Hearts}, false},
		{"ten shorthand", "Td", Card{Rank: Ten, Suit: Diamonds}, false},
		{"long rank", "queen♥", Card{Rank: Queen, Suit: Hearts}, false},
		{"lowercase", "kc", Card{Rank: King, Suit: Clubs}, false},
		{"empty", "", Card{}, true},
		{"rank only", "A", Card{}, true},
		{"bad rank", "Xs", Card{}, true},
		{"bad suit", "Az", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	// Every card in the deck must survive String -> ParseCard unchanged.
	for rank := Ace; rank <= King; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			card := Card{Rank: rank, Suit: suit}
			got, err := ParseCard(card.String())
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", card, err)
			}
			if got != card {
				t.Errorf("round trip %q = %v, want %v", card.String(), got, card)
			}
		}
	}
}

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "space separated",
			input: "A♠ K♠ Q♠ J♠ 10♠",
			expected: []Card{
				{Rank: Ace, Suit: Spades},
				{Rank: King, Suit: Spades},
				{Rank: Queen, Suit: Spades},
				{Rank: Jack, Suit: Spades},
				{Rank: Ten, Suit: Spades},
			},
		},
		{
			name:  "comma separated letters",
			input: "Ah,Kd,Qc,Js,9s",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: King, Suit: Diamonds},
				{Rank: Queen, Suit: Clubs},
				{Rank: Jack, Suit: Spades},
				{Rank: Nine, Suit: Spades},
			},
		},
		{
			name:  "mixed separators",
			input: "5h, 4d\t3c 2s",
			expected: []Card{
				{Rank: Five, Suit: Hearts},
				{Rank: Four, Suit: Diamonds},
				{Rank: Three, Suit: Clubs},
				{Rank: Two, Suit: Spades},
			},
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
		{
			name:    "invalid card in list",
			input:   "Ah Kx",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseCards() returned %d cards, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("card %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("As Ks")
	if len(cards) != 2 || cards[0] != (Card{Rank: Ace, Suit: Spades}) {
		t.Errorf("MustParseCards() = %v", cards)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}
