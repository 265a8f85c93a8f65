// Package handlog records hunt sessions as TOML files in the manner of
// hand-history logs: session metadata up top, then one table per completed
// hunt.
package handlog

import (
	"time"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/sessionid"
	"github.com/lox/pokerhands/internal/statistics"
)

// Version identifies the session file layout.
const Version = 1

// Session is one recording: header metadata plus the hunts completed
// under it.
type Session struct {
	Version int    `toml:"version"`
	ID      string `toml:"session"`
	Target  string `toml:"target"`
	Seed    int64  `toml:"seed"`
	Workers int    `toml:"workers,omitempty"`
	Created string `toml:"created,omitempty"`

	// Hunts encode as [hunt_N] tables, not header fields.
	Hunts []Hunt `toml:"-"`
}

// Hunt is one completed hunt within a session.
type Hunt struct {
	Hand      []string          `toml:"hand"`
	Best      string            `toml:"best"`
	Combo     []string          `toml:"combo"`
	Attempts  uint64            `toml:"attempts"`
	ElapsedMs int64             `toml:"elapsed_ms"`
	Tally     map[string]uint64 `toml:"tally,omitempty"`
}

// NewSession mints a session record for a target hunt. The ID is sortable
// by creation time.
func NewSession(target evaluator.Category, seed int64, workers int) *Session {
	return &Session{
		Version: Version,
		ID:      sessionid.New(),
		Target:  target.String(),
		Seed:    seed,
		Workers: workers,
		Created: time.Now().UTC().Format(time.RFC3339),
	}
}

// Append adds a completed hunt to the session in completion order.
func (s *Session) Append(h Hunt) {
	s.Hunts = append(s.Hunts, h)
}

// NewHunt converts a hunt outcome into its log form. A nil tally records
// no per-category breakdown.
func NewHunt(hand evaluator.Hand, best evaluator.Category, combo evaluator.Combo, attempts uint64, elapsed time.Duration, tally *statistics.Tally) Hunt {
	h := Hunt{
		Hand:      cardStrings(hand.Cards()),
		Best:      best.String(),
		Combo:     cardStrings(combo),
		Attempts:  attempts,
		ElapsedMs: elapsed.Milliseconds(),
	}
	if tally != nil {
		counts := make(map[string]uint64)
		for _, c := range evaluator.Categories() {
			if n := tally.Count(c); n > 0 {
				counts[c.String()] = n
			}
		}
		if len(counts) > 0 {
			h.Tally = counts
		}
	}
	return h
}

// cardStrings renders cards in ASCII code form ("Ah", "10d") so the files
// stay grep-able and parse back with deck.ParseCards.
func cardStrings(cards []deck.Card) []string {
	if len(cards) == 0 {
		return nil
	}
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Rank.String() + c.Suit.Name()[:1]
	}
	return out
}
