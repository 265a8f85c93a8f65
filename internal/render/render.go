package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhands/internal/deck"
)

// Configure sets the global color profile. The flag forces color off;
// otherwise the terminal and the NO_COLOR convention decide.
func Configure(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// CardText returns a card's text with unicode suit glyphs ("A♠") or ASCII
// suit letters ("As").
func CardText(c deck.Card, unicode bool) string {
	if unicode {
		return c.String()
	}
	return c.Rank.String() + c.Suit.Name()[:1]
}

// Card renders one card in its suit color.
func Card(c deck.Card, unicode bool) string {
	if c.IsRed() {
		return RedCardStyle.Render(CardText(c, unicode))
	}
	return BlackCardStyle.Render(CardText(c, unicode))
}

// Cards renders cards separated by spaces.
func Cards(cards []deck.Card, unicode bool) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c, unicode)
	}
	return strings.Join(parts, " ")
}
