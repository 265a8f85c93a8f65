// Package watch provides the Bubble Tea model for watching a hunt live:
// a spinner, the running attempt count, and the most recent deal, replaced
// by a summary when the hunt resolves.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/hunter"
	"github.com/lox/pokerhands/internal/render"
	"github.com/lox/pokerhands/internal/statistics"
)

// ProgressMsg carries a progress snapshot from the running hunt.
type ProgressMsg hunter.Progress

// FoundMsg carries the final result when the hunt succeeds.
type FoundMsg struct {
	Result *hunter.Result
}

// ErrMsg carries the failure when the hunt gives up.
type ErrMsg struct {
	Err error
}

// Model represents the Bubble Tea model for a live hunt.
type Model struct {
	logger  *log.Logger
	target  evaluator.Category
	unicode bool

	spinner spinner.Model

	// State driven by hunt messages
	attempts uint64
	lastHand evaluator.Hand
	lastBest evaluator.Category
	result   *hunter.Result
	err      error
	quitting bool
}

// New creates a model for watching a hunt for the given target.
func New(logger *log.Logger, target evaluator.Category, unicode bool) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	return Model{
		logger:  logger.WithPrefix("watch"),
		target:  target,
		unicode: unicode,
		spinner: s,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles hunt and terminal messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.attempts = msg.Attempts
		m.lastHand = msg.Hand
		m.lastBest = msg.Best
		return m, nil

	case FoundMsg:
		m.logger.Debug("hunt finished", "attempts", msg.Result.Attempts)
		m.result = msg.Result
		m.attempts = msg.Result.Attempts
		return m, tea.Quit

	case ErrMsg:
		m.logger.Debug("hunt failed", "error", msg.Err)
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the hunt state.
func (m Model) View() string {
	if m.err != nil {
		return render.ErrorStyle.Render("hunt failed: "+m.err.Error()) + "\n"
	}

	if m.result != nil {
		var b strings.Builder
		b.WriteString(render.SuccessStyle.Render(fmt.Sprintf("Found %s!", m.target)))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  hand      %s\n", render.Cards(m.result.Hand.Cards(), m.unicode)))
		b.WriteString(fmt.Sprintf("  combo     %s\n", render.Cards(m.result.Combo, m.unicode)))
		b.WriteString(fmt.Sprintf("  attempts  %d\n", m.result.Attempts))
		b.WriteString(fmt.Sprintf("  elapsed   %s\n", m.result.Elapsed.Truncate(time.Millisecond)))
		return b.String()
	}

	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s hunting %s\n\n", m.spinner.View(), render.HeaderStyle.Render(m.target.String())))
	b.WriteString(fmt.Sprintf("  attempts   %d\n", m.attempts))
	if m.attempts > 0 {
		b.WriteString(fmt.Sprintf("  last hand  %s  %s\n",
			render.Cards(m.lastHand.Cards(), m.unicode),
			render.CategoryStyle.Render(m.lastBest.String())))
	}
	b.WriteString("\n")

	oneIn := 1 / statistics.ExpectedProbability(m.target)
	b.WriteString(render.InfoStyle.Render(fmt.Sprintf("one in %.0f deals on average • q to give up", oneIn)))
	b.WriteString("\n")

	return b.String()
}

// Result returns the hunt outcome once a FoundMsg or ErrMsg has arrived.
// Both values are unset when the user gave up instead.
func (m Model) Result() (*hunter.Result, error) {
	return m.result, m.err
}
