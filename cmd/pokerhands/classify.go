package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/render"
)

// ClassifyCmd classifies a hand given on the command line.
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards in compact notation (e.g. Ah Kh Qh Jh 10h)"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := deck.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	hand, err := evaluator.NewHand(cards)
	if err != nil {
		return err
	}

	report := evaluator.Evaluate(hand)
	e.logger.Debug("classified hand", "hand", hand.String(), "categories", len(report.Categories()))

	displayReport(os.Stdout, hand, report, e.unicode)
	return nil
}

// displayReport prints every realized category with its combinations,
// strongest category first, then the best classification.
func displayReport(out io.Writer, hand evaluator.Hand, report evaluator.Report, unicode bool) {
	fmt.Fprintf(out, "%s\n\n", render.Cards(hand.Cards(), unicode))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n",
		render.HeaderStyle.Render("category"),
		render.HeaderStyle.Render("cards"))

	cats := report.Categories()
	for i := len(cats) - 1; i >= 0; i-- {
		combos := report.Realizations(cats[i])
		fmt.Fprintf(w, "%s\t%s\n",
			render.CategoryStyle.Render(cats[i].String()),
			render.Cards(combos[0], unicode))
		for _, combo := range combos[1:] {
			fmt.Fprintf(w, "\t%s\n", render.Cards(combo, unicode))
		}
	}
	w.Flush()

	best, combo := report.Best()
	fmt.Fprintf(out, "\n%s %s (%s)\n",
		render.SuccessStyle.Render("best"),
		best, render.Cards(combo, unicode))
}
