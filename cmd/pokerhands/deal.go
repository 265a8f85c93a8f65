package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/render"
)

// DealCmd deals hands from a shuffled deck and classifies each one.
type DealCmd struct {
	Hands int    `short:"n" default:"1" help:"Number of hands to deal"`
	Seed  *int64 `help:"Random seed for reproducible deals"`
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	if c.Hands < 1 {
		return fmt.Errorf("must deal at least one hand")
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	e.logger.Debug("dealing hands", "count", c.Hands, "seed", seed)

	d := deck.New(randutil.New(seed))
	d.Shuffle()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n",
		render.HeaderStyle.Render("hand"),
		render.HeaderStyle.Render("best"))

	for i := 0; i < c.Hands; i++ {
		cards, err := d.Draw(evaluator.HandSize)
		if errors.Is(err, deck.ErrInsufficientCards) {
			d.Reset()
			d.Shuffle()
			cards, err = d.Draw(evaluator.HandSize)
		}
		if err != nil {
			return err
		}

		hand, err := evaluator.NewHand(cards)
		if err != nil {
			return err
		}
		best, _ := evaluator.Evaluate(hand).Best()

		fmt.Fprintf(w, "%s\t%s\n",
			render.Cards(hand.Cards(), e.unicode),
			render.CategoryStyle.Render(best.String()))
	}

	return w.Flush()
}
