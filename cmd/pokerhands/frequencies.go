package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/hunter"
	"github.com/lox/pokerhands/internal/render"
	"github.com/lox/pokerhands/internal/statistics"
)

// FrequenciesCmd estimates per-category frequencies by dealing a fixed
// number of hands and compares them against the exact probabilities.
type FrequenciesCmd struct {
	Deals   uint64 `default:"100000" help:"Number of hands to sample"`
	Seed    *int64 `help:"Random seed for a reproducible sample"`
	Workers int    `help:"Parallel dealing goroutines"`
}

func (c *FrequenciesCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	workers := c.Workers
	if workers == 0 {
		workers = e.cfg.Hunt.Workers
	}
	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	}

	ctx := setupSignalHandler(e.logger)

	res, err := hunter.Sample(ctx, hunter.SampleConfig{
		Deals:         c.Deals,
		Seed:          seed,
		Workers:       workers,
		ProgressEvery: e.cfg.Hunt.ProgressEvery,
		OnProgress: func(p hunter.Progress) {
			e.logger.Info("sampling", "deals", p.Attempts)
		},
		Logger: e.logger,
	})
	if err != nil {
		return err
	}

	displayFrequencies(os.Stdout, res)
	return nil
}

// displayFrequencies prints observed against expected frequency for every
// category, strongest first.
func displayFrequencies(out io.Writer, res *hunter.SampleResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		render.HeaderStyle.Render("category"),
		render.HeaderStyle.Render("count"),
		render.HeaderStyle.Render("observed"),
		render.HeaderStyle.Render("expected"),
		render.HeaderStyle.Render("95% ci"))

	cats := evaluator.Categories()
	for i := len(cats) - 1; i >= 0; i-- {
		cat := cats[i]
		lo, hi := res.Tally.ProportionCI95(cat)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			render.CategoryStyle.Render(cat.String()),
			res.Tally.Count(cat),
			render.PercentStyle.Render(formatPercent(res.Tally.Frequency(cat))),
			formatPercent(statistics.ExpectedProbability(cat)),
			fmt.Sprintf("%s to %s", formatPercent(lo), formatPercent(hi)))
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d deals in %v (seed %d)\n",
		res.Deals, res.Elapsed.Truncate(time.Millisecond), res.Seed)
}

// formatPercent renders a proportion with enough precision for the rare
// categories.
func formatPercent(p float64) string {
	return fmt.Sprintf("%.6f%%", p*100)
}
