package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/handlog"
	"github.com/lox/pokerhands/internal/hunter"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/render"
	"github.com/lox/pokerhands/internal/statistics"
	"github.com/lox/pokerhands/internal/watch"
)

// HuntCmd deals hands until a target category turns up.
type HuntCmd struct {
	Target      string `arg:"" help:"Category to hunt (e.g. flush, full-house)"`
	Seed        *int64 `help:"Random seed for a reproducible hunt"`
	Workers     int    `help:"Parallel dealing goroutines"`
	MaxAttempts uint64 `help:"Give up after this many deals (0 = unlimited)"`
	Repeat      int    `default:"1" help:"Hunt repeatedly and summarize attempts per find"`
	Record      string `help:"Write a TOML session log to this path" type:"path"`
	Watch       bool   `help:"Watch the hunt live"`
}

func (c *HuntCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	target, err := evaluator.ParseCategory(c.Target)
	if err != nil {
		return err
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1")
	}
	if c.Watch && c.Repeat > 1 {
		return fmt.Errorf("cannot combine --watch with --repeat")
	}

	workers := c.Workers
	if workers == 0 {
		workers = e.cfg.Hunt.Workers
	}
	maxAttempts := c.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = e.cfg.Hunt.MaxAttempts
	}
	seeds := huntSeeds(c.Seed, c.Repeat)

	var sess *handlog.Session
	if c.Record != "" {
		sess = handlog.NewSession(target, seeds[0], workers)
	}

	ctx := setupSignalHandler(e.logger)

	if c.Watch {
		return c.watchHunt(ctx, e, target, seeds[0], workers, maxAttempts, sess)
	}

	stats := &statistics.Statistics{}
	for i, seed := range seeds {
		cfg := hunter.Config{
			Target:        target,
			Seed:          seed,
			MaxAttempts:   maxAttempts,
			Workers:       workers,
			ProgressEvery: e.cfg.Hunt.ProgressEvery,
			Logger:        e.logger,
		}
		cfg.OnProgress = func(p hunter.Progress) {
			e.logger.Info("still hunting", "target", target.String(), "attempts", p.Attempts)
		}

		h, err := hunter.New(cfg)
		if err != nil {
			return err
		}

		res, err := h.Run(ctx)
		if err != nil {
			// Completed hunts are still worth keeping.
			if sess != nil && len(sess.Hunts) > 0 {
				if werr := handlog.Write(c.Record, sess); werr != nil {
					e.logger.Error("failed to record session", "error", werr)
				}
			}
			return err
		}

		if sess != nil {
			if sess.Seed == 0 {
				sess.Seed = res.Seed
			}
			sess.Append(handlog.NewHunt(res.Hand, target, res.Combo, res.Attempts, res.Elapsed, res.Tally))
		}
		stats.Add(float64(res.Attempts))

		if c.Repeat == 1 {
			displayHuntResult(os.Stdout, target, res, e.unicode)
		} else {
			fmt.Printf("hunt %d: %s in %d attempts (%s)\n",
				i+1,
				render.Cards(res.Hand.Cards(), e.unicode),
				res.Attempts,
				res.Elapsed.Truncate(time.Millisecond))
		}
	}

	if c.Repeat > 1 {
		displayHuntSummary(os.Stdout, target, stats)
	}

	if sess != nil {
		if err := handlog.Write(c.Record, sess); err != nil {
			return err
		}
		fmt.Printf("\nsession %s recorded to %s\n", sess.ID, c.Record)
	}
	return nil
}

// watchHunt runs the hunt behind the live TUI, feeding it progress messages
// and collecting the result from the final model.
func (c *HuntCmd) watchHunt(ctx context.Context, e *env, target evaluator.Category, seed int64, workers int, maxAttempts uint64, sess *handlog.Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(watch.New(e.logger, target, e.unicode))

	// The hunter's own log lines would scribble over the TUI unless they
	// are going to a file.
	hunterLogger := e.logger
	if !e.logToFile {
		hunterLogger = log.New(io.Discard)
	}

	h, err := hunter.New(hunter.Config{
		Target:        target,
		Seed:          seed,
		MaxAttempts:   maxAttempts,
		Workers:       workers,
		ProgressEvery: e.cfg.Hunt.ProgressEvery,
		OnProgress: func(pr hunter.Progress) {
			p.Send(watch.ProgressMsg(pr))
		},
		Logger: hunterLogger,
	})
	if err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		res, err := h.Run(ctx)
		if err != nil {
			p.Send(watch.ErrMsg{Err: err})
			return
		}
		p.Send(watch.FoundMsg{Result: res})
	}()

	final, err := p.Run()
	cancel()
	<-done
	if err != nil {
		return err
	}

	res, ferr := final.(watch.Model).Result()
	if ferr != nil {
		return ferr
	}
	if res == nil {
		fmt.Println("hunt aborted")
		return nil
	}

	if sess != nil {
		if sess.Seed == 0 {
			sess.Seed = res.Seed
		}
		sess.Append(handlog.NewHunt(res.Hand, target, res.Combo, res.Attempts, res.Elapsed, res.Tally))
		if err := handlog.Write(c.Record, sess); err != nil {
			return err
		}
		fmt.Printf("session %s recorded to %s\n", sess.ID, c.Record)
	}
	return nil
}

// huntSeeds expands an optional master seed into one seed per hunt. Without
// a master seed every hunt derives its own from the clock.
func huntSeeds(seed *int64, repeat int) []int64 {
	if seed == nil {
		return make([]int64, repeat)
	}
	if repeat == 1 {
		return []int64{*seed}
	}
	return randutil.Seeds(*seed, repeat)
}

// displayHuntResult prints a found hand with its search tally.
func displayHuntResult(out io.Writer, target evaluator.Category, res *hunter.Result, unicode bool) {
	fmt.Fprintf(out, "%s in %d attempts (%s)\n\n",
		render.SuccessStyle.Render(fmt.Sprintf("Found %s", target)),
		res.Attempts,
		res.Elapsed.Truncate(time.Millisecond))

	fmt.Fprintf(out, "hand   %s\n", render.Cards(res.Hand.Cards(), unicode))
	fmt.Fprintf(out, "combo  %s\n", render.Cards(res.Combo, unicode))
	fmt.Fprintf(out, "seed   %d\n", res.Seed)

	if res.Tally != nil && res.Tally.Total() > 0 {
		fmt.Fprintf(out, "\n")
		displayTally(out, res.Tally)
	}
}

// displayTally prints the categories seen along the way, strongest first.
func displayTally(out io.Writer, tally *statistics.Tally) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		render.HeaderStyle.Render("category"),
		render.HeaderStyle.Render("count"),
		render.HeaderStyle.Render("frequency"))

	cats := evaluator.Categories()
	for i := len(cats) - 1; i >= 0; i-- {
		n := tally.Count(cats[i])
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			render.CategoryStyle.Render(cats[i].String()),
			n,
			render.PercentStyle.Render(fmt.Sprintf("%.4f%%", tally.Frequency(cats[i])*100)))
	}
	w.Flush()
}

// displayHuntSummary prints attempts-per-find statistics for repeated hunts.
func displayHuntSummary(out io.Writer, target evaluator.Category, stats *statistics.Statistics) {
	lo, hi := stats.ConfidenceInterval95()
	oneIn := 1 / statistics.ExpectedProbability(target)

	fmt.Fprintf(out, "\n")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "hunts\t%d\n", stats.Count)
	fmt.Fprintf(w, "mean attempts\t%.1f\n", stats.Mean())
	fmt.Fprintf(w, "median\t%.1f\n", stats.Median())
	fmt.Fprintf(w, "stddev\t%.1f\n", stats.StdDev())
	fmt.Fprintf(w, "p90\t%.1f\n", stats.Percentile(0.9))
	fmt.Fprintf(w, "95%% ci\t%.1f to %.1f\n", lo, hi)
	fmt.Fprintf(w, "expected\t%.1f\n", oneIn)
	w.Flush()
}
