// Package hunter deals fresh five-card hands until a target category shows
// up, sequentially or across parallel workers.
package hunter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/evaluator"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/statistics"
)

// ErrAttemptsExhausted is returned when the attempt budget runs out before
// the target category appears.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// errFound stops sibling workers once one of them has hit the target.
var errFound = errors.New("target found")

// Progress is handed to the OnProgress callback while a hunt runs. With
// more than one worker the callback may fire concurrently.
type Progress struct {
	Attempts uint64
	Hand     evaluator.Hand
	Best     evaluator.Category
}

// Config controls a hunt.
type Config struct {
	// Target is the category to hunt for.
	Target evaluator.Category

	// Seed fixes the RNG; 0 derives a seed from the clock.
	Seed int64

	// MaxAttempts gives up after this many deals; 0 means unlimited.
	MaxAttempts uint64

	// Workers is the number of parallel dealing goroutines; values below
	// 2 run sequentially. New caps workers at a nonzero MaxAttempts.
	Workers int

	// ProgressEvery calls OnProgress after every chunk of this many deals;
	// 0 disables progress reporting.
	ProgressEvery uint64
	OnProgress    func(Progress)

	// Logger defaults to a discard logger when nil.
	Logger *log.Logger

	// Clock defaults to the real clock when nil. Tests inject a mock.
	Clock quartz.Clock
}

// Result describes a completed hunt.
type Result struct {
	Hand     evaluator.Hand
	Report   evaluator.Report
	Combo    evaluator.Combo
	Attempts uint64
	Elapsed  time.Duration
	Seed     int64
	Tally    *statistics.Tally
}

// Hunter deals hands until the target category is the best classification.
type Hunter struct {
	cfg Config
}

// New normalizes the config and builds a hunter.
func New(cfg Config) (*Hunter, error) {
	if cfg.Target < evaluator.HighCard || cfg.Target > evaluator.RoyalFlush {
		return nil, fmt.Errorf("unknown target category %d", int(cfg.Target))
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	// Never more workers than attempts: splitBudget would hand the extras
	// a zero share, and a zero budget means unlimited.
	if cfg.MaxAttempts > 0 && uint64(cfg.Workers) > cfg.MaxAttempts {
		cfg.Workers = int(cfg.MaxAttempts)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Hunter{cfg: cfg}, nil
}

// Run deals until the target appears, the attempt budget is exhausted, or
// the context is cancelled.
func (h *Hunter) Run(ctx context.Context) (*Result, error) {
	seed := h.cfg.Seed
	if seed == 0 {
		seed = h.cfg.Clock.Now().UnixNano()
	}
	start := h.cfg.Clock.Now()
	h.cfg.Logger.Info("hunt started",
		"target", h.cfg.Target,
		"seed", seed,
		"workers", h.cfg.Workers,
		"max_attempts", h.cfg.MaxAttempts)

	var (
		res *Result
		err error
	)
	if h.cfg.Workers > 1 {
		res, err = h.runParallel(ctx, seed)
	} else {
		res, err = h.runSequential(ctx, seed)
	}
	if err != nil {
		return nil, err
	}

	res.Seed = seed
	res.Elapsed = h.cfg.Clock.Since(start)
	h.cfg.Logger.Info("hunt finished",
		"hand", res.Hand.String(),
		"attempts", res.Attempts,
		"elapsed", res.Elapsed)
	return res, nil
}

func (h *Hunter) runSequential(ctx context.Context, seed int64) (*Result, error) {
	d := deck.New(randutil.New(seed))
	tally := statistics.NewTally()

	var attempts uint64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if h.cfg.MaxAttempts > 0 && attempts >= h.cfg.MaxAttempts {
			return nil, fmt.Errorf("%w after %d deals", ErrAttemptsExhausted, attempts)
		}

		hand, report, err := dealOnce(d)
		if err != nil {
			return nil, err
		}
		attempts++
		best, combo := report.Best()
		tally.Add(best)

		if best == h.cfg.Target {
			return &Result{
				Hand:     hand,
				Report:   report,
				Combo:    combo,
				Attempts: attempts,
				Tally:    tally,
			}, nil
		}
		h.progress(attempts, hand, best)
	}
}

// find carries a successful worker's catch back to the collector.
type find struct {
	hand   evaluator.Hand
	report evaluator.Report
	combo  evaluator.Combo
}

func (h *Hunter) runParallel(ctx context.Context, seed int64) (*Result, error) {
	workers := h.cfg.Workers
	seeds := randutil.Seeds(seed, workers)
	budgets := splitBudget(h.cfg.MaxAttempts, workers)

	g, gctx := errgroup.WithContext(ctx)
	finds := make(chan find, workers)
	tallies := make(chan *statistics.Tally, workers)
	counts := make(chan uint64, workers)
	var total atomic.Uint64

	for w := 0; w < workers; w++ {
		workerSeed := seeds[w]
		budget := budgets[w]

		g.Go(func() error {
			d := deck.New(randutil.New(workerSeed))
			tally := statistics.NewTally()
			var n uint64
			defer func() {
				tallies <- tally
				counts <- n
			}()

			for budget == 0 || n < budget {
				if gctx.Err() != nil {
					return nil
				}
				hand, report, err := dealOnce(d)
				if err != nil {
					return err
				}
				n++
				best, combo := report.Best()
				tally.Add(best)
				h.progress(total.Add(1), hand, best)

				if best == h.cfg.Target {
					finds <- find{hand: hand, report: report, combo: combo}
					return errFound
				}
			}
			return nil
		})
	}

	err := g.Wait()
	close(finds)
	close(tallies)
	close(counts)

	merged := statistics.NewTally()
	for t := range tallies {
		merged.Merge(t)
	}
	var attempts uint64
	for c := range counts {
		attempts += c
	}

	if err != nil && !errors.Is(err, errFound) {
		return nil, err
	}
	if f, ok := <-finds; ok {
		return &Result{
			Hand:     f.hand,
			Report:   f.report,
			Combo:    f.combo,
			Attempts: attempts,
			Tally:    merged,
		}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w after %d deals", ErrAttemptsExhausted, attempts)
}

func (h *Hunter) progress(attempts uint64, hand evaluator.Hand, best evaluator.Category) {
	if h.cfg.ProgressEvery == 0 || attempts%h.cfg.ProgressEvery != 0 {
		return
	}
	if h.cfg.OnProgress != nil {
		h.cfg.OnProgress(Progress{Attempts: attempts, Hand: hand, Best: best})
	}
	h.cfg.Logger.Debug("still hunting",
		"attempts", attempts,
		"last_hand", hand.String(),
		"last_best", best)
}

// dealOnce resets and shuffles the deck, then draws and classifies a fresh
// five-card hand.
func dealOnce(d *deck.Deck) (evaluator.Hand, evaluator.Report, error) {
	d.Reset()
	d.Shuffle()
	cards, err := d.Draw(evaluator.HandSize)
	if err != nil {
		return evaluator.Hand{}, evaluator.Report{}, err
	}
	hand, err := evaluator.NewHand(cards)
	if err != nil {
		return evaluator.Hand{}, evaluator.Report{}, err
	}
	return hand, evaluator.Evaluate(hand), nil
}

// splitBudget divides n attempts as evenly as possible across workers.
// A zero budget stays zero (unlimited) for every worker.
func splitBudget(n uint64, workers int) []uint64 {
	budgets := make([]uint64, workers)
	if n == 0 {
		return budgets
	}
	per := n / uint64(workers)
	rem := n % uint64(workers)
	for w := range budgets {
		budgets[w] = per
		if uint64(w) < rem {
			budgets[w]++
		}
	}
	return budgets
}
