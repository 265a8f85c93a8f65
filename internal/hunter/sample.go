package hunter

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/internal/deck"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/internal/statistics"
)

// SampleConfig controls a fixed-size sampling run: no target, just deal and
// tally best categories.
type SampleConfig struct {
	// Deals is the number of hands to deal. Must be positive.
	Deals uint64

	// Seed fixes the RNG; 0 derives a seed from the clock.
	Seed int64

	// Workers is the number of parallel dealing goroutines; values below
	// 2 run on a single goroutine.
	Workers int

	// ProgressEvery calls OnProgress after every chunk of this many deals;
	// 0 disables progress reporting.
	ProgressEvery uint64
	OnProgress    func(Progress)

	// Logger defaults to a discard logger when nil.
	Logger *log.Logger

	// Clock defaults to the real clock when nil.
	Clock quartz.Clock
}

// SampleResult carries the merged tally of a sampling run.
type SampleResult struct {
	Tally   *statistics.Tally
	Deals   uint64
	Elapsed time.Duration
	Seed    int64
}

// Sample deals exactly cfg.Deals fresh hands and tallies each hand's best
// category. The deals fan out across workers the same way a hunt does, so a
// seeded run is reproducible for a given worker count.
func Sample(ctx context.Context, cfg SampleConfig) (*SampleResult, error) {
	if cfg.Deals == 0 {
		return nil, fmt.Errorf("sample of zero deals")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Clock.Now().UnixNano()
	}

	start := cfg.Clock.Now()
	cfg.Logger.Info("sampling hands",
		"deals", cfg.Deals,
		"seed", seed,
		"workers", cfg.Workers)

	seeds := randutil.Seeds(seed, cfg.Workers)
	budgets := splitBudget(cfg.Deals, cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	tallies := make(chan *statistics.Tally, cfg.Workers)
	var total atomic.Uint64

	for w := 0; w < cfg.Workers; w++ {
		workerSeed := seeds[w]
		budget := budgets[w]

		g.Go(func() error {
			d := deck.New(randutil.New(workerSeed))
			tally := statistics.NewTally()
			defer func() { tallies <- tally }()

			for n := uint64(0); n < budget; n++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				hand, report, err := dealOnce(d)
				if err != nil {
					return err
				}
				best, _ := report.Best()
				tally.Add(best)

				if done := total.Add(1); cfg.ProgressEvery > 0 && done%cfg.ProgressEvery == 0 {
					if cfg.OnProgress != nil {
						cfg.OnProgress(Progress{Attempts: done, Hand: hand, Best: best})
					}
					cfg.Logger.Debug("still sampling", "deals", done, "of", cfg.Deals)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	close(tallies)

	merged := statistics.NewTally()
	for t := range tallies {
		merged.Merge(t)
	}
	if err != nil {
		return nil, err
	}

	res := &SampleResult{
		Tally:   merged,
		Deals:   merged.Total(),
		Elapsed: cfg.Clock.Since(start),
		Seed:    seed,
	}
	cfg.Logger.Info("sampling finished", "deals", res.Deals, "elapsed", res.Elapsed)
	return res, nil
}
