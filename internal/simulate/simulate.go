// Package simulate runs repeated rolls of a dice expression across a pool of
// workers and folds the outcomes into summary statistics.
package simulate

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/diceroll/dice"
	"github.com/lox/diceroll/internal/randutil"
	"github.com/lox/diceroll/internal/stats"
)

// Config holds the parameters for one simulation run.
type Config struct {
	Notation   string
	Iterations int
	Workers    int // 0 picks one per CPU, capped at 8
	Seed       int64
	Logger     *log.Logger
}

// Run rolls cfg.Notation cfg.Iterations times and returns the accumulated
// totals. Trials shard across workers, each owning its own generator and its
// own copy of the dice so no state is shared between goroutines. The same
// seed always produces the same accumulator.
func Run(cfg Config) (*stats.Accumulator, error) {
	if _, err := dice.Parse[uint64](cfg.Notation); err != nil {
		return nil, err
	}
	if cfg.Iterations <= 0 {
		return &stats.Accumulator{}, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8 // diminishing returns past this
		}
	}
	if workers > cfg.Iterations {
		workers = cfg.Iterations
	}

	perWorker := cfg.Iterations / workers
	remainder := cfg.Iterations % workers

	// Worker seeds are drawn up front from one base generator so a given
	// cfg.Seed always yields the same set of streams.
	baseRng := randutil.New(cfg.Seed)

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan *stats.Accumulator, workers)

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		workerSeed := baseRng.Int64()

		g.Go(func() error {
			d, err := dice.Parse[uint64](cfg.Notation)
			if err != nil {
				return err
			}
			rng := randutil.New(workerSeed)

			acc := &stats.Accumulator{}
			for i := 0; i < trials; i++ {
				acc.Add(d.RollAll(rng).Total())
			}

			select {
			case results <- acc:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		g.Wait()
	}()

	total := &stats.Accumulator{}
	for acc := range results {
		total.Merge(acc)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("simulation complete",
			"notation", cfg.Notation,
			"iterations", total.Trials,
			"workers", workers)
	}

	return total, nil
}
