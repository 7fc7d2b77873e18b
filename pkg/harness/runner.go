package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/kaytu-io/racecount/pkg/counter"
	"golang.org/x/sync/errgroup"
)

var ErrTimeout = fmt.Errorf("workers did not finish in time")

// Observer is told when each strategy run starts and finishes.
type Observer interface {
	Started(name string)
	Finished(result Result)
}

// Run increments a fresh counter of the given strategy from cfg.Workers
// goroutines and waits until all of them have joined.
func Run(ctx context.Context, strategy counter.Strategy, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	c := strategy.New()

	start := time.Now()
	var g errgroup.Group
	for i := 0; i < cfg.Workers; i++ {
		g.Go(func() error {
			counter.IncrementN(c, cfg.Increments)
			return nil
		})
	}
	if err := wait(ctx, &g, cfg.Timeout); err != nil {
		return Result{}, fmt.Errorf("[Run] %s: %w", strategy.Name, err)
	}
	elapsed := time.Since(start)

	return Result{
		Name:         strategy.Name,
		FinalCounter: c.Value(),
		Expected:     cfg.Expected(),
		Elapsed:      elapsed,
	}, nil
}

// RunAll runs the strategies one after another. A strategy's workers are
// all joined before the next strategy's workers are spawned.
func RunAll(ctx context.Context, strategies []counter.Strategy, cfg Config, observers ...Observer) ([]Result, error) {
	var results []Result
	for _, s := range strategies {
		for _, o := range observers {
			o.Started(s.Name)
		}
		r, err := Run(ctx, s, cfg)
		if err != nil {
			return results, err
		}
		for _, o := range observers {
			o.Finished(r)
		}
		results = append(results, r)
	}
	return results, nil
}

// wait blocks until g is done, ctx is cancelled or timeout elapses. The
// workers are bounded loops, so on timeout they are left to finish alone.
func wait(ctx context.Context, g *errgroup.Group, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-done:
		return err
	case <-expired:
		return fmt.Errorf("%w after %s", ErrTimeout, timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
