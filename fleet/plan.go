package fleet

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

// Options configures PlanAll.
type Options struct {
	// Workers bounds concurrent path computations; must be > 0.
	Workers int
	// Search is passed to every actor's strategy.
	Search []search.Option

	// internal error recorded during option parsing
	err error
}

// Option is a functional argument to PlanAll.
type Option func(*Options)

// DefaultOptions uses one worker per CPU and no search options.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// WithWorkers bounds the number of concurrent computations.
// Values below 1 are invalid and make PlanAll return ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSearchOptions forwards opts to every actor's strategy. Hooks among
// them are called from several goroutines and must be safe for that.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// PlanAll plans every actor toward goal concurrently. Every actor is
// attempted; failures are recorded on the actor (see Actor.Err) and joined
// into the returned error. A cancelled ctx fails the actors not yet started.
func PlanAll(ctx context.Context, g *terrain.Grid, goal terrain.Coord, actors []*Actor, opts ...Option) error {
	if len(actors) == 0 {
		return ErrNoActors
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for _, a := range actors {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				a.path, a.step = nil, 0
				a.err = fmt.Errorf("fleet: actor %q (%v): %w", a.Name, a.Strategy, err)
				return nil
			}
			_ = a.Plan(g, goal, cfg.Search...)
			return nil
		})
	}
	_ = eg.Wait()

	var errs []error
	for _, a := range actors {
		if a.err != nil {
			errs = append(errs, a.err)
		}
	}
	return errors.Join(errs...)
}
