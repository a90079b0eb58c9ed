package search

import (
	"fmt"

	"github.com/katalvlaran/trailseek/terrain"
)

// Option configures a path computation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// FindPath runs.
type Option func(*Options)

// Options holds the tunables and hooks of a single path computation.
type Options struct {
	// MaxSteps, if > 0, caps the number of main-loop iterations.
	// A value of 0 disables the cap.
	MaxSteps int

	// OnExpand is called for each coordinate the strategy expands
	// (or, for NaiveDirect, steps onto).
	OnExpand func(c terrain.Coord)

	// OnEnqueue is called for each coordinate pushed to a frontier or stack,
	// with the score the strategy orders it by.
	OnEnqueue func(c terrain.Coord, score int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no step cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxSteps:  0,
		OnExpand:  func(terrain.Coord) {},
		OnEnqueue: func(terrain.Coord, int) {},
	}
}

// WithMaxSteps aborts the search with ErrStepLimit after n iterations.
//
//	n > 0:  cap at n
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnExpand registers a callback run for each expanded coordinate.
func WithOnExpand(fn func(c terrain.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run for each enqueued coordinate.
func WithOnEnqueue(fn func(c terrain.Coord, score int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// run is the per-call state shared by every strategy: resolved options,
// the validated endpoints and the step budget.
type run struct {
	grid  *terrain.Grid
	opts  Options
	start terrain.Cell
	goal  terrain.Coord
	steps int
}

// prepare applies opts and validates the grid and both endpoints.
func prepare(g *terrain.Grid, start, goal terrain.Coord, opts []Option) (*run, error) {
	// 1) Validate grid
	if g == nil {
		return nil, ErrNilGrid
	}
	// 2) Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// 3) Validate endpoints
	startCell, err := g.CellAt(start)
	if err != nil {
		return nil, fmt.Errorf("search: start: %w", err)
	}
	if _, err := g.CellAt(goal); err != nil {
		return nil, fmt.Errorf("search: goal: %w", err)
	}

	return &run{grid: g, opts: o, start: startCell, goal: goal}, nil
}

// tick spends one iteration of the step budget.
func (r *run) tick() error {
	r.steps++
	if r.opts.MaxSteps > 0 && r.steps > r.opts.MaxSteps {
		return fmt.Errorf("%w: %d", ErrStepLimit, r.opts.MaxSteps)
	}
	return nil
}

// trivial returns the single-cell path when start and goal coincide.
func (r *run) trivial() (Path, bool) {
	if r.start.Coord == r.goal {
		return Path{r.start}, true
	}
	return nil, false
}
