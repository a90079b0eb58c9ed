package fleet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

var (
	// ErrNoActors is returned by PlanAll for an empty actor list.
	ErrNoActors = errors.New("fleet: no actors to plan")
	// ErrNotPlanned is returned by Advance when the actor has no path.
	ErrNotPlanned = errors.New("fleet: actor has no planned path")
	// ErrArrived is returned by Advance once the actor stands on the goal.
	ErrArrived = errors.New("fleet: actor already at the end of its path")
	// ErrOptionViolation is returned by PlanAll when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fleet: invalid option supplied")
)

// Actor is a named walker bound to one search strategy.
type Actor struct {
	Name     string
	Strategy search.Kind

	pos  terrain.Coord
	path search.Path
	step int // index of pos within path
	err  error
}

// NewActor places an actor called name at pos, bound to strategy k.
func NewActor(name string, k search.Kind, pos terrain.Coord) *Actor {
	return &Actor{Name: name, Strategy: k, pos: pos}
}

// Position returns the actor's current cell coordinate.
func (a *Actor) Position() terrain.Coord { return a.pos }

// Path returns the last planned path, or nil.
func (a *Actor) Path() search.Path { return a.path }

// Err returns the error of the last Plan, or nil.
func (a *Actor) Err() error { return a.err }

// Plan computes a path from the actor's position to goal with its strategy.
// On failure the actor keeps its position and has no path.
func (a *Actor) Plan(g *terrain.Grid, goal terrain.Coord, opts ...search.Option) error {
	p, err := search.FindPath(a.Strategy, g, a.pos, goal, opts...)
	if err != nil {
		a.path, a.step = nil, 0
		a.err = fmt.Errorf("fleet: actor %q (%v): %w", a.Name, a.Strategy, err)
		return a.err
	}
	a.path, a.step, a.err = p, 0, nil
	return nil
}

// PlaceTo moves the actor to c directly and discards its path.
func (a *Actor) PlaceTo(c terrain.Coord) {
	a.pos = c
	a.path, a.step, a.err = nil, 0, nil
}

// Advance moves the actor one cell along its path and returns that cell.
func (a *Actor) Advance() (terrain.Cell, error) {
	if a.path == nil {
		return terrain.Cell{}, ErrNotPlanned
	}
	if a.step >= len(a.path)-1 {
		return a.path[len(a.path)-1], ErrArrived
	}
	a.step++
	next := a.path[a.step]
	a.pos = next.Coord
	return next, nil
}

// Remaining returns the cells still ahead of the actor, excluding its own.
func (a *Actor) Remaining() search.Path {
	if a.path == nil {
		return nil
	}
	return a.path[a.step+1:]
}

// Done reports whether the actor has walked its whole path.
func (a *Actor) Done() bool {
	return a.path != nil && a.step == len(a.path)-1
}
