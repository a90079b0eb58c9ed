package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trailseek/fleet"
	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

// ErrInvalid wraps every validation failure of a scenario document.
var ErrInvalid = errors.New("scenario: invalid")

// Point is a YAML {row, col} pair.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Coord converts p to a terrain coordinate.
func (p Point) Coord() terrain.Coord {
	return terrain.Coord{Row: p.Row, Col: p.Col}
}

// ActorSpec declares one actor.
type ActorSpec struct {
	Name string `yaml:"name"`
	// Strategy is a search.Kind name; empty means "infer from Name".
	Strategy string `yaml:"strategy,omitempty"`
	Start    Point  `yaml:"start"`
}

// File is the raw scenario document.
type File struct {
	Map      []string    `yaml:"map"`
	Goal     Point       `yaml:"goal"`
	MaxSteps int         `yaml:"max_steps,omitempty"`
	Actors   []ActorSpec `yaml:"actors"`
}

// Scenario is a validated, ready-to-run scenario.
type Scenario struct {
	Grid     *terrain.Grid
	Goal     terrain.Coord
	MaxSteps int
	Actors   []*fleet.Actor
}

// Decode reads a scenario document from r, rejecting unknown fields.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return &f, nil
}

// Build validates f and constructs the grid and actors.
func (f *File) Build() (*Scenario, error) {
	// 1) Terrain
	g, err := terrain.ParseRows(f.Map)
	if err != nil {
		return nil, fmt.Errorf("%w: map: %w", ErrInvalid, err)
	}
	// 2) Goal and budget
	goal := f.Goal.Coord()
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v: %w", ErrInvalid, goal, terrain.ErrOutOfBounds)
	}
	if f.MaxSteps < 0 {
		return nil, fmt.Errorf("%w: max_steps cannot be negative (%d)", ErrInvalid, f.MaxSteps)
	}
	// 3) Actors
	if len(f.Actors) == 0 {
		return nil, fmt.Errorf("%w: no actors", ErrInvalid)
	}
	names := make(map[string]bool, len(f.Actors))
	actors := make([]*fleet.Actor, 0, len(f.Actors))
	for i, spec := range f.Actors {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: actor %d has no name", ErrInvalid, i)
		}
		if names[spec.Name] {
			return nil, fmt.Errorf("%w: duplicate actor %q", ErrInvalid, spec.Name)
		}
		names[spec.Name] = true

		k, err := spec.kind()
		if err != nil {
			return nil, fmt.Errorf("%w: actor %q: %w", ErrInvalid, spec.Name, err)
		}
		start := spec.Start.Coord()
		if !g.InBounds(start) {
			return nil, fmt.Errorf("%w: actor %q start %v: %w", ErrInvalid, spec.Name, start, terrain.ErrOutOfBounds)
		}
		actors = append(actors, fleet.NewActor(spec.Name, k, start))
	}

	return &Scenario{Grid: g, Goal: goal, MaxSteps: f.MaxSteps, Actors: actors}, nil
}

func (s ActorSpec) kind() (search.Kind, error) {
	if s.Strategy != "" {
		return search.ParseKind(s.Strategy)
	}
	return search.ParseKind(s.Name)
}

// Load decodes and builds a scenario from r.
func Load(r io.Reader) (*Scenario, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (*Scenario, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// SearchOptions returns the search options implied by the scenario.
func (s *Scenario) SearchOptions() []search.Option {
	return []search.Option{search.WithMaxSteps(s.MaxSteps)}
}

// Actor returns the actor called name.
func (s *Scenario) Actor(name string) (*fleet.Actor, bool) {
	for _, a := range s.Actors {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}
