// Command trailseek loads a scenario, plans every actor toward the goal and
// prints each route as an ASCII trail. With -png it also writes one trail
// image per actor.
//
// Usage:
//
//	trailseek -scenario ring.yaml [-actor Draza] [-png out] [-workers 4]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/trailseek/fleet"
	"github.com/katalvlaran/trailseek/render"
	"github.com/katalvlaran/trailseek/scenario"
	"github.com/katalvlaran/trailseek/terrain"
)

func main() {
	var (
		path    = flag.String("scenario", "", "path to the scenario YAML file (required)")
		only    = flag.String("actor", "", "plan only the named actor")
		pngBase = flag.String("png", "", "write <prefix>-<actor>.png trail images")
		workers = flag.Int("workers", 0, "concurrent path computations (0 = one per CPU)")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("trailseek: ")

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *path, *only, *pngBase, *workers); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, path, only, pngBase string, workers int) error {
	sc, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	actors := sc.Actors
	if only != "" {
		a, ok := sc.Actor(only)
		if !ok {
			return fmt.Errorf("no actor %q in %s", only, path)
		}
		actors = []*fleet.Actor{a}
	}

	opts := []fleet.Option{fleet.WithSearchOptions(sc.SearchOptions()...)}
	if workers > 0 {
		opts = append(opts, fleet.WithWorkers(workers))
	}
	log.Printf("planning %d actor(s) on a %dx%d map toward %v", len(actors), sc.Grid.Rows(), sc.Grid.Cols(), sc.Goal)
	if err := fleet.PlanAll(ctx, sc.Grid, sc.Goal, actors, opts...); err != nil {
		// failed actors stay in place; report and carry on with the rest
		log.Printf("some actors could not be planned: %v", err)
	}

	for _, a := range actors {
		if a.Err() != nil {
			continue
		}
		p := a.Path()
		fmt.Printf("%s (%v): %d cells, cost %d\n", a.Name, a.Strategy, p.Len(), p.Cost())
		if err := render.Text(os.Stdout, sc.Grid, p); err != nil {
			return err
		}
		fmt.Println()

		if pngBase == "" {
			continue
		}
		if err := writePNG(pngBase, sc.Grid, a); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(base string, g *terrain.Grid, a *fleet.Actor) (err error) {
	img, err := render.Image(g, a.Path())
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s-%s.png", base, strings.ToLower(a.Name))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = render.WritePNG(f, img); err != nil {
		return err
	}
	log.Printf("wrote %s", name)
	return nil
}
