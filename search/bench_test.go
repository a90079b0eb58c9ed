package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

// BenchmarkStrategies runs each strategy corner to corner on a seeded
// random 40×40 grid.
func BenchmarkStrategies(b *testing.B) {
	const n = 40
	g := randomGrid(rand.New(rand.NewSource(42)), n, n)
	start, goal := terrain.Coord{}, terrain.Coord{Row: n - 1, Col: n - 1}

	for _, k := range search.All() {
		s, err := search.New(k)
		if err != nil {
			b.Fatalf("setup New(%v) failed: %v", k, err)
		}
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := s.FindPath(g, start, goal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
