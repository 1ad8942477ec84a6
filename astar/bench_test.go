package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkSearch_OpenGrid measures A* corner to corner on an empty M×M grid.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const M = 200
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}
	start, end := grid.Cell{X: 0, Y: 0}, grid.Cell{X: M - 1, Y: M - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, end)
	}
}

// BenchmarkSearch_RandomWalls measures A* on a grid with ~25% random walls.
func BenchmarkSearch_RandomWalls(b *testing.B) {
	const M = 200
	rnd := rand.New(rand.NewSource(42))
	g, err := grid.New(M, M)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < M; y++ {
		for x := 0; x < M; x++ {
			if rnd.Intn(4) == 0 {
				_ = g.SetBlocked(grid.Cell{X: x, Y: y}, true)
			}
		}
	}
	start, end := grid.Cell{X: 0, Y: 0}, grid.Cell{X: M - 1, Y: M - 1}
	_ = g.SetBlocked(start, false)
	_ = g.SetBlocked(end, false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, end)
	}
}
