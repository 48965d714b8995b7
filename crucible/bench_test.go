package crucible_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2023/crucible"
	"github.com/katalvlaran/aoc2023/grid2d"
)

// puzzleSized returns a random 141×141 grid, the size of real inputs.
func puzzleSized(b *testing.B) *grid2d.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	var sb strings.Builder
	for y := 0; y < 141; y++ {
		for x := 0; x < 141; x++ {
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	return mustGrid(b, sb.String())
}

// BenchmarkSearch_Classic measures the MaxRun=3 crucible.
func BenchmarkSearch_Classic(b *testing.B) {
	g := puzzleSized(b)
	dest := corner(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crucible.Search(g, grid2d.Pt(0, 0), dest); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Ultra measures the MinRun=4, MaxRun=10 crucible.
func BenchmarkSearch_Ultra(b *testing.B) {
	g := puzzleSized(b)
	dest := corner(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := crucible.Search(g, grid2d.Pt(0, 0), dest, crucible.WithMinRun(4), crucible.WithMaxRun(10)); err != nil {
			b.Fatal(err)
		}
	}
}
