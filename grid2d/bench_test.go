package grid2d_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2023/grid2d"
)

func randomDigits(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParseDigits measures parsing a 141×141 puzzle-sized grid.
func BenchmarkParseDigits(b *testing.B) {
	text := randomDigits(141, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid2d.ParseDigits(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNeighbor measures bounds-checked stepping across the grid.
func BenchmarkNeighbor(b *testing.B) {
	g, err := grid2d.ParseDigits(randomDigits(141, 7))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := grid2d.Pt(i%g.Width, (i/g.Width)%g.Height)
		for _, d := range grid2d.Bearings {
			_, _ = g.Neighbor(p, d)
		}
	}
}
