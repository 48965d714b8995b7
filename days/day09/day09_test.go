package day09

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func TestPart1(t *testing.T) {
	got, err := Solver{}.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 114, got)
}

func TestPart2(t *testing.T) {
	got, err := Solver{}.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestExtrapolate(t *testing.T) {
	assert.Equal(t, 18, extrapolate([]int{0, 3, 6, 9, 12, 15}))
	assert.Equal(t, 68, extrapolate([]int{10, 13, 16, 21, 30, 45}))
	assert.Equal(t, 7, extrapolate([]int{7}))
	assert.Equal(t, -6, extrapolate([]int{-2, -4}))
}

func TestExtrapolate_KeepsInput(t *testing.T) {
	in := []int{1, 3, 6}
	extrapolate(in)
	assert.Equal(t, []int{1, 3, 6}, in)
}
