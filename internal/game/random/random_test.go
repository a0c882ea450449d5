package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}

func TestBetweenBounds(t *testing.T) {
	src := New(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := Between(src, 12, 18)
		require.GreaterOrEqual(t, v, 12)
		require.LessOrEqual(t, v, 18)
		seen[v] = true
	}
	assert.Len(t, seen, 7, "every value in range should be drawn")
	assert.Equal(t, 5, Between(src, 5, 5))
	assert.Equal(t, 5, Between(src, 5, 3))
}

func TestWeightedSkipsZeroWeights(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		idx := Weighted(src, []float64{0, 1, 0})
		require.Equal(t, 1, idx)
	}
	assert.Equal(t, -1, Weighted(src, nil))
	assert.Equal(t, -1, Weighted(src, []float64{0, 0}))
}

func TestWeightedDistribution(t *testing.T) {
	src := New(99)
	counts := make([]int, 2)
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[Weighted(src, []float64{0.8, 0.2})]++
	}
	assert.InDelta(t, 0.8, float64(counts[0])/draws, 0.03)
}

func TestSampleDistinct(t *testing.T) {
	src := New(3)
	for i := 0; i < 200; i++ {
		picked := Sample(src, 8, 4)
		require.Len(t, picked, 4)
		seen := map[int]bool{}
		for _, idx := range picked {
			require.False(t, seen[idx], "index %d drawn twice", idx)
			require.True(t, idx >= 0 && idx < 8)
			seen[idx] = true
		}
	}
	assert.Len(t, Sample(src, 2, 5), 2)
	assert.Nil(t, Sample(src, 2, 0))
}

func TestPickAndChance(t *testing.T) {
	src := New(11)
	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Pick(src, items))
	}
	assert.False(t, Chance(src, 0))
	assert.True(t, Chance(src, 1))
}
