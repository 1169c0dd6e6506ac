package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmaze/rng"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := rng.New(42), rng.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(7), rng.ResolveSeed(7))
	assert.NotZero(t, rng.ResolveSeed(0))

	_, seed := rng.NewTimeSeeded()
	assert.NotZero(t, seed)
}

func TestBetween_Inclusive(t *testing.T) {
	r := rng.New(1)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := rng.Between(r, 1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestShuffleSlice_Permutes(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	rng.ShuffleSlice(rng.New(3), s)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, s)
}
