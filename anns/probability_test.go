package anns

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatchProbability(t *testing.T) {
	// identical vectors are always caught
	assert.InDelta(t, 1.0, CatchProbability(32, 0, 4, 5, 1), 1e-12)

	// d=1, n=4, k=1, j=1: each sample avoids the differing bit with p=3/4
	assert.InDelta(t, 9.0/16.0, CatchProbability(4, 1, 1, 1, 1), 1e-12)
	assert.InDelta(t, 1-(7.0/16.0)*(7.0/16.0), CatchProbability(4, 1, 1, 1, 2), 1e-12)

	// more differing bits than free coordinates
	assert.Zero(t, CatchProbability(4, 3, 2, 1, 10))

	assert.Zero(t, CatchProbability(4, 1, 1, 1, 0))
	assert.Zero(t, CatchProbability(0, 0, 1, 1, 1))
}

func TestCatchProbabilityMonotoneInRounds(t *testing.T) {
	prev := 0.0
	for r := 1; r <= 20; r++ {
		p := CatchProbability(32, 4, 4, 5, r)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

func TestCatchProbabilityMatchesSimulation(t *testing.T) {
	rng := rand.New(rand.NewSource(31))

	a := mustVector(t, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	b := mustVector(t, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	data := []BinaryVector{a, b}
	params := &LSHParams{NumRounds: 1, GroupBits: 3, FilterBits: 4}

	caught := 0
	const trials = 4000
	for i := 0; i < trials; i++ {
		res, _, err := LSHMinPair(rng, data, params)
		require.NoError(t, err)
		if res.Found() {
			caught++
		}
	}

	want := CatchProbability(16, 2, 3, 4, 1)
	assert.InDelta(t, want, float64(caught)/trials, 0.05)
}
