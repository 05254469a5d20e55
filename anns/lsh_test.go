package anns

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePositionsDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for k := 0; k <= 32; k++ {
		positions, err := SamplePositions(rng, 32, k)
		require.NoError(t, err)
		require.Len(t, positions, k)

		seen := make(map[int]bool)
		for _, p := range positions {
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, 32)
			assert.False(t, seen[p], "position %d sampled twice", p)
			seen[p] = true
		}
	}

	_, err := SamplePositions(rng, 4, 5)
	require.ErrorIs(t, err, ErrDegenerateParameters)
}

func TestSamplePositionsCoversAllCoordinates(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	counts := make([]int, 8)
	for i := 0; i < 2000; i++ {
		positions, err := SamplePositions(rng, 8, 2)
		require.NoError(t, err)
		for _, p := range positions {
			counts[p]++
		}
	}

	// each coordinate is expected 500 times
	for pos, c := range counts {
		assert.InDelta(t, 500, c, 100, "coordinate %d", pos)
	}
}

func TestSamplePositionsFullPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	positions, err := SamplePositions(rng, 10, 10)
	require.NoError(t, err)

	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}

func TestEncodeHashes(t *testing.T) {
	assert.Equal(t, uint64(0), EncodeHashes())
	assert.Equal(t, uint64(0b101), EncodeHashes(1, 0, 1))
	assert.Equal(t, uint64(0b110), EncodeHashes(0, 1, 1))
}

func TestBitSamplingHashDigest(t *testing.T) {
	v := mustVector(t, 0, 1, 1, 0)

	assert.Equal(t, uint64(0), NewBitSamplingHash(0).Digest(v))
	assert.Equal(t, uint64(1), NewBitSamplingHash(2).Digest(v))
	assert.Equal(t, 2, NewBitSamplingHash(2).Position())
}

func TestHammingLSHDigest(t *testing.T) {
	lsh := &LSH{Hset: []Hash{NewBitSamplingHash(3), NewBitSamplingHash(0)}}
	v := mustVector(t, 0, 1, 1, 1)

	assert.Equal(t, uint64(0b01), lsh.Digest(v))
	assert.Len(t, lsh.GetHashSet(), 2)
}

func TestNewHammingLSH(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	lsh, err := NewHammingLSH(rng, 16, 5)
	require.NoError(t, err)
	require.Len(t, lsh.Hset, 5)

	seen := make(map[int]bool)
	for _, h := range lsh.Hset {
		pos := h.(*BitSamplingHash).Position()
		assert.False(t, seen[pos])
		seen[pos] = true
	}

	_, err = NewHammingLSH(rng, 16, 0)
	require.ErrorIs(t, err, ErrDegenerateParameters)

	_, err = NewHammingLSH(rng, 16, 17)
	require.ErrorIs(t, err, ErrDegenerateParameters)

	_, err = NewHammingLSH(rng, 128, MaxGroupBits+1)
	require.ErrorIs(t, err, ErrDegenerateParameters)
}

func TestHammingLSHEqualVectorsCollide(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	data := randomVectors(rng, 1, 64)
	twin := NewBinaryVectorFromBools(toBools(data[0]))

	for i := 0; i < 50; i++ {
		lsh, err := NewHammingLSH(rng, 64, 12)
		require.NoError(t, err)
		assert.Equal(t, lsh.Digest(data[0]), lsh.Digest(twin))
	}
}

func toBools(v BinaryVector) []bool {
	out := make([]bool, v.Len())
	for i := range out {
		out[i] = v.Bit(i) == 1
	}
	return out
}
