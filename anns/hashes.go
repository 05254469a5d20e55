package anns

import (
	"fmt"
	"math/rand"
)

// Hash is an abstract 1-bit hash function over binary vectors
type Hash interface {
	Digest(BinaryVector) uint64
}

// BitSamplingHash is locality sensitive with respect to Hamming distance:
// h(x) = x[i] for a fixed coordinate i, so two vectors at distance d
// collide with probability 1 - d/n
type BitSamplingHash struct {
	pos int
}

// NewBitSamplingHash returns the hash that reads coordinate pos
func NewBitSamplingHash(pos int) *BitSamplingHash {
	return &BitSamplingHash{pos: pos}
}

// Position returns the sampled coordinate
func (h *BitSamplingHash) Position() int {
	return h.pos
}

// Digest returns the bit of v at the sampled coordinate
func (h *BitSamplingHash) Digest(v BinaryVector) uint64 {
	return uint64(v.Bit(h.pos))
}

// SamplePositions draws k distinct coordinates of [0, n) uniformly at random
func SamplePositions(rng *rand.Rand, n, k int) ([]int, error) {

	if k < 0 || k > n {
		return nil, fmt.Errorf("%w: cannot sample %d distinct positions out of %d", ErrDegenerateParameters, k, n)
	}

	// partial Fisher-Yates; only the first k slots are shuffled
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k], nil
}
