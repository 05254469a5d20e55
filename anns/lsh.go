package anns

import (
	"fmt"
	"math/rand"
)

// MaxGroupBits bounds the number of concatenated hashes so a digest fits a uint64
const MaxGroupBits = 64

// LSH is a set of locality sensitive hash functions
type LSH struct {
	Hset []Hash
}

// NewHammingLSH samples an LSH for Hamming distance with parameters:
// dim: dimensionality of vectors
// k: number of concatenated hash functions for amplification
//
// The k sampled coordinates are distinct.
func NewHammingLSH(rng *rand.Rand, dim int, k int) (*LSH, error) {

	if k < 1 || k > MaxGroupBits {
		return nil, fmt.Errorf("%w: group width %d outside [1, %d]", ErrDegenerateParameters, k, MaxGroupBits)
	}

	positions, err := SamplePositions(rng, dim, k)
	if err != nil {
		return nil, err
	}

	hashes := make([]Hash, k)
	for i, pos := range positions {
		hashes[i] = NewBitSamplingHash(pos)
	}

	return &LSH{
		Hset: hashes,
	}, nil
}

// GetHashSet returns the set of hashes comprising the LSH
func (lsh *LSH) GetHashSet() []Hash {
	return lsh.Hset
}

// EncodeHashes returns an encoding (single uint64) of at most 64 one-bit hash values.
// To encode concatenation, output SUM 2^i * h_i(x).
func EncodeHashes(values ...uint64) uint64 {
	var res uint64
	for i, d := range values {
		res |= (d & 1) << uint(i)
	}
	return res
}

// Digest outputs the encoded LSH digest of input v
func (lsh *LSH) Digest(v BinaryVector) uint64 {

	digests := make([]uint64, len(lsh.Hset))
	for i, h := range lsh.Hset {
		digests[i] = h.Digest(v)
	}

	return EncodeHashes(digests...)
}
