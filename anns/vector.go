package anns

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BinaryVector is an immutable fixed-length sequence of bits
type BinaryVector struct {
	bits *bitset.BitSet
	n    int
}

// NewBinaryVector builds a vector from a slice of 0/1 values
func NewBinaryVector(values []uint8) (BinaryVector, error) {

	bits := bitset.New(uint(len(values)))
	for i, b := range values {
		switch b {
		case 0:
		case 1:
			bits.Set(uint(i))
		default:
			return BinaryVector{}, fmt.Errorf("%w: value %d at position %d is not a bit", ErrInvalidInput, b, i)
		}
	}

	return BinaryVector{bits: bits, n: len(values)}, nil
}

// NewBinaryVectorFromBools builds a vector where true encodes a 1 bit
func NewBinaryVectorFromBools(values []bool) BinaryVector {
	bits := bitset.New(uint(len(values)))
	for i, b := range values {
		if b {
			bits.Set(uint(i))
		}
	}
	return BinaryVector{bits: bits, n: len(values)}
}

// Len returns the number of bits in v
func (v BinaryVector) Len() int {
	return v.n
}

// Bit returns the value (0 or 1) at position i
func (v BinaryVector) Bit(i int) uint8 {
	if v.bits != nil && v.bits.Test(uint(i)) {
		return 1
	}
	return 0
}

// Bits returns a copy of v as a slice of 0/1 values
func (v BinaryVector) Bits() []uint8 {
	out := make([]uint8, v.n)
	for i := range out {
		out[i] = v.Bit(i)
	}
	return out
}

// Equal reports whether v and w have the same length and bits
func (v BinaryVector) Equal(w BinaryVector) bool {
	if v.n != w.n {
		return false
	}
	if v.n == 0 {
		return true
	}
	return v.bits.Equal(w.bits)
}

// Project returns the sub-vector of v at the given positions, in order.
// Positions must lie in [0, v.Len()).
func (v BinaryVector) Project(positions []int) BinaryVector {
	bits := bitset.New(uint(len(positions)))
	for i, p := range positions {
		if v.bits.Test(uint(p)) {
			bits.Set(uint(i))
		}
	}
	return BinaryVector{bits: bits, n: len(positions)}
}

func (v BinaryVector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		sb.WriteByte('0' + v.Bit(i))
	}
	return sb.String()
}

// HammingDistance returns the number of positions at which a and b differ
func HammingDistance(a, b BinaryVector) (int, error) {
	if a.n != b.n {
		return 0, fmt.Errorf("%w: vector lengths don't match: %d vs %d", ErrInvalidInput, a.n, b.n)
	}
	if a.n == 0 {
		return 0, nil
	}
	return int(a.bits.SymmetricDifferenceCardinality(b.bits)), nil
}
