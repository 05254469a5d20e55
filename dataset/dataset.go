// Package dataset generates random binary vector collections for the
// minimum distance searches.
package dataset

import (
	"fmt"
	"math/rand"

	"github.com/sachaservan/hamminglsh/anns"
)

// Uniform draws every bit of every vector independently with probability 1/2
type Uniform struct{}

// Generate returns num vectors of length dim
func (Uniform) Generate(rng *rand.Rand, num, dim int) ([]anns.BinaryVector, error) {
	if num < 0 || dim < 0 {
		return nil, fmt.Errorf("%w: cannot generate %d vectors of length %d", anns.ErrDegenerateParameters, num, dim)
	}
	return GenerateRandomVectors(rng, num, dim), nil
}

// GenerateRandomVectors generates num uniformly random vectors of length dim
func GenerateRandomVectors(rng *rand.Rand, num, dim int) []anns.BinaryVector {

	values := make([]anns.BinaryVector, num)
	bits := make([]bool, dim)

	for i := range values {
		for j := range bits {
			bits[j] = rng.Intn(2) == 1
		}
		values[i] = anns.NewBinaryVectorFromBools(bits)
	}

	return values
}

// Planted generates uniform vectors and then replaces one of them with a
// copy of another at exactly Distance flipped coordinates. The planted pair
// bounds the minimum distance of the collection from above.
type Planted struct {
	Distance int
}

// Generate returns num vectors of length dim with a planted pair
func (p Planted) Generate(rng *rand.Rand, num, dim int) ([]anns.BinaryVector, error) {

	if num < 2 {
		return nil, fmt.Errorf("%w: planting a pair needs at least 2 vectors, got %d", anns.ErrDegenerateParameters, num)
	}
	if p.Distance < 0 || p.Distance > dim {
		return nil, fmt.Errorf("%w: planted distance %d outside [0, %d]", anns.ErrDegenerateParameters, p.Distance, dim)
	}

	values := GenerateRandomVectors(rng, num, dim)

	// plant the neighbor at a random position other than the anchor
	anchor := rng.Intn(num)
	target := rng.Intn(num - 1)
	if target >= anchor {
		target++
	}

	neighbor, err := PerturbVector(rng, values[anchor], p.Distance)
	if err != nil {
		return nil, err
	}
	values[target] = neighbor

	return values, nil
}

// PerturbVector returns a copy of v with exactly dist distinct coordinates flipped
func PerturbVector(rng *rand.Rand, v anns.BinaryVector, dist int) (anns.BinaryVector, error) {

	coords, err := anns.SamplePositions(rng, v.Len(), dist)
	if err != nil {
		return anns.BinaryVector{}, err
	}

	bits := v.Bits()
	for _, coord := range coords {
		bits[coord] = 1 - bits[coord] // flip the bit
	}

	return anns.NewBinaryVector(bits)
}
