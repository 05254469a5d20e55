package anns

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustVector(t *testing.T, bits ...uint8) BinaryVector {
	t.Helper()
	v, err := NewBinaryVector(bits)
	require.NoError(t, err)
	return v
}

func randomVectors(rng *rand.Rand, m, n int) []BinaryVector {
	data := make([]BinaryVector, m)
	for i := range data {
		bits := make([]bool, n)
		for j := range bits {
			bits[j] = rng.Intn(2) == 1
		}
		data[i] = NewBinaryVectorFromBools(bits)
	}
	return data
}
