package anns

import (
	"fmt"
	"math"
)

// LSHParams encapsulates the parameters of the LSH minimum distance search
type LSHParams struct {
	NumRounds  int `json:"num_rounds"`  // number of independent bucketing rounds
	GroupBits  int `json:"group_bits"`  // sampled coordinates per bucket key (0 = GroupWidth)
	FilterBits int `json:"filter_bits"` // coordinates a pair must agree on within a bucket (0 = FilterWidth)
	NumProcs   int `json:"num_procs"`   // rounds searched concurrently (<= 1 runs them sequentially)
}

// GroupWidth returns the bucket key width round(log2(m / log2(m))) for m
// vectors of length n, clamped to [1, min(n, MaxGroupBits)].
// For m < 2 the formula is undefined and the width is 1.
func GroupWidth(m, n int) int {
	k := 1
	if m >= 2 {
		lm := math.Log2(float64(m))
		k = int(math.Round(math.Log2(float64(m) / lm)))
	}
	return clamp(k, 1, min(n, MaxGroupBits))
}

// FilterWidth returns the in-bucket filter width round(log2(n)) for vectors
// of length n, clamped to [1, n]
func FilterWidth(n int) int {
	j := 1
	if n >= 1 {
		j = int(math.Round(math.Log2(float64(n))))
	}
	return clamp(j, 1, n)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// widths resolves the group and filter widths for m vectors of length n,
// validating explicit values
func (params *LSHParams) widths(m, n int) (int, int, error) {

	if n < 1 {
		return 0, 0, fmt.Errorf("%w: vector length %d", ErrDegenerateParameters, n)
	}

	k := params.GroupBits
	if k == 0 {
		k = GroupWidth(m, n)
	} else if k < 1 || k > min(n, MaxGroupBits) {
		return 0, 0, fmt.Errorf("%w: group width %d outside [1, %d]", ErrDegenerateParameters, k, min(n, MaxGroupBits))
	}

	j := params.FilterBits
	if j == 0 {
		j = FilterWidth(n)
	} else if j < 1 || j > n {
		return 0, 0, fmt.Errorf("%w: filter width %d outside [1, %d]", ErrDegenerateParameters, j, n)
	}

	return k, j, nil
}

// Validate checks the parameters that do not depend on the data
func (params *LSHParams) Validate() error {
	if params.NumRounds < 1 {
		return fmt.Errorf("%w: round count %d", ErrDegenerateParameters, params.NumRounds)
	}
	if params.GroupBits < 0 || params.FilterBits < 0 {
		return fmt.Errorf("%w: negative sample width", ErrDegenerateParameters)
	}
	return nil
}
