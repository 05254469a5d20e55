package anns

import "math"

// agreeProbability is the chance that k distinct coordinates drawn from n
// all avoid the d coordinates where a pair differs: C(n-d, k) / C(n, k)
func agreeProbability(n, d, k int) float64 {
	if k > n-d {
		return 0
	}
	p := 1.0
	for i := 0; i < k; i++ {
		p *= float64(n-d-i) / float64(n-i)
	}
	return p
}

// CatchProbability returns the probability that a fixed pair at Hamming
// distance d, out of vectors of length n, shares a bucket (group width k) and
// passes the filter (filter width j) in at least one of the given rounds.
//
// When that pair is a closest pair this is a lower bound on the chance that
// LSHMinPair returns the exact minimum distance.
func CatchProbability(n, d, k, j, rounds int) float64 {
	if n < 1 || d < 0 || d > n || rounds < 1 {
		return 0
	}
	p := agreeProbability(n, d, k) * agreeProbability(n, d, j)
	return 1 - math.Pow(1-p, float64(rounds))
}
