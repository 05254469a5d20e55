package anns

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Table stores the hash buckets of one round
type Table struct {
	Buckets map[uint64][]int // vector indices per LSH digest
	order   []uint64         // digests in order of first appearance
}

// BuildTable hashes every vector of data into a bucket of a new table
func BuildTable(data []BinaryVector, lsh *LSH) *Table {

	table := &Table{
		Buckets: make(map[uint64][]int),
	}

	for j, point := range data {
		digest := lsh.Digest(point)

		if _, ok := table.Buckets[digest]; !ok {
			table.order = append(table.order, digest)
		}

		// add the value to the bucket
		table.Buckets[digest] = append(table.Buckets[digest], j)
	}

	return table
}

// Groups returns the non-empty buckets ordered by their first member.
// Keys are dropped; only the partition is observable.
func (t *Table) Groups() [][]int {
	groups := make([][]int, len(t.order))
	for i, digest := range t.order {
		groups[i] = t.Buckets[digest]
	}
	return groups
}

// NumBuckets returns the number of non-empty buckets
func (t *Table) NumBuckets() int {
	return len(t.Buckets)
}

// MaxBucketSize returns the size of the largest bucket
func (t *Table) MaxBucketSize() int {
	maxBucketSize := 0
	for _, v := range t.Buckets {
		if maxBucketSize < len(v) {
			maxBucketSize = len(v)
		}
	}
	return maxBucketSize
}

// Bucketize samples k coordinates and partitions data into groups of vectors
// that agree on all of them. Every index of data lands in exactly one group.
func Bucketize(rng *rand.Rand, data []BinaryVector, k int) ([][]int, error) {

	n, err := checkCollection(data)
	if err != nil {
		return nil, err
	}
	if k > n {
		return nil, fmt.Errorf("%w: group width %d exceeds vector length %d", ErrDegenerateParameters, k, n)
	}

	lsh, err := NewHammingLSH(rng, n, k)
	if err != nil {
		return nil, err
	}

	return BuildTable(data, lsh).Groups(), nil
}

// FilteredMinPair finds the closest pair of a group among the pairs whose
// vectors agree on every filter coordinate. It also returns how many full
// distances were computed. NoPair is returned when no pair qualifies.
func FilteredMinPair(data []BinaryVector, group []int, filter []int) (MinPair, int, error) {

	if len(group) < 2 {
		return NoPair, 0, nil
	}

	keys := make([]BinaryVector, len(group))
	for i, idx := range group {
		keys[i] = data[idx].Project(filter)
	}

	best := NoPair
	comparisons := 0
	for a := 0; a < len(group); a++ {
		for b := a + 1; b < len(group); b++ {
			if !keys[a].Equal(keys[b]) {
				continue
			}

			i, j := group[a], group[b]
			dist, err := HammingDistance(data[i], data[j])
			if err != nil {
				return NoPair, comparisons, err
			}
			comparisons++

			if !best.Found() || dist < best.Distance {
				best = newMinPair(i, j, dist)
			}
		}
	}

	return best, comparisons, nil
}

// RoundStats describes the work done by one LSH round
type RoundStats struct {
	Round         int     `json:"round"`
	NumBuckets    int     `json:"num_buckets"`
	MaxBucketSize int     `json:"max_bucket_size"`
	Comparisons   int     `json:"comparisons"`
	Best          MinPair `json:"-"`
}

// SearchStats aggregates the rounds of one LSHMinPair call
type SearchStats struct {
	GroupBits   int          `json:"group_bits"`
	FilterBits  int          `json:"filter_bits"`
	Comparisons int64        `json:"comparisons"`
	Rounds      []RoundStats `json:"rounds"`
}

// searchRound buckets data on a fresh key sample, draws the round's filter
// sample and keeps the best qualifying pair over all buckets
func searchRound(rng *rand.Rand, data []BinaryVector, n, k, j int) (MinPair, RoundStats, error) {

	stats := RoundStats{}

	lsh, err := NewHammingLSH(rng, n, k)
	if err != nil {
		return NoPair, stats, err
	}
	table := BuildTable(data, lsh)
	stats.NumBuckets = table.NumBuckets()
	stats.MaxBucketSize = table.MaxBucketSize()

	filter, err := SamplePositions(rng, n, j)
	if err != nil {
		return NoPair, stats, err
	}

	best := NoPair
	for _, group := range table.Groups() {
		res, comparisons, err := FilteredMinPair(data, group, filter)
		if err != nil {
			return NoPair, stats, err
		}
		stats.Comparisons += comparisons

		if res.Less(best) {
			best = res
		}
	}

	stats.Best = best
	return best, stats, nil
}

// LSHMinPair approximates the closest pair of data with params.NumRounds
// independent bit-sampling rounds and returns the best pair over all rounds.
//
// The result never has a smaller distance than BruteForceMinPair, since every
// pair it compares is also compared by brute force. Round seeds are drawn from
// rng up front, so for a fixed seed the result does not depend on NumProcs and
// adding rounds can only lower the distance.
func LSHMinPair(rng *rand.Rand, data []BinaryVector, params *LSHParams) (MinPair, *SearchStats, error) {

	if err := params.Validate(); err != nil {
		return NoPair, nil, err
	}

	n, err := checkCollection(data)
	if err != nil {
		return NoPair, nil, err
	}

	k, j, err := params.widths(len(data), n)
	if err != nil {
		return NoPair, nil, err
	}

	stats := &SearchStats{
		GroupBits:  k,
		FilterBits: j,
		Rounds:     make([]RoundStats, params.NumRounds),
	}

	if len(data) < 2 {
		return NoPair, stats, nil
	}

	seeds := make([]int64, params.NumRounds)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make([]MinPair, params.NumRounds)

	var g errgroup.Group
	g.SetLimit(max(params.NumProcs, 1))
	for i := range seeds {
		i := i
		g.Go(func() error {
			roundRng := rand.New(rand.NewSource(seeds[i]))
			res, roundStats, err := searchRound(roundRng, data, n, k, j)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			roundStats.Round = i
			results[i] = res
			stats.Rounds[i] = roundStats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return NoPair, nil, err
	}

	// reduce in round order so ties resolve the same way for any NumProcs
	best := NoPair
	for i, res := range results {
		stats.Comparisons += int64(stats.Rounds[i].Comparisons)
		if res.Less(best) {
			best = res
		}
	}

	return best, stats, nil
}
