package anns

import "fmt"

// DistanceFunction returns the distance between p and q according to a distance metric
type DistanceFunction func(p, q BinaryVector) (int, error)

// MinPair is the outcome of a minimum distance search: the indices of the
// closest pair found and their distance. The zero value means no pair was
// found (e.g. a singleton collection, or no pair survived LSH filtering).
type MinPair struct {
	First    int // index of the first vector (First < Second)
	Second   int // index of the second vector
	Distance int // Hamming distance between the two vectors
	found    bool
}

// NoPair is the result of a search that compared no pair
var NoPair = MinPair{}

func newMinPair(i, j, dist int) MinPair {
	return MinPair{First: i, Second: j, Distance: dist, found: true}
}

// Found reports whether p holds an actual pair
func (p MinPair) Found() bool {
	return p.found
}

// Less reports whether p is a strictly better result than q.
// Any found pair beats NoPair; two found pairs compare by distance.
func (p MinPair) Less(q MinPair) bool {
	if !p.found {
		return false
	}
	if !q.found {
		return true
	}
	return p.Distance < q.Distance
}

// Vectors returns the two vectors of the pair from the collection it was found in
func (p MinPair) Vectors(data []BinaryVector) (BinaryVector, BinaryVector, bool) {
	if !p.found || p.Second >= len(data) {
		return BinaryVector{}, BinaryVector{}, false
	}
	return data[p.First], data[p.Second], true
}

func (p MinPair) String() string {
	if !p.found {
		return "no pair"
	}
	return fmt.Sprintf("(%d, %d) distance %d", p.First, p.Second, p.Distance)
}

// checkCollection verifies data is non-empty and all vectors share a length,
// returning that length
func checkCollection(data []BinaryVector) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty vector collection", ErrDegenerateParameters)
	}

	n := data[0].Len()
	for i, v := range data {
		if v.Len() != n {
			return 0, fmt.Errorf("%w: vector %d has length %d, expected %d", ErrInvalidInput, i, v.Len(), n)
		}
	}

	return n, nil
}
