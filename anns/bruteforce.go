package anns

// ExactComparisons is the number of distance evaluations brute force needs for m vectors
func ExactComparisons(m int) int64 {
	if m < 2 {
		return 0
	}
	return int64(m) * int64(m-1) / 2
}

// BruteForceMinPair enumerates every unordered pair and returns the closest one.
//
// Ties are broken by collection order: the first minimal pair encountered
// (smallest First, then smallest Second) wins. Which pair that is among equal
// distances carries no meaning.
//
// A collection with a single vector yields NoPair.
func BruteForceMinPair(data []BinaryVector) (MinPair, error) {
	return BruteForceMinPairWith(data, HammingDistance)
}

// BruteForceMinPairWith is BruteForceMinPair with a caller supplied distance function
func BruteForceMinPairWith(data []BinaryVector, distance DistanceFunction) (MinPair, error) {

	if _, err := checkCollection(data); err != nil {
		return NoPair, err
	}

	best := NoPair
	for i := 0; i < len(data); i++ {
		for j := i + 1; j < len(data); j++ {
			dist, err := distance(data[i], data[j])
			if err != nil {
				return NoPair, err
			}

			if !best.Found() || dist < best.Distance {
				best = newMinPair(i, j, dist)
			}

			// found a perfect match
			if dist == 0 {
				return best, nil
			}
		}
	}

	return best, nil
}
