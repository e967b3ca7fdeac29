package spell

// BoundedDistance computes the Damerau-Levenshtein distance between a and b
// with unit costs for insertion, deletion, substitution and adjacent
// transposition. It returns -1 as soon as the distance provably exceeds
// maxDistance, so callers filtering by a bound never pay for the full matrix.
//
// The transposition case matters here: the deletion index surfaces "ba" as a
// candidate for "ab" through the shared variants "a" and "b", and the plain
// Levenshtein distance of 2 would wrongly reject it at maxDistance 1.
func BoundedDistance(a, b string, maxDistance int) int {
	la, lb := len(a), len(b)

	if la-lb > maxDistance || lb-la > maxDistance {
		return -1
	}
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
	}
	for i := 0; i <= la; i++ {
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		rowMin := d[i][0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			v := min(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)

			// adjacent transposition
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				v = min(v, d[i-2][j-2]+1)
			}

			d[i][j] = v
			if v < rowMin {
				rowMin = v
			}
		}

		// every cell below this row only grows, bail out early
		if rowMin > maxDistance {
			return -1
		}
	}

	if d[la][lb] > maxDistance {
		return -1
	}
	return d[la][lb]
}
