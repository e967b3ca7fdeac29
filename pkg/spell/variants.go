package spell

// Deletes returns every string obtainable from s by removing between 0 and
// maxDistance byte positions, deduplicated. The original string is always a
// member, and when maxDistance >= len(s) the empty string is too.
//
// Different deletion position sets can collapse into the same variant
// (removing either 'o' from "foo" yields "fo"), which is exactly the
// collision the index relies on: a query and a dictionary word match when
// they share any variant. Safe to call from any number of goroutines.
func Deletes(s string, maxDistance int) map[string]struct{} {
	variants := make(map[string]struct{})
	variants[s] = struct{}{}
	if maxDistance > 0 {
		collectDeletes(s, maxDistance, variants)
	}
	return variants
}

// collectDeletes expands one deletion level and recurses on the remaining
// budget. A variant produced by n deletions always has length len(s)-n, so
// a string already in the set was reached with the same remaining budget
// and its subtree can be skipped without losing deeper variants.
func collectDeletes(s string, budget int, variants map[string]struct{}) {
	if budget <= 0 || len(s) == 0 {
		return
	}
	for i := 0; i < len(s); i++ {
		del := s[:i] + s[i+1:]
		if _, seen := variants[del]; seen {
			continue
		}
		variants[del] = struct{}{}
		collectDeletes(del, budget-1, variants)
	}
}
