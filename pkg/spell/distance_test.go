package spell

import (
	"fmt"
	"testing"
)

func TestBoundedDistance(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"tub", "tub", 0},
		{"tubr", "tub", 1},
		{"tubr", "tube", 1},
		{"tubr", "tuber", 1},
		{"tubr", "tubes", 2},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"book", "back", 2},
		{"book", "books", 1},
		{"hello", "hallo", 1},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := BoundedDistance(tc.a, tc.b, len(tc.a)+len(tc.b))
			if dist != tc.expected {
				t.Errorf("Expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

// adjacent transposition must count as one edit, not two
func TestBoundedDistanceTransposition(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"ab", "ba", 1},
		{"appel", "apple", 1},
		{"univeristy", "university", 1},
		{"abcd", "badc", 2},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := BoundedDistance(tc.a, tc.b, 4)
			if dist != tc.expected {
				t.Errorf("Expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

func TestBoundedDistanceEarlyExit(t *testing.T) {
	testCases := []struct {
		a           string
		b           string
		maxDistance int
	}{
		{"kitten", "sitting", 2},
		{"short", "muchlongerword", 3},
		{"abc", "xyz", 2},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			if dist := BoundedDistance(tc.a, tc.b, tc.maxDistance); dist != -1 {
				t.Errorf("Expected -1 beyond bound %d, got %d", tc.maxDistance, dist)
			}
		})
	}
}

func TestBoundedDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"tubr", "tubes"},
		{"kitten", "sitting"},
		{"ab", "ba"},
	}
	for _, p := range pairs {
		d1 := BoundedDistance(p[0], p[1], 10)
		d2 := BoundedDistance(p[1], p[0], 10)
		if d1 != d2 {
			t.Errorf("Distance not symmetric for %q/%q: %d vs %d", p[0], p[1], d1, d2)
		}
	}
}

func BenchmarkBoundedDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BoundedDistance("congratilations", "congratulations", 2)
	}
}
