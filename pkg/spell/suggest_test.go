package spell

import (
	"context"
	"reflect"
	"testing"
)

// from the classic walkthrough: "tubr" shares deletion variants with all
// four words, and the exact distance re-ranks them
func TestSuggestRanking(t *testing.T) {
	entries := []Entry{
		{Word: "tub", Frequency: 1},
		{Word: "tube", Frequency: 1},
		{Word: "tubes", Frequency: 1},
		{Word: "tuber", Frequency: 1},
	}
	checker := buildChecker(t, entries, 2, 0)

	suggestions, err := checker.Suggest("tubr", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	expected := []Suggestion{
		{Word: "tub", Distance: 1, Frequency: 1},
		{Word: "tube", Distance: 1, Frequency: 1},
		{Word: "tuber", Distance: 1, Frequency: 1},
		{Word: "tubes", Distance: 2, Frequency: 1},
	}
	if !reflect.DeepEqual(suggestions, expected) {
		t.Errorf("Expected %v, got %v", expected, suggestions)
	}
}

func TestSuggestExactMatchFirst(t *testing.T) {
	entries := []Entry{
		{Word: "tube", Frequency: 10},
		{Word: "tub", Frequency: 500},
	}
	checker := buildChecker(t, entries, 2, 0)

	suggestions, err := checker.Suggest("tube", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) == 0 || suggestions[0].Word != "tube" || suggestions[0].Distance != 0 {
		t.Fatalf("Exact match must rank first regardless of frequency, got %v", suggestions)
	}
}

func TestEveryDictionaryWordSuggestsItself(t *testing.T) {
	entries := []Entry{
		{Word: "alpha", Frequency: 2},
		{Word: "beta", Frequency: 3},
		{Word: "gamma", Frequency: 4},
		{Word: "a", Frequency: 1},
	}
	for _, k := range []int{0, 1, 2} {
		checker := buildChecker(t, entries, k, 2)
		for _, entry := range entries {
			suggestions, err := checker.Suggest(entry.Word, 0)
			if err != nil {
				t.Fatalf("Suggest(%q): %v", entry.Word, err)
			}
			if len(suggestions) == 0 || suggestions[0].Word != entry.Word || suggestions[0].Distance != 0 {
				t.Errorf("k=%d: %q should suggest itself at distance 0, got %v", k, entry.Word, suggestions)
			}
		}
	}
}

func TestSuggestNoOverlap(t *testing.T) {
	checker := buildChecker(t, []Entry{{Word: "cat", Frequency: 1}}, 1, 0)

	suggestions, err := checker.Suggest("dog", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("Expected no suggestions, got %v", suggestions)
	}
}

// "ba" is distance 2 for plain Levenshtein but 1 with transpositions;
// the index surfaces it through the shared single-deletion variants
func TestSuggestTransposition(t *testing.T) {
	entries := []Entry{
		{Word: "ab", Frequency: 1},
		{Word: "ba", Frequency: 1},
	}
	checker := buildChecker(t, entries, 1, 0)

	suggestions, err := checker.Suggest("ab", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	expected := []Suggestion{
		{Word: "ab", Distance: 0, Frequency: 1},
		{Word: "ba", Distance: 1, Frequency: 1},
	}
	if !reflect.DeepEqual(suggestions, expected) {
		t.Errorf("Expected %v, got %v", expected, suggestions)
	}
}

func TestSuggestTieBreaks(t *testing.T) {
	entries := []Entry{
		{Word: "mole", Frequency: 5},
		{Word: "male", Frequency: 90},
		{Word: "mile", Frequency: 90},
		{Word: "tale", Frequency: 40},
	}
	checker := buildChecker(t, entries, 1, 0)

	suggestions, err := checker.Suggest("mble", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	// all distance 1: frequency desc, then lexical for the 90/90 tie
	expected := []Suggestion{
		{Word: "male", Distance: 1, Frequency: 90},
		{Word: "mile", Distance: 1, Frequency: 90},
		{Word: "mole", Distance: 1, Frequency: 5},
	}
	if !reflect.DeepEqual(suggestions, expected) {
		t.Errorf("Expected %v, got %v", expected, suggestions)
	}
}

func TestSuggestLimit(t *testing.T) {
	entries := []Entry{
		{Word: "tub", Frequency: 1},
		{Word: "tube", Frequency: 1},
		{Word: "tubes", Frequency: 1},
		{Word: "tuber", Frequency: 1},
	}
	checker := buildChecker(t, entries, 2, 0)

	suggestions, err := checker.Suggest("tubr", 2)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("Expected 2 suggestions with limit, got %d", len(suggestions))
	}
	if suggestions[0].Word != "tub" || suggestions[1].Word != "tube" {
		t.Errorf("Limit must keep the top-ranked entries, got %v", suggestions)
	}
}

func TestSuggestIdempotent(t *testing.T) {
	entries := []Entry{
		{Word: "there", Frequency: 100},
		{Word: "their", Frequency: 95},
		{Word: "the", Frequency: 200},
	}
	checker := buildChecker(t, entries, 2, 0)

	first, err := checker.Suggest("ther", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	second, err := checker.Suggest("ther", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated lookups differ: %v vs %v", first, second)
	}
}

func TestSuggestNormalizesQuery(t *testing.T) {
	checker := buildChecker(t, []Entry{{Word: "tube", Frequency: 1}}, 1, 0)

	suggestions, err := checker.Suggest("  Tube\n", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) == 0 || suggestions[0].Word != "tube" || suggestions[0].Distance != 0 {
		t.Errorf("Query should be trimmed and lowercased, got %v", suggestions)
	}
}

func TestSuggestWaitsForBuild(t *testing.T) {
	checker, err := NewChecker(1, 0)
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}

	done := make(chan []Suggestion)
	go func() {
		suggestions, err := checker.Suggest("cat", 0)
		if err != nil {
			t.Errorf("Suggest: %v", err)
		}
		done <- suggestions
	}()

	if err := checker.Build(context.Background(), []Entry{{Word: "cat", Frequency: 1}}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	suggestions := <-done
	if len(suggestions) == 0 || suggestions[0].Word != "cat" {
		t.Errorf("Gated query should see the completed index, got %v", suggestions)
	}
}

func TestWordsWithPrefix(t *testing.T) {
	entries := []Entry{
		{Word: "tub", Frequency: 120},
		{Word: "tuber", Frequency: 4},
		{Word: "tube", Frequency: 80},
		{Word: "male", Frequency: 9},
	}
	checker := buildChecker(t, entries, 1, 0)

	words, err := checker.WordsWithPrefix("tub", 0)
	if err != nil {
		t.Fatalf("WordsWithPrefix: %v", err)
	}
	expected := []Entry{
		{Word: "tub", Frequency: 120},
		{Word: "tube", Frequency: 80},
		{Word: "tuber", Frequency: 4},
	}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Expected %v, got %v", expected, words)
	}

	limited, err := checker.WordsWithPrefix("TUB ", 2)
	if err != nil {
		t.Fatalf("WordsWithPrefix: %v", err)
	}
	if len(limited) != 2 || limited[0].Word != "tub" || limited[1].Word != "tube" {
		t.Errorf("Limit must keep the alphabetically first entries, got %v", limited)
	}

	none, err := checker.WordsWithPrefix("zz", 0)
	if err != nil {
		t.Fatalf("WordsWithPrefix: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no matches, got %v", none)
	}
}

func BenchmarkSuggest(b *testing.B) {
	var entries []Entry
	words := []string{"there", "their", "the", "these", "then", "them", "theme", "therefore"}
	for i, w := range words {
		entries = append(entries, Entry{Word: w, Frequency: (i + 1) * 10})
	}
	checker, _ := NewChecker(2, 0)
	if err := checker.Build(context.Background(), entries); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		checker.Suggest("ther", 5)
	}
}
