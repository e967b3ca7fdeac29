package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/spellserve/pkg/spell"
)

func writeWordList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing word list: %v", err)
	}
	return path
}

func TestLoadParsesWordsAndFrequencies(t *testing.T) {
	path := writeWordList(t, "tub 120\ntube 80\ntubes\n")

	entries, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := []spell.Entry{
		{Word: "tub", Frequency: 120},
		{Word: "tube", Frequency: 80},
		{Word: "tubes", Frequency: 1},
	}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(entries))
	}
	for i, want := range expected {
		if entries[i] != want {
			t.Errorf("Entry %d: expected %v, got %v", i, want, entries[i])
		}
	}
}

func TestLoadNormalizesAndSkipsNoise(t *testing.T) {
	path := writeWordList(t, "  Tub  \n\n# a comment\nTUBE 9\n")

	entries, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	expected := []spell.Entry{
		{Word: "tub", Frequency: 1},
		{Word: "tube", Frequency: 9},
	}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d: %v", len(expected), len(entries), entries)
	}
	for i, want := range expected {
		if entries[i] != want {
			t.Errorf("Entry %d: expected %v, got %v", i, want, entries[i])
		}
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := writeWordList(t, "good 5\nbad notanumber\nworse -3\ntoo many fields here\nfine\n")

	entries, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Malformed lines must not abort the load: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 surviving entries, got %d: %v", len(entries), entries)
	}
	if entries[0].Word != "good" || entries[1].Word != "fine" {
		t.Errorf("Unexpected surviving entries: %v", entries)
	}
}

func TestLoadRespectsWordLimit(t *testing.T) {
	path := writeWordList(t, "one\ntwo\nthree\nfour\n")

	entries, err := Load(path, 2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries with limit, got %d", len(entries))
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), 0); err == nil {
		t.Fatal("Expected error for missing word list")
	}
}

func TestLoadEmptyFileYieldsNoEntries(t *testing.T) {
	path := writeWordList(t, "")

	entries, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Empty word list is not an error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestValidateWordList(t *testing.T) {
	good := writeWordList(t, "tub\n")
	if err := ValidateWordList(good); err != nil {
		t.Errorf("Valid word list rejected: %v", err)
	}

	if err := ValidateWordList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Missing file must fail validation")
	}

	badExt := filepath.Join(t.TempDir(), "words.bin")
	if err := os.WriteFile(badExt, []byte("tub\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateWordList(badExt); err == nil {
		t.Error("Unknown extension must fail validation")
	}

	if err := ValidateWordList(t.TempDir()); err == nil {
		t.Error("Directory must fail validation")
	}
}
