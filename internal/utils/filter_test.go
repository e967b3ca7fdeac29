package utils

import "testing"

func TestIsValidWord(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"tub", true},
		{"Tube", true},
		{"naïve", true},
		{"", false},
		{"two words", false},
		{"word2vec", false},
		{"user-name", false},
		{"123", false},
	}

	for _, tc := range testCases {
		if got := IsValidWord(tc.input); got != tc.valid {
			t.Errorf("IsValidWord(%q) = %v, want %v", tc.input, got, tc.valid)
		}
	}
}

func TestIsValidQuery(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"hello", true},
		{"utf8", true},
		{"", false},
		{"12345", false},
		{"email@example", false},
		{"dddd", false},
		{"aa", true}, // too short to call repetitive
	}

	for _, tc := range testCases {
		if got := IsValidQuery(tc.input); got != tc.valid {
			t.Errorf("IsValidQuery(%q) = %v, want %v", tc.input, got, tc.valid)
		}
	}
}

func TestIsRepetitive(t *testing.T) {
	if !IsRepetitive("wwww") {
		t.Error("Expected wwww to be repetitive")
	}
	if IsRepetitive("www.site") {
		t.Error("Mixed string is not repetitive")
	}
	if IsRepetitive("ab") {
		t.Error("Two chars are never repetitive")
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.n); got != tc.want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
