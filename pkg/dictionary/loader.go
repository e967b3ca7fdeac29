// Package dictionary reads word-list sources for the spell engine.
//
// The source format is one entry per line: a word optionally followed by
// whitespace and an occurrence count. Lines are trimmed and lowercased;
// entries without a count default to frequency 1. A missing or unreadable
// file is a startup failure, a malformed line is not.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
)

// Load reads the word list at path into builder entries. maxWords caps
// the number of accepted entries (0 = all). Malformed lines are skipped
// with a warning and do not abort the load.
func Load(path string, maxWords int) ([]spell.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var entries []spell.Entry
	skipped := 0
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		if maxWords > 0 && len(entries) >= maxWords {
			log.Debugf("Word limit reached (%d), ignoring rest of %s", maxWords, path)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			log.Warnf("Skipping line %d of %s: %v", lineNum, path, err)
			skipped++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Loaded %d entries from %s (%d skipped)", len(entries), path, skipped)
	return entries, nil
}

// parseLine splits a line into word and optional frequency.
func parseLine(line string) (spell.Entry, error) {
	fields := strings.Fields(line)
	word := strings.ToLower(fields[0])

	freq := 1
	if len(fields) > 1 {
		parsed, err := strconv.Atoi(fields[1])
		if err != nil {
			return spell.Entry{}, fmt.Errorf("bad frequency %q for word %q", fields[1], word)
		}
		if parsed < 0 {
			return spell.Entry{}, fmt.Errorf("negative frequency %d for word %q", parsed, word)
		}
		if parsed > 0 {
			freq = parsed
		}
	}
	if len(fields) > 2 {
		return spell.Entry{}, fmt.Errorf("too many fields in %q", line)
	}

	return spell.Entry{Word: word, Frequency: freq}, nil
}
