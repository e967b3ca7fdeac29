package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// word lists are plain text, one entry per line
var wordListExtensions = []string{".txt", ".tsv", ".dic"}

// ValidateWordList checks that a file looks like a readable word list
// before the loader commits to scanning it.
func ValidateWordList(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a word list", filename)
	}
	if fileInfo.Size() == 0 {
		log.Warnf("Word list %s is empty, index will match nothing", filename)
		return nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range wordListExtensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for a word list (expected: %v)",
			filename, ext, wordListExtensions)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buffer := make([]byte, 1024)
	if _, err := file.Read(buffer); err != nil {
		return fmt.Errorf("failed to read from word list %s: %w", filename, err)
	}

	log.Debugf("Word list %s validated (%d bytes)", filename, fileInfo.Size())
	return nil
}
