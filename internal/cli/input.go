// Package cli handles cmd line input and suggestions for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, providing ranked
// corrections. It accepts flags to control behavior such as minimum and
// maximum query length, suggestion limits, and filtering options.
type InputHandler struct {
	suggester      spell.ISuggester
	minQueryLength int
	maxQueryLength int
	suggestLimit   int
	requestCount   int
	noFilter       bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(suggester spell.ISuggester, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		suggester:      suggester,
		minQueryLength: minLength,
		maxQueryLength: maxLength,
		suggestLimit:   limit,
		noFilter:       noFilter,
	}
}

// Start begins the interface loop.
// It waits for the index gate, then continuously prompts for input,
// reads a line from stdin, and passes the trimmed input to handleInput()
// for processing. Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("SpellServe CLI")
	log.Print("Waiting for index build...")
	<-h.suggester.Ready()
	log.Print("type a word and press Enter to see corrections (Ctrl+C to exit)")
	log.Print("':p <prefix>' lists dictionary words with that prefix")

	reader := bufio.NewReader(os.Stdin)
	for {
		log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput processes a single query. It validates the query's length
// and content, then asks the suggester for ranked corrections. Results
// are formatted and printed to the log.
func (h *InputHandler) handleInput(query string) {
	h.requestCount++

	if query == ":p" || strings.HasPrefix(query, ":p ") {
		h.handlePrefix(strings.TrimSpace(strings.TrimPrefix(query, ":p")))
		return
	}

	if len(query) < h.minQueryLength {
		log.Errorf("Query too short: %s", query)
		return
	}
	if len(query) > h.maxQueryLength {
		log.Errorf("Query too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidQuery(query) {
			log.Infof("No corrections for query: '%s' (filtered out)", query)
			return
		}
	} else {
		log.Debug("Input filtering disabled - accepting all queries")
	}

	start := time.Now()
	log.Debug("Processing request for", "query", query)

	suggestions, err := h.suggester.Suggest(query, h.suggestLimit)
	if err != nil {
		log.Errorf("Suggest failed: %v", err)
		return
	}

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(suggestions) == 0 {
		log.Warnf("No corrections found for: '%s'", query)
		return
	}

	if suggestions[0].Distance == 0 {
		log.Printf("'%s' is spelled correctly", query)
	}

	log.Printf("Found %d corrections for '%s':", len(suggestions), query)
	for i, s := range suggestions {
		fmtFreq := utils.FormatWithCommas(s.Frequency)
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		log.Printf("%2d. %-40s (dist: %d, freq: %8s)", i+1, clWord, s.Distance, fmtFreq)
	}
}

// wordLister is the optional dictionary browsing capability.
type wordLister interface {
	WordsWithPrefix(prefix string, limit int) ([]spell.Entry, error)
}

// handlePrefix lists dictionary words with the given prefix.
func (h *InputHandler) handlePrefix(prefix string) {
	lister, ok := h.suggester.(wordLister)
	if !ok {
		log.Error("Dictionary browsing not supported by this suggester")
		return
	}

	entries, err := lister.WordsWithPrefix(prefix, h.suggestLimit)
	if err != nil {
		log.Errorf("Listing words failed: %v", err)
		return
	}
	if len(entries) == 0 {
		log.Warnf("No dictionary words start with '%s'", prefix)
		return
	}

	log.Printf("%d dictionary words with prefix '%s':", len(entries), prefix)
	for i, e := range entries {
		log.Printf("%2d. %-24s (freq: %8s)", i+1, e.Word, utils.FormatWithCommas(e.Frequency))
	}
}
