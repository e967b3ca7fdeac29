package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spelling suggestions
type Server struct {
	suggester    spell.ISuggester
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	log          *log.Logger
	requestCount int
}

// NewServer creates a new suggestion server using stdin/stdout for IPC
func NewServer(suggester spell.ISuggester, cfg *config.Config) *Server {
	return &Server{
		suggester: suggester,
		config:    cfg,
		decoder:   msgpack.NewDecoder(os.Stdin),
		encoder:   msgpack.NewEncoder(os.Stdout),
		log:       logger.New("ipc"),
	}
}

// Start waits for the index gate, signals readiness and then processes
// requests from stdin until EOF.
func (s *Server) Start() error {
	s.log.Debug("Waiting for index build")
	<-s.suggester.Ready()

	// verify the gate opened in the usable state
	if _, err := s.suggester.Suggest("", 1); err != nil {
		return fmt.Errorf("cannot serve: %w", err)
	}

	s.sendResponse(StatusResponse{Status: "ready"})
	s.log.Debug("Serving requests")

	for {
		var raw map[string]any
		if err := s.decoder.Decode(&raw); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Reading from stdin: %v", err)
			return err
		}
		s.handleRequest(raw)
	}
}

// handleRequest dispatches a decoded message on its shape: status ops
// carry an "action" field, suggestion requests carry a query.
func (s *Server) handleRequest(raw map[string]any) {
	s.requestCount++
	if s.requestCount%100 == 0 {
		s.log.Debugf("Processed %d requests", s.requestCount)
	}
	id, _ := raw["id"].(string)

	if action, ok := raw["action"].(string); ok {
		s.handleStatus(id, action)
		return
	}

	query, ok := raw["q"].(string)
	if !ok {
		s.sendError(id, "Missing 'q' parameter", 400)
		return
	}
	s.handleSuggest(id, query, asInt(raw["l"]))
}

func (s *Server) handleStatus(id, action string) {
	switch action {
	case "get_stats":
		s.sendResponse(StatusResponse{
			ID:     id,
			Status: "ok",
			Stats:  s.suggester.Stats(),
		})
	default:
		s.sendResponse(StatusResponse{
			ID:     id,
			Status: "error",
			Error:  fmt.Sprintf("unknown action: %s", action),
		})
	}
}

// handleSuggest processes a suggestion request. It validates the query
// against the configured length bounds, asks the suggester for ranked
// corrections and replies with timing info. An empty result is a normal
// response with count 0, not an error.
func (s *Server) handleSuggest(id, query string, limit int) {
	spellCfg := s.config.Spell

	if len(query) < spellCfg.MinQuery {
		s.sendError(id, fmt.Sprintf("Query shorter than %d characters", spellCfg.MinQuery), 400)
		return
	}
	if len(query) > spellCfg.MaxQuery {
		s.sendError(id, fmt.Sprintf("Query exceeds maximum length of %d characters", spellCfg.MaxQuery), 400)
		return
	}

	if limit <= 0 || limit > spellCfg.MaxLimit {
		limit = spellCfg.MaxLimit
	}

	start := time.Now()
	suggestions, err := s.suggester.Suggest(query, limit)
	elapsed := time.Since(start)
	if err != nil {
		s.log.Errorf("Suggest failed for %q: %v", query, err)
		s.sendError(id, "Index unavailable", 503)
		return
	}

	results := make([]SuggestResult, len(suggestions))
	for i, sug := range suggestions {
		results[i] = SuggestResult{
			Word:      sug.Word,
			Distance:  sug.Distance,
			Frequency: sug.Frequency,
		}
	}

	s.sendResponse(SuggestResponse{
		ID:          id,
		Suggestions: results,
		Count:       len(results),
		TimeTaken:   elapsed.Microseconds(),
	})
	s.log.Debugf("Request %s: %d suggestions for %q in %v", id, len(results), query, elapsed)
}

// sendResponse msgpack-encodes the response onto stdout.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("Request %s rejected: %s", id, message)
	s.sendResponse(SuggestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

// asInt normalizes the integer widths msgpack decoding can produce.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
