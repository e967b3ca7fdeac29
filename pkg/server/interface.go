/*
Package server implements msgpack IPC for spelling suggestion services.

The server package provides a minimal interface for spelling correction using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports suggestion requests and index status ops.
Messages are processed synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Suggestion requests use mainly this structure:

	{"id": "req_001", "q": "tubr", "l": 10}

The server responds with corrections ranked by edit distance, then frequency:

	{"id": "req_001", "s": [{"w": "tub", "d": 1, "f": 120}, {"w": "tube", "d": 1, "f": 80}], "c": 2, "t": 145}

Status requests report on the built index:

	{"id": "status_001", "action": "get_stats"}

Response structures include status information and error details when an op fails.

No request is answered before the index build gate opens; the server emits a ready
status once queries can be served.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, less errors and reducing latency in most cases.

# Message Types

SuggestRequest and SuggestResponse handle the main correction lookup.
Request includes a query string and optional limit for result count.
Responses contain suggestion arrays with word, exact edit distance and frequency, plus timing data.

StatusRequest and StatusResponse expose index statistics (word count, variant count, configured max distance).
*/
package server

// SuggestRequest - minimal suggestion request
type SuggestRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Limit int    `msgpack:"l,omitempty"`
}

// SuggestResult - minimal suggestion response entry
type SuggestResult struct {
	Word      string `msgpack:"w"`
	Distance  int    `msgpack:"d"`
	Frequency int    `msgpack:"f"`
}

// SuggestResponse - suggestion response
type SuggestResponse struct {
	ID          string          `msgpack:"id"`
	Suggestions []SuggestResult `msgpack:"s"`
	Count       int             `msgpack:"c"`
	TimeTaken   int64           `msgpack:"t"`
}

// StatusRequest - index status request
type StatusRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"` // "get_stats"
}

// StatusResponse - index status response
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Error  string         `msgpack:"error,omitempty"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// SuggestError holds basic error information for suggestion requests
type SuggestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
