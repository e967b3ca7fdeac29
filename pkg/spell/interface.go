// Package spell is the core, providing deletion-variant generation, the precomputed index and the distance-ranked lookups for corrections.
package spell

// ISuggester defines the interface for spelling suggestion engines
type ISuggester interface {
	// Suggest returns ranked corrections for a query with a result limit (0 = unlimited)
	Suggest(query string, limit int) ([]Suggestion, error)

	// Ready is closed once the index build has finished (successfully or not)
	Ready() <-chan struct{}

	// Stats returns statistics about the built index
	Stats() map[string]int
}
