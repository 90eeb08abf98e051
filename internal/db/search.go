package db

import "github.com/coursefind/coursefind/internal/domain/search/plan"

// Query is the input for a paginated boolean search. The plan carries
// the clause tree, sort directive, and pagination window.
type Query struct {
	IndexName    string
	Plan         plan.Plan
	ReturnFields []string
}

// SearchResult is the output of a search operation. Total is the exact
// total match count, not the number of returned entries.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
