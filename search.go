package standex

import "context"

// Search limits.
const (
	// MaxSearchResults caps the number of matches a single query returns.
	MaxSearchResults = 300

	// SearchPageSize is the number of results shown per result page.
	SearchPageSize = 20
)

// SearchResult represents one ranked full-text match.
type SearchResult struct {
	Page     *Page     `json:"page"`
	Standard *Standard `json:"standard"`

	// Score is the relevance of the match; higher is better.
	Score float64 `json:"score"`

	// Highlight is a bounded snippet with matched terms wrapped in
	// <mark> markers and ellipses at truncation points.
	Highlight string `json:"highlight"`
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Limit caps the number of results; defaults to MaxSearchResults.
	Limit int `json:"limit,omitempty"`

	Offset int `json:"offset,omitempty"`
}

// SearchService provides ranked full-text search over page content. The
// index mirrors the page table synchronously: results never reference a
// deleted page and always include just-created ones.
type SearchService interface {
	// Search returns ranked matches for a free-text query. An empty or
	// whitespace-only query returns no results.
	Search(ctx context.Context, query string, opts SearchOptions) ([]*SearchResult, error)
}
