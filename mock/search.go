package mock

import (
	"context"

	"github.com/standexhq/standex"
)

var _ standex.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of standex.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts standex.SearchOptions) ([]*standex.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts standex.SearchOptions) ([]*standex.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}
