package mock

import (
	"context"

	"github.com/standexhq/standex"
)

var _ standex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of standex.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path string) ([]standex.ContentBlock, error)
}

func (e *Extractor) Extract(ctx context.Context, path string) ([]standex.ContentBlock, error) {
	return e.ExtractFn(ctx, path)
}
