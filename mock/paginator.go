package mock

import "github.com/standexhq/standex"

var _ standex.Paginator = (*Paginator)(nil)

// Paginator is a mock implementation of standex.Paginator.
type Paginator struct {
	PaginateFn func(blocks []standex.ContentBlock, sourceType standex.SourceType) ([]*standex.Page, error)
}

func (p *Paginator) Paginate(blocks []standex.ContentBlock, sourceType standex.SourceType) ([]*standex.Page, error) {
	return p.PaginateFn(blocks, sourceType)
}
