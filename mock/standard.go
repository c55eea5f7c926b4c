package mock

import (
	"context"

	"github.com/standexhq/standex"
)

var _ standex.StandardService = (*StandardService)(nil)

// StandardService is a mock implementation of standex.StandardService.
type StandardService struct {
	CreateStandardFn     func(ctx context.Context, std *standex.Standard) error
	FindStandardByIDFn   func(ctx context.Context, id string) (*standex.Standard, error)
	FindStandardBySlugFn func(ctx context.Context, slug string) (*standex.Standard, error)
	FindStandardsFn      func(ctx context.Context, filter standex.StandardFilter) ([]*standex.Standard, error)
	UpdateStandardHashFn func(ctx context.Context, id, contentHash string) error
	DeleteStandardFn     func(ctx context.Context, id string) error
}

func (s *StandardService) CreateStandard(ctx context.Context, std *standex.Standard) error {
	return s.CreateStandardFn(ctx, std)
}

func (s *StandardService) FindStandardByID(ctx context.Context, id string) (*standex.Standard, error) {
	return s.FindStandardByIDFn(ctx, id)
}

func (s *StandardService) FindStandardBySlug(ctx context.Context, slug string) (*standex.Standard, error) {
	return s.FindStandardBySlugFn(ctx, slug)
}

func (s *StandardService) FindStandards(ctx context.Context, filter standex.StandardFilter) ([]*standex.Standard, error) {
	return s.FindStandardsFn(ctx, filter)
}

func (s *StandardService) UpdateStandardHash(ctx context.Context, id, contentHash string) error {
	return s.UpdateStandardHashFn(ctx, id, contentHash)
}

func (s *StandardService) DeleteStandard(ctx context.Context, id string) error {
	return s.DeleteStandardFn(ctx, id)
}
