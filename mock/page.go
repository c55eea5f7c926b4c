package mock

import (
	"context"

	"github.com/standexhq/standex"
)

var _ standex.PageService = (*PageService)(nil)

// PageService is a mock implementation of standex.PageService.
type PageService struct {
	CreatePagesFn           func(ctx context.Context, standardID string, pages []*standex.Page) error
	ReplacePagesFn          func(ctx context.Context, standardID string, pages []*standex.Page) error
	FindPageFn              func(ctx context.Context, standardID string, pageIndex int) (*standex.Page, error)
	FindPagesFn             func(ctx context.Context, filter standex.PageFilter) ([]*standex.Page, error)
	DeletePagesByStandardFn func(ctx context.Context, standardID string) error
	CountPagesFn            func(ctx context.Context) (int, error)
	CountPagesByStandardFn  func(ctx context.Context) (map[string]int, error)
}

func (s *PageService) CreatePages(ctx context.Context, standardID string, pages []*standex.Page) error {
	return s.CreatePagesFn(ctx, standardID, pages)
}

func (s *PageService) ReplacePages(ctx context.Context, standardID string, pages []*standex.Page) error {
	return s.ReplacePagesFn(ctx, standardID, pages)
}

func (s *PageService) FindPage(ctx context.Context, standardID string, pageIndex int) (*standex.Page, error) {
	return s.FindPageFn(ctx, standardID, pageIndex)
}

func (s *PageService) FindPages(ctx context.Context, filter standex.PageFilter) ([]*standex.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePagesByStandard(ctx context.Context, standardID string) error {
	return s.DeletePagesByStandardFn(ctx, standardID)
}

func (s *PageService) CountPages(ctx context.Context) (int, error) {
	return s.CountPagesFn(ctx)
}

func (s *PageService) CountPagesByStandard(ctx context.Context) (map[string]int, error) {
	return s.CountPagesByStandardFn(ctx)
}
