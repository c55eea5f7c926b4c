package standex

import "context"

// Page represents one addressable content unit of a standard. Pages of a
// standard are totally ordered by PageIndex starting at 0 with no gaps.
type Page struct {
	ID          int64  `json:"id"`
	StandardID  string `json:"standardId"`
	PageIndex   int    `json:"pageIndex"`
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml,omitempty"`
	SectionHint string `json:"sectionHint,omitempty"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.StandardID == "" {
		return Errorf(EINVALID, "page standard ID required")
	}
	if p.PageIndex < 0 {
		return Errorf(EINVALID, "page index must not be negative")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "page content required")
	}
	return nil
}

// PageService represents a service for managing pages. Page creation and
// deletion keep the full-text index synchronized within the same
// transaction, so a query issued after any of these calls reflects the
// change immediately.
type PageService interface {
	// CreatePages creates all pages of a standard inside a single
	// transaction. Page indices must already be sequential from 0.
	// Returns ECONFLICT if the standard already has pages.
	CreatePages(ctx context.Context, standardID string, pages []*Page) error

	// ReplacePages atomically deletes any existing pages of the standard
	// and creates the given pages in their place.
	ReplacePages(ctx context.Context, standardID string, pages []*Page) error

	// FindPage retrieves one page of a standard by index.
	// Returns ENOTFOUND if the index is past the last page.
	FindPage(ctx context.Context, standardID string, pageIndex int) (*Page, error)

	// FindPages retrieves pages matching the filter, ordered by
	// (standard, page index).
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePagesByStandard removes all pages of a standard.
	DeletePagesByStandard(ctx context.Context, standardID string) error

	// CountPages returns the total number of pages in the corpus.
	CountPages(ctx context.Context) (int, error)

	// CountPagesByStandard returns per-standard page counts keyed by
	// standard ID.
	CountPagesByStandard(ctx context.Context) (map[string]int, error)
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID         *int64  `json:"id"`
	StandardID *string `json:"standardId"`

	// ContentSubstring matches pages whose content contains the given
	// text, case-insensitively.
	ContentSubstring *string `json:"contentSubstring"`

	// ContentAny matches pages whose content contains at least one of the
	// given texts, case-insensitively.
	ContentAny []string `json:"contentAny"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
