package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/standexhq/standex"
)

// Compile-time interface verification.
var _ standex.PageService = (*PageService)(nil)

// PageService implements standex.PageService using SQLite. Every write
// also updates the page_fts index inside the same transaction, so the
// full-text index mirrors the page table at all times.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// CreatePages creates all pages of a standard inside a single transaction.
func (s *PageService) CreatePages(ctx context.Context, standardID string, pages []*standex.Page) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existing int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pages WHERE standard_id = ?", standardID).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return standex.Errorf(standex.ECONFLICT, "standard already has %d pages", existing)
	}

	if err := insertPages(ctx, tx, standardID, pages); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplacePages atomically deletes any existing pages of the standard and
// creates the given pages in their place.
func (s *PageService) ReplacePages(ctx context.Context, standardID string, pages []*standex.Page) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deletePagesTx(ctx, tx, standardID); err != nil {
		return err
	}
	if err := insertPages(ctx, tx, standardID, pages); err != nil {
		return err
	}

	return tx.Commit()
}

// insertPages writes pages and their index entries. Indices are assigned
// sequentially from 0 in slice order; a duplicate (standard, index) is a
// programming error surfaced as a constraint violation.
func insertPages(ctx context.Context, tx *sql.Tx, standardID string, pages []*standex.Page) error {
	for i, page := range pages {
		page.StandardID = standardID
		page.PageIndex = i
		if err := page.Validate(); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO pages (standard_id, page_index, content, content_html, section_hint)
			VALUES (?, ?, ?, ?, ?)
		`, page.StandardID, page.PageIndex, page.Content, nullString(page.ContentHTML), page.SectionHint)
		if err != nil {
			return err
		}

		page.ID, err = result.LastInsertId()
		if err != nil {
			return err
		}

		// Write-through index entry, same transaction as the page row.
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO page_fts (rowid, content) VALUES (?, ?)", page.ID, page.Content); err != nil {
			return err
		}
	}
	return nil
}

func deletePagesTx(ctx context.Context, tx *sql.Tx, standardID string) error {
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM page_fts WHERE rowid IN (SELECT id FROM pages WHERE standard_id = ?)", standardID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, "DELETE FROM pages WHERE standard_id = ?", standardID)
	return err
}

// FindPage retrieves one page of a standard by index.
func (s *PageService) FindPage(ctx context.Context, standardID string, pageIndex int) (*standex.Page, error) {
	var page standex.Page
	var contentHTML sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, standard_id, page_index, content, content_html, section_hint
		FROM pages
		WHERE standard_id = ? AND page_index = ?
	`, standardID, pageIndex).Scan(&page.ID, &page.StandardID, &page.PageIndex,
		&page.Content, &contentHTML, &page.SectionHint)

	if err == sql.ErrNoRows {
		return nil, standex.Errorf(standex.ENOTFOUND, "page %d not found", pageIndex)
	}
	if err != nil {
		return nil, err
	}

	page.ContentHTML = contentHTML.String
	return &page, nil
}

// FindPages retrieves pages matching the filter, ordered by
// (standard, page index).
func (s *PageService) FindPages(ctx context.Context, filter standex.PageFilter) ([]*standex.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, standard_id, page_index, content, content_html, section_hint FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.StandardID != nil {
		query.WriteString(" AND standard_id = ?")
		args = append(args, *filter.StandardID)
	}
	if filter.ContentSubstring != nil {
		query.WriteString(" AND instr(lower(content), lower(?)) > 0")
		args = append(args, *filter.ContentSubstring)
	}
	if len(filter.ContentAny) > 0 {
		query.WriteString(" AND (")
		for i, term := range filter.ContentAny {
			if i > 0 {
				query.WriteString(" OR ")
			}
			query.WriteString("instr(lower(content), lower(?)) > 0")
			args = append(args, term)
		}
		query.WriteString(")")
	}

	query.WriteString(" ORDER BY standard_id ASC, page_index ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*standex.Page
	for rows.Next() {
		var page standex.Page
		var contentHTML sql.NullString

		if err := rows.Scan(&page.ID, &page.StandardID, &page.PageIndex,
			&page.Content, &contentHTML, &page.SectionHint); err != nil {
			return nil, err
		}

		page.ContentHTML = contentHTML.String
		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePagesByStandard removes all pages of a standard together with
// their index entries.
func (s *PageService) DeletePagesByStandard(ctx context.Context, standardID string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := deletePagesTx(ctx, tx, standardID); err != nil {
		return err
	}

	return tx.Commit()
}

// CountPages returns the total number of pages in the corpus.
func (s *PageService) CountPages(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&count)
	return count, err
}

// CountPagesByStandard returns per-standard page counts keyed by standard ID.
func (s *PageService) CountPagesByStandard(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT standard_id, COUNT(*) FROM pages GROUP BY standard_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}

	return counts, rows.Err()
}
