package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/standexhq/standex"
)

// Compile-time interface verification.
var _ standex.SearchService = (*SearchService)(nil)

// SearchService implements standex.SearchService over the page_fts FTS5
// table. Because the index is maintained transactionally with the page
// table, results are always consistent with the current corpus.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// Search returns ranked matches for a free-text query. Results are ordered
// by BM25 relevance and carry a highlighted snippet with roughly twelve
// tokens of context around the matched terms.
func (s *SearchService) Search(ctx context.Context, query string, opts standex.SearchOptions) ([]*standex.SearchResult, error) {
	match := ftsMatchExpr(query)
	if match == "" {
		return nil, nil
	}

	limit := opts.Limit
	if limit <= 0 || limit > standex.MaxSearchResults {
		limit = standex.MaxSearchResults
	}

	var qb strings.Builder
	args := []any{match}

	qb.WriteString(`
		SELECT p.id, p.standard_id, p.page_index, p.content, p.content_html, p.section_hint,
		       s.id, s.title, s.slug, s.file_path, s.source_type, s.content_hash, s.ingested_at,
		       bm25(page_fts) AS rank,
		       snippet(page_fts, 0, '<mark>', '</mark>', ' … ', 12) AS highlight
		FROM page_fts
		JOIN pages p ON p.id = page_fts.rowid
		JOIN standards s ON s.id = p.standard_id
		WHERE page_fts MATCH ?
		ORDER BY rank
	`)
	appendPagination(&qb, &args, limit, opts.Offset)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*standex.SearchResult
	for rows.Next() {
		var page standex.Page
		var std standex.Standard
		var contentHTML sql.NullString
		var sourceType, ingestedAt string
		var rank float64
		var highlight string

		if err := rows.Scan(&page.ID, &page.StandardID, &page.PageIndex, &page.Content,
			&contentHTML, &page.SectionHint,
			&std.ID, &std.Title, &std.Slug, &std.FilePath, &sourceType, &std.ContentHash, &ingestedAt,
			&rank, &highlight); err != nil {
			return nil, err
		}

		page.ContentHTML = contentHTML.String
		std.SourceType = standex.SourceType(sourceType)
		std.IngestedAt, err = parseRFC3339(ingestedAt, "ingested_at")
		if err != nil {
			return nil, err
		}

		results = append(results, &standex.SearchResult{
			Page:      &page,
			Standard:  &std,
			Score:     -rank, // bm25() ranks better-is-lower; expose better-is-higher
			Highlight: highlight,
		})
	}

	return results, rows.Err()
}

// ftsMatchExpr turns a free-text query into a safe FTS5 MATCH expression:
// each word token is double-quoted (implicit AND between tokens), which
// neutralizes FTS5 operator syntax in user input. Returns "" when the
// query has no tokens.
func ftsMatchExpr(query string) string {
	var terms []string
	for _, tok := range strings.Fields(query) {
		tok = strings.Trim(tok, `"'`)
		if tok == "" {
			continue
		}
		terms = append(terms, `"`+strings.ReplaceAll(tok, `"`, `""`)+`"`)
	}
	return strings.Join(terms, " ")
}
