package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/standexhq/standex"
)

// Compile-time interface verification.
var _ standex.StandardService = (*StandardService)(nil)

// StandardService implements standex.StandardService using SQLite.
type StandardService struct {
	db *DB
}

// NewStandardService creates a new StandardService.
func NewStandardService(db *DB) *StandardService {
	return &StandardService{db: db}
}

// CreateStandard creates a new standard. The slug is derived from the
// title when empty and must be unique across the corpus.
func (s *StandardService) CreateStandard(ctx context.Context, std *standex.Standard) error {
	if err := std.Validate(); err != nil {
		return err
	}

	std.ID = uuid.New().String()
	if std.Slug == "" {
		std.Slug = standex.Slugify(std.Title)
	}
	std.IngestedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO standards (id, title, slug, file_path, source_type, content_hash, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, std.ID, std.Title, std.Slug, std.FilePath, string(std.SourceType), std.ContentHash,
		std.IngestedAt.Format(time.RFC3339))

	if isUniqueConstraintErr(err) {
		return standex.Errorf(standex.ECONFLICT, "standard slug %q already exists", std.Slug)
	}
	return err
}

// FindStandardByID retrieves a standard by ID.
func (s *StandardService) FindStandardByID(ctx context.Context, id string) (*standex.Standard, error) {
	return s.findStandard(ctx, "id", id)
}

// FindStandardBySlug retrieves a standard by its unique slug.
func (s *StandardService) FindStandardBySlug(ctx context.Context, slug string) (*standex.Standard, error) {
	return s.findStandard(ctx, "slug", slug)
}

func (s *StandardService) findStandard(ctx context.Context, column, value string) (*standex.Standard, error) {
	var std standex.Standard
	var sourceType, ingestedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, slug, file_path, source_type, content_hash, ingested_at
		FROM standards
		WHERE `+column+` = ?
	`, value).Scan(&std.ID, &std.Title, &std.Slug, &std.FilePath, &sourceType,
		&std.ContentHash, &ingestedAt)

	if err == sql.ErrNoRows {
		return nil, standex.Errorf(standex.ENOTFOUND, "standard not found")
	}
	if err != nil {
		return nil, err
	}

	std.SourceType = standex.SourceType(sourceType)
	std.IngestedAt, err = parseRFC3339(ingestedAt, "ingested_at")
	if err != nil {
		return nil, err
	}

	return &std, nil
}

// FindStandards retrieves standards matching the filter, ordered by title.
func (s *StandardService) FindStandards(ctx context.Context, filter standex.StandardFilter) ([]*standex.Standard, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, slug, file_path, source_type, content_hash, ingested_at FROM standards WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.SourceType != nil {
		query.WriteString(" AND source_type = ?")
		args = append(args, string(*filter.SourceType))
	}

	query.WriteString(" ORDER BY title ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standards []*standex.Standard
	for rows.Next() {
		var std standex.Standard
		var sourceType, ingestedAt string

		if err := rows.Scan(&std.ID, &std.Title, &std.Slug, &std.FilePath, &sourceType,
			&std.ContentHash, &ingestedAt); err != nil {
			return nil, err
		}

		std.SourceType = standex.SourceType(sourceType)
		std.IngestedAt, err = parseRFC3339(ingestedAt, "ingested_at")
		if err != nil {
			return nil, err
		}

		standards = append(standards, &std)
	}

	return standards, rows.Err()
}

// UpdateStandardHash records the source content hash after ingestion.
func (s *StandardService) UpdateStandardHash(ctx context.Context, id string, hash string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE standards SET content_hash = ? WHERE id = ?", hash, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return standex.Errorf(standex.ENOTFOUND, "standard not found")
	}
	return nil
}

// DeleteStandard permanently removes a standard, its pages, and their
// index entries.
func (s *StandardService) DeleteStandard(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Pages cascade via the foreign key; the FTS index has no such link
	// and is cleared explicitly in the same transaction.
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM page_fts WHERE rowid IN (SELECT id FROM pages WHERE standard_id = ?)", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM standards WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return standex.Errorf(standex.ENOTFOUND, "standard not found")
	}

	return tx.Commit()
}
