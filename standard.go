package standex

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// SourceType identifies the format of a standard's source file.
type SourceType string

// Supported source formats.
const (
	SourcePDF  SourceType = "pdf"
	SourceEPUB SourceType = "epub"
)

// Valid reports whether st is a recognized source format.
func (st SourceType) Valid() bool {
	return st == SourcePDF || st == SourceEPUB
}

// Standard represents one ingested source document.
type Standard struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	FilePath    string     `json:"filePath"`
	SourceType  SourceType `json:"sourceType"`
	ContentHash string     `json:"contentHash"`
	IngestedAt  time.Time  `json:"ingestedAt"`
}

// Validate returns an error if the standard contains invalid fields.
func (s *Standard) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "standard title required")
	}
	if s.FilePath == "" {
		return Errorf(EINVALID, "standard file path required")
	}
	if !s.SourceType.Valid() {
		return Errorf(EINVALID, "standard source type must be %q or %q", SourcePDF, SourceEPUB)
	}
	return nil
}

// StandardService represents a service for managing standards.
type StandardService interface {
	// CreateStandard creates a new standard. The slug is derived from the
	// title when empty. Returns ECONFLICT if the slug is already taken.
	CreateStandard(ctx context.Context, std *Standard) error

	// FindStandardByID retrieves a standard by ID.
	// Returns ENOTFOUND if the standard does not exist.
	FindStandardByID(ctx context.Context, id string) (*Standard, error)

	// FindStandardBySlug retrieves a standard by its unique slug.
	// Returns ENOTFOUND if the standard does not exist.
	FindStandardBySlug(ctx context.Context, slug string) (*Standard, error)

	// FindStandards retrieves standards matching the filter, ordered by title.
	FindStandards(ctx context.Context, filter StandardFilter) ([]*Standard, error)

	// UpdateStandardHash records the source content hash after ingestion.
	// Returns ENOTFOUND if the standard does not exist.
	UpdateStandardHash(ctx context.Context, id string, hash string) error

	// DeleteStandard permanently removes a standard and all of its pages.
	// Returns ENOTFOUND if the standard does not exist.
	DeleteStandard(ctx context.Context, id string) error
}

// StandardFilter represents a filter for FindStandards.
type StandardFilter struct {
	ID         *string     `json:"id"`
	Slug       *string     `json:"slug"`
	SourceType *SourceType `json:"sourceType"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Slugify creates a URL-safe slug from a title. Letters and digits are
// lowercased, runs of other characters collapse to a single hyphen.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
