// Package ingest provides standards ingestion orchestration.
// It coordinates extraction, virtual pagination, and storage of
// standards documents found on disk.
package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/standexhq/standex"
)

// Ingester orchestrates ingestion of standards documents.
type Ingester struct {
	Standards  standex.StandardService
	Pages      standex.PageService
	Extractors map[standex.SourceType]standex.Extractor
	Paginator  standex.Paginator
}

// Status indicates what ingestion did with a file.
type Status int

const (
	StatusCreated Status = iota
	StatusUpdated
	StatusSkipped
	StatusFailed
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusUpdated:
		return "updated"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds the outcome of ingesting a single file.
type Result struct {
	Path     string
	Standard *standex.Standard
	Pages    int
	Status   Status
	Err      error
}

// IngestDir ingests every supported document directly under dir.
// Files that fail to ingest are reported in their Result without
// aborting the remaining files. An empty result slice means the
// directory held no supported documents.
func (i *Ingester) IngestDir(ctx context.Context, dir string, rebuild bool) ([]*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, standex.Errorf(standex.EINVALID, "unreadable directory %q: %v", dir, err)
	}

	var results []*Result
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if entry.IsDir() {
			continue
		}
		if sourceTypeFor(entry.Name()) == "" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		result, err := i.IngestFile(ctx, path, rebuild)
		if err != nil {
			result = &Result{Path: path, Status: StatusFailed, Err: err}
		}
		results = append(results, result)
	}
	return results, nil
}

// IngestFile ingests a single document. Re-ingesting an unchanged file
// is a no-op unless rebuild is set; a changed or rebuilt file has its
// pages replaced atomically.
func (i *Ingester) IngestFile(ctx context.Context, path string, rebuild bool) (*Result, error) {
	sourceType := sourceTypeFor(path)
	if sourceType == "" {
		return nil, standex.Errorf(standex.EINVALID, "unsupported document type %q", filepath.Ext(path))
	}

	hash, err := hashFile(path)
	if err != nil {
		return nil, standex.Errorf(standex.EINVALID, "unreadable file %q: %v", path, err)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	slug := standex.Slugify(title)

	existing, err := i.Standards.FindStandardBySlug(ctx, slug)
	if err != nil && standex.ErrorCode(err) != standex.ENOTFOUND {
		return nil, err
	}

	if existing != nil && existing.ContentHash == hash && !rebuild {
		return &Result{Path: path, Standard: existing, Status: StatusSkipped}, nil
	}

	extractor, ok := i.Extractors[sourceType]
	if !ok {
		return nil, standex.Errorf(standex.EINTERNAL, "no extractor registered for %q", sourceType)
	}

	blocks, err := extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	pages, err := i.Paginator.Paginate(blocks, sourceType)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, standex.Errorf(standex.EINVALID, "no pages produced from %q", path)
	}

	if existing == nil {
		std := &standex.Standard{
			Title:       title,
			Slug:        slug,
			FilePath:    path,
			SourceType:  sourceType,
			ContentHash: hash,
		}
		if err := i.Standards.CreateStandard(ctx, std); err != nil {
			return nil, err
		}
		if err := i.Pages.CreatePages(ctx, std.ID, pages); err != nil {
			return nil, err
		}
		return &Result{Path: path, Standard: std, Pages: len(pages), Status: StatusCreated}, nil
	}

	if err := i.Pages.ReplacePages(ctx, existing.ID, pages); err != nil {
		return nil, err
	}
	if err := i.Standards.UpdateStandardHash(ctx, existing.ID, hash); err != nil {
		return nil, err
	}
	existing.ContentHash = hash
	return &Result{Path: path, Standard: existing, Pages: len(pages), Status: StatusUpdated}, nil
}

// sourceTypeFor maps a filename extension to a source type, or "" when
// the file is not a supported document.
func sourceTypeFor(name string) standex.SourceType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return standex.SourcePDF
	case ".epub":
		return standex.SourceEPUB
	default:
		return ""
	}
}

// hashFile fingerprints file contents for change detection.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
