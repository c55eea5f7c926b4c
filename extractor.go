package standex

import "context"

// ContentBlock is one raw unit of extracted content: a native page for
// fixed-layout sources, a spine content document for reflowable ones.
type ContentBlock struct {
	// Index is the zero-based position of the block within its source.
	Index int

	// Text is the extracted plain text. Always populated for a readable
	// block, even when structured markup could not be recovered.
	Text string

	// HTML is the structured markup for the block, when the format
	// preserves it. Empty when extraction degraded to plain text.
	HTML string

	// SectionHint is an optional label for the section the block belongs
	// to (e.g., a chapter title).
	SectionHint string
}

// Extractor turns a source file into its sequence of content blocks.
// Implementations hide the format-specific parsing.
type Extractor interface {
	// Extract reads the file at path and returns its content blocks in
	// reading order. An unreadable or corrupt file returns an error and no
	// blocks; a failure confined to a single block degrades that block to
	// plain text instead of failing the document.
	Extract(ctx context.Context, path string) ([]ContentBlock, error)
}
