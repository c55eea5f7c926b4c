// Package pdf provides a fixed-layout extractor for PDF sources.
// One content block is produced per native page.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/standexhq/standex"
)

// Ensure Extractor implements standex.Extractor at compile time.
var _ standex.Extractor = (*Extractor)(nil)

// Extractor extracts content blocks from PDF files.
type Extractor struct{}

// NewExtractor creates a new PDF extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns one block per native page in page order. Pages whose
// layout reconstruction fails degrade to plain concatenated text; only an
// unreadable document fails the whole extraction.
func (e *Extractor) Extract(ctx context.Context, path string) ([]standex.ContentBlock, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, standex.Errorf(standex.EINVALID, "unreadable PDF %q: %v", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	blocks := make([]standex.ContentBlock, 0, total)

	for num := 1; num <= total; num++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		text, html := extractPage(page)
		if strings.TrimSpace(text) == "" {
			continue
		}

		blocks = append(blocks, standex.ContentBlock{
			Index: len(blocks),
			Text:  text,
			HTML:  html,
		})
	}

	if len(blocks) == 0 {
		return nil, standex.Errorf(standex.EINVALID, "no extractable text in %q", path)
	}
	return blocks, nil
}

// extractPage reconstructs one page's text in reading order. Row-based
// reconstruction preserves layout; when it fails the page degrades to the
// raw content stream order with no markup.
func extractPage(page pdf.Page) (text, html string) {
	rows, err := rowsOf(page)
	if err == nil && len(rows) > 0 {
		var sb strings.Builder
		for _, row := range rows {
			line := rowText(row)
			if strings.TrimSpace(line) == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
		}
		text = sb.String()
		return text, standex.RenderHTML(text)
	}

	// Degraded: concatenate raw text items for this page only.
	return rawText(page), ""
}

// rowsOf isolates the library's layout engine, which can panic on
// malformed content streams. A panic degrades the page, not the document.
func rowsOf(page pdf.Page) (rows pdf.Rows, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layout reconstruction failed: %v", r)
		}
	}()
	return page.GetTextByRow()
}

func rowText(row *pdf.Row) string {
	var sb strings.Builder
	var lastEnd float64

	for _, word := range row.Content {
		// Insert a space at horizontal gaps between text items.
		if sb.Len() > 0 && word.X > lastEnd+1 && !strings.HasPrefix(word.S, " ") {
			sb.WriteByte(' ')
		}
		sb.WriteString(word.S)
		lastEnd = word.X + word.W
	}
	return strings.TrimRight(sb.String(), " ")
}

func rawText(page pdf.Page) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	var sb strings.Builder
	for _, item := range page.Content().Text {
		sb.WriteString(item.S)
	}
	return sb.String()
}
