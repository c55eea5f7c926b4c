// Package goquery provides a DOM-aware virtual paginator built on the
// github.com/PuerkitoBio/goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/standexhq/standex"
)

// Ensure Paginator implements standex.Paginator at compile time.
var _ standex.Paginator = (*Paginator)(nil)

// blockTags are the element names that mark acceptable cut points once a
// page has reached its minimum length.
var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "table": true,
	"pre": true, "blockquote": true, "img": true, "div": true,
}

// Paginator slices extracted content blocks into virtual pages.
//
// Fixed-layout sources keep their native boundaries: one page per block.
// Reflowable sources are re-cut by walking each block's DOM and
// accumulating top-level nodes until a page fills up.
type Paginator struct {
	cfg standex.PaginateConfig
}

// NewPaginator creates a paginator with the default page size thresholds.
func NewPaginator() *Paginator {
	return &Paginator{cfg: standex.DefaultPaginateConfig()}
}

// NewPaginatorWithConfig creates a paginator with custom thresholds.
func NewPaginatorWithConfig(cfg standex.PaginateConfig) *Paginator {
	return &Paginator{cfg: cfg}
}

// Paginate converts content blocks into pages for the given source type.
// Page indices are assigned sequentially from zero.
func (p *Paginator) Paginate(blocks []standex.ContentBlock, sourceType standex.SourceType) ([]*standex.Page, error) {
	var pages []*standex.Page
	switch sourceType {
	case standex.SourcePDF:
		pages = p.fixedLayout(blocks)
	case standex.SourceEPUB:
		pages = p.reflow(blocks)
	default:
		return nil, standex.Errorf(standex.EINVALID, "unsupported source type %q", sourceType)
	}

	for i, page := range pages {
		page.PageIndex = i
	}
	return pages, nil
}

// fixedLayout emits one page per block, preserving native boundaries.
// Blocks whose text still exceeds the maximum are word-split so no page
// grows unbounded.
func (p *Paginator) fixedLayout(blocks []standex.ContentBlock) []*standex.Page {
	var pages []*standex.Page
	for _, block := range blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}
		if len(text) <= p.cfg.MaxPageLen {
			html := block.HTML
			if html == "" {
				html = standex.RenderHTML(text)
			}
			pages = append(pages, &standex.Page{
				Content:     text,
				ContentHTML: html,
				SectionHint: block.SectionHint,
			})
			continue
		}
		for _, chunk := range standex.ChunkText(text, p.cfg.MaxPageLen) {
			pages = append(pages, &standex.Page{
				Content:     chunk,
				ContentHTML: standex.RenderHTML(chunk),
				SectionHint: block.SectionHint,
			})
		}
	}
	return pages
}

// reflow re-cuts reflowable blocks into pages between MinPageLen and
// MaxPageLen characters. Cuts happen at block-level element boundaries
// once the minimum is reached, or immediately when a page would exceed
// the maximum. Blocks without markup fall back to token chunking.
func (p *Paginator) reflow(blocks []standex.ContentBlock) []*standex.Page {
	var pages []*standex.Page
	for _, block := range blocks {
		if strings.TrimSpace(block.HTML) == "" {
			pages = append(pages, p.tokenChunks(block)...)
			continue
		}
		pages = append(pages, p.reflowBlock(block)...)
	}
	return pages
}

func (p *Paginator) reflowBlock(block standex.ContentBlock) []*standex.Page {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(block.HTML))
	if err != nil {
		return p.tokenChunks(block)
	}

	b := pageBuilder{hint: block.SectionHint}
	doc.Find("body").First().Contents().Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		html, err := goquery.OuterHtml(s)
		if err != nil {
			html = ""
		}
		html = strings.TrimSpace(html)

		if text == "" {
			// Markup without text (images, rules) rides along with
			// the current page but never counts toward its length.
			if html != "" {
				b.htmls = append(b.htmls, html)
			}
			return
		}

		// A single node larger than a whole page is word-split into
		// max-length chunks, each emitted as its own page.
		if len(text) > p.cfg.MaxPageLen {
			b.flush()
			for _, chunk := range standex.ChunkText(text, p.cfg.MaxPageLen) {
				b.pages = append(b.pages, &standex.Page{
					Content:     chunk,
					ContentHTML: standex.RenderHTML(chunk),
					SectionHint: block.SectionHint,
				})
			}
			return
		}

		if b.textLen > 0 && b.textLen+len(sep)+len(text) > p.cfg.MaxPageLen {
			b.flush()
		}
		b.add(text, html)
		if b.textLen >= p.cfg.MinPageLen && blockTags[goquery.NodeName(s)] {
			b.flush()
		}
	})
	b.flush()
	return b.pages
}

// tokenChunks is the fallback for blocks carrying no markup at all.
func (p *Paginator) tokenChunks(block standex.ContentBlock) []*standex.Page {
	var pages []*standex.Page
	for _, chunk := range standex.SplitTokenChunks(block.Text, p.cfg.TokenChunkSize) {
		pages = append(pages, &standex.Page{
			Content:     chunk,
			ContentHTML: standex.RenderHTML(chunk),
			SectionHint: block.SectionHint,
		})
	}
	return pages
}

// sep joins node texts in the emitted page content; its length counts
// toward the page length limits.
const sep = "\n\n"

// pageBuilder accumulates node text and markup for the page in progress.
// textLen tracks the length of the joined content, separators included.
type pageBuilder struct {
	pages   []*standex.Page
	texts   []string
	htmls   []string
	textLen int
	hint    string
}

func (b *pageBuilder) add(text, html string) {
	if len(b.texts) > 0 {
		b.textLen += len(sep)
	}
	b.texts = append(b.texts, text)
	if html != "" {
		b.htmls = append(b.htmls, html)
	}
	b.textLen += len(text)
}

func (b *pageBuilder) flush() {
	if b.textLen == 0 {
		b.texts, b.htmls = nil, nil
		return
	}
	b.pages = append(b.pages, &standex.Page{
		Content:     strings.Join(b.texts, sep),
		ContentHTML: strings.Join(b.htmls, "\n"),
		SectionHint: b.hint,
	})
	b.texts, b.htmls, b.textLen = nil, nil, 0
}
