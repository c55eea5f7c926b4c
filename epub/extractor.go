// Package epub provides a reflowable extractor for EPUB sources.
// One content block is produced per spine content document.
package epub

import (
	"archive/zip"
	"context"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/beevik/etree"
	"github.com/standexhq/standex"
)

// Ensure Extractor implements standex.Extractor at compile time.
var _ standex.Extractor = (*Extractor)(nil)

// Extractor extracts content blocks from EPUB containers.
type Extractor struct{}

// NewExtractor creates a new EPUB extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns one block per content document in spine order. Script
// and style elements are stripped before any text or length accounting.
// When the container metadata is unreadable, content documents are taken
// in archive order instead.
func (e *Extractor) Extract(ctx context.Context, epubPath string) ([]standex.ContentBlock, error) {
	zr, err := zip.OpenReader(epubPath)
	if err != nil {
		return nil, standex.Errorf(standex.EINVALID, "unreadable EPUB %q: %v", epubPath, err)
	}
	defer zr.Close()

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[path.Clean(f.Name)] = f
	}

	docs := spineDocuments(files)
	if len(docs) == 0 {
		docs = archiveOrderDocuments(zr.File)
	}
	if len(docs) == 0 {
		return nil, standex.Errorf(standex.EINVALID, "no content documents in %q", epubPath)
	}

	var blocks []standex.ContentBlock
	for _, f := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		block, ok := readContentDocument(f)
		if !ok {
			continue
		}
		block.Index = len(blocks)
		blocks = append(blocks, block)
	}

	if len(blocks) == 0 {
		return nil, standex.Errorf(standex.EINVALID, "no extractable text in %q", epubPath)
	}
	return blocks, nil
}

// spineDocuments resolves the container's reading order: container.xml
// names the OPF package file, whose spine references manifest items.
func spineDocuments(files map[string]*zip.File) []*zip.File {
	container, ok := files["META-INF/container.xml"]
	if !ok {
		return nil
	}

	containerDoc, err := parseXML(container)
	if err != nil {
		return nil
	}
	rootfile := containerDoc.FindElement("//rootfile")
	if rootfile == nil {
		return nil
	}
	opfPath := path.Clean(rootfile.SelectAttrValue("full-path", ""))
	opf, ok := files[opfPath]
	if !ok {
		return nil
	}

	opfDoc, err := parseXML(opf)
	if err != nil {
		return nil
	}

	// Manifest: item id -> document href, content documents only.
	hrefs := make(map[string]string)
	for _, item := range opfDoc.FindElements("//manifest/item") {
		mediaType := item.SelectAttrValue("media-type", "")
		if strings.HasSuffix(mediaType, "html") || strings.HasSuffix(mediaType, "xml") {
			hrefs[item.SelectAttrValue("id", "")] = item.SelectAttrValue("href", "")
		}
	}

	opfDir := path.Dir(opfPath)
	var docs []*zip.File
	for _, ref := range opfDoc.FindElements("//spine/itemref") {
		href := hrefs[ref.SelectAttrValue("idref", "")]
		if href == "" {
			continue
		}
		if unescaped, err := url.PathUnescape(href); err == nil {
			href = unescaped
		}
		if f, ok := files[path.Clean(path.Join(opfDir, href))]; ok {
			docs = append(docs, f)
		}
	}
	return docs
}

// archiveOrderDocuments is the fallback for containers without a usable
// OPF: every HTML-like entry in archive order.
func archiveOrderDocuments(entries []*zip.File) []*zip.File {
	var docs []*zip.File
	for _, f := range entries {
		switch strings.ToLower(path.Ext(f.Name)) {
		case ".xhtml", ".html", ".htm":
			docs = append(docs, f)
		}
	}
	return docs
}

// readContentDocument parses one content document into a block. Non-content
// elements are removed before text extraction so they never count toward
// pagination thresholds.
func readContentDocument(f *zip.File) (standex.ContentBlock, bool) {
	rc, err := f.Open()
	if err != nil {
		return standex.ContentBlock{}, false
	}
	defer rc.Close()

	doc, err := goquery.NewDocumentFromReader(rc)
	if err != nil {
		return standex.ContentBlock{}, false
	}

	doc.Find("script, style").Remove()

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return standex.ContentBlock{}, false
	}

	text := strings.TrimSpace(body.Text())
	if text == "" {
		return standex.ContentBlock{}, false
	}

	html, err := body.Html()
	if err != nil {
		html = ""
	}

	return standex.ContentBlock{
		Text:        text,
		HTML:        html,
		SectionHint: sectionHint(doc),
	}, true
}

// sectionHint labels a block with its leading heading, falling back to the
// document title.
func sectionHint(doc *goquery.Document) string {
	if h := strings.TrimSpace(doc.Find("h1, h2").First().Text()); h != "" {
		return h
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func parseXML(f *zip.File) (*etree.Document, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	return doc, nil
}
