package standex

import (
	"html"
	"regexp"
	"strings"
)

// BlockKind tags a block of text lines as flowing prose or a bullet list.
type BlockKind int

// Block kinds returned by ClassifyLines.
const (
	KindParagraph BlockKind = iota
	KindBulletList
)

var (
	hyphenBreakRe = regexp.MustCompile(`([A-Za-z])-\s*\n([A-Za-z])`)
	blankLineRe   = regexp.MustCompile(`\n\s*\n`)
	bulletRe      = regexp.MustCompile(`^(•|-|\*)\s+|^\d+[.)]\s+`)
)

// ClassifyLines decides whether a block of lines reads as a bullet list or
// a paragraph. A block is a list when at least 60% of its lines (and no
// fewer than two) start with a bullet or number marker.
func ClassifyLines(lines []string) BlockKind {
	bullets := 0
	for _, ln := range lines {
		if bulletRe.MatchString(ln) {
			bullets++
		}
	}
	if bullets >= max(2, int(0.6*float64(len(lines)))) {
		return KindBulletList
	}
	return KindParagraph
}

// Dehyphenate rejoins words broken across line ends ("man-\nagement").
func Dehyphenate(text string) string {
	return hyphenBreakRe.ReplaceAllString(text, "$1$2")
}

// RenderHTML converts raw page text into readable HTML: paragraphs split
// on blank lines, bullet-heavy blocks rendered as lists, soft line breaks
// joined. All text content is escaped.
func RenderHTML(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	for _, para := range blankLineRe.Split(Dehyphenate(text), -1) {
		var lines []string
		for _, ln := range strings.Split(para, "\n") {
			if ln = strings.TrimSpace(ln); ln != "" {
				lines = append(lines, ln)
			}
		}
		if len(lines) == 0 {
			continue
		}

		switch ClassifyLines(lines) {
		case KindBulletList:
			sb.WriteString("<ul>")
			for _, ln := range lines {
				sb.WriteString("<li>")
				sb.WriteString(html.EscapeString(bulletRe.ReplaceAllString(ln, "")))
				sb.WriteString("</li>")
			}
			sb.WriteString("</ul>")
		default:
			sb.WriteString("<p>")
			sb.WriteString(html.EscapeString(strings.Join(lines, " ")))
			sb.WriteString("</p>")
		}
	}
	return sb.String()
}
