package standex

import (
	"strings"
	"unicode/utf8"
)

// Virtual pagination defaults. The min/max pair balances search-snippet
// granularity against pathologically tiny or huge pages when the source
// has irregular markup density.
const (
	DefaultMinPageLen     = 800
	DefaultMaxPageLen     = 1600
	DefaultTokenChunkSize = 400
)

// PaginateConfig holds the virtual pagination thresholds. Thresholds are
// explicit configuration rather than embedded constants so behavior is
// testable and tunable.
type PaginateConfig struct {
	// MinPageLen is the accumulated text length at which a page boundary
	// may be cut at the next block-level element.
	MinPageLen int

	// MaxPageLen is the text length a page must never exceed; reaching it
	// cuts a page immediately, without waiting for a block boundary.
	MaxPageLen int

	// TokenChunkSize is the number of whitespace tokens per page in the
	// fallback splitter used when the DOM walk captures no chunks.
	TokenChunkSize int
}

// DefaultPaginateConfig returns the standard pagination thresholds.
func DefaultPaginateConfig() PaginateConfig {
	return PaginateConfig{
		MinPageLen:     DefaultMinPageLen,
		MaxPageLen:     DefaultMaxPageLen,
		TokenChunkSize: DefaultTokenChunkSize,
	}
}

// Paginator converts extractor blocks into the final page sequence of a
// standard, applying the format-specific pagination policy. Returned pages
// carry sequential indices starting at 0 and have no IDs assigned.
type Paginator interface {
	Paginate(blocks []ContentBlock, sourceType SourceType) ([]*Page, error)
}

// SplitTokenChunks tokenizes text by whitespace and groups tokens into
// chunks of size tokens each. The trailing chunk may be shorter. Used as
// the pagination fallback for degenerate markup.
func SplitTokenChunks(text string, size int) []string {
	if size <= 0 {
		size = DefaultTokenChunkSize
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	chunks := make([]string, 0, len(tokens)/size+1)
	for start := 0; start < len(tokens); start += size {
		end := min(start+size, len(tokens))
		chunks = append(chunks, strings.Join(tokens[start:end], " "))
	}
	return chunks
}

// ChunkText splits text into chunks of at most maxLen characters, cutting
// at word boundaries where possible. A single word longer than maxLen is
// hard-sliced so no chunk ever exceeds the limit.
func ChunkText(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = DefaultMaxPageLen
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var sb strings.Builder
	for _, word := range words {
		for len(word) > maxLen {
			if sb.Len() > 0 {
				chunks = append(chunks, sb.String())
				sb.Reset()
			}
			cut := runeCut(word, maxLen)
			chunks = append(chunks, word[:cut])
			word = word[cut:]
		}
		if word == "" {
			continue
		}
		need := len(word)
		if sb.Len() > 0 {
			need++ // joining space
		}
		if sb.Len()+need > maxLen {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(word)
	}
	if sb.Len() > 0 {
		chunks = append(chunks, sb.String())
	}
	return chunks
}

// runeCut returns the largest byte offset ≤ max that falls on a rune
// boundary of s, so hard slices never split a multi-byte rune.
func runeCut(s string, max int) int {
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		return max
	}
	return cut
}
