package standex_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/standexhq/standex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTokenChunks(t *testing.T) {
	t.Parallel()

	t.Run("groups tokens into fixed-size chunks", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("alpha beta gamma delta ", 250) // 1000 tokens
		chunks := standex.SplitTokenChunks(text, 400)

		require.Len(t, chunks, 3)
		assert.Len(t, strings.Fields(chunks[0]), 400)
		assert.Len(t, strings.Fields(chunks[1]), 400)
		assert.Len(t, strings.Fields(chunks[2]), 200)
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, standex.SplitTokenChunks("   \n\t ", 400))
	})

	t.Run("short text yields single chunk", func(t *testing.T) {
		t.Parallel()

		chunks := standex.SplitTokenChunks("one two three", 400)
		require.Len(t, chunks, 1)
		assert.Equal(t, "one two three", chunks[0])
	})
}

func TestChunkText(t *testing.T) {
	t.Parallel()

	t.Run("never exceeds max length", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("lorem ipsum dolor sit amet ", 200) // ~5400 chars
		chunks := standex.ChunkText(text, 1600)

		require.NotEmpty(t, chunks)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 1600)
		}
	})

	t.Run("preserves all words in order", func(t *testing.T) {
		t.Parallel()

		text := "the quick brown fox jumps over the lazy dog"
		chunks := standex.ChunkText(text, 20)

		assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
	})

	t.Run("hard-slices oversized words", func(t *testing.T) {
		t.Parallel()

		word := strings.Repeat("x", 50)
		chunks := standex.ChunkText(word, 20)

		require.Len(t, chunks, 3)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), 20)
		}
	})

	t.Run("hard slices stay on rune boundaries", func(t *testing.T) {
		t.Parallel()

		// 600 three-byte runes: 1800 bytes, and byte 1600 falls inside a
		// rune, so a byte-offset slice would emit invalid UTF-8.
		word := strings.Repeat("標", 600)
		chunks := standex.ChunkText(word, 1600)

		require.Len(t, chunks, 2)
		for _, c := range chunks {
			assert.True(t, utf8.ValidString(c))
			assert.LessOrEqual(t, len(c), 1600)
		}
		assert.Equal(t, word, strings.Join(chunks, ""))
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, standex.ChunkText("", 1600))
	})
}
