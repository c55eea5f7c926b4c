package standex_test

import (
	"testing"

	"github.com/standexhq/standex"
	"github.com/stretchr/testify/assert"
)

func TestClassifyLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  standex.BlockKind
	}{
		{
			"all bulleted",
			[]string{"• risk register", "• issue log", "• change log"},
			standex.KindBulletList,
		},
		{
			"numbered list",
			[]string{"1. define scope", "2. estimate effort", "3) assign owners"},
			standex.KindBulletList,
		},
		{
			"plain prose",
			[]string{"Risk management is a continuous activity", "that spans the whole lifecycle."},
			standex.KindParagraph,
		},
		{
			"single bullet is not a list",
			[]string{"- an aside"},
			standex.KindParagraph,
		},
		{
			"majority bulleted",
			[]string{"Inputs:", "- charter", "- register", "- plan"},
			standex.KindBulletList,
		},
		{
			"minority bulleted",
			[]string{"- one", "- two", "prose", "prose", "prose", "prose"},
			standex.KindParagraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, standex.ClassifyLines(tt.lines))
		})
	}
}

func TestDehyphenate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "risk management plan", standex.Dehyphenate("risk man-\nagement plan"))
	assert.Equal(t, "no change here", standex.Dehyphenate("no change here"))
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	t.Run("paragraphs split on blank lines and join soft breaks", func(t *testing.T) {
		t.Parallel()

		got := standex.RenderHTML("first line\nsecond line\n\nnext para")
		assert.Equal(t, "<p>first line second line</p><p>next para</p>", got)
	})

	t.Run("bullet-heavy block becomes a list without markers", func(t *testing.T) {
		t.Parallel()

		got := standex.RenderHTML("• alpha\n• beta\n• gamma")
		assert.Equal(t, "<ul><li>alpha</li><li>beta</li><li>gamma</li></ul>", got)
	})

	t.Run("escapes markup in content", func(t *testing.T) {
		t.Parallel()

		got := standex.RenderHTML("a <b> tag & more")
		assert.Equal(t, "<p>a &lt;b&gt; tag &amp; more</p>", got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, standex.RenderHTML(""))
	})
}
