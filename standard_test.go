package standex_test

import (
	"testing"

	"github.com/standexhq/standex"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Managing Successful Projects", "managing-successful-projects"},
		{"punctuation collapses", "PMBOK Guide — 7th Ed.", "pmbok-guide-7th-ed"},
		{"digits preserved", "ISO 21500:2021", "iso-21500-2021"},
		{"leading and trailing junk", "  (draft) notes  ", "draft-notes"},
		{"already a slug", "prince2-handbook", "prince2-handbook"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, standex.Slugify(tt.title))
		})
	}
}

func TestStandard_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid standard", func(t *testing.T) {
		t.Parallel()

		std := &standex.Standard{
			Title:      "PMBOK Guide",
			FilePath:   "/data/pmbok.pdf",
			SourceType: standex.SourcePDF,
		}
		assert.NoError(t, std.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		std := &standex.Standard{FilePath: "/data/pmbok.pdf", SourceType: standex.SourcePDF}
		err := std.Validate()
		assert.Equal(t, standex.EINVALID, standex.ErrorCode(err))
	})

	t.Run("unknown source type", func(t *testing.T) {
		t.Parallel()

		std := &standex.Standard{Title: "x", FilePath: "/x.mobi", SourceType: "mobi"}
		err := std.Validate()
		assert.Equal(t, standex.EINVALID, standex.ErrorCode(err))
	})
}
