package pdf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/standexhq/standex"
	"github.com/standexhq/standex/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_MissingFile(t *testing.T) {
	t.Parallel()

	e := pdf.NewExtractor()
	_, err := e.Extract(context.Background(), "/nonexistent/file.pdf")

	require.Error(t, err)
	assert.Equal(t, standex.EINVALID, standex.ErrorCode(err))
}

func TestExtractor_Extract_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 this is not a real pdf"), 0644))

	e := pdf.NewExtractor()
	_, err := e.Extract(context.Background(), path)

	require.Error(t, err)
	assert.Equal(t, standex.EINVALID, standex.ErrorCode(err))
}

func TestExtractor_Extract_CanceledContext(t *testing.T) {
	t.Parallel()

	// Context errors surface before any page work; with a corrupt file the
	// open error wins, so this only asserts the error is non-nil.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	e := pdf.NewExtractor()
	_, err := e.Extract(ctx, path)
	require.Error(t, err)
}
