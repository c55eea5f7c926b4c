package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) (*kong.Kong, *CLI) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("standex"),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser, cli
}

func TestCLI_Parse(t *testing.T) {
	t.Parallel()

	t.Run("ingest with rebuild flag", func(t *testing.T) {
		t.Parallel()

		parser, cli := newTestParser(t)
		ctx, err := parser.Parse([]string{"ingest", "./docs", "--rebuild"})
		require.NoError(t, err)
		assert.Equal(t, "ingest <dir>", ctx.Command())
		assert.Equal(t, "./docs", cli.Ingest.Dir)
		assert.True(t, cli.Ingest.Rebuild)
	})

	t.Run("search defaults limit to one result page", func(t *testing.T) {
		t.Parallel()

		parser, cli := newTestParser(t)
		_, err := parser.Parse([]string{"search", "risk register"})
		require.NoError(t, err)
		assert.Equal(t, "risk register", cli.Search.Query)
		assert.Equal(t, 20, cli.Search.Limit)
		assert.Equal(t, 0, cli.Search.Offset)
	})

	t.Run("page takes slug and index", func(t *testing.T) {
		t.Parallel()

		parser, cli := newTestParser(t)
		_, err := parser.Parse([]string{"page", "iso-21500", "12", "--html"})
		require.NoError(t, err)
		assert.Equal(t, "iso-21500", cli.Page.Slug)
		assert.Equal(t, 12, cli.Page.Index)
		assert.True(t, cli.Page.HTML)
	})

	t.Run("delete requires a slug", func(t *testing.T) {
		t.Parallel()

		parser, _ := newTestParser(t)
		_, err := parser.Parse([]string{"delete"})
		require.Error(t, err)
	})

	t.Run("unknown command fails", func(t *testing.T) {
		t.Parallel()

		parser, _ := newTestParser(t)
		_, err := parser.Parse([]string{"frobnicate"})
		require.Error(t, err)
	})
}
