package main

import (
	"context"
	"testing"

	"github.com/standexhq/standex"
	"github.com/standexhq/standex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranked results with highlights", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Search = &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts standex.SearchOptions) ([]*standex.SearchResult, error) {
				assert.Equal(t, "risk register", query)
				assert.Equal(t, 5, opts.Limit)
				return []*standex.SearchResult{
					{
						Page:      &standex.Page{PageIndex: 12},
						Standard:  &standex.Standard{Slug: "pmbok"},
						Score:     2.31,
						Highlight: "maintain a <mark>risk</mark> <mark>register</mark>",
					},
				}, nil
			},
		}

		cmd := &SearchCmd{Query: "risk register", Limit: 5}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "pmbok p.12")
		assert.Contains(t, out, "<mark>risk</mark>")
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t)
		deps.Search = &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts standex.SearchOptions) ([]*standex.SearchResult, error) {
				return nil, nil
			},
		}

		cmd := &SearchCmd{Query: "absent"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No matches.")
	})

	t.Run("surfaces service errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t)
		deps.Search = &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts standex.SearchOptions) ([]*standex.SearchResult, error) {
				return nil, standex.Errorf(standex.EINTERNAL, "boom")
			},
		}

		cmd := &SearchCmd{Query: "x"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "error:")
	})
}
