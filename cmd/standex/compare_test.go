package main

import (
	"context"
	"testing"

	"github.com/standexhq/standex"
	"github.com/standexhq/standex/compare"
	"github.com/standexhq/standex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyzerDeps wires a real analyzer over a tiny in-memory corpus.
func analyzerDeps(t *testing.T) (*Dependencies, func() string) {
	t.Helper()
	deps, stdout, _ := testDeps(t)

	standards := []*standex.Standard{
		{ID: "1", Slug: "iso-21500", Title: "ISO 21500"},
		{ID: "2", Slug: "pmbok", Title: "PMBOK Guide"},
	}
	pages := map[string][]*standex.Page{
		"1": {{ID: 1, StandardID: "1", PageIndex: 0, Content: "The risk register shall be maintained by the project manager."}},
		"2": {{ID: 2, StandardID: "2", PageIndex: 0, Content: "The risk register shall be maintained by the project manager."}},
	}

	deps.Analyzer = &compare.Analyzer{
		Standards: &mock.StandardService{
			FindStandardsFn: func(ctx context.Context, filter standex.StandardFilter) ([]*standex.Standard, error) {
				return standards, nil
			},
		},
		Pages: &mock.PageService{
			FindPagesFn: func(ctx context.Context, filter standex.PageFilter) ([]*standex.Page, error) {
				var out []*standex.Page
				for _, std := range standards {
					if filter.StandardID != nil && *filter.StandardID != std.ID {
						continue
					}
					out = append(out, pages[std.ID]...)
				}
				return out, nil
			},
			CountPagesFn: func(ctx context.Context) (int, error) { return 2, nil },
			CountPagesByStandardFn: func(ctx context.Context) (map[string]int, error) {
				return map[string]int{"1": 1, "2": 1}, nil
			},
		},
	}
	return deps, stdout.String
}

func TestCompareCmd_Run(t *testing.T) {
	t.Parallel()

	deps, out := analyzerDeps(t)
	cmd := &CompareCmd{Topic: "risk"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, out(), "Topic: risk")
	assert.Contains(t, out(), "ISO 21500")
	assert.Contains(t, out(), "Similar passages:")
	assert.Contains(t, out(), "(100%)")
}

func TestInsightsCmd_Run(t *testing.T) {
	t.Parallel()

	deps, out := analyzerDeps(t)
	cmd := &InsightsCmd{}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, out(), "Corpus: 2 pages")
	assert.Contains(t, out(), "Lifecycle term coverage:")
	assert.Contains(t, out(), "risk")
}

func TestTailorCmd_Run(t *testing.T) {
	t.Parallel()

	deps, out := analyzerDeps(t)
	cmd := &TailorCmd{Type: "register"}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, out(), `Recommendations for "register"`)
	assert.Contains(t, out(), "iso-21500 p.0")
}
