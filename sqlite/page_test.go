package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/standexhq/standex"
	"github.com/standexhq/standex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageService_CreatePages(t *testing.T) {
	t.Parallel()

	t.Run("assigns sequential indices from zero", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		pages := []*standex.Page{
			{Content: "page one"},
			{Content: "page two"},
			{Content: "page three"},
		}
		require.NoError(t, svc.CreatePages(ctx, std.ID, pages))

		stored, err := svc.FindPages(ctx, standex.PageFilter{StandardID: &std.ID})
		require.NoError(t, err)
		require.Len(t, stored, 3)
		for i, p := range stored {
			assert.Equal(t, i, p.PageIndex)
			assert.NotZero(t, p.ID)
		}
	})

	t.Run("returns ECONFLICT when pages exist", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreatePages(ctx, std.ID, []*standex.Page{{Content: "a"}}))

		err := svc.CreatePages(ctx, std.ID, []*standex.Page{{Content: "b"}})
		require.Error(t, err)
		assert.Equal(t, standex.ECONFLICT, standex.ErrorCode(err))
	})

	t.Run("rejects empty content and commits nothing", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		err := svc.CreatePages(ctx, std.ID, []*standex.Page{
			{Content: "fine"},
			{Content: ""},
		})
		require.Error(t, err)
		assert.Equal(t, standex.EINVALID, standex.ErrorCode(err))

		// The whole batch rolls back, including the valid first page.
		count, err := svc.CountPages(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("new pages are searchable immediately", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		search := sqlite.NewSearchService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreatePages(ctx, std.ID, []*standex.Page{
			{Content: "the zanzibar protocol"},
		}))

		results, err := search.Search(ctx, "zanzibar", standex.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 0, results[0].Page.PageIndex)
	})
}

func TestPageService_ReplacePages(t *testing.T) {
	t.Parallel()

	t.Run("swaps the full page set atomically", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreatePages(ctx, std.ID, []*standex.Page{
			{Content: "old content alpha"},
			{Content: "old content beta"},
			{Content: "old content gamma"},
		}))

		require.NoError(t, svc.ReplacePages(ctx, std.ID, []*standex.Page{
			{Content: "new content one"},
			{Content: "new content two"},
		}))

		stored, err := svc.FindPages(ctx, standex.PageFilter{StandardID: &std.ID})
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, "new content one", stored[0].Content)

		// The index must reflect the replacement, not the old rows.
		search := sqlite.NewSearchService(db)
		results, err := search.Search(ctx, "alpha", standex.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("rebuild is idempotent", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		build := func() []*standex.Page {
			return []*standex.Page{
				{Content: "chapter one text"},
				{Content: "chapter two text"},
			}
		}

		require.NoError(t, svc.ReplacePages(ctx, std.ID, build()))
		first, err := svc.FindPages(ctx, standex.PageFilter{StandardID: &std.ID})
		require.NoError(t, err)

		require.NoError(t, svc.ReplacePages(ctx, std.ID, build()))
		second, err := svc.FindPages(ctx, standex.PageFilter{StandardID: &std.ID})
		require.NoError(t, err)

		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].PageIndex, second[i].PageIndex)
			assert.Equal(t, first[i].Content, second[i].Content)
		}
	})
}

func TestPageService_FindPage(t *testing.T) {
	t.Parallel()

	t.Run("finds page by index", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreatePages(ctx, std.ID, []*standex.Page{
			{Content: "first"},
			{Content: "second", ContentHTML: "<p>second</p>", SectionHint: "Chapter 2"},
		}))

		page, err := svc.FindPage(ctx, std.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "second", page.Content)
		assert.Equal(t, "<p>second</p>", page.ContentHTML)
		assert.Equal(t, "Chapter 2", page.SectionHint)
	})

	t.Run("returns ENOTFOUND past the last page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		std := createTestStandard(t, db, "PMBOK Guide")
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreatePages(ctx, std.ID, []*standex.Page{{Content: "only"}}))

		_, err := svc.FindPage(ctx, std.ID, 1)
		require.Error(t, err)
		assert.Equal(t, standex.ENOTFOUND, standex.ErrorCode(err))
	})
}

func TestPageService_FindPages_ContentFilters(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	std := createTestStandard(t, db, "PMBOK Guide")
	svc := sqlite.NewPageService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreatePages(ctx, std.ID, []*standex.Page{
		{Content: "Risk management requires a register"},
		{Content: "Quality planning and audits"},
		{Content: "Stakeholder RISK appetite"},
	}))

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		term := "risk"
		pages, err := svc.FindPages(ctx, standex.PageFilter{StandardID: &std.ID, ContentSubstring: &term})
		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, 0, pages[0].PageIndex)
		assert.Equal(t, 2, pages[1].PageIndex)
	})

	t.Run("any-of match", func(t *testing.T) {
		t.Parallel()

		pages, err := svc.FindPages(ctx, standex.PageFilter{
			StandardID: &std.ID,
			ContentAny: []string{"audits", "register"},
		})
		require.NoError(t, err)
		assert.Len(t, pages, 2)
	})

	t.Run("limit applies", func(t *testing.T) {
		t.Parallel()

		pages, err := svc.FindPages(ctx, standex.PageFilter{StandardID: &std.ID, Limit: 1})
		require.NoError(t, err)
		assert.Len(t, pages, 1)
	})
}

func TestPageService_DeletePagesByStandard(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	std := createTestStandard(t, db, "PMBOK Guide")
	svc := sqlite.NewPageService(db)
	search := sqlite.NewSearchService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreatePages(ctx, std.ID, []*standex.Page{
		{Content: "ephemeral quokka content"},
	}))

	require.NoError(t, svc.DeletePagesByStandard(ctx, std.ID))

	count, err := svc.CountPages(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// No stale snippet for a deleted page.
	results, err := search.Search(ctx, "quokka", standex.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPageService_CountPagesByStandard(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewPageService(db)
	ctx := context.Background()

	a := createTestStandard(t, db, "Standard A")
	b := createTestStandard(t, db, "Standard B")

	var aPages []*standex.Page
	for i := 0; i < 3; i++ {
		aPages = append(aPages, &standex.Page{Content: fmt.Sprintf("a page %d", i)})
	}
	require.NoError(t, svc.CreatePages(ctx, a.ID, aPages))
	require.NoError(t, svc.CreatePages(ctx, b.ID, []*standex.Page{{Content: "b page"}}))

	counts, err := svc.CountPagesByStandard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts[a.ID])
	assert.Equal(t, 1, counts[b.ID])
}
