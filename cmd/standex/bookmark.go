package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the bookmark command.
func (c *BookmarkCmd) Run(deps *Dependencies) error {
	std, err := deps.Standards.FindStandardBySlug(deps.Ctx, c.Slug)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	page, err := deps.Pages.FindPage(deps.Ctx, std.ID, c.Index)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	exists, err := deps.Bookmarks.ToggleBookmark(deps.Ctx, c.Session, page.ID, c.Label)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	if exists {
		fmt.Fprintf(deps.Stdout, "Bookmarked %s p.%d\n", std.Slug, page.PageIndex)
	} else {
		fmt.Fprintf(deps.Stdout, "Removed bookmark on %s p.%d\n", std.Slug, page.PageIndex)
	}
	return nil
}

// Run executes the bookmarks command.
func (c *BookmarksCmd) Run(deps *Dependencies) error {
	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, c.Session)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks.")
		return nil
	}

	for _, bm := range bookmarks {
		pages, err := deps.Pages.FindPages(deps.Ctx, standex.PageFilter{ID: &bm.PageID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
			return err
		}
		if len(pages) == 0 {
			continue
		}
		page := pages[0]

		std, err := deps.Standards.FindStandardByID(deps.Ctx, page.StandardID)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
			return err
		}

		label := bm.Label
		if label == "" {
			label = standex.TopicSnippet(page.Content, "", 0, 60)
		}
		fmt.Fprintf(deps.Stdout, "%s p.%d  %s\n", std.Slug, page.PageIndex, label)
	}
	return nil
}
