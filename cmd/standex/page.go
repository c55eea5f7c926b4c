package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
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

	counts, err := deps.Pages.CountPagesByStandard(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s — page %d of %d\n", std.Title, page.PageIndex+1, counts[std.ID])
	if page.SectionHint != "" {
		fmt.Fprintf(deps.Stdout, "[%s]\n", page.SectionHint)
	}
	fmt.Fprintln(deps.Stdout)
	if c.HTML {
		fmt.Fprintln(deps.Stdout, page.ContentHTML)
	} else {
		fmt.Fprintln(deps.Stdout, page.Content)
	}

	if page.PageIndex > 0 || page.PageIndex+1 < counts[std.ID] {
		fmt.Fprintln(deps.Stdout)
	}
	if page.PageIndex > 0 {
		fmt.Fprintf(deps.Stdout, "prev: standex page %s %d\n", c.Slug, page.PageIndex-1)
	}
	if page.PageIndex+1 < counts[std.ID] {
		fmt.Fprintf(deps.Stdout, "next: standex page %s %d\n", c.Slug, page.PageIndex+1)
	}
	return nil
}
