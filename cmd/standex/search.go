package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.Search(deps.Ctx, c.Query, standex.SearchOptions{
		Limit:  c.Limit,
		Offset: c.Offset,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s p.%d (%.2f)\n  %s\n",
			r.Standard.Slug, r.Page.PageIndex, r.Score, r.Highlight)
	}
	return nil
}
