package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	standards, err := deps.Standards.FindStandards(deps.Ctx, standex.StandardFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	if len(standards) == 0 {
		fmt.Fprintln(deps.Stdout, "No standards found. Use 'standex ingest' to add some.")
		return nil
	}

	counts, err := deps.Pages.CountPagesByStandard(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	for _, std := range standards {
		fmt.Fprintf(deps.Stdout, "%-24s %-5s %4d pages  %s\n", std.Slug, std.SourceType, counts[std.ID], std.Title)
	}
	return nil
}
