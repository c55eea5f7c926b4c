package main

import (
	"fmt"

	"github.com/standexhq/standex"
	"github.com/standexhq/standex/ingest"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	results, err := deps.Ingester.IngestDir(deps.Ctx, c.Dir, c.Rebuild)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stderr, "No PDF or EPUB documents found in %q\n", c.Dir)
		return nil
	}

	var failed int
	for _, r := range results {
		switch r.Status {
		case ingest.StatusFailed:
			failed++
			fmt.Fprintf(deps.Stderr, "%-8s %s: %s\n", r.Status, r.Path, standex.ErrorMessage(r.Err))
		case ingest.StatusSkipped:
			fmt.Fprintf(deps.Stdout, "%-8s %s (unchanged)\n", r.Status, r.Standard.Title)
		default:
			fmt.Fprintf(deps.Stdout, "%-8s %s (%d pages)\n", r.Status, r.Standard.Title, r.Pages)
		}
	}

	if failed > 0 {
		fmt.Fprintf(deps.Stderr, "%d of %d documents failed\n", failed, len(results))
	}
	return nil
}
