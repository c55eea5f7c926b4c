package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the insights command.
func (c *InsightsCmd) Run(deps *Dependencies) error {
	report, err := deps.Analyzer.Insights(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	if report.TotalPages == 0 {
		fmt.Fprintln(deps.Stdout, "Corpus is empty. Use 'standex ingest' to add standards.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Corpus: %d pages\n", report.TotalPages)
	for _, count := range report.PageCounts {
		fmt.Fprintf(deps.Stdout, "  %-30s %d pages\n", count.Standard.Title, count.Pages)
	}

	fmt.Fprintln(deps.Stdout, "\nLifecycle term coverage:")
	for _, overlap := range report.Overlaps {
		fmt.Fprintf(deps.Stdout, "  %-14s", overlap.Term)
		for _, count := range overlap.Counts {
			fmt.Fprintf(deps.Stdout, " %s:%d", count.Standard.Slug, count.Pages)
		}
		fmt.Fprintln(deps.Stdout)
	}

	if len(report.Similarities) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSimilar leading content:")
		for _, pair := range report.Similarities {
			fmt.Fprintf(deps.Stdout, "  %s p.%d ~ %s p.%d (%d%%)\n",
				pair.A.Slug, pair.AIndex, pair.B.Slug, pair.BIndex, pair.Score)
		}
	}
	return nil
}
