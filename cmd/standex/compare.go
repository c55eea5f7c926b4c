package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	report, err := deps.Analyzer.CompareTopic(deps.Ctx, c.Topic)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	if len(report.Hits) == 0 {
		fmt.Fprintf(deps.Stdout, "No standard mentions %q.\n", report.Topic)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Topic: %s\n\n", report.Topic)
	for _, sh := range report.Hits {
		fmt.Fprintf(deps.Stdout, "%s — %d pages\n", sh.Standard.Title, len(sh.Hits))
		for _, hit := range sh.Hits {
			fmt.Fprintf(deps.Stdout, "  p.%d  %s\n", hit.PageIndex, hit.Snippet)
		}
	}

	if len(report.Similarities) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSimilar passages:")
		for _, pair := range report.Similarities {
			fmt.Fprintf(deps.Stdout, "  %s p.%d ~ %s p.%d (%d%%)\n",
				pair.A.Slug, pair.AIndex, pair.B.Slug, pair.BIndex, pair.Score)
		}
	}

	if len(report.Differences) > 0 {
		fmt.Fprintln(deps.Stdout, "\nMethodology-specific passages:")
		for _, diff := range report.Differences {
			fmt.Fprintf(deps.Stdout, "  [%s] %s p.%d (%q)\n",
				diff.Label, diff.Standard.Slug, diff.PageIndex, diff.Keyword)
		}
	}

	if len(report.Uniques) > 0 {
		fmt.Fprintln(deps.Stdout, "\nUnique treatment:")
		for _, su := range report.Uniques {
			for _, page := range su.Pages {
				fmt.Fprintf(deps.Stdout, "  %s p.%d (%d%% unique)\n",
					su.Standard.Slug, page.PageIndex, page.Uniqueness)
			}
		}
	}
	return nil
}
