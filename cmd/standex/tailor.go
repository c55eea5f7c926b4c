package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the tailor command.
func (c *TailorCmd) Run(deps *Dependencies) error {
	report, err := deps.Analyzer.Tailor(deps.Ctx, c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Recommendations for %q:\n", report.ProjectType)
	if len(report.Recommendations) == 0 {
		fmt.Fprintln(deps.Stdout, "  none found")
	}
	for _, rec := range report.Recommendations {
		fmt.Fprintf(deps.Stdout, "  %s p.%d  %s\n", rec.Standard.Slug, rec.PageIndex, rec.Snippet)
	}

	for _, phase := range report.Phases {
		if len(phase.Evidence) == 0 {
			continue
		}
		fmt.Fprintf(deps.Stdout, "\n%s:\n", phase.Phase)
		for _, rec := range phase.Evidence {
			fmt.Fprintf(deps.Stdout, "  %s p.%d  %s\n", rec.Standard.Slug, rec.PageIndex, rec.Snippet)
		}
	}
	return nil
}
