package main

import (
	"fmt"

	"github.com/standexhq/standex"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return standex.Errorf(standex.EINVALID, "use --force to confirm deletion")
	}

	std, err := deps.Standards.FindStandardBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if standex.ErrorCode(err) == standex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: standard %q not found. Use 'standex list' to see available standards.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Standards.DeleteStandard(deps.Ctx, std.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", standex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted standard %q\n", std.Title)
	return nil
}
