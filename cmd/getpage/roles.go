package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getpage/cli/internal/templates"
)

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the generated file roles",
		Long: `Lists the five file roles generated for every feature page, with the
file naming pattern and a short description of each.`,
		Args: cobra.NoArgs,
		RunE: runRoles,
	}
}

func runRoles(c *cobra.Command, _ []string) error {
	out := c.OutOrStdout()

	fmt.Fprintln(out, "Generated files (for a page named <name>):")
	fmt.Fprintln(out)

	maxLen := 0
	for _, r := range templates.Roles() {
		if n := len(templates.FileName(r, "<name>")); n > maxLen {
			maxLen = n
		}
	}

	for _, r := range templates.Roles() {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, templates.FileName(r, "<name>"), r.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Plus a widget/ subdirectory for page-local widgets.")
	return nil
}
