package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getpage/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
}

func runVersion(c *cobra.Command, _ []string) error {
	fmt.Fprintln(c.OutOrStdout(), version.GetInfo().String())
	return nil
}
