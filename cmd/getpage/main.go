// Package main is the entry point for the getpage CLI.
package main

import (
	"fmt"
	"os"

	oerrors "github.com/getpage/cli/internal/errors"
)

func main() {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
