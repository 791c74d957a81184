package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/getpage/cli/internal/config"
	oerrors "github.com/getpage/cli/internal/errors"
	"github.com/getpage/cli/internal/name"
	"github.com/getpage/cli/internal/output"
	"github.com/getpage/cli/internal/scaffold"
	"github.com/getpage/cli/internal/templates"
)

// NewRootCmd creates the root command. The root command itself is the
// generator; trailing arguments are joined into one name phrase.
func NewRootCmd() *cobra.Command {
	var (
		flagForce   bool
		flagDryRun  bool
		flagDir     string
		flagConfig  string
		flagVerbose bool
	)

	c := &cobra.Command{
		Use:   "getpage [flags] <name phrase...>",
		Short: "Scaffold a GetX feature page",
		Long: `getpage scaffolds the boilerplate for one GetX feature page.

The name phrase may use any casing style (PascalCase, camelCase, snake_case,
kebab-case, or plain words); acronyms are preserved. It creates a directory
named after the lowercase form with a widget/ subdirectory and five Dart
files (binding, logic, logic_impl, state, view) whose class names use the
capitalized form.

Examples:
  # Scaffold reset_password/ with ResetPassword identifiers
  getpage reset password

  # Same result from other spellings
  getpage ResetPassword
  getpage reset-password

  # Overwrite existing files
  getpage -f reset password

  # Show what would be written without touching the filesystem
  getpage -n reset password`,
		Args: func(c *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("%w: missing name phrase", oerrors.ErrUsage)
			}
			return nil
		},
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			// Past argument validation: runtime errors should not dump usage.
			c.SilenceUsage = true
			return runGenerate(c, args, flagForce, flagDryRun, flagDir, flagConfig, flagVerbose)
		},
	}

	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s", oerrors.ErrUsage, err)
	})

	c.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite existing files")
	c.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "report actions without writing anything")
	c.Flags().StringVarP(&flagDir, "dir", "d", "", "directory to generate the page in (env: GETPAGE_DIR)")
	c.Flags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: GETPAGE_CONFIG)")
	c.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	c.AddCommand(newVersionCmd())
	c.AddCommand(newRolesCmd())

	return c
}

func runGenerate(c *cobra.Command, args []string, force, dryRun bool, dir, configFile string, verbose bool) error {
	cfg, err := config.NewLoader().Load(configFile)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("loading config: %w", err), oerrors.ExitGeneralError)
	}

	output.SetupLogging(verbose || cfg.Verbose)

	if dir == "" {
		dir = cfg.OutputDir
	}

	raw := strings.Join(args, " ")
	output.Debug("deriving names", "raw", raw, "dir", dir, "force", force, "dryRun", dryRun)

	n, err := name.Normalize(raw)
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitValidationError)
	}
	output.Debug("derived names", "snake", n.Snake, "pascal", n.Pascal)

	res, err := scaffold.New().Generate(n, dir, scaffold.Options{Force: force, DryRun: dryRun})
	if err != nil {
		return oerrors.NewExitError(err, oerrors.ExitGeneralError)
	}

	out := c.OutOrStdout()
	for _, a := range res.Actions {
		fmt.Fprintln(out, output.ActionStyle(a.Kind.Verb()).Render(a.String()))
	}

	styles := output.GetStyles()
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Bold.Render("Generated:"))
	fmt.Fprintf(out, "  Name:   %s\n", styles.Noun.Render(res.Pascal))
	fmt.Fprintf(out, "  Folder: %s\n", styles.Noun.Render(res.Dir))
	fmt.Fprintln(out, "  Files:")
	for _, f := range res.Files {
		fmt.Fprintf(out, "    - %s\n", f)
	}

	if dryRun {
		output.Info("dry run: no files were written")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, output.RenderFileTree(res.Dir, treeEntries(n)))
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Page %s scaffolded", res.Pascal)))

	return nil
}

// treeEntries maps the generated relative paths to their descriptions for
// the final tree listing.
func treeEntries(n name.Name) map[string]string {
	entries := map[string]string{
		templates.WidgetDir + "/": "Page-local widgets",
	}
	for _, role := range templates.Roles() {
		entries[templates.FileName(role, n.Snake)] = role.Description
	}
	return entries
}
