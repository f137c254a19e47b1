// Package commands implements the CLI commands for the lockaudit tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/soldera/lockaudit/internal/app"
	"github.com/soldera/lockaudit/internal/build"
)

// CLI represents the command line interface for lockaudit.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "lockaudit [package] [version]",
		Short: "Audit a pnpm lockfile for compromised package versions",
		Long: `lockaudit checks whether packages appear in a pnpm-lock.yaml dependency
graph, either as a single ad-hoc query (package name with optional version)
or as a batch run against a tab-separated advisory list.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.Flags().StringP("file", "f", "pnpm-lock.yaml", "Path to the lockfile to audit")
	rootCmd.Flags().StringP("batch", "b", "", "Path to a tab-separated advisory list to check in batch")
	rootCmd.Flags().StringP("output", "o", "", "Write the batch TSV report to this file")
	rootCmd.Flags().BoolP("verbose", "v", false, "Show occurrence specifiers and lockfile diagnostics")

	// Registered after --verbose so the default version flag does not claim
	// the -v shorthand.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.RunE = c.runAudit

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) runAudit(cmd *cobra.Command, args []string) error {
	batch, _ := cmd.Flags().GetString("batch")
	if batch == "" && len(args) == 0 {
		// Nothing to audit; show usage without failing.
		return cmd.Help()
	}

	file, _ := cmd.Flags().GetString("file")
	verbose, _ := cmd.Flags().GetBool("verbose")
	opts := app.Options{Verbose: verbose}

	lockText, err := os.ReadFile(file)
	if err != nil {
		return zerr.Wrap(err, "failed to read lockfile")
	}

	if batch != "" {
		return c.runBatch(cmd, string(lockText), batch, opts)
	}

	version := ""
	if len(args) == 2 {
		version = args[1]
	}
	return c.app.Check(cmd.Context(), string(lockText), args[0], version, cmd.OutOrStdout(), opts)
}

func (c *CLI) runBatch(cmd *cobra.Command, lockText, batchPath string, opts app.Options) error {
	batchText, err := os.ReadFile(batchPath)
	if err != nil {
		return zerr.Wrap(err, "failed to read batch file")
	}

	output, _ := cmd.Flags().GetString("output")
	var report io.Writer
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return zerr.Wrap(err, "failed to create report file")
		}
		defer func() { _ = f.Close() }()
		report = f
	}

	if err := c.app.Batch(cmd.Context(), lockText, string(batchText),
		cmd.OutOrStdout(), report, opts); err != nil {
		return err
	}

	if output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nReport written to %s\n", output)
	}
	return nil
}
