// Package commands implements the CLI commands for the ferry release tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ferry/internal/app"
	"go.trai.ch/ferry/internal/build"
	"go.trai.ch/ferry/internal/core/domain"
)

// CLI represents the command line interface for ferry.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Release(ctx context.Context, opts app.RunOptions) (domain.Outcome, error)
	Status(ctx context.Context, opts app.RunOptions) (*domain.ReleaseStatus, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "ferry",
		Short: "Build native artifacts and publish once every platform has uploaded",
		Long: `ferry builds the native library for the current platform, exchanges the
build directories with the other platform through a shared folder, and in
dist mode publishes the package and tags the commit once both are present.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRelease,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("mode", "m", string(domain.ModeDevelopment), "Release mode: development or dist")
	rootCmd.PersistentFlags().StringP("config", "c", domain.ProjectFileName, "Path to the project configuration file")
	rootCmd.PersistentFlags().StringP("local", "l", domain.LocalFileName, "Path to the local settings file")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newStatusCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	mode, _ := cmd.Flags().GetString("mode")
	config, _ := cmd.Flags().GetString("config")
	local, _ := cmd.Flags().GetString("local")
	return app.RunOptions{
		Mode:       mode,
		ConfigPath: config,
		LocalPath:  local,
	}
}
