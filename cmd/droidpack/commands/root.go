// Package commands implements the CLI commands for the droidpack build tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/droidpack/internal/app"
	"go.trai.ch/droidpack/internal/build"
	"go.trai.ch/droidpack/internal/core/domain"
)

// CLI represents the command line interface for droidpack.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	configPath string
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(level slog.Level, json bool)
	Run(ctx context.Context, targetNames []string, opts app.RunOptions) error
	Tasks(ctx context.Context, path string) ([]*domain.Task, error)
	Artifacts(ctx context.Context, path string) ([]app.ArtifactInfo, error)
	Clean(ctx context.Context, path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "droidpack",
		Short:         "Package sources and javadoc archives of android libraries",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("log-level", "l", "lifecycle", "Log level: debug, info, lifecycle, warn or error")
	flags.Bool("json", false, "Write logs as JSON")
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to droidpack.yaml or the directory to search from")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := domain.ParseLevel(levelName)
		if err != nil {
			return err
		}
		json, _ := cmd.Flags().GetBool("json")
		c.app.ConfigureLogging(level, json)
		return nil
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newTasksCmd())
	rootCmd.AddCommand(c.newArtifactsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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
