package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/droidpack/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run the given tasks and their dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ConfigPath:  c.configPath,
				NoCache:     noCache,
				Parallelism: jobs,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Run every task even when it is up to date")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum number of tasks running at once (0 means one per CPU)")
	return cmd
}
