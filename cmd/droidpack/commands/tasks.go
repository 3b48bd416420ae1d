package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := c.app.Tasks(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return RenderTasks(out, tasks, terminalWidth(out))
		},
	}
}
