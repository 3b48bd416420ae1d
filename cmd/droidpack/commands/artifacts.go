package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newArtifactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "artifacts",
		Short: "List the published artifacts and their digests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			artifacts, err := c.app.Artifacts(cmd.Context(), c.configPath)
			if err != nil {
				return err
			}
			return RenderArtifacts(cmd.OutOrStdout(), artifacts)
		},
	}
}
