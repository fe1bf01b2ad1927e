package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wpmdb/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Pin the manifest's packages to distribution URLs in the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Watch: watch,
			})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-resolve whenever the manifest changes")
	return cmd
}
