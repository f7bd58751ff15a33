package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GAMOps/gamops/pkg/models"
)

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec -- <gam arguments>",
	Short: "Run a single gam command through the streaming runner",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := workflowContext()
		defer stop()

		res := newRunner().Run(ctx, models.NewCommand(args...))
		os.Exit(res.ExitCode)
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
