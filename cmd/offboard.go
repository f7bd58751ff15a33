package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/prompt"
	"github.com/GAMOps/gamops/pkg/ui"
	"github.com/GAMOps/gamops/pkg/utils"
)

// offboardCmd represents the offboard command
var offboardCmd = &cobra.Command{
	Use:   "offboard [user@domain ...]",
	Short: "Offboard departing users",
	Long: `Offboard departing users: transfer their owned groups to their
manager, remove their memberships, set the leaver auto-reply, reset the
password, sign out their devices, hide them from the directory and move
them to the leavers OU.`,
	Run: func(cmd *cobra.Command, args []string) {
		users := args
		file, _ := cmd.Flags().GetString("file")
		if file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				utils.Log.Fatal("Cannot read user list: ", err)
			}
			for _, line := range strings.Split(string(data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					users = append(users, line)
				}
			}
		}

		opts := models.OffboardOptions{Users: users}
		if err := models.Validate(opts); err != nil {
			utils.Log.Fatal(err)
		}

		var prompter prompt.Prompter
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			prompter = prompt.AssumeYes{}
		}

		ctx, stop := workflowContext()
		defer stop()

		ui.Header("Offboarding")
		results, err := newController(prompter).RunOffboard(ctx, opts)
		if err != nil {
			ui.Error(err.Error())
			os.Exit(1)
		}
		if results == nil {
			ui.Info("Offboarding cancelled")
			return
		}
		ui.ShowOffboardSummary(results)
	},
}

func init() {
	rootCmd.AddCommand(offboardCmd)
	offboardCmd.Flags().StringP("file", "f", "", "File with one user address per line")
	offboardCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
