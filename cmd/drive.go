package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GAMOps/gamops/config"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/ui"
	"github.com/GAMOps/gamops/pkg/utils"
)

// driveCmd represents the drive command
var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Create a shared drive with optional external and GDPR variants",
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		name, _ := cmd.Flags().GetString("name")
		copyTemplate, _ := cmd.Flags().GetBool("copy-template")
		removeSelf, _ := cmd.Flags().GetBool("remove-self")

		settings := config.LoadSettings("drive")
		if email == "" {
			email = settings.OperatorEmail
		}
		if !cmd.Flags().Changed("copy-template") {
			copyTemplate = settings.CopyTemplate
		}

		opts := models.DriveOptions{
			OperatorEmail: email,
			Name:          name,
			CopyTemplate:  copyTemplate,
			RemoveSelf:    removeSelf,
		}
		if err := models.Validate(opts); err != nil {
			utils.Log.Fatal(err)
		}
		if err := config.SaveSettings("drive", config.WorkflowSettings{
			OperatorEmail: email,
			CopyTemplate:  copyTemplate,
		}); err != nil {
			utils.Log.Warn("Could not save drive settings: ", err)
		}

		ctx, stop := workflowContext()
		defer stop()

		ui.Header("Shared Drive Provisioning")
		c := newController(nil)
		entries, err := c.RunDrive(ctx, opts)
		if len(entries) > 0 {
			ui.ShowDriveSummary(entries)
		} else {
			ui.Info("No drives were created in this session")
		}
		if err != nil {
			ui.Error(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(driveCmd)
	driveCmd.Flags().StringP("email", "e", "", "Operator email the drives are created as")
	driveCmd.Flags().StringP("name", "n", "", "Base name of the shared drive")
	driveCmd.Flags().BoolP("copy-template", "t", false, "Copy the org folder structure template into the main drive")
	driveCmd.Flags().BoolP("remove-self", "r", false, "Remove the operator from the created drives without asking")

	driveCmd.MarkFlagRequired("name")
}
