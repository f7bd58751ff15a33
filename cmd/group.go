package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GAMOps/gamops/config"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/prompt"
	"github.com/GAMOps/gamops/pkg/ui"
	"github.com/GAMOps/gamops/pkg/utils"
)

// audienceFlags maps one flag per capability row of the access matrix.
var audienceFlags = []struct {
	Flag string
	Row  int
}{
	{"contact-owners", models.CapContactOwners},
	{"view-conversations", models.CapViewConversations},
	{"post", models.CapPost},
	{"view-members", models.CapViewMembers},
	{"manage-members", models.CapManageMembers},
}

// groupCmd represents the group command
var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Create a group with its members and access settings",
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		groupEmail, _ := cmd.Flags().GetString("group")
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		owners, _ := cmd.Flags().GetStringSlice("owner")
		managers, _ := cmd.Flags().GetStringSlice("manager")
		members, _ := cmd.Flags().GetStringSlice("member")
		join, _ := cmd.Flags().GetString("join")
		allowExternal, _ := cmd.Flags().GetBool("allow-external")

		settings := config.LoadSettings("group")
		if email == "" {
			email = settings.OperatorEmail
		}
		if !cmd.Flags().Changed("join") && settings.JoinPolicy != "" {
			join = settings.JoinPolicy
		}

		matrix := models.NewPermissionMatrix()
		for _, af := range audienceFlags {
			label, _ := cmd.Flags().GetString(af.Flag)
			if label == "" {
				continue
			}
			col, ok := models.AudienceByLabel(label)
			if !ok {
				utils.Log.Fatalf("Unknown audience %q, expected one of: owners, managers, members, domain, external", label)
			}
			if err := matrix.SetAudience(af.Row, col); err != nil {
				utils.Log.Fatalf("Audience %q is not available for --%s", label, af.Flag)
			}
		}

		opts := models.GroupOptions{
			OperatorEmail: email,
			GroupEmail:    groupEmail,
			Name:          name,
			Description:   description,
			Owners:        owners,
			Managers:      managers,
			Members:       members,
			Join:          models.GroupJoinPolicy(join),
			AllowExternal: allowExternal,
			Matrix:        matrix,
		}
		if err := models.Validate(opts); err != nil {
			utils.Log.Fatal(err)
		}
		if err := config.SaveSettings("group", config.WorkflowSettings{
			OperatorEmail: email,
			JoinPolicy:    join,
			AllowExternal: allowExternal,
		}); err != nil {
			utils.Log.Warn("Could not save group settings: ", err)
		}

		ctx, stop := workflowContext()
		defer stop()

		ui.Header("Group Provisioning")
		// The group workflow is fully flag-driven, no terminal needed.
		c := newController(prompt.AssumeYes{})
		if err := c.RunGroup(ctx, opts); err != nil {
			ui.Error(err.Error())
			os.Exit(1)
		}
		ui.Success("Group " + groupEmail + " ready: " + c.GroupURL(groupEmail))
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
	groupCmd.Flags().StringP("email", "e", "", "Operator email")
	groupCmd.Flags().StringP("group", "g", "", "Email address of the new group")
	groupCmd.Flags().StringP("name", "n", "", "Display name of the group")
	groupCmd.Flags().StringP("description", "d", "", "Group description")
	groupCmd.Flags().StringSlice("owner", nil, "Owner address (repeatable)")
	groupCmd.Flags().StringSlice("manager", nil, "Manager address (repeatable)")
	groupCmd.Flags().StringSlice("member", nil, "Member address (repeatable)")
	groupCmd.Flags().String("join", "invited", "Who can join: invited, approval or anyone")
	groupCmd.Flags().Bool("allow-external", false, "Allow members from outside the organisation")
	for _, af := range audienceFlags {
		groupCmd.Flags().String(af.Flag, "", "Audience for "+af.Flag+" (owners, managers, members, domain, external)")
	}

	groupCmd.MarkFlagRequired("group")
	groupCmd.MarkFlagRequired("name")
}
