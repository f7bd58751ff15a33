package controller

import (
	"context"
	"fmt"

	"github.com/GAMOps/gamops/pkg/batch"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/parse"
)

// offboardStep is one fixed stage of the leaver sequence.
type offboardStep struct {
	Name string
	Args []string
}

func (c *Controller) offboardSteps(user string) []offboardStep {
	return []offboardStep{
		{"remove from all groups", []string{"user", user, "delete", "groups"}},
		{"set out-of-office message", []string{
			"user", user, "vacation", "on",
			"subject", c.Policy.Vacation.Subject,
			"message", c.Policy.Vacation.Message}},
		{"reset password", []string{"update", "user", user, "password", "random"}},
		{"sign out from all devices", []string{"user", user, "signout"}},
		{"hide from directory", []string{"update", "user", user, "gal", "false"}},
		{"move to leavers OU", []string{"update", "org", c.Policy.LeaversOU, "add", "users", user}},
	}
}

// RunOffboard processes departing users one at a time: transfer the
// groups they own to their manager, then run the fixed leaver sequence.
// A failed step is recorded as a warning and the sequence continues,
// and one user's failures never stop the remaining users. The operator
// confirms once up front since the sequence is destructive.
func (c *Controller) RunOffboard(ctx context.Context, opts models.OffboardOptions) ([]models.OffboardResult, error) {
	if err := models.Validate(opts); err != nil {
		return nil, err
	}

	question := fmt.Sprintf(
		"Offboard %d user(s)? This resets passwords, clears group memberships and moves the accounts to %s.",
		len(opts.Users), c.Policy.LeaversOU)
	if !c.Prompter.Confirm(question) {
		c.Log.Info("Offboarding cancelled")
		return nil, nil
	}

	results := make([]models.OffboardResult, 0, len(opts.Users))
	for _, user := range opts.Users {
		c.Log.Infof("Processing %s", user)
		results = append(results, c.offboardUser(ctx, user))
	}
	return results, nil
}

func (c *Controller) offboardUser(ctx context.Context, user string) models.OffboardResult {
	result := models.OffboardResult{User: user}

	c.Log.Info("Finding manager for the user")
	managerRes := c.run(ctx, "user", user, "print", "manager")
	if managerRes.Success() {
		result.Manager = parse.ManagerEmail(managerRes.Lines)
	}
	if result.Manager == "" {
		result.Warnings = append(result.Warnings, "no manager found, owned groups were not transferred")
	}

	c.Log.Info("Finding groups owned by the user")
	groupsRes := c.run(ctx, "user", user, "print", "groups", "roles", "owner")
	ownedGroups := parse.OwnedGroups(groupsRes.Lines)
	if !groupsRes.Success() {
		result.Warnings = append(result.Warnings, "could not list owned groups")
	}

	if result.Manager != "" && len(ownedGroups) > 0 {
		c.Log.Infof("Transferring %d owned groups to %s", len(ownedGroups), result.Manager)
		transfers := batch.Run(ctx, ownedGroups, c.Workers, func(ctx context.Context, group string) error {
			res := c.run(ctx, "update", "group", group, "add", "owner", result.Manager)
			if !res.Success() {
				return models.ErrCommandFailed
			}
			return nil
		})
		for _, t := range transfers {
			if t.Err != nil {
				result.Warnings = append(result.Warnings, "could not transfer ownership of "+t.Item)
			} else {
				result.TransferredGroups = append(result.TransferredGroups, t.Item)
			}
		}
	}

	for _, step := range c.offboardSteps(user) {
		c.Log.Infof("%s: %s", user, step.Name)
		if c.run(ctx, step.Args...).Success() {
			result.StepsCompleted++
		} else {
			result.Warnings = append(result.Warnings, "failed to "+step.Name)
		}
	}
	return result
}
