package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/GAMOps/gamops/pkg/batch"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/parse"
)

type groupMembership struct {
	Role models.GroupRole
	Addr string
}

// RunGroup creates a group, waits for it to become visible, adds its
// members, applies the baseline and matrix-derived settings and
// verifies the two settings gam is known to drop on fresh groups.
// Existence and settings verification are advisory.
func (c *Controller) RunGroup(ctx context.Context, opts models.GroupOptions) error {
	if err := models.Validate(opts); err != nil {
		return err
	}
	matrix := opts.Matrix
	if matrix == nil {
		matrix = models.NewPermissionMatrix()
	}

	c.Log.Infof("Creating group %s", opts.GroupEmail)
	createArgs := []string{"create", "group", opts.GroupEmail, "name", opts.Name}
	if opts.Description != "" {
		createArgs = append(createArgs, "description", opts.Description)
	}
	if !c.run(ctx, createArgs...).Success() {
		return fmt.Errorf("create group %s: %w", opts.GroupEmail, models.ErrCommandFailed)
	}

	exists := c.Existence.Verify(ctx, func(ctx context.Context) bool {
		return c.run(ctx, "info", "group", opts.GroupEmail).Success()
	})
	if !exists {
		// The create command already reported success, so keep going.
		c.Log.Warn("Group verification timed out, proceeding with member addition")
	}

	c.addGroupMembers(ctx, opts)

	settingsArgs := []string{"update", "group", opts.GroupEmail}
	settingsArgs = append(settingsArgs, c.Policy.GroupBaseline...)
	settingsArgs = append(settingsArgs, matrix.SettingsArgs()...)
	settingsArgs = append(settingsArgs, "whocanjoin", opts.Join.Token())
	if !c.run(ctx, settingsArgs...).Success() {
		return fmt.Errorf("update group %s settings: %w", opts.GroupEmail, models.ErrCommandFailed)
	}

	// gam rejects allowexternalmembers when combined with the settings
	// above, so it goes out as its own command, as does replyto.
	external := "false"
	if opts.AllowExternal {
		external = "true"
	}
	if !c.run(ctx, "update", "group", opts.GroupEmail, "allowexternalmembers", external).Success() {
		c.Log.Warn("Failed to update the external members setting")
	}
	if !c.run(ctx, "update", "group", opts.GroupEmail, "replyto", "REPLY_TO_IGNORE").Success() {
		c.Log.Warn("Failed to update the reply-to setting")
	}

	expect := map[string]string{
		"whoCanJoin":           opts.Join.Token(),
		"allowExternalMembers": external,
	}
	verified := c.Settings.Verify(ctx, func(ctx context.Context) bool {
		res := c.run(ctx, "info", "group", opts.GroupEmail)
		if !res.Success() {
			return false
		}
		for _, ok := range parse.CheckSettings(res.Lines, expect) {
			if !ok {
				return false
			}
		}
		return true
	})
	if verified {
		c.Log.Info("Group settings verified")
	} else {
		c.Log.Warn("Could not verify group settings, check them manually")
	}

	c.Log.Info("Group URL: " + c.GroupURL(opts.GroupEmail))
	return nil
}

// addGroupMembers grants every requested role as one batch. A failed
// add is a warning; the group is still usable without that member.
func (c *Controller) addGroupMembers(ctx context.Context, opts models.GroupOptions) {
	var memberships []groupMembership
	for _, addr := range opts.Owners {
		memberships = append(memberships, groupMembership{Role: models.GroupOwner, Addr: addr})
	}
	for _, addr := range opts.Managers {
		memberships = append(memberships, groupMembership{Role: models.GroupManager, Addr: addr})
	}
	for _, addr := range opts.Members {
		memberships = append(memberships, groupMembership{Role: models.GroupMember, Addr: addr})
	}
	if len(memberships) == 0 {
		return
	}

	c.Log.Infof("Adding %d members to %s", len(memberships), opts.GroupEmail)
	results := batch.Run(ctx, memberships, c.Workers, func(ctx context.Context, m groupMembership) error {
		res := c.run(ctx, "update", "group", opts.GroupEmail, "add", string(m.Role), m.Addr)
		if !res.Success() {
			return models.ErrCommandFailed
		}
		return nil
	})
	for _, r := range results {
		if r.Err != nil {
			c.Log.Warnf("Failed to add %s as %s", r.Item.Addr, r.Item.Role)
		}
	}
}

// GroupURL builds the browser URL for a group in the policy domain.
func (c *Controller) GroupURL(groupEmail string) string {
	local := groupEmail
	if i := strings.Index(groupEmail, "@"); i >= 0 {
		local = groupEmail[:i]
	}
	return fmt.Sprintf("https://groups.google.com/a/%s/g/%s", c.Policy.Domain, local)
}
