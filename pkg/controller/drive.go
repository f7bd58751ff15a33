package controller

import (
	"context"
	"fmt"

	"github.com/GAMOps/gamops/pkg/batch"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/parse"
)

// RunDrive creates a main shared drive, optionally seeds it from the
// template folder, collects its membership interactively, then offers
// external and GDPR variants that either replay the main membership or
// collect a fresh one. It returns a summary of every drive actually
// created, also on partial failure: a secondary drive that fails skips
// only its own branch.
func (c *Controller) RunDrive(ctx context.Context, opts models.DriveOptions) ([]models.DriveSummaryEntry, error) {
	if err := models.Validate(opts); err != nil {
		return nil, err
	}

	state := models.NewDriveState(opts.Name)

	mainID, err := c.createDrive(ctx, opts.OperatorEmail, models.DriveMain, state)
	if err != nil {
		return state.Summary(), err
	}

	if opts.CopyTemplate {
		c.copyTemplate(ctx, opts.OperatorEmail, mainID)
	}

	c.Log.Info("Now add members to the main drive")
	c.collectMembers(ctx, mainID, models.DriveMain, true, state)

	if c.Prompter.Confirm("Create an external drive?") {
		c.secondaryDrive(ctx, opts.OperatorEmail, models.DriveExternal, state)
	}
	if c.Prompter.Confirm("Create a GDPR drive?") {
		c.secondaryDrive(ctx, opts.OperatorEmail, models.DriveGdpr, state)
	}

	if opts.RemoveSelf || c.Prompter.Confirm(fmt.Sprintf("Remove %s from the created drives?", opts.OperatorEmail)) {
		c.removeSelf(ctx, opts.OperatorEmail, state)
	}

	return state.Summary(), nil
}

// createDrive issues the creation command, parses the new drive ID out
// of the output and records it. Existence verification afterwards is
// advisory: creation already reported success, so an unverified drive
// is a warning, not a failure.
func (c *Controller) createDrive(ctx context.Context, operator, label string, state *models.DriveState) (string, error) {
	name := state.BaseName + models.DriveNameSuffix(label)
	c.Log.Infof("Creating %s drive: %s", label, name)

	res := c.run(ctx,
		"user", operator,
		"create", "teamdrive", name,
		"adminmanagedrestrictions", "true",
		"asadmin")
	if !res.Success() {
		return "", fmt.Errorf("create teamdrive %q: %w", name, models.ErrCommandFailed)
	}

	id := parse.DriveID(res.Lines)
	if id == "" {
		return "", fmt.Errorf("create teamdrive %q: %w", name, models.ErrParseNoMatch)
	}
	if res.HasFailureMarker() {
		// gam can exit zero while reporting per-API errors in the output
		c.Log.Warnf("Creation output for the %s drive contains failure markers", label)
	}
	state.Record(label, id)
	c.Log.Infof("Drive %q created, ID=%s", label, id)

	verified := c.Existence.Verify(ctx, func(ctx context.Context) bool {
		return c.run(ctx, "user", operator, "info", "teamdrive", id).Success()
	})
	if !verified {
		c.Log.Warnf("Could not verify %s drive %s yet, continuing", label, id)
	}
	return id, nil
}

// collectMembers runs the role-select + address-entry loop for one
// drive. Cancelling the role prompt ends the loop; an empty address
// list skips the round. When record is set the collected sets are kept
// on the state for replay onto the secondary drives.
func (c *Controller) collectMembers(ctx context.Context, driveID, label string, record bool, state *models.DriveState) {
	for {
		roleLabel, ok := c.Prompter.Select(
			fmt.Sprintf("Role for the next members of the %s drive", label),
			models.DriveRoleLabels())
		if !ok {
			c.Log.Infof("No more members to add to the %s drive", label)
			return
		}
		role, found := models.DriveRoleByLabel(roleLabel)
		if !found {
			c.Log.Warnf("Unknown role %q, skipping", roleLabel)
			continue
		}

		addresses := c.Prompter.Addresses(fmt.Sprintf("Addresses to add as %s", roleLabel))
		if len(addresses) > 0 {
			if record {
				state.MainMembers = append(state.MainMembers, models.MemberSet{Role: role, Addresses: addresses})
			}
			c.addMembers(ctx, driveID, label, role, addresses)
		} else {
			c.Log.Infof("No addresses provided for the %s drive, skipping", label)
		}

		if !c.Prompter.Confirm(fmt.Sprintf("Add more members to the %s drive?", label)) {
			return
		}
	}
}

// addMembers grants one role to a set of addresses as a single batch.
// Per-address failures are warnings; the batch always runs to the end.
func (c *Controller) addMembers(ctx context.Context, driveID, label string, role models.DriveRole, addresses []string) {
	results := batch.Run(ctx, addresses, c.Workers, func(ctx context.Context, addr string) error {
		res := c.run(ctx, "add", "drivefileacl", driveID, "user", addr, "role", role.Token)
		if !res.Success() {
			return models.ErrCommandFailed
		}
		return nil
	})
	for _, r := range results {
		if r.Err != nil {
			c.Log.Warnf("Failed to add %s to the %s drive", r.Item, label)
		} else {
			c.Log.Infof("Added %s as %s to the %s drive", r.Item, role.Label, label)
		}
	}
}

type replayPair struct {
	Role models.DriveRole
	Addr string
}

// replayMembers re-applies the recorded main-drive membership to a
// secondary drive as one batch over every (role, address) pair.
func (c *Controller) replayMembers(ctx context.Context, driveID, label string, state *models.DriveState) {
	var pairs []replayPair
	for _, set := range state.MainMembers {
		for _, addr := range set.Addresses {
			pairs = append(pairs, replayPair{Role: set.Role, Addr: addr})
		}
	}

	results := batch.Run(ctx, pairs, c.Workers, func(ctx context.Context, p replayPair) error {
		res := c.run(ctx, "add", "drivefileacl", driveID, "user", p.Addr, "role", p.Role.Token)
		if !res.Success() {
			return models.ErrCommandFailed
		}
		return nil
	})
	for _, r := range results {
		if r.Err != nil {
			c.Log.Warnf("Failed to re-add %s to the %s drive", r.Item.Addr, label)
		}
	}
}

// secondaryDrive creates one variant drive and populates it, either by
// replaying the recorded main membership or by collecting a fresh one.
// Failure here never propagates: the rest of the workflow continues.
func (c *Controller) secondaryDrive(ctx context.Context, operator, label string, state *models.DriveState) {
	useSame := c.Prompter.Confirm("Use the same members & roles as the main drive?")

	id, err := c.createDrive(ctx, operator, label, state)
	if err != nil {
		c.Log.Errorf("Skipping the %s drive: %v", label, err)
		return
	}

	if useSame && len(state.MainMembers) == 0 {
		c.Log.Warnf("No stored main membership found for the %s drive", label)
		useSame = false
	}

	if useSame {
		c.Log.Infof("Re-adding members from the main drive to the %s drive", label)
		c.replayMembers(ctx, id, label, state)
		if c.Prompter.Confirm(fmt.Sprintf("Add additional new members for the %s drive?", label)) {
			c.collectMembers(ctx, id, label, false, state)
		}
		return
	}
	c.collectMembers(ctx, id, label, false, state)
}

// removeSelf drops the operator's ACL from every created drive, one
// batch across the whole session.
func (c *Controller) removeSelf(ctx context.Context, operator string, state *models.DriveState) {
	var ids []string
	for _, label := range state.Order {
		ids = append(ids, state.DriveIDs[label])
	}
	results := batch.Run(ctx, ids, c.Workers, func(ctx context.Context, id string) error {
		res := c.run(ctx, "delete", "drivefileacl", id, operator)
		if !res.Success() {
			return models.ErrCommandFailed
		}
		return nil
	})
	for _, r := range results {
		if r.Err != nil {
			c.Log.Warnf("Failed to remove %s from drive %s", operator, r.Item)
		}
	}
}
