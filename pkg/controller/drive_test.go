package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GAMOps/gamops/pkg/models"
)

func TestRunDriveMainOnly(t *testing.T) {
	runner := &fakeRunner{}
	runner.on("create teamdrive Acme", ok("Shared Drive ID: 0AAmain,"))

	prompter := &scriptedPrompter{
		selects:   []string{"Organizer"},
		addresses: [][]string{{"b@x.com"}},
		// no more members, no external, no gdpr, keep self
		confirms: []bool{false, false, false, false},
	}

	c := newTestController(runner, prompter)
	entries, err := c.RunDrive(context.Background(), models.DriveOptions{
		OperatorEmail: "a@x.com",
		Name:          "Acme",
	})
	require.NoError(t, err)

	assert.True(t, runner.ran("user a@x.com create teamdrive Acme adminmanagedrestrictions true asadmin"))
	assert.True(t, runner.ran("add drivefileacl 0AAmain user b@x.com role organizer"))
	assert.False(t, runner.ran("delete drivefileacl"))

	require.Len(t, entries, 1)
	assert.Equal(t, models.DriveMain, entries[0].Label)
	assert.Equal(t, "Acme", entries[0].Name)
	assert.Equal(t, "https://drive.google.com/drive/folders/0AAmain", entries[0].URL)
}

func TestRunDriveMainCreationFailureAborts(t *testing.T) {
	runner := &fakeRunner{}
	runner.on("create teamdrive", failed("ERROR: quota exceeded"))

	c := newTestController(runner, &scriptedPrompter{})
	entries, err := c.RunDrive(context.Background(), models.DriveOptions{
		OperatorEmail: "a@x.com",
		Name:          "Acme",
	})

	assert.ErrorIs(t, err, models.ErrCommandFailed)
	assert.Empty(t, entries)
	assert.False(t, runner.ran("drivefileacl"))
}

func TestRunDriveUnparsableIDAborts(t *testing.T) {
	runner := &fakeRunner{}
	runner.on("create teamdrive", ok("Drive created but output format changed"))

	c := newTestController(runner, &scriptedPrompter{})
	_, err := c.RunDrive(context.Background(), models.DriveOptions{
		OperatorEmail: "a@x.com",
		Name:          "Acme",
	})
	assert.ErrorIs(t, err, models.ErrParseNoMatch)
}

func TestRunDriveExternalReplaysMainMembership(t *testing.T) {
	runner := &fakeRunner{}
	runner.on("create teamdrive Acme (External)", ok("Shared Drive ID: 0AAext"))
	runner.on("create teamdrive Acme", ok("Shared Drive ID: 0AAmain"))

	prompter := &scriptedPrompter{
		selects:   []string{"Viewer"},
		addresses: [][]string{{"b@x.com", "c@x.com"}},
		confirms: []bool{
			false, // no more members on main
			true,  // create external
			true,  // use same membership
			false, // no additional members
			false, // no gdpr
			false, // keep self
		},
	}

	c := newTestController(runner, prompter)
	entries, err := c.RunDrive(context.Background(), models.DriveOptions{
		OperatorEmail: "a@x.com",
		Name:          "Acme",
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme (External)", entries[1].Name)

	assert.True(t, runner.ran("add drivefileacl 0AAmain user b@x.com role reader"))
	assert.True(t, runner.ran("add drivefileacl 0AAext user b@x.com role reader"))
	assert.True(t, runner.ran("add drivefileacl 0AAext user c@x.com role reader"))
}

func TestRunDriveSecondaryFailureSkipsBranchOnly(t *testing.T) {
	runner := &fakeRunner{}
	runner.on("create teamdrive Acme (External)", failed())
	runner.on("create teamdrive Acme (GDPR)", ok("Shared Drive ID: 0AAgdpr"))
	runner.on("create teamdrive Acme", ok("Shared Drive ID: 0AAmain"))

	prompter := &scriptedPrompter{
		selects: []string{""}, // no members on main
		confirms: []bool{
			true,  // create external (will fail)
			false, // external: not same membership
			true,  // create gdpr
			false, // gdpr: not same membership
			false, // keep self
		},
		// gdpr fresh collection gets no role selection either
	}

	c := newTestController(runner, prompter)
	entries, err := c.RunDrive(context.Background(), models.DriveOptions{
		OperatorEmail: "a@x.com",
		Name:          "Acme",
	})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, models.DriveMain, entries[0].Label)
	assert.Equal(t, models.DriveGdpr, entries[1].Label)
}

func TestRunDriveRemoveSelf(t *testing.T) {
	runner := &fakeRunner{}
	runner.on("create teamdrive Acme", ok("Shared Drive ID: 0AAmain"))

	prompter := &scriptedPrompter{
		selects:  []string{""},
		confirms: []bool{false, false}, // no external, no gdpr; RemoveSelf skips the prompt
	}

	c := newTestController(runner, prompter)
	_, err := c.RunDrive(context.Background(), models.DriveOptions{
		OperatorEmail: "a@x.com",
		Name:          "Acme",
		RemoveSelf:    true,
	})
	require.NoError(t, err)
	assert.True(t, runner.ran("delete drivefileacl 0AAmain a@x.com"))
}

func TestRunDriveValidatesOptions(t *testing.T) {
	c := newTestController(&fakeRunner{}, &scriptedPrompter{})
	_, err := c.RunDrive(context.Background(), models.DriveOptions{
		OperatorEmail: "not-an-address",
		Name:          "Acme",
	})
	assert.Error(t, err)
}
