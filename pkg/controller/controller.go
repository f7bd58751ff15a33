// Package controller drives the provisioning workflows: shared drives,
// groups and offboarding. Each workflow is one sequential control flow
// that issues gam commands through the runner, pauses on operator
// prompts, and folds command failures into log output plus a
// control-flow decision. Errors returned from a Run* method mean the
// workflow could not continue, not that a single command failed.
package controller

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/GAMOps/gamops/config"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/prompt"
	"github.com/GAMOps/gamops/pkg/retrypolicy"
	"github.com/GAMOps/gamops/pkg/utils"
)

// CommandRunner issues one gam invocation and reports its outcome.
// Satisfied by gamrun.Runner; tests script their own.
type CommandRunner interface {
	Run(ctx context.Context, cmd models.Command) models.CommandResult
}

type Controller struct {
	Runner   CommandRunner
	Prompter prompt.Prompter
	Policy   config.Policy

	Existence retrypolicy.Policy
	Settings  retrypolicy.Policy

	// Workers bounds batch fan-out concurrency.
	Workers int

	Log *logrus.Entry
}

func New(runner CommandRunner, prompter prompt.Prompter, policy config.Policy) *Controller {
	return &Controller{
		Runner:    runner,
		Prompter:  prompter,
		Policy:    policy,
		Existence: retrypolicy.Existence,
		Settings:  retrypolicy.Settings,
		Workers:   4,
		Log:       utils.Log.WithField("run_id", uuid.NewString()),
	}
}

func (c *Controller) run(ctx context.Context, args ...string) models.CommandResult {
	return c.Runner.Run(ctx, models.NewCommand(args...))
}
