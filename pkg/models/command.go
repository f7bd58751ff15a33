package models

import "strings"

// Command is a single gam invocation: the argument list only, the binary
// path is supplied by the runner. Immutable once built.
type Command struct {
	Args []string
}

func NewCommand(args ...string) Command {
	return Command{Args: args}
}

func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// CommandResult is the terminal outcome of one gam invocation. Lines holds
// the full output history in arrival order; stderr lines carry the runner's
// stderr tag.
type CommandResult struct {
	ExitCode int
	Lines    []string
}

func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// HasFailureMarker scans the output for literal failure text. Some gam
// subcommands exit zero while reporting per-item errors, so a few stages
// check this in addition to the exit code.
func (r CommandResult) HasFailureMarker() bool {
	for _, line := range r.Lines {
		if strings.Contains(line, "ERROR") || strings.Contains(line, "Failed") {
			return true
		}
	}
	return false
}
