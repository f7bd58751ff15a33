// Package gamrun executes one-shot invocations of the gam admin CLI and
// streams their output. The runner never returns an error: every failure
// mode, including a missing binary, is folded into a synthetic non-zero
// CommandResult so that workflow stages only ever branch on results.
package gamrun

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/utils"
)

// StderrTag prefixes every captured standard-error line.
const StderrTag = "[stderr] "

// DefaultWaitDelay bounds the graceful-shutdown window after a context
// cancellation before the process is force-killed.
const DefaultWaitDelay = 3 * time.Second

// LineSink receives each output line at the moment it is read, independent
// of whether the command eventually succeeds.
type LineSink func(line string)

type Runner struct {
	GamPath   string
	Sink      LineSink
	WaitDelay time.Duration
}

func New(gamPath string, sink LineSink) *Runner {
	return &Runner{
		GamPath:   gamPath,
		Sink:      sink,
		WaitDelay: DefaultWaitDelay,
	}
}

func (r *Runner) emit(line string, lines *[]string) {
	*lines = append(*lines, line)
	if r.Sink != nil {
		r.Sink(line)
	}
}

// Run spawns gam with the command's argument list, forwards stdout line by
// line as it arrives, drains stderr after stdout closes, and returns the
// exit code with the accumulated line history.
func (r *Runner) Run(ctx context.Context, cmd models.Command) models.CommandResult {
	var lines []string

	if !utils.FileExists(r.GamPath) {
		r.emit(fmt.Sprintf("[Error] could not find 'gam' at %s", r.GamPath), &lines)
		return models.CommandResult{ExitCode: 1, Lines: lines}
	}

	utils.Log.Debug("gam ", cmd.String())

	proc := exec.CommandContext(ctx, r.GamPath, cmd.Args...)
	proc.WaitDelay = r.WaitDelay
	proc.Cancel = func() error {
		return proc.Process.Signal(syscall.SIGTERM)
	}

	stdout, err := proc.StdoutPipe()
	if err != nil {
		r.emit("[Exception] "+err.Error(), &lines)
		return models.CommandResult{ExitCode: 1, Lines: lines}
	}
	stderr, err := proc.StderrPipe()
	if err != nil {
		r.emit("[Exception] "+err.Error(), &lines)
		return models.CommandResult{ExitCode: 1, Lines: lines}
	}

	if err := proc.Start(); err != nil {
		r.emit("[Exception] "+err.Error(), &lines)
		return models.CommandResult{ExitCode: 1, Lines: lines}
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		r.emit(scanner.Text(), &lines)
	}

	// Stderr is drained only once stdout closes; gam reports per-API errors
	// there while keeping entity output on stdout.
	errOutput, _ := io.ReadAll(stderr)
	for _, eLine := range strings.Split(strings.TrimRight(string(errOutput), "\n"), "\n") {
		if eLine == "" {
			continue
		}
		r.emit(StderrTag+eLine, &lines)
	}

	if err := proc.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return models.CommandResult{ExitCode: exitErr.ExitCode(), Lines: lines}
		}
		r.emit("[Exception] "+err.Error(), &lines)
		return models.CommandResult{ExitCode: 1, Lines: lines}
	}

	return models.CommandResult{ExitCode: 0, Lines: lines}
}
