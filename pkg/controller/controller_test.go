package controller

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/GAMOps/gamops/config"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/retrypolicy"
)

// fakeRunner scripts gam outcomes by substring match on the rendered
// command and records everything it was asked to run.
type fakeRunner struct {
	mu       sync.Mutex
	commands []string
	handlers []fakeHandler
}

type fakeHandler struct {
	match  string
	result models.CommandResult
}

func (f *fakeRunner) on(match string, result models.CommandResult) {
	f.handlers = append(f.handlers, fakeHandler{match: match, result: result})
}

func (f *fakeRunner) Run(ctx context.Context, cmd models.Command) models.CommandResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	rendered := cmd.String()
	f.commands = append(f.commands, rendered)
	for _, h := range f.handlers {
		if strings.Contains(rendered, h.match) {
			return h.result
		}
	}
	return models.CommandResult{ExitCode: 0}
}

func (f *fakeRunner) ran(match string) bool {
	return f.count(match) > 0
}

func (f *fakeRunner) count(match string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.commands {
		if strings.Contains(c, match) {
			n++
		}
	}
	return n
}

func ok(lines ...string) models.CommandResult {
	return models.CommandResult{ExitCode: 0, Lines: lines}
}

func failed(lines ...string) models.CommandResult {
	return models.CommandResult{ExitCode: 1, Lines: lines}
}

// scriptedPrompter feeds pre-recorded answers; exhausted queues answer
// negatively, matching prompt cancellation semantics.
type scriptedPrompter struct {
	confirms  []bool
	selects   []string // "" scripts a cancelled prompt
	addresses [][]string
}

func (p *scriptedPrompter) Confirm(string) bool {
	if len(p.confirms) == 0 {
		return false
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer
}

func (p *scriptedPrompter) Select(string, []string) (string, bool) {
	if len(p.selects) == 0 {
		return "", false
	}
	answer := p.selects[0]
	p.selects = p.selects[1:]
	if answer == "" {
		return "", false
	}
	return answer, true
}

func (p *scriptedPrompter) Addresses(string) []string {
	if len(p.addresses) == 0 {
		return nil
	}
	answer := p.addresses[0]
	p.addresses = p.addresses[1:]
	return answer
}

func newTestController(runner *fakeRunner, prompter *scriptedPrompter) *Controller {
	c := New(runner, prompter, config.DefaultPolicy())
	c.Existence = retrypolicy.Policy{Name: "existence", Delay: time.Millisecond, Retries: 1}
	c.Settings = retrypolicy.Policy{Name: "settings", Delay: time.Millisecond, Retries: 1}
	c.Workers = 1
	return c
}
