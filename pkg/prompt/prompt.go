// Package prompt collects operator answers mid-workflow. Controllers
// depend on the Prompter interface so tests can script answers without
// a terminal.
package prompt

import (
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/utils"
)

// Prompter answers the questions workflows ask between stages.
// Cancellation is always a valid answer: Confirm reports false,
// Select returns ("", false) and Addresses returns an empty slice.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(question string) bool
	// Select asks the operator to pick one of options.
	Select(question string, options []string) (string, bool)
	// Addresses collects zero or more email addresses, splitting on
	// commas and whitespace. Invalid addresses are re-asked, never
	// silently dropped.
	Addresses(question string) []string
}

// Terminal is the pterm-backed Prompter used by the CLI.
type Terminal struct{}

// NewTerminal returns a Terminal prompter, or ErrNotATerminal when
// stdin is not a TTY so workflows fail before their first question
// rather than mid-run.
func NewTerminal() (*Terminal, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, models.ErrNotATerminal
	}
	return &Terminal{}, nil
}

func (t *Terminal) Confirm(question string) bool {
	ok, err := pterm.DefaultInteractiveConfirm.Show(question)
	if err != nil {
		utils.Log.Debug("Confirm prompt aborted: ", err)
		return false
	}
	return ok
}

func (t *Terminal) Select(question string, options []string) (string, bool) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show(question)
	if err != nil {
		utils.Log.Debug("Select prompt aborted: ", err)
		return "", false
	}
	return choice, true
}

func (t *Terminal) Addresses(question string) []string {
	for {
		text, err := pterm.DefaultInteractiveTextInput.Show(question + " (comma separated, empty to skip)")
		if err != nil {
			utils.Log.Debug("Address prompt aborted: ", err)
			return nil
		}
		if strings.TrimSpace(text) == "" {
			return nil
		}
		addresses := utils.SplitAddresses(text)
		if bad := firstInvalid(addresses); bad != "" {
			pterm.Warning.Println("not an email address: " + bad)
			continue
		}
		return addresses
	}
}

// AssumeYes answers every confirmation positively and declines
// everything interactive. Used by the --yes flag for scripted runs.
type AssumeYes struct{}

func (AssumeYes) Confirm(string) bool                    { return true }
func (AssumeYes) Select(string, []string) (string, bool) { return "", false }
func (AssumeYes) Addresses(string) []string              { return nil }

func firstInvalid(addresses []string) string {
	for _, a := range addresses {
		if !models.ValidEmail(a) {
			return a
		}
	}
	return ""
}
