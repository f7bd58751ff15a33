package prompt

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/term"

	"github.com/GAMOps/gamops/pkg/models"
)

func TestNewTerminalRequiresTTY(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal here")
	}
	_, err := NewTerminal()
	assert.ErrorIs(t, err, models.ErrNotATerminal)
}

func TestAssumeYes(t *testing.T) {
	p := AssumeYes{}
	assert.True(t, p.Confirm("destroy everything?"))

	choice, ok := p.Select("pick one", []string{"a", "b"})
	assert.False(t, ok)
	assert.Empty(t, choice)

	assert.Nil(t, p.Addresses("who"))
}
