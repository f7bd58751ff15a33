package gamrun

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GAMOps/gamops/pkg/models"
)

func TestRunMissingBinary(t *testing.T) {
	var streamed []string
	runner := New("/nonexistent/gam", func(line string) {
		streamed = append(streamed, line)
	})

	res := runner.Run(context.Background(), models.NewCommand("info", "domain"))

	assert.Equal(t, 1, res.ExitCode)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, "[Error] could not find 'gam' at /nonexistent/gam", res.Lines[0])
	// the synthetic line still reaches the sink
	assert.Equal(t, res.Lines, streamed)
}

// writeScript drops an executable shell script to stand in for gam.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gam")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestRunStreamsStdoutLines(t *testing.T) {
	script := writeScript(t, `echo "Shared Drive ID: 0AAbc"
echo "second line"`)

	var streamed []string
	runner := New(script, func(line string) {
		streamed = append(streamed, line)
	})

	res := runner.Run(context.Background(), models.NewCommand())

	assert.Equal(t, 0, res.ExitCode)
	assert.True(t, res.Success())
	assert.Equal(t, []string{"Shared Drive ID: 0AAbc", "second line"}, res.Lines)
	assert.Equal(t, res.Lines, streamed)
}

func TestRunTagsStderrAfterStdout(t *testing.T) {
	script := writeScript(t, `echo "out"
echo "api error" >&2
exit 3`)

	runner := New(script, nil)
	res := runner.Run(context.Background(), models.NewCommand())

	assert.Equal(t, 3, res.ExitCode)
	assert.False(t, res.Success())
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "out", res.Lines[0])
	assert.Equal(t, StderrTag+"api error", res.Lines[1])
}

func TestRunNonZeroExitKeepsOutput(t *testing.T) {
	script := writeScript(t, `echo "ERROR: entity not found"
exit 2`)

	runner := New(script, nil)
	res := runner.Run(context.Background(), models.NewCommand("info", "group", "g@x.com"))

	assert.Equal(t, 2, res.ExitCode)
	assert.True(t, res.HasFailureMarker())
	assert.Equal(t, []string{"ERROR: entity not found"}, res.Lines)
}
