package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/leijurv/stgen_go/stgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&stderr, nil))
	cmd := newRootCmd(logger)
	cmd.SetOut(&stdout)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPrintsTable(t *testing.T) {
	stdout, stderr, err := runCmd(t)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, stgen.Header))
	assert.Equal(t, 2+255, strings.Count(stdout, "\n"))
	assert.Contains(t, stdout, "//   0 (0,0)\n")
	assert.Contains(t, stderr, "states=255")
}

func TestRootRejectsArgs(t *testing.T) {
	stdout, _, err := runCmd(t, "extra")
	require.Error(t, err)
	assert.Empty(t, stdout)
}

func TestVerifyCommand(t *testing.T) {
	stdout, _, err := runCmd(t, "verify")
	require.NoError(t, err)
	assert.Equal(t, "ok: 255 states, 54 closure passes\n", stdout)
}

func TestExitCode(t *testing.T) {
	err := stgen.ErrExitCode(stgen.ExitCodeClosureIncomplete, "missing")
	assert.Equal(t, 20, exitCode(err))
	assert.Equal(t, 1, exitCode(errors.New("unknown")))
}
