package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitty/internal/backend"
)

func TestExitCodeSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	code, fatal := exitCode(nil, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.NoError(t, fatal)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestExitCodeLoadError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.bin")
	cmd := newCommand()
	cmd.SetArgs([]string{p})

	var out, errOut bytes.Buffer
	code, fatal := exitCode(cmd.Execute(), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.NoError(t, fatal)
	assert.Equal(t, "Error: Could not read '"+p+"'\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestExitCodeUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"a", "b"}} {
		cmd := newCommand()
		cmd.SetArgs(args)

		var out, errOut bytes.Buffer
		code, fatal := exitCode(cmd.Execute(), &out, &errOut)
		assert.Equal(t, 1, code, "args %v", args)
		assert.NoError(t, fatal)
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "accepts 1 arg(s)")
		assert.Contains(t, errOut.String(), "Usage: bitty <file>")
	}
}

func TestExitCodeFatal(t *testing.T) {
	setup := &backend.SetupError{Stage: "create surface", Err: errors.New("no display")}
	program := errors.Join(errors.New("tty"), errProgram)

	for _, err := range []error{setup, program} {
		var out, errOut bytes.Buffer
		code, fatal := exitCode(err, &out, &errOut)
		assert.Equal(t, 1, code)
		require.Error(t, fatal)
		assert.Equal(t, err, fatal)
		assert.Empty(t, out.String())
		assert.Empty(t, errOut.String())
	}
}
