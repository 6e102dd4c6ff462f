package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_RejectsInvalidPort(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--env-file", "", "--port", "0"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "port 0 out of range")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"env-file", "port", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
