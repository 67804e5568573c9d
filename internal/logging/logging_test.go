// internal/logging/logging_test.go
package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIn(t *testing.T, quiet bool) (*bytes.Buffer, func(string)) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	var console bytes.Buffer
	log, closeLog, err := Setup(&console, quiet)
	require.NoError(t, err)
	t.Cleanup(closeLog)

	return &console, func(msg string) { log.Info(msg) }
}

func TestSetupTeesToFile(t *testing.T) {
	console, info := setupIn(t, false)
	info("hello from the run")

	assert.Contains(t, console.String(), "hello from the run")
	data, err := os.ReadFile(LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the run")
}

func TestSetupQuietDropsInfo(t *testing.T) {
	console, info := setupIn(t, true)
	info("should be suppressed")
	assert.False(t, strings.Contains(console.String(), "should be suppressed"))
}
