package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"passliss/internal/config"
)

// captureOut redirects command output into a buffer for the test's duration.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	orig := Out
	Out = buf
	t.Cleanup(func() { Out = orig })
	return buf
}

// testConfig isolates the local cache per test.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{DataDir: t.TempDir()}
}

func TestDispatch_NoArgsShowsUsage(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, nil)
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Passliss CLI")
	assert.Contains(t, buf.String(), "generate")
}

func TestDispatch_HelpFlagInArgs(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"--help"})
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Passliss CLI")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"frobnicate"})
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Unknown command: frobnicate")
}

func TestDispatch_HelpForCommand(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"help", "analyze"})
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "Usage: analyze <password>")
}

func TestDispatch_UsageErrorExitsTwo(t *testing.T) {
	buf := captureOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"analyze"})
	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "Usage: analyze")
}

func TestRegistry_AllCommandsHaveUsageAndDescription(t *testing.T) {
	for _, c := range List() {
		assert.NotEmpty(t, c.Name())
		assert.NotEmpty(t, c.Description(), "command %s", c.Name())
		assert.True(t, strings.HasPrefix(c.Usage(), c.Name()), "usage of %s must start with its name", c.Name())
	}
}
