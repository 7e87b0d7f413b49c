package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Setenv("FORMKIT_LOG_LEVEL", "error")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("prints the final state", func(t *testing.T) {
		path := writeScenario(t, `
form: listitem
initial: {label: Alpha, value: A, minValue: 10, maxValue: 100, step: 5}
events:
  - {kind: blur, field: step, value: "50"}
  - {kind: submit}
`)
		out, err := execute(t, path)
		require.NoError(t, err)
		assert.Contains(t, out, "form: listitem")
		assert.Contains(t, out, "flash: Item saved")
		assert.Contains(t, out, "step: 50")
	})

	t.Run("policy flag overrides the environment", func(t *testing.T) {
		t.Setenv("FORMKIT_INVALID_POLICY", "any")
		path := writeScenario(t, "form: profile\nevents:\n  - {kind: blur, field: email, value: a@b.cd}\n")

		out, err := execute(t, "--policy", "touched", path)
		require.NoError(t, err)
		assert.Contains(t, out, "invalid: false")
	})

	t.Run("configured logger becomes the default", func(t *testing.T) {
		path := writeScenario(t, "form: profile\n")

		_, err := execute(t, path)
		require.NoError(t, err)
		assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

		_, err = execute(t, "-v", path)
		require.NoError(t, err)
		assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("bad scenario fails", func(t *testing.T) {
		path := writeScenario(t, "form: wizard\n")
		_, err := execute(t, path)
		assert.Error(t, err)
	})

	t.Run("bad policy fails", func(t *testing.T) {
		path := writeScenario(t, "form: profile\n")
		_, err := execute(t, "--policy", "sometimes", path)
		assert.Error(t, err)
	})

	t.Run("scenario path is required", func(t *testing.T) {
		_, err := execute(t)
		assert.Error(t, err)
	})
}
