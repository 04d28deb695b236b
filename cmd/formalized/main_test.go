package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baditaflorin/formalized/internal/adapters/clipboard"
	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/baditaflorin/formalized/internal/config"
	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/ports"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFormalizer struct{}

func (failingFormalizer) Name() string { return "remote" }

func (failingFormalizer) Formalize(context.Context, string) (string, error) {
	return "", &domain.ServiceError{Op: "generate", Err: errors.New("quota exceeded")}
}

// setup resets command globals and returns a command writing to out.
func setup(t *testing.T, stdin string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cfg = config.DefaultConfig()
	log = logger.NewNopLogger()

	formalizeFile, formalizeLines, formalizeCopy, formalizeJSON, formalizeStrategy = "", false, false, false, ""
	t.Cleanup(func() {
		formalizeFile, formalizeLines, formalizeCopy, formalizeJSON, formalizeStrategy = "", false, false, false, ""
	})

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	return cmd, &out
}

func TestFormalizeArguments(t *testing.T) {
	cmd, out := setup(t, "")

	require.NoError(t, runFormalize(cmd, []string{"idk", "we", "wanna", "go"}))
	assert.Equal(t, "I do not know we want to go\n", out.String())
}

func TestFormalizeStdin(t *testing.T) {
	cmd, out := setup(t, "i gotta run. btw bye\n")

	require.NoError(t, runFormalize(cmd, nil))
	assert.Equal(t, "I got to run. By the way bye\n", out.String())
}

func TestFormalizeFileLines(t *testing.T) {
	cmd, out := setup(t, "")
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("idk\n\ngonna go. ok\n"), 0o644))
	formalizeFile = path
	formalizeLines = true

	require.NoError(t, runFormalize(cmd, nil))
	assert.Equal(t, "I do not know\n\nGoing to go. Ok\n", out.String())
}

func TestFormalizeJSONAndCopy(t *testing.T) {
	cmd, out := setup(t, "")
	mem := &clipboard.Memory{}
	prev := systemClipboard
	systemClipboard = func() ports.Clipboard { return mem }
	t.Cleanup(func() { systemClipboard = prev })
	formalizeJSON = true
	formalizeCopy = true

	require.NoError(t, runFormalize(cmd, []string{"imo", "fine"}))

	var payload formalizePayload
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.Equal(t, "rules", payload.Strategy)
	assert.Equal(t, "In my opinion fine", payload.Output)
	assert.True(t, payload.Copied)
	assert.Equal(t, "In my opinion fine", mem.Text)
}

func TestFormalizeErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		cmd, _ := setup(t, "   \n")
		err := runFormalize(cmd, nil)
		require.Error(t, err)
		assert.Equal(t, "Input text cannot be empty.", err.Error())
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cmd, _ := setup(t, "")
		formalizeStrategy = "poetry"
		err := runFormalize(cmd, []string{"idk"})
		assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
	})

	t.Run("service failure", func(t *testing.T) {
		cmd, out := setup(t, "")
		prev := newStrategy
		newStrategy = func(context.Context, string, *config.Config) (ports.Formalizer, error) {
			return failingFormalizer{}, nil
		}
		t.Cleanup(func() { newStrategy = prev })

		err := runFormalize(cmd, []string{"idk"})
		require.Error(t, err)
		assert.Equal(t, "Failed to formalize text. Please try again.", err.Error())
		assert.Empty(t, out.String())
	})

	t.Run("lines with arguments", func(t *testing.T) {
		cmd, _ := setup(t, "")
		formalizeLines = true
		assert.Error(t, runFormalize(cmd, []string{"idk"}))
	})
}

func TestRulesCommand(t *testing.T) {
	cmd, out := setup(t, "")
	rulesJSON = true
	t.Cleanup(func() { rulesJSON = false })

	require.NoError(t, rulesCmd.RunE(cmd, nil))

	var descriptions []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &descriptions))
	require.Len(t, descriptions, 5)
	assert.Equal(t, "idk", descriptions[0]["name"])
	assert.Equal(t, "contractions", descriptions[4]["name"])
}

func TestResolveTheme(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	assert.Equal(t, domain.ThemeDark, resolveTheme(config.ThemeDark, light))
	assert.Equal(t, domain.ThemeLight, resolveTheme(config.ThemeLight, dark))
	assert.Equal(t, domain.ThemeDark, resolveTheme(config.ThemeAuto, dark))
	assert.Equal(t, domain.ThemeLight, resolveTheme(config.ThemeAuto, light))
}

func TestNewLoggerQuietByDefault(t *testing.T) {
	l, err := newLogger(config.DefaultConfig(), false)
	require.NoError(t, err)
	assert.Equal(t, logger.NewNopLogger(), l)
}
