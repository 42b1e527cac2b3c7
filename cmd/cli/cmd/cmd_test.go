package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wageman/internal/config"
	"wageman/internal/errors"
	"wageman/internal/logging"
)

// run executes a fresh command tree with an isolated config file.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	orig := config.Get()
	t.Cleanup(func() {
		config.Set(orig)
		logging.InitializeDefault()
	})

	cfgPath := filepath.Join(t.TempDir(), "wageman.json")
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertHourly(t *testing.T) {
	out, _, err := run(t, "32", "-H", "-4")
	require.NoError(t, err)

	assert.Equal(t, "4 hours:\nHour\t$32.00\nDay\t$128.00\nMonth\t$3840.00\n\n"+
		"6 hours:\nHour\t$32.00\nDay\t$192.00\nMonth\t$5760.00\n\n"+
		"8 hours:\nHour\t$32.00\nDay\t$256.00\nMonth\t$7680.00\n\n", out)
}

func TestConvertLongFlagsAndOptions(t *testing.T) {
	out, _, err := run(t, "160", "--day", "--8h", "--precision", "-1", "--currency", "€")
	require.NoError(t, err)

	assert.Contains(t, out, "4 hours:\nHour\t€20\nDay\t€80\nMonth\t€2400\n")
	assert.Contains(t, out, "8 hours:\nHour\t€20\nDay\t€160\nMonth\t€4800\n")
}

func TestConvertNegativeAfterDoubleDash(t *testing.T) {
	out, _, err := run(t, "-H", "-4", "--", "-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Month\t$-1200.00\n")
}

func TestConvertJSON(t *testing.T) {
	out, _, err := run(t, "0", "-m", "-6", "-o", "json")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc["table"], 3)
	assert.Equal(t, float64(0), doc["hourly_rate"])
}

func TestConvertFromProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate.hcl")
	require.NoError(t, os.WriteFile(path, []byte("wage {\n value = 160\n prefix = \"day\"\n unit = 8\n}\n"), 0644))

	out, _, err := run(t, "--file", path, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| 8 hours | $20.00 | $160.00 | $4800.00 |")
}

func TestConvertUsesConfigDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "wageman.json")
	cfg := config.Default()
	cfg.Output.Precision = 0
	cfg.Output.CurrencySymbol = "¥"
	require.NoError(t, cfg.Save(cfgPath))

	out, _, err := run(t, "--config", cfgPath, "100", "-H", "-8")
	require.NoError(t, err)
	assert.Contains(t, out, "Month\t¥24000\n")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := run(t, "-v", "20", "-H", "-8")
	require.NoError(t, err)
	assert.Contains(t, out, "8 hours:")
	assert.Contains(t, stderr, "table built")
	assert.Contains(t, stderr, "run_id")
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := run(t, "20", "-H", "-8")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing value", []string{"-H", "-4"}, "missing <value>; see --help"},
		{"bad value", []string{"abc", "-H", "-4"}, "value must be a number"},
		{"missing prefix", []string{"10", "-4"}, "you must specify a prefix (-H, -d or -m)"},
		{"missing unit", []string{"10", "-d"}, "you must specify a unit (-4, -6 or -8)"},
		{"value with file", []string{"10", "--file", "x.hcl"}, "a value cannot be combined with --file"},
		{"bad precision", []string{"10", "-H", "-4", "-p", "40"}, "precision must be between -1 and 12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, 1, ExitCode(err))
		})
	}
}

func TestFlagConflicts(t *testing.T) {
	for _, args := range [][]string{
		{"10", "-H", "-d", "-4"},
		{"10", "-H", "-4", "-8"},
		{"--file", "x.hcl", "-H"},
	} {
		_, _, err := run(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "none of the others can be", args)
		assert.Equal(t, 1, ExitCode(err))
	}
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := run(t, "10", "-H", "-4", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
	assert.Equal(t, 1, ExitCode(err))
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wageman version "+Version+"\n", out)

	out, _, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "wageman version "+Version+"\n", out)
}

func TestConfigInitAndShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sub", "wageman.json")

	out, _, err := run(t, "--config", cfgPath, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "wrote "+cfgPath+"\n", out)
	assert.FileExists(t, cfgPath)

	out, _, err = run(t, "--config", cfgPath, "config")
	require.NoError(t, err)
	var shown config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, *config.Default(), shown)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestStdoutWriteFailureExits255(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "wageman.json")
	orig := config.Get()
	t.Cleanup(func() {
		config.Set(orig)
		logging.InitializeDefault()
	})

	for _, args := range [][]string{
		{"version"},
		{"config"},
		{"config", "init"},
		{"20", "-H", "-8"},
	} {
		root := NewRootCmd()
		root.SetOut(failWriter{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(append([]string{"--config", cfgPath}, args...))

		err := root.Execute()
		require.Error(t, err, args)
		assert.True(t, errors.IsType(err, errors.TypeOutput), args)
		assert.ErrorIs(t, err, io.ErrClosedPipe, args)
		assert.Equal(t, 255, ExitCode(err), args)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.Input("x")))
	assert.Equal(t, 1, ExitCode(errors.Parsing("x", nil)))
	assert.Equal(t, 255, ExitCode(errors.Output("x", nil)))
	assert.Equal(t, 255, ExitCode(errors.Internal("x", nil)))
}
