package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wageman/internal/errors"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wageman.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":{"precision":4,"currency_symbol":"€"}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, "€", cfg.Output.CurrencySymbol)
	assert.Equal(t, "text", cfg.Output.DefaultFormat)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"output":`},
		{"precision too high", `{"output":{"precision":20}}`},
		{"precision too low", `{"output":{"precision":-2}}`},
		{"empty format", `{"output":{"default_format":""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeConfig))
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wageman.json")
	cfg := Default()
	cfg.Output.Precision = -1
	cfg.Output.DefaultFormat = "json"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetSet(t *testing.T) {
	orig := Get()
	defer Set(orig)

	cfg := Default()
	cfg.Output.CurrencySymbol = "£"
	Set(cfg)
	assert.Equal(t, "£", Get().Output.CurrencySymbol)
}
