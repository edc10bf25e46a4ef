package config

import (
	"flag"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/geomkit/internal/observability/log"
	"github.com/zeusync/geomkit/pkg/linalg"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GEOMKIT_LOG_LEVEL", "GEOMKIT_WORKERS", "GEOMKIT_PRINT_FORMAT"} {
		// Setenv restores the previous value on cleanup.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, log.LevelInfo, cfg.Level())
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, linalg.RowVector, cfg.Format())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GEOMKIT_LOG_LEVEL", "debug")
	t.Setenv("GEOMKIT_WORKERS", "8")
	t.Setenv("GEOMKIT_PRINT_FORMAT", "column")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, cfg.Level())
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, linalg.ColumnVector, cfg.Format())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"NotANumber", "GEOMKIT_WORKERS", "many"},
		{"ZeroWorkers", "GEOMKIT_WORKERS", "0"},
		{"UnknownLevel", "GEOMKIT_LOG_LEVEL", "loud"},
		{"UnknownFormat", "GEOMKIT_PRINT_FORMAT", "diagonal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GEOMKIT_LOG_LEVEL", "info")
			t.Setenv("GEOMKIT_WORKERS", "2")
			t.Setenv("GEOMKIT_PRINT_FORMAT", "row")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GEOMKIT_LOG_LEVEL", "warn")
	t.Setenv("GEOMKIT_WORKERS", "2")
	t.Setenv("GEOMKIT_PRINT_FORMAT", "row")

	fs := flag.NewFlagSet("geomkit", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-workers", "6", "-format", "column", "a.yaml", "b.json"})
	require.NoError(t, err)

	assert.Equal(t, log.LevelWarn, cfg.Level())
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, linalg.ColumnVector, cfg.Format())
	assert.Equal(t, []string{"a.yaml", "b.json"}, cfg.Files)
}

func TestParseConfig_Invalid(t *testing.T) {
	t.Setenv("GEOMKIT_WORKERS", "2")

	fs := flag.NewFlagSet("geomkit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := ParseConfig(fs, []string{"-workers", "-1"})
	assert.Error(t, err)

	fs = flag.NewFlagSet("geomkit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = ParseConfig(fs, []string{"-unknown"})
	assert.Error(t, err)
}
