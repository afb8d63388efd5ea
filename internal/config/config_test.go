package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mparkin/smcflux/internal/config"
	"codeberg.org/mparkin/smcflux/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"smcflux"}, args...)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "smcflux.toml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	return configPath
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
cpu = true
hostname = true
log_level = "debug"
metrics = true
database = "/path/to/readings.db"
`)
	t.Setenv("SMCFLUX_CONFIG", configPath)
	setArgs(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.CPU, "Expected CPU true")
	assert.False(t, cfg.GPU, "Expected GPU false")
	assert.True(t, cfg.Hostname, "Expected Hostname true")
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel debug")
	assert.True(t, cfg.Metrics, "Expected Metrics true")
	assert.Equal(t, "/path/to/readings.db", cfg.Database, "Expected Database /path/to/readings.db")
}

func TestLoadDefaults(t *testing.T) {
	// Ensure no config file is used
	t.Setenv("SMCFLUX_CONFIG", "")
	setArgs(t)

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	// No selection flags: CPU, GPU, fans, WiFi and SSD, but not the full registry
	assert.True(t, cfg.CPU, "Expected default CPU true")
	assert.True(t, cfg.GPU, "Expected default GPU true")
	assert.True(t, cfg.Fans, "Expected default Fans true")
	assert.True(t, cfg.WiFi, "Expected default WiFi true")
	assert.True(t, cfg.SSD, "Expected default SSD true")
	assert.False(t, cfg.Everything, "Expected default Everything false")
	assert.False(t, cfg.Hostname, "Expected default Hostname false")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel warn")
	assert.False(t, cfg.Metrics, "Expected default Metrics false")
	assert.Equal(t, "/var/lib/smcflux/readings.db", cfg.Database, "Expected default Database path")
}

func TestSelectionFlags(t *testing.T) {
	t.Setenv("SMCFLUX_CONFIG", "")
	setArgs(t, "-c", "-n")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.CPU, "Expected CPU true")
	assert.True(t, cfg.Hostname, "Expected Hostname true")
	assert.False(t, cfg.GPU, "Expected GPU false")
	assert.False(t, cfg.Fans, "Expected Fans false")
	assert.False(t, cfg.WiFi, "Expected WiFi false")
	assert.False(t, cfg.SSD, "Expected SSD false")
}

func TestAllShorthand(t *testing.T) {
	t.Setenv("SMCFLUX_CONFIG", "")
	setArgs(t, "-a")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.CPU, "Expected CPU true")
	assert.True(t, cfg.GPU, "Expected GPU true")
	assert.True(t, cfg.Fans, "Expected Fans true")
	assert.False(t, cfg.WiFi, "Expected WiFi false, -a does not include it")
	assert.False(t, cfg.SSD, "Expected SSD false, -a does not include it")
}

func TestEverythingFlag(t *testing.T) {
	t.Setenv("SMCFLUX_CONFIG", "")
	setArgs(t, "-A")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Everything, "Expected Everything true")
	assert.False(t, cfg.CPU, "Expected CPU false, -A covers the registry")
}

func TestUnknownFlag(t *testing.T) {
	t.Setenv("SMCFLUX_CONFIG", "")
	setArgs(t, "-z")

	_, err := config.Load()
	require.Error(t, err)

	var appErr errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.ErrInvalidArgument, appErr.Code())
}

func TestHelpFlag(t *testing.T) {
	t.Setenv("SMCFLUX_CONFIG", "")
	setArgs(t, "-h")

	_, err := config.Load()
	require.Error(t, err)

	var appErr errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.ErrHelpRequested, appErr.Code())
}

func TestFlagOverridesConfigFile(t *testing.T) {
	configPath := writeConfig(t, `
log_level = "error"
`)
	t.Setenv("SMCFLUX_CONFIG", configPath)
	setArgs(t, "--log-level", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected flag to override config file")
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	configPath := writeConfig(t, `
This is not a valid TOML file
`)
	t.Setenv("SMCFLUX_CONFIG", configPath)
	setArgs(t)

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestInvalidLogLevel(t *testing.T) {
	configPath := writeConfig(t, `
log_level = "invalid"
`)
	t.Setenv("SMCFLUX_CONFIG", configPath)
	setArgs(t)

	_, err := config.Load()
	require.Error(t, err)

	var appErr errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.ErrInvalidLogLevel, appErr.Code())
}

func TestUsage(t *testing.T) {
	usage := config.Usage()
	for _, flag := range []string{"-c", "-g", "-w", "-s", "-f", "-a", "-A", "-n"} {
		assert.Contains(t, usage, flag)
	}
}
