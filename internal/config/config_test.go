package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Generation.Timeout())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\ngeneration:\n  timeout_seconds: 5\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Generation.Timeout())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Generation.TimeoutSeconds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config file")
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Run("port", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Port = 70000
		assert.ErrorContains(t, cfg.Validate(), "server.port")
	})

	t.Run("timeout", func(t *testing.T) {
		cfg := Default()
		cfg.Generation.TimeoutSeconds = 0
		assert.ErrorContains(t, cfg.Validate(), "generation.timeout_seconds")
	})
}
