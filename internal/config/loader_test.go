package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a config file under dir, creating parents.
func writeConfigFile(t *testing.T, path string, content Config) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// isolate points both config paths into tempDir and clears the recognized
// environment variables for the duration of the test.
func isolate(t *testing.T, tempDir string) {
	t.Helper()

	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, projectConfigDir, configFileName), nil
	}

	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
}

func TestLoadConfigDefaultOnly(t *testing.T) {
	isolate(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, "", loaded.APIKey)
	assert.Equal(t, TransportStdio, loaded.Server.Transport)
	assert.Equal(t, "info", loaded.LogLevel)
	assert.Equal(t, 30, loaded.Client.TimeoutSeconds)
}

func TestLoadConfigUserOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	writeConfigFile(t, filepath.Join(tempDir, userConfigDir, configFileName), Config{
		LogLevel: "debug",
		Server:   ServerConfig{Port: 9999},
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, 9999, loaded.Server.Port)
	// Untouched fields keep their defaults.
	assert.Equal(t, TransportStdio, loaded.Server.Transport)
	assert.Equal(t, "localhost", loaded.Server.Host)
}

func TestLoadConfigProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	writeConfigFile(t, filepath.Join(tempDir, userConfigDir, configFileName), Config{
		LogLevel: "debug",
		Client:   ClientConfig{RetryMax: 1},
	})
	writeConfigFile(t, filepath.Join(tempDir, projectConfigDir, configFileName), Config{
		LogLevel: "error",
	})

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", loaded.LogLevel, "project layer wins over user layer")
	assert.Equal(t, 1, loaded.Client.RetryMax, "non-conflicting user settings survive")
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	writeConfigFile(t, filepath.Join(tempDir, projectConfigDir, configFileName), Config{
		APIKey:  "tvly-from-file",
		BaseURL: "https://file.example",
	})

	t.Setenv(EnvAPIKey, "tvly-from-env")
	t.Setenv(EnvBaseURL, "https://env.example")

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "tvly-from-env", loaded.APIKey)
	assert.Equal(t, "https://env.example", loaded.BaseURL)
}

func TestLoadConfigMalformedFileFails(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir)

	path := filepath.Join(tempDir, projectConfigDir, configFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestMergeConfigsZeroValuesDoNotOverride(t *testing.T) {
	base := GetDefaultConfig()
	base.APIKey = "tvly-base"

	merged := mergeConfigs(base, Config{})
	assert.Equal(t, base, merged)

	merged = mergeConfigs(base, Config{Server: ServerConfig{Host: "0.0.0.0"}})
	assert.Equal(t, "0.0.0.0", merged.Server.Host)
	assert.Equal(t, base.Server.Port, merged.Server.Port)
	assert.Equal(t, "tvly-base", merged.APIKey)
}
