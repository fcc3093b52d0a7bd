package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/mcp-tavily"
	projectConfigDir = ".mcp-tavily"
	configFileName   = "config.yaml"
)

// Environment variables recognized by LoadConfig.
const (
	EnvAPIKey  = "TAVILY_API_KEY"
	EnvBaseURL = "TAVILY_BASE_URL"
)

// LoadConfig loads the mcp-tavily configuration by layering default, user,
// project and environment settings.
func LoadConfig() (Config, error) {
	// A .env in the working directory is loaded first so TAVILY_API_KEY can
	// live next to a checkout. Already-exported variables are not replaced.
	_ = godotenv.Load()

	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		// Log this error but don't fail; project config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	// 4. Environment wins over every file layer
	return applyEnvironment(config), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base value untouched.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.APIKey != "" {
		merged.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		merged.BaseURL = overlay.BaseURL
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Server.Transport != "" {
		merged.Server.Transport = overlay.Server.Transport
	}
	if overlay.Server.Host != "" {
		merged.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}
	if overlay.Client.TimeoutSeconds != 0 {
		merged.Client.TimeoutSeconds = overlay.Client.TimeoutSeconds
	}
	if overlay.Client.RetryMax != 0 {
		merged.Client.RetryMax = overlay.Client.RetryMax
	}

	return merged
}

func applyEnvironment(config Config) Config {
	if key := os.Getenv(EnvAPIKey); key != "" {
		config.APIKey = key
	}
	if base := os.Getenv(EnvBaseURL); base != "" {
		config.BaseURL = base
	}
	return config
}
