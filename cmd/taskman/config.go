// Config loading for the taskman CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"

	defaultConfigDir = ".taskman"
	defaultDataDir   = ".taskman-db"

	envConfigDir = "TASKMAN_CONFIG_DIR"
	envDataDir   = "TASKMAN_DATA_DIR"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Taskman CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// resolveConfigDir returns the configuration directory, with precedence
// --config-dir flag > TASKMAN_CONFIG_DIR env > $(CWD)/.taskman.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv(envConfigDir); v != "" {
		return v
	}
	return defaultConfigDir
}

// resolveDataDir returns the data directory, with precedence
// --data-dir flag > config.yaml data_dir > TASKMAN_DATA_DIR env >
// $(CWD)/.taskman-db.
func resolveDataDir(configDataDir string) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	if configDataDir != "" {
		return configDataDir
	}
	if v := os.Getenv(envDataDir); v != "" {
		return v
	}
	return defaultDataDir
}

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default config.yaml on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
