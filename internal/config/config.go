package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	homeDir   = ".fortdoc"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "FORTDOC"
)

// Configuration keys.
const (
	// KeyHTTPTimeout bounds each fetch of a remote interchange document.
	KeyHTTPTimeout = "http_timeout"
	// KeyVerbosity sets the diagnostic level: debug, info, warn or error.
	KeyVerbosity = "verbosity"
	// KeyOutputDir overrides the manifest's output directory.
	KeyOutputDir = "output_dir"
)

// Dir returns the path to the fortdoc config directory (~/.fortdoc/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDir)
	}
	return filepath.Join(home, homeDir)
}

// FilePath returns the full path to the config file (~/.fortdoc/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes viper to read from the config file and environment, and
// installs the defaults.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyHTTPTimeout, "30s")
	viper.SetDefault(KeyVerbosity, "info")
	viper.SetDefault(KeyOutputDir, "")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// HTTPTimeout returns the remote fetch timeout.
func HTTPTimeout() time.Duration {
	return viper.GetDuration(KeyHTTPTimeout)
}

// Verbosity returns the configured diagnostic level name.
func Verbosity() string {
	return viper.GetString(KeyVerbosity)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
