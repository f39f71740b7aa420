package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/monoforge-labs/monoforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys understood by the CLI. Defaults come from branding;
// users override via ~/.monoforge/config.yaml or MONOFORGE_* env vars.
const (
	KeyScope           = "scope"
	KeyPackageManager  = "package_manager"
	KeyFallbackVersion = "fallback_version"
)

// Dir returns the path to the config directory (~/.monoforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.monoforge/config.yaml).
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

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyScope, branding.Scope())
	viper.SetDefault(KeyPackageManager, branding.PackageManager())
	viper.SetDefault(KeyFallbackVersion, branding.FallbackVersion())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Scope returns the npm scope for workspace-internal packages (e.g., "@repo").
func Scope() string {
	return viper.GetString(KeyScope)
}

// PackageManager returns the package manager binary name (e.g., "pnpm").
func PackageManager() string {
	return viper.GetString(KeyPackageManager)
}

// FallbackVersion returns the package manager version used when detection fails.
func FallbackVersion() string {
	return viper.GetString(KeyFallbackVersion)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
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
