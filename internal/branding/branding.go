// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary. Runtime configuration (viper) can still
// override the scope, package manager, and fallback version per user.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	Scope           string `yaml:"scope"`
	PackageManager  string `yaml:"package_manager"`
	FallbackVersion string `yaml:"fallback_version"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "monoforge",
			DisplayName:     "Monoforge",
			Description:     "Bootstrap pnpm + Turborepo monorepos with batteries included",
			HomeDir:         ".monoforge",
			EnvPrefix:       "MONOFORGE",
			Scope:           "@repo",
			PackageManager:  "pnpm",
			FallbackVersion: "9.0.0",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "monoforge").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Monoforge").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".monoforge").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MONOFORGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Scope returns the npm scope used for workspace-internal packages (e.g., "@repo").
func Scope() string { load(); return defaults.Scope }

// PackageManager returns the package manager binary name (e.g., "pnpm").
func PackageManager() string { load(); return defaults.PackageManager }

// FallbackVersion returns the package manager version assumed when detection fails.
func FallbackVersion() string { load(); return defaults.FallbackVersion }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("SCOPE") → "MONOFORGE_SCOPE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
