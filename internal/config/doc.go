// Package config manages user-level CLI configuration via Viper.
//
// Configuration lives in ~/.monoforge/config.yaml and can be overridden with
// MONOFORGE_* environment variables. All keys have branding-supplied defaults,
// so the file is optional.
package config
