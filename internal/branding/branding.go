// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
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
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigName  string `yaml:"config_name"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "fake-toolchain",
			DisplayName: "Fake Toolchain",
			Description: "Assemble a fake Swift toolchain from separate build outputs",
			EnvPrefix:   "FAKE_TOOLCHAIN",
			ConfigName:  "fake-toolchain",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "fake-toolchain").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "FAKE_TOOLCHAIN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the base name of the optional settings file, without
// extension. It is looked up in the working directory.
func ConfigName() string { load(); return defaults.ConfigName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("swiftc") → "FAKE_TOOLCHAIN_SWIFTC".
func EnvVar(suffix string) string {
	load()
	suffix = strings.ReplaceAll(suffix, "-", "_")
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
