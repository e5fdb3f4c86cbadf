// Package config merges the assembler settings from command-line flags,
// FAKE_TOOLCHAIN_* environment variables, and an optional YAML settings
// file (fake-toolchain.yaml in the working directory, or --config). The
// file is validated against an embedded JSON schema before it is read and
// may pin the tool version with a semver constraint under "requires".
package config
