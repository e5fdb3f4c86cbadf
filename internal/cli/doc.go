// Package cli defines the Cobra command tree for the fake-toolchain CLI.
// The root command assembles the toolchain and runs the requested build
// action; plan and version are informational. Command implementations
// delegate to internal packages for the actual work and only handle flag
// parsing and output.
package cli
