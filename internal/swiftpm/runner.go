package swiftpm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Supported actions.
const (
	ActionBuild = "build"
	ActionTest  = "test"
)

// BuildActions lists the positional build actions accepted on the command
// line. Without any of them the package is built.
var BuildActions = []string{ActionTest}

// ActionFor validates the requested build actions and returns the SwiftPM
// subcommand to run.
func ActionFor(buildActions []string) (string, error) {
	action := ActionBuild
	for _, a := range buildActions {
		if !isKnownAction(a) {
			return "", fmt.Errorf("unknown build action %q (supported: %s)", a, strings.Join(BuildActions, ", "))
		}
		if a == ActionTest {
			action = ActionTest
		}
	}
	return action, nil
}

func isKnownAction(a string) bool {
	for _, known := range BuildActions {
		if a == known {
			return true
		}
	}
	return false
}

// Invocation describes one SwiftPM run.
type Invocation struct {
	// Swift is the path of the swift driver inside the assembled toolchain.
	Swift         string
	Action        string
	PackagePath   string
	BuildPath     string
	Configuration string
	Verbose       bool
	// SearchPath, when set, is passed to the compiler as an import search
	// path. Hosts other than the primary one need it to find the placed
	// modules.
	SearchPath string
}

// Args returns the driver arguments for inv.
func (inv *Invocation) Args() []string {
	args := []string{
		inv.Action,
		"--package-path", inv.PackagePath,
		"--build-path", inv.BuildPath,
		"--configuration", inv.Configuration,
	}
	if inv.Verbose {
		args = append(args, "-v")
	}
	if inv.SearchPath != "" {
		args = append(args, "-Xswiftc", "-I"+inv.SearchPath)
	}
	return args
}

// ExitError reports a SwiftPM run that exited with a non-zero status.
type ExitError struct {
	Action string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("swift %s failed with exit status %d", e.Action, e.Code)
}

// Runner executes invocations. Output of the child is forwarded as is.
type Runner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Log receives the command line in verbose mode.
	Log io.Writer
}

// Run executes inv and waits for it. A non-zero exit is returned as an
// *ExitError.
func (r *Runner) Run(ctx context.Context, inv *Invocation) error {
	if _, err := os.Stat(inv.Swift); err != nil {
		return fmt.Errorf("swift driver not found at %s: %w", inv.Swift, err)
	}

	args := inv.Args()
	cmd := exec.CommandContext(ctx, inv.Swift, args...)

	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if inv.Verbose && r.Log != nil {
		fmt.Fprintf(r.Log, "%s %s\n", inv.Swift, strings.Join(args, " "))
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Action: inv.Action, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("running swift %s: %w", inv.Action, err)
}
