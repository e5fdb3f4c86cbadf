package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/indexstore-tools/fake-toolchain/internal/branding"
	"github.com/indexstore-tools/fake-toolchain/internal/config"
	"github.com/indexstore-tools/fake-toolchain/internal/platform"
	"github.com/indexstore-tools/fake-toolchain/internal/swiftpm"
	"github.com/indexstore-tools/fake-toolchain/internal/toolchain"
)

var (
	buildVersion = config.DevVersion
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

type rootOptions struct {
	configFile string
	// hostOS is the operating system the platform context is derived from.
	hostOS string
}

func newRootCmd(hostOS string) *cobra.Command {
	opts := &rootOptions{hostOS: hostOS}
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [flags] [build-actions...]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` assembles a Swift toolchain layout under <build-path>/fake_toolchain
from separately built components, then builds the package at --package-path
with it. Pass "test" as a build action to run the package tests instead.

Example:
  ` + branding.CLIName() + ` --swiftc /swift/build/bin/swiftc \
      --swiftpm-bootstrap /swiftpm/.build/debug \
      --xctest /xctest/build test`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssemble(cmd, opts, args)
		},
	}

	cmd.SetGlobalNormalizationFunc(normalizeAliases)
	addToolchainFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(newPlanCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd := newRootCmd(runtime.GOOS)
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", branding.CLIName(), err)
	}
	return err
}

// session is everything a run needs before it touches the filesystem.
type session struct {
	settings *config.Settings
	platform platform.Platform
	layout   toolchain.Layout
	plan     []toolchain.Artifact
}

func prepare(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	p, err := platform.Detect(opts.hostOS)
	if err != nil {
		return nil, err
	}

	settings, err := config.Load(cmd.Flags(), opts.configFile)
	if err != nil {
		return nil, err
	}
	if err := config.CheckRequires(settings.Requires, buildVersion); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	layout, err := toolchain.NewLayout(settings.BuildPath, p)
	if err != nil {
		return nil, err
	}
	src, err := settings.Sources()
	if err != nil {
		return nil, err
	}

	return &session{
		settings: settings,
		platform: p,
		layout:   layout,
		plan:     toolchain.Plan(src, layout),
	}, nil
}

func runAssemble(cmd *cobra.Command, opts *rootOptions, args []string) error {
	// Validated first: a typo in the action must not cost the old tree.
	action, err := swiftpm.ActionFor(args)
	if err != nil {
		return err
	}

	s, err := prepare(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	builder := &toolchain.Builder{Out: out, Verbose: s.settings.Verbose}
	summary, err := builder.Assemble(s.layout, s.plan)
	if err != nil {
		return fmt.Errorf("assembling toolchain: %w", err)
	}
	fmt.Fprintf(out, "Assembled %s: %s\n", s.layout.Root, summary)

	if s.settings.AssembleOnly {
		return nil
	}

	packagePath, err := filepath.Abs(s.settings.PackagePath)
	if err != nil {
		return fmt.Errorf("resolving package path: %w", err)
	}
	inv := &swiftpm.Invocation{
		Swift:         s.layout.Swift(),
		Action:        action,
		PackagePath:   packagePath,
		BuildPath:     filepath.Dir(s.layout.Root),
		Configuration: s.settings.Configuration,
		Verbose:       s.settings.Verbose,
	}
	if !s.platform.Primary {
		inv.SearchPath = s.layout.Modules
	}

	runner := &swiftpm.Runner{Stdout: out, Stderr: cmd.ErrOrStderr(), Log: out}
	return runner.Run(cmd.Context(), inv)
}
