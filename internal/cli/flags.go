package cli

import (
	"github.com/spf13/pflag"

	"github.com/indexstore-tools/fake-toolchain/internal/config"
)

// flagAliases maps alternate spellings accepted on the command line to the
// canonical flag name.
var flagAliases = map[string]string{
	"swift":      config.KeySwiftc,
	"foundation": config.KeyFoundationBuildDir,
}

func normalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := flagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// addToolchainFlags registers the package and toolchain options. Values are
// read back through config.Load, not through variables.
func addToolchainFlags(fs *pflag.FlagSet, opts *rootOptions) {
	fs.BoolP(config.KeyVerbose, "v", false, "use verbose output")
	fs.StringVar(&opts.configFile, "config", "", "read settings from `FILE` (default ./"+config.DefaultFile()+")")

	fs.String(config.KeyBuildPath, config.DefaultBuildPath, "create build products at `PATH`")
	fs.String(config.KeyPackagePath, config.DefaultPackagePath, "use the sources from `PATH`")
	fs.StringP(config.KeyConfiguration, "c", config.DefaultConfiguration, "build with configuration (debug|release)")
	fs.Bool(config.KeyAssembleOnly, false, "assemble the toolchain without building the package")

	fs.String(config.KeySwiftc, "", "path to the swift compiler (alias --swift)")
	fs.String(config.KeySwiftBuild, "", "path to the swift-build executable")
	fs.String(config.KeySwiftBuildTool, "", "path to the swift-build-tool executable")
	fs.String(config.KeySwiftTest, "", "path to the swift-test executable")
	fs.String(config.KeyFoundationBuildDir, "", "path to the Foundation build directory (alias --foundation)")
	fs.String(config.KeyFoundationSourceDir, "", "path to the Foundation source directory")
	fs.String(config.KeyXCTest, "", "path to the XCTest build directory")
	fs.String(config.KeyLibdispatchBuildDir, "", "path to the libdispatch build directory")
	fs.String(config.KeyLibdispatchSourceDir, "", "path to the libdispatch source directory")
	fs.String(config.KeySwiftPMBootstrap, "", "path to the SwiftPM bootstrap build directory")
}
