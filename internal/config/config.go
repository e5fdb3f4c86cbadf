package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/indexstore-tools/fake-toolchain/internal/branding"
	"github.com/indexstore-tools/fake-toolchain/internal/toolchain"
)

const fileType = "yaml"

// Setting keys. They double as flag names.
const (
	KeyVerbose              = "verbose"
	KeyBuildPath            = "build-path"
	KeyPackagePath          = "package-path"
	KeyConfiguration        = "configuration"
	KeySwiftc               = "swiftc"
	KeySwiftBuild           = "swift-build"
	KeySwiftBuildTool       = "swift-build-tool"
	KeySwiftTest            = "swift-test"
	KeyFoundationBuildDir   = "foundation-build-dir"
	KeyFoundationSourceDir  = "foundation-source-dir"
	KeyXCTest               = "xctest"
	KeyLibdispatchBuildDir  = "libdispatch-build-dir"
	KeyLibdispatchSourceDir = "libdispatch-source-dir"
	KeySwiftPMBootstrap     = "swiftpm-bootstrap"
	KeyAssembleOnly         = "assemble-only"
	KeyRequires             = "requires"
)

// Defaults for the package options.
const (
	DefaultBuildPath     = ".build"
	DefaultPackagePath   = "."
	DefaultConfiguration = "debug"
)

// Settings is the merged configuration of one run.
type Settings struct {
	Verbose       bool   `mapstructure:"verbose"`
	BuildPath     string `mapstructure:"build-path"`
	PackagePath   string `mapstructure:"package-path"`
	Configuration string `mapstructure:"configuration"`
	AssembleOnly  bool   `mapstructure:"assemble-only"`

	Swiftc               string `mapstructure:"swiftc"`
	SwiftBuild           string `mapstructure:"swift-build"`
	SwiftBuildTool       string `mapstructure:"swift-build-tool"`
	SwiftTest            string `mapstructure:"swift-test"`
	FoundationBuildDir   string `mapstructure:"foundation-build-dir"`
	FoundationSourceDir  string `mapstructure:"foundation-source-dir"`
	XCTest               string `mapstructure:"xctest"`
	LibdispatchBuildDir  string `mapstructure:"libdispatch-build-dir"`
	LibdispatchSourceDir string `mapstructure:"libdispatch-source-dir"`
	SwiftPMBootstrap     string `mapstructure:"swiftpm-bootstrap"`

	// Requires is a semver constraint on the tool version, only settable
	// from the file.
	Requires string `mapstructure:"requires"`

	// File is the settings file that was read, or empty.
	File string `mapstructure:"-"`
}

// DefaultFile returns the settings file name looked up in the working
// directory (fake-toolchain.yaml).
func DefaultFile() string {
	return branding.ConfigName() + "." + fileType
}

// Load merges flags, environment, and the settings file into Settings.
// Flags that were set explicitly win over the environment, which wins over
// the file, which wins over flag defaults. An explicit configFile must
// exist; the default file is optional.
func Load(flags *pflag.FlagSet, configFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBuildPath, DefaultBuildPath)
	v.SetDefault(KeyPackagePath, DefaultPackagePath)
	v.SetDefault(KeyConfiguration, DefaultConfiguration)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	path, err := resolveFile(configFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		result, err := ValidateFile(path)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, &InvalidFileError{Path: path, Issues: result.Issues}
		}

		v.SetConfigFile(path)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	s.File = path
	return &s, nil
}

func resolveFile(configFile string) (string, error) {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return "", fmt.Errorf("settings file %s: %w", configFile, err)
		}
		return configFile, nil
	}

	path := DefaultFile()
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("settings file %s: %w", path, err)
	}
	return path, nil
}

// Validate checks the settings that cannot be defaulted.
func (s *Settings) Validate() error {
	if s.Swiftc == "" {
		return fmt.Errorf("the compiler path is required (--%s or %s)", KeySwiftc, branding.EnvVar(KeySwiftc))
	}
	return nil
}

// Sources returns the toolchain sources named by s, made absolute.
func (s *Settings) Sources() (toolchain.Sources, error) {
	src := toolchain.Sources{
		Swiftc:               s.Swiftc,
		SwiftBuild:           s.SwiftBuild,
		SwiftBuildTool:       s.SwiftBuildTool,
		SwiftTest:            s.SwiftTest,
		FoundationBuildDir:   s.FoundationBuildDir,
		FoundationSourceDir:  s.FoundationSourceDir,
		XCTest:               s.XCTest,
		LibdispatchBuildDir:  s.LibdispatchBuildDir,
		LibdispatchSourceDir: s.LibdispatchSourceDir,
		SwiftPMBootstrap:     s.SwiftPMBootstrap,
	}
	abs, err := src.Abs()
	if err != nil {
		return src, fmt.Errorf("resolving toolchain paths: %w", err)
	}
	return abs, nil
}
