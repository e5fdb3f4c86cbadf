package toolchain

import (
	"fmt"
	"path/filepath"

	"github.com/indexstore-tools/fake-toolchain/internal/platform"
)

// RootDir is the name of the toolchain root inside the build path.
const RootDir = "fake_toolchain"

// Layout holds the absolute paths of the assembled toolchain.
type Layout struct {
	Platform platform.Platform `yaml:"-"`

	Root             string `yaml:"root"`
	Bin              string `yaml:"bin"`
	Lib              string `yaml:"lib"`
	LibSwift         string `yaml:"lib_swift"`
	LibSwiftPlatform string `yaml:"lib_swift_platform"`
	Modules          string `yaml:"modules"`
}

// NewLayout computes the layout under buildPath for platform p. buildPath
// is made absolute so that symlinks and the build invocation agree on it.
func NewLayout(buildPath string, p platform.Platform) (Layout, error) {
	abs, err := filepath.Abs(buildPath)
	if err != nil {
		return Layout{}, fmt.Errorf("resolving build path %s: %w", buildPath, err)
	}
	root := filepath.Join(abs, RootDir)
	return Layout{
		Platform:         p,
		Root:             root,
		Bin:              filepath.Join(root, binRel),
		Lib:              filepath.Join(root, libRel),
		LibSwift:         filepath.Join(root, libSwiftRel),
		LibSwiftPlatform: filepath.Join(root, libSwiftRel, p.Name),
		Modules:          filepath.Join(root, libSwiftRel, p.Name, p.Arch),
	}, nil
}

// Paths relative to the toolchain root.
var (
	binRel      = filepath.Join("usr", "bin")
	libRel      = filepath.Join("usr", "lib")
	libSwiftRel = filepath.Join("usr", "lib", "swift")
)

// Swift returns the path of the placed compiler driver.
func (l Layout) Swift() string {
	return filepath.Join(l.Bin, "swift")
}

// Abs returns the absolute path of rel inside the toolchain root.
func (l Layout) Abs(rel string) string {
	return filepath.Join(l.Root, rel)
}

func (l Layout) platformRel(elem ...string) string {
	return filepath.Join(append([]string{libSwiftRel, l.Platform.Name}, elem...)...)
}

func (l Layout) modulesRel(name string) string {
	return l.platformRel(l.Platform.Arch, name)
}
