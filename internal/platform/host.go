package platform

import (
	"fmt"
	"runtime"
)

// Arch is the architecture segment of the module directory. Toolchains are
// only assembled for x86_64 hosts.
const Arch = "x86_64"

// Platform describes the host the toolchain is assembled for.
type Platform struct {
	// OS is the Go operating system identifier (GOOS).
	OS string
	// Name is the Swift platform directory name under lib/swift.
	Name string
	// Arch is the architecture directory name under lib/swift/<Name>.
	Arch string
	// LibSuffix is the shared library extension without the dot.
	LibSuffix string
	// Primary is set on the host where the compiler finds its own modules
	// without extra search paths.
	Primary bool
}

// Detect returns the platform for the given GOOS value. Unknown values are
// an error; callers must check before touching the filesystem.
func Detect(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return Platform{OS: goos, Name: "macosx", Arch: Arch, LibSuffix: "dylib", Primary: true}, nil
	case "linux":
		return Platform{OS: goos, Name: "linux", Arch: Arch, LibSuffix: "so"}, nil
	default:
		return Platform{}, fmt.Errorf("unknown host platform %q", goos)
	}
}

// Host returns the platform of the running process.
func Host() (Platform, error) {
	return Detect(runtime.GOOS)
}

// SharedLib returns the file name of a shared library, e.g.
// SharedLib("Foundation") → "libFoundation.so" on Linux.
func (p Platform) SharedLib(name string) string {
	return "lib" + name + "." + p.LibSuffix
}
