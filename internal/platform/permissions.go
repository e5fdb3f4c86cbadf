package platform

import (
	"os"
	"runtime"
)

// CopyMetadata applies the permission bits and modification time of info
// to path. Permission bits are skipped on Windows, which has no Unix modes.
func CopyMetadata(path string, info os.FileInfo) error {
	if runtime.GOOS != "windows" {
		if err := os.Chmod(path, info.Mode().Perm()); err != nil {
			return err
		}
	}
	return os.Chtimes(path, info.ModTime(), info.ModTime())
}
