package platform

import (
	"fmt"
	"io"
	"os"
)

// CopyFile duplicates the data and metadata of src at dst. An existing dst
// is replaced.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	// Remove first so a hard link at dst does not get its shared data
	// overwritten.
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return CopyMetadata(dst, info)
}
