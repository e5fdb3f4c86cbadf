package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// SymlinkForce creates a symbolic link at link whose contents are target.
// If link is an existing directory the link is created inside it under the
// base name of target. An entry already present at the final location is
// removed and the link is retried; other errors are returned.
func SymlinkForce(target, link string) (string, error) {
	link = resolveLinkName(target, link)
	err := os.Symlink(target, link)
	if errors.Is(err, fs.ErrExist) {
		if err := os.Remove(link); err != nil {
			return link, fmt.Errorf("replacing %s: %w", link, err)
		}
		err = os.Symlink(target, link)
	}
	if err != nil {
		return link, fmt.Errorf("symlinking %s -> %s: %w", link, target, err)
	}
	return link, nil
}

// LinkForce creates a hard link at link for the file target, with the same
// directory and replace-on-exists behavior as SymlinkForce. When the two
// paths are on different devices the file is copied instead, which still
// leaves a real file at link.
func LinkForce(target, link string) (string, error) {
	link = resolveLinkName(target, link)
	err := os.Link(target, link)
	if errors.Is(err, fs.ErrExist) {
		if err := os.Remove(link); err != nil {
			return link, fmt.Errorf("replacing %s: %w", link, err)
		}
		err = os.Link(target, link)
	}
	if errors.Is(err, syscall.EXDEV) {
		err = CopyFile(target, link)
	}
	if err != nil {
		return link, fmt.Errorf("hard linking %s -> %s: %w", link, target, err)
	}
	return link, nil
}

// MkdirAll creates path and any missing parents. An existing directory is
// not an error.
func MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// IsSymlink reports whether path is a symbolic link. It does not follow the
// link.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// resolveLinkName places the link inside link when link is a real
// directory. Symlinks to directories are replaced, not entered.
func resolveLinkName(target, link string) string {
	info, err := os.Lstat(link)
	if err == nil && info.IsDir() {
		return filepath.Join(link, filepath.Base(target))
	}
	return link
}
