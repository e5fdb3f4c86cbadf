package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
)

// Kind selects how an artifact is placed into the tree.
type Kind string

// Placement kinds.
const (
	// KindCopy duplicates file data and metadata.
	KindCopy Kind = "copy"
	// KindHardlink adds a directory entry for the same file.
	KindHardlink Kind = "hardlink"
	// KindSymlink creates a symbolic link to the source.
	KindSymlink Kind = "symlink"
	// KindMirror recreates a directory's structure with symlinked files.
	KindMirror Kind = "mirror"
)

// Artifact is one entry of the toolchain plan.
type Artifact struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`
	// Source is an absolute path, or empty when the artifact is not configured.
	Source string `yaml:"source,omitempty"`
	// Dest is relative to the toolchain root.
	Dest string `yaml:"dest"`
	// LinkText, when set, is written as the symlink contents instead of Source.
	// Source is still checked for existence.
	LinkText string `yaml:"link,omitempty"`
	// Required artifacts fail the assembly instead of being skipped.
	Required bool `yaml:"required,omitempty"`
}

// Sources lists the build outputs a toolchain is assembled from. Empty
// fields are skipped.
type Sources struct {
	Swiftc               string
	SwiftBuild           string
	SwiftBuildTool       string
	SwiftTest            string
	FoundationBuildDir   string
	FoundationSourceDir  string
	XCTest               string
	LibdispatchBuildDir  string
	LibdispatchSourceDir string
	SwiftPMBootstrap     string
}

// Abs returns a copy of s with every non-empty path made absolute.
func (s Sources) Abs() (Sources, error) {
	for _, p := range []*string{
		&s.Swiftc, &s.SwiftBuild, &s.SwiftBuildTool, &s.SwiftTest,
		&s.FoundationBuildDir, &s.FoundationSourceDir, &s.XCTest,
		&s.LibdispatchBuildDir, &s.LibdispatchSourceDir, &s.SwiftPMBootstrap,
	} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return s, err
		}
		*p = abs
	}
	return s, nil
}

// exists reports whether path names an existing entry. Dangling symlinks
// count as missing.
func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// under joins elem onto base, or returns "" when base is not configured.
func under(base string, elem ...string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available reports whether the artifact's source exists. Artifacts that
// point into the tree itself, like bin/swiftc, are only available once the
// tree is assembled.
func (a Artifact) Available() bool {
	return exists(a.Source)
}

// MissingError reports a required artifact whose source does not exist.
type MissingError struct {
	Name   string
	Source string
}

func (e *MissingError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("required artifact %s is not configured", e.Name)
	}
	return fmt.Sprintf("required artifact %s: %s does not exist", e.Name, e.Source)
}

// checkRequired returns a *MissingError for the first required artifact
// of plan that is not available.
func checkRequired(plan []Artifact) error {
	for _, a := range plan {
		if a.Required && !a.Available() {
			return &MissingError{Name: a.Name, Source: a.Source}
		}
	}
	return nil
}
