package toolchain

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/indexstore-tools/fake-toolchain/internal/platform"
)

// Builder places artifacts into a toolchain tree. Skipped artifacts are
// always reported to Out; individual placements only when Verbose is set.
type Builder struct {
	Out     io.Writer
	Verbose bool
}

// Summary counts what Assemble did.
type Summary struct {
	Artifacts int // artifacts placed
	Skipped   int // artifacts whose source was missing
	Entries   int // filesystem entries created, including mirrored files and directories
}

var printer = message.NewPrinter(language.English)

// String renders the summary for humans.
func (s *Summary) String() string {
	return printer.Sprintf("%d artifacts placed (%d entries), %d skipped", s.Artifacts, s.Entries, s.Skipped)
}

func (b *Builder) out() io.Writer {
	if b.Out == nil {
		return io.Discard
	}
	return b.Out
}

func (b *Builder) logf(format string, args ...any) {
	if b.Verbose {
		fmt.Fprintf(b.out(), format+"\n", args...)
	}
}

// Reset removes root and everything below it. A missing root is not an
// error.
func (b *Builder) Reset(root string) error {
	b.logf("Reset %s", root)
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("removing %s: %w", root, err)
	}
	return nil
}

// Place puts source at dest using kind. It reports whether anything was
// placed: an empty or missing source is skipped with a message.
func (b *Builder) Place(source, dest string, kind Kind) (bool, error) {
	n, err := b.place(dest, source, dest, kind, "")
	return n > 0, err
}

// Mirror recreates the directory structure of sourceDir under destDir.
// Ordinary subdirectories are created; every other entry, including a
// symlinked subdirectory, becomes a symlink to the source entry. Symlinked
// subdirectories are not descended into.
func (b *Builder) Mirror(sourceDir, destDir string) error {
	_, err := b.place(destDir, sourceDir, destDir, KindMirror, "")
	return err
}

// Apply places a into the tree rooted at root. It returns the number of
// filesystem entries created; zero means a was skipped. A required artifact
// with a missing source is an error, not a skip.
func (b *Builder) Apply(root string, a Artifact) (int, error) {
	if err := checkRequired([]Artifact{a}); err != nil {
		return 0, err
	}
	n, err := b.place(a.Name, a.Source, filepath.Join(root, a.Dest), a.Kind, a.LinkText)
	if err != nil {
		return 0, fmt.Errorf("placing %s: %w", a.Name, err)
	}
	return n, nil
}

// Assemble resets the tree described by l and places every artifact of
// plan in order. A missing required artifact fails before the existing tree
// is touched.
func (b *Builder) Assemble(l Layout, plan []Artifact) (*Summary, error) {
	if err := checkRequired(plan); err != nil {
		return nil, err
	}
	if err := b.Reset(l.Root); err != nil {
		return nil, err
	}
	for _, dir := range []string{l.Bin, l.LibSwift} {
		if err := platform.MkdirAll(dir); err != nil {
			return nil, err
		}
	}

	summary := &Summary{}
	for _, a := range plan {
		n, err := b.Apply(l.Root, a)
		if err != nil {
			return summary, err
		}
		if n == 0 {
			summary.Skipped++
			continue
		}
		summary.Artifacts++
		summary.Entries += n
	}

	// Created last: the compiler's own lib/swift may already provide it,
	// possibly as a symlink.
	if err := platform.MkdirAll(l.Modules); err != nil {
		return summary, err
	}
	return summary, nil
}

func (b *Builder) place(name, source, dest string, kind Kind, linkText string) (int, error) {
	if !exists(source) {
		if source == "" {
			fmt.Fprintf(b.out(), "Skip %s: not configured\n", name)
		} else {
			fmt.Fprintf(b.out(), "Skip %s\n", source)
		}
		return 0, nil
	}

	if kind == KindMirror {
		return b.mirror(source, dest)
	}

	if err := platform.MkdirAll(filepath.Dir(dest)); err != nil {
		return 0, err
	}

	switch kind {
	case KindSymlink:
		target := source
		if linkText != "" {
			target = linkText
		}
		if err := b.symlink(target, dest); err != nil {
			return 0, err
		}
	case KindHardlink:
		b.logf("Hardlink %s -> %s", dest, source)
		if _, err := platform.LinkForce(source, dest); err != nil {
			return 0, err
		}
	case KindCopy:
		b.logf("Copy %s -> %s", dest, source)
		if err := platform.CopyFile(source, dest); err != nil {
			return 0, fmt.Errorf("copying %s to %s: %w", source, dest, err)
		}
	default:
		return 0, fmt.Errorf("unknown placement kind %q", kind)
	}
	return 1, nil
}

func (b *Builder) symlink(target, link string) error {
	b.logf("Symlink %s -> %s", link, target)
	_, err := platform.SymlinkForce(target, link)
	return err
}

func (b *Builder) mirror(sourceDir, destDir string) (int, error) {
	// A symlinked root is walked through, like any directory given on the
	// command line.
	if platform.IsSymlink(sourceDir) {
		resolved, err := filepath.EvalSymlinks(sourceDir)
		if err != nil {
			return 0, fmt.Errorf("resolving %s: %w", sourceDir, err)
		}
		sourceDir = resolved
	}

	links := 0
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, rel)

		if d.IsDir() {
			if err := platform.MkdirAll(dest); err != nil {
				return err
			}
			links++
			return nil
		}
		if err := b.symlink(path, dest); err != nil {
			return err
		}
		links++
		return nil
	})
	if err != nil {
		return links, fmt.Errorf("mirroring %s into %s: %w", sourceDir, destDir, err)
	}
	return links, nil
}
