package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestSymlinkForce(t *testing.T) {
	skipOnWindows(t)
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "target.txt")
	writeFile(t, targetPath, "hello")

	linkPath := filepath.Join(tmp, "link.txt")
	got, err := SymlinkForce(targetPath, linkPath)
	if err != nil {
		t.Fatalf("SymlinkForce failed: %v", err)
	}
	if got != linkPath {
		t.Errorf("link = %q, want %q", got, linkPath)
	}

	target, err := os.Readlink(linkPath)
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if target != targetPath {
		t.Errorf("symlink target = %q, want %q", target, targetPath)
	}
}

func TestSymlinkForceReplacesExisting(t *testing.T) {
	skipOnWindows(t)
	tmp := t.TempDir()

	first := filepath.Join(tmp, "first.txt")
	second := filepath.Join(tmp, "second.txt")
	writeFile(t, first, "1")
	writeFile(t, second, "2")

	linkPath := filepath.Join(tmp, "link")
	if _, err := SymlinkForce(first, linkPath); err != nil {
		t.Fatal(err)
	}
	if _, err := SymlinkForce(second, linkPath); err != nil {
		t.Fatalf("second SymlinkForce failed: %v", err)
	}

	data, err := os.ReadFile(linkPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2" {
		t.Errorf("link content = %q, want %q", string(data), "2")
	}

	// A plain file in the way is replaced too.
	plain := filepath.Join(tmp, "plain")
	writeFile(t, plain, "old")
	if _, err := SymlinkForce(first, plain); err != nil {
		t.Fatalf("SymlinkForce over a file failed: %v", err)
	}
	if !IsSymlink(plain) {
		t.Error("expected plain file to be replaced by a symlink")
	}
}

func TestSymlinkForceIntoDirectory(t *testing.T) {
	skipOnWindows(t)
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "src", "libfoo.so")
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, targetPath, "lib")

	dir := filepath.Join(tmp, "lib")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := SymlinkForce(targetPath, dir)
	if err != nil {
		t.Fatalf("SymlinkForce failed: %v", err)
	}
	want := filepath.Join(dir, "libfoo.so")
	if got != want {
		t.Errorf("link = %q, want %q", got, want)
	}
	if !IsSymlink(want) {
		t.Errorf("%s is not a symlink", want)
	}
}

func TestSymlinkForceRelativeTarget(t *testing.T) {
	skipOnWindows(t)
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "swift"), "bin")

	linkPath := filepath.Join(tmp, "swiftc")
	if _, err := SymlinkForce("swift", linkPath); err != nil {
		t.Fatal(err)
	}
	target, err := os.Readlink(linkPath)
	if err != nil {
		t.Fatal(err)
	}
	if target != "swift" {
		t.Errorf("symlink target = %q, want %q", target, "swift")
	}
}

func TestSymlinkForceMissingParent(t *testing.T) {
	skipOnWindows(t)
	tmp := t.TempDir()
	_, err := SymlinkForce(tmp, filepath.Join(tmp, "missing", "link"))
	if err == nil {
		t.Error("expected error when the parent directory is missing")
	}
}

func TestLinkForce(t *testing.T) {
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "swift")
	writeFile(t, targetPath, "compiler")

	linkPath := filepath.Join(tmp, "bin-swift")
	writeFile(t, linkPath, "stale")

	if _, err := LinkForce(targetPath, linkPath); err != nil {
		t.Fatalf("LinkForce failed: %v", err)
	}

	if IsSymlink(linkPath) {
		t.Fatal("hard link must not be a symlink")
	}
	ti, err := os.Stat(targetPath)
	if err != nil {
		t.Fatal(err)
	}
	li, err := os.Stat(linkPath)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(ti, li) {
		t.Error("expected link and target to be the same file")
	}
}

func TestMkdirAllIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "usr", "lib", "swift")
	for i := 0; i < 2; i++ {
		if err := MkdirAll(dir); err != nil {
			t.Fatalf("MkdirAll call %d failed: %v", i+1, err)
		}
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestMkdirAllOverFile(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	writeFile(t, file, "x")
	if err := MkdirAll(file); err == nil {
		t.Error("expected error creating a directory over a file")
	}
}
