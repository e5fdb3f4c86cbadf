package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestCopyMetadata(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	writeFile(t, src, "a")
	writeFile(t, dst, "b")

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chmod(src, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(src, mtime, mtime); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(src)
	if err != nil {
		t.Fatal(err)
	}

	if err := CopyMetadata(dst, info); err != nil {
		t.Fatalf("CopyMetadata failed: %v", err)
	}

	got, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if !got.ModTime().Equal(mtime) {
		t.Errorf("mtime = %v, want %v", got.ModTime(), mtime)
	}
	if runtime.GOOS != "windows" {
		if perm := got.Mode().Perm(); perm != 0700 {
			t.Errorf("permissions = %o, want %o", perm, 0700)
		}
	}
}
