package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLockfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), LockfileName)
	lock := NewLockfile("lol-cats", " lolcode 0.1.0 ")
	lock.Upsert(&LockedTarget{Name: "zeta", Source: "git+https://example.com/z.git", Commit: "bbb", Path: "/cache/z"})
	lock.Upsert(&LockedTarget{Name: "remote-demo", Source: "git+https://example.com/demo.git", Commit: "aaa", Path: "/cache/demo"})
	lock.Upsert(&LockedTarget{Name: "remote_demo", Source: "git+https://example.com/demo.git", Commit: "ccc", Path: "/cache/demo"})

	if err := WriteLockfile(lock, path); err != nil {
		t.Fatalf("WriteLockfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read lockfile: %v", err)
	}
	if !strings.Contains(string(data), "  - name: remote_demo") {
		t.Fatalf("expected two-space indented target list, got:\n%s", data)
	}

	loaded, err := LoadLockfile(path)
	if err != nil {
		t.Fatalf("LoadLockfile: %v", err)
	}
	if loaded.Root != "lol_cats" || loaded.Tool != "lolcode 0.1.0" {
		t.Fatalf("metadata mismatch: %#v", loaded)
	}
	if len(loaded.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(loaded.Targets))
	}
	if loaded.Targets[0].Name != "remote_demo" || loaded.Targets[1].Name != "zeta" {
		t.Fatalf("targets not sorted: %s, %s", loaded.Targets[0].Name, loaded.Targets[1].Name)
	}
	entry, ok := loaded.Find("remote-demo")
	if !ok || entry.Commit != "ccc" {
		t.Fatalf("Find returned %#v, %v", entry, ok)
	}
}

func TestLoadLockfileRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), LockfileName)
	writeFile(t, path, "root: app\nchecksum: abc\n")
	if _, err := LoadLockfile(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestWriteLockfileRequiresPath(t *testing.T) {
	if err := WriteLockfile(NewLockfile("app", "lolcode"), ""); err == nil {
		t.Fatalf("expected missing path error")
	}
	if err := WriteLockfile(nil, "x"); err == nil {
		t.Fatalf("expected nil lockfile error")
	}
}
