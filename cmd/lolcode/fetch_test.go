package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
)

func writeRemoteProgram(t *testing.T, root string) (string, string) {
	t.Helper()
	repo := filepath.Join(root, "repo")
	writeFile(t, filepath.Join(repo, "programs", "hello.lol"), `
HAI
VISIBLE "from git"
KTHXBYE
`)
	return repo, initGitRepo(t, repo)
}

func TestFetchPinnedTargetAndRun(t *testing.T) {
	root := t.TempDir()
	repo, rev := writeRemoteProgram(t, root)

	app := filepath.Join(root, "app")
	writeFile(t, filepath.Join(app, "lolcode.yml"), `
name: app
targets:
  remote-hello:
    git: `+repo+`
    rev: `+rev+`
    main: programs/hello.lol
`)
	cacheDir := filepath.Join(root, "cache")
	t.Setenv(cacheEnvVar, cacheDir)
	chdir(t, app)

	code, _, stderr := captureCLI(t, []string{"run", "remote-hello"})
	if code != 1 || !strings.Contains(stderr, "has not been fetched") {
		t.Fatalf("expected unfetched target error, code=%d stderr=%q", code, stderr)
	}

	code, stdout, stderr := captureCLI(t, []string{"fetch"})
	if code != 0 {
		t.Fatalf("fetch exit %d (stderr=%q)", code, stderr)
	}
	if stdout != fmt.Sprintf("fetched remote-hello at %s\n", rev) {
		t.Fatalf("unexpected fetch output %q", stdout)
	}

	lock, err := driver.LoadLockfile(filepath.Join(app, driver.LockfileName))
	if err != nil {
		t.Fatalf("LoadLockfile: %v", err)
	}
	if lock.Root != "app" || lock.Tool != cliToolVersion {
		t.Fatalf("unexpected lock metadata %+v", lock)
	}
	locked, ok := lock.Find("remote-hello")
	if !ok {
		t.Fatalf("lockfile missing target: %#v", lock.Targets)
	}
	if locked.Commit != rev || locked.Source != fmt.Sprintf("git+%s@%s", repo, rev) {
		t.Fatalf("unexpected locked target %+v", locked)
	}
	if want := filepath.Join(cacheDir, "remote_hello", rev); locked.Path != want {
		t.Fatalf("locked.Path = %q, want %q", locked.Path, want)
	}

	for _, args := range [][]string{{"run", "remote-hello"}, {"run"}} {
		code, stdout, stderr = captureCLI(t, args)
		if code != 0 || stdout != "from git\n" {
			t.Fatalf("%v: code=%d stdout=%q stderr=%q", args, code, stdout, stderr)
		}
	}

	code, _, stderr = captureCLI(t, []string{"fetch", "remote-hello"})
	if code != 0 {
		t.Fatalf("refetch exit %d (stderr=%q)", code, stderr)
	}
}

func TestFetchReusesShortRevCheckout(t *testing.T) {
	root := t.TempDir()
	repo, rev := writeRemoteProgram(t, root)
	short := rev[:7]

	app := filepath.Join(root, "app")
	writeFile(t, filepath.Join(app, "lolcode.yml"), `
name: app
targets:
  remote:
    git: `+repo+`
    rev: `+short+`
    main: programs/hello.lol
`)
	cacheDir := filepath.Join(root, "cache")
	t.Setenv(cacheEnvVar, cacheDir)
	chdir(t, app)

	code, _, stderr := captureCLI(t, []string{"fetch"})
	if code != 0 {
		t.Fatalf("fetch exit %d (stderr=%q)", code, stderr)
	}
	checkout := filepath.Join(cacheDir, "remote", short+"_"+rev)
	if _, err := os.Stat(checkout); err != nil {
		t.Fatalf("expected checkout at %s: %v", checkout, err)
	}

	// A second clone would fail now that the remote is gone.
	if err := os.RemoveAll(repo); err != nil {
		t.Fatalf("remove repo: %v", err)
	}
	code, stdout, stderr := captureCLI(t, []string{"fetch"})
	if code != 0 || stdout != fmt.Sprintf("fetched remote at %s\n", rev) {
		t.Fatalf("refetch: code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}
	code, stdout, _ = captureCLI(t, []string{"run", "remote"})
	if code != 0 || stdout != "from git\n" {
		t.Fatalf("run remote: code=%d stdout=%q", code, stdout)
	}
}

func TestCachedRevCheckout(t *testing.T) {
	base := t.TempDir()
	full := strings.Repeat("ab", 20)
	for _, dir := range []string{full, "v1_" + full, "v1_notahash"} {
		if err := os.MkdirAll(filepath.Join(base, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	tests := []struct {
		rev     string
		version string
		commit  string
		ok      bool
	}{
		{rev: full, version: full, commit: full, ok: true},
		{rev: "v1", version: "v1@" + full, commit: full, ok: true},
		{rev: "v2", ok: false},
	}
	for _, tt := range tests {
		version, commit, ok := cachedRevCheckout(base, tt.rev)
		if version != tt.version || commit != tt.commit || ok != tt.ok {
			t.Fatalf("cachedRevCheckout(%q) = %q, %q, %v", tt.rev, version, commit, ok)
		}
	}
}

func TestFetchUnpinnedTargetUsesHead(t *testing.T) {
	root := t.TempDir()
	repo, rev := writeRemoteProgram(t, root)

	app := filepath.Join(root, "app")
	writeFile(t, filepath.Join(app, "lolcode.yml"), `
name: app
targets:
  local: main.lol
  remote:
    git: `+repo+`
    main: programs/hello.lol
`)
	writeFile(t, filepath.Join(app, "main.lol"), "HAI\nVISIBLE \"local\"\nKTHXBYE")
	t.Setenv(cacheEnvVar, "")
	chdir(t, app)

	code, _, stderr := captureCLI(t, []string{"fetch"})
	if code != 0 {
		t.Fatalf("fetch exit %d (stderr=%q)", code, stderr)
	}
	lock, err := driver.LoadLockfile(filepath.Join(app, driver.LockfileName))
	if err != nil {
		t.Fatalf("LoadLockfile: %v", err)
	}
	if len(lock.Targets) != 1 {
		t.Fatalf("only git targets are locked, got %#v", lock.Targets)
	}
	locked := lock.Targets[0]
	if locked.Commit != rev || locked.Path != ".lolcode/cache/remote/HEAD_"+rev {
		t.Fatalf("unexpected locked target %+v", locked)
	}
	if _, err := os.Stat(filepath.Join(app, ".lolcode", "cache", "remote", "HEAD_"+rev, "programs", "hello.lol")); err != nil {
		t.Fatalf("expected checkout in project cache: %v", err)
	}

	code, stdout, _ := captureCLI(t, []string{"run", "remote"})
	if code != 0 || stdout != "from git\n" {
		t.Fatalf("run remote: code=%d stdout=%q", code, stdout)
	}
	code, stdout, _ = captureCLI(t, []string{"run"})
	if code != 0 || stdout != "local\n" {
		t.Fatalf("default target: code=%d stdout=%q", code, stdout)
	}
}

func TestFetchRejectsLocalTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lolcode.yml"), `
name: app
targets:
  local: main.lol
`)
	chdir(t, dir)

	code, stdout, _ := captureCLI(t, []string{"fetch"})
	if code != 0 || !strings.Contains(stdout, "no git targets declared") {
		t.Fatalf("code=%d stdout=%q", code, stdout)
	}
	code, _, stderr := captureCLI(t, []string{"fetch", "local"})
	if code != 1 || !strings.Contains(stderr, `target "local" has no git source`) {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	code, _, stderr = captureCLI(t, []string{"fetch", "nope"})
	if code != 1 || !strings.Contains(stderr, `unknown target "nope"`) {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
}

func TestGitRevisionFromSpec(t *testing.T) {
	tests := []struct {
		spec       driver.SourceSpec
		revision   plumbing.Revision
		descriptor string
	}{
		{driver.SourceSpec{Git: "x", Rev: "abc"}, "abc", "abc"},
		{driver.SourceSpec{Git: "x", Tag: "v1"}, "refs/tags/v1", "v1"},
		{driver.SourceSpec{Git: "x", Branch: "main"}, "refs/remotes/origin/main", "main"},
		{driver.SourceSpec{Git: "x"}, "HEAD", "HEAD"},
	}
	for _, tt := range tests {
		spec := tt.spec
		revision, descriptor := gitRevisionFromSpec(&spec)
		if revision != tt.revision || descriptor != tt.descriptor {
			t.Fatalf("gitRevisionFromSpec(%+v) = %q, %q", tt.spec, revision, descriptor)
		}
	}
	if got := gitPinnedVersion("main", "abc"); got != "main@abc" {
		t.Fatalf("gitPinnedVersion = %q", got)
	}
	if got := sanitizePathSegment("main@abc/def"); got != "main_abc_def" {
		t.Fatalf("sanitizePathSegment = %q", got)
	}
}

func TestLockRelativePath(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "app")
	inside := filepath.Join(base, ".lolcode", "cache", "x")
	if got := lockRelativePath(base, inside); got != ".lolcode/cache/x" {
		t.Fatalf("inside = %q", got)
	}
	outside := filepath.Join(string(filepath.Separator), "work", "cache", "x")
	if got := lockRelativePath(base, outside); got != outside {
		t.Fatalf("outside = %q", got)
	}
}
