package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/CharlesTabuzo/LOLCODE-interpreter/pkg/driver"
)

const cacheEnvVar = "LOLCODE_CACHE"

func runFetch(args []string) int {
	manifest, err := loadManifestFrom(".")
	if err != nil {
		if errors.Is(err, errManifestNotFound) {
			fmt.Fprintf(os.Stderr, "lolcode fetch requires a manifest (%v)\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		return 1
	}

	targets, err := selectRemoteTargets(manifest, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lolcode fetch: %v\n", err)
		return 1
	}
	if len(targets) == 0 {
		fmt.Fprintln(os.Stdout, "lolcode fetch: no git targets declared")
		return 0
	}

	lock, err := loadLockfileForManifest(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if lock == nil {
		lock = driver.NewLockfile(manifest.Name, cliToolVersion)
	}

	cacheDir, err := resolveCacheDir(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lolcode fetch: %v\n", err)
		return 1
	}
	fetcher := newGitFetcher(cacheDir)
	for _, target := range targets {
		locked, err := fetcher.Fetch(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lolcode fetch: target %q: %v\n", target.OriginalName, err)
			return 1
		}
		locked.Path = lockRelativePath(manifest.Dir(), locked.Path)
		lock.Upsert(locked)
		fmt.Fprintf(os.Stdout, "fetched %s at %s\n", target.OriginalName, locked.Commit)
	}

	lock.Tool = cliToolVersion
	lock.Generated = ""
	if err := driver.WriteLockfile(lock, lockfilePath(manifest)); err != nil {
		fmt.Fprintf(os.Stderr, "lolcode fetch: %v\n", err)
		return 1
	}
	return 0
}

// selectRemoteTargets returns every git-hosted target when names is empty.
func selectRemoteTargets(manifest *driver.Manifest, names []string) ([]*driver.TargetSpec, error) {
	var out []*driver.TargetSpec
	if len(names) == 0 {
		for _, name := range manifest.TargetOrder {
			if target := manifest.Targets[name]; target.IsRemote() {
				out = append(out, target)
			}
		}
		return out, nil
	}
	for _, name := range names {
		target, ok := manifest.FindTarget(name)
		if !ok {
			return nil, fmt.Errorf("unknown target %q", name)
		}
		if !target.IsRemote() {
			return nil, fmt.Errorf("target %q has no git source", target.OriginalName)
		}
		out = append(out, target)
	}
	return out, nil
}

func resolveCacheDir(manifest *driver.Manifest) (string, error) {
	if dir := strings.TrimSpace(os.Getenv(cacheEnvVar)); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("resolve %s %q: %w", cacheEnvVar, dir, err)
		}
		return abs, nil
	}
	return filepath.Join(manifest.Dir(), ".lolcode", "cache"), nil
}

// lockRelativePath records checkouts inside the project relative to it so the
// lockfile survives the project being moved.
func lockRelativePath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

type gitFetcher struct {
	cacheDir string
}

func newGitFetcher(cacheDir string) *gitFetcher {
	if cacheDir == "" {
		return nil
	}
	return &gitFetcher{cacheDir: cacheDir}
}

func (g *gitFetcher) Fetch(target *driver.TargetSpec) (*driver.LockedTarget, error) {
	if g == nil {
		return nil, errors.New("git fetcher unavailable")
	}
	if !target.IsRemote() {
		return nil, fmt.Errorf("target %q: git URL required", target.OriginalName)
	}
	url := target.Source.Git

	baseDir := filepath.Join(g.cacheDir, sanitizePathSegment(target.Name))
	version, commit, err := ensureGitCheckout(baseDir, url, target.Source)
	if err != nil {
		return nil, err
	}
	return &driver.LockedTarget{
		Name:   target.Name,
		Source: fmt.Sprintf("git+%s@%s", url, commit),
		Commit: commit,
		Path:   filepath.Join(baseDir, sanitizePathSegment(version)),
	}, nil
}

// ensureGitCheckout clones url into a scratch directory, resolves the pinned
// revision and moves the checkout to baseDir/<version>. An existing checkout
// for the same version is reused.
func ensureGitCheckout(baseDir, url string, spec *driver.SourceSpec) (string, string, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", "", err
	}

	revision, descriptor := gitRevisionFromSpec(spec)

	if rev := strings.TrimSpace(spec.Rev); rev != "" {
		if version, commit, ok := cachedRevCheckout(baseDir, rev); ok {
			return version, commit, nil
		}
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return "", "", err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", "", err
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:               url,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("git clone %s: %w", url, err)
	}

	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("resolve revision %s: %w", revision, err)
	}

	version := gitPinnedVersion(descriptor, hash.String())
	targetDir := filepath.Join(baseDir, sanitizePathSegment(version))
	if _, err := os.Stat(targetDir); err == nil {
		_ = os.RemoveAll(tmpDir)
		return version, hash.String(), nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{
		Hash:  *hash,
		Force: true,
	}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", err
	}
	return version, hash.String(), nil
}

// cachedRevCheckout finds a checkout of rev under baseDir. A full commit hash
// is stored under its own name; anything else under gitPinnedVersion's
// "<rev>@<commit>" form.
func cachedRevCheckout(baseDir, rev string) (string, string, bool) {
	if isCommitHash(rev) {
		if info, err := os.Stat(filepath.Join(baseDir, sanitizePathSegment(rev))); err == nil && info.IsDir() {
			return rev, rev, true
		}
	}
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return "", "", false
	}
	prefix := sanitizePathSegment(rev + "@")
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		commit := strings.TrimPrefix(entry.Name(), prefix)
		if !isCommitHash(commit) {
			continue
		}
		return gitPinnedVersion(rev, commit), commit, true
	}
	return "", "", false
}

func isCommitHash(s string) bool {
	if len(s) != 40 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

func gitPinnedVersion(descriptor, commit string) string {
	commit = strings.TrimSpace(commit)
	descriptor = strings.TrimSpace(descriptor)
	if commit == "" {
		return descriptor
	}
	if descriptor == "" || descriptor == commit {
		return commit
	}
	return fmt.Sprintf("%s@%s", descriptor, commit)
}

// gitRevisionFromSpec falls back to the remote HEAD when nothing is pinned.
func gitRevisionFromSpec(spec *driver.SourceSpec) (plumbing.Revision, string) {
	if rev := strings.TrimSpace(spec.Rev); rev != "" {
		return plumbing.Revision(rev), rev
	}
	if tag := strings.TrimSpace(spec.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), tag
	}
	if branch := strings.TrimSpace(spec.Branch); branch != "" {
		return plumbing.Revision("refs/remotes/origin/" + branch), branch
	}
	return plumbing.Revision("HEAD"), "HEAD"
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	var b strings.Builder
	for _, r := range segment {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
