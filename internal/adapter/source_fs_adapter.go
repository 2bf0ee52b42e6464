// Package adapter contains infrastructure adapters for the route finder.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// projectMarker is the file that marks the root of a Dart/Flutter package.
const projectMarker = "pubspec.yaml"

// excludeProbe is appended to directory paths so that patterns such as
// `**/build/**` can be tested against a directory before descending into it.
const excludeProbe = "_"

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It intentionally hides direct `os`
// access so the locator and resolver can be tested without touching the disk.
type SourceFSAdapter interface {
	// Exists reports whether path names an existing non-directory entry.
	Exists(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ListFilesMatching walks root and returns files whose root-relative,
	// slash-separated path matches pattern and none of exclude. At most
	// maxResults paths are returned when maxResults is positive.
	ListFilesMatching(root m.Path, pattern string, exclude []string, maxResults int) ([]m.Path, error)

	// ListDirs returns root followed by every directory below it that is not
	// excluded, in lexical order.
	ListDirs(root m.Path, exclude []string) ([]m.Path, error)

	// FindProjectRoot searches for the enclosing project directory of startPath.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the locator.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Exists reports whether path is present on disk and is not a directory.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - manifest paths come from the project scan
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ListFilesMatching walks root in lexical order collecting files that match
// the doublestar pattern. Excluded directories are not descended into.
func (a *LocalSourceFSAdapter) ListFilesMatching(root m.Path, pattern string, exclude []string, maxResults int) ([]m.Path, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	for _, ex := range exclude {
		if !doublestar.ValidatePattern(ex) {
			return nil, fmt.Errorf("invalid exclude pattern %q", ex)
		}
	}

	rootStr := string(root)

	var matches []m.Path

	err := filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return nil
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matchesAny(exclude, rel+"/"+excludeProbe) {
				return filepath.SkipDir
			}

			return nil
		}

		if matchesAny(exclude, rel) || !doublestar.MatchUnvalidated(pattern, rel) {
			return nil
		}

		matches = append(matches, m.Path(path))
		if maxResults > 0 && len(matches) >= maxResults {
			return filepath.SkipAll
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", rootStr, err)
	}

	return matches, nil
}

// ListDirs walks root collecting directories. Excluded directories and their
// subtrees are skipped.
func (a *LocalSourceFSAdapter) ListDirs(root m.Path, exclude []string) ([]m.Path, error) {
	rootStr := string(root)

	var dirs []m.Path

	err := filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != rootStr && DirExcluded(root, m.Path(path), exclude) {
			return filepath.SkipDir
		}

		dirs = append(dirs, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list directories of %s: %w", rootStr, err)
	}

	return dirs, nil
}

// DirExcluded reports whether dir, taken relative to root, falls under one of
// the exclude patterns. Directories outside root are never excluded.
func DirExcluded(root, dir m.Path, exclude []string) bool {
	rel, err := filepath.Rel(string(root), string(dir))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	return matchesAny(exclude, filepath.ToSlash(rel)+"/"+excludeProbe)
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}

	return false
}

// FindProjectRoot walks up from startPath looking for pubspec.yaml. When no
// package marker exists it falls back to the enclosing git worktree.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	start, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startPath, err)
	}

	dir := start
	if info, err := os.Stat(start); err == nil && !info.IsDir() {
		dir = filepath.Dir(start)
	}

	for current := dir; ; {
		if _, err := os.Stat(filepath.Join(current, projectMarker)); err == nil {
			return m.Path(current), nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}

		current = parent
	}

	root, err := gitWorktreeRoot(dir)
	if err != nil {
		return "", fmt.Errorf("%s not found in any parent directory of %s: %w", projectMarker, startPath, err)
	}

	return root, nil
}

func gitWorktreeRoot(dir string) (m.Path, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	root := worktree.Filesystem.Root()
	if root == "" {
		return "", errors.New("git worktree has no root")
	}

	return m.Path(root), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
