package domain

import (
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/patrickmn/go-cache"
	"routefinder.dev/pkg/routefinder/internal/adapter"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

const (
	primaryCacheKey = "manifest:primary"
	indexedCacheKey = "manifest:indexed"

	// DefaultManifestFileName is the file generated by auto_route.
	DefaultManifestFileName = "routes.gr.dart"
	// DefaultManifestPath is the conventional manifest location, relative to the project root.
	DefaultManifestPath = "lib/routes.gr.dart"
	// DefaultMaxManifests bounds the indexing scan.
	DefaultMaxManifests = 50
)

// DefaultManifestAlternates are probed, in order, after DefaultManifestPath.
var DefaultManifestAlternates = []string{
	"routes.gr.dart",
	"lib/generated/routes.gr.dart",
	"lib/app/routes.gr.dart",
}

// DefaultManifestExclude keeps dependency, build and VCS trees out of the index.
var DefaultManifestExclude = []string{
	"**/node_modules/**",
	"**/.dart_tool/**",
	"**/build/**",
	"**/.git/**",
}

// LocatorConfig configures where manifests are searched for.
type LocatorConfig struct {
	FileName    string
	DefaultPath string
	Alternates  []string
	Exclude     []string
	MaxResults  int
}

// DefaultLocatorConfig returns the auto_route conventions.
func DefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		FileName:    DefaultManifestFileName,
		DefaultPath: DefaultManifestPath,
		Alternates:  slices.Clone(DefaultManifestAlternates),
		Exclude:     slices.Clone(DefaultManifestExclude),
		MaxResults:  DefaultMaxManifests,
	}
}

// Locator discovers the generated routing manifest(s) of a project and caches
// their paths until the cached file disappears or Refresh is called.
type Locator interface {
	// ProjectRoot returns the first configured project root.
	ProjectRoot() (m.Path, bool)
	// IndexManifests searches the project tree and replaces the candidate set.
	IndexManifests() []m.Path
	// IndexedManifests returns the current candidate set without scanning.
	IndexedManifests() []m.Path
	// FindManifestPath returns the primary manifest path.
	FindManifestPath() (m.Path, bool)
	// LocateManifests re-indexes the project and returns the candidate set,
	// or the primary manifest alone when indexing finds nothing.
	LocateManifests() []m.Path
	// Candidates returns the manifests a resolver should scan, in order,
	// without searching the tree: the indexed set, else the primary manifest.
	Candidates() []m.Path
	// Refresh drops the primary cache and re-indexes.
	Refresh() []m.Path
}

type locator struct {
	workspace adapter.Workspace
	fsAdapter adapter.SourceFSAdapter
	config    LocatorConfig
	cache     *cache.Cache
}

// NewLocator constructs a Locator over the given workspace and filesystem.
func NewLocator(workspace adapter.Workspace, fsAdapter adapter.SourceFSAdapter, config LocatorConfig) Locator {
	if config.FileName == "" {
		config.FileName = DefaultManifestFileName
	}

	if config.DefaultPath == "" {
		config.DefaultPath = DefaultManifestPath
	}

	return &locator{
		workspace: workspace,
		fsAdapter: fsAdapter,
		config:    config,
		cache:     cache.New(cache.NoExpiration, 0),
	}
}

func (l *locator) ProjectRoot() (m.Path, bool) {
	if l.workspace == nil {
		return "", false
	}

	folders := l.workspace.Folders()
	if len(folders) == 0 || folders[0] == "" {
		return "", false
	}

	return folders[0], true
}

func (l *locator) IndexManifests() []m.Path {
	l.cache.Delete(primaryCacheKey)

	root, ok := l.ProjectRoot()
	if !ok {
		l.cache.Delete(indexedCacheKey)
		slog.Debug("manifest index skipped", "reason", ErrNoProjectRoot)

		return nil
	}

	found, err := l.fsAdapter.ListFilesMatching(root, "**/"+l.config.FileName, l.config.Exclude, l.config.MaxResults)
	if err != nil {
		l.cache.Delete(indexedCacheKey)
		slog.Warn("manifest index failed", "root", root, "reason", ErrScanFailure, "error", err)

		return nil
	}

	found = l.withConventional(root, found)
	l.sortCandidates(root, found)

	if limit := l.config.MaxResults; limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	l.cache.Set(indexedCacheKey, found, cache.NoExpiration)
	slog.Debug("indexed manifests", "root", root, "count", len(found))

	return slices.Clone(found)
}

func (l *locator) IndexedManifests() []m.Path {
	if cached, ok := l.cache.Get(indexedCacheKey); ok {
		return slices.Clone(cached.([]m.Path))
	}

	return nil
}

func (l *locator) FindManifestPath() (m.Path, bool) {
	if cached, ok := l.cache.Get(primaryCacheKey); ok {
		path := cached.(m.Path)
		if l.fsAdapter.Exists(path) {
			return path, true
		}

		l.cache.Delete(primaryCacheKey)
		slog.Debug("cached manifest vanished", "path", path)
	}

	root, ok := l.ProjectRoot()
	if !ok {
		return "", false
	}

	if indexed := l.IndexedManifests(); len(indexed) > 0 {
		l.cache.Set(primaryCacheKey, indexed[0], cache.NoExpiration)
		return indexed[0], true
	}

	for _, rel := range l.conventionalPaths() {
		candidate := l.fsAdapter.JoinPath(string(root), filepath.FromSlash(rel))
		if l.fsAdapter.Exists(candidate) {
			l.cache.Set(primaryCacheKey, candidate, cache.NoExpiration)
			return candidate, true
		}
	}

	slog.Debug("manifest lookup failed", "root", root, "reason", ErrManifestNotFound)

	return "", false
}

func (l *locator) LocateManifests() []m.Path {
	if indexed := l.IndexManifests(); len(indexed) > 0 {
		return indexed
	}

	if path, ok := l.FindManifestPath(); ok {
		return []m.Path{path}
	}

	return nil
}

func (l *locator) Candidates() []m.Path {
	if indexed := l.IndexedManifests(); len(indexed) > 0 {
		return indexed
	}

	if path, ok := l.FindManifestPath(); ok {
		return []m.Path{path}
	}

	return nil
}

func (l *locator) Refresh() []m.Path {
	return l.IndexManifests()
}

func (l *locator) conventionalPaths() []string {
	paths := make([]string, 0, len(l.config.Alternates)+1)
	paths = append(paths, l.config.DefaultPath)

	for _, alt := range l.config.Alternates {
		if alt != "" && !slices.Contains(paths, alt) {
			paths = append(paths, alt)
		}
	}

	return paths
}

// withConventional adds the existing conventional manifests the capped walk
// may have cut off.
func (l *locator) withConventional(root m.Path, found []m.Path) []m.Path {
	for _, rel := range l.conventionalPaths() {
		candidate := l.fsAdapter.JoinPath(string(root), filepath.FromSlash(rel))
		if !slices.Contains(found, candidate) && l.fsAdapter.Exists(candidate) {
			found = append(found, candidate)
		}
	}

	return found
}

// sortCandidates orders indexed manifests: conventional locations first, in
// their priority order, then shallower paths, then lexical order.
func (l *locator) sortCandidates(root m.Path, found []m.Path) {
	conventional := l.conventionalPaths()

	rank := func(p m.Path) (int, int, string) {
		rel, err := l.fsAdapter.RelPath(root, p)
		if err != nil {
			return len(conventional), strings.Count(string(p), string(filepath.Separator)), string(p)
		}

		slashed := filepath.ToSlash(string(rel))
		if i := slices.Index(conventional, slashed); i >= 0 {
			return i, 0, slashed
		}

		return len(conventional), strings.Count(slashed, "/"), slashed
	}

	slices.SortStableFunc(found, func(a, b m.Path) int {
		ra, da, sa := rank(a)
		rb, db, sb := rank(b)

		switch {
		case ra != rb:
			return ra - rb
		case da != db:
			return da - db
		default:
			return strings.Compare(sa, sb)
		}
	})
}
