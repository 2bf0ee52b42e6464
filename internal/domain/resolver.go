package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"routefinder.dev/pkg/routefinder/internal/adapter"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// Resolver maps entity names such as "HomeScreen" to the file that defines
// them by scanning manifest import declarations. It keeps no state between
// calls: every lookup reads the current manifest content.
type Resolver interface {
	// ResolveEntityPath returns the path of the file defining entity. Every
	// failure collapses to ("", false).
	ResolveEntityPath(entity string) (m.Path, bool)
	// ResolveInManifest resolves entity against manifest content supplied by
	// the caller, without consulting the locator.
	ResolveInManifest(root, manifest m.Path, content string, entity string) (m.Path, bool)
	// Diagnose behaves like ResolveEntityPath but reports why a lookup missed.
	Diagnose(entity string) (m.Path, error)
}

// ResolverOption customises a Resolver.
type ResolverOption func(*resolver)

// WithFallbackHeuristics enables the secondary name-similarity passes that
// run only when no import contains the normalized entity name.
func WithFallbackHeuristics(enabled bool) ResolverOption {
	return func(r *resolver) {
		r.fallback = enabled
	}
}

// WithNaming sets the naming convention used by the fallback passes.
func WithNaming(naming Naming) ResolverOption {
	return func(r *resolver) {
		r.naming = naming
	}
}

type resolver struct {
	locator   Locator
	fsAdapter adapter.SourceFSAdapter
	naming    Naming
	fallback  bool
}

// NewResolver constructs a Resolver that obtains manifests from locator.
func NewResolver(locator Locator, fsAdapter adapter.SourceFSAdapter, opts ...ResolverOption) Resolver {
	r := &resolver{
		locator:   locator,
		fsAdapter: fsAdapter,
		naming:    DefaultNaming(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *resolver) ResolveEntityPath(entity string) (m.Path, bool) {
	path, err := r.Diagnose(entity)
	if err != nil {
		slog.Debug("entity not resolved", "entity", entity, "reason", err)
		return "", false
	}

	return path, true
}

func (r *resolver) Diagnose(entity string) (m.Path, error) {
	if entity == "" {
		return "", fmt.Errorf("%w: empty entity name", ErrNoMatch)
	}

	root, ok := r.locator.ProjectRoot()
	if !ok {
		return "", ErrNoProjectRoot
	}

	manifests := r.locator.Candidates()
	if len(manifests) == 0 {
		return "", ErrManifestNotFound
	}

	src := &manifestSource{fsAdapter: r.fsAdapter, paths: manifests}

	if path, ok := r.scan(root, src, entity); ok {
		return path, nil
	}

	if src.readable() == 0 && len(src.errs) > 0 {
		return "", errors.Join(src.errs...)
	}

	return "", fmt.Errorf("%w for %q in %d manifest(s)", ErrNoMatch, entity, src.readable())
}

func (r *resolver) ResolveInManifest(root, manifest m.Path, content string, entity string) (m.Path, bool) {
	if root == "" {
		return "", false
	}

	src := &manifestSource{
		paths:  []m.Path{manifest},
		loaded: []*manifestContent{{path: manifest, imports: ExtractImports(content)}},
	}

	return r.scan(root, src, entity)
}

type manifestContent struct {
	path    m.Path
	imports []m.ImportDeclaration
}

// manifestSource reads manifests on first use so that a match in an early
// manifest leaves later ones untouched. Unreadable manifests are skipped.
type manifestSource struct {
	fsAdapter adapter.SourceFSAdapter
	paths     []m.Path
	loaded    []*manifestContent
	errs      []error
}

// get returns the i-th manifest, or nil when it could not be read.
func (s *manifestSource) get(i int) *manifestContent {
	if i < len(s.loaded) {
		return s.loaded[i]
	}

	path := s.paths[i]

	var content *manifestContent

	data, err := s.fsAdapter.ReadFile(path)
	if err != nil {
		slog.Warn("skipping unreadable manifest", "path", path, "error", err)
		s.errs = append(s.errs, fmt.Errorf("%w: %s: %w", ErrManifestUnreadable, path, err))
	} else {
		content = &manifestContent{path: path, imports: ExtractImports(string(data))}
	}

	s.loaded = append(s.loaded, content)

	return content
}

func (s *manifestSource) readable() int {
	n := 0

	for _, content := range s.loaded {
		if content != nil {
			n++
		}
	}

	return n
}

// importMatcher decides whether an import declaration may define entity.
type importMatcher func(decl m.ImportDeclaration) bool

// scan runs the primary pass over the manifests in order, then each fallback
// pass. The first import whose derived path exists wins.
func (r *resolver) scan(root m.Path, src *manifestSource, entity string) (m.Path, bool) {
	if entity == "" {
		return "", false
	}

	for _, match := range r.passes(entity) {
		for i := range src.paths {
			manifest := src.get(i)
			if manifest == nil {
				continue
			}

			if path, ok := r.firstExisting(root, manifest, match); ok {
				return path, true
			}
		}
	}

	return "", false
}

func (r *resolver) passes(entity string) []importMatcher {
	key := NormalizeEntityName(entity)
	passes := []importMatcher{
		func(decl m.ImportDeclaration) bool {
			return strings.Contains(decl.Specifier, key)
		},
	}

	if !r.fallback {
		return passes
	}

	stripped := NormalizeEntityName(r.naming.StripWidgetSuffix(entity))
	lower := strings.ToLower(entity)

	passes = append(passes,
		func(decl m.ImportDeclaration) bool {
			return decl.Entity == entity
		},
		func(decl m.ImportDeclaration) bool {
			return stripped != "" && strings.Contains(specifierBase(decl.Specifier), stripped)
		},
		func(decl m.ImportDeclaration) bool {
			return strings.Contains(strings.ToLower(specifierBase(decl.Specifier)), lower)
		},
	)

	return passes
}

func (r *resolver) firstExisting(root m.Path, manifest *manifestContent, match importMatcher) (m.Path, bool) {
	manifestDir := m.Path(filepath.Dir(string(manifest.path)))

	for _, decl := range manifest.imports {
		if !match(decl) {
			continue
		}

		candidate, ok := DerivePath(root, manifestDir, decl.Specifier)
		if !ok {
			slog.Debug("skipping unclassified import", "manifest", manifest.path, "specifier", decl.Specifier)
			continue
		}

		if r.fsAdapter.Exists(candidate) {
			return candidate, true
		}

		slog.Debug("matched import has no file", "specifier", decl.Specifier, "path", candidate)
	}

	return "", false
}
