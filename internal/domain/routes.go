package domain

import (
	"errors"
	"fmt"

	"routefinder.dev/pkg/routefinder/internal/adapter"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// ManifestRoutes reads each manifest and returns the routes they declare,
// first declaration winning across manifests. Unreadable manifests are
// skipped; an error is returned only when none could be read.
func ManifestRoutes(fsAdapter adapter.SourceFSAdapter, manifests []m.Path, naming Naming) ([]m.RouteDeclaration, error) {
	if len(manifests) == 0 {
		return nil, ErrManifestNotFound
	}

	var (
		routes []m.RouteDeclaration
		errs   []error
	)

	seen := make(map[string]struct{})
	read := 0

	for _, manifest := range manifests {
		data, err := fsAdapter.ReadFile(manifest)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrManifestUnreadable, manifest, err))
			continue
		}

		read++

		for _, route := range ExtractRoutes(string(data), naming) {
			if _, ok := seen[route.Route]; ok {
				continue
			}

			seen[route.Route] = struct{}{}
			routes = append(routes, route)
		}
	}

	if read == 0 {
		return nil, errors.Join(errs...)
	}

	return routes, nil
}

// ResolveRoutes resolves the widget of every route, keeping misses with
// their reason.
func ResolveRoutes(resolver Resolver, routes []m.RouteDeclaration) []m.Resolution {
	resolutions := make([]m.Resolution, 0, len(routes))

	for _, route := range routes {
		res := m.Resolution{Entity: route.Widget, Route: route.Route}

		path, err := resolver.Diagnose(route.Widget)
		if err != nil {
			res.Reason = err.Error()
		} else {
			res.Path = path
			res.Found = true
		}

		resolutions = append(resolutions, res)
	}

	return resolutions
}
