package domain

import (
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// LensProvider turns route tokens in a document into jump shortcuts.
type LensProvider interface {
	// Lenses returns one lens per route token in text whose widget resolves.
	Lenses(document m.Path, text string) []m.Lens
}

type lensProvider struct {
	resolver Resolver
	naming   Naming
}

// NewLensProvider constructs a LensProvider backed by resolver.
func NewLensProvider(resolver Resolver, naming Naming) LensProvider {
	return &lensProvider{
		resolver: resolver,
		naming:   naming,
	}
}

func (p *lensProvider) Lenses(document m.Path, text string) []m.Lens {
	tokens := RouteTokens(text, p.naming)
	if len(tokens) == 0 {
		return nil
	}

	type outcome struct {
		path m.Path
		ok   bool
	}

	// Memoised for this document only; the next call sees fresh manifests.
	seen := make(map[string]outcome, len(tokens))

	var lenses []m.Lens

	for _, token := range tokens {
		res, cached := seen[token.Widget]
		if !cached {
			res.path, res.ok = p.resolver.ResolveEntityPath(token.Widget)
			seen[token.Widget] = res
		}

		if !res.ok {
			continue
		}

		lenses = append(lenses, m.Lens{
			Route:    token.Route,
			Widget:   token.Widget,
			Document: document,
			Position: token.Position,
			Target:   res.path,
		})
	}

	return lenses
}
