package domain

import (
	"regexp"

	m "routefinder.dev/pkg/routefinder/internal/model"
)

var routeTokenPattern = regexp.MustCompile(`\b\w+\b`)

// RouteTokens returns every route identifier in text, in textual order, with
// the widget name it refers to under naming.
func RouteTokens(text string, naming Naming) []m.RouteToken {
	var tokens []m.RouteToken

	lines := newLineIndex(text)

	for _, loc := range routeTokenPattern.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		if !naming.IsRoute(word) {
			continue
		}

		tokens = append(tokens, m.RouteToken{
			Route:    word,
			Widget:   naming.WidgetForRoute(word),
			Position: lines.position(loc[0]),
		})
	}

	return tokens
}
