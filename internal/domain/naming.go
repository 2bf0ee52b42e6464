package domain

import (
	"slices"
	"strings"
)

// Naming captures the route/widget naming convention of the generated router
// (auto_route's replaceInRouteName setting).
type Naming struct {
	// RouteSuffix ends every route identifier, e.g. "Route".
	RouteSuffix string
	// WidgetSuffix replaces RouteSuffix to form the widget name, e.g. "Screen".
	WidgetSuffix string
	// StripSuffixes are removed from widget names by the fallback heuristics.
	StripSuffixes []string
	// IgnoreRoutes are identifiers that look like routes but are router types.
	IgnoreRoutes []string
}

// frameworkRoutes are auto_route types that end in "Route" but never name a page.
var frameworkRoutes = []string{
	"AutoRoute",
	"CustomRoute",
	"MaterialRoute",
	"CupertinoRoute",
	"AdaptiveRoute",
	"RedirectRoute",
	"PageRoute",
}

// DefaultNaming returns the Route -> Screen convention.
func DefaultNaming() Naming {
	return Naming{
		RouteSuffix:   "Route",
		WidgetSuffix:  "Screen",
		StripSuffixes: []string{"Screen", "Page"},
	}
}

// NormalizeEntityName converts a camel or Pascal case identifier into its
// lowercase underscore-separated form: "ProfileDetailScreen" becomes
// "profile_detail_screen". Every ASCII capital starts a new word; a single
// leading underscore is dropped.
func NormalizeEntityName(name string) string {
	var b strings.Builder

	b.Grow(len(name) + len(name)/4)

	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}

		b.WriteRune(r)
	}

	return strings.TrimPrefix(strings.ToLower(b.String()), "_")
}

// IsRoute reports whether token is a page route identifier under this convention.
func (n Naming) IsRoute(token string) bool {
	if n.RouteSuffix == "" || len(token) <= len(n.RouteSuffix) || !strings.HasSuffix(token, n.RouteSuffix) {
		return false
	}

	return !slices.Contains(frameworkRoutes, token) && !slices.Contains(n.IgnoreRoutes, token)
}

// WidgetForRoute maps a route identifier to its widget name: HomeRoute -> HomeScreen.
// Names that do not carry the route suffix are returned unchanged.
func (n Naming) WidgetForRoute(route string) string {
	if n.RouteSuffix == "" || !strings.HasSuffix(route, n.RouteSuffix) {
		return route
	}

	return strings.TrimSuffix(route, n.RouteSuffix) + n.WidgetSuffix
}

// StripWidgetSuffix removes the first matching strip suffix from name.
func (n Naming) StripWidgetSuffix(name string) string {
	for _, suffix := range n.StripSuffixes {
		if suffix != "" && len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}

	return name
}
