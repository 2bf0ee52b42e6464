package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	m "routefinder.dev/pkg/routefinder/internal/model"
)

const (
	sourceExtension = ".dart"
	packageScheme   = "package:"
)

// importPattern is the single grammar for import declarations: a quoted
// specifier ending in .dart, an optional `as` alias, anything up to the
// terminating semicolon or comment, and an optional trailing comment whose last word
// names the imported entity.
var importPattern = regexp.MustCompile(
	`(?m)\bimport\s+['"]([^'"\n]*\.dart)['"]` +
		`(?:\s+(?:deferred\s+)?as\s+(\w+))?` +
		`[^;\n/]*;?` +
		`(?:[ \t]*//[^\n]*?(\w+)[ \t\r]*$)?`,
)

// packagePattern splits package:name/rest into its library-relative part.
var packagePattern = regexp.MustCompile(`^package:[^/]+/(.+)$`)

// schemePattern detects URI schemes such as dart: or file:.
var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// routePattern matches route declarations in both generated styles:
// `HomeRoute = AutoRoute<HomeScreen>` and `class HomeRoute extends PageRouteInfo`.
var routePattern = regexp.MustCompile(
	`\b(\w+Route)\s*=\s*\w*Route<(\w+)>` +
		`|\bclass\s+(\w+)\s+extends\s+(?:\w+\.)?PageRouteInfo\b`,
)

// ExtractImports returns every import declaration in content, in textual order.
func ExtractImports(content string) []m.ImportDeclaration {
	matches := importPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	imports := make([]m.ImportDeclaration, 0, len(matches))
	lines := newLineIndex(content)

	for _, match := range matches {
		imports = append(imports, m.ImportDeclaration{
			Specifier: content[match[2]:match[3]],
			Alias:     submatch(content, match, 2),
			Entity:    submatch(content, match, 3),
			Line:      lines.position(match[0]).Line,
		})
	}

	return imports
}

// ExtractRoutes returns the route declarations of a generated manifest. When
// the declaration does not name its widget, the naming convention supplies it.
// Duplicates keep their first occurrence.
func ExtractRoutes(content string, naming Naming) []m.RouteDeclaration {
	var routes []m.RouteDeclaration

	seen := make(map[string]struct{})
	lines := newLineIndex(content)

	for _, match := range routePattern.FindAllStringSubmatchIndex(content, -1) {
		route := submatch(content, match, 1)
		widget := submatch(content, match, 2)

		if route == "" {
			route = submatch(content, match, 3)
			widget = naming.WidgetForRoute(route)
		}

		if _, ok := seen[route]; ok || !naming.IsRoute(route) {
			continue
		}

		seen[route] = struct{}{}
		routes = append(routes, m.RouteDeclaration{
			Route:  route,
			Widget: widget,
			Line:   lines.position(match[0]).Line,
		})
	}

	return routes
}

// ClassifySpecifier reports which import syntax spec uses.
func ClassifySpecifier(spec string) m.SpecifierKind {
	switch {
	case strings.HasPrefix(spec, packageScheme):
		if packagePattern.MatchString(spec) {
			return m.SpecifierPackage
		}

		return m.SpecifierUnknown
	case strings.HasPrefix(spec, "./"), strings.HasPrefix(spec, "../"):
		return m.SpecifierRelative
	case strings.HasPrefix(spec, "lib/"):
		return m.SpecifierLib
	case filepath.IsAbs(spec), strings.HasPrefix(spec, "/"):
		return m.SpecifierAbsolute
	case schemePattern.MatchString(spec), spec == "":
		return m.SpecifierUnknown
	default:
		return m.SpecifierBare
	}
}

// DerivePath maps an import specifier to a file system path under root.
// Relative specifiers are resolved against manifestDir. It returns false for
// specifiers that cannot be classified.
func DerivePath(root, manifestDir m.Path, spec string) (m.Path, bool) {
	switch ClassifySpecifier(spec) {
	case m.SpecifierPackage:
		rest := packagePattern.FindStringSubmatch(spec)[1]
		return m.Path(filepath.Join(string(root), "lib", filepath.FromSlash(rest))), true
	case m.SpecifierRelative:
		return m.Path(filepath.Join(string(manifestDir), filepath.FromSlash(spec))), true
	case m.SpecifierLib:
		return m.Path(filepath.Join(string(root), filepath.FromSlash(spec))), true
	case m.SpecifierAbsolute:
		return m.Path(filepath.Clean(spec)), true
	case m.SpecifierBare:
		return m.Path(filepath.Join(string(root), "lib", filepath.FromSlash(spec))), true
	default:
		return "", false
	}
}

// specifierBase returns the file name of spec without its extension.
func specifierBase(spec string) string {
	base := spec
	if i := strings.LastIndexAny(base, "/:"); i >= 0 {
		base = base[i+1:]
	}

	return strings.TrimSuffix(base, sourceExtension)
}

func submatch(s string, match []int, group int) string {
	start, end := match[2*group], match[2*group+1]
	if start < 0 {
		return ""
	}

	return s[start:end]
}

// lineIndex converts byte offsets into 1-based positions.
type lineIndex []int

func newLineIndex(content string) lineIndex {
	starts := lineIndex{0}

	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

func (li lineIndex) position(offset int) m.Position {
	lo, hi := 0, len(li)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return m.Position{Line: lo + 1, Column: offset - li[lo] + 1}
}
