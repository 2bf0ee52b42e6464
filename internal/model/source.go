// Package model defines the data structures shared by the route finder.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Position is a 1-based line/column location inside a text document.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// ImportDeclaration is a single import statement found in manifest text.
type ImportDeclaration struct {
	// Specifier is the raw quoted import string, e.g. "package:app/home/home_screen.dart".
	Specifier string
	// Alias is the identifier after `as`, empty when absent.
	Alias string
	// Entity is an identifier named by a trailing line comment, empty when absent.
	Entity string
	Line   int
}

// SpecifierKind classifies the syntax of an import specifier.
type SpecifierKind string

const (
	// SpecifierPackage is a package-rooted import (package:name/rest).
	SpecifierPackage SpecifierKind = "package"
	// SpecifierRelative is relative to the manifest's directory (./ or ../).
	SpecifierRelative SpecifierKind = "relative"
	// SpecifierLib is rooted at the project's lib/ directory (lib/...).
	SpecifierLib SpecifierKind = "lib"
	// SpecifierAbsolute is an absolute file system path.
	SpecifierAbsolute SpecifierKind = "absolute"
	// SpecifierBare is a plain relative path, treated as relative to lib/.
	SpecifierBare SpecifierKind = "bare"
	// SpecifierUnknown cannot be mapped to a file (other schemes, malformed package imports).
	SpecifierUnknown SpecifierKind = "unknown"
)
