package model

// RouteToken is a route identifier found in a source document.
type RouteToken struct {
	Route    string
	Widget   string
	Position Position
}

// RouteDeclaration is a route/widget pair declared by the generated manifest.
type RouteDeclaration struct {
	Route  string
	Widget string
	Line   int
}

// Lens is a jump shortcut for a route token whose widget resolved to a file.
type Lens struct {
	Route    string   `json:"route" yaml:"route"`
	Widget   string   `json:"widget" yaml:"widget"`
	Document Path     `json:"document,omitempty" yaml:"document,omitempty"`
	Position Position `json:"position" yaml:"position"`
	Target   Path     `json:"target" yaml:"target"`
}
