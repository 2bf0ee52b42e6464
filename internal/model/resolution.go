package model

// Resolution is the outcome of resolving one entity name.
type Resolution struct {
	Entity string `json:"entity" yaml:"entity"`
	Route  string `json:"route,omitempty" yaml:"route,omitempty"`
	Path   Path   `json:"path,omitempty" yaml:"path,omitempty"`
	Found  bool   `json:"found" yaml:"found"`
	// Reason explains a miss; empty when Found is true.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	// Declaration is the position of the entity's class declaration when it was looked up.
	Declaration *Position `json:"declaration,omitempty" yaml:"declaration,omitempty"`
}

// ManifestSet describes the manifests known for a project.
type ManifestSet struct {
	Root    Path   `json:"root" yaml:"root"`
	Primary Path   `json:"primary,omitempty" yaml:"primary,omitempty"`
	Indexed []Path `json:"indexed" yaml:"indexed"`
}
