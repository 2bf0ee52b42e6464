package domain

import (
	"fmt"
	"regexp"

	"routefinder.dev/pkg/routefinder/internal/adapter"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// FindDeclaration scans the file at path for `class <widget> extends <Base>`
// and returns the position of the class keyword.
func FindDeclaration(fsAdapter adapter.SourceFSAdapter, path m.Path, widget string) (m.Position, bool, error) {
	data, err := fsAdapter.ReadFile(path)
	if err != nil {
		return m.Position{}, false, fmt.Errorf("read %s: %w", path, err)
	}

	pos, ok := DeclarationIn(string(data), widget)

	return pos, ok, nil
}

// DeclarationIn locates the class declaration of widget inside content.
func DeclarationIn(content, widget string) (m.Position, bool) {
	if widget == "" {
		return m.Position{}, false
	}

	pattern := regexp.MustCompile(`\bclass\s+` + regexp.QuoteMeta(widget) + `\s+extends\s+\w+`)

	loc := pattern.FindStringIndex(content)
	if loc == nil {
		return m.Position{}, false
	}

	return newLineIndex(content).position(loc[0]), true
}
