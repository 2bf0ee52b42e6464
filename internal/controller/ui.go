// Package controller provides output adapters for displaying route finder results.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// Format selects how results are written.
type Format string

// Available output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (must be text, json or yaml)", value)
	}
}

// UI defines the interface for displaying lookups.
// Implementations can use different output encodings (text tables, JSON, YAML).
type UI interface {
	DisplayResolutions(ctx context.Context, resolutions []m.Resolution) error
	DisplayManifests(ctx context.Context, manifests m.ManifestSet) error
	DisplayRoutes(ctx context.Context, root m.Path, routes []m.Resolution) error
	DisplayLenses(ctx context.Context, root m.Path, lenses []m.Lens) error
	DisplayEvent(ctx context.Context, format string, args ...interface{})
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
