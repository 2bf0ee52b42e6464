package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// EncodedUI writes every result as a JSON or YAML document.
type EncodedUI struct {
	cmd    *cobra.Command
	format Format
}

// NewEncodedUI creates an EncodedUI for FormatJSON or FormatYAML.
func NewEncodedUI(cmd *cobra.Command, format Format) *EncodedUI {
	return &EncodedUI{cmd: cmd, format: format}
}

// DisplayResolutions implements UI.
func (e *EncodedUI) DisplayResolutions(ctx context.Context, resolutions []m.Resolution) error {
	return e.encode(ctx, resolutions)
}

// DisplayManifests implements UI.
func (e *EncodedUI) DisplayManifests(ctx context.Context, manifests m.ManifestSet) error {
	if manifests.Indexed == nil {
		manifests.Indexed = []m.Path{}
	}

	return e.encode(ctx, manifests)
}

// DisplayRoutes implements UI.
func (e *EncodedUI) DisplayRoutes(ctx context.Context, _ m.Path, routes []m.Resolution) error {
	return e.encode(ctx, routes)
}

// DisplayLenses implements UI.
func (e *EncodedUI) DisplayLenses(ctx context.Context, _ m.Path, lenses []m.Lens) error {
	if lenses == nil {
		lenses = []m.Lens{}
	}

	return e.encode(ctx, lenses)
}

// DisplayEvent writes events to stderr so stdout stays a valid document stream.
func (e *EncodedUI) DisplayEvent(ctx context.Context, format string, args ...interface{}) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintf(e.cmd.ErrOrStderr(), format+"\n", args...)
}

func (e *EncodedUI) encode(ctx context.Context, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return encodeTo(e.cmd.OutOrStdout(), e.format, v)
}

func encodeTo(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}
}

// NewUI selects the UI implementation for format.
func NewUI(cmd *cobra.Command, format Format, styled bool) UI {
	if format == FormatJSON || format == FormatYAML {
		return NewEncodedUI(cmd, format)
	}

	return NewSimpleUI(cmd, styled)
}
