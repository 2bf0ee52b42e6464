package controller

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

const missingLabel = "-"

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool

	heading lipgloss.Style
	miss    lipgloss.Style
	faint   lipgloss.Style
}

// NewSimpleUI creates a new SimpleUI. Styling is applied only when styled is set.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		styled:  styled,
		heading: lipgloss.NewStyle().Bold(true),
		miss:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

// DisplayResolutions prints one resolved path per line. A single hit prints
// the bare path so the output can be consumed by scripts.
func (s *SimpleUI) DisplayResolutions(ctx context.Context, resolutions []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	single := len(resolutions) == 1

	for _, res := range resolutions {
		if !res.Found {
			s.printf("%s: %s\n", res.Entity, s.render(s.miss, "not found ("+res.Reason+")"))
			continue
		}

		location := string(res.Path)
		if res.Declaration != nil {
			location = fmt.Sprintf("%s:%d:%d", res.Path, res.Declaration.Line, res.Declaration.Column)
		}

		if single {
			s.printf("%s\n", location)
			continue
		}

		s.printf("%s %s %s\n", res.Entity, s.render(s.faint, "->"), location)
	}

	return nil
}

// DisplayManifests prints the project root, the primary manifest and the index.
func (s *SimpleUI) DisplayManifests(ctx context.Context, manifests m.ManifestSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s %s\n", s.render(s.heading, "Root:"), manifests.Root)

	primary := string(manifests.Primary)
	if primary == "" {
		primary = s.render(s.miss, "not found")
	}

	s.printf("%s %s\n", s.render(s.heading, "Primary:"), primary)
	s.printf("%s %d\n", s.render(s.heading, "Indexed:"), len(manifests.Indexed))

	for _, path := range manifests.Indexed {
		s.printf("  %s\n", shortPath(manifests.Root, path))
	}

	return nil
}

// DisplayRoutes renders manifest routes and their resolved files as a table.
func (s *SimpleUI) DisplayRoutes(ctx context.Context, root m.Path, routes []m.Resolution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(routes))
	resolved := 0

	for _, route := range routes {
		file := missingLabel
		if route.Found {
			file = shortPath(root, route.Path)
			resolved++
		}

		rows = append(rows, []string{route.Route, route.Entity, file})
	}

	s.printf("\n%s", renderTable(
		[]string{"Route", "Widget", "File"},
		rows,
		[]string{fmt.Sprintf("Total Routes %d", len(routes)), "", fmt.Sprintf("%d resolved", resolved)},
	))

	return nil
}

// DisplayLenses renders the jump shortcuts found in the scanned documents.
func (s *SimpleUI) DisplayLenses(ctx context.Context, root m.Path, lenses []m.Lens) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(lenses))
	for _, lens := range lenses {
		rows = append(rows, []string{
			fmt.Sprintf("%s:%d:%d", shortPath(root, lens.Document), lens.Position.Line, lens.Position.Column),
			lens.Route,
			"Jump to " + lens.Widget,
			shortPath(root, lens.Target),
		})
	}

	s.printf("\n%s", renderTable(
		[]string{"Location", "Route", "Action", "Target"},
		rows,
		[]string{fmt.Sprintf("Total Lenses %d", len(lenses)), "", "", ""},
	))

	return nil
}

// DisplayEvent prints a progress line, e.g. a manifest re-index notice.
func (s *SimpleUI) DisplayEvent(ctx context.Context, format string, args ...interface{}) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf(format+"\n", args...)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()

	return tableBuffer.String()
}

func shortPath(root, path m.Path) string {
	if root == "" || path == "" {
		return string(path)
	}

	rel, err := filepath.Rel(string(root), string(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return string(path)
	}

	return filepath.ToSlash(rel)
}

func (s *SimpleUI) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
