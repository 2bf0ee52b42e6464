package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"routefinder.dev/pkg/routefinder/internal/domain"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

const resolveLongDescription = `Resolve widget names (HomeScreen) or route names (HomeRoute) to the file
that defines the widget. The first import of the routes manifest whose
specifier contains the snake_case widget name and points to an existing
file wins.

` + rootsHelp

var declarationFlag bool

// resolveCmd represents the resolve command.
var resolveCmd = newResolveCmd()

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Resolve widget or route names to their files",
		Long:  resolveLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prepareLocator()

			return displayResolutions(cmd.Context(), resolveNames(args, declarationFlag))
		},
	}

	cmd.Flags().BoolVarP(&declarationFlag, "declaration", "d", false, "also locate the widget's class declaration (path:line:column)")

	return cmd
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

// resolveNames resolves each name, mapping route identifiers to widget names first.
func resolveNames(names []string, withDeclaration bool) []m.Resolution {
	resolutions := make([]m.Resolution, 0, len(names))

	for _, name := range names {
		res := m.Resolution{Entity: name}
		if naming.IsRoute(name) {
			res.Route = name
			res.Entity = naming.WidgetForRoute(name)
		}

		path, err := resolver.Diagnose(res.Entity)
		if err != nil {
			res.Reason = err.Error()
			resolutions = append(resolutions, res)

			continue
		}

		res.Path = path
		res.Found = true

		if withDeclaration {
			pos, ok, err := domain.FindDeclaration(fsAdapter, path, res.Entity)
			if err == nil && ok {
				res.Declaration = &pos
			}
		}

		resolutions = append(resolutions, res)
	}

	return resolutions
}

func displayResolutions(ctx context.Context, resolutions []m.Resolution) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := ui.DisplayResolutions(ctx, resolutions); err != nil {
		return err
	}

	missed := 0

	for _, res := range resolutions {
		if !res.Found {
			missed++
		}
	}

	if missed > 0 {
		return fmt.Errorf("%d of %d name(s) not resolved", missed, len(resolutions))
	}

	return nil
}
