package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"routefinder.dev/pkg/routefinder/internal/domain"
)

// routesCmd represents the routes command.
var routesCmd = newRoutesCmd()

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every route declared in the manifests with its screen file",
		Long: `Read the routes manifests, list each declared route with the widget it
shows, and resolve the file defining that widget.

` + rootsHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			prepareLocator()

			routes, err := domain.ManifestRoutes(fsAdapter, locator.Candidates(), naming)
			if err != nil {
				return fmt.Errorf("list routes: %w", err)
			}

			root, _ := locator.ProjectRoot()

			return ui.DisplayRoutes(ctx, root, domain.ResolveRoutes(resolver, routes))
		},
	}
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
