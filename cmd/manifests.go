package cmd

import (
	"context"

	"github.com/spf13/cobra"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// manifestsCmd represents the manifests command.
var manifestsCmd = newManifestsCmd()

func newManifestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifests",
		Short: "List the routes manifests found in the project",
		Long: `Index every routes manifest under the project root (skipping dependency,
build and VCS directories) and print the primary manifest together with
the full candidate set, in the order lookups scan them.

` + rootsHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			set := m.ManifestSet{Indexed: locator.IndexManifests()}
			set.Root, _ = locator.ProjectRoot()
			set.Primary, _ = locator.FindManifestPath()

			return ui.DisplayManifests(ctx, set)
		},
	}
}

func init() {
	rootCmd.AddCommand(manifestsCmd)
}
