package cmd

import (
	"fmt"
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"routefinder.dev/pkg/routefinder/internal/server"
)

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve route lookups as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
locate_manifests, resolve_entity and list_routes tools, so editors and
agents can jump from routes to screens.

` + rootsHelp,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			prepareLocator()

			slog.Info("starting MCP server", "manifests", len(locator.IndexedManifests()))

			handler := server.NewHandler(fsAdapter, locator, resolver, naming)
			if err := mcpserver.ServeStdio(server.New(handler)); err != nil {
				return fmt.Errorf("serve: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
