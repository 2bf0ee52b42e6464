// Package server exposes route lookups as MCP tools over stdio.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "routefinder"
	serverVersion = "0.1.0"

	locateManifestsTool = "locate_manifests"
	resolveEntityTool   = "resolve_entity"
	listRoutesTool      = "list_routes"
)

// New creates the MCP server and registers the lookup tools. Tool logic
// lives in handler; this file only describes the protocol surface.
func New(handler *Handler) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool(locateManifestsTool,
		mcp.WithDescription("Return the project root, the primary routes manifest and every indexed manifest."),
		mcp.WithBoolean("reindex",
			mcp.Description("Search the project tree again before answering. Default: false"),
		),
	), handler.LocateManifests)

	s.AddTool(mcp.NewTool(resolveEntityTool,
		mcp.WithDescription("Resolve a widget (HomeScreen) or route (HomeRoute) name to the file that defines the widget."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Widget or route name"),
		),
	), handler.ResolveEntity)

	s.AddTool(mcp.NewTool(listRoutesTool,
		mcp.WithDescription("List every route declared in the routes manifests with its resolved screen file."),
	), handler.ListRoutes)

	return s
}
