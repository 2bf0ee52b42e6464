package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"routefinder.dev/pkg/routefinder/internal/adapter"
	"routefinder.dev/pkg/routefinder/internal/domain"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

// Handler turns MCP tool calls into locator and resolver lookups.
type Handler struct {
	fsAdapter adapter.SourceFSAdapter
	locator   domain.Locator
	resolver  domain.Resolver
	naming    domain.Naming
}

// NewHandler creates a Handler.
func NewHandler(fsAdapter adapter.SourceFSAdapter, locator domain.Locator, resolver domain.Resolver, naming domain.Naming) *Handler {
	return &Handler{
		fsAdapter: fsAdapter,
		locator:   locator,
		resolver:  resolver,
		naming:    naming,
	}
}

// LocateManifests handles the locate_manifests tool.
func (h *Handler) LocateManifests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var set m.ManifestSet

	if req.GetBool("reindex", false) {
		set.Indexed = h.locator.Refresh()
	} else {
		set.Indexed = h.locator.IndexedManifests()
	}

	if set.Indexed == nil {
		set.Indexed = []m.Path{}
	}

	set.Root, _ = h.locator.ProjectRoot()
	set.Primary, _ = h.locator.FindManifestPath()

	return jsonResult(set)
}

// ResolveEntity handles the resolve_entity tool. A miss is reported as a
// result with found=false, not as a tool error.
func (h *Handler) ResolveEntity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := req.RequireString("name")
	if err != nil || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	res := m.Resolution{Entity: name}
	if h.naming.IsRoute(name) {
		res.Route = name
		res.Entity = h.naming.WidgetForRoute(name)
	}

	path, err := h.resolver.Diagnose(res.Entity)
	if err != nil {
		res.Reason = err.Error()
		return jsonResult(res)
	}

	res.Path = path
	res.Found = true

	if pos, ok, err := domain.FindDeclaration(h.fsAdapter, path, res.Entity); err == nil && ok {
		res.Declaration = &pos
	}

	return jsonResult(res)
}

// ListRoutes handles the list_routes tool.
func (h *Handler) ListRoutes(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	routes, err := domain.ManifestRoutes(h.fsAdapter, h.locator.Candidates(), h.naming)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list routes: %v", err)), nil
	}

	return jsonResult(domain.ResolveRoutes(h.resolver, routes))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
