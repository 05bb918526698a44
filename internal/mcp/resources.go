package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/planfit/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) weekOverview(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req, plan.GroupByDay(h.store.Sessions()))
}

func (h *handlers) planSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req, plan.Summarize(h.store.Sessions()))
}

func (h *handlers) templateCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req, plan.Templates())
}

func jsonResource(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
