package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPagesResource(srv, svc)
	registerPageTemplate(srv, svc)
}

func registerPagesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"roulette://pages",
		"Pages",
		mcp.WithResourceDescription("All pages with item counts and the current selection."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListPages(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"pages": summaries,
			"count": len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerPageTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"roulette://pages/{id}",
		"Page Details",
		mcp.WithTemplateDescription("A single page with its full item list and media binding."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, _ := request.Params.Arguments["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("page id is required")
		}

		dto, err := svc.PageByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"page": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
