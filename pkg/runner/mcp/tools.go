package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListPagesTool(srv, svc)
	registerAddPageTool(srv, svc)
	registerSelectPageTool(srv, svc)
	registerAddItemTool(srv, svc)
	registerRemoveItemTool(srv, svc)
	registerBindMediaURLTool(srv, svc)
	registerSpinTool(srv, svc)
	registerRandomRangeTool(srv, svc)
}

func registerListPagesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_pages",
		mcp.WithDescription("List every page with item counts and the current selection."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListPages(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summaries)
	})
}

func registerAddPageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_page",
		mcp.WithDescription("Append a new page and make it the current selection."),
		mcp.WithString("title",
			mcp.Description("Optional title; defaults to a sequence-numbered label."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title string `json:"title"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddPage(ctx, args.Title)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSelectPageTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_page",
		mcp.WithDescription("Switch the current page by id or 1-based position."),
		mcp.WithString("page",
			mcp.Required(),
			mcp.Description("Page id or 1-based position."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("page")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SelectPage(ctx, ref)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Append item text to the current page's wheel."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Item text; blank text is rejected."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.AddItem(ctx, text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_item",
		mcp.WithDescription("Remove the item at a 0-based index from the current page."),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("0-based index of the item to remove."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, err := request.RequireInt("index")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RemoveItem(ctx, index)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerBindMediaURLTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"bind_media_url",
		mcp.WithDescription("Bind a media URL to the current page; .mp4/.webm/.mov classify as video, anything else as image, and an empty URL clears the attachment."),
		mcp.WithString("url",
			mcp.Description("Media URL; empty clears media."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			URL string `json:"url"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.BindMediaURL(ctx, args.URL)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSpinTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"spin",
		mcp.WithDescription("Spin the current page's wheel and report the drawn item."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outcome, err := svc.Spin(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(outcome)
	})
}

func registerRandomRangeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"random_range",
		mcp.WithDescription("Draw a uniform integer from a closed range; defaults to the current page's stored bounds."),
		mcp.WithString("min",
			mcp.Description("Lower bound, inclusive."),
		),
		mcp.WithString("max",
			mcp.Description("Upper bound, inclusive."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Min string `json:"min"`
			Max string `json:"max"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		value, err := svc.RandomRange(ctx, args.Min, args.Max)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]int{"value": value})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
