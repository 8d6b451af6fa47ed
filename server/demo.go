package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Entry is one row of the demo catalogs.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DemoItems returns the fixed demo item catalog.
func DemoItems() []Entry {
	return []Entry{
		{ID: "item_1", Name: "Item 1"},
		{ID: "item_2", Name: "Item 2"},
	}
}

// DemoPipelines returns the fixed demo pipeline catalog.
func DemoPipelines() []Entry {
	return []Entry{
		{ID: "pipe_1", Name: "Pipeline 1 (MCP)"},
		{ID: "pipe_2", Name: "Pipeline 2 (MCP)"},
	}
}

func entriesResult(entries []Entry) (*mcptypes.CallToolResult, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return mcptypes.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
	}
	return mcptypes.NewToolResultText(string(raw)), nil
}

func entriesContents(uri string, entries []Entry) ([]mcptypes.ResourceContents, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return []mcptypes.ResourceContents{
		mcptypes.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(raw),
		},
	}, nil
}

// RegisterDemoItems wires the item catalog as an MCP tool, an MCP resource
// and a REST endpoint.
func RegisterDemoItems(g *Gateway) {
	g.AddTool(
		mcptypes.NewTool("list_items",
			mcptypes.WithDescription(
				"Retrieves a list of available general items. "+
					"Use this tool when the user asks to list, show, or enumerate items. "+
					"Returns a list of item objects, each containing an 'id' and 'name'. "+
					"This tool does not accept any input parameters."),
		),
		func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return entriesResult(DemoItems())
		},
	)

	g.AddResource(
		mcptypes.NewResource("demo://items", "Demo Items",
			mcptypes.WithResourceDescription("The demo item catalog as JSON."),
			mcptypes.WithMIMEType("application/json"),
		),
		func(ctx context.Context, req mcptypes.ReadResourceRequest) ([]mcptypes.ResourceContents, error) {
			return entriesContents("demo://items", DemoItems())
		},
	)

	g.HandleJSON("/items", func(r *http.Request) (any, error) {
		return DemoItems(), nil
	})
}

// RegisterDemoPipelines wires the pipeline catalog the same three ways.
func RegisterDemoPipelines(g *Gateway) {
	g.AddTool(
		mcptypes.NewTool("list_pipelines",
			mcptypes.WithDescription(
				"Retrieves a list of available pipelines. "+
					"Use this tool when the user asks to list, show, or enumerate pipelines, "+
					"or asks any question about what pipelines exist or are available. "+
					"Returns a list of pipeline objects, each containing an 'id' and 'name'. "+
					"This tool does not accept any input parameters."),
		),
		func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			return entriesResult(DemoPipelines())
		},
	)

	g.AddResource(
		mcptypes.NewResource("demo://pipelines", "Demo Pipelines",
			mcptypes.WithResourceDescription("The demo pipeline catalog as JSON."),
			mcptypes.WithMIMEType("application/json"),
		),
		func(ctx context.Context, req mcptypes.ReadResourceRequest) ([]mcptypes.ResourceContents, error) {
			return entriesContents("demo://pipelines", DemoPipelines())
		},
	)

	g.HandleJSON("/pipelines", func(r *http.Request) (any, error) {
		return DemoPipelines(), nil
	})
}
