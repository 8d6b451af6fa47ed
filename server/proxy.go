package server

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// RegisterPipelineProxy wires the remote pipeline API as gateway tools.
// Remote failures become error tool results, never transport faults.
func RegisterPipelineProxy(g *Gateway, client *PipelineClient) {
	g.AddTool(
		mcptypes.NewTool("pipeline_list",
			mcptypes.WithDescription("Get the list of pipelines for a given project ID."),
			mcptypes.WithString("project_id",
				mcptypes.Required(),
				mcptypes.Description("The project ID to query pipelines for."),
			),
		),
		func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			projectID, err := req.RequireString("project_id")
			if err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}
			result, err := client.ListPipelines(ctx, projectID)
			if err != nil {
				return mcptypes.NewToolResultError(fmt.Sprintf("pipeline_list failed: %v", err)), nil
			}
			return mcptypes.NewToolResultText(string(result)), nil
		},
	)

	g.AddTool(
		mcptypes.NewTool("pipeline_create",
			mcptypes.WithDescription("Create a pipeline with the given name in a project. "+
				"The pipeline starts from a fixed single-stage template."),
			mcptypes.WithString("name",
				mcptypes.Required(),
				mcptypes.Description("The name of the pipeline."),
			),
			mcptypes.WithString("project_id",
				mcptypes.Required(),
				mcptypes.Description("The project ID for the pipeline."),
			),
		),
		func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			name, err := req.RequireString("name")
			if err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}
			projectID, err := req.RequireString("project_id")
			if err != nil {
				return mcptypes.NewToolResultError(err.Error()), nil
			}
			result, err := client.CreatePipeline(ctx, name, projectID)
			if err != nil {
				return mcptypes.NewToolResultError(fmt.Sprintf("pipeline_create failed: %v", err)), nil
			}
			return mcptypes.NewToolResultText(string(result)), nil
		},
	)
}
