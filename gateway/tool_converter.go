package gateway

import (
	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
)

// ConvertToolsToOpenAI converts the gateway's tool manifest to OpenAI
// function-tool parameters. Name, description and parameter schema pass
// through verbatim; a tool whose schema is not a well-formed object schema
// gets an empty-object schema instead.
//
// MCP Tool structure:
//
//	{
//	  "name": "list_pipelines",
//	  "description": "...",
//	  "inputSchema": {"type": "object", "properties": {...}, "required": [...]}
//	}
//
// OpenAI Tool structure:
//
//	{
//	  "type": "function",
//	  "function": {"name": "...", "description": "...", "parameters": {...}}
//	}
func ConvertToolsToOpenAI(tools []mcptypes.Tool) []openai.ChatCompletionToolUnionParam {
	if len(tools) == 0 {
		return nil
	}

	result := make([]openai.ChatCompletionToolUnionParam, len(tools))

	for i, tool := range tools {
		schemaType := tool.InputSchema.Type
		if schemaType == "" {
			schemaType = "object"
		}
		properties := tool.InputSchema.Properties
		if properties == nil {
			properties = map[string]any{}
		}

		params := openai.FunctionParameters{
			"type":       schemaType,
			"properties": properties,
		}
		if len(tool.InputSchema.Required) > 0 {
			params["required"] = tool.InputSchema.Required
		}
		if tool.InputSchema.Defs != nil {
			params["$defs"] = tool.InputSchema.Defs
		}

		result[i] = openai.ChatCompletionFunctionTool(
			openai.FunctionDefinitionParam{
				Name:        tool.Name,
				Description: openai.String(tool.Description),
				Parameters:  params,
			},
		)
	}

	return result
}
