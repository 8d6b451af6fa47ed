package gateway

import (
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
)

func TestConvertToolsToOpenAI(t *testing.T) {
	tests := []struct {
		name     string
		input    []mcptypes.Tool
		expected int
		validate func(t *testing.T, result []openai.ChatCompletionToolUnionParam)
	}{
		{
			name:     "empty manifest",
			input:    []mcptypes.Tool{},
			expected: 0,
			validate: func(t *testing.T, result []openai.ChatCompletionToolUnionParam) {
				if result != nil {
					t.Errorf("expected nil, got %d tools", len(result))
				}
			},
		},
		{
			name: "simple tool passes through verbatim",
			input: []mcptypes.Tool{
				{
					Name:        "list_pipelines",
					Description: "Retrieves a list of available pipelines.",
					InputSchema: mcptypes.ToolInputSchema{
						Type:       "object",
						Properties: map[string]any{},
					},
				},
			},
			expected: 1,
			validate: func(t *testing.T, result []openai.ChatCompletionToolUnionParam) {
				fn := result[0].OfFunction
				if fn == nil {
					t.Fatal("expected a function tool")
				}
				if fn.Function.Name != "list_pipelines" {
					t.Errorf("name = %q", fn.Function.Name)
				}
				if fn.Function.Description.Value != "Retrieves a list of available pipelines." {
					t.Errorf("description = %q", fn.Function.Description.Value)
				}
				if fn.Function.Parameters["type"] != "object" {
					t.Errorf("parameters type = %v", fn.Function.Parameters["type"])
				}
			},
		},
		{
			name: "tool with properties and required",
			input: []mcptypes.Tool{
				{
					Name:        "pipeline_create",
					Description: "Create a pipeline",
					InputSchema: mcptypes.ToolInputSchema{
						Type: "object",
						Properties: map[string]any{
							"name":       map[string]any{"type": "string"},
							"project_id": map[string]any{"type": "string"},
						},
						Required: []string{"name", "project_id"},
					},
				},
			},
			expected: 1,
			validate: func(t *testing.T, result []openai.ChatCompletionToolUnionParam) {
				params := result[0].OfFunction.Function.Parameters
				props, ok := params["properties"].(map[string]any)
				if !ok || len(props) != 2 {
					t.Fatalf("properties not passed through: %v", params["properties"])
				}
				required, ok := params["required"].([]string)
				if !ok || len(required) != 2 {
					t.Errorf("required not passed through: %v", params["required"])
				}
			},
		},
		{
			name: "malformed schema defaults to empty object",
			input: []mcptypes.Tool{
				{Name: "bare", InputSchema: mcptypes.ToolInputSchema{}},
			},
			expected: 1,
			validate: func(t *testing.T, result []openai.ChatCompletionToolUnionParam) {
				params := result[0].OfFunction.Function.Parameters
				if params["type"] != "object" {
					t.Errorf("type = %v, want object", params["type"])
				}
				props, ok := params["properties"].(map[string]any)
				if !ok || len(props) != 0 {
					t.Errorf("properties = %v, want empty map", params["properties"])
				}
				if _, present := params["required"]; present {
					t.Error("empty required list must be omitted")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertToolsToOpenAI(tt.input)
			if len(result) != tt.expected {
				t.Fatalf("expected %d tools, got %d", tt.expected, len(result))
			}
			tt.validate(t, result)
		})
	}
}
