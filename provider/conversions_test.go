package provider

import (
	"testing"

	"github.com/openai/openai-go/v3"

	"pipechat/chat"
)

func TestConvertTurnsToOpenAI(t *testing.T) {
	tests := []struct {
		name     string
		input    []chat.Turn
		validate func(t *testing.T, result []openai.ChatCompletionMessageParamUnion)
	}{
		{
			name:  "empty window",
			input: nil,
			validate: func(t *testing.T, result []openai.ChatCompletionMessageParamUnion) {
				if len(result) != 0 {
					t.Errorf("expected no messages, got %d", len(result))
				}
			},
		},
		{
			name: "plain exchange",
			input: []chat.Turn{
				{Role: chat.RoleAssistant, Content: "A1"},
				{Role: chat.RoleUser, Content: "U2"},
			},
			validate: func(t *testing.T, result []openai.ChatCompletionMessageParamUnion) {
				if len(result) != 2 {
					t.Fatalf("expected 2 messages, got %d", len(result))
				}
				if result[0].OfAssistant == nil {
					t.Error("first message should be assistant")
				}
				if result[1].OfUser == nil {
					t.Error("second message should be user")
				}
			},
		},
		{
			name: "tool call block keeps IDs and order",
			input: []chat.Turn{
				{Role: chat.RoleAssistant, Content: "", ToolCalls: []chat.ToolCall{
					{ID: "call_1", Name: "list_pipelines", Arguments: "{}"},
					{ID: "call_2", Name: "list_items", Arguments: "{}"},
				}},
				{Role: chat.RoleTool, ToolCallID: "call_1", Content: "r1"},
				{Role: chat.RoleTool, ToolCallID: "call_2", Content: "r2"},
			},
			validate: func(t *testing.T, result []openai.ChatCompletionMessageParamUnion) {
				if len(result) != 3 {
					t.Fatalf("expected 3 messages, got %d", len(result))
				}
				assistant := result[0].OfAssistant
				if assistant == nil {
					t.Fatal("first message should be assistant")
				}
				if len(assistant.ToolCalls) != 2 {
					t.Fatalf("expected 2 tool calls, got %d", len(assistant.ToolCalls))
				}
				if assistant.ToolCalls[0].OfFunction.ID != "call_1" {
					t.Errorf("tool call ID = %q", assistant.ToolCalls[0].OfFunction.ID)
				}
				if assistant.ToolCalls[1].OfFunction.Function.Name != "list_items" {
					t.Errorf("tool call name = %q", assistant.ToolCalls[1].OfFunction.Function.Name)
				}
				// Content must be present even when empty: the API rejects
				// absent content fields.
				if !assistant.Content.OfString.Valid() {
					t.Error("assistant content must be a defined string")
				}
				if result[1].OfTool == nil || result[1].OfTool.ToolCallID != "call_1" {
					t.Error("first tool message not linked to call_1")
				}
				if result[2].OfTool == nil || result[2].OfTool.ToolCallID != "call_2" {
					t.Error("second tool message not linked to call_2")
				}
			},
		},
		{
			name: "system turn",
			input: []chat.Turn{
				{Role: "system", Content: "be terse"},
			},
			validate: func(t *testing.T, result []openai.ChatCompletionMessageParamUnion) {
				if result[0].OfSystem == nil {
					t.Error("expected a system message")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ConvertTurnsToOpenAI(tt.input))
		})
	}
}

func TestConvertOpenAIReply(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Role:    "assistant",
		Content: "",
		ToolCalls: []openai.ChatCompletionMessageToolCallUnion{
			{
				ID: "call_1",
				Function: openai.ChatCompletionMessageFunctionToolCallFunction{
					Name:      "list_pipelines",
					Arguments: `{"project_id":"p1"}`,
				},
			},
		},
	}

	turn := ConvertOpenAIReply(msg)

	if turn.Role != chat.RoleAssistant {
		t.Errorf("role = %q", turn.Role)
	}
	if turn.Content != "" {
		t.Errorf("content = %q, want empty string", turn.Content)
	}
	if len(turn.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(turn.ToolCalls))
	}
	call := turn.ToolCalls[0]
	if call.ID != "call_1" || call.Name != "list_pipelines" || call.Arguments != `{"project_id":"p1"}` {
		t.Errorf("tool call = %+v", call)
	}
}

func TestConvertOpenAIReplyPlain(t *testing.T) {
	turn := ConvertOpenAIReply(openai.ChatCompletionMessage{
		Role:    "assistant",
		Content: "hello",
	})
	if turn.Content != "hello" || len(turn.ToolCalls) != 0 {
		t.Errorf("turn = %+v", turn)
	}
}
