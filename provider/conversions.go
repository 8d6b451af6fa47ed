package provider

import (
	"github.com/openai/openai-go/v3"

	"pipechat/chat"
)

// ConvertTurnsToOpenAI converts a window of chat turns to OpenAI message
// params. Assistant turns carrying tool calls and tool turns keep their
// call IDs so the API can link results back to requests; the completion
// API rejects the request otherwise.
func ConvertTurnsToOpenAI(turns []chat.Turn) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))

	for _, turn := range turns {
		switch {
		case turn.Role == chat.RoleAssistant && len(turn.ToolCalls) > 0:
			calls := make([]openai.ChatCompletionMessageToolCallUnionParam, len(turn.ToolCalls))
			for i, call := range turn.ToolCalls {
				calls[i] = openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: call.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      call.Name,
							Arguments: call.Arguments,
						},
					},
				}
			}
			result = append(result, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					// Content must be a defined string even when the model
					// sent none alongside the tool calls.
					Content: openai.ChatCompletionAssistantMessageParamContentUnion{
						OfString: openai.String(turn.Content),
					},
					ToolCalls: calls,
				},
			})

		case turn.Role == chat.RoleAssistant:
			result = append(result, openai.AssistantMessage(turn.Content))

		case turn.Role == chat.RoleTool:
			result = append(result, openai.ToolMessage(turn.Content, turn.ToolCallID))

		case turn.Role == "system":
			result = append(result, openai.SystemMessage(turn.Content))

		default:
			result = append(result, openai.UserMessage(turn.Content))
		}
	}

	return result
}

// ConvertOpenAIReply converts a completion message back to a chat turn.
// Nullable content becomes the empty string and tool calls keep the order
// the API returned them in.
func ConvertOpenAIReply(msg openai.ChatCompletionMessage) chat.Turn {
	turn := chat.Turn{
		Role:    chat.RoleAssistant,
		Content: msg.Content,
	}

	for _, call := range msg.ToolCalls {
		turn.ToolCalls = append(turn.ToolCalls, chat.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}

	return turn
}
