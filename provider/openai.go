package provider

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"pipechat/chat"
	"pipechat/config"
	"pipechat/gateway"
)

// OpenAIProvider implements Completer using the official OpenAI Go SDK.
// Completions are non-streaming: one request, one message back.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider instance.
//
// baseURL defaults to the public OpenAI endpoint, model to the config
// default. The API key is required.
func NewOpenAIProvider(baseURL, apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = config.DefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Complete implements chat.Completer. When tools are given they are
// attached to the request with tool choice "auto"; otherwise the request
// carries no manifest at all, which is what caps a round at one tool pass.
func (p *OpenAIProvider) Complete(ctx context.Context, turns []chat.Turn, tools []mcptypes.Tool) (chat.Turn, error) {
	params := openai.ChatCompletionNewParams{
		Messages: ConvertTurnsToOpenAI(turns),
		Model:    openai.ChatModel(p.model),
	}

	if len(tools) > 0 {
		params.Tools = gateway.ConvertToolsToOpenAI(tools)
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("auto"),
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return chat.Turn{}, fmt.Errorf("OpenAI completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return chat.Turn{}, fmt.Errorf("OpenAI returned no choices")
	}

	return ConvertOpenAIReply(resp.Choices[0].Message), nil
}

// Model implements Completer.Model.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// SetModel implements Completer.SetModel.
func (p *OpenAIProvider) SetModel(model string) {
	p.model = model
}
