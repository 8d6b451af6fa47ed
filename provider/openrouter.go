package provider

import "fmt"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider talks to OpenRouter, which speaks the OpenAI chat
// completion protocol, so it reuses OpenAIProvider wholesale and only pins
// the base URL.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates an OpenRouter provider instance. An empty
// baseURL selects the public OpenRouter endpoint.
func NewOpenRouterProvider(baseURL, apiKey, model string) (*OpenRouterProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required")
	}
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}

	inner, err := NewOpenAIProvider(baseURL, apiKey, model)
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
