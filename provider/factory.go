package provider

import "fmt"

// New creates a provider from config. An empty Type defaults to OpenAI.
func New(cfg Config) (Completer, error) {
	switch cfg.Type {
	case TypeOpenAI, "":
		return NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case TypeOpenRouter:
		return NewOpenRouterProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// MapProviderID converts the settings-file provider id to a factory Type.
// Unknown ids pass through as-is so New can report them.
func MapProviderID(id string) Type {
	switch id {
	case "openai":
		return TypeOpenAI
	case "openrouter":
		return TypeOpenRouter
	default:
		return Type(id)
	}
}
