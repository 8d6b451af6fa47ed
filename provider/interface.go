// Package provider implements the completion API side of pipechat.
//
// The chat core talks to chat.Completer; this package supplies the concrete
// implementations (OpenAI, and OpenRouter which speaks the same wire
// protocol) plus the conversions between chat turns and the OpenAI message
// format. All provider-specific types stay behind this package boundary.
package provider

import "pipechat/chat"

// Type identifies the provider implementation.
type Type string

const (
	TypeOpenAI     Type = "openai"
	TypeOpenRouter Type = "openrouter"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    Type
	BaseURL string
	APIKey  string
	Model   string
}

// Completer is the configurable completion provider: chat.Completer plus
// model selection.
type Completer interface {
	chat.Completer
	Model() string
	SetModel(model string)
}
