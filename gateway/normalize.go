package gateway

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Fallback strings the completion API and the UI rely on when a call
// produced nothing usable.
const (
	NoToolContent     = "Tool executed successfully but returned no content."
	NoResourceContent = "Resource is empty or content could not be decoded."
)

// NormalizeToolResult flattens a gateway tool result to a single string.
// Text contents are joined; structured content is serialized to JSON; an
// empty result becomes NoToolContent. Results flagged as errors come back
// as a Go error instead. The function is pure: the same input always yields
// the same string.
func NormalizeToolResult(res *mcptypes.CallToolResult) (string, error) {
	if res == nil {
		return NoToolContent, nil
	}

	var parts []string
	for _, item := range res.Content {
		switch c := item.(type) {
		case mcptypes.TextContent:
			parts = append(parts, c.Text)
		case *mcptypes.TextContent:
			parts = append(parts, c.Text)
		default:
			if raw, err := json.Marshal(item); err == nil {
				parts = append(parts, string(raw))
			}
		}
	}
	text := strings.Join(parts, "\n")

	if res.IsError {
		if text == "" {
			return "", errors.New("tool reported an error with no detail")
		}
		return "", errors.New(text)
	}

	if text != "" {
		return text, nil
	}

	if res.StructuredContent != nil {
		raw, err := json.Marshal(res.StructuredContent)
		if err != nil {
			return "", fmt.Errorf("failed to serialize structured tool result: %w", err)
		}
		return string(raw), nil
	}

	return NoToolContent, nil
}

// NormalizeResourceContents flattens resource contents to text. Blob
// contents are base64-decoded; anything undecodable or empty becomes
// NoResourceContent.
func NormalizeResourceContents(contents []mcptypes.ResourceContents) string {
	var parts []string
	for _, item := range contents {
		switch c := item.(type) {
		case mcptypes.TextResourceContents:
			if c.Text != "" {
				parts = append(parts, c.Text)
			}
		case *mcptypes.TextResourceContents:
			if c.Text != "" {
				parts = append(parts, c.Text)
			}
		case mcptypes.BlobResourceContents:
			if decoded, err := base64.StdEncoding.DecodeString(c.Blob); err == nil && len(decoded) > 0 {
				parts = append(parts, string(decoded))
			}
		case *mcptypes.BlobResourceContents:
			if decoded, err := base64.StdEncoding.DecodeString(c.Blob); err == nil && len(decoded) > 0 {
				parts = append(parts, string(decoded))
			}
		}
	}

	if len(parts) == 0 {
		return NoResourceContent
	}
	return strings.Join(parts, "\n")
}
