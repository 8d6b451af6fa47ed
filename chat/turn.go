package chat

import "time"

// Turn roles. The completion API rejects anything else.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is one tool invocation requested by the model. Arguments is the
// raw JSON text exactly as the provider returned it; it is parsed at the
// gateway-call edge, not here.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Turn represents one entry in the conversation log.
//
// ToolCalls is set only on assistant turns that request tool execution.
// ToolCallID and ToolName are set only on tool turns and link the result
// back to the assistant turn that requested it.
type Turn struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
	Timestamp  time.Time
}

// RequestsTools reports whether this is an assistant turn carrying tool calls.
func (t Turn) RequestsTools() bool {
	return t.Role == RoleAssistant && len(t.ToolCalls) > 0
}
