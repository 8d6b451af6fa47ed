package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"pipechat/config"
)

// Completer is the completion API consumed by a Round. Complete sends the
// given window of turns, with an optional tool manifest, and returns the
// assistant turn the model produced.
type Completer interface {
	Complete(ctx context.Context, turns []Turn, tools []mcptypes.Tool) (Turn, error)
}

// ToolCaller executes a named tool against the remote gateway and returns
// the result already normalized to a string.
type ToolCaller interface {
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
}

// Round drives one user message through at most one pass of tool execution:
// first completion with the manifest attached, sequential tool calls if the
// model requested any, then a second completion without a manifest for the
// final natural-language answer. The missing manifest on the second call is
// what caps the round at a single tool pass.
type Round struct {
	Completer Completer
	Gateway   ToolCaller
	Tools     []mcptypes.Tool
}

// Run appends the user message to the history and runs the round to
// completion. Every failure path ends as a turn in the log; nothing is
// returned to the caller.
func (r *Round) Run(ctx context.Context, h *History, userText string) {
	h.Append(Turn{Role: RoleUser, Content: userText, Timestamp: time.Now()})

	reply, err := r.Completer.Complete(ctx, Window(h.Turns()), r.Tools)
	if err != nil {
		h.Append(errorTurn(err))
		return
	}

	if len(reply.ToolCalls) == 0 {
		h.Append(assistantTurn(reply))
		return
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Round] model requested %d tool call(s)", len(reply.ToolCalls))
	}

	h.Append(assistantTurn(reply))
	for _, call := range reply.ToolCalls {
		h.Append(r.executeCall(ctx, call))
	}

	// Summarizing call: no manifest, so the model cannot chain further tool
	// rounds.
	final, err := r.Completer.Complete(ctx, Window(h.Turns()), nil)
	if err != nil {
		h.Append(errorTurn(err))
		return
	}
	final.ToolCalls = nil
	h.Append(assistantTurn(final))
}

// executeCall runs one requested tool call and converts the outcome, success
// or failure, into a tool turn. A failed call never aborts its siblings.
func (r *Round) executeCall(ctx context.Context, call ToolCall) Turn {
	result := Turn{
		Role:       RoleTool,
		ToolCallID: call.ID,
		ToolName:   call.Name,
		Timestamp:  time.Now(),
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Round] bad arguments for tool %s: %v", call.Name, err)
		}
		result.Content = fmt.Sprintf(
			"Error: Could not parse arguments for tool %s. Arguments received: %s",
			call.Name, call.Arguments)
		return result
	}

	if r.Gateway == nil {
		result.Content = fmt.Sprintf("Error executing tool %s: no gateway connected", call.Name)
		return result
	}

	content, err := r.Gateway.CallTool(ctx, call.Name, args)
	if err != nil {
		result.Content = fmt.Sprintf("Error executing tool %s: %v", call.Name, err)
		return result
	}
	result.Content = content
	return result
}

// assistantTurn fixes up a provider reply so it satisfies the log
// invariants: content is always a defined string and every tool call
// carries an ID the matching tool turn can link back to.
func assistantTurn(t Turn) Turn {
	t.Role = RoleAssistant
	t.Timestamp = time.Now()
	for i := range t.ToolCalls {
		if t.ToolCalls[i].ID == "" {
			t.ToolCalls[i].ID = uuid.NewString()
		}
	}
	return t
}

func errorTurn(err error) Turn {
	return Turn{
		Role:      RoleAssistant,
		Content:   fmt.Sprintf("An error occurred: %v", err),
		Timestamp: time.Now(),
	}
}
