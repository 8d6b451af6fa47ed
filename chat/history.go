package chat

// History is the append-only conversation log for one session. It is created
// empty at session start, grows only through Append, and is discarded when
// the session ends. It is owned by the single active round and is never
// accessed concurrently.
type History struct {
	turns []Turn
}

// NewHistory returns an empty log.
func NewHistory() *History {
	return &History{}
}

// Append adds a turn to the end of the log. Turns are never mutated or
// removed afterwards.
func (h *History) Append(t Turn) {
	h.turns = append(h.turns, t)
}

// Turns returns the full log in append order.
func (h *History) Turns() []Turn {
	return h.turns
}

// Len returns the number of turns in the log.
func (h *History) Len() int {
	return len(h.turns)
}

// Last returns the most recent turn, or false if the log is empty.
func (h *History) Last() (Turn, bool) {
	if len(h.turns) == 0 {
		return Turn{}, false
	}
	return h.turns[len(h.turns)-1], true
}

// Window selects the slice of the log to transmit to the completion API.
//
// If the log ends with a user turn, the window runs from the nearest prior
// assistant turn (of any kind) through the end, so the model always sees its
// own last statement; with no prior assistant turn it is just the final user
// turn. If the log ends with a tool turn, the window is the nearest prior
// assistant turn carrying tool calls plus the contiguous tool turns that
// follow it. Any other trailing state yields an empty window.
//
// The tool branch is a correctness requirement, not a token optimization:
// the completion API rejects a request unless a tool-call assistant message
// is immediately followed by exactly its matching tool results.
func Window(turns []Turn) []Turn {
	if len(turns) == 0 {
		return nil
	}

	switch turns[len(turns)-1].Role {
	case RoleUser:
		for i := len(turns) - 2; i >= 0; i-- {
			if turns[i].Role == RoleAssistant {
				return turns[i:]
			}
		}
		return turns[len(turns)-1:]

	case RoleTool:
		for i := len(turns) - 1; i >= 0; i-- {
			if turns[i].RequestsTools() {
				end := i + 1
				for end < len(turns) && turns[end].Role == RoleTool {
					end++
				}
				return turns[i:end]
			}
		}
		return nil
	}

	return nil
}
