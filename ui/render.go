package ui

import (
	"fmt"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"pipechat/chat"
)

// renderMarkdown renders assistant content as terminal markdown. Autolink is
// disabled so plain URLs stay plain and the terminal emulator handles them.
func renderMarkdown(content string, width int) string {
	if width < 20 {
		width = 20
	}

	customExt := markdown.Extensions() &^ parser.Autolink
	p := parser.NewWithExtensions(customExt)
	r := markdown.NewRenderer(width-4, 0)
	doc := p.Parse([]byte(content))
	return strings.TrimRight(string(gomarkdown.Render(doc, r)), "\n")
}

// renderTranscript renders the conversation for the viewport. Raw tool turns
// are not shown as chat bubbles; a dim one-liner marks that a tool ran.
func renderTranscript(turns []chat.Turn, width int) string {
	var b strings.Builder

	for _, turn := range turns {
		switch turn.Role {
		case chat.RoleUser:
			b.WriteString(UserStyle.Render("You: "))
			b.WriteString(turn.Content)
			b.WriteString("\n\n")

		case chat.RoleAssistant:
			if len(turn.ToolCalls) > 0 {
				names := make([]string, len(turn.ToolCalls))
				for i, call := range turn.ToolCalls {
					names[i] = call.Name
				}
				b.WriteString(DimStyle.Render(fmt.Sprintf("⚙ calling %s...", strings.Join(names, ", "))))
				b.WriteString("\n\n")
				if turn.Content == "" {
					continue
				}
			}
			b.WriteString(AssistantStyle.Render("Assistant:"))
			b.WriteString("\n")
			b.WriteString(renderMarkdown(turn.Content, width))
			b.WriteString("\n\n")

		case chat.RoleTool:
			// The result itself feeds the model, not the user.
			b.WriteString(DimStyle.Render(fmt.Sprintf("⚙ %s returned", turn.ToolName)))
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
