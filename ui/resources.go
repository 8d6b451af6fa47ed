package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"
)

// resourcePicker is the modal list of gateway resources with fuzzy
// filtering, opened by /resources.
type resourcePicker struct {
	input     textinput.Model
	resources []mcptypes.Resource
	filtered  []mcptypes.Resource
	selected  int
}

func newResourcePicker(resources []mcptypes.Resource) *resourcePicker {
	input := textinput.New()
	input.Placeholder = "Type to filter resources..."
	input.Focus()

	return &resourcePicker{
		input:     input,
		resources: resources,
		filtered:  resources,
	}
}

func resourceLabel(r mcptypes.Resource) string {
	if r.Name != "" {
		return r.Name
	}
	return r.URI
}

// filter re-applies the fuzzy match to the current input value.
func (p *resourcePicker) filter() {
	value := p.input.Value()
	if value == "" {
		p.filtered = p.resources
		p.selected = 0
		return
	}

	targets := make([]string, len(p.resources))
	for i, r := range p.resources {
		targets[i] = resourceLabel(r)
	}

	matches := fuzzy.Find(value, targets)
	filtered := make([]mcptypes.Resource, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, p.resources[m.Index])
	}
	p.filtered = filtered
	p.selected = 0
}

func (p *resourcePicker) moveSelection(delta int) {
	if len(p.filtered) == 0 {
		return
	}
	p.selected += delta
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected >= len(p.filtered) {
		p.selected = len(p.filtered) - 1
	}
}

// current returns the highlighted resource, if any.
func (p *resourcePicker) current() (mcptypes.Resource, bool) {
	if len(p.filtered) == 0 {
		return mcptypes.Resource{}, false
	}
	return p.filtered[p.selected], true
}

func (p *resourcePicker) view(width int) string {
	modalWidth := width - 4
	if modalWidth > 80 {
		modalWidth = 80
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dimColor).
		Padding(1, 2).
		Width(modalWidth)

	var rows []string
	rows = append(rows, TitleStyle.Render("Gateway Resources"), "", p.input.View(), "")

	if len(p.filtered) == 0 {
		rows = append(rows, DimStyle.Render("No matching resources"))
	}
	for i, r := range p.filtered {
		label := runewidth.Truncate(resourceLabel(r), modalWidth-8, "…")
		uri := runewidth.Truncate(r.URI, modalWidth-10, "…")
		line := fmt.Sprintf("%s  %s", label, DimStyle.Render(uri))
		if i == p.selected {
			line = SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	rows = append(rows, "", DimStyle.Render("↑/↓ Navigate  Enter Read  Esc Close"))
	return modalStyle.Render(strings.Join(rows, "\n"))
}
