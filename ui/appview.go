package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/mattn/go-runewidth"

	"pipechat/chat"
	"pipechat/config"
	"pipechat/gateway"
	"pipechat/provider"
)

// AppView is the chat shell: transcript viewport, input box, status bar and
// the resource picker modal. It carries no protocol logic of its own; one
// chat.Round runs at a time and input stays disabled until it completes.
type AppView struct {
	cfg       *config.Config
	completer provider.Completer
	history   *chat.History
	gw        *gateway.Client

	tools     []mcptypes.Tool
	resources []mcptypes.Resource

	// transcript is a snapshot of the history taken between rounds, so the
	// view never reads the log while a round goroutine appends to it.
	transcript []chat.Turn
	notices    []string
	status     string
	statusErr  bool

	viewport       viewport.Model
	textarea       textarea.Model
	loadingSpinner spinner.Model
	picker         *resourcePicker

	width   int
	height  int
	ready   bool
	busy    bool
	version string
}

// NewAppView creates the shell. completer may be nil when no API key is
// configured; chat submissions then produce a status error instead.
func NewAppView(cfg *config.Config, completer provider.Completer, version string) AppView {
	ta := textarea.New()
	ta.Placeholder = "Enter your message here... (/help for commands)"
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AssistantStyle

	return AppView{
		cfg:            cfg,
		completer:      completer,
		history:        chat.NewHistory(),
		gw:             gateway.NewClient(cfg.GatewayAddress, cfg.CallTimeout),
		status:         "Not Connected",
		textarea:       ta,
		loadingSpinner: sp,
		version:        version,
	}
}

func (a AppView) Init() tea.Cmd {
	return textarea.Blink
}

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		chromeHeight := a.textarea.Height() + 3
		if !a.ready {
			a.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = msg.Height - chromeHeight
		}
		a.textarea.SetWidth(msg.Width - 2)
		a.refreshViewport()
		return a, nil

	case spinner.TickMsg:
		if !a.busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		return a, cmd

	case roundCompleteMsg:
		a.busy = false
		a.transcript = append([]chat.Turn(nil), a.history.Turns()...)
		a.refreshViewport()
		return a, nil

	case connectCompleteMsg:
		if msg.Err != nil {
			a.setStatus(msg.Err.Error(), true)
			a.tools = nil
			a.resources = nil
			return a, nil
		}
		a.tools = msg.Result.Tools
		a.resources = msg.Result.Resources
		a.setStatus(msg.Result.Status, false)
		a.addNotice(fmt.Sprintf("Discovered %d tools and %d resources.", len(a.tools), len(a.resources)))
		a.refreshViewport()
		return a, nil

	case resourceReadMsg:
		if msg.Err != nil {
			a.addNotice(fmt.Sprintf("Error reading resource %s: %v", msg.URI, msg.Err))
		} else {
			a.addNotice(fmt.Sprintf("Resource %s:\n%s", msg.URI, msg.Content))
		}
		a.refreshViewport()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.picker != nil {
		return a.handlePickerKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "ctrl+y":
		a.copyLastReply()
		return a, nil

	case "enter":
		if a.busy {
			return a, nil
		}
		text := strings.TrimSpace(a.textarea.Value())
		if text == "" {
			return a, nil
		}
		a.textarea.Reset()
		if strings.HasPrefix(text, "/") {
			return a.handleCommand(text)
		}
		return a.submitChat(text)
	}

	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

func (a AppView) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		a.picker = nil
		return a, nil
	case "up":
		a.picker.moveSelection(-1)
		return a, nil
	case "down":
		a.picker.moveSelection(1)
		return a, nil
	case "enter":
		res, ok := a.picker.current()
		a.picker = nil
		if !ok {
			return a, nil
		}
		return a, a.readResourceCmd(res.URI)
	}

	var cmd tea.Cmd
	a.picker.input, cmd = a.picker.input.Update(msg)
	a.picker.filter()
	return a, cmd
}

func (a AppView) handleCommand(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(text)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case "/connect":
		if arg != "" {
			a.gw = gateway.NewClient(arg, a.cfg.CallTimeout)
		}
		a.setStatus(fmt.Sprintf("Connecting to %s...", a.gw.Address()), false)
		return a, a.connectCmd()

	case "/resources":
		if len(a.resources) == 0 {
			a.setStatus("No resources discovered. Connect to a gateway first.", true)
			return a, nil
		}
		a.picker = newResourcePicker(a.resources)
		return a, nil

	case "/read":
		if arg == "" {
			a.setStatus("Usage: /read <uri>", true)
			return a, nil
		}
		return a, a.readResourceCmd(arg)

	case "/model":
		if arg == "" || a.completer == nil {
			a.setStatus("Usage: /model <name>", true)
			return a, nil
		}
		a.completer.SetModel(arg)
		a.setStatus(fmt.Sprintf("Model set to %s", arg), false)
		return a, nil

	case "/help":
		a.addNotice("Commands: /connect [url], /resources, /read <uri>, /model <name>, /quit. Ctrl+y copies the last reply.")
		a.refreshViewport()
		return a, nil

	case "/quit":
		return a, tea.Quit
	}

	a.setStatus(fmt.Sprintf("Unknown command: %s", fields[0]), true)
	return a, nil
}

func (a AppView) submitChat(text string) (tea.Model, tea.Cmd) {
	if a.completer == nil {
		a.setStatus("No API key configured. Set PIPECHAT_API_KEY or edit settings.toml.", true)
		return a, nil
	}

	a.busy = true
	a.transcript = append(a.transcript, chat.Turn{Role: chat.RoleUser, Content: text})
	a.refreshViewport()

	return a, tea.Batch(a.loadingSpinner.Tick, a.runRoundCmd(text))
}

func (a AppView) runRoundCmd(text string) tea.Cmd {
	round := &chat.Round{
		Completer: a.completer,
		Tools:     a.tools,
	}
	if len(a.tools) > 0 {
		round.Gateway = a.gw
	}
	history := a.history

	return func() tea.Msg {
		round.Run(context.Background(), history, text)
		return roundCompleteMsg{}
	}
}

func (a AppView) connectCmd() tea.Cmd {
	gw := a.gw
	return func() tea.Msg {
		result, err := gw.Connect(context.Background())
		return connectCompleteMsg{Result: result, Err: err}
	}
}

func (a AppView) readResourceCmd(uri string) tea.Cmd {
	gw := a.gw
	return func() tea.Msg {
		content, err := gw.ReadResource(context.Background(), uri)
		return resourceReadMsg{URI: uri, Content: content, Err: err}
	}
}

func (a *AppView) copyLastReply() {
	for i := len(a.transcript) - 1; i >= 0; i-- {
		turn := a.transcript[i]
		if turn.Role == chat.RoleAssistant && turn.Content != "" {
			if err := clipboard.WriteAll(turn.Content); err != nil {
				a.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
				return
			}
			a.setStatus("Copied last reply to clipboard.", false)
			return
		}
	}
	a.setStatus("Nothing to copy yet.", true)
}

func (a *AppView) setStatus(status string, isErr bool) {
	a.status = status
	a.statusErr = isErr
	if config.DebugLog != nil {
		config.DebugLog.Printf("[UI] status: %s", status)
	}
}

func (a *AppView) addNotice(notice string) {
	a.notices = append(a.notices, notice)
}

func (a *AppView) refreshViewport() {
	if !a.ready {
		return
	}
	content := renderTranscript(a.transcript, a.viewport.Width)
	for _, notice := range a.notices {
		content += DimStyle.Render(notice) + "\n\n"
	}
	a.viewport.SetContent(content)
	a.viewport.GotoBottom()
}

func (a AppView) statusLine() string {
	model := "no provider"
	if a.completer != nil {
		model = a.completer.Model()
	}
	gatewayState := "gateway: not connected"
	if len(a.tools) > 0 || len(a.resources) > 0 {
		gatewayState = fmt.Sprintf("gateway: %d tools", len(a.tools))
	}

	status := a.status
	line := fmt.Sprintf(" %s │ %s │ %s", model, gatewayState, status)
	line = runewidth.Truncate(line, a.width, "…")
	if a.statusErr {
		return ErrorStyle.Render(line)
	}
	return StatusStyle.Render(line)
}

func (a AppView) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.picker != nil {
		return a.picker.view(a.width)
	}

	var b strings.Builder
	b.WriteString(a.viewport.View())
	b.WriteString("\n")
	if a.busy {
		b.WriteString(a.loadingSpinner.View())
		b.WriteString(DimStyle.Render(" Waiting for response..."))
	}
	b.WriteString("\n")
	b.WriteString(a.textarea.View())
	b.WriteString("\n")
	b.WriteString(a.statusLine())
	return b.String()
}
