package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/entrhq/assistant/pkg/logging"
)

const (
	welcomeMessage   = "Welcome to the assistant bot!"
	defaultPrompt    = "Enter a command: "
	interruptMessage = "Type 'exit' or 'close' to quit."
)

// model represents the state of the TUI application.
type model struct {
	// Bubble Tea components
	viewport viewport.Model
	input    textinput.Model

	dispatcher Dispatcher
	logger     *logging.Logger

	// copy writes text to the system clipboard.
	copy func(string) error

	// Content buffers
	content    *strings.Builder
	lastOutput string // Output of the most recent command, for ctrl+y
	status     string // One-line feedback in the bottom bar

	// Window dimensions
	width  int
	height int
	ready  bool

	// exited is set once exit/close ran; the data is saved by then.
	exited bool
}

func newModel(dispatcher Dispatcher, prompt string, logger *logging.Logger) *model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "type a command, tab completes"
	ti.ShowSuggestions = true
	ti.Focus()

	m := &model{
		input:      ti,
		dispatcher: dispatcher,
		logger:     logger,
		copy:       func(string) error { return nil },
		content:    &strings.Builder{},
	}
	m.appendBlock(headerStyle.Render(welcomeMessage))
	return m
}

// appendBlock adds one rendered block to the scrollback and keeps the
// viewport pinned to the newest line.
func (m *model) appendBlock(block string) {
	if m.content.Len() > 0 {
		m.content.WriteString("\n")
	}
	m.content.WriteString(block)

	if m.ready {
		m.viewport.SetContent(m.content.String())
		m.viewport.GotoBottom()
	}
}

// refreshSuggestions offers command names only while the first word is
// being typed.
func (m *model) refreshSuggestions() {
	m.input.SetSuggestions(m.dispatcher.Registry().Complete(m.input.Value()))
}
