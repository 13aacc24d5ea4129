package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update handles all state updates for the TUI model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case tea.MouseMsg:
		// Mouse wheel scrolls the history
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.input.Width = max(msg.Width-8-len(m.input.Prompt), 10)

	if !m.ready {
		m.viewport = newViewport(msg.Width, m.calculateViewportHeight())
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = m.calculateViewportHeight()
	}

	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
	return m, nil
}

// calculateViewportHeight computes the viewport height left over by the
// header, tips, input box and status bar.
func (m *model) calculateViewportHeight() int {
	headerHeight := 2 // title + tips
	inputHeight := 3  // input line + border
	statusBarHeight := 1

	viewportHeight := m.height - headerHeight - inputHeight - statusBarHeight
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	return viewportHeight
}

func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c":
		// Ctrl+C never ends the session; only exit/close save and quit.
		m.appendBlock(hintStyle.Render(interruptMessage))
		return m, nil

	case "ctrl+y":
		m.copyLastOutput()
		return m, nil

	case "pgup", "pgdown":
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case "enter":
		return m.submit()
	}

	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

// submit runs the typed line through the dispatcher.
func (m *model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.refreshSuggestions()

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.logger.Debugf("tui command: %q", line)
	m.appendBlock(commandStyle.Render(m.input.Prompt + line))
	m.status = ""

	res := m.dispatcher.Execute(line)
	if res.Output != "" {
		m.appendBlock(outputStyle.Render(res.Output))
		m.lastOutput = res.Output
	}

	if res.Exit {
		m.exited = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) copyLastOutput() {
	if m.lastOutput == "" {
		m.status = "Nothing to copy yet."
		return
	}
	if err := m.copy(m.lastOutput); err != nil {
		m.logger.Warnf("clipboard copy failed: %v", err)
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Copied last output to clipboard."
}
