package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const tips = "  Tab completes a command • PgUp/PgDn scroll • Ctrl+Y copies the last output • exit or close to quit"

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

// View renders the entire TUI interface.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render("  Assistant"),
		tipsStyle.Render(tips),
		m.viewport.View(),
		inputBoxStyle.Width(m.width-4).Render(m.input.View()),
		m.buildStatusBar(),
	)
}

// buildStatusBar renders the bottom bar with the last status message.
func (m *model) buildStatusBar() string {
	if m.status == "" {
		return statusBarStyle.Width(m.width).Render("help lists every command")
	}
	return statusBarStyle.Width(m.width).Render(statusStyle.Render(m.status))
}
