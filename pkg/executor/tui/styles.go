package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // Soft pastel salmon pink - primary accent
	coralPink   = lipgloss.Color("#FFCCCB") // Lighter coral accent - echoed commands
	mintGreen   = lipgloss.Color("#A8E6CF") // Soft mint green - status messages
	mutedGray   = lipgloss.Color("#6B7280") // Muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // Bright white - command output
)

var (
	// Text Styles
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	commandStyle = lipgloss.NewStyle().
			Foreground(coralPink).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	// Container Styles
	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)
)
