// Package tui provides the terminal chat interface for docchat.
package tui

import "github.com/charmbracelet/lipgloss"

// Base palette
var (
	colorPrimary  = lipgloss.Color("#7aa2f7")
	colorAccent   = lipgloss.Color("#bb9af7")
	colorError    = lipgloss.Color("#f7768e")
	colorText     = lipgloss.Color("#c0caf5")
	colorTextDim  = lipgloss.Color("#565f89")
	colorTextMute = lipgloss.Color("#3b4261")
	colorBorder   = lipgloss.Color("#3b4261")
)

var (
	// Header panel
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	// Messages area panel
	messagesAreaStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(0, 1)

	// User message
	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)

	// Bot message
	botLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	botBubbleStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Document upload notice
	noticeStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true).
			PaddingLeft(2)

	// Input area panel
	inputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Typing indicator
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Transient status line (clipboard, upload feedback)
	flashStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true).
			PaddingLeft(1)

	// Welcome screen
	welcomeIconStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true).
				Align(lipgloss.Center)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Align(lipgloss.Center)
)
