package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/diogo/docchat/internal/errors"
	"github.com/diogo/docchat/internal/models"
	"github.com/diogo/docchat/internal/render"
)

// Message types for the TUI
type (
	// sessionChangedMsg is sent whenever the session's transcript or flight
	// state changed and the view must re-read the snapshot
	sessionChangedMsg struct{}

	clipboardCopiedMsg struct {
		err error
	}

	uploadReadMsg struct {
		fileName string
		err      error
	}
)

// Session is the surface of the conversation controller the TUI depends on
type Session interface {
	Submit(text string) error
	UploadDocument(data []byte, fileName string) error
	Snapshot() []models.Message
	Awaiting() bool
	Updates() <-chan struct{}
	Close()
}

// Model represents the TUI state
type Model struct {
	session   Session
	modelName string

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	ready bool
	err   error
	flash string // transient feedback line

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model around a session
func NewChatModel(session Session, modelName string) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask anything... (/upload <file> to add a document)"
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		session:   session,
		modelName: modelName,
		textarea:  ta,
		spinner:   s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.waitForSessionUpdate(),
	)
}

// waitForSessionUpdate re-arms the subscription to session change events
func (m Model) waitForSessionUpdate() tea.Cmd {
	updates := m.session.Updates()
	return func() tea.Msg {
		<-updates
		return sessionChangedMsg{}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		inputHeight := 5
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m, tea.Quit

		case "ctrl+y":
			return m, m.copyLastAnswer()

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				break
			}

			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			m.flash = ""
			m.err = nil

			if path, ok := strings.CutPrefix(input, "/upload "); ok {
				m.textarea.Reset()
				return m, m.uploadDocument(strings.TrimSpace(path))
			}

			if err := m.session.Submit(input); err != nil {
				// Keep the input so it can be resent once the session is free.
				if err == apierrors.ErrResponseInFlight {
					m.flash = "Still waiting for the previous response..."
				} else {
					m.err = err
				}
				return m, nil
			}

			m.textarea.Reset()
			m.refreshViewport()
			m.viewport.GotoBottom()
			return m, tea.Batch(m.spinner.Tick, m.waitForSessionUpdate())
		}

	case sessionChangedMsg:
		m.refreshViewport()
		m.viewport.GotoBottom()
		cmds = append(cmds, m.waitForSessionUpdate())
		if m.session.Awaiting() {
			cmds = append(cmds, m.spinner.Tick)
		}

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.flash = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.flash = "Answer copied to clipboard"
		}

	case uploadReadMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.flash = fmt.Sprintf("Uploading %s...", msg.fileName)
		}

	case spinner.TickMsg:
		if m.session.Awaiting() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// uploadDocument reads the file and hands it to the session
func (m Model) uploadDocument(path string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return uploadReadMsg{err: fmt.Errorf("failed to read %s: %w", path, err)}
		}

		fileName := filepath.Base(path)
		if err := session.UploadDocument(data, fileName); err != nil {
			return uploadReadMsg{err: err}
		}
		return uploadReadMsg{fileName: fileName}
	}
}

// copyLastAnswer copies the most recent bot answer to the clipboard
func (m Model) copyLastAnswer() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		messages := session.Snapshot()
		for i := len(messages) - 1; i >= 0; i-- {
			if messages[i].Role == models.RoleBot {
				return clipboardCopiedMsg{err: clipboard.WriteAll(messages[i].Content)}
			}
		}
		return clipboardCopiedMsg{err: fmt.Errorf("no answer to copy yet")}
	}
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	header := headerStyle.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Center,
			titleStyle.Render("✦ docchat"),
			hintStyle.Render("  •  "),
			subtitleStyle.Render(m.modelName),
		),
	)
	sections = append(sections, header)

	var messagesContent string
	if len(m.session.Snapshot()) == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	var inputContent string
	if m.session.Awaiting() {
		inputContent = fmt.Sprintf("%s %s", m.spinner.View(), loadingStyle.Render("Typing..."))
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	if m.flash != "" {
		sections = append(sections, flashStyle.Render(m.flash))
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("⚠ Error: %v", m.err)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the empty-transcript screen
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		welcomeIconStyle.Width(width).Render("✦"),
		"",
		welcomeTitleStyle.Width(width).Render("Welcome to docchat"),
		"",
		welcomeStyle.Width(width).Render("Ask anything, or /upload a document to chat about it"),
		"",
	)

	topPadding := (height - lipgloss.Height(content)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom shortcut bar
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"/upload <file>", "Add document"},
		{"Ctrl+Y", "Copy answer"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		))
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// refreshViewport redraws the transcript into the viewport
func (m *Model) refreshViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.session.Snapshot() {
		if i > 0 {
			content.WriteString("\n")
		}

		switch {
		case msg.Kind == models.KindDocument:
			content.WriteString(noticeStyle.Width(bubbleWidth).Render(msg.Content))

		case msg.Role == models.RoleUser:
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)

		default:
			label := botLabelStyle.Render("✦ Gemini")

			rendered, err := render.MarkdownWithWidth(msg.Content, bubbleWidth-4)
			if err != nil {
				rendered = msg.Content
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := botBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI and tears the session down on exit
func RunChat(session Session, modelName string) error {
	m := NewChatModel(session, modelName)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	session.Close()
	return err
}
