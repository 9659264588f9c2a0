package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	windowTitleMaxRunes = 80
	windowTitleSuffix   = " - bucket"
)

func (m Model) setWindowTitleCmd() tea.Cmd {
	return tea.SetWindowTitle(m.windowTitle())
}

// windowTitle names the open message, or the mailbox when none is open.
func (m Model) windowTitle() string {
	if visible, ok := m.screen.Visible(); ok {
		if subject := strings.TrimSpace(stripZeroWidth(visible.Message.Subject)); subject != "" {
			return formatWindowTitle(subject)
		}
		if from := senderName(visible.Message.From); from != "" {
			return formatWindowTitle("Message from " + from)
		}
		return formatWindowTitle("Message")
	}
	return formatWindowTitle(m.screen.Mailbox)
}

func formatWindowTitle(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return "bucket"
	}
	return truncateTitle(body, windowTitleMaxRunes-len([]rune(windowTitleSuffix))) + windowTitleSuffix
}

func truncateTitle(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	if maxRunes <= 3 {
		return strings.Repeat(".", max(maxRunes, 0))
	}
	return string(runes[:maxRunes-3]) + "..."
}
