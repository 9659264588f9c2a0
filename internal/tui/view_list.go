package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.withmatt.com/bucket/internal/mailbox"
)

func (m Model) renderListPane() string {
	width := m.listWidth()
	height := m.paneHeight()
	pane := lipgloss.NewStyle().Width(width).MaxWidth(width).Height(height).MaxHeight(height)

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Status.Dim))

	if _, ok := m.screen.State.(mailbox.LoadingList); ok {
		return pane.Render(" " + m.ui.spinner.View() + " Loading " + m.screen.Mailbox + "...")
	}

	headers := m.displayed()
	if len(headers) == 0 {
		list, _ := m.screen.List()
		text := "No messages"
		if len(list.Headers) > 0 {
			text = fmt.Sprintf("No results for %q", strings.TrimSpace(m.screen.SearchInput))
		}
		return pane.Render(" " + dimStyle.Render(text))
	}

	unseenStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.List.UnseenFg)).
		Bold(true)
	seenStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.List.SeenFg))
	dateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.List.DateFg))
	cursorBarStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.List.SelectedFg))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.List.SelectedFg)).
		Background(lipgloss.Color(m.theme.List.SelectedBg)).
		Bold(true)

	selected := m.selectedID()
	contentWidth := max(width-2, 0)
	start, end := m.visibleRange(len(headers))

	var b strings.Builder
	for i := start; i < end; i++ {
		h := headers[i]

		prefix := " "
		if i == m.list.cursor {
			prefix = cursorBarStyle.Render("┃")
		}

		titleStyle := seenStyle
		marker := " "
		if !h.Seen {
			titleStyle = unseenStyle
			marker = unseenStyle.Render("●")
		}
		if h.ID == selected {
			titleStyle = selectedStyle
		}

		date := formatRelativeTime(h.Date, m.screen.Now)
		from := senderName(h.From)
		fromWidth := max(contentWidth-lipgloss.Width(date)-3, 0)
		from = truncateToWidth(from, fromWidth)
		gap := max(contentWidth-2-lipgloss.Width(from)-lipgloss.Width(date), 1)

		subject := strings.TrimSpace(stripZeroWidth(h.Subject))
		if subject == "" {
			subject = "(no subject)"
		}
		subject = truncateToWidth(subject, max(contentWidth-2, 0))

		b.WriteString(prefix + marker + " " + titleStyle.Render(from) + strings.Repeat(" ", gap) + dateStyle.Render(date))
		b.WriteString("\n")
		b.WriteString(prefix + "  " + titleStyle.Render(subject))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return pane.Render(b.String())
}

// senderName extracts the display name from "Name <addr>".
func senderName(from string) string {
	from = strings.TrimSpace(stripZeroWidth(from))
	if idx := strings.Index(from, "<"); idx > 0 {
		if name := strings.Trim(strings.TrimSpace(from[:idx]), `"`); name != "" {
			return name
		}
	}
	return from
}
