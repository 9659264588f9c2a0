package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// overlayModal centers a modal dialog on top of the base view.
func (m Model) overlayModal(baseView string, modal string) string {
	dialogBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Modal.BorderFg)).
		Padding(1, 2)

	return overlay.Composite(
		dialogBoxStyle.Render(modal),
		baseView,
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
}

func (m Model) modalTitle(width int, title string, color string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(color)).
		Render(title)
}

func (m Model) modalFooter(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(m.theme.Modal.FooterFg)).
		Render(text)
}

func (m Model) renderHelpModal() string {
	var b strings.Builder
	modalWidth := max(40, min(80, m.ui.width-10))

	b.WriteString(m.modalTitle(modalWidth, "Keyboard Shortcuts", m.theme.Modal.TitleFg))
	b.WriteString("\n\n")

	helpModel := m.ui.help
	helpModel.ShowAll = true
	helpModel.Width = max(10, modalWidth-4)
	b.WriteString(helpModel.View(m.keyMap()))

	b.WriteString("\n\n")
	b.WriteString(m.modalFooter(modalWidth, "Press any key to close"))
	return b.String()
}

// renderFlashModal shows the session flash as a title over a key/value table.
func (m Model) renderFlashModal() string {
	flash := m.session.Flash
	modalWidth := max(40, min(70, m.ui.width-10))

	keyWidth := 0
	for _, row := range flash.Table {
		keyWidth = max(keyWidth, lipgloss.Width(row.Key))
	}
	keyStyle := lipgloss.NewStyle().
		Width(keyWidth + 2).
		Bold(true).
		Foreground(lipgloss.Color(m.theme.Modal.KeyFg))
	valueStyle := lipgloss.NewStyle().Width(max(modalWidth-keyWidth-2, 10))

	var b strings.Builder
	b.WriteString(m.modalTitle(modalWidth, flash.Title, m.theme.Modal.DangerFg))
	b.WriteString("\n\n")
	for _, row := range flash.Table {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(row.Key), valueStyle.Render(row.Value)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.modalFooter(modalWidth, "Press any key to dismiss"))
	return b.String()
}

func (m Model) renderPurgeModal() string {
	modalWidth := 50
	var b strings.Builder
	b.WriteString(m.modalTitle(modalWidth, "Purge mailbox", m.theme.Modal.DangerFg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(modalWidth).Align(lipgloss.Center).
		Render("Delete every message in " + m.screen.Mailbox + "?"))
	b.WriteString("\n\n")
	km := m.keyMap()
	b.WriteString(m.modalFooter(modalWidth,
		km.prompt.Confirm.Help().Key+" purge • "+km.prompt.Cancel.Help().Key+" cancel"))
	return b.String()
}
