package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minListWidth = 28
	maxListWidth = 64
)

// View renders the UI.
func (m Model) View() string {
	if m.picker.form != nil {
		return m.renderPicker()
	}

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Status.Dim)).
		Render(strings.TrimSuffix(strings.Repeat("│\n", m.paneHeight()), "\n"))
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderListPane(),
		separator,
		m.renderDetailPane(),
	)

	footer := m.renderStatusline()
	if m.search.active {
		footer = m.renderSearchLine()
	}
	output := renderFixedLayout(m.ui.height, body, footer)

	switch {
	case m.ui.showHelp:
		output = m.overlayModal(output, m.renderHelpModal())
	case m.session.Flash != nil:
		output = m.overlayModal(output, m.renderFlashModal())
	case m.screen.PromptPurge:
		output = m.overlayModal(output, m.renderPurgeModal())
	}
	return m.ui.alert.Render(output)
}

func (m Model) paneHeight() int {
	return max(1, m.ui.height-1)
}

func (m Model) listWidth() int {
	if m.ui.width <= 0 {
		return minListWidth
	}
	return min(max(m.ui.width*2/5, minListWidth), maxListWidth, m.ui.width)
}

func (m Model) detailWidth() int {
	return max(0, m.ui.width-m.listWidth()-1)
}

func (m Model) renderSearchLine() string {
	line := m.search.input.View()
	style := statusBaseStyle(m.theme)
	if m.ui.width > 0 {
		style = style.Width(m.ui.width)
	}
	return style.Render(line)
}
