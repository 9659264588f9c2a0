package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/mailbox"
)

func (m Model) renderDetailPane() string {
	width := m.detailWidth()
	height := m.paneHeight()
	pane := lipgloss.NewStyle().Width(width).MaxWidth(width).Height(height).MaxHeight(height)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Status.Dim))

	list, ok := m.screen.State.(mailbox.ShowingList)
	if !ok {
		return pane.Render("")
	}
	switch list.Detail.(type) {
	case mailbox.NoMessage:
		return pane.Render(" " + dimStyle.Render("Select a message"))
	case mailbox.LoadingMessage:
		return pane.Render(" " + m.ui.spinner.View() + " Loading message...")
	}
	return pane.Render(m.detail.viewport.View())
}

// refreshDetail re-renders the viewport when the visible message, body mode
// or pane width changed.
func (m *Model) refreshDetail() {
	visible, ok := m.screen.Visible()
	if !ok {
		if m.detail.renderKey != "" {
			m.detail.renderKey = ""
			m.detail.viewport.SetContent("")
		}
		return
	}

	width := m.detailWidth()
	renderKey := fmt.Sprintf("%s/%s|%d|%d", m.screen.Mailbox, visible.Message.ID, m.screen.BodyMode, width)
	if renderKey == m.detail.renderKey {
		return
	}
	sameMessage := strings.HasPrefix(m.detail.renderKey, m.screen.Mailbox+"/"+visible.Message.ID+"|")
	m.detail.renderKey = renderKey

	m.ensureRendererWidth(max(width-2, 20))
	m.detail.viewport.Width = width
	m.detail.viewport.Height = m.paneHeight()
	content := m.renderMessage(visible.Message, m.screen.BodyMode, width)
	m.detail.viewport.SetContent(content)
	if !sameMessage {
		m.detail.viewport.GotoTop()
	}
	m.debugDumpMessage(visible.Message, m.screen.BodyMode, content)
}

func (m *Model) ensureRendererWidth(width int) {
	if m.renderers.glamourWidth == width && m.renderers.glamourRenderer != nil {
		return
	}
	r, err := newGlamourRenderer(m.theme, width)
	if err != nil {
		m.logf("glamour renderer width=%d: %v", width, err)
		return
	}
	m.renderers.glamourRenderer = r
	m.renderers.glamourWidth = width
}

func (m *Model) renderMessage(msg inbucket.Message, mode mailbox.BodyMode, width int) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Detail.LabelFg)).
		Bold(true)
	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Detail.ValueFg))
	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Detail.WarningFg))
	linkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Detail.LinkFg))
	ruleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Detail.BorderFg))

	var b strings.Builder
	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", label+":")))
		b.WriteString(valueStyle.Render(stripZeroWidth(value)))
		b.WriteString("\n")
	}

	field("From", msg.From)
	field("To", strings.Join(msg.To, ", "))
	if !msg.Date.IsZero() {
		field("Date", msg.Date.Local().Format("Mon, Jan 2, 2006 at 3:04 PM"))
	}
	field("Subject", msg.Subject)
	if msg.Size > 0 {
		field("Size", formatSize(msg.Size))
	}

	for i, att := range msg.Attachments {
		label := ""
		if i == 0 {
			label = "Files:"
		}
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", label)))
		b.WriteString(linkStyle.Render(att.FileName))
		if att.ContentType != "" {
			b.WriteString(valueStyle.Render(" (" + att.ContentType + ")"))
		}
		b.WriteString("\n")
	}

	for _, mimeErr := range msg.Errors {
		prefix := "Warning"
		if mimeErr.Severe {
			prefix = "Error"
		}
		b.WriteString(" ")
		b.WriteString(warningStyle.Render(fmt.Sprintf("%s: %s %s", prefix, mimeErr.Name, mimeErr.Detail)))
		b.WriteString("\n")
	}

	b.WriteString(ruleStyle.Render(strings.Repeat("─", max(width, 0))))
	b.WriteString("\n")
	b.WriteString(m.renderBody(msg, mode, width))
	return b.String()
}

func (m *Model) renderBody(msg inbucket.Message, mode mailbox.BodyMode, width int) string {
	if mode == mailbox.SafeHTML && msg.HasHTML() {
		cleaned := cleanHTMLForConversion(msg.Body.HTML)
		markdown, err := m.renderers.htmlConverter.ConvertString(cleaned)
		if err != nil {
			m.logf("html conversion failed id=%s: %v", msg.ID, err)
		} else {
			return m.renderMarkdown(markdown)
		}
	}

	text := normalizeRawForDisplay(msg.Body.Text)
	if strings.TrimSpace(text) == "" {
		return lipgloss.NewStyle().Italic(true).Render(" [No message body]")
	}
	return wordwrap.String(text, max(width-2, 20))
}
