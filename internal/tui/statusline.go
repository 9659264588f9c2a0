package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.withmatt.com/bucket/internal/config"
	"go.withmatt.com/bucket/internal/mailbox"
)

type statusSegment struct {
	text  string
	style lipgloss.Style
}

const statusSeparatorGlyph = ""

func statusBaseStyle(theme config.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Bg)).
		Foreground(lipgloss.Color(theme.Status.Fg))
}

func statusTextSegment(theme config.Theme, text string) statusSegment {
	return statusSegment{text: text, style: statusBaseStyle(theme).Padding(0, 1)}
}

func statusDimSegment(theme config.Theme, text string) statusSegment {
	style := statusBaseStyle(theme).
		Foreground(lipgloss.Color(theme.Status.Dim)).
		Padding(0, 1)
	return statusSegment{text: text, style: style}
}

func statusColorSegment(bg, fg, text string) statusSegment {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(true).
		Padding(0, 1)
	return statusSegment{text: text, style: style}
}

func statusPowerlineSeparator(leftBg string, rightBg string) statusSegment {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(rightBg)).
		Foreground(lipgloss.Color(leftBg))
	return statusSegment{text: statusSeparatorGlyph, style: style}
}

// renderStatusline shows the mailbox, the router location and the screen
// state on the left and body mode plus hints on the right.
func (m Model) renderStatusline() string {
	t := m.theme
	left := []statusSegment{
		statusColorSegment(t.Status.ModeBg, t.Status.ModeFg, "BUCKET"),
		statusPowerlineSeparator(t.Status.ModeBg, t.Status.PathBg),
		statusColorSegment(t.Status.PathBg, t.Status.PathFg, m.location()),
		statusPowerlineSeparator(t.Status.PathBg, t.Status.Bg),
	}

	switch {
	case m.isLoadingList():
		left = append(left, statusDimSegment(t, m.ui.spinner.View()+" loading"))
	default:
		left = append(left, statusTextSegment(t, m.countLabel()))
		if m.screen.Loading() {
			left = append(left, statusDimSegment(t, m.ui.spinner.View()))
		}
	}

	var right []statusSegment
	if filter := strings.TrimSpace(m.screen.SearchInput); filter != "" {
		right = append(right, statusDimSegment(t, "/"+filter))
	}
	if _, ok := m.screen.Visible(); ok {
		right = append(right, statusColorSegment(t.Detail.BodyModeBg, t.Detail.BodyModeFg, strings.ToUpper(m.screen.BodyMode.String())))
	}
	right = append(right, statusDimSegment(t, "? help"))

	return renderStatusline(t, m.ui.width, left, right)
}

func (m Model) isLoadingList() bool {
	_, ok := m.screen.State.(mailbox.LoadingList)
	return ok
}

func (m Model) countLabel() string {
	list, _ := m.screen.List()
	total := len(list.Headers)
	shown := len(m.displayed())
	noun := "messages"
	if total == 1 {
		noun = "message"
	}
	if shown != total {
		return fmt.Sprintf("%d/%d %s", shown, total, noun)
	}
	return fmt.Sprintf("%d %s", total, noun)
}

func renderStatusline(
	theme config.Theme,
	width int,
	left []statusSegment,
	right []statusSegment,
) string {
	leftLine := renderStatusSegments(left)
	rightLine := renderStatusSegments(right)

	if width <= 0 {
		return leftLine + statusBaseStyle(theme).Render(" ") + rightLine
	}

	gap := max(width-lipgloss.Width(leftLine)-lipgloss.Width(rightLine), 1)
	filler := statusBaseStyle(theme).Render(strings.Repeat(" ", gap))
	return leftLine + filler + rightLine
}

func renderStatusSegments(segments []statusSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		b.WriteString(seg.style.Render(seg.text))
	}
	return b.String()
}
