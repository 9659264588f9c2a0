package tui

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	styleTagRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	scriptTagRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	tableRe     = regexp.MustCompile(`(?is)<table[^>]*>.*?</table>`)
	tableWrapRe = regexp.MustCompile(`(?i)</?(table|tbody|thead|tfoot)(\s[^>]*)?>`)
	rowOpenRe   = regexp.MustCompile(`(?i)</?tr(\s[^>]*)?>`)
	cellCloseRe = regexp.MustCompile(`(?i)</t[dh]>`)
	cellOpenRe  = regexp.MustCompile(`(?i)<t[dh](\s[^>]*)?>`)
)

// formatRelativeTime renders t relative to now. A zero now means the clock
// has not been sampled yet and an absolute date is shown.
func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.IsZero() {
		return t.Local().Format("Jan 2")
	}
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Local().Format("Jan 2")
	}
}

// cleanHTMLForConversion drops markup that does not survive conversion to
// markdown. Layout tables are flattened to their text.
func cleanHTMLForConversion(html string) string {
	html = styleTagRe.ReplaceAllString(html, "")
	html = scriptTagRe.ReplaceAllString(html, "")
	return tableRe.ReplaceAllStringFunc(html, func(table string) string {
		table = tableWrapRe.ReplaceAllString(table, "")
		table = rowOpenRe.ReplaceAllString(table, "\n")
		table = cellCloseRe.ReplaceAllString(table, " ")
		return cellOpenRe.ReplaceAllString(table, "")
	})
}

// renderMarkdown renders markdown with glamour, falling back to the input.
func (m *Model) renderMarkdown(text string) string {
	if m.renderers.glamourRenderer == nil {
		return text
	}
	rendered, err := m.renderers.glamourRenderer.Render(text)
	if err != nil {
		m.logf("glamour render failed: %v", err)
		return text
	}
	return restoreLinkTextSentinels(strings.TrimRight(rendered, "\n "))
}

func normalizeRawForDisplay(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.ReplaceAll(raw, "\r", "\n")
}

func formatSize(size int64) string {
	switch {
	case size < 0:
		return ""
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}

func stripZeroWidth(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 0x034F, 0x200B, 0x200C, 0x200D, 0x200E, 0x200F, 0x2060, 0xFEFF:
			return -1
		}
		return r
	}, text)
}

// stripLeadingZeroWidth trims combining and zero-width runes that would
// otherwise attach to the cell before a truncated string.
func stripLeadingZeroWidth(text string) string {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError && size == 1 {
			break
		}
		if runewidth.RuneWidth(r) == 0 || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me) {
			text = text[size:]
			continue
		}
		break
	}
	return text
}

func renderFixedLayout(height int, body, footer string) string {
	footerHeight := lipgloss.Height(footer)
	bodyHeight := max(0, height-footerHeight)
	bodyStyle := lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight)
	body = bodyStyle.Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// truncateToWidth cuts text to maxWidth cells, ending in "..." when cut.
func truncateToWidth(text string, maxWidth int) string {
	text = stripLeadingZeroWidth(text)
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return runewidth.Truncate(text, maxWidth, "...")
}
