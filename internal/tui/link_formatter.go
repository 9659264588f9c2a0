package tui

import (
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour/ansi"
)

// Link text is wrapped by glamour before hyperlinks are emitted. Word
// breaking characters are swapped for private-use runes so an OSC 8 link
// stays in one piece.
var linkSentinels = map[rune]rune{
	',': '\ue001',
	'.': '\ue002',
	';': '\ue003',
	'-': '\ue004',
	'+': '\ue005',
	'|': '\ue006',
}

const linkSpaceSentinel = '\ue000'

func smartLinkFormatter() ansi.LinkFormatter {
	return ansi.LinkFormatterFunc(func(data ansi.LinkData, ctx ansi.RenderContext) (string, error) {
		data.URL = sanitizeLinkURL(data.URL)
		if supportsOSC8() {
			data.Text = linkTextSentinelize(data.Text)
			return ansi.HyperlinkFormatter.FormatLink(data, ctx)
		}
		return ansi.DefaultFormatter.FormatLink(data, ctx)
	})
}

// sanitizeLinkURL removes whitespace some senders fold into long URLs.
func sanitizeLinkURL(rawURL string) string {
	return strings.Join(strings.Fields(rawURL), "")
}

func linkTextSentinelize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return linkSpaceSentinel
		}
		if s, ok := linkSentinels[r]; ok {
			return s
		}
		return r
	}, text)
}

func restoreLinkTextSentinels(text string) string {
	reverse := make(map[rune]rune, len(linkSentinels)+1)
	reverse[linkSpaceSentinel] = ' '
	for r, s := range linkSentinels {
		reverse[s] = r
	}
	return strings.Map(func(r rune) rune {
		if orig, ok := reverse[r]; ok {
			return orig
		}
		return r
	}, text)
}

var osc8TermPrograms = []string{"iTerm.app", "vscode", "Windows Terminal", "WezTerm", "Hyper", "ghostty"}

var osc8Terms = []string{
	"xterm-256color",
	"screen-256color",
	"tmux-256color",
	"alacritty",
	"xterm-kitty",
	"xterm-ghostty",
}

func supportsOSC8() bool {
	if slices.Contains(osc8TermPrograms, os.Getenv("TERM_PROGRAM")) {
		return true
	}
	term := os.Getenv("TERM")
	for _, supported := range osc8Terms {
		if term != "" && strings.Contains(term, supported) {
			return true
		}
	}
	return os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("ALACRITTY_LOG") != "" ||
		os.Getenv("ALACRITTY_SOCKET") != ""
}
