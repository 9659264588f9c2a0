package tui

import (
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	"go.withmatt.com/bucket/internal/config"
)

func markdownStyle(theme config.Theme) ansi.StyleConfig {
	style := styles.DarkStyleConfig
	fg := ptr(theme.Detail.ValueFg)

	style.Document.Color = fg
	style.Document.Margin = ptr(uint(1))
	style.Paragraph.Color = fg
	style.Text.Color = fg

	style.BlockQuote.Color = ptr(theme.Status.Dim)
	style.BlockQuote.IndentToken = ptr("▍ ")

	accent := ptr(theme.Detail.BorderFg)
	style.Heading.Color = accent
	style.H1.Color = accent
	style.H1.BackgroundColor = nil
	for _, h := range []*ansi.StyleBlock{&style.H2, &style.H3, &style.H4, &style.H5, &style.H6} {
		h.Color = accent
	}

	style.HorizontalRule.Color = ptr(theme.Status.Dim)

	style.Link.Color = ptr(theme.Detail.LinkFg)
	style.LinkText.Color = ptr(theme.Detail.LinkFg)
	style.LinkText.Bold = ptr(true)

	style.Code.Color = fg
	style.CodeBlock.Color = fg

	return style
}

func ptr[T any](value T) *T {
	return &value
}
