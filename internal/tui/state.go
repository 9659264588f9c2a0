package tui

import (
	md "github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.dalton.dog/bubbleup"

	"go.withmatt.com/bucket/internal/config"
)

type pane int

const (
	paneList pane = iota
	paneDetail
)

type uiState struct {
	width    int
	height   int
	focus    pane
	spinner  spinner.Model
	help     help.Model
	alert    bubbleup.AlertModel
	showHelp bool
	focused  bool

	debugDumpHashes map[string][32]byte
}

type listState struct {
	cursor       int
	scrollOffset int
}

type detailState struct {
	viewport viewport.Model
	// renderKey identifies what the viewport currently holds.
	renderKey string
}

type renderersState struct {
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int
	htmlConverter   *md.Converter
}

type searchState struct {
	active bool
	input  textinput.Model
	// previous is restored when a search is canceled.
	previous string
}

type pickerState struct {
	form   *huh.Form
	choice *string
}

// tickState tracks which subscription timers are in flight so each is
// armed at most once.
type tickState struct {
	clock bool
	seen  bool
}

func newUIState() uiState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return uiState{spinner: s, focused: true}
}

func newDetailState() detailState {
	return detailState{viewport: viewport.New(0, 0)}
}

func newSearchState(theme config.Theme) searchState {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "subject or sender"
	input.CharLimit = 200
	input.Blur()
	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Bg)).
		Foreground(lipgloss.Color(theme.Status.Fg)).
		Bold(true)
	input.PromptStyle = statusStyle
	input.TextStyle = statusStyle
	input.PlaceholderStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Bg)).
		Foreground(lipgloss.Color(theme.Status.Dim)).
		Faint(true)
	input.Cursor.Style = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Status.Fg)).
		Foreground(lipgloss.Color(theme.Status.Bg))
	return searchState{input: input}
}
