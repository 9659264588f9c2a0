package tui

import (
	"context"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/pkg/browser"

	"go.withmatt.com/bucket/internal/config"
	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/mailbox"
	"go.withmatt.com/bucket/internal/route"
	"go.withmatt.com/bucket/internal/session"
)

// API is the subset of the Inbucket client the screen needs.
type API interface {
	ListHeaders(ctx context.Context, mailbox string) ([]inbucket.Header, error)
	GetMessage(ctx context.Context, mailbox, id string) (*inbucket.Message, error)
	MarkSeen(ctx context.Context, mailbox, id string) error
	DeleteMessage(ctx context.Context, mailbox, id string) error
	PurgeMailbox(ctx context.Context, mailbox string) error
}

// Options configures a Model.
type Options struct {
	Client    API
	ServerURL string
	// Store persists recent mailboxes. It may be nil.
	Store    *session.Store
	Session  session.Session
	Location route.Location
	Theme    config.Theme
	UI       config.UIConfig
	Keys     config.KeyMap
}

// Model is the TUI application state
type Model struct {
	screen  mailbox.Screen
	session session.Session
	// gen increases every time the screen is recreated. Results of effects
	// issued for an older screen are dropped.
	gen         int
	initEffects []mailbox.Effect

	client    API
	serverURL string
	store     *session.Store
	history   *route.History

	ui        uiState
	list      listState
	detail    detailState
	search    searchState
	picker    pickerState
	ticks     tickState
	renderers renderersState
	theme     config.Theme
	uiConfig  config.UIConfig
	keyMapCfg config.KeyMap

	now     func() time.Time
	openURL func(string) error

	ctx context.Context
}

// New creates a new TUI model showing opts.Location.
func New(ctx context.Context, opts Options) Model {
	ui := newUIState()
	ui.help = newHelpModel(opts.Theme)
	ui.alert = newAlertModel(opts.Theme, 0)

	r, _ := newGlamourRenderer(opts.Theme, 80)

	converter := md.NewConverter(
		md.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithStrongDelimiter("**"),
				commonmark.WithEmDelimiter("_"),
				commonmark.WithCodeBlockFence("```"),
			),
		),
		md.WithEscapeMode(md.EscapeModeDisabled),
	)

	model := Model{
		session:   opts.Session,
		client:    opts.Client,
		serverURL: opts.ServerURL,
		store:     opts.Store,
		history:   route.NewHistory(opts.Location.Path()),
		ui:        ui,
		detail:    newDetailState(),
		search:    newSearchState(opts.Theme),
		theme:     opts.Theme,
		uiConfig:  opts.UI.WithDefaults(),
		keyMapCfg: opts.Keys,
		renderers: renderersState{
			glamourRenderer: r,
			glamourWidth:    80,
			htmlConverter:   converter,
		},
		now:     time.Now,
		openURL: browser.OpenURL,
		ctx:     ctx,
	}
	model.screen, model.initEffects = mailbox.Init(opts.Location.Mailbox, opts.Location.MessageID)
	model.screen = model.applyDefaultBodyMode(model.screen)
	model.ticks.clock = true
	model.logf("debug logging enabled mailbox=%q", opts.Location.Mailbox)
	return model
}

func newGlamourRenderer(
	theme config.Theme,
	width int,
) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyle(theme)),
		glamour.WithEmoji(),
		glamour.WithLinkFormatter(smartLinkFormatter()),
		glamour.WithWordWrap(width),
	)
}

// Init runs the effects of the initial screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.effectsCmd(m.initEffects),
		m.clockTickCmd(),
		m.ui.spinner.Tick,
		m.ui.alert.Init(),
		m.setWindowTitleCmd(),
	)
}

// Run starts the TUI
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		New(ctx, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
