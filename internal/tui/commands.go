package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go.withmatt.com/bucket/internal/log"
	"go.withmatt.com/bucket/internal/mailbox"
)

// requestTimeout bounds a single API call made on behalf of the screen.
const requestTimeout = 30 * time.Second

// screenEventMsg carries an event produced by an effect back into Update.
type screenEventMsg struct {
	gen   int
	event mailbox.Event
}

type clockTickMsg struct {
	at time.Time
}

type seenTickMsg struct {
	at time.Time
}

type recentSavedMsg struct {
	err error
}

// openedURLMsg reports the result of handing a URL to the browser.
type openedURLMsg struct {
	url string
	err error
}

// effectsCmd turns request effects into commands. Location changes are
// applied by runEffects and skipped here.
func (m Model) effectsCmd(effects []mailbox.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, effect := range effects {
		if cmd := m.effectCmd(effect); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) effectCmd(effect mailbox.Effect) tea.Cmd {
	gen := m.gen
	client := m.client
	parent := m.ctx
	now := m.now
	if parent == nil {
		parent = context.Background()
	}

	event := func(ev mailbox.Event) tea.Msg {
		return screenEventMsg{gen: gen, event: ev}
	}
	call := func(fn func(ctx context.Context) mailbox.Event) tea.Cmd {
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(parent, requestTimeout)
			defer cancel()
			return event(fn(ctx))
		}
	}

	switch e := effect.(type) {
	case mailbox.FetchHeaders:
		return call(func(ctx context.Context) mailbox.Event {
			log.Printf("ListHeaders mailbox=%q", e.Mailbox)
			headers, err := client.ListHeaders(ctx, e.Mailbox)
			return mailbox.HeadersLoaded{Headers: headers, Err: err}
		})
	case mailbox.FetchMessage:
		return call(func(ctx context.Context) mailbox.Event {
			log.Printf("GetMessage mailbox=%q id=%q", e.Mailbox, e.ID)
			msg, err := client.GetMessage(ctx, e.Mailbox, e.ID)
			if err != nil {
				return mailbox.MessageLoaded{Err: err}
			}
			return mailbox.MessageLoaded{Message: *msg}
		})
	case mailbox.MarkSeen:
		return call(func(ctx context.Context) mailbox.Event {
			log.Printf("MarkSeen mailbox=%q id=%q", e.Mailbox, e.ID)
			return mailbox.MarkSeenDone{Err: client.MarkSeen(ctx, e.Mailbox, e.ID)}
		})
	case mailbox.Delete:
		return call(func(ctx context.Context) mailbox.Event {
			log.Printf("DeleteMessage mailbox=%q id=%q", e.Mailbox, e.ID)
			return mailbox.DeleteDone{Err: client.DeleteMessage(ctx, e.Mailbox, e.ID)}
		})
	case mailbox.Purge:
		return call(func(ctx context.Context) mailbox.Event {
			log.Printf("PurgeMailbox mailbox=%q", e.Mailbox)
			return mailbox.PurgeDone{Err: client.PurgeMailbox(ctx, e.Mailbox)}
		})
	case mailbox.SampleTime:
		return func() tea.Msg {
			switch e.For {
			case mailbox.SampleOpenedAt:
				return event(mailbox.OpenedAt{At: now()})
			default:
				return event(mailbox.ClockTick{Now: now()})
			}
		}
	default:
		return nil
	}
}

func (m Model) clockTickCmd() tea.Cmd {
	return tea.Tick(mailbox.ClockTickInterval, func(t time.Time) tea.Msg {
		return clockTickMsg{at: t}
	})
}

func (m Model) seenTickCmd() tea.Cmd {
	return tea.Tick(mailbox.SeenTickInterval, func(t time.Time) tea.Msg {
		return seenTickMsg{at: t}
	})
}

// armSubscriptions starts the timers the screen asks for that are not
// already running.
func (m *Model) armSubscriptions() tea.Cmd {
	subs := m.screen.Subscriptions()
	var cmds []tea.Cmd
	if subs.Clock && !m.ticks.clock {
		m.ticks.clock = true
		cmds = append(cmds, m.clockTickCmd())
	}
	if subs.Seen && !m.ticks.seen {
		m.ticks.seen = true
		cmds = append(cmds, m.seenTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) saveRecentCmd() tea.Cmd {
	store := m.store
	if store == nil {
		return nil
	}
	recent := append([]string(nil), m.session.Recent...)
	parent := m.ctx
	if parent == nil {
		parent = context.Background()
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 5*time.Second)
		defer cancel()
		return recentSavedMsg{err: store.SaveRecent(ctx, recent)}
	}
}

func (m *Model) openURLCmd(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	open := m.openURL
	return func() tea.Msg {
		return openedURLMsg{url: url, err: open(url)}
	}
}
