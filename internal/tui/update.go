package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.dalton.dog/bubbleup"

	"go.withmatt.com/bucket/internal/mailbox"
	"go.withmatt.com/bucket/internal/session"
)

// Update handles events and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.picker.form != nil {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return m.updatePicker(msg)
		}
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.ui.spinner, cmd = m.ui.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.FocusMsg:
		m.ui.focused = true
		return m, nil
	case tea.BlurMsg:
		m.ui.focused = false
		return m, nil
	case screenEventMsg:
		return m.handleScreenEvent(msg)
	case clockTickMsg:
		m.ticks.clock = false
		return m.dispatch(mailbox.ClockTick{Now: msg.at})
	case seenTickMsg:
		m.ticks.seen = false
		return m.dispatch(mailbox.SeenTick{Now: msg.at})
	case recentSavedMsg:
		if msg.err != nil {
			m.logf("save recent mailboxes failed: %v", msg.err)
		}
		return m, nil
	case openedURLMsg:
		return m.handleOpenedURL(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	default:
		return m.updateAlerts(msg)
	}
}

func (m Model) handleScreenEvent(msg screenEventMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logf("drop stale event %T gen=%d current=%d", msg.event, msg.gen, m.gen)
		return m, nil
	}
	next, cmd := m.dispatch(msg.event)
	model := next.(Model)

	var toast tea.Cmd
	switch ev := msg.event.(type) {
	case mailbox.DeleteDone:
		if ev.Err == nil {
			toast = model.ui.alert.NewAlertCmd(bubbleup.InfoKey, "Message deleted")
		}
	case mailbox.PurgeDone:
		if ev.Err == nil {
			toast = model.ui.alert.NewAlertCmd(bubbleup.InfoKey, "Mailbox purged")
		}
	}
	return model, tea.Batch(cmd, toast)
}

// dispatch runs one transition of the mailbox screen and turns its effects
// into commands.
func (m Model) dispatch(ev mailbox.Event) (tea.Model, tea.Cmd) {
	prevSession := m.session
	prevSelected := m.selectedID()
	prevTitle := m.windowTitle()

	var effects []mailbox.Effect
	m.session, m.screen, effects = mailbox.Update(m.session, m.screen, ev)
	m.logf("event %T -> %d effects", ev, len(effects))

	cmds := []tea.Cmd{m.runEffects(effects)}
	if session.RecentChanged(prevSession, m.session) {
		cmds = append(cmds, m.saveRecentCmd())
	}
	if sel := m.selectedID(); sel != "" && sel != prevSelected {
		m.moveCursorTo(sel)
	}
	m.clampCursor()
	m.refreshDetail()
	if m.windowTitle() != prevTitle {
		cmds = append(cmds, m.setWindowTitleCmd())
	}
	cmds = append(cmds, m.armSubscriptions())
	return m, tea.Batch(cmds...)
}

// runEffects applies location changes immediately and schedules the rest.
func (m *Model) runEffects(effects []mailbox.Effect) tea.Cmd {
	var rest []mailbox.Effect
	var cmds []tea.Cmd
	for _, effect := range effects {
		if loc, ok := effect.(mailbox.ReplaceLocation); ok {
			cmds = append(cmds, m.replaceLocation(loc.Path))
			continue
		}
		rest = append(rest, effect)
	}
	cmds = append(cmds, m.effectsCmd(rest))
	return tea.Batch(cmds...)
}

func (m *Model) resetScreen(name, selection string) tea.Cmd {
	m.gen++
	var effects []mailbox.Effect
	m.screen, effects = mailbox.Init(name, selection)
	m.screen = m.applyDefaultBodyMode(m.screen)
	m.list = listState{}
	m.detail.renderKey = ""
	m.detail.viewport.SetContent("")
	m.search.active = false
	m.search.previous = ""
	m.search.input.SetValue("")
	m.search.input.Blur()
	m.ui.focus = paneList
	m.logf("reset screen mailbox=%q selection=%q gen=%d", name, selection, m.gen)
	return tea.Batch(m.runEffects(effects), m.setWindowTitleCmd())
}

func (m Model) applyDefaultBodyMode(screen mailbox.Screen) mailbox.Screen {
	if !m.uiConfig.PreferPlainText() {
		return screen
	}
	_, screen, _ = mailbox.Update(m.session, screen, mailbox.SetBodyMode{Mode: mailbox.PlainText})
	return screen
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Completion and abort commands are dropped so the form cannot quit
	// the program.
	form, cmd := m.picker.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.picker.form = f
	}
	switch m.picker.form.State {
	case huh.StateCompleted:
		choice := *m.picker.choice
		m.picker = pickerState{}
		return m.switchMailbox(choice)
	case huh.StateAborted:
		m.picker = pickerState{}
		return m, nil
	}
	return m, cmd
}

func (m Model) updateAlerts(msg tea.Msg) (Model, tea.Cmd) {
	outAlert, alertCmd := m.ui.alert.Update(msg)
	m.ui.alert = outAlert.(bubbleup.AlertModel)
	return m, alertCmd
}
