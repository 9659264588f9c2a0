package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.dalton.dog/bubbleup"

	"go.withmatt.com/bucket/internal/mailbox"
	"go.withmatt.com/bucket/internal/route"
)

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals swallow the key that closes them.
	if m.ui.showHelp {
		m.ui.showHelp = false
		return m, nil
	}
	if m.session.Flash != nil {
		m.session = m.session.ClearFlash()
		return m, nil
	}
	if m.screen.PromptPurge {
		return m.handlePromptKey(msg)
	}
	if m.search.active {
		return m.handleSearchKey(msg)
	}
	if m.ui.focus == paneDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap()
	switch {
	case key.Matches(msg, km.list.Up):
		if m.list.cursor > 0 {
			m.list.cursor--
			m.ensureCursorVisible()
		}
		return m, nil
	case key.Matches(msg, km.list.Down):
		if m.list.cursor < len(m.displayed())-1 {
			m.list.cursor++
			m.ensureCursorVisible()
		}
		return m, nil
	case key.Matches(msg, km.list.Open):
		header, ok := m.cursorHeader()
		if !ok {
			return m, nil
		}
		m.ui.focus = paneDetail
		return m.dispatch(mailbox.ClickMessage{ID: header.ID})
	case key.Matches(msg, km.list.Delete):
		header, ok := m.cursorHeader()
		if !ok {
			return m, nil
		}
		return m.dispatch(mailbox.DeleteMessage{ID: header.ID})
	case key.Matches(msg, km.list.Focus):
		if _, ok := m.screen.Visible(); ok {
			m.ui.focus = paneDetail
		}
		return m, nil
	}
	return m.handleCommonKey(msg)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap()
	switch {
	case key.Matches(msg, km.detail.ScrollUp):
		m.detail.viewport.ScrollUp(1)
		return m, nil
	case key.Matches(msg, km.detail.ScrollDown):
		m.detail.viewport.ScrollDown(1)
		return m, nil
	case key.Matches(msg, km.detail.Back), key.Matches(msg, km.list.Focus):
		m.ui.focus = paneList
		return m, nil
	case key.Matches(msg, km.list.Delete):
		visible, ok := m.screen.Visible()
		if !ok {
			return m, nil
		}
		m.ui.focus = paneList
		return m.dispatch(mailbox.DeleteMessage{ID: visible.Message.ID})
	}
	return m.handleCommonKey(msg)
}

// handleCommonKey handles bindings available from either pane.
func (m Model) handleCommonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap()
	switch {
	case key.Matches(msg, km.list.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.list.Help):
		m.ui.showHelp = true
		return m, nil
	case key.Matches(msg, km.list.Search):
		if _, ok := m.screen.List(); !ok {
			return m, nil
		}
		m.search.active = true
		m.search.previous = m.screen.SearchInput
		m.ui.focus = paneList
		cmd := m.search.input.Focus()
		return m, cmd
	case key.Matches(msg, km.list.Purge):
		return m.dispatch(mailbox.PurgePrompt{})
	case key.Matches(msg, km.list.Refresh):
		return m.reload()
	case key.Matches(msg, km.list.Switch):
		return m.openPicker()
	case key.Matches(msg, km.detail.ToggleView):
		mode := mailbox.PlainText
		if m.screen.BodyMode == mailbox.PlainText {
			mode = mailbox.SafeHTML
		}
		return m.dispatch(mailbox.SetBodyMode{Mode: mode})
	case key.Matches(msg, km.detail.OpenWeb):
		loc, err := route.Parse(m.location())
		if err != nil {
			return m, nil
		}
		return m, m.openURLCmd(route.WebURL(m.serverURL, loc))
	case key.Matches(msg, km.detail.Source):
		visible, ok := m.screen.Visible()
		if !ok {
			return m, nil
		}
		return m, m.openURLCmd(route.SourceURL(m.serverURL, m.screen.Mailbox, visible.Message.ID))
	case key.Matches(msg, km.detail.Attachment):
		visible, ok := m.screen.Visible()
		if !ok || len(visible.Message.Attachments) == 0 {
			return m, nil
		}
		att := visible.Message.Attachments[0]
		link := att.ViewLink
		if link == "" {
			link = att.DownloadLink
		}
		return m, m.openURLCmd(route.AttachmentURL(m.serverURL, link))
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap()
	switch {
	case key.Matches(msg, km.prompt.Confirm):
		return m.dispatch(mailbox.PurgeConfirmed{})
	case key.Matches(msg, km.prompt.Cancel):
		return m.dispatch(mailbox.PurgeCanceled{})
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keyMap()
	switch {
	case key.Matches(msg, km.search.Cancel):
		m.search.active = false
		m.search.input.Blur()
		m.search.input.SetValue(m.search.previous)
		m.logf("Search cancel restore=%q", m.search.previous)
		return m.dispatch(mailbox.SearchInput{Value: m.search.previous})
	case key.Matches(msg, km.search.Submit):
		m.search.active = false
		m.search.input.Blur()
		m.logf("Search submit query=%q", m.search.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	if m.search.input.Value() == m.screen.SearchInput {
		return m, cmd
	}
	m.list.cursor = 0
	m.list.scrollOffset = 0
	next, dispatchCmd := m.dispatch(mailbox.SearchInput{Value: m.search.input.Value()})
	return next, tea.Batch(cmd, dispatchCmd)
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ui.focused || m.ui.showHelp || m.session.Flash != nil || m.screen.PromptPurge {
		return m, nil
	}

	if msg.X >= m.listWidth() {
		var cmd tea.Cmd
		m.detail.viewport, cmd = m.detail.viewport.Update(msg)
		return m, cmd
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.list.cursor > 0 {
			m.list.cursor--
			m.ensureCursorVisible()
		}
	case tea.MouseButtonWheelDown:
		if m.list.cursor < len(m.displayed())-1 {
			m.list.cursor++
			m.ensureCursorVisible()
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		idx := m.list.scrollOffset + msg.Y/listRowHeight
		headers := m.displayed()
		if idx < 0 || idx >= len(headers) {
			return m, nil
		}
		m.list.cursor = idx
		m.ensureCursorVisible()
		m.ui.focus = paneList
		return m.dispatch(mailbox.ClickMessage{ID: headers[idx].ID})
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	oldWidth := m.ui.width
	m.ui.width = msg.Width
	m.ui.height = msg.Height
	m.search.input.Width = max(10, m.listWidth()-4)
	if msg.Width != oldWidth && msg.Width > 0 {
		m.ui.alert = newAlertModel(m.theme, msg.Width)
	}
	m.detail.viewport.Width = m.detailWidth()
	m.detail.viewport.Height = m.paneHeight()
	m.ensureCursorVisible()
	m.refreshDetail()
	if m.picker.form != nil {
		form, cmd := m.picker.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.picker.form = f
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handleOpenedURL(msg openedURLMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logf("open url %s: %v", msg.url, msg.err)
		return m, m.ui.alert.NewAlertCmd(bubbleup.ErrorKey, fmt.Sprintf("Unable to open browser: %v", msg.err))
	}
	return m, m.ui.alert.NewAlertCmd(bubbleup.InfoKey, "Opened in browser")
}
