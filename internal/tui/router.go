package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"go.withmatt.com/bucket/internal/mailbox"
	"go.withmatt.com/bucket/internal/route"
)

// replaceLocation records path as the current location and acts as the
// router listener: a change the screen asked to keep quiet only consumes
// the suppression flag, any other change is navigated to.
func (m *Model) replaceLocation(path string) tea.Cmd {
	m.history.ReplaceLocation(path)
	if !m.session.RoutingEnabled() {
		m.session = m.session.EnableRouting()
		m.logf("location %s (routing suppressed)", path)
		return nil
	}
	m.logf("location %s", path)
	return m.navigate(path)
}

// navigate brings the screen in line with path.
func (m *Model) navigate(path string) tea.Cmd {
	loc, err := route.Parse(path)
	if err != nil {
		m.logf("navigate %q: %v", path, err)
		return nil
	}
	if loc.Mailbox != m.screen.Mailbox {
		return m.resetScreen(loc.Mailbox, loc.MessageID)
	}
	if loc.MessageID == "" || loc.MessageID == m.selectedID() {
		return nil
	}
	next, cmd := m.dispatch(mailbox.OpenMessage{ID: loc.MessageID})
	*m = next.(Model)
	return cmd
}

// switchMailbox moves to another mailbox through the router.
func (m Model) switchMailbox(name string) (Model, tea.Cmd) {
	name = strings.TrimSpace(name)
	if name == "" {
		return m, nil
	}
	cmd := m.replaceLocation(route.MailboxPath(name))
	return m, cmd
}

// reload recreates the screen for the current mailbox, keeping the selection.
func (m Model) reload() (Model, tea.Cmd) {
	cmd := m.resetScreen(m.screen.Mailbox, m.selectedID())
	return m, cmd
}

// location is the current router location.
func (m Model) location() string {
	if m.history == nil {
		return ""
	}
	return m.history.Current()
}

func (m Model) selectedID() string {
	list, ok := m.screen.List()
	if !ok {
		return ""
	}
	return list.Selected
}
