package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

var errEmptyMailbox = errors.New("mailbox name is required")

func validateMailbox(name string) error {
	if strings.TrimSpace(name) == "" {
		return errEmptyMailbox
	}
	if strings.Contains(name, "/") {
		return errors.New("mailbox name cannot contain /")
	}
	return nil
}

func newMailboxForm(recent []string, choice *string) *huh.Form {
	input := huh.NewInput().
		Title("Mailbox").
		Description("Type a name; recent mailboxes autocomplete.").
		Suggestions(recent).
		Validate(validateMailbox).
		Value(choice)
	return huh.NewForm(huh.NewGroup(input)).WithShowHelp(true)
}

// openPicker shows the mailbox switcher over the screen.
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	choice := new(string)
	form := newMailboxForm(m.session.Recent, choice)
	if m.ui.width > 0 {
		form = form.WithWidth(min(m.ui.width-4, 60))
	}
	m.picker = pickerState{form: form, choice: choice}
	return m, form.Init()
}

func (m Model) renderPicker() string {
	view := m.picker.form.View()
	if m.ui.width <= 0 || m.ui.height <= 0 {
		return view
	}
	return m.overlayModal(renderFixedLayout(m.ui.height, "", m.renderStatusline()), view)
}

// PickMailbox asks for a mailbox before the screen starts. Recent
// mailboxes are offered first.
func PickMailbox(ctx context.Context, recent []string) (string, error) {
	var choice string
	if len(recent) > 0 {
		options := make([]huh.Option[string], 0, len(recent)+1)
		for _, name := range recent {
			options = append(options, huh.NewOption(name, name))
		}
		options = append(options, huh.NewOption("Other...", ""))
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Open mailbox").
				Options(options...).
				Value(&choice),
		))
		if err := form.RunWithContext(ctx); err != nil {
			return "", err
		}
		if choice != "" {
			return choice, nil
		}
	}

	if err := newMailboxForm(recent, &choice).RunWithContext(ctx); err != nil {
		return "", err
	}
	return strings.TrimSpace(choice), nil
}
