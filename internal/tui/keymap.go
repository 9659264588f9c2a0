package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"go.withmatt.com/bucket/internal/config"
)

type listKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Search  key.Binding
	Delete  key.Binding
	Purge   key.Binding
	Switch  key.Binding
	Refresh key.Binding
	Focus   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

type detailKeyMap struct {
	ScrollUp   key.Binding
	ScrollDown key.Binding
	ToggleView key.Binding
	OpenWeb    key.Binding
	Source     key.Binding
	Attachment key.Binding
	Back       key.Binding
}

type searchKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

type promptKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

type keyMap struct {
	focus        pane
	searchActive bool
	promptActive bool

	list   listKeyMap
	detail detailKeyMap
	search searchKeyMap
	prompt promptKeyMap
}

func keyMapFromConfig(cfg config.KeyMap) keyMap {
	return keyMap{
		list: listKeyMap{
			Up:   makeBinding(bindingDef{keys: []string{"k", "up"}, desc: "up"}, cfg.List.Up),
			Down: makeBinding(bindingDef{keys: []string{"j", "down"}, desc: "down"}, cfg.List.Down),
			Open: makeBinding(
				bindingDef{keys: []string{"enter"}, desc: "open"},
				cfg.List.Open,
			),
			Search: makeBinding(
				bindingDef{keys: []string{"/"}, desc: "search"},
				cfg.List.Search,
			),
			Delete: makeBinding(
				bindingDef{keys: []string{"d"}, desc: "delete"},
				cfg.List.Delete,
			),
			Purge: makeBinding(
				bindingDef{keys: []string{"P"}, desc: "purge mailbox"},
				cfg.List.Purge,
			),
			Switch: makeBinding(
				bindingDef{keys: []string{"m"}, desc: "switch mailbox"},
				cfg.List.Switch,
			),
			Refresh: makeBinding(
				bindingDef{keys: []string{"r"}, desc: "reload"},
				cfg.List.Refresh,
			),
			Focus: makeBinding(bindingDef{keys: []string{"tab"}, desc: "switch pane"}, nil),
			Help:  makeBinding(bindingDef{keys: []string{"?"}, desc: "help"}, cfg.List.Help),
			Quit: makeBinding(
				bindingDef{keys: []string{"q", "ctrl+c"}, desc: "quit"},
				cfg.List.Quit,
			),
		},
		detail: detailKeyMap{
			ScrollUp: makeBinding(
				bindingDef{keys: []string{"k", "up"}, desc: "scroll up"},
				cfg.Detail.ScrollUp,
			),
			ScrollDown: makeBinding(
				bindingDef{keys: []string{"j", "down"}, desc: "scroll down"},
				cfg.Detail.ScrollDown,
			),
			ToggleView: makeBinding(
				bindingDef{keys: []string{"t"}, desc: "html/text"},
				cfg.Detail.ToggleView,
			),
			OpenWeb: makeBinding(
				bindingDef{keys: []string{"o"}, desc: "open in browser"},
				cfg.Detail.OpenWeb,
			),
			Source: makeBinding(
				bindingDef{keys: []string{"s"}, desc: "view source"},
				cfg.Detail.Source,
			),
			Attachment: makeBinding(
				bindingDef{keys: []string{"a"}, desc: "open attachment"},
				cfg.Detail.Attachment,
			),
			Back: makeBinding(bindingDef{keys: []string{"esc"}, desc: "back"}, nil),
		},
		search: searchKeyMap{
			Submit: makeBinding(
				bindingDef{keys: []string{"enter"}, desc: "apply"},
				cfg.Search.Submit,
			),
			Cancel: makeBinding(
				bindingDef{keys: []string{"esc"}, desc: "cancel"},
				cfg.Search.Cancel,
			),
		},
		prompt: promptKeyMap{
			Confirm: makeBinding(
				bindingDef{keys: []string{"y"}, desc: "confirm"},
				cfg.Prompt.Confirm,
			),
			Cancel: makeBinding(
				bindingDef{keys: []string{"n", "esc"}, desc: "cancel"},
				cfg.Prompt.Cancel,
			),
		},
	}
}

func (m Model) keyMap() keyMap {
	km := keyMapFromConfig(m.keyMapCfg)
	km.focus = m.ui.focus
	km.searchActive = m.search.active
	km.promptActive = m.screen.PromptPurge
	return km
}

type bindingDef struct {
	keys []string
	desc string
}

func makeBinding(def bindingDef, override []string) key.Binding {
	keys := def.keys
	if len(override) > 0 {
		keys = override
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(formatHelpKeys(keys), def.desc),
	)
}

func formatHelpKeys(keys []string) string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		label := formatKeyLabel(k)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return strings.Join(out, "/")
}

func formatKeyLabel(key string) string {
	switch key {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case " ":
		return "space"
	default:
		return key
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.promptActive {
		return []key.Binding{k.prompt.Confirm, k.prompt.Cancel}
	}
	if k.searchActive {
		return []key.Binding{k.search.Submit, k.search.Cancel}
	}
	if k.focus == paneDetail {
		return []key.Binding{
			k.detail.ScrollUp,
			k.detail.ScrollDown,
			k.detail.ToggleView,
			k.detail.OpenWeb,
			k.detail.Back,
			k.list.Help,
		}
	}
	return []key.Binding{
		k.list.Up,
		k.list.Down,
		k.list.Open,
		k.list.Search,
		k.list.Delete,
		k.list.Help,
		k.list.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	if k.promptActive {
		return [][]key.Binding{{k.prompt.Confirm, k.prompt.Cancel}}
	}
	if k.searchActive {
		return [][]key.Binding{{k.search.Submit, k.search.Cancel}}
	}
	return [][]key.Binding{
		{k.list.Up, k.list.Down, k.list.Open, k.list.Focus},
		{k.list.Search, k.list.Delete, k.list.Purge, k.list.Refresh},
		{k.detail.ScrollUp, k.detail.ScrollDown, k.detail.Back},
		{k.detail.ToggleView, k.detail.OpenWeb, k.detail.Source, k.detail.Attachment},
		{k.list.Switch, k.list.Help, k.list.Quit},
	}
}
