package config

// KeyMap holds user overrides. An empty list keeps the built-in binding.
type KeyMap struct {
	List   ListKeyMap   `toml:"list"`
	Detail DetailKeyMap `toml:"detail"`
	Search SearchKeyMap `toml:"search"`
	Prompt PromptKeyMap `toml:"prompt"`
}

type ListKeyMap struct {
	Up      []string `toml:"up"`
	Down    []string `toml:"down"`
	Open    []string `toml:"open"`
	Search  []string `toml:"search"`
	Delete  []string `toml:"delete"`
	Purge   []string `toml:"purge"`
	Switch  []string `toml:"switch"`
	Refresh []string `toml:"refresh"`
	Help    []string `toml:"help"`
	Quit    []string `toml:"quit"`
}

type DetailKeyMap struct {
	ScrollUp   []string `toml:"scroll_up"`
	ScrollDown []string `toml:"scroll_down"`
	ToggleView []string `toml:"toggle_view"`
	OpenWeb    []string `toml:"open_web"`
	Source     []string `toml:"source"`
	Attachment []string `toml:"attachment"`
}

type SearchKeyMap struct {
	Submit []string `toml:"submit"`
	Cancel []string `toml:"cancel"`
}

type PromptKeyMap struct {
	Confirm []string `toml:"confirm"`
	Cancel  []string `toml:"cancel"`
}
