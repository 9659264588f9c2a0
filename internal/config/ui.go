package config

import (
	"strings"

	"go.withmatt.com/bucket/internal/session"
)

type UIConfig struct {
	// DefaultBodyMode is "html" or "text".
	DefaultBodyMode string `toml:"default_body_mode"`
	RecentLimit     int    `toml:"recent_limit"`
}

func (u UIConfig) WithDefaults() UIConfig {
	switch strings.ToLower(strings.TrimSpace(u.DefaultBodyMode)) {
	case "text", "plain", "plaintext":
		u.DefaultBodyMode = "text"
	default:
		u.DefaultBodyMode = "html"
	}
	if u.RecentLimit <= 0 {
		u.RecentLimit = session.DefaultRecentLimit
	}
	return u
}

// PreferPlainText reports whether messages should open as plain text.
func (u UIConfig) PreferPlainText() bool {
	return u.WithDefaults().DefaultBodyMode == "text"
}
