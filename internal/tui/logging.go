package tui

import "go.withmatt.com/bucket/internal/log"

func (m *Model) logf(format string, args ...any) {
	if !log.DebugEnabled() {
		return
	}
	log.Printf("[%s] "+format, append([]any{m.screen.Mailbox}, args...)...)
}
