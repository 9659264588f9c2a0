package tui

import (
	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/mailbox"
)

// listRowHeight is two text lines plus a blank separator.
const listRowHeight = 3

// displayed is the header list as shown: filtered, newest first.
func (m Model) displayed() []inbucket.Header {
	list, ok := m.screen.List()
	if !ok {
		return nil
	}
	return mailbox.Displayed(list)
}

func (m Model) cursorHeader() (inbucket.Header, bool) {
	headers := m.displayed()
	if m.list.cursor < 0 || m.list.cursor >= len(headers) {
		return inbucket.Header{}, false
	}
	return headers[m.list.cursor], true
}

func (m *Model) moveCursorTo(id string) {
	for i, h := range m.displayed() {
		if h.ID == id {
			m.list.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

func (m *Model) clampCursor() {
	count := len(m.displayed())
	if m.list.cursor >= count {
		m.list.cursor = count - 1
	}
	if m.list.cursor < 0 {
		m.list.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) visibleRowCount() int {
	return m.paneHeight() / listRowHeight
}

func (m *Model) ensureCursorVisible() {
	visibleRows := m.visibleRowCount()
	count := len(m.displayed())
	if visibleRows <= 0 || count <= visibleRows {
		m.list.scrollOffset = 0
		return
	}

	maxOffset := count - visibleRows
	if m.list.cursor < m.list.scrollOffset {
		m.list.scrollOffset = m.list.cursor
	} else if m.list.cursor >= m.list.scrollOffset+visibleRows {
		m.list.scrollOffset = m.list.cursor - visibleRows + 1
	}
	m.list.scrollOffset = min(max(m.list.scrollOffset, 0), maxOffset)
}

// visibleRange returns the slice of displayed rows that fit on screen.
func (m *Model) visibleRange(total int) (start, end int) {
	visibleRows := m.visibleRowCount()
	if visibleRows <= 0 || total <= visibleRows {
		return 0, total
	}
	start = min(max(m.list.scrollOffset, 0), total-visibleRows)
	return start, start + visibleRows
}
