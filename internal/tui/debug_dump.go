package tui

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"

	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/log"
	"go.withmatt.com/bucket/internal/mailbox"
)

func (m *Model) debugDumpRender(name string, content string) {
	m.debugDumpFile(name+".bin", []byte(content))
}

func (m *Model) debugDumpText(name string, content string) {
	m.debugDumpFile(name+".txt", []byte(content))
}

// debugDumpFile writes content under the state dir, skipping the write when
// the same name already holds identical bytes.
func (m *Model) debugDumpFile(name string, content []byte) {
	if !log.DebugEnabled() {
		return
	}
	if m.ui.debugDumpHashes == nil {
		m.ui.debugDumpHashes = make(map[string][32]byte)
	}

	hash := sha256.Sum256(content)
	if prev, ok := m.ui.debugDumpHashes[name]; ok && prev == hash {
		return
	}
	m.ui.debugDumpHashes[name] = hash

	path, err := xdg.StateFile("bucket/" + name)
	if err != nil {
		m.logf("debug dump path error name=%s err=%v", name, err)
		return
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		m.logf("debug dump write error name=%s err=%v", name, err)
		return
	}
	m.logf("debug dump wrote name=%s bytes=%d path=%q", name, len(content), path)
}

func (m *Model) debugDumpMessage(msg inbucket.Message, mode mailbox.BodyMode, rendered string) {
	if !log.DebugEnabled() {
		return
	}
	m.debugDumpText("message-body-text", msg.Body.Text)
	m.debugDumpText("message-body-html", msg.Body.HTML)
	if msg.HasHTML() {
		markdown, err := m.renderers.htmlConverter.ConvertString(cleanHTMLForConversion(msg.Body.HTML))
		if err != nil {
			m.logf("debug dump markdown error id=%s err=%v", msg.ID, err)
		} else {
			m.debugDumpText("message-body-markdown", markdown)
		}
	}
	m.debugDumpRender("message-rendered", rendered)
	m.debugDumpText("message-meta", fmt.Sprintf(
		"mailbox=%s id=%s mode=%d width=%d has_text=%t has_html=%t attachments=%d errors=%d",
		m.screen.Mailbox,
		msg.ID,
		mode,
		m.detailWidth(),
		strings.TrimSpace(msg.Body.Text) != "",
		msg.HasHTML(),
		len(msg.Attachments),
		len(msg.Errors),
	))
}
