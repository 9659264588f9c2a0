// Package route maps mailbox screen locations to paths, and paths to the
// server's web UI.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrUnknownPath = errors.New("unknown path")

// Location is a parsed path. MessageID is empty when no message is selected.
type Location struct {
	Mailbox   string
	MessageID string
}

func (l Location) Path() string {
	if l.MessageID == "" {
		return MailboxPath(l.Mailbox)
	}
	return MessagePath(l.Mailbox, l.MessageID)
}

// MailboxPath is the location of a mailbox with nothing selected.
func MailboxPath(mailbox string) string {
	return "/m/" + url.PathEscape(mailbox)
}

// MessagePath is the location of a mailbox with a message selected.
func MessagePath(mailbox, id string) string {
	return MailboxPath(mailbox) + "/" + url.PathEscape(id)
}

// Parse reads a /m/<mailbox>[/<id>] path.
func Parse(path string) (Location, error) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || len(parts) > 3 || parts[0] != "m" {
		return Location{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	mailbox, err := url.PathUnescape(parts[1])
	if err != nil || mailbox == "" {
		return Location{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	loc := Location{Mailbox: mailbox}
	if len(parts) == 3 {
		id, err := url.PathUnescape(parts[2])
		if err != nil || id == "" {
			return Location{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
		}
		loc.MessageID = id
	}
	return loc, nil
}

// LooksLikePath reports whether arg should be parsed as a location rather
// than taken as a bare mailbox name.
func LooksLikePath(arg string) bool {
	return strings.HasPrefix(arg, "/m/")
}

// WebURL is the location in the server's own web UI.
func WebURL(base string, loc Location) string {
	return strings.TrimRight(base, "/") + loc.Path()
}

// SourceURL serves the raw message source.
func SourceURL(base, mailbox, id string) string {
	return strings.TrimRight(base, "/") + "/serve/mailbox/" +
		url.PathEscape(mailbox) + "/" + url.PathEscape(id) + "/source"
}

// AttachmentURL resolves an attachment link, which the server may return
// either absolute or relative to its root.
func AttachmentURL(base, link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(link, "/")
}
