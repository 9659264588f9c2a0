package mailbox

import (
	"time"

	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/session"
)

const (
	// SeenDelay is how long a message stays open before it is marked seen.
	SeenDelay = 1500 * time.Millisecond
	// SeenTickInterval is the polling cadence for the mark-seen deadline.
	SeenTickInterval = 250 * time.Millisecond
	// ClockTickInterval refreshes Screen.Now for relative dates.
	ClockTickInterval = 30 * time.Second
)

// Subscriptions lists the tickers the host should keep running for a screen.
type Subscriptions struct {
	Clock bool
	Seen  bool
}

// Subscriptions returns the tickers wanted in the current state. The seen
// ticker only runs while an unseen message is fully shown.
func (s Screen) Subscriptions() Subscriptions {
	subs := Subscriptions{Clock: true}
	if visible, ok := showing(s); ok && !visible.Message.Seen {
		subs.Seen = true
	}
	return subs
}

func showing(s Screen) (VisibleMessage, bool) {
	list, ok := s.State.(ShowingList)
	if !ok {
		return VisibleMessage{}, false
	}
	d, ok := list.Detail.(ShowingMessage)
	if !ok {
		return VisibleMessage{}, false
	}
	return d.Visible, true
}

// openedAt arms the mark-seen deadline. Samples that arrive after the
// message was replaced, already seen, or already armed are dropped.
func openedAt(screen Screen, ev OpenedAt) Screen {
	visible, ok := showing(screen)
	if !ok || visible.Message.Seen || !visible.MarkSeenAt.IsZero() {
		return screen
	}
	visible.MarkSeenAt = ev.At.Add(SeenDelay)
	return withShowing(screen, visible)
}

func seenTick(sess session.Session, screen Screen, ev SeenTick) (session.Session, Screen, []Effect) {
	visible, ok := showing(screen)
	if !ok || visible.MarkSeenAt.IsZero() || ev.Now.Before(visible.MarkSeenAt) {
		return sess, screen, nil
	}

	visible.MarkSeenAt = time.Time{}
	visible.Message.Seen = true
	screen = withShowing(screen, visible)

	list := screen.State.(ShowingList)
	list.List.Headers = markHeaderSeen(list.List.Headers, visible.Message.ID)
	screen.State = list

	return sess, screen, []Effect{
		MarkSeen{Mailbox: screen.Mailbox, ID: visible.Message.ID},
	}
}

func withShowing(screen Screen, visible VisibleMessage) Screen {
	list := screen.State.(ShowingList)
	list.Detail = ShowingMessage{Visible: visible}
	screen.State = list
	return screen
}

func markHeaderSeen(headers []inbucket.Header, id string) []inbucket.Header {
	out := make([]inbucket.Header, len(headers))
	copy(out, headers)
	for i := range out {
		if out[i].ID == id {
			out[i].Seen = true
		}
	}
	return out
}
