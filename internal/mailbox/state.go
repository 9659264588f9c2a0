// Package mailbox is the state machine behind the mailbox screen: a list of
// message headers, a detail pane for the selected message, search, deletion
// and the delayed mark-seen.
//
// Nothing here performs I/O. Update consumes an Event and returns the next
// Screen plus the Effects the host must run; results of those effects come
// back as further Events.
package mailbox

import (
	"time"

	"go.withmatt.com/bucket/internal/inbucket"
)

type BodyMode int

const (
	SafeHTML BodyMode = iota
	PlainText
)

func (b BodyMode) String() string {
	if b == PlainText {
		return "Plain Text"
	}
	return "Safe HTML"
}

// Screen is one mailbox screen. It is replaced wholesale on every transition.
type Screen struct {
	Mailbox     string
	State       ViewState
	BodyMode    BodyMode
	SearchInput string
	PromptPurge bool
	Now         time.Time
}

// ViewState is either LoadingList or ShowingList.
type ViewState interface {
	isViewState()
}

// LoadingList waits for the header list. Pending names a message to open
// once the list arrives.
type LoadingList struct {
	Pending string
}

type ShowingList struct {
	List   MessageList
	Detail MessageState
}

func (LoadingList) isViewState() {}
func (ShowingList) isViewState() {}

type MessageList struct {
	Headers      []inbucket.Header
	Selected     string
	SearchFilter string
}

// MessageState is the detail pane: NoMessage, LoadingMessage,
// ShowingMessage or Transitioning.
type MessageState interface {
	isMessageState()
}

type NoMessage struct{}

// LoadingMessage is a fetch in flight with nothing previously shown.
type LoadingMessage struct{}

type ShowingMessage struct {
	Visible VisibleMessage
}

// Transitioning keeps the previously shown message on screen while the
// newly selected one loads.
type Transitioning struct {
	Visible VisibleMessage
}

func (NoMessage) isMessageState()      {}
func (LoadingMessage) isMessageState() {}
func (ShowingMessage) isMessageState() {}
func (Transitioning) isMessageState()  {}

// VisibleMessage is a message on screen. MarkSeenAt is the zero time until
// the open time has been sampled, and again after the mark-seen request has
// been sent.
type VisibleMessage struct {
	Message    inbucket.Message
	MarkSeenAt time.Time
}

// Visible returns the message rendered in the detail pane, if any.
func (s Screen) Visible() (VisibleMessage, bool) {
	list, ok := s.State.(ShowingList)
	if !ok {
		return VisibleMessage{}, false
	}
	switch d := list.Detail.(type) {
	case ShowingMessage:
		return d.Visible, true
	case Transitioning:
		return d.Visible, true
	default:
		return VisibleMessage{}, false
	}
}

// List returns the loaded message list.
func (s Screen) List() (MessageList, bool) {
	list, ok := s.State.(ShowingList)
	if !ok {
		return MessageList{}, false
	}
	return list.List, true
}

// Loading reports whether the detail pane is waiting for a message.
func (s Screen) Loading() bool {
	list, ok := s.State.(ShowingList)
	if !ok {
		return false
	}
	switch list.Detail.(type) {
	case LoadingMessage, Transitioning:
		return true
	default:
		return false
	}
}
