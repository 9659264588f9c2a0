package mailbox

import (
	"time"

	"go.withmatt.com/bucket/internal/inbucket"
)

// Event is an input to Update: a user action, a timer tick, or the
// completion of an Effect.
type Event interface {
	isEvent()
}

type HeadersLoaded struct {
	Headers []inbucket.Header
	Err     error
}

// ClickMessage is a selection made from the list by the user.
type ClickMessage struct {
	ID string
}

// OpenMessage is a selection made by navigation, such as a deep link.
type OpenMessage struct {
	ID string
}

type MessageLoaded struct {
	Message inbucket.Message
	Err     error
}

// OpenedAt carries the time sampled right after a message was displayed.
type OpenedAt struct {
	At time.Time
}

type SeenTick struct {
	Now time.Time
}

type MarkSeenDone struct {
	Err error
}

type DeleteMessage struct {
	ID string
}

type DeleteDone struct {
	Err error
}

type (
	PurgePrompt    struct{}
	PurgeCanceled  struct{}
	PurgeConfirmed struct{}
)

type PurgeDone struct {
	Err error
}

type SearchInput struct {
	Value string
}

type ClockTick struct {
	Now time.Time
}

type SetBodyMode struct {
	Mode BodyMode
}

func (HeadersLoaded) isEvent()  {}
func (ClickMessage) isEvent()   {}
func (OpenMessage) isEvent()    {}
func (MessageLoaded) isEvent()  {}
func (OpenedAt) isEvent()       {}
func (SeenTick) isEvent()       {}
func (MarkSeenDone) isEvent()   {}
func (DeleteMessage) isEvent()  {}
func (DeleteDone) isEvent()     {}
func (PurgePrompt) isEvent()    {}
func (PurgeCanceled) isEvent()  {}
func (PurgeConfirmed) isEvent() {}
func (PurgeDone) isEvent()      {}
func (SearchInput) isEvent()    {}
func (ClockTick) isEvent()      {}
func (SetBodyMode) isEvent()    {}
