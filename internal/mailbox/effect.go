package mailbox

// Effect is a request Update hands back to the host. Each request effect
// yields exactly one completion Event.
type Effect interface {
	isEffect()
}

// FetchHeaders completes with HeadersLoaded.
type FetchHeaders struct {
	Mailbox string
}

// FetchMessage completes with MessageLoaded.
type FetchMessage struct {
	Mailbox string
	ID      string
}

// MarkSeen completes with MarkSeenDone.
type MarkSeen struct {
	Mailbox string
	ID      string
}

// Delete completes with DeleteDone.
type Delete struct {
	Mailbox string
	ID      string
}

// Purge completes with PurgeDone.
type Purge struct {
	Mailbox string
}

// ReplaceLocation updates the current location without adding history.
// It has no completion.
type ReplaceLocation struct {
	Path string
}

type TimeSample int

const (
	// SampleClock completes with ClockTick.
	SampleClock TimeSample = iota
	// SampleOpenedAt completes with OpenedAt.
	SampleOpenedAt
)

// SampleTime reads the current time.
type SampleTime struct {
	For TimeSample
}

func (FetchHeaders) isEffect()    {}
func (FetchMessage) isEffect()    {}
func (MarkSeen) isEffect()        {}
func (Delete) isEffect()          {}
func (Purge) isEffect()           {}
func (ReplaceLocation) isEffect() {}
func (SampleTime) isEffect()      {}
