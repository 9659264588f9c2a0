package mailbox

import (
	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/route"
	"go.withmatt.com/bucket/internal/session"
)

// Init creates the screen for mailbox. A non-empty selection is opened once
// the header list has loaded.
func Init(mailbox, selection string) (Screen, []Effect) {
	screen := Screen{
		Mailbox:  mailbox,
		State:    LoadingList{Pending: selection},
		BodyMode: SafeHTML,
	}
	return screen, []Effect{
		SampleTime{For: SampleClock},
		FetchHeaders{Mailbox: mailbox},
	}
}

// Update applies ev to screen. The session is threaded through explicitly
// and returned alongside the next screen.
func Update(sess session.Session, screen Screen, ev Event) (session.Session, Screen, []Effect) {
	switch ev := ev.(type) {
	case HeadersLoaded:
		return headersLoaded(sess, screen, ev)
	case ClickMessage:
		return clickMessage(sess, screen, ev.ID)
	case OpenMessage:
		return openMessage(sess, screen, ev.ID)
	case MessageLoaded:
		return messageLoaded(sess, screen, ev)
	case OpenedAt:
		return sess, openedAt(screen, ev), nil
	case SeenTick:
		return seenTick(sess, screen, ev)
	case MarkSeenDone:
		return failed(sess, screen, "Failed to mark message as seen", ev.Err)
	case DeleteMessage:
		return deleteMessage(sess, screen, ev.ID)
	case DeleteDone:
		return failed(sess, screen, "Failed to delete message", ev.Err)
	case PurgePrompt:
		screen.PromptPurge = true
		return sess, screen, nil
	case PurgeCanceled:
		screen.PromptPurge = false
		return sess, screen, nil
	case PurgeConfirmed:
		return purgeConfirmed(sess, screen)
	case PurgeDone:
		return failed(sess, screen, "Failed to purge mailbox", ev.Err)
	case SearchInput:
		return sess, searchInput(screen, ev.Value), nil
	case ClockTick:
		screen.Now = ev.Now
		return sess, screen, nil
	case SetBodyMode:
		return sess, setBodyMode(screen, ev.Mode), nil
	default:
		return sess, screen, nil
	}
}

// failed leaves the screen as is and flashes err, if any.
func failed(sess session.Session, screen Screen, title string, err error) (session.Session, Screen, []Effect) {
	if err != nil {
		sess = sess.ShowFlash(session.FlashFromError(title, err))
	}
	return sess, screen, nil
}

func headersLoaded(sess session.Session, screen Screen, ev HeadersLoaded) (session.Session, Screen, []Effect) {
	if ev.Err != nil {
		return failed(sess, screen, "Failed to load mailbox", ev.Err)
	}
	loading, ok := screen.State.(LoadingList)
	if !ok {
		return sess, screen, nil
	}

	screen.State = ShowingList{
		List:   MessageList{Headers: ev.Headers},
		Detail: NoMessage{},
	}
	if loading.Pending != "" {
		return openMessage(sess, screen, loading.Pending)
	}
	return sess.AddRecent(screen.Mailbox), screen, nil
}

func clickMessage(sess session.Session, screen Screen, id string) (session.Session, Screen, []Effect) {
	next, ok := selectMessage(screen, id)
	if !ok {
		return sess, screen, nil
	}
	return sess.DisableRouting(), next, []Effect{
		ReplaceLocation{Path: route.MessagePath(screen.Mailbox, id)},
		FetchMessage{Mailbox: screen.Mailbox, ID: id},
	}
}

func openMessage(sess session.Session, screen Screen, id string) (session.Session, Screen, []Effect) {
	if _, ok := screen.State.(LoadingList); ok {
		screen.State = LoadingList{Pending: id}
		return sess, screen, nil
	}
	next, ok := selectMessage(screen, id)
	if !ok {
		return sess, screen, nil
	}
	return sess.AddRecent(screen.Mailbox), next, []Effect{
		FetchMessage{Mailbox: screen.Mailbox, ID: id},
	}
}

// selectMessage marks id selected and moves the detail pane to a loading
// state. A message already on screen stays visible until the new one loads.
func selectMessage(screen Screen, id string) (Screen, bool) {
	list, ok := screen.State.(ShowingList)
	if !ok {
		return screen, false
	}
	list.List.Selected = id
	switch d := list.Detail.(type) {
	case ShowingMessage:
		list.Detail = Transitioning{Visible: d.Visible}
	case Transitioning:
		list.Detail = d
	default:
		list.Detail = LoadingMessage{}
	}
	screen.State = list
	return screen, true
}

func messageLoaded(sess session.Session, screen Screen, ev MessageLoaded) (session.Session, Screen, []Effect) {
	if ev.Err != nil {
		return failed(sess, screen, "Failed to load message", ev.Err)
	}
	list, ok := screen.State.(ShowingList)
	if !ok {
		return sess, screen, nil
	}

	if !ev.Message.HasHTML() {
		screen.BodyMode = PlainText
	}
	list.List.Selected = ev.Message.ID
	list.Detail = ShowingMessage{Visible: VisibleMessage{Message: ev.Message}}
	screen.State = list
	return sess, screen, []Effect{SampleTime{For: SampleOpenedAt}}
}

func deleteMessage(sess session.Session, screen Screen, id string) (session.Session, Screen, []Effect) {
	list, ok := screen.State.(ShowingList)
	if !ok {
		return sess, screen, nil
	}

	list.List.Headers = removeHeader(list.List.Headers, id)
	list.List.Selected = ""
	list.Detail = NoMessage{}
	screen.State = list
	return sess.DisableRouting(), screen, []Effect{
		Delete{Mailbox: screen.Mailbox, ID: id},
		ReplaceLocation{Path: route.MailboxPath(screen.Mailbox)},
	}
}

func purgeConfirmed(sess session.Session, screen Screen) (session.Session, Screen, []Effect) {
	screen.PromptPurge = false
	if list, ok := screen.State.(ShowingList); ok {
		list.List.Headers = []inbucket.Header{}
		list.List.Selected = ""
		list.Detail = NoMessage{}
		screen.State = list
	}
	return sess.DisableRouting(), screen, []Effect{
		ReplaceLocation{Path: route.MailboxPath(screen.Mailbox)},
		Purge{Mailbox: screen.Mailbox},
	}
}

func searchInput(screen Screen, value string) Screen {
	screen.SearchInput = value
	list, ok := screen.State.(ShowingList)
	if !ok {
		return screen
	}
	list.List.SearchFilter = NormalizeSearch(value)
	screen.State = list
	return screen
}

// setBodyMode refuses SafeHTML for a message without an HTML part.
func setBodyMode(screen Screen, mode BodyMode) Screen {
	if visible, ok := screen.Visible(); ok && mode == SafeHTML && !visible.Message.HasHTML() {
		return screen
	}
	screen.BodyMode = mode
	return screen
}

func removeHeader(headers []inbucket.Header, id string) []inbucket.Header {
	kept := make([]inbucket.Header, 0, len(headers))
	for _, h := range headers {
		if h.ID == id {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}
