package mailbox

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/session"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func header(id, subject, from string) inbucket.Header {
	return inbucket.Header{Mailbox: "alice", ID: id, Subject: subject, From: from}
}

func message(id, html string) inbucket.Message {
	return inbucket.Message{
		Mailbox: "alice",
		ID:      id,
		Subject: "subject " + id,
		Body:    inbucket.Body{Text: "text " + id, HTML: html},
	}
}

func threeHeaders() []inbucket.Header {
	return []inbucket.Header{
		header("x", "Welcome aboard", "ops@example.com"),
		header("y", "Invoice #42", "billing@example.com"),
		header("z", "Password reset", "Security <no-reply@example.com>"),
	}
}

// loaded returns a screen with the header list loaded and nothing selected.
func loaded(t *testing.T, headers []inbucket.Header) (session.Session, Screen) {
	t.Helper()
	screen, _ := Init("alice", "")
	sess, screen, _ := Update(session.New(nil, 0), screen, HeadersLoaded{Headers: headers})
	return sess, screen
}

// shown returns a screen displaying msg, with its open time not yet sampled.
func shown(t *testing.T, headers []inbucket.Header, msg inbucket.Message) (session.Session, Screen) {
	t.Helper()
	sess, screen := loaded(t, headers)
	sess, screen, _ = Update(sess, screen, ClickMessage{ID: msg.ID})
	sess, screen, _ = Update(sess, screen, MessageLoaded{Message: msg})
	return sess.EnableRouting(), screen
}

func apply(sess session.Session, screen Screen, events ...Event) (session.Session, Screen, []Effect) {
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		sess, screen, effects = Update(sess, screen, ev)
		all = append(all, effects...)
	}
	return sess, screen, all
}

func diffEffects(t *testing.T, want, got []Effect) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("effects mismatch (-want +got):\n%s", diff)
	}
}

func detailOf(t *testing.T, screen Screen) MessageState {
	t.Helper()
	list, ok := screen.State.(ShowingList)
	if !ok {
		t.Fatalf("state = %T, want ShowingList", screen.State)
	}
	return list.Detail
}

func countEffects[T Effect](effects []Effect) int {
	n := 0
	for _, e := range effects {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
