package mailbox

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSubscriptions(t *testing.T) {
	screen, _ := Init("alice", "")
	if diff := cmp.Diff(Subscriptions{Clock: true}, screen.Subscriptions()); diff != "" {
		t.Errorf("loading (-want +got):\n%s", diff)
	}

	_, screen = shown(t, threeHeaders(), message("x", ""))
	if diff := cmp.Diff(Subscriptions{Clock: true, Seen: true}, screen.Subscriptions()); diff != "" {
		t.Errorf("showing unseen (-want +got):\n%s", diff)
	}

	seen := message("x", "")
	seen.Seen = true
	_, screen = shown(t, threeHeaders(), seen)
	if diff := cmp.Diff(Subscriptions{Clock: true}, screen.Subscriptions()); diff != "" {
		t.Errorf("showing seen (-want +got):\n%s", diff)
	}
}

func TestSeenTickerStopsWhileTransitioning(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	_, screen, _ = Update(sess, screen, ClickMessage{ID: "y"})
	if screen.Subscriptions().Seen {
		t.Error("seen ticker should not run while transitioning")
	}
}

func TestMarkSeenAfterDelay(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, _ = Update(sess, screen, OpenedAt{At: t0})

	visible, _ := screen.Visible()
	if want := t0.Add(1500 * time.Millisecond); !visible.MarkSeenAt.Equal(want) {
		t.Fatalf("MarkSeenAt = %v, want %v", visible.MarkSeenAt, want)
	}

	// Before the deadline nothing happens.
	sess, screen, effects := Update(sess, screen, SeenTick{Now: t0.Add(1250 * time.Millisecond)})
	diffEffects(t, nil, effects)
	if v, _ := screen.Visible(); v.Message.Seen {
		t.Fatal("marked seen too early")
	}

	sess, screen, effects = Update(sess, screen, SeenTick{Now: t0.Add(1500 * time.Millisecond)})
	diffEffects(t, []Effect{MarkSeen{Mailbox: "alice", ID: "x"}}, effects)

	visible, _ = screen.Visible()
	if !visible.Message.Seen || !visible.MarkSeenAt.IsZero() {
		t.Errorf("visible = seen:%v markSeenAt:%v", visible.Message.Seen, visible.MarkSeenAt)
	}
	list, _ := screen.List()
	if !list.Headers[0].Seen {
		t.Error("list header not marked seen")
	}
	if list.Headers[1].Seen || list.Headers[2].Seen {
		t.Error("other headers changed")
	}
	if screen.Subscriptions().Seen {
		t.Error("seen ticker should stop once the message is seen")
	}

	// Further ticks never issue a second request.
	_, _, effects = apply(sess, screen,
		SeenTick{Now: t0.Add(2 * time.Second)},
		SeenTick{Now: t0.Add(5 * time.Second)},
	)
	diffEffects(t, nil, effects)
}

func TestMarkSeenDoesNotMutatePreviousHeaders(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, _ = Update(sess, screen, OpenedAt{At: t0})
	before, _ := screen.List()

	_, _, _ = Update(sess, screen, SeenTick{Now: t0.Add(time.Minute)})
	if before.Headers[0].Seen {
		t.Error("previous screen's headers were mutated")
	}
}

func TestOpenedAtIgnoredForSeenMessage(t *testing.T) {
	seen := message("x", "")
	seen.Seen = true
	sess, screen := shown(t, threeHeaders(), seen)
	before := screen
	_, screen, _ = Update(sess, screen, OpenedAt{At: t0})
	if diff := cmp.Diff(before, screen); diff != "" {
		t.Errorf("screen changed (-want +got):\n%s", diff)
	}
}

func TestOpenedAtArmsOnce(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, _ = Update(sess, screen, OpenedAt{At: t0})
	_, screen, _ = Update(sess, screen, OpenedAt{At: t0.Add(time.Minute)})
	visible, _ := screen.Visible()
	if !visible.MarkSeenAt.Equal(t0.Add(SeenDelay)) {
		t.Errorf("MarkSeenAt = %v", visible.MarkSeenAt)
	}
}

func TestOpenedAtDroppedWhileTransitioning(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, _ = Update(sess, screen, ClickMessage{ID: "y"})
	before := screen
	_, screen, _ = Update(sess, screen, OpenedAt{At: t0})
	if diff := cmp.Diff(before, screen); diff != "" {
		t.Errorf("screen changed (-want +got):\n%s", diff)
	}
}

func TestSwitchingMessageCancelsPendingMarkSeen(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, _ = Update(sess, screen, OpenedAt{At: t0})
	sess, screen, _ = Update(sess, screen, ClickMessage{ID: "y"})

	_, _, effects := Update(sess, screen, SeenTick{Now: t0.Add(time.Minute)})
	if got := countEffects[MarkSeen](effects); got != 0 {
		t.Errorf("mark-seen requests = %d, want 0", got)
	}

	// The newly loaded message starts with no deadline.
	_, screen, _ = Update(sess, screen, MessageLoaded{Message: message("y", "")})
	visible, _ := screen.Visible()
	if !visible.MarkSeenAt.IsZero() {
		t.Errorf("MarkSeenAt = %v, want zero", visible.MarkSeenAt)
	}
}

func TestMarkSeenFailureKeepsOptimisticSeen(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, _ = apply(sess, screen, OpenedAt{At: t0}, SeenTick{Now: t0.Add(time.Minute)})
	before := screen

	sess, screen, effects := Update(sess, screen, MarkSeenDone{Err: errors.New("offline")})
	if diff := cmp.Diff(before, screen); diff != "" {
		t.Errorf("screen changed (-want +got):\n%s", diff)
	}
	diffEffects(t, nil, effects)
	if sess.Flash == nil || sess.Flash.Title != "Failed to mark message as seen" {
		t.Errorf("flash = %+v", sess.Flash)
	}
}

func TestSuccessfulCompletionsDoNotFlash(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, _, _ = apply(sess, screen, MarkSeenDone{}, DeleteDone{}, PurgeDone{})
	if sess.Flash != nil {
		t.Errorf("flash = %+v, want none", sess.Flash)
	}
}
