package mailbox

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/session"
)

func TestInit(t *testing.T) {
	screen, effects := Init("alice", "m9")
	want := Screen{
		Mailbox:  "alice",
		State:    LoadingList{Pending: "m9"},
		BodyMode: SafeHTML,
	}
	if diff := cmp.Diff(want, screen); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
	diffEffects(t, []Effect{SampleTime{For: SampleClock}, FetchHeaders{Mailbox: "alice"}}, effects)
}

func TestEndToEndScenario(t *testing.T) {
	screen, _ := Init("alice", "")
	if diff := cmp.Diff(LoadingList{}, screen.State); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}

	headers := []inbucket.Header{header("m1", "one", "a@x"), header("m2", "two", "b@x")}
	sess, screen, effects := Update(session.New(nil, 0), screen, HeadersLoaded{Headers: headers})
	diffEffects(t, nil, effects)
	want := ShowingList{List: MessageList{Headers: headers}, Detail: NoMessage{}}
	if diff := cmp.Diff(want, screen.State); diff != "" {
		t.Fatalf("after list load (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alice"}, sess.Recent); diff != "" {
		t.Errorf("recent mismatch (-want +got):\n%s", diff)
	}

	sess, screen, effects = Update(sess, screen, ClickMessage{ID: "m2"})
	if _, ok := detailOf(t, screen).(LoadingMessage); !ok {
		t.Fatalf("detail = %T, want LoadingMessage", detailOf(t, screen))
	}
	if got := countEffects[FetchMessage](effects); got != 1 {
		t.Errorf("fetch requests = %d, want 1", got)
	}
	if sess.RoutingEnabled() {
		t.Error("click should suppress the next route change")
	}

	m2 := message("m2", "")
	_, screen, effects = Update(sess, screen, MessageLoaded{Message: m2})
	if screen.BodyMode != PlainText {
		t.Errorf("body mode = %v, want PlainText", screen.BodyMode)
	}
	wantDetail := ShowingMessage{Visible: VisibleMessage{Message: m2}}
	if diff := cmp.Diff(MessageState(wantDetail), detailOf(t, screen)); diff != "" {
		t.Errorf("detail mismatch (-want +got):\n%s", diff)
	}
	diffEffects(t, []Effect{SampleTime{For: SampleOpenedAt}}, effects)
}

func TestStaleHeadersAreIgnored(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("y", "<p>hi</p>"))
	before := screen

	gotSess, got, effects := Update(sess, screen, HeadersLoaded{Headers: []inbucket.Header{header("q", "", "")}})
	if diff := cmp.Diff(before, got); diff != "" {
		t.Errorf("stale list changed the screen (-want +got):\n%s", diff)
	}
	diffEffects(t, nil, effects)
	if session.RecentChanged(sess, gotSess) {
		t.Error("stale list should not touch the session")
	}
}

func TestHeadersFailureFlashes(t *testing.T) {
	screen, _ := Init("alice", "")
	sess, got, effects := Update(session.New(nil, 0), screen, HeadersLoaded{Err: errors.New("boom")})
	if diff := cmp.Diff(screen, got); diff != "" {
		t.Errorf("failure changed the screen (-want +got):\n%s", diff)
	}
	diffEffects(t, nil, effects)
	if sess.Flash == nil || sess.Flash.Title != "Failed to load mailbox" {
		t.Errorf("flash = %+v", sess.Flash)
	}
}

func TestPendingSelectionOpensAfterLoad(t *testing.T) {
	screen, _ := Init("alice", "y")
	sess, screen, effects := Update(session.New(nil, 0), screen, HeadersLoaded{Headers: threeHeaders()})

	list, _ := screen.List()
	if list.Selected != "y" {
		t.Errorf("selected = %q, want y", list.Selected)
	}
	if _, ok := detailOf(t, screen).(LoadingMessage); !ok {
		t.Errorf("detail = %T, want LoadingMessage", detailOf(t, screen))
	}
	diffEffects(t, []Effect{FetchMessage{Mailbox: "alice", ID: "y"}}, effects)
	if !sess.RoutingEnabled() {
		t.Error("programmatic open must not suppress routing")
	}
	if diff := cmp.Diff([]string{"alice"}, sess.Recent); diff != "" {
		t.Errorf("recent mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenMessageWhileLoadingReplacesPending(t *testing.T) {
	screen, _ := Init("alice", "x")
	_, screen, effects := Update(session.New(nil, 0), screen, OpenMessage{ID: "z"})
	if diff := cmp.Diff(ViewState(LoadingList{Pending: "z"}), screen.State); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	diffEffects(t, nil, effects)
}

func TestClickIsIgnoredWhileLoading(t *testing.T) {
	screen, _ := Init("alice", "")
	sess, got, effects := Update(session.New(nil, 0), screen, ClickMessage{ID: "x"})
	if diff := cmp.Diff(screen, got); diff != "" {
		t.Errorf("screen changed (-want +got):\n%s", diff)
	}
	diffEffects(t, nil, effects)
	if !sess.RoutingEnabled() {
		t.Error("ignored click should not touch routing")
	}
}

func TestClickReplacesLocation(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())
	_, _, effects := Update(sess, screen, ClickMessage{ID: "x"})
	diffEffects(t, []Effect{
		ReplaceLocation{Path: "/m/alice/x"},
		FetchMessage{Mailbox: "alice", ID: "x"},
	}, effects)
}

func TestSelectingWhileShowingKeepsOldMessage(t *testing.T) {
	a := message("x", "<p>a</p>")
	sess, screen := shown(t, threeHeaders(), a)
	visibleA, _ := screen.Visible()

	sess, screen, _ = Update(sess, screen, ClickMessage{ID: "y"})
	if diff := cmp.Diff(MessageState(Transitioning{Visible: visibleA}), detailOf(t, screen)); diff != "" {
		t.Fatalf("detail mismatch (-want +got):\n%s", diff)
	}
	list, _ := screen.List()
	if list.Selected != "y" {
		t.Errorf("selected = %q, want y", list.Selected)
	}

	// A second click before anything loads keeps A, not the pending y.
	_, screen, effects := Update(sess, screen, ClickMessage{ID: "z"})
	if diff := cmp.Diff(MessageState(Transitioning{Visible: visibleA}), detailOf(t, screen)); diff != "" {
		t.Errorf("detail mismatch after re-click (-want +got):\n%s", diff)
	}
	got, ok := screen.Visible()
	if !ok || got.Message.ID != "x" {
		t.Errorf("visible = %q, want x", got.Message.ID)
	}
	if !screen.Loading() {
		t.Error("expected Loading() while transitioning")
	}
	if countEffects[FetchMessage](effects) != 1 {
		t.Errorf("effects = %v", effects)
	}
}

func TestLoadingToLoadingOnReclick(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())
	sess, screen, _ = Update(sess, screen, ClickMessage{ID: "x"})
	_, screen, _ = Update(sess, screen, ClickMessage{ID: "y"})
	if _, ok := detailOf(t, screen).(LoadingMessage); !ok {
		t.Errorf("detail = %T, want LoadingMessage", detailOf(t, screen))
	}
}

func TestMessageLoadedKeepsModeWhenHTMLPresent(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())
	screen.BodyMode = PlainText
	_, screen, _ = Update(sess, screen, MessageLoaded{Message: message("x", "<b>hi</b>")})
	if screen.BodyMode != PlainText {
		t.Errorf("body mode = %v, want unchanged PlainText", screen.BodyMode)
	}

	_, screen = loaded(t, threeHeaders())
	_, screen, _ = Update(sess, screen, MessageLoaded{Message: message("x", "<b>hi</b>")})
	if screen.BodyMode != SafeHTML {
		t.Errorf("body mode = %v, want SafeHTML", screen.BodyMode)
	}
}

func TestMessageLoadedSetsSelection(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())
	sess, screen, _ = Update(sess, screen, ClickMessage{ID: "x"})
	_, screen, _ = Update(sess, screen, MessageLoaded{Message: message("y", "")})
	list, _ := screen.List()
	if list.Selected != "y" {
		t.Errorf("selected = %q, want y", list.Selected)
	}
}

func TestMessageFailureLeavesStateAndFlashes(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())
	sess, screen, _ = Update(sess, screen, ClickMessage{ID: "x"})
	before := screen
	sess, screen, effects := Update(sess, screen, MessageLoaded{Err: &inbucket.APIError{StatusCode: 404, Message: "gone"}})
	if diff := cmp.Diff(before, screen); diff != "" {
		t.Errorf("screen changed (-want +got):\n%s", diff)
	}
	diffEffects(t, nil, effects)
	if sess.Flash == nil || sess.Flash.Title != "Failed to load message" {
		t.Errorf("flash = %+v", sess.Flash)
	}
}

func TestDeleteConsistency(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, effects := Update(sess, screen, DeleteMessage{ID: "x"})

	list, _ := screen.List()
	want := []inbucket.Header{threeHeaders()[1], threeHeaders()[2]}
	if diff := cmp.Diff(want, list.Headers); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
	if _, ok := detailOf(t, screen).(NoMessage); !ok {
		t.Errorf("detail = %T, want NoMessage", detailOf(t, screen))
	}
	if list.Selected != "" {
		t.Errorf("selected = %q, want none", list.Selected)
	}
	diffEffects(t, []Effect{
		Delete{Mailbox: "alice", ID: "x"},
		ReplaceLocation{Path: "/m/alice"},
	}, effects)
	if sess.RoutingEnabled() {
		t.Error("delete should suppress the next route change")
	}
}

func TestDeleteFailureKeepsOptimisticRemoval(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	sess, screen, _ = Update(sess, screen, DeleteMessage{ID: "x"})
	before := screen
	sess, screen, _ = Update(sess, screen, DeleteDone{Err: errors.New("nope")})
	if diff := cmp.Diff(before, screen); diff != "" {
		t.Errorf("screen changed (-want +got):\n%s", diff)
	}
	if sess.Flash == nil {
		t.Error("expected flash")
	}
}

func TestDeleteDoesNotAliasPreviousScreen(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())
	before := screen
	_, _, _ = Update(sess, screen, DeleteMessage{ID: "y"})
	list, _ := before.List()
	if len(list.Headers) != 3 {
		t.Errorf("previous screen lost headers: %v", list.Headers)
	}
}

func TestPurgeFlow(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("y", ""))

	_, screen, effects := Update(sess, screen, PurgePrompt{})
	if !screen.PromptPurge {
		t.Fatal("expected purge prompt")
	}
	diffEffects(t, nil, effects)

	_, canceled, _ := Update(sess, screen, PurgeCanceled{})
	if canceled.PromptPurge {
		t.Error("expected prompt cleared on cancel")
	}

	sess, screen, effects = Update(sess, screen, PurgeConfirmed{})
	if screen.PromptPurge {
		t.Error("expected prompt cleared on confirm")
	}
	list, _ := screen.List()
	if diff := cmp.Diff([]inbucket.Header{}, list.Headers, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("headers not empty (-want +got):\n%s", diff)
	}
	if _, ok := detailOf(t, screen).(NoMessage); !ok {
		t.Errorf("detail = %T, want NoMessage", detailOf(t, screen))
	}
	if got := countEffects[Purge](effects); got != 1 {
		t.Errorf("purge requests = %d, want 1", got)
	}
	if got := countEffects[ReplaceLocation](effects); got != 1 {
		t.Errorf("location replacements = %d, want 1", got)
	}
	if sess.RoutingEnabled() {
		t.Error("purge should suppress the next route change")
	}
}

func TestPurgeWhileLoadingStillRequests(t *testing.T) {
	screen, _ := Init("alice", "x")
	screen.PromptPurge = true
	_, screen, effects := Update(session.New(nil, 0), screen, PurgeConfirmed{})
	if diff := cmp.Diff(ViewState(LoadingList{Pending: "x"}), screen.State); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	if screen.PromptPurge {
		t.Error("expected prompt cleared")
	}
	diffEffects(t, []Effect{ReplaceLocation{Path: "/m/alice"}, Purge{Mailbox: "alice"}}, effects)
}

func TestSearchInput(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())

	_, screen, _ = Update(sess, screen, SearchInput{Value: "I"})
	list, _ := screen.List()
	if screen.SearchInput != "I" || list.SearchFilter != "" {
		t.Errorf("input=%q filter=%q", screen.SearchInput, list.SearchFilter)
	}

	_, screen, _ = Update(sess, screen, SearchInput{Value: "InVo"})
	list, _ = screen.List()
	if list.SearchFilter != "invo" {
		t.Errorf("filter = %q, want invo", list.SearchFilter)
	}
}

func TestSearchInputWhileLoadingStoresRawOnly(t *testing.T) {
	screen, _ := Init("alice", "")
	_, screen, _ = Update(session.New(nil, 0), screen, SearchInput{Value: "abc"})
	if screen.SearchInput != "abc" {
		t.Errorf("raw input = %q", screen.SearchInput)
	}
	if diff := cmp.Diff(ViewState(LoadingList{}), screen.State); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
}

func TestClockTick(t *testing.T) {
	screen, _ := Init("alice", "")
	_, screen, effects := Update(session.New(nil, 0), screen, ClockTick{Now: t0})
	if !screen.Now.Equal(t0) {
		t.Errorf("now = %v", screen.Now)
	}
	diffEffects(t, nil, effects)
}

func TestSetBodyMode(t *testing.T) {
	sess, screen := shown(t, threeHeaders(), message("x", ""))
	_, screen, _ = Update(sess, screen, SetBodyMode{Mode: SafeHTML})
	if screen.BodyMode != PlainText {
		t.Error("SafeHTML must be refused for a message without HTML")
	}

	sess, screen = shown(t, threeHeaders(), message("x", "<p>x</p>"))
	_, screen, _ = Update(sess, screen, SetBodyMode{Mode: PlainText})
	if screen.BodyMode != PlainText {
		t.Error("expected PlainText")
	}
	_, screen, _ = Update(sess, screen, SetBodyMode{Mode: SafeHTML})
	if screen.BodyMode != SafeHTML {
		t.Error("expected SafeHTML")
	}
}
