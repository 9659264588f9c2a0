package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.withmatt.com/bucket/internal/inbucket"
	"go.withmatt.com/bucket/internal/route"
)

func TestResolveLocation(t *testing.T) {
	tests := []struct {
		args    []string
		def     string
		want    route.Location
		wantErr bool
	}{
		{nil, "", route.Location{}, false},
		{nil, " ops ", route.Location{Mailbox: "ops"}, false},
		{[]string{"alice"}, "ops", route.Location{Mailbox: "alice"}, false},
		{[]string{"alice", "m2"}, "", route.Location{Mailbox: "alice", MessageID: "m2"}, false},
		{[]string{"/m/alice/m2"}, "", route.Location{Mailbox: "alice", MessageID: "m2"}, false},
		{[]string{"/m/alice"}, "", route.Location{Mailbox: "alice"}, false},
		{[]string{"/m/alice", "m2"}, "", route.Location{}, true},
		{[]string{"/m/"}, "", route.Location{}, true},
		{[]string{"  "}, "", route.Location{}, true},
	}

	for _, tt := range tests {
		got, err := resolveLocation(tt.args, tt.def)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveLocation(%q) err = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveLocation(%q) = %+v, want %+v", tt.args, got, tt.want)
		}
	}
}

func TestOpenTarget(t *testing.T) {
	got, err := openTarget("http://inbucket.test", []string{"alice", "m2"}, false)
	if err != nil {
		t.Fatalf("openTarget: %v", err)
	}
	if got != "http://inbucket.test/m/alice/m2" {
		t.Errorf("web url = %q", got)
	}

	got, err = openTarget("http://inbucket.test", []string{"/m/alice/m2"}, true)
	if err != nil {
		t.Fatalf("openTarget source: %v", err)
	}
	if got != "http://inbucket.test/serve/mailbox/alice/m2/source" {
		t.Errorf("source url = %q", got)
	}

	if _, err := openTarget("http://inbucket.test", []string{"alice"}, true); err == nil {
		t.Error("expected error for --source without a message id")
	}
}

func TestListMailboxesKeepsOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/api/v1/mailbox/")
		_, _ = io.WriteString(w, `[{"mailbox":"`+name+`","id":"`+name+`-1","subject":"hello `+name+`"}]`)
	}))
	defer server.Close()

	client := inbucket.NewClient(server.URL, "", "")
	listings, err := listMailboxes(context.Background(), client, []string{"alice", "bob", "carol"})
	if err != nil {
		t.Fatalf("listMailboxes: %v", err)
	}

	var got []string
	for _, l := range listings {
		got = append(got, l.name+":"+l.headers[0].ID)
	}
	want := []string{"alice:alice-1", "bob:bob-1", "carol:carol-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listings mismatch (-want +got):\n%s", diff)
	}
}

func TestListMailboxesReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/bob") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, "[]")
	}))
	defer server.Close()

	client := inbucket.NewClient(server.URL, "", "")
	_, err := listMailboxes(context.Background(), client, []string{"alice", "bob"})
	var apiErr *inbucket.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected wrapped 500 APIError, got %v", err)
	}
	if !strings.Contains(err.Error(), "bob") {
		t.Errorf("error should name the mailbox: %v", err)
	}
}

type recordingPurger struct {
	mu     sync.Mutex
	purged []string
	fail   string
}

func (p *recordingPurger) PurgeMailbox(ctx context.Context, name string) error {
	if name == p.fail {
		return errors.New("boom")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.purged = append(p.purged, name)
	return nil
}

func TestPurgeMailboxes(t *testing.T) {
	p := &recordingPurger{}
	if err := purgeMailboxes(context.Background(), p, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("purgeMailboxes: %v", err)
	}
	if len(p.purged) != 3 {
		t.Errorf("purged = %v, want 3 mailboxes", p.purged)
	}

	p = &recordingPurger{fail: "b"}
	err := purgeMailboxes(context.Background(), p, []string{"a", "b"})
	if err == nil || !strings.Contains(err.Error(), "unable to purge b") {
		t.Errorf("err = %v, want purge failure for b", err)
	}
}

func TestPrintListings(t *testing.T) {
	listings := []mailboxListing{
		{name: "alice", headers: []inbucket.Header{
			{ID: "m1", From: "ops@example.com", Subject: "first", Seen: true},
			{ID: "m2", From: "billing@example.com", Subject: "second\nline"},
		}},
		{name: "bob"},
	}

	var buf bytes.Buffer
	if err := printListings(&buf, listings); err != nil {
		t.Fatalf("printListings: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "alice:") || !strings.Contains(out, "bob:") {
		t.Errorf("missing mailbox headings:\n%s", out)
	}
	if strings.Index(out, "m2") > strings.Index(out, "m1") {
		t.Errorf("expected newest message first:\n%s", out)
	}
	if !strings.Contains(out, "second line") {
		t.Errorf("expected subject on one line:\n%s", out)
	}
	if !strings.Contains(out, "No messages.") {
		t.Errorf("expected empty mailbox note:\n%s", out)
	}
}
