package route

import (
	"errors"
	"testing"
)

func TestPathsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		path string
	}{
		{name: "mailbox", loc: Location{Mailbox: "alice"}, path: "/m/alice"},
		{name: "message", loc: Location{Mailbox: "alice", MessageID: "20240101T000000-0001"}, path: "/m/alice/20240101T000000-0001"},
		{name: "escaped", loc: Location{Mailbox: "a b", MessageID: "x/y"}, path: "/m/a%20b/x%2Fy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.Path(); got != tt.path {
				t.Fatalf("Path() = %q, want %q", got, tt.path)
			}
			got, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.path, err)
			}
			if got != tt.loc {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.path, got, tt.loc)
			}
		})
	}
}

func TestParseRejectsUnknownPaths(t *testing.T) {
	for _, path := range []string{"", "/", "/m", "/x/alice", "/m/alice/1/2", "/m//1"} {
		if _, err := Parse(path); !errors.Is(err, ErrUnknownPath) {
			t.Errorf("Parse(%q) err = %v, want ErrUnknownPath", path, err)
		}
	}
}

func TestHistoryReplaceDoesNotGrow(t *testing.T) {
	h := NewHistory("/m/alice")
	h.ReplaceLocation("/m/alice/1")
	h.ReplaceLocation("/m/alice")
	if h.Current() != "/m/alice" {
		t.Errorf("Current() = %q", h.Current())
	}
	if h.Replacements() != 2 {
		t.Errorf("Replacements() = %d, want 2", h.Replacements())
	}
}

func TestWebURLs(t *testing.T) {
	base := "http://localhost:9000/"
	if got := WebURL(base, Location{Mailbox: "alice", MessageID: "1"}); got != "http://localhost:9000/m/alice/1" {
		t.Errorf("WebURL = %q", got)
	}
	if got := SourceURL(base, "alice", "1"); got != "http://localhost:9000/serve/mailbox/alice/1/source" {
		t.Errorf("SourceURL = %q", got)
	}
	if got := AttachmentURL(base, "/serve/mailbox/alice/1/attach/0/a.txt"); got != "http://localhost:9000/serve/mailbox/alice/1/attach/0/a.txt" {
		t.Errorf("AttachmentURL = %q", got)
	}
	if got := AttachmentURL(base, "https://cdn.test/a.txt"); got != "https://cdn.test/a.txt" {
		t.Errorf("AttachmentURL absolute = %q", got)
	}
}
