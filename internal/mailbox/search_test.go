package mailbox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"go.withmatt.com/bucket/internal/inbucket"
)

func ids(headers []inbucket.Header) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		out = append(out, h.ID)
	}
	return out
}

func TestNormalizeSearch(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"a", ""},
		{" a ", ""},
		{"é", ""},
		{"ab", "ab"},
		{"InVoice", "invoice"},
		{"  Re", "  re"},
	}
	for _, tt := range tests {
		if got := NormalizeSearch(tt.raw); got != tt.want {
			t.Errorf("NormalizeSearch(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	headers := threeHeaders()
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"empty keeps all", "", []string{"x", "y", "z"}},
		{"subject", "invoice", []string{"y"}},
		{"from", "no-reply", []string{"z"}},
		{"subject or from", "e", []string{"x", "y", "z"}},
		{"display name", "security", []string{"z"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(headers, tt.filter))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tt.filter, diff)
			}
		})
	}
}

func TestFilterResultIsSubsequence(t *testing.T) {
	headers := []inbucket.Header{
		header("1", "alpha report", ""),
		header("2", "beta", "report@x"),
		header("3", "gamma", ""),
		header("4", "Report final", ""),
	}
	got := ids(Filter(headers, NormalizeSearch("REPORT")))
	if diff := cmp.Diff([]string{"1", "2", "4"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayedIsNewestFirst(t *testing.T) {
	list := MessageList{Headers: threeHeaders()}
	if diff := cmp.Diff([]string{"z", "y", "x"}, ids(Displayed(list))); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	list.SearchFilter = "e"
	_ = Displayed(list)
	if diff := cmp.Diff([]string{"x", "y", "z"}, ids(list.Headers)); diff != "" {
		t.Errorf("Displayed reordered the stored list (-want +got):\n%s", diff)
	}
}

func TestSearchThroughUpdate(t *testing.T) {
	sess, screen := loaded(t, threeHeaders())
	for _, tt := range []struct {
		input string
		want  []string
	}{
		{"", []string{"z", "y", "x"}},
		{"w", []string{"z", "y", "x"}},
		{"we", []string{"x"}},
		{"WELCOME", []string{"x"}},
	} {
		_, next, _ := Update(sess, screen, SearchInput{Value: tt.input})
		list, _ := next.List()
		if diff := cmp.Diff(tt.want, ids(Displayed(list))); diff != "" {
			t.Errorf("input %q (-want +got):\n%s", tt.input, diff)
		}
	}
}
