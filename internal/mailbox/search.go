package mailbox

import (
	"slices"
	"strings"
	"unicode/utf8"

	"go.withmatt.com/bucket/internal/inbucket"
)

// NormalizeSearch turns raw search input into a filter. Input of one
// character or less (ignoring surrounding space) filters nothing.
func NormalizeSearch(raw string) string {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) <= 1 {
		return ""
	}
	return strings.ToLower(raw)
}

// Filter returns the headers whose subject or sender contains filter,
// in their original order.
func Filter(headers []inbucket.Header, filter string) []inbucket.Header {
	if filter == "" {
		return headers
	}
	out := make([]inbucket.Header, 0, len(headers))
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h.Subject), filter) ||
			strings.Contains(strings.ToLower(h.From), filter) {
			out = append(out, h)
		}
	}
	return out
}

// Displayed is the list as rendered: filtered, newest first.
func Displayed(list MessageList) []inbucket.Header {
	out := slices.Clone(Filter(list.Headers, list.SearchFilter))
	slices.Reverse(out)
	return out
}
