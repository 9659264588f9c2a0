// Package session holds state shared across screens: the flash
// notification, recently visited mailboxes and the router suppression flag.
//
// Session is a value. Every mutator returns an updated copy so callers can
// thread it through state transitions explicitly.
package session

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"go.withmatt.com/bucket/internal/inbucket"
)

// DefaultRecentLimit caps the recent mailbox list when no limit is configured.
const DefaultRecentLimit = 8

type Session struct {
	Flash  *Flash
	Recent []string

	recentLimit     int
	routingDisabled bool
}

// Flash is a user-visible notification, usually describing a failed request.
type Flash struct {
	Title string
	Table []FlashRow
}

type FlashRow struct {
	Key   string
	Value string
}

// New returns a session with the given recent mailboxes, most recent first.
func New(recent []string, limit int) Session {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	s := Session{recentLimit: limit}
	for i := len(recent) - 1; i >= 0; i-- {
		s = s.AddRecent(recent[i])
	}
	return s
}

// DisableRouting suppresses the next location change triggered by the
// current screen. The flag is consumed by EnableRouting.
func (s Session) DisableRouting() Session {
	s.routingDisabled = true
	return s
}

func (s Session) EnableRouting() Session {
	s.routingDisabled = false
	return s
}

func (s Session) RoutingEnabled() bool {
	return !s.routingDisabled
}

// AddRecent moves name to the front of the recent list.
func (s Session) AddRecent(name string) Session {
	if name == "" {
		return s
	}
	limit := s.recentLimit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	recent := make([]string, 0, len(s.Recent)+1)
	recent = append(recent, name)
	for _, existing := range s.Recent {
		if existing == name {
			continue
		}
		recent = append(recent, existing)
	}
	if len(recent) > limit {
		recent = recent[:limit]
	}
	s.Recent = recent
	return s
}

func (s Session) ShowFlash(f Flash) Session {
	s.Flash = &f
	return s
}

func (s Session) ClearFlash() Session {
	s.Flash = nil
	return s
}

// RecentChanged reports whether the recent lists of a and b differ.
func RecentChanged(a, b Session) bool {
	return !slices.Equal(a.Recent, b.Recent)
}

// FlashFromError builds a flash describing a failed request.
func FlashFromError(title string, err error) Flash {
	var apiErr *inbucket.APIError
	if errors.As(err, &apiErr) {
		status := strconv.Itoa(apiErr.StatusCode)
		if text := http.StatusText(apiErr.StatusCode); text != "" {
			status += " " + text
		}
		return Flash{
			Title: title,
			Table: []FlashRow{
				{Key: "Error", Value: "Bad HTTP status"},
				{Key: "Status", Value: status},
				{Key: "Message", Value: apiErr.Message},
			},
		}
	}
	return Flash{
		Title: title,
		Table: []FlashRow{{Key: "Error", Value: err.Error()}},
	}
}
