// Package session owns the scrape-request lifecycle and the view state
// derived from it. It is written to from a single goroutine (the UI update
// loop), so it carries no locks.
package session

import (
	"github.com/google/uuid"

	"github.com/go-scripts/scrapedeck/internal/api"
)

// Phase is the request lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRequesting
	PhaseSuccess
	PhaseFailed
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRequesting:
		return "requesting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

const maxHistory = 5

// Session tracks one scrape request at a time. Completions are guarded by
// a request token so a late response for a superseded request can never
// overwrite a newer result.
type Session struct {
	phase    Phase
	token    uuid.UUID
	result   *api.ScrapeResult
	err      error
	expanded map[int]bool
	history  []string
}

// New creates an idle session.
func New() *Session {
	return &Session{
		expanded: make(map[int]bool),
	}
}

// Begin validates the URL and, if it passes, transitions to Requesting and
// mints the token identifying the new request. Validation failures happen
// synchronously: the session stays in its previous phase (back to Idle if
// nothing was in flight) and the error is recorded for display.
// Beginning while a request is outstanding supersedes it; the old token
// goes stale and its completion will be dropped.
func (s *Session) Begin(rawURL string) (uuid.UUID, error) {
	if err := api.ValidateURL(rawURL); err != nil {
		if s.phase == PhaseRequesting {
			s.phase = PhaseIdle
		}
		s.err = err
		return uuid.Nil, err
	}

	s.phase = PhaseRequesting
	s.token = uuid.New()
	s.err = nil
	s.pushHistory(rawURL)
	return s.token, nil
}

// Complete installs a result for the given token. A stale or unknown token
// is ignored and false is returned. The new result replaces the previous
// one wholesale and the expansion state resets.
func (s *Session) Complete(token uuid.UUID, result *api.ScrapeResult) bool {
	if !s.current(token) {
		return false
	}
	s.phase = PhaseSuccess
	s.result = result
	s.err = nil
	s.expanded = make(map[int]bool)
	return true
}

// Fail records a request failure for the given token, with the same
// staleness guard as Complete. The previous result, if any, stays
// available for display.
func (s *Session) Fail(token uuid.UUID, err error) bool {
	if !s.current(token) {
		return false
	}
	s.phase = PhaseFailed
	s.err = err
	return true
}

func (s *Session) current(token uuid.UUID) bool {
	return s.phase == PhaseRequesting && token != uuid.Nil && token == s.token
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Requesting reports whether a request is outstanding.
func (s *Session) Requesting() bool { return s.phase == PhaseRequesting }

// Result returns the current result, or nil before the first success.
func (s *Session) Result() *api.ScrapeResult { return s.result }

// Err returns the error to surface, or nil. At most one error is held at a
// time; Begin clears it.
func (s *Session) Err() error { return s.err }

// Toggle flips the expansion flag for a section index. Indices outside the
// current result's sections are ignored.
func (s *Session) Toggle(index int) {
	if s.result == nil || index < 0 || index >= len(s.result.Sections) {
		return
	}
	if s.expanded[index] {
		delete(s.expanded, index)
	} else {
		s.expanded[index] = true
	}
}

// ExpandAll marks every section of the current result expanded.
func (s *Session) ExpandAll() {
	if s.result == nil {
		return
	}
	for i := range s.result.Sections {
		s.expanded[i] = true
	}
}

// CollapseAll clears the expansion state.
func (s *Session) CollapseAll() {
	s.expanded = make(map[int]bool)
}

// Expanded reports whether the section at index is expanded.
func (s *Session) Expanded(index int) bool {
	return s.expanded[index]
}

// ExpandedCount returns how many sections are currently expanded.
func (s *Session) ExpandedCount() int {
	return len(s.expanded)
}

// History returns the most recently submitted URLs, oldest first.
func (s *Session) History() []string {
	return s.history
}

func (s *Session) pushHistory(url string) {
	s.history = append(s.history, url)
	if len(s.history) > maxHistory {
		s.history = s.history[1:]
	}
}
