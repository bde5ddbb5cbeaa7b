package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/scrapedeck/internal/api"
)

func resultWithSections(n int) *api.ScrapeResult {
	sections := make([]api.Section, n)
	for i := range sections {
		sections[i] = api.Section{ID: uuid.NewString(), Type: api.SectionGeneric}
	}
	return &api.ScrapeResult{URL: "https://a.com", Sections: sections}
}

func TestBeginValidation(t *testing.T) {
	s := New()

	token, err := s.Begin("ftp://x.com")
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, token)
	assert.Equal(t, PhaseIdle, s.Phase())

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "URL must start with http:// or https://", reqErr.UserMessage())
}

func TestLifecycleSuccess(t *testing.T) {
	s := New()

	token, err := s.Begin("https://a.com")
	require.NoError(t, err)
	assert.Equal(t, PhaseRequesting, s.Phase())

	ok := s.Complete(token, resultWithSections(2))
	assert.True(t, ok)
	assert.Equal(t, PhaseSuccess, s.Phase())
	assert.NotNil(t, s.Result())
	assert.Zero(t, s.ExpandedCount(), "expansion state must be empty after a new result")
}

func TestLifecycleFailureAllowsRetry(t *testing.T) {
	s := New()

	token, err := s.Begin("https://a.com")
	require.NoError(t, err)

	wantErr := assert.AnError
	assert.True(t, s.Fail(token, wantErr))
	assert.Equal(t, PhaseFailed, s.Phase())
	assert.Equal(t, wantErr, s.Err())

	// A new request is possible and clears the previous error.
	_, err = s.Begin("https://b.com")
	require.NoError(t, err)
	assert.Nil(t, s.Err())
	assert.Equal(t, PhaseRequesting, s.Phase())
}

func TestStaleTokenDropped(t *testing.T) {
	s := New()

	old, err := s.Begin("https://a.com")
	require.NoError(t, err)

	// Supersede while the first request is still in flight.
	current, err := s.Begin("https://b.com")
	require.NoError(t, err)
	require.NotEqual(t, old, current)

	// Late arrivals for the superseded request change nothing.
	assert.False(t, s.Complete(old, resultWithSections(1)))
	assert.False(t, s.Fail(old, assert.AnError))
	assert.Equal(t, PhaseRequesting, s.Phase())
	assert.Nil(t, s.Result())

	// The authoritative request still completes.
	assert.True(t, s.Complete(current, resultWithSections(3)))
	assert.Equal(t, "https://a.com", s.Result().URL)
}

func TestCompleteAfterCompletionIsDropped(t *testing.T) {
	s := New()
	token, _ := s.Begin("https://a.com")
	require.True(t, s.Complete(token, resultWithSections(1)))

	// The token is no longer current once the request has finished.
	assert.False(t, s.Complete(token, resultWithSections(5)))
	assert.Len(t, s.Result().Sections, 1)
}

func TestToggle(t *testing.T) {
	s := New()
	token, _ := s.Begin("https://a.com")
	s.Complete(token, resultWithSections(4))

	s.Toggle(2)
	assert.True(t, s.Expanded(2))
	s.Toggle(2)
	assert.False(t, s.Expanded(2))

	// Out-of-range indices are ignored.
	s.Toggle(-1)
	s.Toggle(4)
	assert.Zero(t, s.ExpandedCount())
}

func TestExpandAllCollapseAll(t *testing.T) {
	s := New()
	token, _ := s.Begin("https://a.com")
	s.Complete(token, resultWithSections(3))

	s.ExpandAll()
	for i := 0; i < 3; i++ {
		assert.True(t, s.Expanded(i))
	}

	s.CollapseAll()
	assert.Zero(t, s.ExpandedCount())

	// Idempotent: collapsing twice is the same empty mapping.
	s.CollapseAll()
	assert.Zero(t, s.ExpandedCount())
}

func TestExpansionResetOnNewResult(t *testing.T) {
	s := New()
	token, _ := s.Begin("https://a.com")
	s.Complete(token, resultWithSections(5))
	s.ExpandAll()
	require.Equal(t, 5, s.ExpandedCount())

	token, _ = s.Begin("https://b.com")
	s.Complete(token, resultWithSections(2))
	assert.Zero(t, s.ExpandedCount(), "stale expansion keys must be discarded")
}

func TestHistory(t *testing.T) {
	s := New()
	urls := []string{
		"https://one.com", "https://two.com", "https://three.com",
		"https://four.com", "https://five.com", "https://six.com",
	}
	for _, u := range urls {
		_, err := s.Begin(u)
		require.NoError(t, err)
	}

	// Capped at the five most recent; rejected URLs never enter.
	_, _ = s.Begin("nope")
	assert.Equal(t, urls[1:], s.History())
}
