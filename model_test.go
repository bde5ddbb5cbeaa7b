package main

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/scrapedeck/internal/api"
	"github.com/go-scripts/scrapedeck/internal/export"
	"github.com/go-scripts/scrapedeck/internal/session"
)

func testModel(t *testing.T) Model {
	t.Helper()
	exporter, err := export.NewWriter(t.TempDir())
	require.NoError(t, err)
	m := newModel(&Configuration{ServerURL: "http://localhost:1", OutputDir: t.TempDir()}, exporter)
	m.layout.SetSize(120, 40)
	return m
}

func TestSubmitInvalidURLIssuesNoRequest(t *testing.T) {
	m := testModel(t)

	cmd := m.submit("ftp://x.com")
	assert.Nil(t, cmd, "validation failure must not launch commands")
	assert.Equal(t, session.PhaseIdle, m.sess.Phase())
	assert.False(t, m.layout.Progress().Active())
}

func TestSubmitStartsRequest(t *testing.T) {
	m := testModel(t)

	cmd := m.submit("https://a.com")
	require.NotNil(t, cmd)
	assert.True(t, m.sess.Requesting())
	assert.NotEqual(t, uuid.Nil, m.token)
	assert.True(t, m.layout.Progress().Active())
}

func TestScrapeDoneSuccess(t *testing.T) {
	m := testModel(t)
	m.submit("https://a.com")

	result := &api.ScrapeResult{
		URL:      "https://a.com",
		Meta:     api.Meta{Title: "A"},
		Sections: []api.Section{{ID: "s1", Type: api.SectionHero}},
		Warnings: []string{"shallow interaction"},
	}
	m.handleScrapeDone(scrapeDoneMsg{token: m.token, result: result})

	assert.Equal(t, session.PhaseSuccess, m.sess.Phase())
	assert.Equal(t, result, m.sess.Result())
	assert.False(t, m.layout.Progress().Active(), "progress must stop on completion")
}

func TestScrapeDoneFailureAllowsRetry(t *testing.T) {
	m := testModel(t)
	m.submit("https://a.com")

	m.handleScrapeDone(scrapeDoneMsg{token: m.token, err: errors.New("connection refused")})
	assert.Equal(t, session.PhaseFailed, m.sess.Phase())
	assert.False(t, m.layout.Progress().Active())

	// The session accepts a fresh request afterwards.
	cmd := m.submit("https://a.com")
	assert.NotNil(t, cmd)
	assert.True(t, m.sess.Requesting())
}

func TestStaleCompletionDropped(t *testing.T) {
	m := testModel(t)
	m.submit("https://a.com")
	stale := m.token

	// A second submit supersedes the first request.
	m.submit("https://b.com")
	require.NotEqual(t, stale, m.token)

	m.handleScrapeDone(scrapeDoneMsg{token: stale, result: &api.ScrapeResult{URL: "https://a.com"}})
	assert.True(t, m.sess.Requesting(), "stale result must not finish the new request")
	assert.Nil(t, m.sess.Result())

	m.handleScrapeDone(scrapeDoneMsg{token: m.token, result: &api.ScrapeResult{URL: "https://b.com"}})
	assert.Equal(t, "https://b.com", m.sess.Result().URL)
}

func TestStaleProgressTickNotRescheduled(t *testing.T) {
	m := testModel(t)
	m.submit("https://a.com")

	updated, cmd := m.Update(progressTickMsg{token: uuid.New()})
	m = updated.(Model)
	assert.Nil(t, cmd, "a stale tick must not reschedule itself")
	assert.Zero(t, m.sim.Percent())

	_, cmd = m.Update(progressTickMsg{token: m.token})
	assert.NotNil(t, cmd)
	assert.Greater(t, m.sim.Percent(), 0.0)
}

func TestErrorMessage(t *testing.T) {
	reqErr := &api.RequestError{Kind: api.KindValidation, Message: api.ValidationMessage}
	assert.Equal(t, "URL must start with http:// or https://", errorMessage(reqErr))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
}
