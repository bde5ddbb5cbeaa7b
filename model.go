package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/go-scripts/scrapedeck/internal/api"
	"github.com/go-scripts/scrapedeck/internal/export"
	"github.com/go-scripts/scrapedeck/internal/progress"
	"github.com/go-scripts/scrapedeck/internal/session"
	"github.com/go-scripts/scrapedeck/ui"
)

// Message types
type scrapeDoneMsg struct {
	token  uuid.UUID
	result *api.ScrapeResult
	err    error
}
type progressTickMsg struct {
	token uuid.UUID
}
type healthMsg struct {
	status *api.HealthStatus
	err    error
}
type exportDoneMsg struct {
	path string
	err  error
}

// Model is the top-level bubbletea model. It is the single writer for the
// session store; everything async re-enters through token-tagged messages.
type Model struct {
	config   *Configuration
	client   *api.Client
	sess     *session.Session
	sim      *progress.Simulator
	exporter *export.Writer
	layout   *ui.Layout
	mode     ui.ViewMode

	// token identifies the authoritative in-flight request; ticks and
	// completions carrying any other token are stale and dropped.
	token uuid.UUID
	ready bool
}

func newModel(config *Configuration, exporter *export.Writer) Model {
	return Model{
		config:   config,
		client:   api.NewClient(config.ServerURL),
		sess:     session.New(),
		exporter: exporter,
		layout:   ui.NewLayout(),
		mode:     ui.ModeStructured,
	}
}

// Init is the first function called. It returns an optional initial command.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.layout.Init(),
		m.healthCmd(),
	)
}

// Update handles all the updates and state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true

	case tea.KeyMsg:
		cmd, handled := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return m, tea.Batch(cmds...)
		}

	case progressTickMsg:
		// A tick for a superseded or finished request is the cancelled
		// timer firing late; drop it and do not reschedule.
		if !m.sess.Requesting() || msg.token != m.token {
			return m, nil
		}
		m.sim.Advance()
		return m, tickCmd(msg.token)

	case scrapeDoneMsg:
		m.handleScrapeDone(msg)

	case healthMsg:
		if msg.err != nil {
			m.layout.Input().SetStatus("backend: unreachable")
			m.layout.AddWarning(fmt.Sprintf("Health check failed: %s", errorMessage(msg.err)))
		} else {
			m.layout.Input().SetStatus(fmt.Sprintf("backend: %s (v%s)", msg.status.Status, msg.status.Version))
			m.layout.AddInfo(fmt.Sprintf("Backend healthy, version %s", msg.status.Version))
		}

	case exportDoneMsg:
		if msg.err != nil {
			m.layout.AddError(fmt.Sprintf("Export failed: %v", msg.err))
		} else if msg.path != "" {
			m.layout.AddInfo("Exported " + msg.path)
		}
	}

	cmds = append(cmds, m.layout.Update(msg))
	return m, tea.Batch(cmds...)
}

// handleKey routes keyboard input. It returns handled=true when the key
// must not also reach the layout's focused components.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit, true
	}

	if m.layout.Input().Focused() {
		switch msg.String() {
		case "enter":
			return m.submit(m.layout.Input().Value()), true
		case "esc", "tab":
			m.layout.Input().Blur()
			return nil, true
		}
		return nil, false
	}

	switch msg.String() {
	case "q":
		return tea.Quit, true
	case "tab", "/":
		return m.layout.Input().Focus(), true
	case "enter", " ":
		if i := m.layout.Cursor(); i >= 0 {
			m.sess.Toggle(i)
			m.layout.RefreshExpansion(m.sess.Expanded, m.mode)
		}
		return nil, true
	case "e":
		m.sess.ExpandAll()
		m.layout.RefreshExpansion(m.sess.Expanded, m.mode)
		return nil, true
	case "c":
		m.sess.CollapseAll()
		m.layout.RefreshExpansion(m.sess.Expanded, m.mode)
		return nil, true
	case "r":
		m.mode = m.mode.Toggle()
		m.layout.RefreshExpansion(m.sess.Expanded, m.mode)
		return nil, true
	case "x":
		return m.exportCmd(), true
	}
	return nil, false
}

// submit validates and launches a scrape. A validation failure surfaces
// immediately with no request; a request already in flight is superseded
// and its late completion will be dropped.
func (m *Model) submit(rawURL string) tea.Cmd {
	token, err := m.sess.Begin(rawURL)
	if err != nil {
		m.layout.Progress().Stop()
		m.layout.AddError(errorMessage(err))
		return nil
	}

	m.token = token
	m.sim = progress.NewSimulator()
	m.layout.SetHistory(m.sess.History())
	m.layout.AddInfo("Scraping " + rawURL)
	m.layout.Input().Blur()
	log.Info("Scrape started", "url", rawURL, "token", token)

	return tea.Batch(
		m.layout.Progress().Start(m.sim),
		scrapeCmd(m.client, token, rawURL),
		tickCmd(token),
	)
}

func (m *Model) handleScrapeDone(msg scrapeDoneMsg) {
	if msg.err != nil {
		if !m.sess.Fail(msg.token, msg.err) {
			log.Debug("Dropping stale scrape failure", "token", msg.token)
			return
		}
		m.layout.Progress().Stop()
		m.layout.AddError(errorMessage(msg.err))
		log.Error("Scrape failed", "error", msg.err)
		return
	}

	if !m.sess.Complete(msg.token, msg.result) {
		log.Debug("Dropping stale scrape result", "token", msg.token, "url", msg.result.URL)
		return
	}

	m.sim.Finish()
	m.layout.Progress().Stop()
	m.layout.SetResult(msg.result, m.sess.Expanded, m.mode)

	duration := ""
	if msg.result.Performance != nil {
		duration = fmt.Sprintf(" in %.0f ms", msg.result.Performance.DurationMS)
	}
	m.layout.AddInfo(fmt.Sprintf("Scraped %s: %d sections%s",
		msg.result.URL, len(msg.result.Sections), duration))

	// Server-reported errors and warnings are displayed, never thrown.
	for _, e := range msg.result.Errors {
		m.layout.AddError(fmt.Sprintf("[%s] %s", e.Phase, e.Message))
	}
	for _, w := range msg.result.Warnings {
		m.layout.AddWarning(w)
	}
}

// View returns a string representation of the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing...\n"
	}
	return m.layout.View()
}

// Commands

func scrapeCmd(client *api.Client, token uuid.UUID, rawURL string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Submit(context.Background(), rawURL)
		return scrapeDoneMsg{token: token, result: result, err: err}
	}
}

func tickCmd(token uuid.UUID) tea.Cmd {
	return tea.Tick(progress.TickInterval, func(time.Time) tea.Msg {
		return progressTickMsg{token: token}
	})
}

func (m *Model) healthCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		status, err := m.client.Health(ctx)
		return healthMsg{status: status, err: err}
	}
}

func (m *Model) exportCmd() tea.Cmd {
	result := m.sess.Result()
	exporter := m.exporter
	return func() tea.Msg {
		path, err := exporter.Write(result)
		return exportDoneMsg{path: path, err: err}
	}
}

// errorMessage is the single user-visible line for a failure.
func errorMessage(err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.UserMessage()
	}
	return err.Error()
}
