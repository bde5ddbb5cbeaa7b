package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/scrapedeck/internal/api"
)

// Base component interface
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Define common styles
var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			PaddingLeft(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))
)

// Layout arranges the result panels: the URL input and progress bar on
// top, metadata and the section index in the middle row, the section
// detail tree below them, and the stats panel plus message console at the
// bottom.
type Layout struct {
	input    *InputBar
	progress *ProgressBar
	meta     *MetaPanel
	index    *SectionIndex
	detail   *SectionsPanel
	stats    *StatsPanel
	console  *Console
	width    int
	height   int
}

// NewLayout creates and initializes a layout with all panels.
func NewLayout() *Layout {
	return &Layout{
		input:    NewInputBar(),
		progress: NewProgressBar(),
		meta:     NewMetaPanel(),
		index:    NewSectionIndex(),
		detail:   NewSectionsPanel(),
		stats:    NewStatsPanel(),
		console:  NewConsole(),
	}
}

// SetSize adjusts the layout and all panels to the given dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height

	headerHeight := 4
	body := height - headerHeight
	if body < 12 {
		body = 12
	}

	midHeight := body * 3 / 10
	detailHeight := body * 4 / 10
	bottomHeight := body - midHeight - detailHeight
	halfWidth := width / 2

	l.input.SetSize(width, 1)
	l.progress.SetSize(width-4, 1)
	l.meta.SetSize(halfWidth, midHeight)
	l.index.SetSize(width-halfWidth, midHeight)
	l.detail.SetSize(width, detailHeight)
	l.stats.SetSize(halfWidth, bottomHeight)
	l.console.SetSize(width-halfWidth, bottomHeight)
}

// Init initializes all panels.
func (l *Layout) Init() tea.Cmd {
	return tea.Batch(
		l.input.Init(),
		l.progress.Init(),
		l.index.Init(),
		l.detail.Init(),
	)
}

// Update distributes a message to the panels.
func (l *Layout) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		l.SetSize(size.Width, size.Height)
	}

	var cmd tea.Cmd
	var c Component

	c, cmd = l.input.Update(msg)
	l.input = c.(*InputBar)
	cmds = append(cmds, cmd)

	c, cmd = l.progress.Update(msg)
	l.progress = c.(*ProgressBar)
	cmds = append(cmds, cmd)

	// Navigation keys go to the section panels only when the input is not
	// capturing text.
	if !l.input.Focused() {
		c, cmd = l.index.Update(msg)
		l.index = c.(*SectionIndex)
		cmds = append(cmds, cmd)

		c, cmd = l.detail.Update(msg)
		l.detail = c.(*SectionsPanel)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// View renders the complete layout.
func (l *Layout) View() string {
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		l.input.View(),
		l.progress.View(),
	)

	midRow := lipgloss.JoinHorizontal(
		lipgloss.Top,
		l.meta.View(),
		l.index.View(),
	)

	bottomRow := lipgloss.JoinHorizontal(
		lipgloss.Top,
		l.stats.View(),
		l.console.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		midRow,
		l.detail.View(),
		bottomRow,
	)
}

// SetResult installs a new scrape result across the panels. Expansion
// state is supplied by the session via the expanded callback.
func (l *Layout) SetResult(result *api.ScrapeResult, expanded func(int) bool, mode ViewMode) {
	l.meta.SetMeta(result.Meta, result.URL, result.ScrapedAt)
	l.index.SetSections(result.Sections, expanded)
	l.detail.SetSections(result.Sections, expanded, mode)
	l.stats.SetResult(result)
}

// RefreshExpansion re-renders the section panels after an expansion or
// mode change without touching the data.
func (l *Layout) RefreshExpansion(expanded func(int) bool, mode ViewMode) {
	l.index.RefreshExpansion(expanded)
	l.detail.Refresh(expanded, mode)
}

// Cursor returns the selected section index, or -1 with no sections.
func (l *Layout) Cursor() int {
	return l.index.Cursor()
}

// Input returns the URL input bar for focus and value queries.
func (l *Layout) Input() *InputBar {
	return l.input
}

// Progress returns the progress bar component.
func (l *Layout) Progress() *ProgressBar {
	return l.progress
}

// SetHistory updates the recent-URL list in the stats panel.
func (l *Layout) SetHistory(urls []string) {
	l.stats.SetHistory(urls)
}

// AddError adds an error line to the console.
func (l *Layout) AddError(msg string) {
	l.console.AddEntry(LevelError, msg)
}

// AddWarning adds a warning line to the console.
func (l *Layout) AddWarning(msg string) {
	l.console.AddEntry(LevelWarning, msg)
}

// AddInfo adds an info line to the console.
func (l *Layout) AddInfo(msg string) {
	l.console.AddEntry(LevelInfo, msg)
}
