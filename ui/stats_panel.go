package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/scrapedeck/internal/api"
)

// StatsPanel displays the backend's performance counters and interaction
// trace for the current result, plus the recently submitted URLs.
type StatsPanel struct {
	performance  *api.Performance
	interactions api.Interaction
	hasResult    bool
	history      []string
	width        int
	height       int
	style        lipgloss.Style
}

func NewStatsPanel() *StatsPanel {
	return &StatsPanel{
		style: borderStyle.BorderForeground(lipgloss.Color("99")),
	}
}

func (s *StatsPanel) Init() tea.Cmd {
	return nil
}

func (s *StatsPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return s, nil
}

func (s *StatsPanel) View() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Performance") + "\n\n")

	if !s.hasResult {
		content.WriteString(infoStyle.Render("No result yet") + "\n")
	} else {
		content.WriteString(RenderPerformance(s.performance))
		content.WriteString("\n" + titleStyle.Render("Interactions") + "\n\n")
		content.WriteString(RenderInteractions(s.interactions))
	}

	if len(s.history) > 0 {
		content.WriteString("\n" + labelStyle.Render("Recent URLs:") + "\n")
		for _, url := range s.history {
			content.WriteString(infoStyle.Render("• "+url) + "\n")
		}
	}

	return s.style.Width(s.width - 2).Height(s.height).Render(content.String())
}

func (s *StatsPanel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetResult installs the counters of a freshly received result.
func (s *StatsPanel) SetResult(result *api.ScrapeResult) {
	s.performance = result.Performance
	s.interactions = result.Interactions
	s.hasResult = true
}

// SetHistory updates the recent-URL list.
func (s *StatsPanel) SetHistory(urls []string) {
	s.history = urls
}
