package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/scrapedeck/internal/progress"
)

// ProgressBar shows the simulated scrape progress while a request is
// outstanding: a spinner, the gradient bar, and the current phase label.
// It goes blank when no request is in flight.
type ProgressBar struct {
	sim     *progress.Simulator
	spinner spinner.Model
	active  bool
	width   int
}

func NewProgressBar() *ProgressBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &ProgressBar{spinner: s}
}

func (p *ProgressBar) Init() tea.Cmd {
	return nil
}

func (p *ProgressBar) Update(msg tea.Msg) (Component, tea.Cmd) {
	if !p.active {
		return p, nil
	}
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return p, cmd
}

func (p *ProgressBar) View() string {
	if !p.active || p.sim == nil {
		return ""
	}
	barWidth := p.width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	return fmt.Sprintf(" %s %s %3.0f%% %s",
		p.spinner.View(),
		p.sim.ViewAs(barWidth),
		p.sim.Percent(),
		infoStyle.Render(p.sim.PhaseLabel()),
	)
}

func (p *ProgressBar) SetSize(width, height int) {
	p.width = width
}

// Start attaches a fresh simulator for a new request and returns the
// spinner tick command.
func (p *ProgressBar) Start(sim *progress.Simulator) tea.Cmd {
	p.sim = sim
	p.active = true
	return p.spinner.Tick
}

// Stop clears the bar when the request ends for any reason.
func (p *ProgressBar) Stop() {
	p.active = false
	p.sim = nil
}

// Active reports whether a simulation is running.
func (p *ProgressBar) Active() bool {
	return p.active
}
