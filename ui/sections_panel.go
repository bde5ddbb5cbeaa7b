package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/scrapedeck/internal/api"
	"github.com/go-scripts/scrapedeck/internal/htmltext"
)

const previewLen = 72

// SectionsPanel renders all sections as a scrollable tree of collapsible
// blocks. Collapsed sections show a one-line text preview of their raw
// HTML; expanded sections show the full structured or raw render.
type SectionsPanel struct {
	viewport viewport.Model
	sections []api.Section
	expanded func(int) bool
	mode     ViewMode
	width    int
	height   int
	style    lipgloss.Style
}

// NewSectionsPanel creates an empty detail panel.
func NewSectionsPanel() *SectionsPanel {
	p := &SectionsPanel{
		expanded: func(int) bool { return false },
		style:    borderStyle.BorderForeground(lipgloss.Color("35")),
	}
	p.viewport = viewport.New(0, 0)
	return p
}

func (p *SectionsPanel) Init() tea.Cmd {
	return nil
}

func (p *SectionsPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup":
			p.viewport.HalfViewUp()
		case "pgdown":
			p.viewport.HalfViewDown()
		}
		return p, nil
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *SectionsPanel) View() string {
	header := titleStyle.Render(fmt.Sprintf("Content [%s]", p.mode))
	if len(p.sections) == 0 {
		return p.style.Width(p.width - 2).Height(p.height).Render(
			header + "\n\n" + infoStyle.Render("No sections extracted"))
	}

	p.viewport.SetContent(p.renderTree())
	return p.style.Width(p.width - 2).Height(p.height).Render(
		header + "\n" + p.viewport.View())
}

func (p *SectionsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = width - 4
	p.viewport.Height = height - 2
}

// SetSections replaces the rendered sections and resets the scroll.
func (p *SectionsPanel) SetSections(sections []api.Section, expanded func(int) bool, mode ViewMode) {
	p.sections = sections
	p.expanded = expanded
	p.mode = mode
	p.viewport.GotoTop()
}

// Refresh re-renders after an expansion or mode change.
func (p *SectionsPanel) Refresh(expanded func(int) bool, mode ViewMode) {
	p.expanded = expanded
	p.mode = mode
}

func (p *SectionsPanel) renderTree() string {
	var sb strings.Builder
	for i, sec := range p.sections {
		sb.WriteString(p.renderBlock(i, sec))
		if i < len(p.sections)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (p *SectionsPanel) renderBlock(i int, sec api.Section) string {
	label := sec.Label
	if label == "" {
		label = sec.ID
	}

	if !p.expanded(i) {
		preview := htmltext.Preview(sec.RawHTML, previewLen)
		if preview == "" {
			preview = dimStyle.Render("(empty)")
		}
		return fmt.Sprintf("▸ %s %s  %s\n", TypeBadge(sec.Type), label, dimStyle.Render(preview))
	}

	body := RenderSection(sec, p.mode, p.viewport.Width)
	indented := "  " + strings.ReplaceAll(strings.TrimRight(body, "\n"), "\n", "\n  ")
	return fmt.Sprintf("▾ %s %s\n%s\n", TypeBadge(sec.Type), label, indented)
}
