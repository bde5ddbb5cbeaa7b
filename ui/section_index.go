package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/scrapedeck/internal/api"
)

// indexItem represents one section in the index list.
type indexItem struct {
	section  api.Section
	expanded bool
}

// FilterValue implements list.Item interface
func (i indexItem) FilterValue() string { return i.section.Label }

// Title returns the item's title
func (i indexItem) Title() string {
	marker := "▸"
	if i.expanded {
		marker = "▾"
	}
	label := i.section.Label
	if label == "" {
		label = i.section.ID
	}
	return fmt.Sprintf("%s %s %s", marker, TypeBadge(i.section.Type), label)
}

// Description returns the item's description
func (i indexItem) Description() string {
	c := i.section.Content
	return fmt.Sprintf("%d headings | %d links | %d images | %d lists",
		len(c.Headings), len(c.Links), len(c.Images), len(c.Lists))
}

// SectionIndex is the navigable list of detected sections. Selection here
// drives which section a toggle key acts on.
type SectionIndex struct {
	list     list.Model
	sections []api.Section
	width    int
	height   int
}

// NewSectionIndex creates an empty section index.
func NewSectionIndex() *SectionIndex {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("170"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("244"))

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Sections"
	l.Styles.Title = l.Styles.Title.Foreground(lipgloss.Color("240"))
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return &SectionIndex{list: l}
}

func (s *SectionIndex) Init() tea.Cmd {
	return nil
}

func (s *SectionIndex) Update(msg tea.Msg) (Component, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.CursorUp()
			return s, nil
		case "down", "j":
			s.list.CursorDown()
			return s, nil
		}
		return s, nil
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *SectionIndex) View() string {
	return borderStyle.Width(s.width - 2).Height(s.height).Render(s.list.View())
}

func (s *SectionIndex) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.list.SetSize(width-4, height-2)
}

// SetSections replaces the indexed sections; the cursor returns to the top.
func (s *SectionIndex) SetSections(sections []api.Section, expanded func(int) bool) {
	s.sections = sections
	items := make([]list.Item, len(sections))
	for i, sec := range sections {
		items[i] = indexItem{section: sec, expanded: expanded(i)}
	}
	s.list.SetItems(items)
	s.list.ResetSelected()
	s.updateTitle()
}

// RefreshExpansion re-renders the expand markers without moving the cursor.
func (s *SectionIndex) RefreshExpansion(expanded func(int) bool) {
	for i, sec := range s.sections {
		s.list.SetItem(i, indexItem{section: sec, expanded: expanded(i)})
	}
	s.updateTitle()
}

// Cursor returns the selected section index, or -1 when empty.
func (s *SectionIndex) Cursor() int {
	if len(s.sections) == 0 {
		return -1
	}
	return s.list.Index()
}

func (s *SectionIndex) updateTitle() {
	s.list.Title = fmt.Sprintf("Sections (%d)", len(s.sections))
}
