package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/scrapedeck/internal/api"
)

// MetaPanel shows the page metadata of the current result.
type MetaPanel struct {
	meta      api.Meta
	url       string
	scrapedAt string
	hasResult bool
	width     int
	height    int
	style     lipgloss.Style
}

func NewMetaPanel() *MetaPanel {
	return &MetaPanel{
		style: borderStyle.BorderForeground(lipgloss.Color("99")),
	}
}

func (m *MetaPanel) Init() tea.Cmd {
	return nil
}

func (m *MetaPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return m, nil
}

func (m *MetaPanel) View() string {
	content := titleStyle.Render("Page Metadata") + "\n\n"
	if !m.hasResult {
		content += infoStyle.Render("Submit a URL to scrape")
	} else {
		content += labelStyle.Render("URL:") + " " + valueStyle.Render(m.url) + "\n"
		if m.scrapedAt != "" {
			content += labelStyle.Render("Scraped:") + " " + valueStyle.Render(m.scrapedAt) + "\n"
		}
		content += RenderMeta(m.meta)
	}
	return m.style.Width(m.width - 2).Height(m.height).Render(content)
}

func (m *MetaPanel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetMeta installs the metadata of a freshly received result.
func (m *MetaPanel) SetMeta(meta api.Meta, url, scrapedAt string) {
	m.meta = meta
	m.url = url
	m.scrapedAt = scrapedAt
	m.hasResult = true
}
