package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/scrapedeck/internal/api"
)

// ViewMode selects the render strategy for section bodies.
type ViewMode int

const (
	// ModeStructured renders the parsed content fields.
	ModeStructured ViewMode = iota
	// ModeRaw renders the section's exact JSON.
	ModeRaw
)

// String returns the mode name shown in the UI.
func (m ViewMode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "structured"
}

// Toggle returns the other mode. A pure switch with no data mutation.
func (m ViewMode) Toggle() ViewMode {
	if m == ModeRaw {
		return ModeStructured
	}
	return ModeRaw
}

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			Padding(0, 1)
)

// sectionTypeColors gives each section type its badge color.
var sectionTypeColors = map[api.SectionType]lipgloss.Color{
	api.SectionHero:    "205",
	api.SectionNav:     "39",
	api.SectionFooter:  "242",
	api.SectionPricing: "214",
	api.SectionFAQ:     "99",
	api.SectionGrid:    "86",
	api.SectionList:    "110",
	api.SectionGeneric: "63",
	api.SectionUnknown: "240",
}

// TypeBadge renders the colored tag for a section type.
func TypeBadge(t api.SectionType) string {
	color, ok := sectionTypeColors[t]
	if !ok {
		color = sectionTypeColors[api.SectionUnknown]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(color).
		Padding(0, 1).
		Render(string(t))
}

// RenderSection renders one section body in the given mode. Structured
// mode emits only the content fields that are present and non-empty, in
// fixed order (headings, text, links, images, lists), always followed by
// the raw-HTML size line with its truncated badge. Raw mode emits the
// section's serialized JSON.
func RenderSection(s api.Section, mode ViewMode, width int) string {
	if mode == ModeRaw {
		return renderSectionJSON(s)
	}
	return renderSectionStructured(s, width)
}

func renderSectionJSON(s api.Section) string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return dimStyle.Render(fmt.Sprintf("unrenderable section: %v", err))
	}
	return string(data)
}

func renderSectionStructured(s api.Section, width int) string {
	var sb strings.Builder

	for _, h := range s.Content.Headings {
		sb.WriteString(headingStyle.Render("▌ " + h))
		sb.WriteString("\n")
	}

	if s.Content.Text != "" {
		text := s.Content.Text
		if width > 4 {
			text = lipgloss.NewStyle().Width(width - 2).Render(text)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if len(s.Content.Links) > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("Links (%d)", len(s.Content.Links))))
		sb.WriteString("\n")
		for _, l := range s.Content.Links {
			label := l.Text
			if label == "" {
				label = l.Href
			}
			sb.WriteString(fmt.Sprintf("  → %s %s\n",
				linkStyle.Render(label), dimStyle.Render(l.Href)))
		}
	}

	if len(s.Content.Images) > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("Images (%d)", len(s.Content.Images))))
		sb.WriteString("\n")
		for _, img := range s.Content.Images {
			alt := img.Alt
			if alt == "" {
				alt = "(no alt)"
			}
			sb.WriteString(fmt.Sprintf("  ▣ %s %s\n", alt, dimStyle.Render(img.Src)))
		}
	}

	for i, items := range s.Content.Lists {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("List %d", i+1)))
		sb.WriteString("\n")
		for _, item := range items {
			sb.WriteString("  • " + item + "\n")
		}
	}

	sb.WriteString(rawHTMLLine(s))
	return sb.String()
}

// rawHTMLLine is appended to every structured section render.
func rawHTMLLine(s api.Section) string {
	line := dimStyle.Render(fmt.Sprintf("raw html: %s", formatBytes(len(s.RawHTML))))
	if s.Truncated {
		line += " " + badgeStyle.Render("truncated")
	}
	return line
}

func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f kB", float64(n)/1024)
}

// RenderMeta renders the metadata block as label/value lines, skipping
// empty fields.
func RenderMeta(m api.Meta) string {
	pairs := []struct {
		label string
		value string
	}{
		{"Title", m.Title},
		{"Description", m.Description},
		{"Language", m.Language},
		{"Canonical", m.Canonical},
		{"Strategy", string(m.Strategy)},
		{"Keywords", strings.Join(m.Keywords, ", ")},
		{"Author", m.Author},
		{"OG Type", m.OgType},
		{"Duration", m.ScrapeDuration},
	}

	var sb strings.Builder
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render(p.label+":"), valueStyle.Render(p.value)))
	}
	if m.InteractionDepth != nil {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Interaction depth:"),
			valueStyle.Render(fmt.Sprintf("%d", *m.InteractionDepth))))
	}
	if sb.Len() == 0 {
		return dimStyle.Render("No metadata")
	}
	return sb.String()
}

// RenderPerformance renders the backend's performance counters.
func RenderPerformance(p *api.Performance) string {
	if p == nil {
		return dimStyle.Render("No performance data")
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Duration:"), valueStyle.Render(fmt.Sprintf("%.0f ms", p.DurationMS))))
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Sections:"), valueStyle.Render(fmt.Sprintf("%d", p.SectionsFound))))
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Interaction depth:"), valueStyle.Render(fmt.Sprintf("%d", p.InteractionDepth))))
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Pages visited:"), valueStyle.Render(fmt.Sprintf("%d", p.PagesVisited))))
	if p.UniqueSections != nil {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Unique sections:"), valueStyle.Render(fmt.Sprintf("%d", *p.UniqueSections))))
	}
	return sb.String()
}

// RenderInteractions renders the backend's interaction replay trace.
func RenderInteractions(tr api.Interaction) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Total depth:"), valueStyle.Render(fmt.Sprintf("%d", tr.TotalDepth))))
	sb.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Scrolls:"), valueStyle.Render(fmt.Sprintf("%d", tr.Scrolls))))
	if len(tr.Clicks) > 0 {
		sb.WriteString(labelStyle.Render("Clicks:") + "\n")
		for _, c := range tr.Clicks {
			sb.WriteString("  • " + c + "\n")
		}
	}
	if len(tr.Pages) > 0 {
		sb.WriteString(labelStyle.Render("Pages:") + "\n")
		for _, p := range tr.Pages {
			sb.WriteString("  • " + p + "\n")
		}
	}
	return sb.String()
}
