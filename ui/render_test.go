package ui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/scrapedeck/internal/api"
)

func sampleSection() api.Section {
	return api.Section{
		ID:    "sec-1",
		Type:  api.SectionPricing,
		Label: "Pricing",
		Content: api.Content{
			Headings: []string{"Plans"},
			Text:     "Pick the tier that fits.",
			Links:    []api.Link{{Text: "Sign up", Href: "https://a.com/signup"}},
			Images:   []api.Image{{Src: "https://a.com/hero.png", Alt: "hero"}},
			Lists:    [][]string{{"Free", "Pro"}},
		},
		RawHTML:   "<section><h2>Plans</h2></section>",
		Truncated: true,
		SourceURL: "https://a.com",
	}
}

func TestRenderSectionStructuredFieldOrder(t *testing.T) {
	out := RenderSection(sampleSection(), ModeStructured, 80)

	positions := []int{
		strings.Index(out, "Plans"),
		strings.Index(out, "Pick the tier"),
		strings.Index(out, "Sign up"),
		strings.Index(out, "hero"),
		strings.Index(out, "Free"),
		strings.Index(out, "raw html:"),
	}
	for i, pos := range positions {
		require.GreaterOrEqual(t, pos, 0, "field %d missing from output", i)
		if i > 0 {
			assert.Greater(t, pos, positions[i-1], "field %d out of order", i)
		}
	}
	assert.Contains(t, out, "truncated")
}

func TestRenderSectionStructuredSkipsEmptyFields(t *testing.T) {
	sec := api.Section{
		ID:      "sec-2",
		Type:    api.SectionGeneric,
		Content: api.Content{Text: "only text"},
		RawHTML: "<div>only text</div>",
	}
	out := RenderSection(sec, ModeStructured, 80)

	assert.Contains(t, out, "only text")
	assert.NotContains(t, out, "Links")
	assert.NotContains(t, out, "Images")
	assert.NotContains(t, out, "List 1")
	assert.NotContains(t, out, "truncated")
	assert.Contains(t, out, "raw html:", "raw html line must always be present")
}

func TestRenderSectionRawIsExactJSON(t *testing.T) {
	sec := sampleSection()
	out := RenderSection(sec, ModeRaw, 80)

	var parsed api.Section
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, sec, parsed)
}

func TestViewModeToggle(t *testing.T) {
	assert.Equal(t, ModeRaw, ModeStructured.Toggle())
	assert.Equal(t, ModeStructured, ModeRaw.Toggle())
	assert.Equal(t, ModeStructured, ModeStructured.Toggle().Toggle())
	assert.Equal(t, "structured", ModeStructured.String())
	assert.Equal(t, "raw", ModeRaw.String())
}

func TestRenderMeta(t *testing.T) {
	depth := 5
	out := RenderMeta(api.Meta{
		Title:            "A",
		Strategy:         api.StrategyJS,
		Keywords:         []string{"go", "scraping"},
		InteractionDepth: &depth,
	})

	assert.Contains(t, out, "A")
	assert.Contains(t, out, "js")
	assert.Contains(t, out, "go, scraping")
	assert.Contains(t, out, "5")
	assert.NotContains(t, out, "Description")
	assert.NotContains(t, out, "Author")
}

func TestRenderMetaEmpty(t *testing.T) {
	assert.Contains(t, RenderMeta(api.Meta{}), "No metadata")
}

func TestRenderPerformance(t *testing.T) {
	unique := 7
	out := RenderPerformance(&api.Performance{
		DurationMS:       812.7,
		SectionsFound:    9,
		InteractionDepth: 4,
		PagesVisited:     2,
		UniqueSections:   &unique,
	})

	assert.Contains(t, out, "813 ms")
	assert.Contains(t, out, "9")
	assert.Contains(t, out, "7")

	assert.Contains(t, RenderPerformance(nil), "No performance data")
}

func TestRenderInteractions(t *testing.T) {
	out := RenderInteractions(api.Interaction{
		Clicks:     []string{"#load-more"},
		Scrolls:    3,
		Pages:      []string{"https://a.com/page/2"},
		TotalDepth: 5,
	})

	assert.Contains(t, out, "#load-more")
	assert.Contains(t, out, "https://a.com/page/2")
	assert.Contains(t, out, "5")
}

func TestTypeBadgeFallsBackToUnknown(t *testing.T) {
	// Unexpected tags render without panicking.
	out := TypeBadge(api.SectionType("widget"))
	assert.Contains(t, out, "widget")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.5 kB", formatBytes(1536))
}
