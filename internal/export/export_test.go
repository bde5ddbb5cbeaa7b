package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-scripts/scrapedeck/internal/api"
)

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	depth := 4
	result := &api.ScrapeResult{
		URL:       "https://a.com",
		ScrapedAt: "2025-01-02T03:04:05Z",
		Meta:      api.Meta{Title: "A", Strategy: api.StrategyHybrid},
		Sections: []api.Section{
			{
				ID:    "s1",
				Type:  api.SectionHero,
				Label: "Hero",
				Content: api.Content{
					Headings: []string{"Welcome"},
					Links:    []api.Link{{Text: "Docs", Href: "https://a.com/docs"}},
					Lists:    [][]string{{"one", "two"}},
				},
				RawHTML:   "<section>Welcome</section>",
				Truncated: true,
			},
		},
		Interactions: api.Interaction{Clicks: []string{"#more"}, Scrolls: 3, TotalDepth: depth},
		Errors:       []api.ScrapeError{{Message: "slow frame", Phase: "render"}},
		Performance:  &api.Performance{DurationMS: 812.5, SectionsFound: 1, InteractionDepth: depth, PagesVisited: 1},
		Warnings:     []string{"Minimum interaction depth not reached: 4 < 3"},
	}

	path, err := w.Write(result)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed api.ScrapeResult
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, *result, parsed)

	// Pretty-printed, not a single line.
	assert.Contains(t, string(data), "\n  ")
}

func TestWriteNilResultIsNoOp(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	path, err := w.Write(nil)
	assert.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFilename(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	w.now = func() time.Time {
		return time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC)
	}

	path, err := w.Write(&api.ScrapeResult{URL: "https://a.com"})
	require.NoError(t, err)
	assert.Equal(t, "scrape-result-2025-06-07-1749283750.json", filepath.Base(path))
}

func TestNewWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := NewWriter(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
