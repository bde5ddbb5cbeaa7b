package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-scripts/scrapedeck/internal/api"
)

// Writer saves scrape results as pretty-printed JSON files.
type Writer struct {
	outputDir string
	now       func() time.Time
	mu        sync.Mutex
}

// NewWriter creates a Writer targeting the given directory, creating it
// if needed.
func NewWriter(outputDir string) (*Writer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}
	return &Writer{outputDir: outputDir, now: time.Now}, nil
}

// Write serializes the result and saves it under a date-stamped filename,
// returning the path written. A nil result is a silent no-op: it returns
// an empty path and no error. Every call with a result produces a new
// file; content is deterministic for a fixed result.
func (w *Writer) Write(result *api.ScrapeResult) (string, error) {
	if result == nil {
		return "", nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding result: %w", err)
	}

	now := w.now()
	filename := fmt.Sprintf("scrape-result-%s-%d.json",
		now.Format("2006-01-02"), now.Unix())
	fullPath := filepath.Join(w.outputDir, filename)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", fullPath, err)
	}
	return fullPath, nil
}
