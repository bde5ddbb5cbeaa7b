package progress

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/progress"
)

// TickInterval is how often the UI advances the simulator while a request
// is outstanding.
const TickInterval = 250 * time.Millisecond

// phase maps a percentage threshold to the label shown next to the bar.
type phase struct {
	threshold float64
	label     string
}

// Fixed ordered phase labels, advanced by percentage thresholds. The bar
// is purely cosmetic and never reflects real server progress.
var phases = []phase{
	{0, "Connecting"},
	{15, "Fetching page"},
	{35, "Rendering scripts"},
	{55, "Extracting sections"},
	{75, "Analyzing content"},
	{90, "Finalizing"},
}

// Simulator advances a cosmetic completion percentage while a scrape
// request is in flight. It holds no timer of its own; the owning component
// drives it with ticks and stops ticking when the request ends.
type Simulator struct {
	percent float64
	rng     *rand.Rand
	bar     progress.Model
}

// NewSimulator creates a simulator starting at zero percent.
func NewSimulator() *Simulator {
	return newSimulator(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{
		rng: rng,
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

// Advance adds a random increment and returns the new percentage,
// capped at 100.
func (s *Simulator) Advance() float64 {
	s.percent += 2 + s.rng.Float64()*10
	if s.percent > 100 {
		s.percent = 100
	}
	return s.percent
}

// Finish jumps the bar to 100. Called when the real request completes.
func (s *Simulator) Finish() {
	s.percent = 100
}

// Percent returns the current percentage.
func (s *Simulator) Percent() float64 {
	return s.percent
}

// PhaseLabel returns the label for the current percentage.
func (s *Simulator) PhaseLabel() string {
	label := phases[0].label
	for _, p := range phases {
		if s.percent >= p.threshold {
			label = p.label
		}
	}
	return label
}

// ViewAs renders the bar at the current percentage.
func (s *Simulator) ViewAs(width int) string {
	if width > 0 {
		s.bar.Width = width
	}
	return s.bar.ViewAs(s.percent / 100)
}
