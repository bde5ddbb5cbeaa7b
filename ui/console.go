package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LogLevel represents the severity of a console entry.
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelWarning
	LevelError
)

// LogEntry represents a single console message.
type LogEntry struct {
	timestamp time.Time
	level     LogLevel
	message   string
}

// Console shows client-side messages plus the non-fatal errors and
// warnings embedded in scrape results.
type Console struct {
	viewport viewport.Model
	entries  []LogEntry
	width    int
	height   int
	style    lipgloss.Style
}

// Styles for the console levels
var (
	errorLogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningLogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	infoLogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)
)

// NewConsole creates an empty console.
func NewConsole() *Console {
	c := &Console{
		entries: make([]LogEntry, 0),
		style:   borderStyle.BorderForeground(lipgloss.Color("196")),
	}
	c.viewport = viewport.New(0, 0)
	return c
}

func (c *Console) Init() tea.Cmd {
	return nil
}

func (c *Console) Update(msg tea.Msg) (Component, tea.Cmd) {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// AddEntry adds a new console entry.
func (c *Console) AddEntry(level LogLevel, msg string) {
	c.entries = append(c.entries, LogEntry{
		timestamp: time.Now(),
		level:     level,
		message:   msg,
	})
	c.updateContent()
}

func (c *Console) View() string {
	stats := fmt.Sprintf(
		"Total: %d | Errors: %d | Warnings: %d",
		len(c.entries),
		c.countByLevel(LevelError),
		c.countByLevel(LevelWarning),
	)

	return c.style.Width(c.width - 2).Render(
		c.viewport.View() + "\n" + infoStyle.Render(stats))
}

func (c *Console) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.Width = width - 4
	c.viewport.Height = height - 3
}

// updateContent rebuilds the viewport content.
func (c *Console) updateContent() {
	var sb strings.Builder

	for _, entry := range c.entries {
		timestamp := timestampStyle.Render(entry.timestamp.Format("15:04:05"))

		var logStyle lipgloss.Style
		switch entry.level {
		case LevelError:
			logStyle = errorLogStyle
		case LevelWarning:
			logStyle = warningLogStyle
		default:
			logStyle = infoLogStyle
		}

		sb.WriteString(fmt.Sprintf(
			"%s [%s] %s\n",
			timestamp,
			logStyle.Render(c.levelString(entry.level)),
			entry.message,
		))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Helper functions
func (c *Console) levelString(level LogLevel) string {
	switch level {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	default:
		return "INFO"
	}
}

func (c *Console) countByLevel(level LogLevel) int {
	count := 0
	for _, entry := range c.entries {
		if entry.level == level {
			count++
		}
	}
	return count
}
