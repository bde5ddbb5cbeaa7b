package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputBar is the single URL field at the top of the screen.
type InputBar struct {
	input  textinput.Model
	status string
	width  int
	style  lipgloss.Style
}

// NewInputBar creates the URL input, focused and ready to type.
func NewInputBar() *InputBar {
	ti := textinput.New()
	ti.Placeholder = "https://example.com"
	ti.Prompt = "URL ❯ "
	ti.PromptStyle = titleStyle.PaddingLeft(0)
	ti.CharLimit = 2048
	ti.Focus()

	return &InputBar{
		input: ti,
		style: borderStyle.BorderForeground(lipgloss.Color("205")),
	}
}

func (b *InputBar) Init() tea.Cmd {
	return textinput.Blink
}

func (b *InputBar) Update(msg tea.Msg) (Component, tea.Cmd) {
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *InputBar) View() string {
	line := b.input.View()
	if b.status != "" {
		line += "  " + infoStyle.Render(b.status)
	}
	return b.style.Width(b.width - 2).Render(line)
}

func (b *InputBar) SetSize(width, height int) {
	b.width = width
	b.input.Width = width - 30
}

// Value returns the current field content.
func (b *InputBar) Value() string {
	return b.input.Value()
}

// Focused reports whether the field is capturing keystrokes.
func (b *InputBar) Focused() bool {
	return b.input.Focused()
}

// Focus gives the field keyboard focus.
func (b *InputBar) Focus() tea.Cmd {
	return b.input.Focus()
}

// Blur releases keyboard focus to the section panels.
func (b *InputBar) Blur() {
	b.input.Blur()
}

// SetStatus sets the short status shown beside the field, e.g. the
// backend health state.
func (b *InputBar) SetStatus(status string) {
	b.status = status
}
