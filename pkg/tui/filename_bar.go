package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FilenameBar asks for a download filename
type FilenameBar struct {
	input  textinput.Model
	active bool
	width  int
}

// NewFilenameBar creates a hidden filename bar
func NewFilenameBar() *FilenameBar {
	ti := textinput.New()
	ti.Placeholder = "GenUI-Code.html"
	ti.CharLimit = 255
	ti.Width = 50 // adjusted by SetWidth

	return &FilenameBar{
		input: ti,
	}
}

// Show activates the bar prefilled with name
func (f *FilenameBar) Show(name string) tea.Cmd {
	f.active = true
	f.input.SetValue(name)
	f.input.CursorEnd()
	return f.input.Focus()
}

// Hide deactivates the bar
func (f *FilenameBar) Hide() {
	f.active = false
	f.input.Blur()
}

// Active reports whether the bar is shown
func (f *FilenameBar) Active() bool {
	return f.active
}

// SetWidth sets the width for the bar
func (f *FilenameBar) SetWidth(width int) {
	f.width = width
	// borders (2), outer padding (2), inner padding (2) and the label
	f.input.Width = width - 6 - lipgloss.Width(filenameLabel) - 1
	if f.input.Width < 10 {
		f.input.Width = 10
	}
}

// Value returns the entered filename
func (f *FilenameBar) Value() string {
	return f.input.Value()
}

// Update handles tea messages for the bar
func (f *FilenameBar) Update(msg tea.Msg) (*FilenameBar, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

const filenameLabel = "Save as"

// View renders the bar
func (f *FilenameBar) View() string {
	if !f.active {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Width(f.width - 4).
		Padding(0, 1)

	label := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorActive)).
		Foreground(lipgloss.Color(ColorWhite)).
		Bold(true).
		Padding(0, 1).
		Render(filenameLabel)

	content := lipgloss.JoinHorizontal(lipgloss.Center, label, " ", f.input.View())
	return ContentPaddingStyle.Render(style.Render(content))
}
