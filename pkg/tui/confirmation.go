package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Simple inline message
	ConfirmTypeDialog                          // Full dialog with border and centered layout
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string           // Title for dialog type (optional)
	Message     string           // Main confirmation message
	Warning     string           // Optional warning text (shown in orange)
	Details     []string         // Optional detail lines
	Destructive bool             // If true, Yes is red, No is green
	Type        ConfirmationType // Visual style
	YesLabel    string           // Custom label for Yes (default: "Yes")
	NoLabel     string           // Custom label for No (default: "No")
	Width       int              // Width for dialog type
}

// ConfirmationModel handles confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	viewWidth int // Width for centering inline messages
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	// Set defaults
	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	switch m.config.Type {
	case ConfirmTypeInline:
		return m.renderInline()
	case ConfirmTypeDialog:
		return m.renderDialog()
	default:
		return m.renderInline()
	}
}

// ViewWithWidth renders the confirmation with a specific width for centering
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

// renderInline renders a simple inline confirmation message
func (m *ConfirmationModel) renderInline() string {
	options := formatConfirmOptions(m.config.Destructive)
	message := fmt.Sprintf("%s %s", m.config.Message, options)

	// Center the message if width is provided
	if m.viewWidth > 0 {
		messageWidth := lipgloss.Width(message)
		if messageWidth < m.viewWidth {
			centeredStyle := lipgloss.NewStyle().
				Width(m.viewWidth).
				Align(lipgloss.Center)
			return centeredStyle.Render(message)
		}
	}

	return message
}

// renderDialog renders a full dialog with border
func (m *ConfirmationModel) renderDialog() string {
	width := m.config.Width
	if width == 0 {
		width = 60
	}
	contentWidth := width - 8 // border and padding

	center := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center)

	var content strings.Builder

	if m.config.Title != "" {
		content.WriteString(center.Render(HeaderStyle.Render(m.config.Title)))
		content.WriteString("\n\n")
	}

	if m.config.Message != "" {
		content.WriteString(center.Render(m.config.Message))
		content.WriteString("\n")
	}

	if m.config.Warning != "" {
		content.WriteString("\n")
		content.WriteString(center.Render(WarningStyle.Render(m.config.Warning)))
		content.WriteString("\n")
	}

	for i, detail := range m.config.Details {
		if i == 0 {
			content.WriteString("\n")
		}
		content.WriteString(NormalStyle.Render("  • " + detail))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	labels := fmt.Sprintf("(%s / %s)",
		strings.ToLower(m.config.YesLabel),
		strings.ToLower(m.config.NoLabel))
	content.WriteString(center.Render(formatConfirmOptions(m.config.Destructive) + "  " + labels))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 2).
		Width(width).
		Render(content.String())
}

// Helper function to create a quick inline confirmation
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

// ShowOverwrite asks before replacing an existing export
func (m *ConfirmationModel) ShowOverwrite(path string, width int, onConfirm func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Title:       "File Already Exists",
		Message:     fmt.Sprintf("Overwrite %s?", filepath.Base(path)),
		Details:     []string{path},
		Destructive: true,
		Type:        ConfirmTypeDialog,
		YesLabel:    "Overwrite",
		NoLabel:     "Keep",
		Width:       width,
	}, onConfirm, nil)
}
