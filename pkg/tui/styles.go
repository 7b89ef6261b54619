package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/gencomp/gencomp-cli/pkg/utils"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for primary actions
	ColorError    = "196" // Red for errors (same as danger)
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	ColonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	HeaderPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	EmptyActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Bold(true)

	EmptyInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim))

	ConfirmDangerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger)).
				Bold(true)

	ConfirmSafeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess)).
				Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimary)).
			Underline(true)

	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))
)

// GetTokenBadgeStyle colors the token badge by how much of the reply budget is used
func GetTokenBadgeStyle(tokenCount int) lipgloss.Style {
	_, status := utils.OutputBudgetStatus(tokenCount)
	switch status {
	case "good":
		return lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSuccess)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			Bold(true)
	case "warning":
		return lipgloss.NewStyle().
			Background(lipgloss.Color(ColorWarning)).
			Foreground(lipgloss.Color(ColorDark)).
			Padding(0, 1).
			Bold(true)
	default:
		return lipgloss.NewStyle().
			Background(lipgloss.Color(ColorDanger)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			Bold(true)
	}
}

// GetActiveHeaderStyle highlights the heading of the focused pane
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// GetBorderStyle picks the pane border for the focus state
func GetBorderStyle(isActive bool) lipgloss.Style {
	if isActive {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}

// GetStatusStyle colors the status bar by message type
func GetStatusStyle(t StatusType) lipgloss.Style {
	bg := ColorPrimary
	fg := ColorWhite
	switch t {
	case StatusTypeSuccess:
		bg = ColorSuccess
	case StatusTypeWarning:
		bg = ColorWarning
		fg = ColorDark
	case StatusTypeError:
		bg = ColorError
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1)
}

// renderHeading draws "TITLE ::::::: right" across width
func renderHeading(title string, right string, width int, active bool) string {
	colons := width - lipgloss.Width(title) - lipgloss.Width(right) - 4
	if colons < 3 {
		colons = 3
	}
	line := GetActiveHeaderStyle(active).Render(title) + " " + ColonStyle.Render(strings.Repeat(":", colons))
	if right != "" {
		line += " " + right
	}
	return HeaderPaddingStyle.Render(line)
}

// formatConfirmOptions renders the y/n hint, red for destructive answers
func formatConfirmOptions(destructive bool) string {
	if destructive {
		return ConfirmDangerStyle.Render("[y]") + "/" + ConfirmSafeStyle.Render("[n]")
	}
	return ConfirmSafeStyle.Render("[y]") + "/" + NormalStyle.Render("[n]")
}

// formatHelpText joins help entries and wraps them to width
func formatHelpText(help []string, width int) string {
	text := DescriptionStyle.Render(strings.Join(help, " • "))
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
