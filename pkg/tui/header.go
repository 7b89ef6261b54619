package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const headerLogo = `▄▖      ▄▖
▌ █▌▛▌  ▌ ▛▌▛▛▌▛▌
▙▌▙▖▌▌  ▙▖▙▌▌▌▌▙▌
                ▌`

// HeaderHeight is the number of lines renderHeader produces
const HeaderHeight = 4

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/magenta color
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(headerLogo)

	if title == "" {
		rightAlign := lipgloss.NewStyle().
			Width(width - 2).
			Align(lipgloss.Right)
		return headerPadding.Render(rightAlign.Render(logoRendered))
	}

	// Title sits on the last logo row
	titleRendered := titleStyle.Render(strings.Repeat("\n", HeaderHeight-1) + title)
	logoWidth := lipgloss.Width(headerLogo)
	gap := width - 2 - lipgloss.Width(title) - logoWidth
	if gap < 1 {
		gap = 1
	}

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	)
	return headerPadding.Render(headerContent)
}
