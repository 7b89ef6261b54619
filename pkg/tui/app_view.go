package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gencomp/gencomp-cli/pkg/models"
	"github.com/gencomp/gencomp-cli/pkg/studio"
	"github.com/gencomp/gencomp-cli/pkg/utils"
)

const headerTitle = "Describe it. Generate it. Preview it."

// View renders the screen
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.state.FullscreenOpen {
		return a.renderFullscreen()
	}

	var s strings.Builder
	s.WriteString(renderHeader(a.width, headerTitle))
	s.WriteString("\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top, a.renderInputPane(), " ", a.renderOutputPane())
	s.WriteString(ContentPaddingStyle.Render(panes))
	s.WriteString("\n")

	switch {
	case a.confirm.Active():
		s.WriteString(ContentPaddingStyle.Render(a.confirm.ViewWithWidth(a.width - 4)))
		s.WriteString("\n")
	case a.filename.Active():
		s.WriteString(a.filename.View())
		s.WriteString("\n")
	}

	s.WriteString(a.renderStatusBar())
	s.WriteString("\n")
	s.WriteString(a.renderHelp())

	return s.String()
}

func (a *App) renderInputPane() string {
	var c strings.Builder

	c.WriteString(renderHeading("FRAMEWORK", "", a.leftWidth, a.focus == paneFramework))
	c.WriteString("\n\n")

	selector := fmt.Sprintf("◀ %s ▶", a.state.Framework.Label())
	if a.focus == paneFramework {
		selector = SelectedStyle.Render(selector)
	} else {
		selector = NormalStyle.Render(selector)
	}
	c.WriteString(ContentPaddingStyle.Render(selector))
	c.WriteString("\n\n")

	c.WriteString(renderHeading("DESCRIBE YOUR COMPONENT", "", a.leftWidth, a.focus == panePrompt))
	c.WriteString("\n\n")
	c.WriteString(ContentPaddingStyle.Render(a.prompt.View()))
	c.WriteString("\n\n")
	c.WriteString(ContentPaddingStyle.Render(a.generateHint()))

	return GetBorderStyle(a.focus != paneOutput).
		Width(a.leftWidth).
		Height(a.contentHeight).
		Render(c.String())
}

func (a *App) generateHint() string {
	generate := FormatShortcutForHelp(Shortcuts.Generate)
	switch {
	case a.state.Loading:
		return a.spinner.View() + " Generating..."
	case !a.session.HasAPIKey():
		return ErrorStyle.Render("GEMINI_API_KEY is not set")
	case strings.TrimSpace(a.state.Prompt) == "":
		return DescriptionStyle.Render("Describe your component, then press " + generate)
	default:
		return EmptyActiveStyle.Render(generate + " generate")
	}
}

func (a *App) renderOutputPane() string {
	active := a.focus == paneOutput

	var c strings.Builder

	if !a.state.OutputVisible {
		c.WriteString(renderHeading("OUTPUT", "", a.rightWidth, active))
		c.WriteString("\n\n")
		if a.state.Loading {
			c.WriteString(ContentPaddingStyle.Render(a.spinner.View() + " Generating your component..."))
		} else {
			c.WriteString(EmptyInactiveStyle.Render("Your generated component will appear here"))
		}
	} else {
		c.WriteString(a.renderTabs())
		c.WriteString("\n")
		if a.state.ActiveTab == studio.TabPreview {
			c.WriteString(a.renderPreviewPanel(a.rightWidth, active))
		} else {
			c.WriteString(a.source.View(strings.ToUpper(models.DefaultFilename), active))
		}
	}

	return GetBorderStyle(active).
		Width(a.rightWidth).
		Height(a.contentHeight).
		Render(c.String())
}

func (a *App) renderTabs() string {
	tabs := []studio.Tab{studio.TabSource, studio.TabPreview}
	keys := []ShortcutKey{Shortcuts.SourceTab, Shortcuts.PreviewTab}

	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%s %s", keys[i].Get(), tab)
		if tab == a.state.ActiveTab {
			rendered = append(rendered, SelectedStyle.Padding(0, 1).Render(label))
		} else {
			rendered = append(rendered, NormalStyle.Padding(0, 1).Render(label))
		}
	}
	if a.state.Loading {
		rendered = append(rendered, " "+a.spinner.View())
	}
	return HeaderPaddingStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (a *App) renderPreviewPanel(width int, active bool) string {
	badge := DescriptionStyle.Render(fmt.Sprintf("render #%d", a.state.PreviewEpoch))

	var c strings.Builder
	c.WriteString(renderHeading("LIVE PREVIEW", badge, width, active))
	c.WriteString("\n\n")

	var lines []string
	switch {
	case a.preview.Ready:
		lines = append(lines, "Open in a browser:", LinkStyle.Render(a.preview.URL))
	case a.preview.IsStarting():
		lines = append(lines, a.spinner.View()+" Starting preview server...")
	case a.preview.LastError != nil:
		lines = append(lines, ErrorStyle.Render("Preview unavailable: "+a.preview.LastError.Error()))
	}

	lines = append(lines, "", DescriptionStyle.Render(utils.StatsFor(a.state.Document).String()))
	lines = append(lines, "", DescriptionStyle.Render(strings.Join([]string{
		FormatShortcutForHelp(Shortcuts.OpenBrowser) + " open in browser",
		FormatShortcutForHelp(Shortcuts.Refresh) + " refresh",
		FormatShortcutForHelp(Shortcuts.Fullscreen) + " fullscreen",
	}, " • ")))

	c.WriteString(ContentPaddingStyle.Render(strings.Join(lines, "\n")))
	return c.String()
}

func (a *App) renderFullscreen() string {
	width := a.width - 4
	badge := DescriptionStyle.Render(fmt.Sprintf("render #%d", a.state.PreviewEpoch))

	var c strings.Builder
	c.WriteString(renderHeading("FULLSCREEN PREVIEW", badge, width, true))
	c.WriteString("\n\n")

	var lines []string
	switch {
	case a.preview.Ready:
		lines = append(lines, LinkStyle.Render(a.preview.FullscreenURL))
	case a.preview.IsStarting():
		lines = append(lines, a.spinner.View()+" Starting preview server...")
	case a.preview.LastError != nil:
		lines = append(lines, ErrorStyle.Render("Preview unavailable: "+a.preview.LastError.Error()))
	}
	lines = append(lines, "", DescriptionStyle.Render(utils.StatsFor(a.state.Document).String()))
	c.WriteString(ContentPaddingStyle.Render(strings.Join(lines, "\n")))

	box := ActiveBorderStyle.
		Width(width).
		Height(a.height - 6).
		Render(c.String())

	help := []string{
		"esc close",
		FormatShortcutForHelp(Shortcuts.OpenBrowser) + " open in browser",
		FormatShortcutForHelp(Shortcuts.Refresh) + " refresh",
	}

	var s strings.Builder
	s.WriteString(ContentPaddingStyle.Render(box))
	s.WriteString("\n")
	s.WriteString(a.renderStatusBar())
	s.WriteString("\n")
	s.WriteString(ContentPaddingStyle.Render(formatHelpText(help, width)))
	return s.String()
}

func (a *App) renderStatusBar() string {
	text, ok := a.status.GetStatus()
	if !ok {
		return ""
	}
	return ContentPaddingStyle.Render(GetStatusStyle(a.status.ActiveType()).Render(text))
}

func (a *App) renderHelp() string {
	help := []string{
		"tab switch pane",
		FormatShortcutForHelp(Shortcuts.Generate) + " generate",
	}

	switch a.focus {
	case paneFramework:
		help = append(help, "←/→ framework")
	case panePrompt:
		help = append(help, "esc leave prompt")
	case paneOutput:
		help = append(help, "[/] framework")
		if a.state.OutputVisible {
			help = append(help,
				"1/2 tabs",
				FormatShortcutForHelp(Shortcuts.Copy)+" copy",
				FormatShortcutForHelp(Shortcuts.Download)+" download",
				FormatShortcutForHelp(Shortcuts.DownloadAs)+" save as",
				FormatShortcutForHelp(Shortcuts.Fullscreen)+" fullscreen",
				FormatShortcutForHelp(Shortcuts.Refresh)+" refresh",
				FormatShortcutForHelp(Shortcuts.ExternalEdit)+" edit",
				"↑/↓ scroll",
			)
		}
	}
	help = append(help, FormatShortcutForHelp(Shortcuts.Quit)+" quit")

	return ContentPaddingStyle.Render(
		HelpBorderStyle.Width(a.width - 4).Render(formatHelpText(help, a.width-8)),
	)
}
