package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gencomp/gencomp-cli/pkg/models"
	"github.com/gencomp/gencomp-cli/pkg/studio"
)

// Update routes messages to the session and the widgets
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case stateChangedMsg:
		return a, a.applyState(msg.state)

	case generationDoneMsg:
		a.session.Complete(msg.ticket, msg.result)
		return a, nil

	case previewStartedMsg:
		return a, a.onPreviewStarted(msg)

	case browserOpenedMsg:
		if msg.err != nil {
			a.log.Debug("browser open failed", zap.Error(msg.err))
			return a, a.status.ShowWarning(fmt.Sprintf("Could not open a browser. Visit %s", msg.url))
		}
		return a, nil

	case editorFinishedMsg:
		content, err := readEditorResult(msg)
		if err != nil {
			a.session.Notify(studio.LevelError, "Failed to edit: "+err.Error())
			return a, nil
		}
		if a.session.EditDocument(content) {
			a.session.Notify(studio.LevelSuccess, "Document updated from editor")
		} else {
			a.session.Notify(studio.LevelInfo, "No changes")
		}
		return a, nil

	case spinner.TickMsg:
		if !a.state.Loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case ClearStatusMsg:
		// expiry is checked when rendering
		return a, nil

	case StatusMsg:
		return a, a.status.ShowInfo(string(msg))

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	// cursor blink and other widget messages
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if Shortcuts.Quit.Matches(key) {
		return tea.Quit
	}

	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}

	if a.filename.Active() {
		switch {
		case Shortcuts.Cancel.Matches(key):
			a.filename.Hide()
			return nil
		case Shortcuts.Confirm.Matches(key):
			name := a.filename.Value()
			a.filename.Hide()
			return a.download(name)
		}
		var cmd tea.Cmd
		a.filename, cmd = a.filename.Update(msg)
		return cmd
	}

	if a.state.FullscreenOpen {
		return a.handleFullscreenKey(key)
	}

	if Shortcuts.Generate.Matches(key) {
		return a.generate()
	}

	switch {
	case Shortcuts.SwitchPane.Matches(key):
		return a.cycleFocus(1)
	case Shortcuts.ReverseSwitch.Matches(key):
		return a.cycleFocus(-1)
	}

	switch a.focus {
	case paneFramework:
		return a.handleFrameworkKey(key)
	case panePrompt:
		if Shortcuts.Cancel.Matches(key) {
			return a.setFocus(paneOutput)
		}
		var cmd tea.Cmd
		a.prompt, cmd = a.prompt.Update(msg)
		a.session.UpdatePrompt(a.prompt.Value())
		return cmd
	default:
		return a.handleOutputKey(msg)
	}
}

func (a *App) handleFrameworkKey(key string) tea.Cmd {
	switch key {
	case "left", "up", "h", "k", Shortcuts.PrevFramework.Get():
		a.session.UpdateFramework(a.state.Framework.Prev())
	case "right", "down", "l", "j", Shortcuts.NextFramework.Get():
		a.session.UpdateFramework(a.state.Framework.Next())
	case "enter":
		return a.setFocus(panePrompt)
	}
	return nil
}

func (a *App) handleOutputKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch {
	case Shortcuts.PrevFramework.Matches(key):
		a.session.UpdateFramework(a.state.Framework.Prev())
	case Shortcuts.NextFramework.Matches(key):
		a.session.UpdateFramework(a.state.Framework.Next())
	case Shortcuts.SourceTab.Matches(key):
		a.session.SwitchTab(studio.TabSource)
	case Shortcuts.PreviewTab.Matches(key):
		a.session.SwitchTab(studio.TabPreview)
	case Shortcuts.Copy.Matches(key):
		_ = a.session.RequestCopy()
	case Shortcuts.Download.Matches(key):
		return a.download("")
	case Shortcuts.DownloadAs.Matches(key):
		if !a.state.OutputVisible {
			return a.download("")
		}
		return a.filename.Show(a.settings.Output.DefaultFilename)
	case Shortcuts.Fullscreen.Matches(key):
		a.session.OpenFullscreen()
	case Shortcuts.Refresh.Matches(key):
		a.session.RefreshPreview()
	case Shortcuts.ExternalEdit.Matches(key):
		return a.editExternally()
	case Shortcuts.OpenBrowser.Matches(key):
		if a.state.OutputVisible && a.preview.Ready {
			return a.openBrowser(a.preview.URL)
		}
	default:
		if a.state.OutputVisible && a.state.ActiveTab == studio.TabSource {
			return a.source.Update(msg)
		}
	}
	return nil
}

func (a *App) handleFullscreenKey(key string) tea.Cmd {
	switch {
	case Shortcuts.Cancel.Matches(key), Shortcuts.Fullscreen.Matches(key):
		a.session.CloseFullscreen()
	case Shortcuts.Refresh.Matches(key):
		a.session.RefreshPreview()
	case Shortcuts.OpenBrowser.Matches(key):
		if a.preview.Ready {
			return a.openBrowser(a.preview.FullscreenURL)
		}
	}
	return nil
}

// download saves the document, asking first when the target exists
func (a *App) download(name string) tea.Cmd {
	if !a.state.OutputVisible {
		_, _ = a.session.RequestDownload(name)
		return nil
	}

	target, exists := a.session.DownloadTarget(name)
	if exists {
		switch a.settings.Output.Overwrite {
		case models.OverwriteNever:
			a.session.Notify(studio.LevelWarning, fmt.Sprintf("%s already exists", filepath.Base(target)))
			return nil
		case models.OverwriteAsk:
			a.confirm.ShowOverwrite(target, 60, func() tea.Cmd {
				_, _ = a.session.RequestDownload(name)
				return nil
			})
			return nil
		}
	}

	_, _ = a.session.RequestDownload(name)
	return nil
}

func (a *App) editExternally() tea.Cmd {
	if !a.state.OutputVisible {
		return nil
	}
	cmd, err := openInEditor(resolveEditor(a.settings.Editor.Command), a.state.Document)
	if err != nil {
		a.session.Notify(studio.LevelError, "Failed to open editor: "+err.Error())
		return nil
	}
	return cmd
}
