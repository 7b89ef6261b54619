package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gencomp/gencomp-cli/internal/logging"
	"github.com/gencomp/gencomp-cli/pkg/models"
	"github.com/gencomp/gencomp-cli/pkg/preview"
	"github.com/gencomp/gencomp-cli/pkg/studio"
)

type focusPane int

const (
	paneFramework focusPane = iota
	panePrompt
	paneOutput
	paneCount
)

// previewHost is the part of the preview server the TUI drives
type previewHost interface {
	Start(addr string) error
	Publish(doc string, epoch uint64)
	URL() string
	FullscreenURL() string
	Close() error
}

// Messages for communication between commands and the model
type stateChangedMsg struct {
	state studio.ViewState
}

type generationDoneMsg struct {
	ticket studio.Ticket
	result models.GenerationResult
}

type previewStartedMsg struct {
	err error
}

type browserOpenedMsg struct {
	url string
	err error
}

// App is the studio screen: framework and prompt on the left, output on the right
type App struct {
	session  *studio.Session
	settings *models.Settings
	log      *zap.Logger

	state       studio.ViewState
	lastSeq     uint64
	updates     chan struct{}
	listening   bool
	unsubscribe func()
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once

	width         int
	height        int
	leftWidth     int
	rightWidth    int
	contentHeight int
	focus         focusPane

	prompt   textarea.Model
	source   *SourceView
	spinner  spinner.Model
	status   *StatusManager
	confirm  *ConfirmationModel
	filename *FilenameBar
	preview  *PreviewState
	host     previewHost
	openURL  func(string) error
}

// NewApp creates the TUI bound to session
func NewApp(session *studio.Session, settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	ta := textarea.New()
	ta.Placeholder = "e.g. A pricing card with three tiers, the middle one highlighted"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		session:  session,
		settings: settings,
		log:      logging.Named("tui"),
		updates:  make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
		focus:    panePrompt,
		prompt:   ta,
		source:   NewSourceView(),
		spinner:  sp,
		status:   NewStatusManager(settings.UI.StatusDuration),
		confirm:  NewConfirmation(),
		filename: NewFilenameBar(),
		preview:  NewPreviewState(),
		host:     preview.New(preview.WithFilename(settings.Output.DefaultFilename)),
		openURL:  preview.OpenBrowser,
	}

	a.state = session.Snapshot()
	a.prompt.SetValue(a.state.Prompt)
	a.source.SetContent(a.state.Document)

	// Coalesce change signals; the model re-reads the snapshot itself
	a.unsubscribe = session.Subscribe(func(studio.ViewState) {
		select {
		case a.updates <- struct{}{}:
		default:
		}
	})

	if !session.HasAPIKey() {
		a.status.SetPersistentMessage(models.ErrConfig.UserMessage(), StatusTypeWarning)
	}

	return a
}

// Init starts listening for session changes
func (a *App) Init() tea.Cmd {
	a.listening = true
	return tea.Batch(textarea.Blink, a.waitForState())
}

// Close stops listening, drops in-flight results and shuts the preview server down
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.unsubscribe()
		a.cancel()
		a.session.Close()
		if a.preview.Ready {
			if err := a.host.Close(); err != nil {
				a.log.Debug("preview server close failed", zap.Error(err))
			}
		}
	})
}

// waitForState blocks until the session signals a change
func (a *App) waitForState() tea.Cmd {
	updates := a.updates
	session := a.session
	return func() tea.Msg {
		<-updates
		return stateChangedMsg{state: session.Snapshot()}
	}
}

// applyState takes a new snapshot and reacts to what changed
func (a *App) applyState(st studio.ViewState) tea.Cmd {
	prev := a.state
	a.state = st

	var cmds []tea.Cmd

	if st.Document != prev.Document {
		a.source.SetContent(st.Document)
	}
	if st.Prompt != a.prompt.Value() {
		a.prompt.SetValue(st.Prompt)
	}

	if n := st.Notification; n != nil && n.Seq > a.lastSeq {
		a.lastSeq = n.Seq
		cmds = append(cmds, a.status.ShowNotification(*n))
	}

	cmds = append(cmds, a.syncPreview())

	if st.FullscreenOpen && !prev.FullscreenOpen {
		cmds = append(cmds, a.onFullscreenOpened())
	}

	if a.listening {
		cmds = append(cmds, a.waitForState())
	}
	return tea.Batch(cmds...)
}

// syncPreview starts the preview server on first output and publishes every change
func (a *App) syncPreview() tea.Cmd {
	if !a.state.OutputVisible {
		return nil
	}
	if a.preview.Ready {
		a.host.Publish(a.state.Document, a.state.PreviewEpoch)
		return nil
	}
	if !a.preview.NeedsStart() {
		return nil
	}

	a.preview.StartServer()
	host := a.host
	addr := a.settings.Preview.Addr
	return func() tea.Msg {
		return previewStartedMsg{err: host.Start(addr)}
	}
}

func (a *App) onPreviewStarted(msg previewStartedMsg) tea.Cmd {
	if msg.err != nil {
		a.preview.FailStart(msg.err)
		a.log.Warn("preview server failed to start", zap.Error(msg.err))
		return a.status.ShowError("Preview unavailable: " + msg.err.Error())
	}

	a.preview.CompleteStart(a.host.URL(), a.host.FullscreenURL())
	a.host.Publish(a.state.Document, a.state.PreviewEpoch)

	if a.preview.PendingFullscreen {
		a.preview.PendingFullscreen = false
		return a.openBrowser(a.preview.FullscreenURL)
	}
	return nil
}

func (a *App) onFullscreenOpened() tea.Cmd {
	if !a.settings.Preview.OpenBrowser {
		return nil
	}
	if !a.preview.Ready {
		a.preview.PendingFullscreen = true
		return nil
	}
	return a.openBrowser(a.preview.FullscreenURL)
}

func (a *App) openBrowser(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	open := a.openURL
	return func() tea.Msg {
		return browserOpenedMsg{url: url, err: open(url)}
	}
}

// generate dispatches the request off the update loop
func (a *App) generate() tea.Cmd {
	ticket, ok := a.session.Begin()
	if !ok {
		return nil
	}
	a.state = a.session.Snapshot()

	session := a.session
	ctx := a.ctx
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		return generationDoneMsg{ticket: ticket, result: session.Generate(ctx, ticket)}
	})
}

func (a *App) setFocus(p focusPane) tea.Cmd {
	a.focus = p
	if p == panePrompt {
		return a.prompt.Focus()
	}
	a.prompt.Blur()
	return nil
}

func (a *App) cycleFocus(delta int) tea.Cmd {
	next := (int(a.focus) + delta + int(paneCount)) % int(paneCount)
	return a.setFocus(focusPane(next))
}

// layout recomputes pane sizes after a resize
func (a *App) layout() {
	a.leftWidth = a.width * 2 / 5
	if a.leftWidth < 30 {
		a.leftWidth = 30
	}
	a.rightWidth = a.width - a.leftWidth - 7 // outer padding, gap and borders
	if a.rightWidth < 20 {
		a.rightWidth = 20
	}

	// header, status bar, help pane and borders
	a.contentHeight = a.height - HeaderHeight - 1 - 1 - 3 - 3
	if a.contentHeight < 12 {
		a.contentHeight = 12
	}

	a.prompt.SetWidth(a.leftWidth - 4)
	a.prompt.SetHeight(a.contentHeight - 9)
	a.source.SetSize(a.rightWidth, a.contentHeight-2) // tabs line and spacing
	a.filename.SetWidth(a.width)
}
