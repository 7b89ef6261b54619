// Package studio holds the view state machine: the prompt, the generated
// document, the output tabs and the preview epoch, plus the operations that
// move between them. Presentation layers observe it through Subscribe.
package studio

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gencomp/gencomp-cli/internal/logging"
	"github.com/gencomp/gencomp-cli/pkg/export"
	"github.com/gencomp/gencomp-cli/pkg/genai"
	"github.com/gencomp/gencomp-cli/pkg/models"
)

// Generator produces documents; *genai.Client satisfies it
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest, cfg genai.Config) models.GenerationResult
}

// Options wires a Session to its collaborators
type Options struct {
	Generator       Generator
	APIKey          string
	Framework       models.Framework
	Clipboard       export.Clipboard
	ExportDir       string
	DefaultFilename string
	Logger          *zap.Logger
}

// Ticket identifies one in-flight generation
type Ticket struct {
	ID      uuid.UUID
	Request models.GenerationRequest
}

// Session is the state container. Mutations are serialized by a mutex and
// every change is pushed to subscribers after the lock is released.
type Session struct {
	mu      sync.Mutex
	state   ViewState
	seq     uint64
	pending uuid.UUID
	closed  bool

	gen       Generator
	cfg       genai.Config
	clipboard export.Clipboard
	exportDir string
	filename  string
	log       *zap.Logger

	subs    map[int]func(ViewState)
	nextSub int
}

// New creates a session with empty defaults
func New(opts Options) *Session {
	fw := opts.Framework
	if !fw.Valid() {
		fw = models.DefaultFramework
	}
	log := opts.Logger
	if log == nil {
		log = logging.Named("studio")
	}
	return &Session{
		state: ViewState{
			Framework: fw,
			ActiveTab: TabSource,
		},
		gen:       opts.Generator,
		cfg:       genai.Config{APIKey: opts.APIKey},
		clipboard: opts.Clipboard,
		exportDir: opts.ExportDir,
		filename:  opts.DefaultFilename,
		log:       log,
		subs:      make(map[int]func(ViewState)),
	}
}

// Subscribe registers fn to receive a snapshot after every change.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func(ViewState)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// HasAPIKey reports whether generation is configured
func (s *Session) HasAPIKey() bool {
	return strings.TrimSpace(s.cfg.APIKey) != ""
}

// Close tears the session down. Results that arrive afterwards are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.subs = make(map[int]func(ViewState))
	s.mu.Unlock()
}

// UpdatePrompt stores the description
func (s *Session) UpdatePrompt(text string) {
	s.mutate(func(st *ViewState) bool {
		if st.Prompt == text {
			return false
		}
		st.Prompt = text
		return true
	})
}

// UpdateFramework stores the framework choice
func (s *Session) UpdateFramework(f models.Framework) {
	if !f.Valid() {
		return
	}
	s.mutate(func(st *ViewState) bool {
		if st.Framework == f {
			return false
		}
		st.Framework = f
		return true
	})
}

// Begin starts a generation. It returns false without changing Loading when a
// generation is already in flight, the prompt is empty or no API key is set;
// the latter two surface a warning.
func (s *Session) Begin() (Ticket, bool) {
	var ticket Ticket
	started := false

	s.mutate(func(st *ViewState) bool {
		if s.closed || st.Loading {
			return false
		}
		if strings.TrimSpace(st.Prompt) == "" {
			s.notifyLocked(LevelWarning, models.ErrValidation, models.ErrValidation.UserMessage())
			return true
		}
		if !s.HasAPIKey() {
			s.notifyLocked(LevelWarning, models.ErrConfig, models.ErrConfig.UserMessage())
			return true
		}

		ticket = Ticket{
			ID:      uuid.New(),
			Request: models.GenerationRequest{Description: st.Prompt, Framework: st.Framework},
		}
		s.pending = ticket.ID
		st.Loading = true
		started = true
		return true
	})

	if started {
		s.log.Debug("generation started", zap.String("ticket", ticket.ID.String()), zap.String("framework", string(ticket.Request.Framework)))
	}
	return ticket, started
}

// Complete applies the outcome of the generation identified by ticket.
// On failure the previous document stays as it was.
func (s *Session) Complete(ticket Ticket, result models.GenerationResult) bool {
	applied := false

	s.mutate(func(st *ViewState) bool {
		if s.closed || ticket.ID != s.pending || !st.Loading {
			return false
		}
		s.pending = uuid.Nil
		st.Loading = false
		applied = true

		if result.OK() {
			st.Document = result.Document()
			st.OutputVisible = true
			s.notifyLocked(LevelSuccess, models.ErrUnknown, "Code generated successfully!")
			return true
		}

		kind := result.Kind()
		level := LevelError
		if kind.IsBlocking() {
			level = LevelWarning
		}
		s.notifyLocked(level, kind, kind.UserMessage())
		return true
	})

	if !applied {
		s.log.Debug("discarding generation result", zap.String("ticket", ticket.ID.String()))
		return false
	}
	if !result.OK() {
		s.log.Warn("generation failed", zap.Stringer("kind", result.Kind()), zap.Error(result.Err()))
	}
	return true
}

// Submit runs a whole generation synchronously. It reports whether a request
// was dispatched and, if so, its result.
func (s *Session) Submit(ctx context.Context) (models.GenerationResult, bool) {
	ticket, ok := s.Begin()
	if !ok {
		return models.GenerationResult{}, false
	}
	result := s.Generate(ctx, ticket)
	s.Complete(ticket, result)
	return result, true
}

// Generate performs the network call for a ticket without touching state.
// It is safe to run off the UI goroutine.
func (s *Session) Generate(ctx context.Context, ticket Ticket) models.GenerationResult {
	if s.gen == nil {
		return models.Failure(models.ErrUnknown, "no generator configured")
	}
	return s.gen.Generate(ctx, ticket.Request, s.cfg)
}

// SwitchTab selects the source or preview tab once there is output
func (s *Session) SwitchTab(tab Tab) bool {
	changed := false
	s.mutate(func(st *ViewState) bool {
		if !st.OutputVisible || st.ActiveTab == tab {
			return false
		}
		st.ActiveTab = tab
		changed = true
		return true
	})
	return changed
}

// OpenFullscreen opens the fullscreen preview once there is output
func (s *Session) OpenFullscreen() bool {
	opened := false
	s.mutate(func(st *ViewState) bool {
		if !st.OutputVisible || st.FullscreenOpen {
			return false
		}
		st.FullscreenOpen = true
		opened = true
		return true
	})
	return opened
}

// CloseFullscreen closes the fullscreen preview
func (s *Session) CloseFullscreen() {
	s.mutate(func(st *ViewState) bool {
		if !st.FullscreenOpen {
			return false
		}
		st.FullscreenOpen = false
		return true
	})
}

// RefreshPreview bumps the preview epoch so the rendering surface reloads.
// Only allowed while the preview tab is active.
func (s *Session) RefreshPreview() bool {
	refreshed := false
	s.mutate(func(st *ViewState) bool {
		if !st.OutputVisible || st.ActiveTab != TabPreview {
			return false
		}
		st.PreviewEpoch++
		refreshed = true
		return true
	})
	return refreshed
}

// EditDocument replaces the document with text from the embedded editor.
// The preview is not reloaded until RefreshPreview is called.
func (s *Session) EditDocument(text string) bool {
	edited := false
	s.mutate(func(st *ViewState) bool {
		if !st.OutputVisible || strings.TrimSpace(text) == "" || st.Document == text {
			return false
		}
		st.Document = text
		edited = true
		return true
	})
	return edited
}

// RequestCopy copies the current document to the clipboard
func (s *Session) RequestCopy() error {
	doc := s.Snapshot().Document

	err := export.CopyToClipboard(doc, s.clipboard)
	switch {
	case err == nil:
		s.notify(LevelSuccess, models.ErrUnknown, "Code copied to clipboard")
	case models.IsKind(err, models.ErrEmptyDocument):
		s.notify(LevelWarning, models.ErrEmptyDocument, "No code to copy")
	default:
		s.log.Warn("clipboard write failed", zap.Error(err))
		s.notify(LevelError, models.KindOf(err), models.KindOf(err).UserMessage())
	}
	return err
}

// RequestDownload saves the current document; an empty filename uses the default
func (s *Session) RequestDownload(filename string) (string, error) {
	doc := s.Snapshot().Document
	if filename == "" {
		filename = s.filename
	}

	path, err := export.DownloadAsFile(doc, s.exportDir, filename)
	switch {
	case err == nil:
		s.log.Info("document saved", zap.String("path", path), zap.Int("bytes", len(doc)))
		s.notify(LevelSuccess, models.ErrUnknown, "File downloaded successfully! ("+path+")")
	case models.IsKind(err, models.ErrEmptyDocument):
		s.notify(LevelWarning, models.ErrEmptyDocument, "No code to download")
	default:
		s.log.Warn("download failed", zap.Error(err))
		s.notify(LevelError, models.KindOf(err), "Failed to save file: "+err.Error())
	}
	return path, err
}

// DownloadTarget reports where RequestDownload(filename) would write and
// whether something is already there
func (s *Session) DownloadTarget(filename string) (string, bool) {
	if filename == "" {
		filename = s.filename
	}
	return export.TargetPath(s.exportDir, filename), export.Exists(s.exportDir, filename)
}

// Notify surfaces a message that did not come from a state operation
func (s *Session) Notify(level Level, message string) {
	s.notify(level, models.ErrUnknown, message)
}

func (s *Session) notify(level Level, kind models.ErrorKind, message string) {
	s.mutate(func(st *ViewState) bool {
		s.notifyLocked(level, kind, message)
		return true
	})
}

// notifyLocked must be called with s.mu held
func (s *Session) notifyLocked(level Level, kind models.ErrorKind, message string) {
	s.seq++
	s.state.Notification = &Notification{Seq: s.seq, Level: level, Kind: kind, Message: message}
}

// mutate applies fn under the lock and publishes the new state when fn reports a change
func (s *Session) mutate(fn func(st *ViewState) bool) {
	s.mu.Lock()
	if !fn(&s.state) || s.closed {
		s.mu.Unlock()
		return
	}
	snapshot := s.state.clone()
	subs := make([]func(ViewState), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}
