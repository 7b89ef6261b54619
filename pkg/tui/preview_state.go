package tui

// PreviewState tracks the local preview server the way the TUI sees it
type PreviewState struct {
	Starting          bool
	Ready             bool
	URL               string
	FullscreenURL     string
	PendingFullscreen bool // open the fullscreen page once the server is up
	LastError         error
}

// NewPreviewState creates a new preview state
func NewPreviewState() *PreviewState {
	return &PreviewState{}
}

// StartServer marks the beginning of server startup
func (ps *PreviewState) StartServer() {
	ps.Starting = true
	ps.LastError = nil
}

// CompleteStart marks a successful startup
func (ps *PreviewState) CompleteStart(url, fullscreenURL string) {
	ps.Starting = false
	ps.Ready = true
	ps.URL = url
	ps.FullscreenURL = fullscreenURL
	ps.LastError = nil
}

// FailStart marks a failed startup; the next sync retries
func (ps *PreviewState) FailStart(err error) {
	ps.Starting = false
	ps.Ready = false
	ps.LastError = err
}

// NeedsStart reports whether a startup should be kicked off
func (ps *PreviewState) NeedsStart() bool {
	return !ps.Ready && !ps.Starting && ps.LastError == nil
}

// IsStarting returns whether startup is in progress
func (ps *PreviewState) IsStarting() bool {
	return ps.Starting
}
