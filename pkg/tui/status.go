package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gencomp/gencomp-cli/pkg/studio"
)

// StatusFeedback represents a temporary status message
type StatusFeedback struct {
	Message   string
	Icon      string
	ShowUntil time.Time
	Type      StatusType
}

// StatusType represents the type of status message
type StatusType int

const (
	StatusTypeSuccess StatusType = iota
	StatusTypeWarning
	StatusTypeError
	StatusTypeInfo
)

// StatusManager manages temporary status messages
type StatusManager struct {
	CurrentStatus     *StatusFeedback
	DefaultDuration   time.Duration
	PersistentMessage string
	PersistentType    StatusType
}

// NewStatusManager creates a new status manager
func NewStatusManager(duration time.Duration) *StatusManager {
	if duration <= 0 {
		duration = 3 * time.Second
	}
	return &StatusManager{
		DefaultDuration: duration,
	}
}

// ShowFeedback displays a status message with an icon
func (sm *StatusManager) ShowFeedback(icon, message string, statusType StatusType) tea.Cmd {
	sm.CurrentStatus = &StatusFeedback{
		Message:   message,
		Icon:      icon,
		ShowUntil: time.Now().Add(sm.DefaultDuration),
		Type:      statusType,
	}

	// Return a command that will clear the status after duration
	return tea.Tick(sm.DefaultDuration, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ShowSuccess shows a success message
func (sm *StatusManager) ShowSuccess(message string) tea.Cmd {
	return sm.ShowFeedback("✓", message, StatusTypeSuccess)
}

// ShowWarning shows a warning message
func (sm *StatusManager) ShowWarning(message string) tea.Cmd {
	return sm.ShowFeedback("⚠", message, StatusTypeWarning)
}

// ShowError shows an error message
func (sm *StatusManager) ShowError(message string) tea.Cmd {
	return sm.ShowFeedback("×", message, StatusTypeError)
}

// ShowInfo shows an info message
func (sm *StatusManager) ShowInfo(message string) tea.Cmd {
	return sm.ShowFeedback("ℹ", message, StatusTypeInfo)
}

// ShowNotification maps a session notification onto the status bar
func (sm *StatusManager) ShowNotification(n studio.Notification) tea.Cmd {
	switch n.Level {
	case studio.LevelSuccess:
		return sm.ShowSuccess(n.Message)
	case studio.LevelWarning:
		return sm.ShowWarning(n.Message)
	case studio.LevelError:
		return sm.ShowError(n.Message)
	default:
		return sm.ShowInfo(n.Message)
	}
}

// SetPersistentMessage sets a message that persists until cleared
func (sm *StatusManager) SetPersistentMessage(message string, statusType StatusType) {
	sm.PersistentMessage = message
	sm.PersistentType = statusType
}

// ClearPersistentMessage clears the persistent message
func (sm *StatusManager) ClearPersistentMessage() {
	sm.PersistentMessage = ""
}

// Clear removes the current status
func (sm *StatusManager) Clear() {
	sm.CurrentStatus = nil
}

// IsActive checks if a status is currently showing
func (sm *StatusManager) IsActive() bool {
	if sm.CurrentStatus == nil {
		return false
	}

	if time.Now().After(sm.CurrentStatus.ShowUntil) {
		sm.CurrentStatus = nil
		return false
	}

	return true
}

// ActiveType returns the type of whatever GetStatus would show
func (sm *StatusManager) ActiveType() StatusType {
	if sm.IsActive() {
		return sm.CurrentStatus.Type
	}
	return sm.PersistentType
}

// GetStatus returns the current status message if active
func (sm *StatusManager) GetStatus() (string, bool) {
	// Temporary status wins over the persistent one
	if sm.IsActive() {
		return fmt.Sprintf("%s %s", sm.CurrentStatus.Icon, sm.CurrentStatus.Message), true
	}

	if sm.PersistentMessage != "" {
		return fmt.Sprintf("%s %s", statusIcon(sm.PersistentType), sm.PersistentMessage), true
	}

	return "", false
}

func statusIcon(t StatusType) string {
	switch t {
	case StatusTypeSuccess:
		return "✓"
	case StatusTypeWarning:
		return "⚠"
	case StatusTypeError:
		return "×"
	default:
		return "ℹ"
	}
}

// ClearStatusMsg is sent to clear the status
type ClearStatusMsg struct{}

// StatusMsg carries a one-off informational message from a command
type StatusMsg string
