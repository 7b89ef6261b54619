package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	switch GetOS() {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches reports whether key is any variant of the shortcut. Accepting every
// variant lets ctrl+g and alt+g both work regardless of which one help shows.
func (s ShortcutKey) Matches(key string) bool {
	if key == "" {
		return false
	}
	for _, k := range []string{s.Mac, s.Linux, s.Windows, s.Default} {
		if k == key {
			return true
		}
	}
	return false
}

// GetWithWarning returns the shortcut and a warning if there are known issues
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	shortcut = s.Get()

	switch GetOS() {
	case OSLinux:
		switch shortcut {
		case "^s", "ctrl+s":
			warning = "(may need: stty -ixon)"
		case "^d", "ctrl+d":
			warning = "(caution: EOF signal)"
		case "^z", "ctrl+z":
			warning = "(caution: suspends process)"
		}
	case OSWindows:
		switch shortcut {
		case "shift+tab", "backtab":
			warning = "(terminal dependent)"
		}
	}

	return shortcut, warning
}

// Shortcuts contains all keyboard shortcuts with OS-specific variations
var Shortcuts = struct {
	// Generation
	Generate      ShortcutKey
	NextFramework ShortcutKey
	PrevFramework ShortcutKey

	// Navigation
	SwitchPane    ShortcutKey
	ReverseSwitch ShortcutKey
	SourceTab     ShortcutKey
	PreviewTab    ShortcutKey

	// Output operations
	Copy         ShortcutKey
	Download     ShortcutKey
	DownloadAs   ShortcutKey
	Fullscreen   ShortcutKey
	Refresh      ShortcutKey
	ExternalEdit ShortcutKey
	OpenBrowser  ShortcutKey

	// System
	Quit    ShortcutKey
	Cancel  ShortcutKey
	Confirm ShortcutKey
}{
	Generate: ShortcutKey{
		Mac:     "ctrl+g",
		Linux:   "alt+g", // Some terminal multiplexers bind ctrl+g
		Windows: "alt+g", // Consistent with Linux
		Default: "ctrl+g",
	},
	NextFramework: ShortcutKey{
		Default: "]",
	},
	PrevFramework: ShortcutKey{
		Default: "[",
	},

	SwitchPane: ShortcutKey{
		Default: "tab",
	},
	ReverseSwitch: ShortcutKey{
		Mac:     "shift+tab",
		Linux:   "shift+tab",
		Windows: "backtab", // Windows terminal compatibility
		Default: "shift+tab",
	},
	SourceTab: ShortcutKey{
		Default: "1",
	},
	PreviewTab: ShortcutKey{
		Default: "2",
	},

	// Output operations - single keys, only active in the output pane
	Copy: ShortcutKey{
		Default: "y",
	},
	Download: ShortcutKey{
		Default: "d",
	},
	DownloadAs: ShortcutKey{
		Default: "D",
	},
	Fullscreen: ShortcutKey{
		Default: "f",
	},
	Refresh: ShortcutKey{
		Default: "r",
	},
	ExternalEdit: ShortcutKey{
		Default: "e",
	},
	OpenBrowser: ShortcutKey{
		Default: "o",
	},

	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
	Confirm: ShortcutKey{
		Default: "enter",
	},
}

// GetShortcutHelp returns formatted help text for a shortcut
func GetShortcutHelp(name string, key ShortcutKey) string {
	_, warning := key.GetWithWarning()
	if warning != "" {
		return FormatShortcutForHelp(key) + " " + name + " " + warning
	}
	return FormatShortcutForHelp(key) + " " + name
}

// GetOSName returns a friendly name for the current OS
func GetOSName() string {
	switch GetOS() {
	case OSMac:
		return "macOS"
	case OSLinux:
		return "Linux"
	case OSWindows:
		return "Windows"
	default:
		return "Unknown"
	}
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	shortcut := key.Get()
	// M- prefix for Alt on Linux/Windows (common terminal convention)
	if GetOS() == OSLinux || GetOS() == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	shortcut = strings.ReplaceAll(shortcut, "cmd+", "⌘")

	return shortcut
}
