package studio

import (
	"github.com/gencomp/gencomp-cli/pkg/models"
)

// Tab is the active output tab
type Tab int

const (
	TabSource Tab = iota
	TabPreview
)

func (t Tab) String() string {
	if t == TabPreview {
		return "Preview"
	}
	return "Source"
}

// Level is the severity of a notification
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// Notification is a transient, user-visible message
type Notification struct {
	Seq     uint64 // increases with every notification
	Level   Level
	Kind    models.ErrorKind // only meaningful for warnings and errors
	Message string
}

// ViewState is everything a presentation layer needs to draw the studio
type ViewState struct {
	Prompt         string
	Framework      models.Framework
	Loading        bool
	Document       string
	OutputVisible  bool
	ActiveTab      Tab
	FullscreenOpen bool
	PreviewEpoch   uint64

	// Notification is the most recent notification, nil before the first one
	Notification *Notification
}

func (s ViewState) clone() ViewState {
	if s.Notification != nil {
		n := *s.Notification
		s.Notification = &n
	}
	return s
}
