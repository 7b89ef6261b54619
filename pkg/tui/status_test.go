package tui

import (
	"testing"
	"time"

	"github.com/gencomp/gencomp-cli/pkg/studio"
)

func TestStatusManager_ShowFeedback(t *testing.T) {
	sm := NewStatusManager(time.Second)

	cmd := sm.ShowFeedback("✓", "Test message", StatusTypeSuccess)
	if cmd == nil {
		t.Error("ShowFeedback should return a command")
	}

	if sm.CurrentStatus == nil {
		t.Fatal("CurrentStatus should not be nil after ShowFeedback")
	}
	if sm.CurrentStatus.Message != "Test message" {
		t.Errorf("Expected message 'Test message', got '%s'", sm.CurrentStatus.Message)
	}
	if sm.CurrentStatus.Type != StatusTypeSuccess {
		t.Errorf("Expected type StatusTypeSuccess, got %v", sm.CurrentStatus.Type)
	}
}

func TestStatusManager_DefaultDuration(t *testing.T) {
	if d := NewStatusManager(0).DefaultDuration; d != 3*time.Second {
		t.Errorf("Expected 3s default, got %v", d)
	}
	if d := NewStatusManager(5 * time.Second).DefaultDuration; d != 5*time.Second {
		t.Errorf("Expected configured duration, got %v", d)
	}
}

func TestStatusManager_IsActive(t *testing.T) {
	sm := NewStatusManager(time.Second)

	if sm.IsActive() {
		t.Error("StatusManager should not be active initially")
	}

	sm.ShowFeedback("✓", "Test", StatusTypeSuccess)
	if !sm.IsActive() {
		t.Error("StatusManager should be active after ShowFeedback")
	}

	// Simulate expiration
	sm.CurrentStatus.ShowUntil = time.Now().Add(-1 * time.Second)
	if sm.IsActive() {
		t.Error("StatusManager should not be active after expiration")
	}
}

func TestStatusManager_GetStatus(t *testing.T) {
	sm := NewStatusManager(time.Second)

	if status, ok := sm.GetStatus(); ok || status != "" {
		t.Error("GetStatus should be empty when no status")
	}

	sm.SetPersistentMessage("GEMINI_API_KEY is not set", StatusTypeWarning)
	if status, _ := sm.GetStatus(); status != "⚠ GEMINI_API_KEY is not set" {
		t.Errorf("Expected persistent message, got '%s'", status)
	}

	sm.ShowFeedback("✓", "Test message", StatusTypeSuccess)
	status, ok := sm.GetStatus()
	if !ok || status != "✓ Test message" {
		t.Errorf("Expected status '✓ Test message', got '%s'", status)
	}
	if sm.ActiveType() != StatusTypeSuccess {
		t.Errorf("Expected active type success, got %v", sm.ActiveType())
	}

	sm.Clear()
	if status, _ := sm.GetStatus(); status != "⚠ GEMINI_API_KEY is not set" {
		t.Errorf("Expected persistent message after clear, got '%s'", status)
	}

	sm.ClearPersistentMessage()
	if _, ok := sm.GetStatus(); ok {
		t.Error("Expected no status after clearing both")
	}
}

func TestStatusManager_ShowNotification(t *testing.T) {
	tests := []struct {
		level    studio.Level
		expected StatusType
		icon     string
	}{
		{studio.LevelSuccess, StatusTypeSuccess, "✓"},
		{studio.LevelInfo, StatusTypeInfo, "ℹ"},
		{studio.LevelWarning, StatusTypeWarning, "⚠"},
		{studio.LevelError, StatusTypeError, "×"},
	}

	for _, tt := range tests {
		sm := NewStatusManager(time.Second)
		if cmd := sm.ShowNotification(studio.Notification{Level: tt.level, Message: "msg"}); cmd == nil {
			t.Errorf("ShowNotification(%v) should return a command", tt.level)
		}
		if sm.CurrentStatus.Type != tt.expected || sm.CurrentStatus.Icon != tt.icon {
			t.Errorf("level %v mapped to %v %q", tt.level, sm.CurrentStatus.Type, sm.CurrentStatus.Icon)
		}
	}
}
