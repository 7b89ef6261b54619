package genai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

func TestDefaultClassifier(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected models.ErrorKind
	}{
		{"nil", nil, models.ErrUnknown},
		{"api key reason", &ServiceError{StatusCode: 400, Status: "INVALID_ARGUMENT", Reason: "API_KEY_INVALID", Message: "API key not valid."}, models.ErrInvalidCredentials},
		{"api key prose only", errors.New("API key not valid. Please pass a valid API key."), models.ErrUnknown},
		{"quota exceeded token", errors.New("[429] QUOTA_EXCEEDED"), models.ErrQuotaExceeded},
		{"resource exhausted", &ServiceError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", Message: "You exceeded your current quota"}, models.ErrQuotaExceeded},
		{"quota prose only", errors.New("you hit a quota, rate limit applies"), models.ErrUnknown},
		{"safety", &ServiceError{Reason: "SAFETY", Message: "prompt blocked: SAFETY"}, models.ErrContentBlocked},
		{"blocked prose only", errors.New("request blocked by upstream proxy"), models.ErrUnknown},
		{"blocked prose in service message", &ServiceError{StatusCode: 403, Status: "FORBIDDEN_BY_PROXY", Message: "blocked"}, models.ErrUnknown},
		{"token inside a word", errors.New("UNSAFETY_NET"), models.ErrUnknown},
		{"deadline", fmt.Errorf("gemini: generate content: %w", context.DeadlineExceeded), models.ErrUnknown},
		{"unmatched", errors.New("connection reset by peer"), models.ErrUnknown},
		{"server error", &ServiceError{StatusCode: 500, Status: "INTERNAL", Message: "internal error"}, models.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultClassifier(tt.err); got != tt.expected {
				t.Errorf("DefaultClassifier(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestTokenClassifierCustomRules(t *testing.T) {
	cl := NewTokenClassifier([]ClassifierRule{
		{Kind: models.ErrQuotaExceeded, Tokens: []string{"SLOW_DOWN"}},
	})

	if got := cl(errors.New("upstream said SLOW_DOWN")); got != models.ErrQuotaExceeded {
		t.Errorf("expected QuotaExceeded, got %v", got)
	}
	if got := cl(errors.New("please slow down")); got != models.ErrUnknown {
		t.Errorf("prose should not match a token, got %v", got)
	}
	if got := cl(errors.New("API_KEY_INVALID")); got != models.ErrUnknown {
		t.Errorf("rules not listed should fall through to Unknown, got %v", got)
	}
}
