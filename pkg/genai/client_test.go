package genai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

// fakeService records calls and returns a canned reply or error
type fakeService struct {
	mu    sync.Mutex
	calls []Call
	reply string
	err   error
}

func (f *fakeService) GenerateText(_ context.Context, call Call) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.reply, f.err
}

func (f *fakeService) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestGenerateSuccess(t *testing.T) {
	svc := &fakeService{reply: "Sure!\n```html\n<div class=\"card\">...</div>\n```\n"}
	c := NewClient(WithService(svc), WithModel("gemini-test"))

	res := c.Generate(context.Background(),
		models.GenerationRequest{Description: "a pricing card", Framework: models.FrameworkHTMLTailwind},
		Config{APIKey: "key"})

	require.True(t, res.OK(), "expected success, got %v", res.Err())
	assert.Equal(t, `<div class="card">...</div>`, res.Document())
	require.Equal(t, 1, svc.callCount())
	assert.Equal(t, "gemini-test", svc.calls[0].Model)
	assert.Equal(t, "key", svc.calls[0].APIKey)
	assert.Contains(t, svc.calls[0].Prompt, "a pricing card")
	assert.Contains(t, svc.calls[0].Prompt, "html-tailwind")
}

func TestGenerateGuardsMakeNoCall(t *testing.T) {
	tests := []struct {
		name     string
		req      models.GenerationRequest
		cfg      Config
		expected models.ErrorKind
	}{
		{"missing key", models.GenerationRequest{Description: "navbar", Framework: models.FrameworkHTMLCSS}, Config{}, models.ErrConfig},
		{"blank key", models.GenerationRequest{Description: "navbar", Framework: models.FrameworkHTMLCSS}, Config{APIKey: "  "}, models.ErrConfig},
		{"empty description", models.GenerationRequest{Description: "   ", Framework: models.FrameworkHTMLCSS}, Config{APIKey: "k"}, models.ErrValidation},
		{"bad framework", models.GenerationRequest{Description: "navbar", Framework: "svelte"}, Config{APIKey: "k"}, models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{reply: "```html\n<p></p>\n```"}
			res := NewClient(WithService(svc)).Generate(context.Background(), tt.req, tt.cfg)

			assert.False(t, res.OK())
			assert.Equal(t, tt.expected, res.Kind())
			assert.Equal(t, 0, svc.callCount(), "no network call should be made")
		})
	}
}

func TestGenerateClassifiesFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected models.ErrorKind
	}{
		{"invalid key", &ServiceError{StatusCode: 400, Reason: "API_KEY_INVALID"}, models.ErrInvalidCredentials},
		{"quota", &ServiceError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED"}, models.ErrQuotaExceeded},
		{"blocked", &ServiceError{Reason: "SAFETY"}, models.ErrContentBlocked},
		{"other", errors.New("dial tcp: i/o timeout"), models.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			res := NewClient(WithService(svc)).Generate(context.Background(),
				models.GenerationRequest{Description: "hero", Framework: models.FrameworkHTMLCSS}, Config{APIKey: "k"})

			assert.Equal(t, tt.expected, res.Kind())
			assert.Equal(t, 1, svc.callCount(), "failures must not be retried")
			assert.True(t, errors.Is(res.Err(), tt.err), "underlying error should be preserved")
		})
	}
}

func TestGenerateEmptyResult(t *testing.T) {
	for _, reply := range []string{"", "   ", "```html\n\n```"} {
		svc := &fakeService{reply: reply}
		res := NewClient(WithService(svc)).Generate(context.Background(),
			models.GenerationRequest{Description: "hero", Framework: models.FrameworkHTMLCSS}, Config{APIKey: "k"})
		assert.Equal(t, models.ErrEmptyResult, res.Kind(), "reply %q", reply)
	}
}

func TestGenerateUsesCustomClassifier(t *testing.T) {
	svc := &fakeService{err: errors.New("anything")}
	c := NewClient(WithService(svc), WithClassifier(func(error) models.ErrorKind { return models.ErrQuotaExceeded }))

	res := c.Generate(context.Background(), models.GenerationRequest{Description: "x", Framework: models.FrameworkHTMLCSS}, Config{APIKey: "k"})
	assert.Equal(t, models.ErrQuotaExceeded, res.Kind())
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(models.GenerationRequest{Description: "  a login form  ", Framework: models.FrameworkHTMLBootstrap})
	assert.Contains(t, p, "generate a UI component for: a login form\n")
	assert.Contains(t, p, "Framework to use: html-bootstrap")
	assert.True(t, strings.Contains(p, "fenced code block"))
}
