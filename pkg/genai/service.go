package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	googleai "google.golang.org/genai"
)

const (
	// DefaultAPIVersion is the Gemini API surface generateContent is called on
	DefaultAPIVersion = "v1beta"

	// DefaultTimeout bounds a single generation call
	DefaultTimeout = 120 * time.Second
)

// Call is one request to the text-generation service
type Call struct {
	APIKey string
	Model  string
	Prompt string
}

// TextService is the external text-generation service
type TextService interface {
	GenerateText(ctx context.Context, call Call) (string, error)
}

// ServiceError is a non-success reply from the service, reduced to the
// vendor's status and reason tokens.
type ServiceError struct {
	StatusCode int    // HTTP status code (0 for reply-level blocks)
	Status     string // e.g. "INVALID_ARGUMENT", "RESOURCE_EXHAUSTED"
	Reason     string // e.g. "API_KEY_INVALID", "SAFETY"
	Message    string
}

func (e *ServiceError) Error() string {
	var parts []string
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}
	if e.Status != "" {
		parts = append(parts, e.Status)
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	return "gemini: " + strings.Join(parts, ": ")
}

// GeminiOption configures a GeminiService
type GeminiOption func(*GeminiService)

// WithBaseURL overrides the API base URL (useful for testing)
func WithBaseURL(url string) GeminiOption {
	return func(s *GeminiService) {
		if url != "" {
			s.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client handed to the SDK. The client is used
// as is and never modified.
func WithHTTPClient(c *http.Client) GeminiOption {
	return func(s *GeminiService) {
		s.httpClient = c
	}
}

// WithTimeout bounds each GenerateText call
func WithTimeout(d time.Duration) GeminiOption {
	return func(s *GeminiService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// GeminiService implements TextService on the Gemini SDK.
// The API key arrives with each Call and is never stored on the service.
type GeminiService struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewGeminiService creates a Gemini text service
func NewGeminiService(opts ...GeminiOption) *GeminiService {
	s := &GeminiService{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// blockedFinishReasons are candidate finish reasons that mean the reply was filtered
var blockedFinishReasons = map[googleai.FinishReason]bool{
	"SAFETY":             true,
	"BLOCKLIST":          true,
	"PROHIBITED_CONTENT": true,
	"SPII":               true,
}

func (s *GeminiService) newSDKClient(ctx context.Context, apiKey string) (*googleai.Client, error) {
	cfg := &googleai.ClientConfig{
		APIKey:     apiKey,
		Backend:    googleai.BackendGeminiAPI,
		HTTPClient: s.httpClient,
		HTTPOptions: googleai.HTTPOptions{
			BaseURL:    s.baseURL,
			APIVersion: DefaultAPIVersion,
		},
	}
	return googleai.NewClient(ctx, cfg)
}

// GenerateText sends the prompt to generateContent and returns the reply text
func (s *GeminiService) GenerateText(ctx context.Context, call Call) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	client, err := s.newSDKClient(ctx, call.APIKey)
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, call.Model, googleai.Text(call.Prompt), nil)
	if err != nil {
		return "", serviceErrorFrom(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", &ServiceError{Reason: "SAFETY", Message: "prompt blocked: " + string(resp.PromptFeedback.BlockReason)}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", nil
	}

	cand := resp.Candidates[0]
	if blockedFinishReasons[cand.FinishReason] {
		return "", &ServiceError{Reason: "SAFETY", Message: "reply blocked: " + string(cand.FinishReason)}
	}
	if cand.Content == nil {
		return "", nil
	}

	var text strings.Builder
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// serviceErrorFrom maps an SDK API error onto ServiceError. Transport and
// context errors are wrapped unchanged.
func serviceErrorFrom(err error) error {
	var apiErr googleai.APIError
	if !errors.As(err, &apiErr) {
		var ptr *googleai.APIError
		if !errors.As(err, &ptr) || ptr == nil {
			return fmt.Errorf("gemini: generate content: %w", err)
		}
		apiErr = *ptr
	}

	se := &ServiceError{
		StatusCode: apiErr.Code,
		Status:     apiErr.Status,
		Message:    apiErr.Message,
	}
	for _, d := range apiErr.Details {
		if reason, ok := d["reason"].(string); ok && reason != "" {
			se.Reason = reason
			break
		}
	}
	return se
}
