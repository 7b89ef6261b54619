// Package genai turns a component description into a markup document by
// calling an external text-generation service.
package genai

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gencomp/gencomp-cli/internal/logging"
	"github.com/gencomp/gencomp-cli/pkg/extract"
	"github.com/gencomp/gencomp-cli/pkg/models"
)

// Config is supplied by the caller on every Generate call
type Config struct {
	APIKey string
}

// Option configures a Client
type Option func(*Client)

// WithService replaces the text service (tests use a fake)
func WithService(svc TextService) Option {
	return func(c *Client) {
		c.service = svc
	}
}

// WithClassifier plugs in a custom error classifier
func WithClassifier(cl Classifier) Option {
	return func(c *Client) {
		if cl != nil {
			c.classify = cl
		}
	}
}

// WithModel sets the model identifier sent to the service
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// Client is the generation client. It never retries and keeps no cache.
type Client struct {
	service  TextService
	classify Classifier
	model    string
	log      *zap.Logger
}

// NewClient creates a client backed by Gemini unless WithService says otherwise
func NewClient(opts ...Option) *Client {
	c := &Client{
		classify: DefaultClassifier,
		model:    models.DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.service == nil {
		c.service = NewGeminiService()
	}
	if c.log == nil {
		c.log = logging.Named("genai")
	}
	return c
}

// Model returns the model identifier in use
func (c *Client) Model() string {
	return c.model
}

// Generate validates the request, calls the service once and extracts the document
func (c *Client) Generate(ctx context.Context, req models.GenerationRequest, cfg Config) models.GenerationResult {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return models.Failure(models.ErrConfig, "API key is not configured")
	}
	if err := req.Validate(); err != nil {
		return models.FailureFrom(err)
	}

	c.log.Debug("dispatching generation",
		zap.String("model", c.model),
		zap.String("framework", string(req.Framework)),
		zap.Int("description_len", len(req.Description)),
	)

	start := time.Now()
	reply, err := c.service.GenerateText(ctx, Call{
		APIKey: cfg.APIKey,
		Model:  c.model,
		Prompt: BuildPrompt(req),
	})
	latency := time.Since(start)

	if err != nil {
		kind := c.classify(err)
		c.log.Warn("generation failed",
			zap.Stringer("kind", kind),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return models.FailureFrom(models.NewError(kind, err.Error(), err))
	}

	doc := extract.Extract(reply)
	c.log.Info("generation completed",
		zap.Duration("latency", latency),
		zap.Int("reply_len", len(reply)),
		zap.Int("document_len", len(doc)),
		zap.Bool("fenced", extract.HasFence(reply)),
	)

	if doc == "" {
		return models.Failure(models.ErrEmptyResult, "reply contained no usable document")
	}
	return models.Success(doc)
}
