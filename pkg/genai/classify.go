package genai

import (
	"context"
	"errors"
	"strings"

	"github.com/gencomp/gencomp-cli/pkg/models"
)

// Classifier maps a service error onto an ErrorKind.
// The vendor's error vocabulary is not a stable contract, so anything a
// classifier does not recognise must come back as ErrUnknown.
type Classifier func(err error) models.ErrorKind

// ClassifierRule maps any of Tokens to Kind. Tokens are the vendor's
// upper-case status and reason codes, not message prose.
type ClassifierRule struct {
	Kind   models.ErrorKind
	Tokens []string
}

// DefaultRules are matched in order
var DefaultRules = []ClassifierRule{
	{
		Kind:   models.ErrInvalidCredentials,
		Tokens: []string{"API_KEY_INVALID", "API_KEY_SERVICE_BLOCKED", "PERMISSION_DENIED", "UNAUTHENTICATED"},
	},
	{
		Kind:   models.ErrQuotaExceeded,
		Tokens: []string{"QUOTA_EXCEEDED", "RESOURCE_EXHAUSTED", "RATE_LIMIT_EXCEEDED"},
	},
	{
		Kind:   models.ErrContentBlocked,
		Tokens: []string{"SAFETY", "PROHIBITED_CONTENT", "BLOCKLIST", "SPII"},
	},
}

// NewTokenClassifier builds a Classifier from token rules. A *ServiceError
// is matched on its Status and Reason fields; any other error is matched on
// whole tokens in its text.
func NewTokenClassifier(rules []ClassifierRule) Classifier {
	return func(err error) models.ErrorKind {
		if err == nil {
			return models.ErrUnknown
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return models.ErrUnknown
		}

		var found []string
		var se *ServiceError
		if errors.As(err, &se) {
			found = []string{se.Status, se.Reason}
		} else {
			found = tokens(err.Error())
		}

		for _, rule := range rules {
			for _, want := range rule.Tokens {
				for _, got := range found {
					if got != "" && got == want {
						return rule.Kind
					}
				}
			}
		}
		return models.ErrUnknown
	}
}

// tokens splits text on anything that cannot appear in an upper-case code
func tokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_'
	})
}

// DefaultClassifier uses DefaultRules
var DefaultClassifier = NewTokenClassifier(DefaultRules)
