package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories surfaced to the user
type ErrorKind int

const (
	// ErrUnknown is an unclassified service or runtime error
	ErrUnknown ErrorKind = iota
	// ErrValidation means the request was rejected before any call was made
	ErrValidation
	// ErrConfig means required configuration (the API key) is missing
	ErrConfig
	// ErrInvalidCredentials means the service rejected the API key
	ErrInvalidCredentials
	// ErrQuotaExceeded means the service refused the call for quota reasons
	ErrQuotaExceeded
	// ErrContentBlocked means the service's safety filters blocked the request
	ErrContentBlocked
	// ErrEmptyResult means the call succeeded but extraction produced nothing
	ErrEmptyResult
	// ErrClipboardUnavailable means the platform denied clipboard access
	ErrClipboardUnavailable
	// ErrEmptyDocument means an export was attempted before anything was generated
	ErrEmptyDocument
)

// String returns a short name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknown:
		return "Unknown"
	case ErrValidation:
		return "ValidationError"
	case ErrConfig:
		return "ConfigError"
	case ErrInvalidCredentials:
		return "InvalidCredentials"
	case ErrQuotaExceeded:
		return "QuotaExceeded"
	case ErrContentBlocked:
		return "ContentBlocked"
	case ErrEmptyResult:
		return "EmptyResult"
	case ErrClipboardUnavailable:
		return "ClipboardUnavailable"
	case ErrEmptyDocument:
		return "EmptyDocument"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// UserMessage returns the notification text shown for this kind of failure
func (k ErrorKind) UserMessage() string {
	switch k {
	case ErrValidation:
		return "Please describe your component first"
	case ErrConfig:
		return "Gemini API key is missing. Set GEMINI_API_KEY and try again."
	case ErrInvalidCredentials:
		return "Invalid API key. Please check your Gemini API key."
	case ErrQuotaExceeded:
		return "API quota exceeded. Please try again later."
	case ErrContentBlocked:
		return "Request blocked by safety filters. Please modify your prompt."
	case ErrEmptyResult:
		return "Failed to generate code. Please try again."
	case ErrClipboardUnavailable:
		return "Failed to copy"
	case ErrEmptyDocument:
		return "No code to export"
	default:
		return "Something went wrong while generating code. Please try again."
	}
}

// Error is a classified failure
type Error struct {
	Kind    ErrorKind // Category of error
	Message string    // Detail for logs and verbose output
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NewConfigError creates a missing-configuration error
func NewConfigError(message string) *Error {
	return &Error{Kind: ErrConfig, Message: message}
}

// NewEmptyDocumentError reports an export with nothing to export
func NewEmptyDocumentError(operation string) *Error {
	return &Error{Kind: ErrEmptyDocument, Message: fmt.Sprintf("nothing to %s", operation)}
}

// KindOf returns the ErrorKind carried by err, or ErrUnknown for foreign errors
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrUnknown
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsBlocking reports whether the kind stops an action before any call is made.
// These are shown as warnings rather than errors.
func (k ErrorKind) IsBlocking() bool {
	return k == ErrValidation || k == ErrConfig || k == ErrEmptyDocument
}
