package models

import (
	"strings"
)

// GenerationRequest is what the user asked for
type GenerationRequest struct {
	Description string    `json:"description" yaml:"description"`
	Framework   Framework `json:"framework" yaml:"framework"`
}

// Validate checks the request before it is dispatched
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return NewValidationError("description is empty")
	}
	if !r.Framework.Valid() {
		_, err := ParseFramework(string(r.Framework))
		return err
	}
	return nil
}

// GenerationResult is either a document or a classified failure, never both
type GenerationResult struct {
	document string
	err      *Error
}

// Success wraps a generated document
func Success(document string) GenerationResult {
	return GenerationResult{document: document}
}

// Failure wraps a classified error
func Failure(kind ErrorKind, detail string) GenerationResult {
	return GenerationResult{err: &Error{Kind: kind, Message: detail}}
}

// FailureFrom wraps an existing error, keeping its kind when it has one
func FailureFrom(err error) GenerationResult {
	if e, ok := err.(*Error); ok {
		return GenerationResult{err: e}
	}
	return GenerationResult{err: NewError(KindOf(err), err.Error(), err)}
}

// OK reports whether the result is a success
func (r GenerationResult) OK() bool {
	return r.err == nil
}

// Document returns the generated document; empty on failure
func (r GenerationResult) Document() string {
	return r.document
}

// Err returns the failure; nil on success
func (r GenerationResult) Err() *Error {
	return r.err
}

// Kind returns the failure kind; only meaningful when !OK()
func (r GenerationResult) Kind() ErrorKind {
	if r.err == nil {
		return ErrUnknown
	}
	return r.err.Kind
}
