// Package analysis implements the prompt-construction and response
// extraction/validation pipeline that turns recorded experiences into a
// career analysis via the generative AI gateway.
package analysis

import (
	"fmt"
	"strings"
)

// ConfigError indicates missing server configuration, such as an absent
// gateway API key. Fatal for the request, not retried.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ValidationError indicates malformed or out-of-bounds input. The caller
// must correct the input; retrying unchanged cannot succeed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// QuotaExceededError indicates the AI gateway reported quota or rate
// exhaustion. Safe to retry after backoff.
type QuotaExceededError struct {
	Cause error
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("AI quota exceeded: %v", e.Cause)
}

func (e *QuotaExceededError) Unwrap() error {
	return e.Cause
}

// ExtractionError indicates the model output contained no recoverable JSON
// value. Retrying the whole round-trip is the caller's decision.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error: %s", e.Message)
}

// ParseError indicates recovered JSON failed to parse or validate. Snippet
// holds a bounded prefix of the raw model output for diagnostics.
type ParseError struct {
	Message string
	Snippet string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// snippetLimit bounds the amount of raw model output carried in ParseError
// for logging.
const snippetLimit = 500

// snippet returns a rune-safe bounded prefix of raw text.
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLimit {
		return text
	}
	return string(runes[:snippetLimit])
}

// ClassifyGatewayError wraps gateway failures that signal quota or rate
// exhaustion in a *QuotaExceededError; other errors pass through unchanged.
func ClassifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "quota") {
		return &QuotaExceededError{Cause: err}
	}
	return err
}
