// Package errors provides standardized error handling for the semgraph
// engine. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across the engine and its
// boundary adapter.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes.
type ErrorClass int

const (
	// ErrorParse represents malformed Turtle input at load time. Always
	// recoverable by the caller: retry with corrected text.
	ErrorParse ErrorClass = iota
	// ErrorSerialization represents an internal record that could not be
	// converted to the boundary shape. Indicates an engine defect, not bad
	// input.
	ErrorSerialization
	// ErrorInternal represents any other engine-side failure.
	ErrorInternal
)

// String returns the string representation of ErrorClass.
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorParse:
		return "parse"
	case ErrorSerialization:
		return "serialization"
	case ErrorInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Turtle parsing errors
	ErrParsingFailed       = errors.New("parsing failed")
	ErrUnknownPrefix       = errors.New("unknown prefix")
	ErrUnterminatedLiteral = errors.New("unterminated string literal")
	ErrMalformedIRI        = errors.New("malformed IRI")
	ErrUnexpectedEOF       = errors.New("unexpected end of input")

	// Boundary errors
	ErrSerializationFailed = errors.New("serialization failed")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification.
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface.
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error.
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsParse checks if an error is a Turtle parse failure.
func IsParse(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorParse
	}

	return errors.Is(err, ErrParsingFailed) ||
		errors.Is(err, ErrUnknownPrefix) ||
		errors.Is(err, ErrUnterminatedLiteral) ||
		errors.Is(err, ErrMalformedIRI) ||
		errors.Is(err, ErrUnexpectedEOF)
}

// IsSerialization checks if an error is a boundary serialization failure.
func IsSerialization(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorSerialization
	}

	return errors.Is(err, ErrSerializationFailed)
}

// Classify returns the error class for an error.
func Classify(err error) ErrorClass {
	if IsParse(err) {
		return ErrorParse
	}
	if IsSerialization(err) {
		return ErrorSerialization
	}
	return ErrorInternal
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapParse(), WrapSerialization(), or
// WrapInternal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapParse wraps an error as a parse failure with context.
func WrapParse(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorParse, wrappedErr, component, method, wrappedErr.Error())
}

// WrapSerialization wraps an error as a serialization failure with context.
func WrapSerialization(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorSerialization, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInternal wraps an error as an internal failure with context.
func WrapInternal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInternal, wrappedErr, component, method, wrappedErr.Error())
}
