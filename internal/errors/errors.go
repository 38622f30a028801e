// Package errors holds the typed errors shared by the picnotes packages.
//
// Each typed error carries a Kind. The Is* helpers look through wrapped
// errors, so callers may add context with Wrap without losing the kind.
package errors

import (
	e "errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// NotFound is reported for unknown handles and missing items.
	NotFound Kind = iota + 1
	// Validation is reported for malformed input such as script events.
	Validation
	// Config is reported for components set up with unusable parameters.
	// Configuration errors are not recoverable.
	Config
)

var kindPrefixes = map[Kind]string{
	NotFound:   "not found: ",
	Validation: "",
	Config:     "configuration error: ",
}

// Error is an error of a known Kind.
type Error struct {
	Kind Kind
	msg  string
}

func (err *Error) Error() string {
	return kindPrefixes[err.Kind] + err.msg
}

func newKind(k Kind, msg string, v ...interface{}) error {
	return &Error{Kind: k, msg: fmt.Sprintf(msg, v...)}
}

// New returns a plain error with the given text.
func New(msg string) error {
	return e.New(msg)
}

// Wrap adds context to err. The message can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(msg, v...), err)
}

// KindOf returns the kind of the first typed error in err's chain.
func KindOf(err error) (Kind, bool) {
	var typed *Error
	if !e.As(err, &typed) {
		return 0, false
	}
	return typed.Kind, true
}

func is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// NewNotFound creates a "not found" error.
func NewNotFound(msg string, v ...interface{}) error {
	return newKind(NotFound, msg, v...)
}

// IsNotFound checks if the given error is a "not found" error.
func IsNotFound(err error) bool {
	return is(err, NotFound)
}

// NewValidationError creates an error for invalid input data.
func NewValidationError(msg string, v ...interface{}) error {
	return newKind(Validation, msg, v...)
}

// IsValidation checks if the given error was caused by invalid input data.
func IsValidation(err error) bool {
	return is(err, Validation)
}

// NewConfigError creates an error for a component that was set up with
// unusable parameters.
func NewConfigError(msg string, v ...interface{}) error {
	return newKind(Config, msg, v...)
}

// IsConfig checks if the given error is a configuration error.
func IsConfig(err error) bool {
	return is(err, Config)
}
