package tinyargs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three ways a parse can fail.
// Match against them with [errors.Is].
var (
	ErrUnrecognizedArgument    = errors.New("unrecognized argument")
	ErrMissingValue            = errors.New("missing value for argument")
	ErrMissingRequiredArgument = errors.New("missing required argument")
)

// ParseError is the error type returned from [Parser.Parse]. It carries which
// failure occurred and the token or option name that triggered it.
type ParseError struct {
	kind  error
	token string
}

func newParseError(kind error, token string) *ParseError {
	return &ParseError{kind: kind, token: token}
}

// Token returns the argument token (or, for a missing required option, the
// option name) the failure refers to.
func (e *ParseError) Token() string {
	return e.token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %s", e.kind.Error(), e.token)
}

func (e *ParseError) Unwrap() error {
	return e.kind
}

// diagnostic renders the line printed to the [Printer] when the failure is
// detected.
func (e *ParseError) diagnostic() string {
	switch e.kind {
	case ErrUnrecognizedArgument:
		return fmt.Sprintf("Error: Unrecognized argument %s", e.token)
	case ErrMissingValue:
		return fmt.Sprintf("Error: Missing value for argument %s", e.token)
	case ErrMissingRequiredArgument:
		return fmt.Sprintf("Error: Missing required argument %s", e.token)
	}
	return "Error: " + e.Error()
}
