// Package errkind defines the tagged error taxonomy shared by every core
// package. Every fallible operation in the core returns an error that, when
// it originates inside this module, can be inspected with Is without string
// matching.
package errkind

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a core failure per the error-handling
// contract: callers branch on Kind, never on error text.
type Kind string

const (
	InvalidInput       Kind = "InvalidInput"
	InvalidChecksum    Kind = "InvalidChecksum"
	InvalidCurvePoint  Kind = "InvalidCurvePoint"
	InvalidSignature   Kind = "InvalidSignature"
	InvalidDerivation  Kind = "InvalidDerivation"
	AbiEncodeError     Kind = "AbiEncodeError"
	AbiDecodeError     Kind = "AbiDecodeError"
	InvalidPassword    Kind = "InvalidPassword"
	EntropyUnavailable Kind = "EntropyUnavailable"
)

// Error wraps an underlying cause with a Kind. Secret material must never be
// passed as msg or wrapped.
type Error struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

// New builds a Kind-tagged error with no further cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds a Kind-tagged error around an underlying cause.
func Wrap(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, err: cause}
}

// Is reports whether err (or anything it wraps) carries the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
