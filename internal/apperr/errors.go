// Package apperr defines the error taxonomy shared by the dashboard services.
//
// Every service operation reports failures as *Error carrying one of the
// Kind values below. Callers branch on KindOf(err) instead of matching
// message strings:
//
//	switch apperr.KindOf(err) {
//	case apperr.KindValidation, apperr.KindConflict, apperr.KindAuth:
//	    // show err.Error() to the user
//	case apperr.KindStorage:
//	    // generic failure, cause available through errors.Unwrap
//	}
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks malformed, missing or weak input.
	KindValidation
	// KindConflict marks a duplicate account.
	KindConflict
	// KindAuth marks bad credentials. Its message is deliberately generic.
	KindAuth
	// KindStorage marks an unreachable store or a failed write.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// StorageMessage is what users see for any storage failure.
const StorageMessage = "Storage is unavailable, please try again later"

// Error is a classified, user-presentable failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a KindValidation error with a human-readable reason.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Conflict returns a KindConflict error.
func Conflict(msg string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: cause}
}

// Auth returns a KindAuth error.
func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// Storage wraps a store failure. The message shown to users is always
// StorageMessage; op is kept in the wrapped cause for the logs.
func Storage(op string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: StorageMessage, Err: fmt.Errorf("%s: %w", op, cause)}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
