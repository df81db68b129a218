// Package apierrors defines the error taxonomy shared by the session core.
// Every failure that can reach the UI carries a displayable message; raw
// transport or storage errors stay wrapped underneath.
package apierrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindNetwork covers unreachable hosts and timeouts.
	KindNetwork Kind = iota + 1
	// KindValidation covers malformed input caught client-side.
	KindValidation
	// KindServerRejection covers 4xx responses carrying a server message.
	KindServerRejection
	// KindStorage covers token store read/write failures.
	KindStorage
	// KindInvariant marks a would-be inconsistent state. It is a programming
	// error and must never surface to a user.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindServerRejection:
		return "server_rejection"
	case KindStorage:
		return "storage"
	case KindInvariant:
		return "invariant"
	default:
		return "unknown"
	}
}

// Error is the single error type crossing the session core's boundaries.
// Message is always safe to display.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error without an underlying cause. An empty message falls
// back to the operation's default string.
func New(kind Kind, op, message string) *Error {
	if message == "" {
		message = Fallback(op)
	}
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap creates an error around an underlying cause.
func Wrap(kind Kind, op, message string, err error) *Error {
	if message == "" {
		message = Fallback(op)
	}
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or zero when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// DisplayMessage returns the user-facing message for err. Errors from
// outside the taxonomy get the generic fallback so a raw technical string
// never reaches the UI.
func DisplayMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return genericFallback
}
