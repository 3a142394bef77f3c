package game

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// KindUnknown is reported for errors that did not come from this package.
	KindUnknown Kind = "UNKNOWN"

	KindInvalidBound          Kind = "INVALID_BOUND"
	KindInvalidGuess          Kind = "INVALID_GUESS"
	KindOutOfRange            Kind = "OUT_OF_RANGE"
	KindGameAlreadyWon        Kind = "GAME_ALREADY_WON"
	KindRandomnessUnavailable Kind = "RANDOMNESS_UNAVAILABLE"
)

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidBound          = &Error{Kind: KindInvalidBound}
	ErrInvalidGuess          = &Error{Kind: KindInvalidGuess}
	ErrOutOfRange            = &Error{Kind: KindOutOfRange}
	ErrGameAlreadyWon        = &Error{Kind: KindGameAlreadyWon}
	ErrRandomnessUnavailable = &Error{Kind: KindRandomnessUnavailable}
)

// Error is the single error type returned by Game.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches by Kind, so callers can compare against the package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Retryable reports whether repeating the same call may succeed.
func (e *Error) Retryable() bool {
	return e.Kind == KindRandomnessUnavailable
}

// KindOf extracts the Kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind checks if err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRetryable reports whether err is a retryable *Error.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable()
}
