// Package simerr defines the error taxonomy the simulator distinguishes:
// configuration mistakes caught at the call site, operation misuse, callback
// failures that must be stashed and re-raised, and unrecoverable faults.
package simerr

import "fmt"

// Kind classifies an error into one of the four taxonomy buckets.
type Kind int

const (
	// KindInvalidConfiguration covers tick rate out of range, a callback
	// installed for an unsupported mode, an unknown hitbox type, or a
	// malformed custom pad list. Surfaced at the offending call; no state
	// change occurs.
	KindInvalidConfiguration Kind = iota
	// KindInvalidOperation covers a duplicate arena passed to MultiStep, or
	// removing a car that does not belong to the arena.
	KindInvalidOperation
	// KindCallbackFailure covers a callback panic or error return; the
	// arena is stopped and the failure is stored for the next Step call.
	KindCallbackFailure
	// KindUnrecoverable covers faults in the underlying rigid-body engine
	// or out-of-memory conditions. The affected arena's state is undefined
	// afterward.
	KindUnrecoverable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid_configuration"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindCallbackFailure:
		return "callback_failure"
	case KindUnrecoverable:
		return "unrecoverable"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with its taxonomy Kind.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target shares this error's Kind, supporting
// errors.Is(err, simerr.InvalidConfiguration) style checks against the
// sentinel values below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// Sentinel kind markers for errors.Is comparisons. Each carries no cause and
// exists only to be matched against.
var (
	InvalidConfiguration = &Error{Kind: KindInvalidConfiguration}
	InvalidOperation     = &Error{Kind: KindInvalidOperation}
	CallbackFailure      = &Error{Kind: KindCallbackFailure}
	Unrecoverable        = &Error{Kind: KindUnrecoverable}
)

// Configurationf builds an InvalidConfiguration error with a formatted cause.
func Configurationf(format string, args ...any) error {
	return &Error{Kind: KindInvalidConfiguration, Cause: fmt.Errorf(format, args...)}
}

// Operationf builds an InvalidOperation error with a formatted cause.
func Operationf(format string, args ...any) error {
	return &Error{Kind: KindInvalidOperation, Cause: fmt.Errorf(format, args...)}
}

// Callback wraps a callback's panic value or returned error, tagging the
// tick it occurred on so the host can report it.
func Callback(tick uint64, cause error) error {
	return &Error{Kind: KindCallbackFailure, Cause: fmt.Errorf("tick %d: %w", tick, cause)}
}

// Unrecoverablef builds an Unrecoverable error with a formatted cause.
func Unrecoverablef(format string, args ...any) error {
	return &Error{Kind: KindUnrecoverable, Cause: fmt.Errorf(format, args...)}
}
