// Package results provides the uniform success/failure envelope returned by
// command handlers. Expected, semantic failures (a missing entity, an invalid
// state transition, a validation error) travel inside the envelope as a list of
// human-readable messages instead of being raised; unexpected failures stay
// regular Go errors and propagate alongside the envelope.
package results

// Result is a generic success/failure envelope.
//
// Invariants:
//   - Success(v): IsSuccess is true, Value returns v, Errors is empty
//   - Failure(errs...): IsSuccess is false, Value is absent, Errors is non-empty
//
// The zero value of Result is a failure with no messages and must not be
// returned by handlers; use the constructors.
type Result[T any] struct {
	value     T
	hasValue  bool
	errorList []string
}

// Success creates a successful result carrying the given value.
func Success[T any](value T) Result[T] {
	return Result[T]{
		value:    value,
		hasValue: true,
	}
}

// Failure creates a failed result carrying one or more human-readable error
// messages. Empty messages are dropped; if none remain, a generic message is
// substituted so a failure is never silent.
func Failure[T any](messages ...string) Result[T] {
	errorList := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			errorList = append(errorList, m)
		}
	}
	if len(errorList) == 0 {
		errorList = append(errorList, "operation failed")
	}
	return Result[T]{errorList: errorList}
}

// FailureFromError creates a failed result from a Go error, flattening it to
// its message. This is the single point where external error sources are
// converted into the envelope's string representation.
func FailureFromError[T any](err error) Result[T] {
	if err == nil {
		return Failure[T]()
	}
	return Failure[T](err.Error())
}

// IsSuccess reports whether the operation succeeded.
func (r Result[T]) IsSuccess() bool {
	return r.hasValue
}

// Value returns the carried value and whether one is present.
// A value is present only for successful results.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.hasValue
}

// MustValue returns the carried value, panicking if the result is a failure.
// Intended for tests and for call sites that have already checked IsSuccess.
func (r Result[T]) MustValue() T {
	if !r.hasValue {
		panic("results: MustValue called on a failed result")
	}
	return r.value
}

// Errors returns the ordered list of error messages. Empty for successes.
func (r Result[T]) Errors() []string {
	return r.errorList
}
