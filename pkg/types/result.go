package types

import "errors"

// Status tags the outcome carried by a Result.
type Status int

// Result states.
const (
	StatusOK Status = iota
	StatusNotFound
	StatusError
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the value returned by every catalog query. Exactly one of the
// following holds: Status is StatusOK and Value is set; Status is
// StatusNotFound; or Status is StatusError and Err is non-nil.
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{Value: v, Status: StatusOK}
}

// NotFound returns an absent result.
func NotFound[T any]() Result[T] {
	return Result[T]{Status: StatusNotFound}
}

// Failed wraps an error. ErrNotFound is mapped to StatusNotFound.
func Failed[T any](err error) Result[T] {
	if errors.Is(err, ErrNotFound) {
		return Result[T]{Status: StatusNotFound}
	}
	return Result[T]{Status: StatusError, Err: err}
}

// From builds a Result from the usual (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failed[T](err)
	}
	return OK(v)
}

// IsOK reports whether the result carries a value.
func (r Result[T]) IsOK() bool { return r.Status == StatusOK }

// Unwrap returns the value and an error for NotFound and Error results.
func (r Result[T]) Unwrap() (T, error) {
	switch r.Status {
	case StatusOK:
		return r.Value, nil
	case StatusNotFound:
		return r.Value, ErrNotFound
	default:
		return r.Value, r.Err
	}
}

// ValueOr returns the value, or def when the result is not OK.
func (r Result[T]) ValueOr(def T) T {
	if r.Status == StatusOK {
		return r.Value
	}
	return def
}
