// Package strerr defines the error taxonomy shared across the strata
// kernel, codec, revoxelizer, mesher and scene packages. Kinds are
// distinct tags with no hierarchy between them; wrap a cause with %w
// as the teacher's own packages do and callers can still recover the
// Kind with errors.As.
package strerr

import (
	"errors"
	"fmt"
)

// Kind tags an error with one of the five taxonomy buckets from the spec.
type Kind int

const (
	// InvalidArgument covers non-positive radii, non-positive
	// voxels-per-unit, non-multiple resolution overrides, empty AABBs,
	// and unknown axis/compression values.
	InvalidArgument Kind = iota
	// InvalidFormat covers SBVX header/payload problems on read.
	InvalidFormat
	// Invariant marks an internal inconsistency that should never occur
	// from well-formed input (e.g. a boundary face without an adjacent
	// filled voxel).
	Invariant
	// NotImplemented marks a reserved but unbuilt code path (Surface Nets).
	NotImplemented
	// IoError wraps failures from the underlying stream or filesystem.
	IoError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case InvalidFormat:
		return "invalid_format"
	case Invariant:
		return "invariant"
	case NotImplemented:
		return "not_implemented"
	case IoError:
		return "io_error"
	default:
		return fmt.Sprintf("strerr.Kind(%d)", int(k))
	}
}

// Error pairs a Kind with a message and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, &strerr.Error{Kind: strerr.InvalidArgument}) matches any
// error of that kind regardless of message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind, wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf reports the Kind of err if it is (or wraps) a *strerr.Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
