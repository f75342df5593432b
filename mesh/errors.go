// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: the typed error taxonomy (spec.md §7).
//
// spec.md defines error *kinds*, not fixed sentinel messages, so this file
// uses one typed family (Error, wrapping an ErrorKind) rather than the
// teacher's per-case sentinel vars (core/types.go's Err*). Callers branch on
// kind with errors.As plus Error.Kind, or with errors.Is against another
// *Error built from NotFound/Malformed/... — Error.Is compares by Kind
// alone, ignoring Op and the wrapped cause, the same way the teacher's
// errors.Is(err, ErrX) convention ignores any %w-wrapped context.
package mesh

import "fmt"

// ErrorKind classifies a mesh operation failure.
type ErrorKind int

const (
	// TopologyNotFound: a referenced key does not exist.
	TopologyNotFound ErrorKind = iota + 1
	// TopologyMalformed: input violates a structural precondition.
	TopologyMalformed
	// TopologyConflict: input would break a global invariant.
	TopologyConflict
	// ArityNonUniform: a bridge between faces of different arities.
	ArityNonUniform
	// ArityInvariant: a face insertion below arity 3.
	ArityInvariant
	// Geometric: a payload-level failure (e.g. translation unsupported).
	Geometric
)

func (k ErrorKind) String() string {
	switch k {
	case TopologyNotFound:
		return "TopologyNotFound"
	case TopologyMalformed:
		return "TopologyMalformed"
	case TopologyConflict:
		return "TopologyConflict"
	case ArityNonUniform:
		return "ArityNonUniform"
	case ArityInvariant:
		return "ArityInvariant"
	case Geometric:
		return "Geometric"
	default:
		return "Unknown"
	}
}

// Error is the error type every mesh/meshmutate failure is reported as. Op
// names the operation that failed ("FaceInsert", "FaceSplit", ...); Err is
// an optional wrapped cause (set by driver-level failures, which are wrapped
// with github.com/pkg/errors.WithStack for a stack trace when the owning
// Mutation is poisoned).
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mesh: %s: %s: %v", e.Op, e.Kind, e.Err)
	}

	return fmt.Sprintf("mesh: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same Kind. Op and the
// wrapped cause are not compared, matching spec.md §7's framing of errors
// purely by kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == other.Kind
}

func newError(kind ErrorKind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// NotFound builds a TopologyNotFound error for operation op.
func NotFound(op string) *Error { return newError(TopologyNotFound, op, nil) }

// Malformed builds a TopologyMalformed error for operation op.
func Malformed(op string) *Error { return newError(TopologyMalformed, op, nil) }

// Conflict builds a TopologyConflict error for operation op.
func Conflict(op string) *Error { return newError(TopologyConflict, op, nil) }

// NonUniformArity builds an ArityNonUniform error for operation op.
func NonUniformArity(op string) *Error { return newError(ArityNonUniform, op, nil) }

// InvalidArity builds an ArityInvariant error for operation op.
func InvalidArity(op string) *Error { return newError(ArityInvariant, op, nil) }

// GeometricError builds a Geometric error for operation op, wrapping cause.
func GeometricError(op string, cause error) *Error { return newError(Geometric, op, cause) }

// Wrap builds a *Error of kind, for operation op, wrapping cause. It is used
// for driver-level (post-write) failures, which meshmutate additionally
// wraps with github.com/pkg/errors.WithStack when poisoning the Mutation.
func Wrap(kind ErrorKind, op string, cause error) *Error { return newError(kind, op, cause) }
