package result

import (
	"reflect"

	"github.com/outcome-kit/outcome/pkg/option"
)

// Type-changing combinators live here as free functions: Go methods cannot
// introduce new type parameters.

// Map applies fn to the success payload and rewraps it; an Error passes
// through with its payload untouched.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[E](fn(r.value))
	}
	return Err[U](r.err)
}

// Map2 combines two Results with fn. The first Error encountered wins.
func Map2[A, B, E, U any](ra Result[A, E], rb Result[B, E], fn func(A, B) U) Result[U, E] {
	if !ra.ok {
		return Err[U](ra.err)
	}
	if !rb.ok {
		return Err[U](rb.err)
	}
	return Ok[E](fn(ra.value, rb.value))
}

// MapError applies fn to the error payload; an Ok passes through unchanged.
func MapError[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](fn(r.err))
}

// Bind chains a Result-returning function: for Ok the value of fn(payload)
// is returned directly, never double-wrapped; an Error short-circuits.
func Bind[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// Merge collapses a Result whose sides share a type, returning whichever
// payload is live. Instantiating T with a shared interface widens both arms
// while preserving the concrete value.
func Merge[T any](r Result[T, T]) T {
	return r.DefaultWith(func(e T) T { return e })
}

// OrElseTo is the error-retyping form of Result.OrElse: an Ok is rewrapped
// with the alternative's error type, an Error is replaced by alt.
func OrElseTo[T, E, E2 any](r Result[T, E], alt Result[T, E2]) Result[T, E2] {
	if r.ok {
		return Ok[E2](r.value)
	}
	return alt
}

// OrElseWithTo is the lazy form of OrElseTo; altFn runs only for an Error.
func OrElseWithTo[T, E, E2 any](r Result[T, E], altFn func(E) Result[T, E2]) Result[T, E2] {
	if r.ok {
		return Ok[E2](r.value)
	}
	return altFn(r.err)
}

// OfOption converts an Option to a Result, using the eagerly supplied error
// payload for None.
func OfOption[T, E any](o option.Option[T], errValue E) Result[T, E] {
	if value, some := o.Get(); some {
		return Ok[E](value)
	}
	return Err[T](errValue)
}

// OfOptionWith is the lazy form of OfOption; errFn runs only for None.
func OfOptionWith[T, E any](o option.Option[T], errFn func() E) Result[T, E] {
	if value, some := o.Get(); some {
		return Ok[E](value)
	}
	return Err[T](errFn())
}

// FromTuple bridges Go's (value, error) convention into a Result.
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](value)
}

// ToTuple bridges a Result with an error payload back to Go's (value, error)
// convention.
func ToTuple[T any](r Result[T, error]) (T, error) {
	return r.value, r.err
}

// Equal reports whether two Results are the same variant with structurally
// equal payloads. Use == directly when T and E are comparable.
func Equal[T, E any](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return reflect.DeepEqual(a.value, b.value)
	}
	return reflect.DeepEqual(a.err, b.err)
}
