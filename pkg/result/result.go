package result

import (
	"fmt"
	"iter"

	"github.com/outcome-kit/outcome/pkg/option"
)

// Tag is the variant discriminant of a Result. Its values match the wire
// encoding of the structural record.
type Tag string

const (
	TagOk    Tag = "ok"
	TagError Tag = "error"
)

// Result is the outcome of a computation that either succeeded with a value
// of type T or failed with an error payload of type E. Exactly one variant is
// ever live. The zero value is an Error holding E's zero value.
//
// When T and E are comparable, Results compare with ==: two Results are equal
// only when they are the same variant with equal payloads, so Ok(x) never
// equals Err(x) even when T and E coincide.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs a successful Result. The error side E leads the type
// parameter list so the payload side can be inferred: Ok[string](42).
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err constructs a failed Result carrying err. The success side T leads so
// the payload side can be inferred: Err[int]("boom").
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk reports whether the Result is the Ok variant.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsError reports whether the Result is the Error variant.
func (r Result[T, E]) IsError() bool {
	return !r.ok
}

// Tag returns the variant discriminant, for switch-based destructuring:
//
//	switch r.Tag() {
//	case result.TagOk:
//		v, _ := r.Ok()
//	case result.TagError:
//		e, _ := r.Err()
//	}
func (r Result[T, E]) Tag() Tag {
	if r.ok {
		return TagOk
	}
	return TagError
}

// Ok returns the success payload and whether the Result is Ok.
func (r Result[T, E]) Ok() (T, bool) {
	return r.value, r.ok
}

// Err returns the error payload and whether the Result is an Error.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.ok
}

// MustOk returns the success payload or panics when the Result is an Error.
// Reading the wrong variant is a programmer error and fails loudly.
func (r Result[T, E]) MustOk() T {
	if !r.ok {
		panic(fmt.Sprintf("result: MustOk on %s", r))
	}
	return r.value
}

// MustErr returns the error payload or panics when the Result is Ok.
func (r Result[T, E]) MustErr() E {
	if r.ok {
		panic(fmt.Sprintf("result: MustErr on %s", r))
	}
	return r.err
}

// DefaultValue returns the success payload, or fallback for an Error. The
// fallback is evaluated eagerly by the caller.
func (r Result[T, E]) DefaultValue(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// DefaultWith returns the success payload, or computes a fallback from the
// error payload. getter runs only for the Error variant.
func (r Result[T, E]) DefaultWith(getter func(E) T) T {
	if r.ok {
		return r.value
	}
	return getter(r.err)
}

// Filter keeps an Ok whose payload satisfies predicate and demotes it to
// Err(errValue) otherwise. An Error passes through and the predicate is
// never evaluated for it.
func (r Result[T, E]) Filter(predicate func(T) bool, errValue E) Result[T, E] {
	if r.ok && !predicate(r.value) {
		return Err[T](errValue)
	}
	return r
}

// FilterWith is Filter with a lazily computed error payload: errFn receives
// the current success payload and runs only when the predicate rejects it.
func (r Result[T, E]) FilterWith(predicate func(T) bool, errFn func(T) E) Result[T, E] {
	if r.ok && !predicate(r.value) {
		return Err[T](errFn(r.value))
	}
	return r
}

// OrElse returns the Result itself when Ok, otherwise the eagerly supplied
// alternative, whatever the original error was.
func (r Result[T, E]) OrElse(alt Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return alt
}

// OrElseWith behaves like OrElse but invokes altFn with the error payload
// only for the Error variant.
func (r Result[T, E]) OrElseWith(altFn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return altFn(r.err)
}

// Swap exchanges the variants: Ok(v) becomes Err(v) and Err(e) becomes
// Ok(e). Swapping twice restores the original Result.
func (r Result[T, E]) Swap() Result[E, T] {
	if r.ok {
		return Err[E](r.value)
	}
	return Ok[T](r.err)
}

// ToOption converts the Result to an Option, discarding the error payload.
func (r Result[T, E]) ToOption() option.Option[T] {
	if r.ok {
		return option.Some(r.value)
	}
	return option.None[T]()
}

// Values returns an iterator yielding the success payload for Ok and nothing
// for an Error. The empty iteration over an Error is deliberate: it lets a
// Result stand in wherever a possibly-absent value is ranged over.
func (r Result[T, E]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// String implements fmt.Stringer, rendering "Ok <value>" or "Error <err>".
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok %v", r.value)
	}
	return fmt.Sprintf("Error %v", r.err)
}
