package option

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"reflect"
)

// Option represents presence or absence of a value of type T. The zero value
// is None. The value is stored inline, so Some of a nil pointer is distinct
// from None; use IsSome to test for presence.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an Option that wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None constructs an empty Option for the given type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk constructs an Option from Go's common (value, ok) pair, e.g. a map
// lookup or type assertion.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPtr creates an Option from a pointer, treating nil as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports whether the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the contained value or panics when the Option is None.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic("option: MustGet on None")
	}
	return o.value
}

// GetOrElse returns the contained value when present, otherwise fallback.
// The fallback is evaluated eagerly by the caller.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// GetOrElseWith behaves like GetOrElse but invokes fn only when the Option
// is None.
func (o Option[T]) GetOrElseWith(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// OrElse returns the Option itself when it is Some, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElseWith behaves like OrElse but constructs the replacement lazily.
func (o Option[T]) OrElseWith(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// ToPtr converts the Option into a pointer to a copy of the value, or nil
// when None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	value := o.value
	return &value
}

// Filter keeps the value when predicate returns true, otherwise None. The
// predicate is never evaluated for None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Values returns an iterator yielding the contained value for Some and
// nothing for None.
func (o Option[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// Map transforms the contained value with fn when present.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.some {
		return Some(fn(o.value))
	}
	return None[U]()
}

// Bind chains the Option with an Option-returning function.
func Bind[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.some {
		return fn(o.value)
	}
	return None[U]()
}

// Fold collapses the Option into a single value, calling onNone for an empty
// Option and onSome otherwise.
func Fold[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Equal reports whether two Options are both None or both Some with
// structurally equal values. Use == directly when T is comparable.
func Equal[T any](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	if !a.some {
		return true
	}
	return reflect.DeepEqual(a.value, b.value)
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

var jsonNull = []byte("null")

// MarshalJSON encodes Some as the payload's own encoding and None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else through the payload
// type's decoder. Decode failures are the payload decoder's own errors.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[T]()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Some(value)
	return nil
}
