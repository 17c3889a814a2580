package pipeline

import (
	"github.com/outcome-kit/outcome/pkg/result"
)

// Compose folds steps into a single function applied left to right. The
// success payload of step i feeds step i+1; the first Error is returned
// without invoking the remaining steps. Compose() with no steps is the
// identity lifted into Ok.
func Compose[T, E any](steps ...func(T) result.Result[T, E]) func(T) result.Result[T, E] {
	return func(input T) result.Result[T, E] {
		res := result.Ok[E](input)
		for _, step := range steps {
			res = result.Bind(res, step)
			if res.IsError() {
				return res
			}
		}
		return res
	}
}

// Chain wraps a Result to enable fluent step-by-step composition.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// Start begins a chain from an existing Result.
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue begins a chain from a successful value.
func FromValue[E, T any](value T) Chain[T, E] {
	return Chain[T, E]{res: result.Ok[E](value)}
}

// Result returns the underlying Result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a step that already returns a Result.
func (c Chain[T, E]) Then(step func(T) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.Bind(c.res, step)}
}

// Map transforms the successful value without changing its type.
func (c Chain[T, E]) Map(fn func(T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, fn)}
}

// Filter demotes the chain to the given error payload when the predicate
// rejects the current value.
func (c Chain[T, E]) Filter(predicate func(T) bool, errValue E) Chain[T, E] {
	return Chain[T, E]{res: c.res.Filter(predicate, errValue)}
}

// Ensure triggers side effects for the current variant without changing the
// result. Either handler may be nil.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if value, ok := c.res.Ok(); ok {
		if onOk != nil {
			onOk(value)
		}
	} else if onErr != nil {
		err, _ := c.res.Err()
		onErr(err)
	}
	return c
}

// OrElse replaces a failed chain with the alternative Result.
func (c Chain[T, E]) OrElse(alt result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: c.res.OrElse(alt)}
}

// OrElseWith replaces a failed chain lazily from its error payload.
func (c Chain[T, E]) OrElseWith(altFn func(E) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: c.res.OrElseWith(altFn)}
}

// Finally collapses a chain to a final value via per-variant handlers.
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	if value, ok := c.res.Ok(); ok {
		return onOk(value)
	}
	err, _ := c.res.Err()
	return onErr(err)
}
