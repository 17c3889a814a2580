package result

import "iter"

// Sequence converts a slice of Results into a Result of a slice, preserving
// input order. The first Error in the slice is returned verbatim and later
// elements, including later errors, are discarded. An empty input yields an
// Ok of an empty slice.
func Sequence[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[E](values)
}

// Traverse maps items through fn and sequences the outcomes. fn is not
// invoked for items after the first Error.
func Traverse[A, B, E any](items []A, fn func(A) Result[B, E]) Result[[]B, E] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		r := fn(item)
		if !r.ok {
			return Err[[]B](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[E](values)
}

// Collect drains a lazily produced sequence of Results into a single Result.
// It stops pulling from seq at the first Error, so elements after it are
// never forced.
func Collect[T, E any](seq iter.Seq[Result[T, E]]) Result[[]T, E] {
	values := []T{}
	for r := range seq {
		if !r.ok {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[E](values)
}
