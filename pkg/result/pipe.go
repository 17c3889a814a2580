package result

// Pipe applies stages to r from left to right: Pipe(r, f, g) is g(f(r)).
// With no stages it returns r unchanged. Stage constructors below lift the
// combinators into this shape.
func Pipe[T, E any](r Result[T, E], stages ...func(Result[T, E]) Result[T, E]) Result[T, E] {
	for _, stage := range stages {
		r = stage(r)
	}
	return r
}

// Mapping lifts a mapper into a pipeline stage.
func Mapping[T, E, U any](fn func(T) U) func(Result[T, E]) Result[U, E] {
	return func(r Result[T, E]) Result[U, E] {
		return Map(r, fn)
	}
}

// MappingError lifts an error mapper into a pipeline stage.
func MappingError[T, E, F any](fn func(E) F) func(Result[T, E]) Result[T, F] {
	return func(r Result[T, E]) Result[T, F] {
		return MapError(r, fn)
	}
}

// Binding lifts a Result-returning function into a pipeline stage.
func Binding[T, E, U any](fn func(T) Result[U, E]) func(Result[T, E]) Result[U, E] {
	return func(r Result[T, E]) Result[U, E] {
		return Bind(r, fn)
	}
}

// Filtering lifts a predicate with an eager error payload into a stage.
func Filtering[T, E any](predicate func(T) bool, errValue E) func(Result[T, E]) Result[T, E] {
	return func(r Result[T, E]) Result[T, E] {
		return r.Filter(predicate, errValue)
	}
}

// FilteringWith lifts a predicate with a lazy error payload into a stage.
func FilteringWith[T, E any](predicate func(T) bool, errFn func(T) E) func(Result[T, E]) Result[T, E] {
	return func(r Result[T, E]) Result[T, E] {
		return r.FilterWith(predicate, errFn)
	}
}

// Swapping is the Swap combinator in stage form.
func Swapping[T, E any]() func(Result[T, E]) Result[E, T] {
	return func(r Result[T, E]) Result[E, T] {
		return r.Swap()
	}
}

// Recovering lifts an error handler that may rebuild a Result into a stage.
func Recovering[T, E any](altFn func(E) Result[T, E]) func(Result[T, E]) Result[T, E] {
	return func(r Result[T, E]) Result[T, E] {
		return r.OrElseWith(altFn)
	}
}
