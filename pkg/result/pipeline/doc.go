// Package pipeline composes Result-returning steps into synchronous,
// short-circuiting chains.
//
// Two surfaces:
// - Compose: fold zero or more func(T) Result[T, E] steps into one function;
//   with no steps the composition lifts its input into Ok unchanged
// - Chain[T, E]: a fluent wrapper for building a run step by step with
//   Then/Map/Filter/Ensure/OrElse, collapsed by Result or Finally
//
// Every step sees only the success payload of the step before it; the first
// Error stops the run and is returned as is.
package pipeline
