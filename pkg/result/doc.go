// Package result implements a generic two-variant Result[T, E]: an Ok value
// carrying a success payload or an Error carrying a caller-defined error
// payload. Failures are values, never raised; every operation returns a new
// Result and leaves its input untouched.
//
// Highlights:
// - Ok/Err: construct a Result
// - IsOk/IsError/Tag: variant predicates and the wire discriminant
// - Ok()/Err()/MustOk/MustErr: destructure a variant
// - Map/MapError/Bind/Merge: transform payloads (free functions)
// - Filter/FilterWith/DefaultValue/DefaultWith/OrElse/OrElseWith/Swap: methods
// - Sequence/Traverse/Collect: turn many Results into a Result of many
// - Pipe with Mapping/Binding/Filtering stages: left-to-right composition
// - Record/ToRecord/FromRecord and JSON marshaling: tagged structural encoding
//
// Callbacks passed to combinators are trusted: the package never recovers a
// panic raised by a caller-supplied mapper or predicate.
//
// For fluent chains of Result-returning steps, see the pipeline subpackage.
// For pluggable wire formats, see the codec subpackage.
package result
