// Package option implements a generic Option[T] for presence/absence
// semantics. It is the conversion companion of package result: an Ok maps to
// Some and an Error maps to None.
//
// Highlights:
// - Some/None: construct an Option
// - IsSome/IsNone: variant predicates
// - Get/MustGet/GetOrElse/GetOrElseWith: extract the value
// - Map/Bind/Filter/Fold: transform without unwrapping
// - Values: iterate zero or one values
//
// The zero value of Option[T] is None, so Options embed safely in structs.
// Options encode to JSON as the bare payload for Some and null for None,
// which lets them nest inside serialized Result payloads.
package option
