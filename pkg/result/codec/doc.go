// Package codec connects Result values to pluggable serialization
// frameworks. The core stays agnostic of the wire format: a Codec supplies
// Marshal/Unmarshal for the payload types, Encode/Decode wrap it with the
// tagged-record envelope, and decode failures surface as the codec's own
// errors, never a bespoke type.
//
// JSON is the bundled default:
//
//	data, _ := codec.Encode[int, string](codec.JSON{}, result.Ok[string](10))
//	r, err := codec.Decode[int, string](codec.JSON{}, data)
package codec
