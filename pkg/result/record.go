package result

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Structural decode failures. Decoders wrap these, so match with errors.Is.
var (
	ErrNoPayload    = errors.New("result: record carries neither ok nor error payload")
	ErrBothPayloads = errors.New("result: record carries both ok and error payloads")
	ErrTagMismatch  = errors.New("result: record tag disagrees with its payload")
)

// Record is the tagged structural encoding of a Result: a discriminant plus
// exactly one payload field matching it. Payloads are pointers so presence
// survives the round trip; external schema frameworks can decode into a
// Record with their own per-field decoders for T and E and hand it to
// FromRecord.
type Record[T, E any] struct {
	Tag   string `json:"tag,omitempty"`
	Ok    *T     `json:"ok,omitempty"`
	Error *E     `json:"error,omitempty"`
}

// ToRecord encodes the Result as a structural record.
func (r Result[T, E]) ToRecord() Record[T, E] {
	if r.ok {
		value := r.value
		return Record[T, E]{Tag: string(TagOk), Ok: &value}
	}
	err := r.err
	return Record[T, E]{Tag: string(TagError), Error: &err}
}

// FromRecord decodes a structural record back into a Result. A record must
// carry exactly one payload, and a non-empty tag must agree with it; the tag
// may be omitted. Violations surface as wrapped sentinel errors.
func FromRecord[T, E any](rec Record[T, E]) (Result[T, E], error) {
	var zero Result[T, E]
	switch {
	case rec.Ok != nil && rec.Error != nil:
		return zero, fmt.Errorf("%w (tag %q)", ErrBothPayloads, rec.Tag)
	case rec.Ok != nil:
		if rec.Tag != "" && rec.Tag != string(TagOk) {
			return zero, fmt.Errorf("%w: tag %q with ok payload", ErrTagMismatch, rec.Tag)
		}
		return Ok[E](*rec.Ok), nil
	case rec.Error != nil:
		if rec.Tag != "" && rec.Tag != string(TagError) {
			return zero, fmt.Errorf("%w: tag %q with error payload", ErrTagMismatch, rec.Tag)
		}
		return Err[T](*rec.Error), nil
	default:
		return zero, fmt.Errorf("%w (tag %q)", ErrNoPayload, rec.Tag)
	}
}

// MarshalJSON encodes the Result as its tagged record, delegating payload
// encoding to the payload types' own marshalers.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToRecord())
}

// RawRecord is the wire form of a record before its payload is decoded:
// the discriminant plus the undecoded payload bytes. Presence is tracked
// through the raw messages themselves, so a present-but-null payload (an
// Option encoding None, say) still counts as present, which Record's
// pointer fields cannot express.
type RawRecord struct {
	Tag   string          `json:"tag"`
	Ok    json.RawMessage `json:"ok"`
	Error json.RawMessage `json:"error"`
}

// FromRawRecord decodes a wire record into a Result, delegating payload
// decoding to unmarshal. Payload decode failures are unmarshal's own
// errors, returned verbatim; structural violations wrap the sentinel
// errors above.
func FromRawRecord[T, E any](raw RawRecord, unmarshal func(data []byte, v any) error) (Result[T, E], error) {
	var zero Result[T, E]
	switch {
	case raw.Ok != nil && raw.Error != nil:
		return zero, fmt.Errorf("%w (tag %q)", ErrBothPayloads, raw.Tag)
	case raw.Ok != nil:
		if raw.Tag != "" && raw.Tag != string(TagOk) {
			return zero, fmt.Errorf("%w: tag %q with ok payload", ErrTagMismatch, raw.Tag)
		}
		var value T
		if err := unmarshal(raw.Ok, &value); err != nil {
			return zero, err
		}
		return Ok[E](value), nil
	case raw.Error != nil:
		if raw.Tag != "" && raw.Tag != string(TagError) {
			return zero, fmt.Errorf("%w: tag %q with error payload", ErrTagMismatch, raw.Tag)
		}
		var err E
		if decodeErr := unmarshal(raw.Error, &err); decodeErr != nil {
			return zero, decodeErr
		}
		return Err[T](err), nil
	default:
		return zero, fmt.Errorf("%w (tag %q)", ErrNoPayload, raw.Tag)
	}
}

// UnmarshalJSON decodes a tagged record. Payload decode failures are
// encoding/json's own errors; structural violations wrap the sentinel
// errors above. Nesting recurses naturally: payload types that are records,
// Results or Options decode through their own unmarshalers.
func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	var raw RawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := FromRawRecord[T, E](raw, json.Unmarshal)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}
