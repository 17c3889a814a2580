package codec

import (
	"encoding/json"

	"github.com/outcome-kit/outcome/pkg/result"
)

// Codec is the capability a host serialization framework injects: a way to
// marshal and unmarshal arbitrary declared types, including the payload
// types of a Result. Implementations must support struct fields with json
// tags, which is how the record envelope names its discriminant and payload.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSON is the default Codec, backed by encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Encode serializes r as its tagged record through c. Payload encoding is
// delegated entirely to the codec.
func Encode[T, E any](c Codec, r result.Result[T, E]) ([]byte, error) {
	return c.Marshal(r.ToRecord())
}

// Decode is the strict inverse of Encode. Payload decode failures are the
// codec's own errors, returned verbatim; malformed envelopes surface the
// result package's structural sentinels (ErrNoPayload, ErrBothPayloads,
// ErrTagMismatch).
//
// The envelope is read as a RawRecord so payload presence survives even
// when the payload itself encodes as null, then the payload bytes are
// handed back to the codec.
func Decode[T, E any](c Codec, data []byte) (result.Result[T, E], error) {
	var raw result.RawRecord
	if err := c.Unmarshal(data, &raw); err != nil {
		var zero result.Result[T, E]
		return zero, err
	}
	return result.FromRawRecord[T, E](raw, c.Unmarshal)
}
