package typedjson

// Marshaler is implemented by types that can decompose themselves into JSON
// containers. MarshalTyped must produce exactly one container or scalar
// through the provided state: request a container with Keyed, Sequence, or
// Single and populate it. Producing a second container at the same nesting
// point is a programming error and panics.
type Marshaler interface {
	MarshalTyped(*EncodeState) error
}

// Unmarshaler is implemented by types that can reconstruct themselves from
// JSON containers. UnmarshalTyped reads through the provided state, which is
// positioned at the value to reconstruct.
type Unmarshaler interface {
	UnmarshalTyped(*DecodeState) error
}

// Marshal encodes v with a default Encoder.
func Marshal(v Marshaler) ([]byte, error) {
	return NewEncoder().Encode(v)
}

// Unmarshal decodes p into v with a default Decoder.
func Unmarshal(p []byte, v Unmarshaler) error {
	return NewDecoder().Decode(p, v)
}
