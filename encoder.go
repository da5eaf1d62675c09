package typedjson

import (
	"github.com/typedjson/typedjson/jsontree"
)

// Encoder converts values implementing Marshaler into JSON text. An Encoder
// is long-lived and safe for concurrent Encode calls: the configuration is
// snapshotted at the start of each call and every call builds its own
// traversal state.
type Encoder struct {
	options EncoderOptions
}

// NewEncoder returns an Encoder configured by the given option functions.
func NewEncoder(optFns ...func(*EncoderOptions)) *Encoder {
	var o EncoderOptions
	for _, fn := range optFns {
		fn(&o)
	}
	return &Encoder{options: o}
}

// Encode decomposes v and serializes the result. It returns
// ErrNoValueEncoded if v produced no container, and *TopLevelError if the
// produced value is a bare scalar fragment: the top level of the document
// must be an object or array.
func (e *Encoder) Encode(v Marshaler) ([]byte, error) {
	opts := e.options
	state := &EncodeState{opts: &opts}

	if err := v.MarshalTyped(state); err != nil {
		return nil, err
	}
	if len(state.stack) == 0 {
		return nil, ErrNoValueEncoded
	}

	top := state.stack[len(state.stack)-1].resolve()
	switch top.Kind() {
	case jsontree.KindObject, jsontree.KindArray:
	default:
		return nil, &TopLevelError{Kind: top.Kind()}
	}

	if opts.Indent != "" {
		return jsontree.EncodeIndent(top, "", opts.Indent), nil
	}
	return jsontree.Encode(top), nil
}
