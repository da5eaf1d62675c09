package typedjson

import (
	"github.com/typedjson/typedjson/jsontree"
)

// Decoder converts JSON text into values implementing Unmarshaler. A Decoder
// is long-lived and safe for concurrent Decode calls: the configuration is
// snapshotted at the start of each call and every call builds its own
// traversal state.
type Decoder struct {
	options DecoderOptions
}

// NewDecoder returns a Decoder configured by the given option functions.
func NewDecoder(optFns ...func(*DecoderOptions)) *Decoder {
	var o DecoderOptions
	for _, fn := range optFns {
		fn(&o)
	}
	return &Decoder{options: o}
}

// Decode parses p and reconstructs v from the resulting tree. Input that
// does not parse as a single JSON value fails with *jsontree.SyntaxError;
// any failure raised during reconstruction propagates to the caller
// unchanged.
func (d *Decoder) Decode(p []byte, v Unmarshaler) error {
	opts := d.options

	var tree jsontree.Value
	var err error
	if opts.AllowComments {
		tree, err = jsontree.ParseJSONC(p)
	} else {
		tree, err = jsontree.Parse(p)
	}
	if err != nil {
		return err
	}

	state := &DecodeState{
		opts:  &opts,
		stack: []jsontree.Value{tree},
	}
	return v.UnmarshalTyped(state)
}
