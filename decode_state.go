package typedjson

import (
	"slices"

	"github.com/typedjson/typedjson/jsontree"
)

// DecodeState drives one decode pass over a parsed JSON tree. It owns a
// stack of container values being read and the diagnostic path to the
// current traversal position. A fresh state is built for every top-level
// Decode call; states are not safe for concurrent use.
type DecodeState struct {
	opts  *DecoderOptions
	stack []jsontree.Value
	path  []segment
}

// Context returns the user context map configured on the Decoder. The codec
// never reads it.
func (s *DecodeState) Context() map[string]any { return s.opts.Context }

// Path returns the diagnostic path to the current traversal position.
func (s *DecodeState) Path() string { return formatPath(s.path) }

func (s *DecodeState) top() jsontree.Value {
	if len(s.stack) == 0 {
		panic("typedjson: decode with empty container stack")
	}
	return s.stack[len(s.stack)-1]
}

// Keyed positions the traversal at the current value as a keyed container.
// It fails with *TypeMismatchError if the value is not an object, or
// *ValueNotFoundError if it is null.
func (s *DecodeState) Keyed() (*KeyedDecoder, error) {
	switch v := s.top().(type) {
	case jsontree.Object:
		return &KeyedDecoder{state: s, obj: v, path: slices.Clone(s.path)}, nil
	case jsontree.Null:
		return nil, &ValueNotFoundError{Expected: jsontree.KindObject, Path: s.Path()}
	default:
		return nil, &TypeMismatchError{Expected: jsontree.KindObject, Actual: v.Kind(), Path: s.Path()}
	}
}

// Sequence positions the traversal at the current value as a sequence
// container, with the same failure semantics as Keyed.
func (s *DecodeState) Sequence() (*SequenceDecoder, error) {
	switch v := s.top().(type) {
	case jsontree.Array:
		return &SequenceDecoder{state: s, arr: v, path: slices.Clone(s.path)}, nil
	case jsontree.Null:
		return nil, &ValueNotFoundError{Expected: jsontree.KindArray, Path: s.Path()}
	default:
		return nil, &TypeMismatchError{Expected: jsontree.KindArray, Actual: v.Kind(), Path: s.Path()}
	}
}

// Single positions the traversal at the current value as a single scalar
// slot. Accessors fail with *TypeMismatchError if the value is an object or
// array; those shapes must go through Keyed or Sequence.
func (s *DecodeState) Single() *SingleDecoder {
	return &SingleDecoder{state: s, path: slices.Clone(s.path)}
}

// withValue runs work with v pushed as the current value and the path set to
// the value's position. The stack and path are restored on every exit.
func (s *DecodeState) withValue(v jsontree.Value, path []segment, work func() error) error {
	savedPath := s.path
	s.stack = append(s.stack, v)
	s.path = path
	defer func() {
		s.stack = s.stack[:len(s.stack)-1]
		s.path = savedPath
	}()
	return work()
}

func (s *DecodeState) unmarshalValue(v jsontree.Value, path []segment, um Unmarshaler) error {
	return s.withValue(v, path, func() error { return um.UnmarshalTyped(s) })
}

// super returns an independent decode state positioned at v, sharing this
// state's configuration.
func (s *DecodeState) super(v jsontree.Value, path []segment) *DecodeState {
	return &DecodeState{
		opts:  s.opts,
		stack: []jsontree.Value{v},
		path:  path,
	}
}
