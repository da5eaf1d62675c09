package typedjson

import (
	"slices"

	"github.com/typedjson/typedjson/jsontree"
)

// node is a container under construction. The encode side builds a mutable
// node tree so that sequence containers can grow after being linked into
// their parent; resolve converts the finished tree to generic JSON values in
// one pass at the end of the encode.
type node interface {
	resolve() jsontree.Value
}

type scalarNode struct {
	v jsontree.Value
}

func (n scalarNode) resolve() jsontree.Value { return n.v }

type objectNode struct {
	keys  []string
	elems map[string]node
}

func newObjectNode() *objectNode {
	return &objectNode{elems: make(map[string]node)}
}

// set stores child under key. Re-setting keeps the key's original position.
func (n *objectNode) set(key string, child node) {
	if _, ok := n.elems[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.elems[key] = child
}

func (n *objectNode) resolve() jsontree.Value {
	obj := jsontree.NewObject()
	for _, key := range n.keys {
		obj.Set(key, n.elems[key].resolve())
	}
	return obj
}

type arrayNode struct {
	elems []node
}

func (n *arrayNode) resolve() jsontree.Value {
	arr := make(jsontree.Array, len(n.elems))
	for i, e := range n.elems {
		arr[i] = e.resolve()
	}
	return arr
}

// EncodeState drives one encode pass. It owns a stack of containers under
// construction and the diagnostic path to the current traversal position. A
// fresh state is built for every top-level Encode call; states are not safe
// for concurrent use.
type EncodeState struct {
	opts  *EncoderOptions
	stack []node
	path  []segment

	// base is the stack depth at which the value currently being encoded
	// started. A value may push exactly one container above base; a second
	// push at the same nesting point is a programming error.
	base int
}

// Context returns the user context map configured on the Encoder. The codec
// never reads it.
func (s *EncodeState) Context() map[string]any { return s.opts.Context }

// Path returns the diagnostic path to the current traversal position.
func (s *EncodeState) Path() string { return formatPath(s.path) }

func (s *EncodeState) canPush() bool { return len(s.stack) == s.base }

func (s *EncodeState) push(n node) {
	if !s.canPush() {
		panic("typedjson: value encoded a second container " + pathLabel(formatPath(s.path)))
	}
	s.stack = append(s.stack, n)
}

// Keyed requests a keyed container at the current nesting point. Requesting
// it again returns a view over the same container; requesting it after a
// different container was produced panics.
func (s *EncodeState) Keyed() *KeyedEncoder {
	if s.canPush() {
		n := newObjectNode()
		s.stack = append(s.stack, n)
		return &KeyedEncoder{state: s, node: n, path: slices.Clone(s.path)}
	}
	n, ok := s.stack[len(s.stack)-1].(*objectNode)
	if !ok {
		panic("typedjson: keyed container requested after a different container was encoded " + pathLabel(formatPath(s.path)))
	}
	return &KeyedEncoder{state: s, node: n, path: slices.Clone(s.path)}
}

// Sequence requests a sequence container at the current nesting point, with
// the same re-request and misuse semantics as Keyed.
func (s *EncodeState) Sequence() *SequenceEncoder {
	if s.canPush() {
		n := &arrayNode{}
		s.stack = append(s.stack, n)
		return &SequenceEncoder{state: s, node: n, path: slices.Clone(s.path)}
	}
	n, ok := s.stack[len(s.stack)-1].(*arrayNode)
	if !ok {
		panic("typedjson: sequence container requested after a different container was encoded " + pathLabel(formatPath(s.path)))
	}
	return &SequenceEncoder{state: s, node: n, path: slices.Clone(s.path)}
}

// Single requests a single-value slot at the current nesting point. Writing
// more than one value through it panics.
func (s *EncodeState) Single() *SingleEncoder {
	return &SingleEncoder{state: s, path: slices.Clone(s.path)}
}

// capture runs work with the traversal positioned at path and claims the one
// container it produced. Work that produces nothing yields an empty object,
// matching the fallback applied to custom strategy functions.
func (s *EncodeState) capture(path []segment, work func() error) (node, error) {
	savedPath, savedBase := s.path, s.base
	s.path, s.base = path, len(s.stack)
	defer func() { s.path, s.base = savedPath, savedBase }()

	depth := len(s.stack)
	if err := work(); err != nil {
		// Discard anything work pushed so a swallowed error cannot leave
		// an orphan container in the document.
		s.stack = s.stack[:depth]
		return nil, err
	}
	if len(s.stack) == depth {
		return newObjectNode(), nil
	}
	n := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return n, nil
}

func (s *EncodeState) boxMarshaler(m Marshaler, path []segment) (node, error) {
	return s.capture(path, func() error { return m.MarshalTyped(s) })
}

// SuperEncoder is a delegation handle for encoding an enclosing type's
// representation into a slot of the container a derived type is writing.
// It is an independent traversal engine sharing the parent's configuration;
// Close commits its single produced container into the reserved slot and
// must be called exactly once, before the parent container is claimed.
type SuperEncoder struct {
	EncodeState
	commit func(node)
	closed bool
}

// State returns the embedded traversal state, for handing to a MarshalTyped
// implementation.
func (s *SuperEncoder) State() *EncodeState { return &s.EncodeState }

// Close commits the produced container into the parent slot. A SuperEncoder
// that produced nothing commits an empty object.
func (s *SuperEncoder) Close() {
	if s.closed {
		panic("typedjson: SuperEncoder closed twice " + pathLabel(formatPath(s.path)))
	}
	s.closed = true

	var n node
	switch len(s.stack) {
	case 0:
		n = newObjectNode()
	case 1:
		n = s.stack[0]
	default:
		panic("typedjson: SuperEncoder closed with multiple containers " + pathLabel(formatPath(s.path)))
	}
	s.commit(n)
}
