package typedjson

import (
	"time"

	"github.com/typedjson/typedjson/jsontree"
)

// KeyedEncoder writes named fields into one keyed container.
type KeyedEncoder struct {
	state *EncodeState
	node  *objectNode
	path  []segment
}

// SetNull writes a JSON null under key.
func (k *KeyedEncoder) SetNull(key string) {
	k.node.set(key, scalarNode{jsontree.Null{}})
}

// SetBool writes a boolean under key.
func (k *KeyedEncoder) SetBool(key string, v bool) {
	k.node.set(key, scalarNode{jsontree.Bool(v)})
}

// SetString writes a string under key.
func (k *KeyedEncoder) SetString(key string, v string) {
	k.node.set(key, scalarNode{jsontree.String(v)})
}

// SetInt writes an integer under key.
func (k *KeyedEncoder) SetInt(key string, v int64) {
	k.node.set(key, scalarNode{jsontree.Int(v)})
}

// SetUint writes an unsigned integer under key.
func (k *KeyedEncoder) SetUint(key string, v uint64) {
	k.node.set(key, scalarNode{jsontree.Uint(v)})
}

// SetFloat writes a floating-point value under key, applying the non-finite
// strategy.
func (k *KeyedEncoder) SetFloat(key string, v float64) error {
	boxed, err := boxFloat(v, k.state.opts.NonFinite, childPath(k.path, keySegment(key)))
	if err != nil {
		return err
	}
	k.node.set(key, scalarNode{boxed})
	return nil
}

// SetTime writes a timestamp under key, applying the time format strategy.
func (k *KeyedEncoder) SetTime(key string, t time.Time) error {
	n, err := k.state.boxTime(t, childSegs(k.path, keySegment(key)))
	if err != nil {
		return err
	}
	k.node.set(key, n)
	return nil
}

// SetBytes writes binary data under key, applying the bytes format strategy.
func (k *KeyedEncoder) SetBytes(key string, p []byte) error {
	n, err := k.state.boxBytes(p, childSegs(k.path, keySegment(key)))
	if err != nil {
		return err
	}
	k.node.set(key, n)
	return nil
}

// SetValue encodes an arbitrary value under key. A nil Marshaler writes a
// JSON null.
func (k *KeyedEncoder) SetValue(key string, m Marshaler) error {
	if m == nil {
		k.SetNull(key)
		return nil
	}
	n, err := k.state.boxMarshaler(m, childSegs(k.path, keySegment(key)))
	if err != nil {
		return err
	}
	k.node.set(key, n)
	return nil
}

// Keyed creates a nested keyed container under key and returns a view over
// it.
func (k *KeyedEncoder) Keyed(key string) *KeyedEncoder {
	n := newObjectNode()
	k.node.set(key, n)
	return &KeyedEncoder{state: k.state, node: n, path: childSegs(k.path, keySegment(key))}
}

// Sequence creates a nested sequence container under key and returns a view
// over it.
func (k *KeyedEncoder) Sequence(key string) *SequenceEncoder {
	n := &arrayNode{}
	k.node.set(key, n)
	return &SequenceEncoder{state: k.state, node: n, path: childSegs(k.path, keySegment(key))}
}

// Super returns a SuperEncoder committing into the conventional "super" key.
func (k *KeyedEncoder) Super() *SuperEncoder {
	return k.SuperForKey("super")
}

// SuperForKey returns a SuperEncoder committing into the given key when
// closed.
func (k *KeyedEncoder) SuperForKey(key string) *SuperEncoder {
	obj := k.node
	return &SuperEncoder{
		EncodeState: EncodeState{
			opts: k.state.opts,
			path: childSegs(k.path, keySegment(key)),
		},
		commit: func(n node) { obj.set(key, n) },
	}
}

// SequenceEncoder appends elements to one sequence container.
type SequenceEncoder struct {
	state *EncodeState
	node  *arrayNode
	path  []segment
}

// Len returns the number of elements appended so far.
func (q *SequenceEncoder) Len() int { return len(q.node.elems) }

func (q *SequenceEncoder) append(n node) {
	q.node.elems = append(q.node.elems, n)
}

// AppendNull appends a JSON null.
func (q *SequenceEncoder) AppendNull() {
	q.append(scalarNode{jsontree.Null{}})
}

// AppendBool appends a boolean.
func (q *SequenceEncoder) AppendBool(v bool) {
	q.append(scalarNode{jsontree.Bool(v)})
}

// AppendString appends a string.
func (q *SequenceEncoder) AppendString(v string) {
	q.append(scalarNode{jsontree.String(v)})
}

// AppendInt appends an integer.
func (q *SequenceEncoder) AppendInt(v int64) {
	q.append(scalarNode{jsontree.Int(v)})
}

// AppendUint appends an unsigned integer.
func (q *SequenceEncoder) AppendUint(v uint64) {
	q.append(scalarNode{jsontree.Uint(v)})
}

// AppendFloat appends a floating-point value, applying the non-finite
// strategy.
func (q *SequenceEncoder) AppendFloat(v float64) error {
	boxed, err := boxFloat(v, q.state.opts.NonFinite, childPath(q.path, indexSegment(len(q.node.elems))))
	if err != nil {
		return err
	}
	q.append(scalarNode{boxed})
	return nil
}

// AppendTime appends a timestamp, applying the time format strategy.
func (q *SequenceEncoder) AppendTime(t time.Time) error {
	n, err := q.state.boxTime(t, childSegs(q.path, indexSegment(len(q.node.elems))))
	if err != nil {
		return err
	}
	q.append(n)
	return nil
}

// AppendBytes appends binary data, applying the bytes format strategy.
func (q *SequenceEncoder) AppendBytes(p []byte) error {
	n, err := q.state.boxBytes(p, childSegs(q.path, indexSegment(len(q.node.elems))))
	if err != nil {
		return err
	}
	q.append(n)
	return nil
}

// AppendValue encodes an arbitrary value as the next element. A nil
// Marshaler appends a JSON null.
func (q *SequenceEncoder) AppendValue(m Marshaler) error {
	if m == nil {
		q.AppendNull()
		return nil
	}
	n, err := q.state.boxMarshaler(m, childSegs(q.path, indexSegment(len(q.node.elems))))
	if err != nil {
		return err
	}
	q.append(n)
	return nil
}

// Keyed appends a nested keyed container and returns a view over it.
func (q *SequenceEncoder) Keyed() *KeyedEncoder {
	n := newObjectNode()
	path := childSegs(q.path, indexSegment(len(q.node.elems)))
	q.append(n)
	return &KeyedEncoder{state: q.state, node: n, path: path}
}

// Sequence appends a nested sequence container and returns a view over it.
func (q *SequenceEncoder) Sequence() *SequenceEncoder {
	n := &arrayNode{}
	path := childSegs(q.path, indexSegment(len(q.node.elems)))
	q.append(n)
	return &SequenceEncoder{state: q.state, node: n, path: path}
}

// Super reserves the next element slot and returns a SuperEncoder committing
// into it when closed.
func (q *SequenceEncoder) Super() *SuperEncoder {
	arr := q.node
	idx := len(arr.elems)
	q.append(scalarNode{jsontree.Null{}}) // placeholder until Close
	return &SuperEncoder{
		EncodeState: EncodeState{
			opts: q.state.opts,
			path: childSegs(q.path, indexSegment(idx)),
		},
		commit: func(n node) { arr.elems[idx] = n },
	}
}

// SingleEncoder writes exactly one value at the current nesting level.
type SingleEncoder struct {
	state *EncodeState
	path  []segment
}

// Null writes a JSON null.
func (e *SingleEncoder) Null() {
	e.state.push(scalarNode{jsontree.Null{}})
}

// Bool writes a boolean.
func (e *SingleEncoder) Bool(v bool) {
	e.state.push(scalarNode{jsontree.Bool(v)})
}

// String writes a string.
func (e *SingleEncoder) String(v string) {
	e.state.push(scalarNode{jsontree.String(v)})
}

// Int writes an integer.
func (e *SingleEncoder) Int(v int64) {
	e.state.push(scalarNode{jsontree.Int(v)})
}

// Uint writes an unsigned integer.
func (e *SingleEncoder) Uint(v uint64) {
	e.state.push(scalarNode{jsontree.Uint(v)})
}

// Float writes a floating-point value, applying the non-finite strategy.
func (e *SingleEncoder) Float(v float64) error {
	boxed, err := boxFloat(v, e.state.opts.NonFinite, formatPath(e.path))
	if err != nil {
		return err
	}
	e.state.push(scalarNode{boxed})
	return nil
}

// Time writes a timestamp, applying the time format strategy.
func (e *SingleEncoder) Time(t time.Time) error {
	n, err := e.state.boxTime(t, e.path)
	if err != nil {
		return err
	}
	e.state.push(n)
	return nil
}

// Bytes writes binary data, applying the bytes format strategy.
func (e *SingleEncoder) Bytes(p []byte) error {
	n, err := e.state.boxBytes(p, e.path)
	if err != nil {
		return err
	}
	e.state.push(n)
	return nil
}

// Value encodes an arbitrary value into the slot.
func (e *SingleEncoder) Value(m Marshaler) error {
	if m == nil {
		e.Null()
		return nil
	}
	n, err := e.state.boxMarshaler(m, e.path)
	if err != nil {
		return err
	}
	e.state.push(n)
	return nil
}
