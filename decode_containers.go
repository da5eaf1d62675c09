package typedjson

import (
	"math"
	"time"

	"github.com/typedjson/typedjson/jsontree"
)

// KeyedDecoder reads named fields from one keyed container. Strict accessors
// fail with *KeyNotFoundError for an absent member and *ValueNotFoundError
// for a JSON null; use Contains and IsNull to drive optional fields.
type KeyedDecoder struct {
	state *DecodeState
	obj   jsontree.Object
	path  []segment
}

// Contains reports whether the container has a member under key.
func (k *KeyedDecoder) Contains(key string) bool {
	_, ok := k.obj.Get(key)
	return ok
}

// IsNull reports whether the member under key is present and null.
func (k *KeyedDecoder) IsNull(key string) bool {
	v, ok := k.obj.Get(key)
	return ok && v.Kind() == jsontree.KindNull
}

// Keys returns the member keys in document order.
func (k *KeyedDecoder) Keys() []string { return k.obj.Keys() }

// Len returns the number of members.
func (k *KeyedDecoder) Len() int { return k.obj.Len() }

func (k *KeyedDecoder) get(key string, want jsontree.Kind) (jsontree.Value, error) {
	v, ok := k.obj.Get(key)
	if !ok {
		return nil, &KeyNotFoundError{Key: key, Path: formatPath(k.path)}
	}
	if v.Kind() == jsontree.KindNull {
		return nil, &ValueNotFoundError{Expected: want, Path: childPath(k.path, keySegment(key))}
	}
	return v, nil
}

// Bool reads a boolean member.
func (k *KeyedDecoder) Bool(key string) (bool, error) {
	v, err := k.get(key, jsontree.KindBool)
	if err != nil {
		return false, err
	}
	return unboxBool(v, childPath(k.path, keySegment(key)))
}

// String reads a string member.
func (k *KeyedDecoder) String(key string) (string, error) {
	v, err := k.get(key, jsontree.KindString)
	if err != nil {
		return "", err
	}
	return unboxString(v, childPath(k.path, keySegment(key)))
}

// Int reads an integer member.
func (k *KeyedDecoder) Int(key string) (int64, error) {
	v, err := k.get(key, jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxInt64(v, childPath(k.path, keySegment(key)))
}

// Int8 reads an integer member, failing with *DataCorruptedError if the
// value does not fit.
func (k *KeyedDecoder) Int8(key string) (int8, error) {
	v, err := k.get(key, jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	i, err := unboxIntN(v, childPath(k.path, keySegment(key)), math.MinInt8, math.MaxInt8)
	return int8(i), err
}

// Int16 reads an integer member, failing with *DataCorruptedError if the
// value does not fit.
func (k *KeyedDecoder) Int16(key string) (int16, error) {
	v, err := k.get(key, jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	i, err := unboxIntN(v, childPath(k.path, keySegment(key)), math.MinInt16, math.MaxInt16)
	return int16(i), err
}

// Int32 reads an integer member, failing with *DataCorruptedError if the
// value does not fit.
func (k *KeyedDecoder) Int32(key string) (int32, error) {
	v, err := k.get(key, jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	i, err := unboxIntN(v, childPath(k.path, keySegment(key)), math.MinInt32, math.MaxInt32)
	return int32(i), err
}

// Uint reads an unsigned integer member.
func (k *KeyedDecoder) Uint(key string) (uint64, error) {
	v, err := k.get(key, jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxUint64(v, childPath(k.path, keySegment(key)))
}

// Float reads a floating-point member, applying the non-finite strategy.
func (k *KeyedDecoder) Float(key string) (float64, error) {
	v, err := k.get(key, jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxFloat(v, k.state.opts.NonFinite, childPath(k.path, keySegment(key)))
}

// Time reads a timestamp member, applying the time format strategy.
func (k *KeyedDecoder) Time(key string) (time.Time, error) {
	v, err := k.get(key, expectedTimeKind(k.state.opts.TimeFormat))
	if err != nil {
		return time.Time{}, err
	}
	return k.state.unboxTime(v, childSegs(k.path, keySegment(key)))
}

// Bytes reads a binary member, applying the bytes format strategy.
func (k *KeyedDecoder) Bytes(key string) ([]byte, error) {
	v, err := k.get(key, jsontree.KindString)
	if err != nil {
		return nil, err
	}
	return k.state.unboxBytes(v, childSegs(k.path, keySegment(key)))
}

// Value decodes the member under key into um.
func (k *KeyedDecoder) Value(key string, um Unmarshaler) error {
	v, ok := k.obj.Get(key)
	if !ok {
		return &KeyNotFoundError{Key: key, Path: formatPath(k.path)}
	}
	return k.state.unmarshalValue(v, childSegs(k.path, keySegment(key)), um)
}

// Keyed positions a nested keyed container stored under key.
func (k *KeyedDecoder) Keyed(key string) (*KeyedDecoder, error) {
	v, err := k.get(key, jsontree.KindObject)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(jsontree.Object)
	if !ok {
		return nil, &TypeMismatchError{Expected: jsontree.KindObject, Actual: v.Kind(), Path: childPath(k.path, keySegment(key))}
	}
	return &KeyedDecoder{state: k.state, obj: obj, path: childSegs(k.path, keySegment(key))}, nil
}

// Sequence positions a nested sequence container stored under key.
func (k *KeyedDecoder) Sequence(key string) (*SequenceDecoder, error) {
	v, err := k.get(key, jsontree.KindArray)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(jsontree.Array)
	if !ok {
		return nil, &TypeMismatchError{Expected: jsontree.KindArray, Actual: v.Kind(), Path: childPath(k.path, keySegment(key))}
	}
	return &SequenceDecoder{state: k.state, arr: arr, path: childSegs(k.path, keySegment(key))}, nil
}

// Super returns a decode state positioned at the conventional "super"
// member, for reconstructing an enclosing type's representation. An absent
// member reads as null.
func (k *KeyedDecoder) Super() *DecodeState {
	return k.SuperForKey("super")
}

// SuperForKey is Super for an explicit key.
func (k *KeyedDecoder) SuperForKey(key string) *DecodeState {
	v, ok := k.obj.Get(key)
	if !ok {
		v = jsontree.Null{}
	}
	return k.state.super(v, childSegs(k.path, keySegment(key)))
}

// SequenceDecoder reads elements from one sequence container through an
// advancing cursor. More reports whether elements remain; accessors advance
// the cursor only on success.
type SequenceDecoder struct {
	state *DecodeState
	arr   jsontree.Array
	path  []segment
	cur   int
}

// Len returns the element count of the underlying sequence.
func (q *SequenceDecoder) Len() int { return len(q.arr) }

// Index returns the cursor position.
func (q *SequenceDecoder) Index() int { return q.cur }

// More reports whether elements remain to be decoded.
func (q *SequenceDecoder) More() bool { return q.cur < len(q.arr) }

// IsNull reports whether the element at the cursor is a JSON null. It does
// not advance the cursor.
func (q *SequenceDecoder) IsNull() bool {
	return q.More() && q.arr[q.cur].Kind() == jsontree.KindNull
}

// SkipNull advances past a null element, reporting whether it did.
func (q *SequenceDecoder) SkipNull() bool {
	if q.IsNull() {
		q.cur++
		return true
	}
	return false
}

// next returns the element at the cursor and advances. The cursor does not
// advance past an exhausted sequence or a null element.
func (q *SequenceDecoder) next(want jsontree.Kind) (jsontree.Value, error) {
	if !q.More() {
		return nil, &ValueNotFoundError{Expected: want, Path: childPath(q.path, indexSegment(q.cur))}
	}
	v := q.arr[q.cur]
	if v.Kind() == jsontree.KindNull {
		return nil, &ValueNotFoundError{Expected: want, Path: childPath(q.path, indexSegment(q.cur))}
	}
	q.cur++
	return v, nil
}

// Bool decodes the next element as a boolean.
func (q *SequenceDecoder) Bool() (bool, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindBool)
	if err != nil {
		return false, err
	}
	return unboxBool(v, childPath(q.path, indexSegment(idx)))
}

// String decodes the next element as a string.
func (q *SequenceDecoder) String() (string, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindString)
	if err != nil {
		return "", err
	}
	return unboxString(v, childPath(q.path, indexSegment(idx)))
}

// Int decodes the next element as an integer.
func (q *SequenceDecoder) Int() (int64, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxInt64(v, childPath(q.path, indexSegment(idx)))
}

// Uint decodes the next element as an unsigned integer.
func (q *SequenceDecoder) Uint() (uint64, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxUint64(v, childPath(q.path, indexSegment(idx)))
}

// Float decodes the next element as a floating-point value, applying the
// non-finite strategy.
func (q *SequenceDecoder) Float() (float64, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxFloat(v, q.state.opts.NonFinite, childPath(q.path, indexSegment(idx)))
}

// Time decodes the next element as a timestamp, applying the time format
// strategy.
func (q *SequenceDecoder) Time() (time.Time, error) {
	idx := q.cur
	v, err := q.next(expectedTimeKind(q.state.opts.TimeFormat))
	if err != nil {
		return time.Time{}, err
	}
	return q.state.unboxTime(v, childSegs(q.path, indexSegment(idx)))
}

// Bytes decodes the next element as binary data, applying the bytes format
// strategy.
func (q *SequenceDecoder) Bytes() ([]byte, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindString)
	if err != nil {
		return nil, err
	}
	return q.state.unboxBytes(v, childSegs(q.path, indexSegment(idx)))
}

// Value decodes the next element into um.
func (q *SequenceDecoder) Value(um Unmarshaler) error {
	if !q.More() {
		return &ValueNotFoundError{Path: childPath(q.path, indexSegment(q.cur))}
	}
	idx := q.cur
	q.cur++
	return q.state.unmarshalValue(q.arr[idx], childSegs(q.path, indexSegment(idx)), um)
}

// Keyed positions the next element as a nested keyed container.
func (q *SequenceDecoder) Keyed() (*KeyedDecoder, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindObject)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(jsontree.Object)
	if !ok {
		q.cur = idx
		return nil, &TypeMismatchError{Expected: jsontree.KindObject, Actual: v.Kind(), Path: childPath(q.path, indexSegment(idx))}
	}
	return &KeyedDecoder{state: q.state, obj: obj, path: childSegs(q.path, indexSegment(idx))}, nil
}

// Sequence positions the next element as a nested sequence container.
func (q *SequenceDecoder) Sequence() (*SequenceDecoder, error) {
	idx := q.cur
	v, err := q.next(jsontree.KindArray)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(jsontree.Array)
	if !ok {
		q.cur = idx
		return nil, &TypeMismatchError{Expected: jsontree.KindArray, Actual: v.Kind(), Path: childPath(q.path, indexSegment(idx))}
	}
	return &SequenceDecoder{state: q.state, arr: arr, path: childSegs(q.path, indexSegment(idx))}, nil
}

// Super returns a decode state positioned at the next element, for
// reconstructing an enclosing type's representation.
func (q *SequenceDecoder) Super() (*DecodeState, error) {
	if !q.More() {
		return nil, &ValueNotFoundError{Path: childPath(q.path, indexSegment(q.cur))}
	}
	idx := q.cur
	q.cur++
	return q.state.super(q.arr[idx], childSegs(q.path, indexSegment(idx))), nil
}

// SingleDecoder reads exactly one scalar at the current nesting level.
type SingleDecoder struct {
	state *DecodeState
	path  []segment
}

// IsNull reports whether the value is a JSON null.
func (d *SingleDecoder) IsNull() bool {
	return d.state.top().Kind() == jsontree.KindNull
}

func (d *SingleDecoder) value(want jsontree.Kind) (jsontree.Value, error) {
	v := d.state.top()
	switch v.Kind() {
	case jsontree.KindObject, jsontree.KindArray:
		return nil, &TypeMismatchError{Expected: want, Actual: v.Kind(), Path: formatPath(d.path)}
	case jsontree.KindNull:
		return nil, &ValueNotFoundError{Expected: want, Path: formatPath(d.path)}
	}
	return v, nil
}

// Bool reads the value as a boolean.
func (d *SingleDecoder) Bool() (bool, error) {
	v, err := d.value(jsontree.KindBool)
	if err != nil {
		return false, err
	}
	return unboxBool(v, formatPath(d.path))
}

// String reads the value as a string.
func (d *SingleDecoder) String() (string, error) {
	v, err := d.value(jsontree.KindString)
	if err != nil {
		return "", err
	}
	return unboxString(v, formatPath(d.path))
}

// Int reads the value as an integer.
func (d *SingleDecoder) Int() (int64, error) {
	v, err := d.value(jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxInt64(v, formatPath(d.path))
}

// Uint reads the value as an unsigned integer.
func (d *SingleDecoder) Uint() (uint64, error) {
	v, err := d.value(jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxUint64(v, formatPath(d.path))
}

// Float reads the value as a floating-point value, applying the non-finite
// strategy.
func (d *SingleDecoder) Float() (float64, error) {
	v, err := d.value(jsontree.KindNumber)
	if err != nil {
		return 0, err
	}
	return unboxFloat(v, d.state.opts.NonFinite, formatPath(d.path))
}

// Time reads the value as a timestamp, applying the time format strategy.
func (d *SingleDecoder) Time() (time.Time, error) {
	v, err := d.value(expectedTimeKind(d.state.opts.TimeFormat))
	if err != nil {
		return time.Time{}, err
	}
	return d.state.unboxTime(v, d.path)
}

// Bytes reads the value as binary data, applying the bytes format strategy.
func (d *SingleDecoder) Bytes() ([]byte, error) {
	v, err := d.value(jsontree.KindString)
	if err != nil {
		return nil, err
	}
	return d.state.unboxBytes(v, d.path)
}
