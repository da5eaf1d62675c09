package jsontree

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a JSON object whose members keep their insertion order. The zero
// value is not usable; construct with NewObject.
type Object struct {
	om *orderedmap.OrderedMap[string, Value]
}

// NewObject returns an empty Object.
func NewObject() Object {
	return Object{om: orderedmap.New[string, Value]()}
}

// Kind returns KindObject.
func (Object) Kind() Kind { return KindObject }

func (Object) sealed() {}

// Get returns the member stored under key, and whether it was present.
func (o Object) Get(key string) (Value, bool) {
	return o.om.Get(key)
}

// Set stores a member under key. Re-setting an existing key replaces the
// value but keeps the key's original position.
func (o Object) Set(key string, v Value) {
	o.om.Set(key, v)
}

// Delete removes the member stored under key, if any.
func (o Object) Delete(key string) {
	o.om.Delete(key)
}

// Len returns the number of members.
func (o Object) Len() int {
	return o.om.Len()
}

// Keys returns the member keys in insertion order.
func (o Object) Keys() []string {
	keys := make([]string, 0, o.om.Len())
	for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Pairs iterates the members in insertion order.
func (o Object) Pairs() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}
