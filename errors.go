package typedjson

import (
	"errors"
	"fmt"

	"github.com/typedjson/typedjson/jsontree"
)

// ErrNoValueEncoded is returned by Encode when the value's decomposition
// produced no container at all.
var ErrNoValueEncoded = errors.New("typedjson: value encoded nothing")

// TopLevelError is returned by Encode when the value produced a bare scalar
// fragment. The codec requires an object or array at the top level.
type TopLevelError struct {
	Kind jsontree.Kind
}

func (e *TopLevelError) Error() string {
	return fmt.Sprintf("typedjson: top-level value must be an object or array, got %s fragment", e.Kind)
}

// TypeMismatchError reports a value whose kind does not match the kind the
// caller requested.
type TypeMismatchError struct {
	Expected jsontree.Kind
	Actual   jsontree.Kind
	Path     string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("typedjson: %s: expected %s, got %s", pathLabel(e.Path), e.Expected, e.Actual)
}

// ValueNotFoundError reports a JSON null (or an exhausted sequence) where a
// value of the given kind was required.
type ValueNotFoundError struct {
	Expected jsontree.Kind
	Path     string
}

func (e *ValueNotFoundError) Error() string {
	if e.Expected == jsontree.KindNull {
		return fmt.Sprintf("typedjson: %s: expected a value, found none", pathLabel(e.Path))
	}
	return fmt.Sprintf("typedjson: %s: expected %s, found no value", pathLabel(e.Path), e.Expected)
}

// KeyNotFoundError reports an absent object member.
type KeyNotFoundError struct {
	Key  string
	Path string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("typedjson: %s: no value for key %q", pathLabel(e.Path), e.Key)
}

// DataCorruptedError reports a value that is present and correctly shaped
// but semantically invalid: a number that does not fit the requested integer
// type, malformed base64, an unparsable timestamp.
type DataCorruptedError struct {
	Path   string
	Reason string
}

func (e *DataCorruptedError) Error() string {
	return fmt.Sprintf("typedjson: %s: %s", pathLabel(e.Path), e.Reason)
}

// NonFiniteNumberError reports a NaN or infinite float encountered while the
// non-finite strategy rejects them.
type NonFiniteNumberError struct {
	Value float64
	Path  string
}

func (e *NonFiniteNumberError) Error() string {
	return fmt.Sprintf("typedjson: %s: cannot encode %v; configure a NonFiniteNumbers strategy", pathLabel(e.Path), e.Value)
}

func pathLabel(path string) string {
	if path == "" {
		return "at top level"
	}
	return "at " + path
}
