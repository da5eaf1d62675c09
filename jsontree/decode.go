package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// SyntaxError reports input that does not parse as a single JSON value.
// Offset is the byte offset at which the problem was detected.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse converts JSON text into a Value. The input must contain exactly one
// JSON value; empty input and trailing data are rejected. Object member
// order is preserved and numbers keep their literal text.
func Parse(p []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return nil, wrapSyntax(dec, err)
	}

	if dec.More() {
		return nil, &SyntaxError{
			Offset: dec.InputOffset(),
			Err:    errors.New("trailing data after top-level value"),
		}
	}
	return v, nil
}

// ParseJSONC is Parse for JSON with comments and trailing commas. The input
// is converted to strict JSON before parsing; reported offsets refer to the
// converted text.
func ParseJSONC(p []byte) (Value, error) {
	return Parse(jsonc.ToJSON(p))
}

func wrapSyntax(dec *json.Decoder, err error) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return &SyntaxError{Offset: syn.Offset, Err: err}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{Offset: dec.InputOffset(), Err: errors.New("unexpected end of input")}
	}
	return &SyntaxError{Offset: dec.InputOffset(), Err: err}
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unexpected token %T", tok)
	}
}

// parseObject consumes members up to and including the closing brace. The
// opening brace has already been consumed. A repeated key replaces the
// earlier value in place.
func parseObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %T", tok)
		}

		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // the '}'
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (Value, error) {
	var arr Array
	for dec.More() {
		v, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // the ']'
		return nil, err
	}
	if arr == nil {
		arr = Array{}
	}
	return arr, nil
}
