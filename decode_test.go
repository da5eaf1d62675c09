package typedjson_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/typedjson/typedjson"
)

func decodeKeyed(t *testing.T, doc string, fn func(*typedjson.KeyedDecoder) error) error {
	t.Helper()
	return typedjson.Unmarshal([]byte(doc), unmarshalerFunc(func(s *typedjson.DecodeState) error {
		obj, err := s.Keyed()
		if err != nil {
			return err
		}
		return fn(obj)
	}))
}

func TestDecode_IntegerExactness(t *testing.T) {
	cases := map[string]struct {
		doc     string
		expect  int64
		corrupt bool
	}{
		"plain integer":  {doc: `{"n":3}`, expect: 3},
		"integral float": {doc: `{"n":3.0}`, expect: 3},
		"exponent form":  {doc: `{"n":3e2}`, expect: 300},
		"negative":       {doc: `{"n":-12}`, expect: -12},
		"fractional":     {doc: `{"n":3.5}`, corrupt: true},
		"tiny fraction":  {doc: `{"n":3.0000001}`, corrupt: true},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			var got int64
			err := decodeKeyed(t, tt.doc, func(obj *typedjson.KeyedDecoder) error {
				var err error
				got, err = obj.Int("n")
				return err
			})
			if tt.corrupt {
				var dce *typedjson.DataCorruptedError
				if !errors.As(err, &dce) {
					t.Fatalf("expected DataCorruptedError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if e, a := tt.expect, got; e != a {
				t.Errorf("expected %d, got %d", e, a)
			}
		})
	}
}

func TestDecode_FixedWidthRanges(t *testing.T) {
	read32 := func(obj *typedjson.KeyedDecoder) error {
		_, err := obj.Int32("n")
		return err
	}
	read8 := func(obj *typedjson.KeyedDecoder) error {
		_, err := obj.Int8("n")
		return err
	}
	readUint := func(obj *typedjson.KeyedDecoder) error {
		_, err := obj.Uint("n")
		return err
	}

	cases := map[string]struct {
		doc  string
		read func(*typedjson.KeyedDecoder) error
		ok   bool
	}{
		"int32 max":       {doc: `{"n":2147483647}`, read: read32, ok: true},
		"int32 overflow":  {doc: `{"n":2147483648}`, read: read32},
		"int32 underflow": {doc: `{"n":-2147483649}`, read: read32},
		"int8 max":        {doc: `{"n":127}`, read: read8, ok: true},
		"int8 overflow":   {doc: `{"n":128}`, read: read8},
		"uint negative":   {doc: `{"n":-1}`, read: readUint},
		"uint max":        {doc: `{"n":18446744073709551615}`, read: readUint, ok: true},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			err := decodeKeyed(t, tt.doc, tt.read)
			if tt.ok {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var dce *typedjson.DataCorruptedError
			if !errors.As(err, &dce) {
				t.Fatalf("expected DataCorruptedError, got %v", err)
			}
		})
	}
}

func TestDecode_TypeMismatchPath(t *testing.T) {
	err := typedjson.Unmarshal([]byte(`{"items":[{"name":1}]}`), unmarshalerFunc(func(s *typedjson.DecodeState) error {
		obj, err := s.Keyed()
		if err != nil {
			return err
		}
		seq, err := obj.Sequence("items")
		if err != nil {
			return err
		}
		elem, err := seq.Keyed()
		if err != nil {
			return err
		}
		_, err = elem.String("name")
		return err
	}))

	var tme *typedjson.TypeMismatchError
	if !errors.As(err, &tme) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if e, a := "items[0].name", tme.Path; e != a {
		t.Errorf("expected path %q, got %q", e, a)
	}
	if !strings.Contains(tme.Error(), "items[0].name") {
		t.Errorf("expected path in message, got %q", tme.Error())
	}
}

func TestDecode_KeyNotFound(t *testing.T) {
	err := decodeKeyed(t, `{"present":1}`, func(obj *typedjson.KeyedDecoder) error {
		_, err := obj.Int("absent")
		return err
	})

	var knf *typedjson.KeyNotFoundError
	if !errors.As(err, &knf) {
		t.Fatalf("expected KeyNotFoundError, got %v", err)
	}
	if e, a := "absent", knf.Key; e != a {
		t.Errorf("expected key %q, got %q", e, a)
	}
	if !strings.Contains(knf.Error(), "at top level") {
		t.Errorf("expected top-level label, got %q", knf.Error())
	}
}

func TestDecode_NullMember(t *testing.T) {
	err := decodeKeyed(t, `{"n":null}`, func(obj *typedjson.KeyedDecoder) error {
		_, err := obj.Int("n")
		return err
	})

	var vnf *typedjson.ValueNotFoundError
	if !errors.As(err, &vnf) {
		t.Fatalf("expected ValueNotFoundError, got %v", err)
	}
	if e, a := "n", vnf.Path; e != a {
		t.Errorf("expected path %q, got %q", e, a)
	}
}

func TestDecode_OptionalMembers(t *testing.T) {
	err := decodeKeyed(t, `{"a":null}`, func(obj *typedjson.KeyedDecoder) error {
		if e, a := true, obj.Contains("a"); e != a {
			t.Errorf("expected Contains(a) %v, got %v", e, a)
		}
		if e, a := false, obj.Contains("b"); e != a {
			t.Errorf("expected Contains(b) %v, got %v", e, a)
		}
		if e, a := true, obj.IsNull("a"); e != a {
			t.Errorf("expected IsNull(a) %v, got %v", e, a)
		}
		if e, a := false, obj.IsNull("b"); e != a {
			t.Errorf("expected IsNull(b) %v, got %v", e, a)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestDecode_SequenceCursor(t *testing.T) {
	err := typedjson.Unmarshal([]byte(`[1,null,"x"]`), unmarshalerFunc(func(s *typedjson.DecodeState) error {
		seq, err := s.Sequence()
		if err != nil {
			return err
		}
		if e, a := 3, seq.Len(); e != a {
			t.Fatalf("expected len %d, got %d", e, a)
		}

		if _, err := seq.Int(); err != nil {
			return err
		}

		// A null element does not satisfy a scalar read and must not
		// consume the cursor.
		if _, err := seq.String(); err == nil {
			t.Fatalf("expected error reading null element")
		}
		if e, a := 1, seq.Index(); e != a {
			t.Fatalf("expected cursor %d after failed read, got %d", e, a)
		}
		if !seq.SkipNull() {
			t.Fatalf("expected SkipNull to advance")
		}

		v, err := seq.String()
		if err != nil {
			return err
		}
		if e, a := "x", v; e != a {
			t.Errorf("expected %q, got %q", e, a)
		}

		if seq.More() {
			t.Errorf("expected exhausted sequence")
		}
		_, err = seq.Int()
		var vnf *typedjson.ValueNotFoundError
		if !errors.As(err, &vnf) {
			t.Fatalf("expected ValueNotFoundError past the end, got %v", err)
		}
		if e, a := "[3]", vnf.Path; e != a {
			t.Errorf("expected path %q, got %q", e, a)
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestDecode_ContainerMismatch(t *testing.T) {
	err := typedjson.Unmarshal([]byte(`[1,2]`), unmarshalerFunc(func(s *typedjson.DecodeState) error {
		_, err := s.Keyed()
		return err
	}))

	var tme *typedjson.TypeMismatchError
	if !errors.As(err, &tme) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
}

func TestEncode_SecondContainerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	typedjson.Marshal(marshalerFunc(func(s *typedjson.EncodeState) error {
		s.Keyed()
		s.Sequence()
		return nil
	}))
}

func TestEncode_ContainerReRequest(t *testing.T) {
	b, err := typedjson.Marshal(marshalerFunc(func(s *typedjson.EncodeState) error {
		s.Keyed().SetInt("a", 1)
		s.Keyed().SetInt("b", 2)
		return nil
	}))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e, a := `{"a":1,"b":2}`, string(b); e != a {
		t.Errorf("expected %s, got %s", e, a)
	}
}
