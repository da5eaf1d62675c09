package typedjson

import (
	"encoding/base64"
	"fmt"
	"math"
	"time"

	"github.com/typedjson/typedjson/jsontree"
	"github.com/typedjson/typedjson/timestamp"
)

func unboxBool(v jsontree.Value, path string) (bool, error) {
	b, ok := v.(jsontree.Bool)
	if !ok {
		return false, &TypeMismatchError{Expected: jsontree.KindBool, Actual: v.Kind(), Path: path}
	}
	return bool(b), nil
}

func unboxString(v jsontree.Value, path string) (string, error) {
	s, ok := v.(jsontree.String)
	if !ok {
		return "", &TypeMismatchError{Expected: jsontree.KindString, Actual: v.Kind(), Path: path}
	}
	return string(s), nil
}

func unboxNumber(v jsontree.Value, path string) (jsontree.Number, error) {
	n, ok := v.(jsontree.Number)
	if !ok {
		return "", &TypeMismatchError{Expected: jsontree.KindNumber, Actual: v.Kind(), Path: path}
	}
	return n, nil
}

// unboxInt64 converts a number to int64. Literals like "3.0" that represent
// an exact integer are accepted; fractional or out-of-range values fail with
// *DataCorruptedError.
func unboxInt64(v jsontree.Value, path string) (int64, error) {
	n, err := unboxNumber(v, path)
	if err != nil {
		return 0, err
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("invalid number literal %q", string(n))}
	}
	if f != math.Trunc(f) {
		return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("number %s is not an integer", string(n))}
	}
	// 2^63 is exactly representable as a float64; values at or beyond it do
	// not fit in int64.
	if f >= 1<<63 || f < -(1<<63) {
		return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("number %s does not fit in int64", string(n))}
	}
	return int64(f), nil
}

// unboxIntN narrows to a fixed-width integer, failing with
// *DataCorruptedError when the value exceeds [min, max].
func unboxIntN(v jsontree.Value, path string, min, max int64) (int64, error) {
	i, err := unboxInt64(v, path)
	if err != nil {
		return 0, err
	}
	if i < min || i > max {
		return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("number %d exceeds range [%d, %d]", i, min, max)}
	}
	return i, nil
}

func unboxUint64(v jsontree.Value, path string) (uint64, error) {
	n, err := unboxNumber(v, path)
	if err != nil {
		return 0, err
	}
	if u, err := n.Uint64(); err == nil {
		return u, nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("invalid number literal %q", string(n))}
	}
	if f != math.Trunc(f) {
		return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("number %s is not an integer", string(n))}
	}
	if f < 0 || f >= 1<<64 {
		return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("number %s does not fit in uint64", string(n))}
	}
	return uint64(f), nil
}

// unboxFloat converts a number to float64. Strings are accepted only when
// they match a configured non-finite sentinel.
func unboxFloat(v jsontree.Value, nf NonFiniteNumbers, path string) (float64, error) {
	switch t := v.(type) {
	case jsontree.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("invalid number literal %q", string(t))}
		}
		return f, nil
	case jsontree.String:
		if nf.Allow {
			switch string(t) {
			case nf.PosInf:
				return math.Inf(1), nil
			case nf.NegInf:
				return math.Inf(-1), nil
			case nf.NaN:
				return math.NaN(), nil
			}
			return 0, &DataCorruptedError{Path: path, Reason: fmt.Sprintf("string %q is not a recognized non-finite sentinel", string(t))}
		}
		return 0, &TypeMismatchError{Expected: jsontree.KindNumber, Actual: v.Kind(), Path: path}
	default:
		return 0, &TypeMismatchError{Expected: jsontree.KindNumber, Actual: v.Kind(), Path: path}
	}
}

// expectedTimeKind returns the JSON kind the configured time format reads
// from, for error reporting on missing or null members.
func expectedTimeKind(f TimeFormat) jsontree.Kind {
	switch f {
	case TimeFormatUnixSeconds, TimeFormatUnixMilliseconds:
		return jsontree.KindNumber
	default:
		return jsontree.KindString
	}
}

// unboxTime converts a value to a timestamp per the configured time format.
func (s *DecodeState) unboxTime(v jsontree.Value, path []segment) (time.Time, error) {
	label := formatPath(path)
	switch s.opts.TimeFormat {
	case TimeFormatISO8601:
		str, err := unboxString(v, label)
		if err != nil {
			return time.Time{}, err
		}
		t, err := timestamp.ParseISO8601(str)
		if err != nil {
			return time.Time{}, &DataCorruptedError{Path: label, Reason: fmt.Sprintf("invalid ISO 8601 timestamp %q", str)}
		}
		return t, nil
	case TimeFormatUnixSeconds:
		f, err := unboxFloat(v, s.opts.NonFinite, label)
		if err != nil {
			return time.Time{}, err
		}
		return timestamp.ParseEpochSeconds(f), nil
	case TimeFormatUnixMilliseconds:
		f, err := unboxFloat(v, s.opts.NonFinite, label)
		if err != nil {
			return time.Time{}, err
		}
		return timestamp.ParseEpochMilliseconds(f), nil
	case TimeFormatDeferred:
		str, err := unboxString(v, label)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse(time.RFC3339Nano, str)
		if err != nil {
			return time.Time{}, &DataCorruptedError{Path: label, Reason: fmt.Sprintf("invalid RFC 3339 timestamp %q", str)}
		}
		return t, nil
	case TimeFormatLayout:
		str, err := unboxString(v, label)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse(s.opts.TimeLayout, str)
		if err != nil {
			return time.Time{}, &DataCorruptedError{Path: label, Reason: fmt.Sprintf("timestamp %q does not match layout %q", str, s.opts.TimeLayout)}
		}
		return t, nil
	case TimeFormatCustom:
		if s.opts.DecodeTime == nil {
			panic("typedjson: TimeFormatCustom requires the DecodeTime option")
		}
		var t time.Time
		err := s.withValue(v, path, func() error {
			var err error
			t, err = s.opts.DecodeTime(s)
			return err
		})
		return t, err
	default:
		panic("typedjson: unknown TimeFormat")
	}
}

// unboxBytes converts a value to binary data per the configured bytes
// format.
func (s *DecodeState) unboxBytes(v jsontree.Value, path []segment) ([]byte, error) {
	label := formatPath(path)
	switch s.opts.BytesFormat {
	case BytesFormatBase64:
		str, err := unboxString(v, label)
		if err != nil {
			return nil, err
		}
		p, err := base64.StdEncoding.DecodeString(str)
		if err != nil {
			return nil, &DataCorruptedError{Path: label, Reason: fmt.Sprintf("invalid base64: %v", err)}
		}
		return p, nil
	case BytesFormatCustom:
		if s.opts.DecodeBytes == nil {
			panic("typedjson: BytesFormatCustom requires the DecodeBytes option")
		}
		var p []byte
		err := s.withValue(v, path, func() error {
			var err error
			p, err = s.opts.DecodeBytes(s)
			return err
		})
		return p, err
	default:
		panic("typedjson: unknown BytesFormat")
	}
}
