package typedjson

import (
	"encoding/base64"
	"math"
	"time"

	"github.com/typedjson/typedjson/jsontree"
	"github.com/typedjson/typedjson/timestamp"
)

// boxFloat converts a float64 to a generic JSON value. Finite values become
// numbers; non-finite values are rejected or mapped to sentinel strings per
// the configured strategy.
func boxFloat(v float64, nf NonFiniteNumbers, path string) (jsontree.Value, error) {
	if !math.IsInf(v, 0) && !math.IsNaN(v) {
		return jsontree.Float(v), nil
	}
	if !nf.Allow {
		return nil, &NonFiniteNumberError{Value: v, Path: path}
	}
	switch {
	case math.IsInf(v, 1):
		return jsontree.String(nf.PosInf), nil
	case math.IsInf(v, -1):
		return jsontree.String(nf.NegInf), nil
	default:
		return jsontree.String(nf.NaN), nil
	}
}

// boxTime converts a timestamp per the configured time format.
func (s *EncodeState) boxTime(t time.Time, path []segment) (node, error) {
	switch s.opts.TimeFormat {
	case TimeFormatISO8601:
		return scalarNode{jsontree.String(timestamp.FormatISO8601(t))}, nil
	case TimeFormatUnixSeconds:
		return scalarNode{jsontree.Float(timestamp.FormatEpochSeconds(t))}, nil
	case TimeFormatUnixMilliseconds:
		return scalarNode{jsontree.Float(timestamp.FormatEpochMilliseconds(t))}, nil
	case TimeFormatDeferred:
		return scalarNode{jsontree.String(t.Format(time.RFC3339Nano))}, nil
	case TimeFormatLayout:
		return scalarNode{jsontree.String(t.Format(s.opts.TimeLayout))}, nil
	case TimeFormatCustom:
		if s.opts.EncodeTime == nil {
			panic("typedjson: TimeFormatCustom requires the EncodeTime option")
		}
		return s.capture(path, func() error { return s.opts.EncodeTime(t, s) })
	default:
		panic("typedjson: unknown TimeFormat")
	}
}

// boxBytes converts binary data per the configured bytes format.
func (s *EncodeState) boxBytes(p []byte, path []segment) (node, error) {
	switch s.opts.BytesFormat {
	case BytesFormatBase64:
		return scalarNode{jsontree.String(base64.StdEncoding.EncodeToString(p))}, nil
	case BytesFormatCustom:
		if s.opts.EncodeBytes == nil {
			panic("typedjson: BytesFormatCustom requires the EncodeBytes option")
		}
		return s.capture(path, func() error { return s.opts.EncodeBytes(p, s) })
	default:
		panic("typedjson: unknown BytesFormat")
	}
}
