package typedjson

import "time"

// TimeFormat selects how time.Time values are represented in JSON.
type TimeFormat int

const (
	// TimeFormatISO8601 represents times as ISO 8601 strings in UTC with
	// millisecond precision. This is the default.
	TimeFormatISO8601 TimeFormat = iota

	// TimeFormatUnixSeconds represents times as a JSON number of seconds
	// since the Unix epoch, with fractional precision.
	TimeFormatUnixSeconds

	// TimeFormatUnixMilliseconds represents times as a JSON number of
	// milliseconds since the Unix epoch.
	TimeFormatUnixMilliseconds

	// TimeFormatDeferred defers to the time's own representation, an
	// RFC 3339 string with nanosecond precision.
	TimeFormatDeferred

	// TimeFormatLayout represents times as strings using the TimeLayout
	// option as the layout.
	TimeFormatLayout

	// TimeFormatCustom delegates to the EncodeTime / DecodeTime options.
	TimeFormatCustom
)

// BytesFormat selects how []byte values are represented in JSON.
type BytesFormat int

const (
	// BytesFormatBase64 represents binary data as standard base64 strings.
	// This is the default.
	BytesFormatBase64 BytesFormat = iota

	// BytesFormatCustom delegates to the EncodeBytes / DecodeBytes options.
	BytesFormatCustom
)

// NonFiniteNumbers configures how NaN and infinite floats are handled. The
// zero value rejects them: encoding fails with *NonFiniteNumberError.
// NonFiniteAs maps them to sentinel strings instead.
type NonFiniteNumbers struct {
	Allow  bool
	PosInf string
	NegInf string
	NaN    string
}

// NonFiniteAs returns a strategy that encodes non-finite floats as the given
// sentinel strings and decodes those sentinels back.
func NonFiniteAs(posInf, negInf, nan string) NonFiniteNumbers {
	return NonFiniteNumbers{Allow: true, PosInf: posInf, NegInf: negInf, NaN: nan}
}

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	// TimeFormat selects the timestamp representation.
	TimeFormat TimeFormat

	// TimeLayout is the time layout used with TimeFormatLayout.
	TimeLayout string

	// EncodeTime is invoked for every timestamp under TimeFormatCustom. If
	// it produces no container, an empty object is substituted.
	EncodeTime func(time.Time, *EncodeState) error

	// BytesFormat selects the binary data representation.
	BytesFormat BytesFormat

	// EncodeBytes is invoked for every byte slice under BytesFormatCustom.
	// If it produces no container, an empty object is substituted.
	EncodeBytes func([]byte, *EncodeState) error

	// NonFinite selects the non-finite float strategy.
	NonFinite NonFiniteNumbers

	// Indent enables pretty-printed output using the given indent string.
	// Empty produces compact output.
	Indent string

	// Context is passed through unchanged to MarshalTyped implementations
	// via EncodeState.Context. The codec never reads it.
	Context map[string]any
}

// DecoderOptions configures a Decoder.
type DecoderOptions struct {
	// TimeFormat selects the timestamp representation to expect.
	TimeFormat TimeFormat

	// TimeLayout is the time layout used with TimeFormatLayout.
	TimeLayout string

	// DecodeTime is invoked for every timestamp under TimeFormatCustom.
	DecodeTime func(*DecodeState) (time.Time, error)

	// BytesFormat selects the binary data representation to expect.
	BytesFormat BytesFormat

	// DecodeBytes is invoked for every byte slice under BytesFormatCustom.
	DecodeBytes func(*DecodeState) ([]byte, error)

	// NonFinite selects the non-finite float strategy.
	NonFinite NonFiniteNumbers

	// AllowComments accepts JSON with comments and trailing commas.
	AllowComments bool

	// Context is passed through unchanged to UnmarshalTyped implementations
	// via DecodeState.Context. The codec never reads it.
	Context map[string]any
}
