package jsontree

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Encode serializes a Value to compact JSON text with no inserted
// whitespace.
func Encode(v Value) []byte {
	e := encoder{}
	e.value(v)
	return e.buf.Bytes()
}

// EncodeIndent serializes a Value to pretty-printed JSON text. Each element
// begins on a new line prefixed with prefix and one copy of indent per
// nesting level, in the manner of encoding/json.MarshalIndent.
func EncodeIndent(v Value, prefix, indent string) []byte {
	e := encoder{prefix: prefix, indent: indent, pretty: true}
	e.value(v)
	return e.buf.Bytes()
}

type encoder struct {
	buf    bytes.Buffer
	prefix string
	indent string
	pretty bool
	depth  int
}

func (e *encoder) value(v Value) {
	switch t := v.(type) {
	case Null:
		e.buf.WriteString("null")
	case Bool:
		if t {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case Number:
		e.buf.WriteString(string(t))
	case String:
		writeEscapedString(&e.buf, string(t))
	case Array:
		e.array(t)
	case Object:
		e.object(t)
	default:
		panic(fmt.Sprintf("jsontree: cannot encode %T", v))
	}
}

func (e *encoder) array(arr Array) {
	if len(arr) == 0 {
		e.buf.WriteString("[]")
		return
	}
	e.buf.WriteByte('[')
	e.depth++
	for i, v := range arr {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline()
		e.value(v)
	}
	e.depth--
	e.newline()
	e.buf.WriteByte(']')
}

func (e *encoder) object(obj Object) {
	if obj.Len() == 0 {
		e.buf.WriteString("{}")
		return
	}
	e.buf.WriteByte('{')
	e.depth++
	first := true
	for key, v := range obj.Pairs() {
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		e.newline()
		writeEscapedString(&e.buf, key)
		e.buf.WriteByte(':')
		if e.pretty {
			e.buf.WriteByte(' ')
		}
		e.value(v)
	}
	e.depth--
	e.newline()
	e.buf.WriteByte('}')
}

func (e *encoder) newline() {
	if !e.pretty {
		return
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(e.prefix)
	e.buf.WriteString(strings.Repeat(e.indent, e.depth))
}

const hexDigits = "0123456789abcdef"

// writeEscapedString writes s as a quoted JSON string. Only the characters
// JSON requires escaping for are escaped; valid UTF-8 passes through and
// invalid bytes become U+FFFD, as encoding/json does.
func writeEscapedString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			buf.WriteString(s[start:i])
			switch c {
			case '"':
				buf.WriteString(`\"`)
			case '\\':
				buf.WriteString(`\\`)
			case '\n':
				buf.WriteString(`\n`)
			case '\r':
				buf.WriteString(`\r`)
			case '\t':
				buf.WriteString(`\t`)
			default:
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xf])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.WriteString(s[start:i])
			buf.WriteString(`�`)
			i++
			start = i
			continue
		}
		i += size
	}
	buf.WriteString(s[start:])
	buf.WriteByte('"')
}
