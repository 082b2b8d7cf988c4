package manifest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeOptions controls how a Value is serialized.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level. Zero means compact
	// output with no trailing newline.
	Indent int
	// ASCII escapes every non-ASCII rune as \uXXXX.
	ASCII bool
}

// Validate reports options Encode would reject.
func (o EncodeOptions) Validate() error {
	if o.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", o.Indent)
	}
	return nil
}

// Encode serializes v. HTML-sensitive characters are written as-is.
func Encode(v Value, opts EncodeOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e := &encoder{opts: opts}
	if opts.Indent > 0 {
		e.unit = strings.Repeat(" ", opts.Indent)
	}
	e.value(v, 0)
	if opts.Indent > 0 {
		e.buf.WriteByte('\n')
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf  bytes.Buffer
	opts EncodeOptions
	unit string
}

func (e *encoder) newline(depth int) {
	if e.unit == "" {
		return
	}
	e.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.unit)
	}
}

func (e *encoder) value(v Value, depth int) {
	switch v.kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		if v.b {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case KindNumber:
		e.buf.WriteString(v.s)
	case KindString:
		e.str(v.s)
	case KindArray:
		if len(v.arr) == 0 {
			e.buf.WriteString("[]")
			return
		}
		e.buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			e.value(item, depth+1)
		}
		e.newline(depth)
		e.buf.WriteByte(']')
	case KindObject:
		if v.obj.Len() == 0 {
			e.buf.WriteString("{}")
			return
		}
		e.buf.WriteByte('{')
		for i, m := range v.obj.members {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.newline(depth + 1)
			e.str(m.Key)
			e.buf.WriteByte(':')
			if e.unit != "" {
				e.buf.WriteByte(' ')
			}
			e.value(m.Value, depth+1)
		}
		e.newline(depth)
		e.buf.WriteByte('}')
	}
}

const hexDigits = "0123456789abcdef"

func (e *encoder) str(s string) {
	e.buf.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			e.buf.WriteString(`\"`)
		case r == '\\':
			e.buf.WriteString(`\\`)
		case r == '\b':
			e.buf.WriteString(`\b`)
		case r == '\f':
			e.buf.WriteString(`\f`)
		case r == '\n':
			e.buf.WriteString(`\n`)
		case r == '\r':
			e.buf.WriteString(`\r`)
		case r == '\t':
			e.buf.WriteString(`\t`)
		case r < 0x20:
			e.escape(r)
		case r < utf8.RuneSelf || !e.opts.ASCII:
			e.buf.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			e.escape(hi)
			e.escape(lo)
		default:
			e.escape(r)
		}
	}
	e.buf.WriteByte('"')
}

func (e *encoder) escape(r rune) {
	e.buf.WriteString(`\u`)
	e.buf.WriteByte(hexDigits[r>>12&0xF])
	e.buf.WriteByte(hexDigits[r>>8&0xF])
	e.buf.WriteByte(hexDigits[r>>4&0xF])
	e.buf.WriteByte(hexDigits[r&0xF])
}
