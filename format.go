package airp

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IndentWidth is the number of spaces added per nesting level.
const IndentWidth = 2

// printer renders a tree into buf. With step zero and no newline it writes
// the compact form.
type printer struct {
	buf     []byte
	step    int
	newline string
	colon   string
}

var (
	indentPrinter  = printer{step: IndentWidth, newline: "\n", colon: ": "}
	compactPrinter = printer{colon: ":"}
)

func (p *printer) pad(n int) {
	for ; n > 0; n-- {
		p.buf = append(p.buf, ' ')
	}
}

// print writes v at indent. Unless narrow is set, v is prefixed with indent
// spaces. Object members are written narrow since the key already supplied
// the indentation; array elements indent themselves.
func (p *printer) print(v *Value, indent int, narrow bool) error {
	if !narrow {
		p.pad(indent)
	}
	if !assertKind(v) {
		return errors.Wrapf(ErrTypeMismatch, "want %s, got %T", v.kind, v.value)
	}
	switch v.Kind() {
	case Undefined:
		p.buf = append(p.buf, "undefined"...)
	case Null:
		p.buf = append(p.buf, litNull...)
	case Bool:
		p.buf = strconv.AppendBool(p.buf, v.value.(bool))
	case Number:
		switch n := v.value.(type) {
		case int64:
			p.buf = strconv.AppendInt(p.buf, n, 10)
		case float64:
			p.buf = appendFloat(p.buf, n)
		}
	case String:
		p.buf = append(p.buf, '"')
		p.buf = append(p.buf, v.value.(string)...)
		p.buf = append(p.buf, '"')
	case Array:
		vv := v.Elems()
		if len(vv) == 0 {
			p.buf = append(p.buf, "[]"...)
			return nil
		}
		p.buf = append(p.buf, '[')
		p.buf = append(p.buf, p.newline...)
		for i, e := range vv {
			if i > 0 {
				p.buf = append(p.buf, ',')
				p.buf = append(p.buf, p.newline...)
			}
			if err := p.print(e, indent+p.step, false); err != nil {
				return err
			}
		}
		p.buf = append(p.buf, p.newline...)
		p.pad(indent)
		p.buf = append(p.buf, ']')
	case Object:
		keys := v.Keys()
		if len(keys) == 0 {
			p.buf = append(p.buf, "{}"...)
			return nil
		}
		p.buf = append(p.buf, '{')
		p.buf = append(p.buf, p.newline...)
		for i, k := range keys {
			if i > 0 {
				p.buf = append(p.buf, ',')
				p.buf = append(p.buf, p.newline...)
			}
			p.pad(indent + p.step)
			p.buf = append(p.buf, '"')
			p.buf = append(p.buf, k...)
			p.buf = append(p.buf, '"')
			p.buf = append(p.buf, p.colon...)
			m, _ := v.Member(k)
			if err := p.print(m, indent+p.step, true); err != nil {
				return err
			}
		}
		p.buf = append(p.buf, p.newline...)
		p.pad(indent)
		p.buf = append(p.buf, '}')
	default:
		return errors.Wrapf(ErrTypeMismatch, "value of unknown kind %s", v.Kind())
	}
	return nil
}

// appendFloat writes the shortest representation of f that parses back to
// the same float. Integral values get a ".0" so they stay floats when read
// again. Non-finite values have no numeral and are written as null.
func appendFloat(buf []byte, f float64) []byte {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return append(buf, litNull...)
	}
	start := len(buf)
	buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
	if !bytes.ContainsAny(buf[start:], ".e") {
		buf = append(buf, ".0"...)
	}
	return buf
}

// Fprint writes v to w indented by IndentWidth spaces per level, starting at
// indent. Unless narrow is set the first line is prefixed with indent spaces.
//
// Object keys are written sorted and quoted; there is no comma after the last
// entry of a container. String contents are written as captured, so a string
// read from single quotes may not be valid JSON. A nil value is written as
// the placeholder "undefined", which is not JSON either.
func Fprint(w io.Writer, v *Value, indent int, narrow bool) (int, error) {
	p := indentPrinter
	if err := p.print(v, indent, narrow); err != nil {
		return 0, err
	}
	return w.Write(p.buf)
}

// Print is like Fprint but returns the text.
func Print(v *Value, indent int, narrow bool) (string, error) {
	b := &strings.Builder{}
	if _, err := Fprint(b, v, indent, narrow); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String formats v compactly with no whitespace. It returns an empty string
// if v is malformed.
func (v *Value) String() string {
	p := compactPrinter
	if err := p.print(v, 0, false); err != nil {
		return ""
	}
	return string(p.buf)
}

// WriteJSON writes v to w with the same representation as v.String().
func (v *Value) WriteJSON(w io.Writer) (int, error) {
	p := compactPrinter
	if err := p.print(v, 0, false); err != nil {
		return 0, err
	}
	return w.Write(p.buf)
}

// WriteIndent writes v to w like Fprint(w, v, 0, false).
func (v *Value) WriteIndent(w io.Writer) (int, error) {
	return Fprint(w, v, 0, false)
}

// MarshalJSON implements the json.Marshaler interface for Value.
// An undefined value marshals to null.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v.Kind() == Undefined {
		return []byte(litNull), nil
	}
	b := &bytes.Buffer{}
	if _, err := v.WriteJSON(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface for Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	m, err := ParseStrict(string(data))
	if err != nil {
		return err
	}
	if m == nil {
		return newParseError(UnrecognizedToken, "", 0, "empty input")
	}
	*v = *m
	return nil
}
