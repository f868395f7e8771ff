package journal

import (
	"os"
	"strconv"
)

// Value is a field value at the façade boundary. It is a closed set of
// variants that can all be rendered to a byte sequence; arbitrary
// dynamic dispatch stops here.
type Value struct {
	kind valueKind
	str  string
	bin  []byte
	i    int64
	u    uint64
	f    float64
	b    bool
}

type valueKind uint8

const (
	kindText valueKind = iota
	kindBinary
	kindBool
	kindInt
	kindUint
	kindFloat
)

// Text returns a value holding a string.
func Text(s string) Value { return Value{kind: kindText, str: s} }

// Binary returns a value holding raw bytes. Embedded newlines and NUL
// bytes are legal; the encoder picks the length-prefixed form when
// needed.
func Binary(b []byte) Value { return Value{kind: kindBinary, bin: b} }

// Bool returns a boolean value, rendered as "true" or "false".
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Int returns a signed integer value.
func Int(i int64) Value { return Value{kind: kindInt, i: i} }

// Uint returns an unsigned integer value.
func Uint(u uint64) Value { return Value{kind: kindUint, u: u} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

// appendTo renders the value onto buf.
func (v Value) appendTo(buf []byte) []byte {
	switch v.kind {
	case kindBinary:
		return append(buf, v.bin...)
	case kindBool:
		return strconv.AppendBool(buf, v.b)
	case kindInt:
		return strconv.AppendInt(buf, v.i, 10)
	case kindUint:
		return strconv.AppendUint(buf, v.u, 10)
	case kindFloat:
		return strconv.AppendFloat(buf, v.f, 'g', -1, 64)
	default:
		return append(buf, v.str...)
	}
}

// Field is one structured key/value pair attached to a record. Keys
// are caller-supplied and escaped during serialization; they are never
// trusted to already be valid field names.
type Field struct {
	Key   string
	Value Value
}

// Record is one log record ready for serialization.
type Record struct {
	Level   Level
	Message string
	File    string // source file, empty when unknown
	Module  string // logical module path, empty when unknown
	Line    int    // source line, zero when unknown
	Target  string
	Fields  []Field
}

// AppendRecord appends the full journal payload for rec to buf and
// returns the extended slice. Standard fields come first in a fixed
// order, then the record's own fields in their original order, then
// the pre-encoded extra bytes from EncodeExtraFields. Duplicate keys
// are allowed; journald displays the first value.
func AppendRecord(buf []byte, identifier string, extra []byte, rec *Record) []byte {
	buf = appendField(buf, "PRIORITY", rec.Level.Priority().digit())
	buf = appendField(buf, "MESSAGE", []byte(rec.Message))
	buf = appendField(buf, "SYSLOG_PID", strconv.AppendInt(nil, int64(os.Getpid()), 10))
	if identifier != "" {
		buf = appendField(buf, "SYSLOG_IDENTIFIER", []byte(identifier))
	}
	if rec.File != "" {
		buf = appendField(buf, "CODE_FILE", []byte(rec.File))
	}
	if rec.Module != "" {
		buf = appendField(buf, "CODE_MODULE", []byte(rec.Module))
	}
	if rec.Line > 0 {
		buf = appendField(buf, "CODE_LINE", strconv.AppendInt(nil, int64(rec.Line), 10))
	}
	buf = appendField(buf, "TARGET", []byte(rec.Target))
	var scratch []byte
	for _, f := range rec.Fields {
		scratch = f.Value.appendTo(scratch[:0])
		buf = appendField(buf, escapeKey(f.Key), scratch)
	}
	return append(buf, extra...)
}

// EncodeExtraFields encodes fields once so the result can be appended
// verbatim to every record payload. This amortizes key escaping across
// all records a logger emits.
func EncodeExtraFields(fields []Field) []byte {
	var buf []byte
	var scratch []byte
	for _, f := range fields {
		scratch = f.Value.appendTo(scratch[:0])
		buf = appendField(buf, escapeKey(f.Key), scratch)
	}
	return buf
}
