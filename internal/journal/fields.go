package journal

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// maxKeyLen is the longest field name journald accepts.
const maxKeyLen = 64

// isValidKeyByte reports whether c may appear in a journal field name.
// Field names may only contain ASCII uppercase letters, digits and the
// underscore.
func isValidKeyByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// keyIsValid reports whether name is already a well-formed field name:
// non-empty, valid characters only, and not starting with an
// underscore or a digit.
func keyIsValid(name string) bool {
	if name == "" {
		return false
	}
	if name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isValidKeyByte(name[i]) {
			return false
		}
	}
	return true
}

// escapeKey normalizes name into a valid journal field name.
//
// The empty string becomes "EMPTY". Already well-formed names are
// returned as-is, truncated to 64 bytes. Anything else is uppercased
// (ASCII only), every invalid rune is replaced with an underscore, the
// result is prefixed with "ESCAPED_" if it starts with an underscore
// or a digit, and truncated to 64 bytes. Never fails, for any input.
func escapeKey(name string) string {
	if name == "" {
		return "EMPTY"
	}
	if keyIsValid(name) {
		if len(name) > maxKeyLen {
			return name[:maxKeyLen]
		}
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteByte(byte(r) - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteByte(byte(r))
		default:
			b.WriteByte('_')
		}
	}
	escaped := b.String()
	if escaped[0] == '_' || escaped[0] >= '0' && escaped[0] <= '9' {
		escaped = "ESCAPED_" + escaped
	}
	if len(escaped) > maxKeyLen {
		escaped = escaped[:maxKeyLen]
	}
	return escaped
}

// appendField appends the wire encoding of one field to buf and
// returns the extended slice. Values without a newline use the compact
// NAME=VALUE form; values containing a newline use the length-prefixed
// form, since journald treats an unescaped newline as the end of a
// compact field. Value bytes are never escaped, so binary payloads
// including NUL bytes pass through unchanged.
//
// The name must already be a valid field name; run caller-supplied
// names through escapeKey first.
func appendField(buf []byte, name string, value []byte) []byte {
	if bytes.IndexByte(value, '\n') >= 0 {
		return appendFieldLengthPrefixed(buf, name, value)
	}
	buf = append(buf, name...)
	buf = append(buf, '=')
	buf = append(buf, value...)
	return append(buf, '\n')
}

// appendFieldLengthPrefixed appends NAME, a newline, the value length
// as a 64-bit little-endian integer, the raw value bytes and a closing
// newline. This is journald's length-prefixed field format.
func appendFieldLengthPrefixed(buf []byte, name string, value []byte) []byte {
	buf = append(buf, name...)
	buf = append(buf, '\n')
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(value)))
	buf = append(buf, value...)
	return append(buf, '\n')
}
