// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes the escape sequences of a JSON string literal one
// sequence at a time, so that a caller resuming a suspended scan never needs
// to re-examine bytes it has already consumed.
package escape

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Single maps the byte following a backslash to the literal value it
// stands for, for every JSON escape except \u. The zero entry means "not a
// recognized single-byte escape".
var Single = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Hex4ToRune decodes a four-byte ASCII hex run (the digits of a \uXXXX
// escape, with the leading "\u" already stripped) into a UTF-16 code unit.
// digits is a go4.org/mem view rather than a []byte so callers holding a
// mem.RO over an existing buffer (as the parser's value buffer does for the
// tail of a \u escape) need not allocate a slice just to decode four hex
// digits.
func Hex4ToRune(digits mem.RO) (rune, error) {
	if digits.Len() != 4 {
		return 0, fmt.Errorf("want 4 hex digits, got %d", digits.Len())
	}
	var v rune
	for i := 0; i < 4; i++ {
		d, ok := hexVal(digits.At(i))
		if !ok {
			return 0, fmt.Errorf("invalid hex digit %q", digits.At(i))
		}
		v = v<<4 | rune(d)
	}
	return v, nil
}

func hexVal(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// IsHighSurrogate reports whether r is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }

// IsLowSurrogate reports whether r is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(r rune) bool { return r >= 0xDC00 && r <= 0xDFFF }

// CombineSurrogates combines a high and a low UTF-16 surrogate into the
// single code point they encode. The caller must have already validated
// hi and lo with IsHighSurrogate and IsLowSurrogate.
func CombineSurrogates(hi, lo rune) rune {
	return ((hi - 0xD800) << 10) | (lo - 0xDC00) + 0x10000
}

// AppendRune appends the UTF-8 encoding of r to dst. Surrogate halves and
// other values with no valid scalar meaning are replaced with the Unicode
// replacement character rather than rejected outright.
func AppendRune(dst []byte, r rune) []byte {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}

// IsHexDigit reports whether b is one of the 22 hexadecimal digit bytes
// (0-9, a-f, A-F) accepted by a \uXXXX escape.
func IsHexDigit(b byte) bool {
	_, ok := hexVal(b)
	return ok
}

