// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"go4.org/mem"

	"github.com/creachadair/rjson/internal/escape"
)

// valueBuffer is the parser-owned scratch area that accumulates the
// decoded content of the string, field name, or number lexeme currently
// being scanned. It is reset at the start of every new lexeme and is
// read-only from the caller's perspective between a value-carrying event
// and the next call to Advance: valid until the next call, copy it if you
// need to keep it.
type valueBuffer struct {
	buf    []byte
	maxLen int // 0 means unbounded
}

func (v *valueBuffer) reset() { v.buf = v.buf[:0] }

// appendByte appends a single raw byte, reporting a *LexemeTooLongError
// (via ok=false) if doing so would exceed the configured maximum lexeme
// length.
func (v *valueBuffer) appendByte(b byte) bool {
	if v.maxLen > 0 && len(v.buf) >= v.maxLen {
		return false
	}
	v.buf = append(v.buf, b)
	return true
}

// appendRune appends the UTF-8 encoding of r, subject to the same length
// limit as appendByte.
func (v *valueBuffer) appendRune(r rune) bool {
	if v.maxLen > 0 {
		n := len(escape.AppendRune(nil, r))
		if len(v.buf)+n > v.maxLen {
			return false
		}
	}
	v.buf = escape.AppendRune(v.buf, r)
	return true
}

// truncateLast removes the last n bytes from the buffer.
func (v *valueBuffer) truncateLast(n int) { v.buf = v.buf[:len(v.buf)-n] }

// len reports the current buffer length.
func (v *valueBuffer) len() int { return len(v.buf) }

// bytes returns the live buffer. The caller must not retain it past the
// next mutation.
func (v *valueBuffer) bytes() []byte { return v.buf }

// tail returns a read-only view of the last n bytes of the buffer, used to
// inspect a just-completed \uXXXX run without copying.
func (v *valueBuffer) tail(n int) mem.RO { return mem.B(v.buf[len(v.buf)-n:]) }
