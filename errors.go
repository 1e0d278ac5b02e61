// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned by Advance when the feeder is marked done
// before a top-level value was complete, or while inside a token.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// SyntaxError reports a malformed JSON byte sequence: an unexpected byte, a
// bad escape, a bare control character in a string, a malformed number or
// keyword, mismatched structural brackets, a duplicate comma, or a missing
// colon.
type SyntaxError struct {
	Offset  int64  // byte offset at which the error was detected
	Message string // human-readable description

	err error // optional wrapped cause
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// MaxDepthExceededError reports that the parse stack exceeded its
// configured maximum nesting depth.
type MaxDepthExceededError struct {
	Offset   int64
	MaxDepth int
}

func (e *MaxDepthExceededError) Error() string {
	return fmt.Sprintf("max nesting depth %d exceeded at offset %d", e.MaxDepth, e.Offset)
}

// LexemeTooLongError reports that a string or number lexeme exceeded the
// configured maximum lexeme length. Keywords are not checked against it.
type LexemeTooLongError struct {
	Offset int64
	Max    int
}

func (e *LexemeTooLongError) Error() string {
	return fmt.Sprintf("lexeme exceeds maximum length %d at offset %d", e.Max, e.Offset)
}

// InvalidUTF8Error is returned by Parser.String when the decoded bytes of
// the current value are not valid UTF-8 (for instance, raw input bytes
// inside the string literal that do not form a valid UTF-8 sequence).
// Unpaired surrogate escapes never get this far: Advance rejects them with
// a *SyntaxError.
type InvalidUTF8Error struct{}

func (InvalidUTF8Error) Error() string { return "value is not valid UTF-8" }

// NumberOutOfRangeError is returned by Parser.Int/Parser.Uint when the
// decimal literal's magnitude exceeds the requested width.
type NumberOutOfRangeError struct {
	Literal string
	Bits    int
}

func (e *NumberOutOfRangeError) Error() string {
	return fmt.Sprintf("number %q out of range for %d-bit integer", e.Literal, e.Bits)
}

// NotAnIntegerError is returned by Parser.Int/Parser.Uint when the current
// numeric literal has a decimal point or exponent.
type NotAnIntegerError struct{ Literal string }

func (e *NotAnIntegerError) Error() string {
	return fmt.Sprintf("number %q is not an integer", e.Literal)
}

// WrongEventKindError is returned by any value accessor (Bytes, String,
// Int, Uint, Float) when the most recent event from Advance did not carry a
// value of the requested kind.
type WrongEventKindError struct {
	Got  Event
	Want string // human-readable description of what was expected
}

func (e *WrongEventKindError) Error() string {
	return fmt.Sprintf("cannot read %s after %s", e.Want, e.Got)
}

// IOError wraps an I/O failure surfaced by a wrapping feeder (see package
// feeder). The core parser never produces this error itself.
type IOError struct{ err error }

func (e *IOError) Error() string { return fmt.Sprintf("i/o error: %v", e.err) }
func (e *IOError) Unwrap() error { return e.err }

// NewIOError wraps err as an *IOError, or returns nil if err is nil.
func NewIOError(err error) error {
	if err == nil {
		return nil
	}
	return &IOError{err: err}
}
