// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/creachadair/rjson/feeder"
	"github.com/creachadair/rjson/internal/escape"
)

// charClass groups the 256 possible input bytes into the equivalence
// classes the state machine actually distinguishes between, following the
// classical JSON_checker design: most of the state-transition table's
// columns are shared by many bytes (every byte above 0x7F behaves exactly
// like every other, as does every control character that isn't one of the
// three whitespace exceptions), so collapsing them keeps the table small.
type charClass int8

const (
	cSpace charClass = iota // ' '
	cWhite                  // \t \n \r
	cLBrace                 // {
	cRBrace                 // }
	cLBracket               // [
	cRBracket               // ]
	cColon                  // :
	cComma                  // ,
	cQuote                  // "
	cBackslash              // \
	cSlash                  // /
	cPlus                   // +
	cMinus                  // -
	cPoint                  // .
	cZero                   // 0
	cDigit19                // 1-9
	cLowA                   // a
	cLowB                   // b
	cLowC                   // c
	cLowD                   // d
	cLowE                   // e
	cLowF                   // f
	cLowL                   // l
	cLowN                   // n
	cLowR                   // r
	cLowS                   // s
	cLowT                   // t
	cLowU                   // u
	cHexABCDF               // A B C D F
	cUpperE                 // E
	cOther                  // everything else, including all non-ASCII bytes
)

// asciiClass maps each of the 128 ASCII bytes to its class. A value of -1
// marks a byte that is always illegal: a non-whitespace control character.
// Bytes at or above 0x80 are always cOther; they only ever occur inside a
// string literal, where the parser treats them as opaque continuation
// bytes of an already-validated (by the caller, at write time) UTF-8
// sequence.
var asciiClass = [128]charClass{
	-1, -1, -1, -1, -1, -1, -1, -1,
	-1, cWhite, cWhite, -1, -1, cWhite, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1,
	cSpace, cOther, cQuote, cOther, cOther, cOther, cOther, cOther,
	cOther, cOther, cOther, cPlus, cComma, cMinus, cPoint, cSlash,
	cZero, cDigit19, cDigit19, cDigit19, cDigit19, cDigit19, cDigit19, cDigit19,
	cDigit19, cDigit19, cColon, cOther, cOther, cOther, cOther, cOther,
	cOther, cHexABCDF, cHexABCDF, cHexABCDF, cHexABCDF, cUpperE, cHexABCDF, cOther,
	cOther, cOther, cOther, cOther, cOther, cOther, cOther, cOther,
	cOther, cOther, cOther, cOther, cOther, cOther, cOther, cOther,
	cOther, cOther, cOther, cLBracket, cBackslash, cRBracket, cOther, cOther,
	cOther, cLowA, cLowB, cLowC, cLowD, cLowE, cLowF, cOther,
	cOther, cOther, cOther, cOther, cLowL, cOther, cLowN, cOther,
	cOther, cOther, cLowR, cLowS, cLowT, cLowU, cOther, cOther,
	cOther, cOther, cOther, cLBrace, cOther, cRBrace, cOther, cOther,
}

func classify(b byte) (charClass, bool) {
	if b >= 128 {
		return cOther, true
	}
	c := asciiClass[b]
	if c < 0 {
		return 0, false
	}
	return charClass(c), true
}

// state is a cell of the state-transition table: either one of the 31
// named automaton states (non-negative), one of 8 action codes (negative,
// taken when a structural byte needs to pop or push the mode stack rather
// than simply advance), or the recover sentinel used to support streaming
// mode.
type state int8

const (
	sGO state = iota // start
	sOK              // a value has just completed
	sOB              // just opened an object, awaiting a key or "}"
	sKE              // awaiting a field name
	sCO              // awaiting ":"
	sVA              // awaiting a value
	sAR              // just opened an array, awaiting a value or "]"
	sST              // inside a string
	sES              // just consumed the backslash of an escape
	sU1              // consumed 1 of 4 \u hex digits
	sU2              // consumed 2 of 4
	sU3              // consumed 3 of 4
	sU4              // consumed 4 of 4
	sMI              // consumed a leading "-"
	sZE              // consumed a single leading "0"
	sIN              // inside the integer part of a number
	sF0              // just consumed the "." of a fraction, awaiting a digit
	sFR              // inside the fraction part of a number
	sE1              // just consumed "e"/"E"
	sE2              // just consumed the sign of an exponent
	sE3              // inside the exponent part of a number
	sT1              // consumed "t"
	sT2              // consumed "tr"
	sT3              // consumed "tru" -- next byte completes "true"
	sF1              // consumed "f"
	sF2              // consumed "fa"
	sF3              // consumed "fal"
	sF4              // consumed "fals" -- next byte completes "false"
	sN1              // consumed "n"
	sN2              // consumed "nu"
	sN3              // consumed "nul" -- next byte completes "null"
)

// sRC is the "recover if streaming, error otherwise" sentinel: it appears
// in table cells where a value has just finished (state OK or one of the
// terminal number states) and the byte looks like the start of a sibling
// value rather than a legal follow set for the one just completed.
const sRC state = 99

// __ is the universal error cell.
const __ state = -1

const (
	aColon       state = -2 // ":" seen in key mode: flip KEY -> OBJECT
	aComma       state = -3 // "," seen: continue the enclosing container
	aQuote       state = -4 // closing quote of a string or field name
	aLBracket    state = -5 // "[": push ARRAY
	aLBrace      state = -6 // "{": push KEY
	aRBracket    state = -7 // "]": pop ARRAY
	aRBrace      state = -8 // "}": pop OBJECT
	aRBraceEmpty state = -9 // "}" immediately after "{": pop KEY
)

// transitionTable[state][class] is the classical JSON_checker transition
// table: a non-negative cell is the next state, sRC requests streaming
// recovery, __ is a syntax error, and any other negative cell is an action
// code handled by (*Parser).performAction.
var transitionTable = [31][31]state{
	// GO
	{sGO, sGO, aLBrace, __, aLBracket, __, __, __, sST, __, __, __, sMI, __, sZE, sIN, __, __, __, __, __, sF1, __, sN1, __, __, sT1, __, __, __, __},
	// OK
	{sOK, sOK, sRC, aRBrace, sRC, aRBracket, __, aComma, sRC, __, __, __, sRC, __, sRC, sRC, __, __, __, __, __, sRC, __, sRC, __, __, sRC, __, __, __, __},
	// OB
	{sOB, sOB, __, aRBraceEmpty, __, __, __, __, sST, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// KE
	{sKE, sKE, __, __, __, __, __, __, sST, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// CO
	{sCO, sCO, __, __, __, __, aColon, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// VA
	{sVA, sVA, aLBrace, __, aLBracket, __, __, __, sST, __, __, __, sMI, __, sZE, sIN, __, __, __, __, __, sF1, __, sN1, __, __, sT1, __, __, __, __},
	// AR
	{sAR, sAR, aLBrace, __, aLBracket, aRBracket, __, __, sST, __, __, __, sMI, __, sZE, sIN, __, __, __, __, __, sF1, __, sN1, __, __, sT1, __, __, __, __},
	// ST
	{sST, __, sST, sST, sST, sST, sST, sST, aQuote, sES, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST, sST},
	// ES
	{__, __, __, __, __, __, __, __, sST, sST, sST, __, __, __, __, __, __, sST, __, __, __, sST, __, sST, sST, __, sST, sU1, __, __, __},
	// U1
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, sU2, sU2, sU2, sU2, sU2, sU2, sU2, sU2, __, __, __, __, __, __, sU2, sU2, __},
	// U2
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, sU3, sU3, sU3, sU3, sU3, sU3, sU3, sU3, __, __, __, __, __, __, sU3, sU3, __},
	// U3
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, sU4, sU4, sU4, sU4, sU4, sU4, sU4, sU4, __, __, __, __, __, __, sU4, sU4, __},
	// U4
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, sST, sST, sST, sST, sST, sST, sST, sST, __, __, __, __, __, __, sST, sST, __},
	// MI
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, sZE, sIN, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// ZE
	{sOK, sOK, sRC, aRBrace, sRC, aRBracket, __, aComma, sRC, __, __, __, __, sF0, __, __, __, __, __, __, sE1, sRC, __, sRC, __, __, sRC, __, __, sE1, __},
	// IN
	{sOK, sOK, sRC, aRBrace, sRC, aRBracket, __, aComma, sRC, __, __, __, __, sF0, sIN, sIN, __, __, __, __, sE1, sRC, __, sRC, __, __, sRC, __, __, sE1, __},
	// F0
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, sFR, sFR, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// FR
	{sOK, sOK, sRC, aRBrace, sRC, aRBracket, __, aComma, sRC, __, __, __, __, __, sFR, sFR, __, __, __, __, sE1, sRC, __, sRC, __, __, sRC, __, __, sE1, __},
	// E1
	{__, __, __, __, __, __, __, __, __, __, __, sE2, sE2, __, sE3, sE3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// E2
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, sE3, sE3, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// E3
	{sOK, sOK, sRC, aRBrace, sRC, aRBracket, __, aComma, sRC, __, __, __, __, __, sE3, sE3, __, __, __, __, __, sRC, __, sRC, __, __, sRC, __, __, __, __},
	// T1
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sT2, __, __, __, __, __, __},
	// T2
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sT3, __, __, __},
	// T3
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sOK, __, __, __, __, __, __, __, __, __, __},
	// F1
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sF2, __, __, __, __, __, __, __, __, __, __, __, __, __, __},
	// F2
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sF3, __, __, __, __, __, __, __, __},
	// F3
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sF4, __, __, __, __, __},
	// F4
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sOK, __, __, __, __, __, __, __, __, __, __},
	// N1
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sN2, __, __, __},
	// N2
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sN3, __, __, __, __, __, __, __, __},
	// N3
	{__, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, __, sOK, __, __, __, __, __, __, __, __},
}

// Parser is a resumable, non-blocking JSON event parser: a pushdown
// automaton that consumes one byte at a time from a feeder.Feeder and
// emits Events, suspending with NeedMoreInput whenever the feeder has
// nothing buffered rather than blocking the caller's goroutine.
//
// A Parser is not safe for concurrent use. Its zero value is not usable;
// construct one with NewParser.
type Parser struct {
	feeder feeder.Feeder
	opts   Options

	stack *parseStack
	st    state
	buf   valueBuffer

	// event1 and event2 hold up to two pending events produced by a single
	// input byte (closing a number value and closing the object that
	// contains it can both complete on the same "}"). Advance drains event1
	// before pulling more input, then shifts event2 into its place.
	event1, event2 Event

	lastEvent Event // most recently returned by Advance, for accessor validation

	parsedBytes int64

	putbackByte byte
	havePutback bool

	highSurrogate     rune
	haveHighSurrogate bool

	ended bool // a complete top-level value has been accepted

	err error // sticky: once set, every subsequent Advance returns it
}

// NewParser returns a Parser that reads from f using the given options.
// If f is a *feeder.PushFeeder, its growth policy is set from opts.
func NewParser(f feeder.Feeder, opts Options) *Parser {
	p := &Parser{
		feeder: f,
		opts:   opts,
		stack:  newParseStack(opts.MaxDepth() + 1), // +1 for the modeDone sentinel
		st:     sGO,
	}
	p.buf.maxLen = opts.MaxLexemeLength()
	if pf, ok := f.(*feeder.PushFeeder); ok {
		pf.WithGrowable(opts.GrowablePushBuffer()).WithMaxCapacity(opts.MaxPushBuffer())
	}
	return p
}

// Reset rewinds the parser to its just-constructed state so the same
// allocation can be reused for a new document. It does not reset the
// feeder; the caller is responsible for that (see feeder.Resetter).
func (p *Parser) Reset() {
	p.stack.reset()
	p.st = sGO
	p.buf.reset()
	p.event1, p.event2 = NeedMoreInput, NeedMoreInput
	p.lastEvent = NeedMoreInput
	p.parsedBytes = 0
	p.havePutback = false
	p.haveHighSurrogate = false
	p.ended = false
	p.err = nil
}

// BytesConsumed reports the number of input bytes the parser has consumed
// so far, including the byte that produced the most recently returned
// event but not any byte still held back internally for reprocessing.
func (p *Parser) BytesConsumed() int64 { return p.parsedBytes }

// Advance consumes bytes from the feeder until it can report the next
// Event, returns NeedMoreInput if the feeder is drained but not done, or
// returns EndOfStream once a complete top-level value has been accepted
// and the feeder has no more input to offer. Once Advance returns a
// non-nil error, every subsequent call returns the same error.
func (p *Parser) Advance() (Event, error) {
	if p.err != nil {
		return NeedMoreInput, p.err
	}
	ev, err := p.advance()
	if err != nil {
		p.err = err
		return NeedMoreInput, err
	}
	p.lastEvent = ev
	return ev, nil
}

func (p *Parser) advance() (Event, error) {
	if p.ended {
		return EndOfStream, nil
	}
	for p.event1 == NeedMoreInput {
		b, ok := p.nextInput()
		if !ok {
			if p.feeder.IsDone() {
				// End of input completes a number, but not a keyword: the
				// keyword states (sT1..sN3) still lack their final letter.
				if p.st != sOK && p.st < sT1 {
					if r := p.stateToEvent(p.st); r != NeedMoreInput {
						p.st = sOK
						return r, nil
					}
				}
				if p.st == sOK && p.stack.pop(modeDone) {
					p.ended = true
					return EndOfStream, nil
				}
				return NeedMoreInput, ErrUnexpectedEOF
			}
			return NeedMoreInput, nil
		}
		p.parsedBytes++
		if err := p.step(b); err != nil {
			return NeedMoreInput, err
		}
	}
	r := p.event1
	p.event1 = p.event2
	p.event2 = NeedMoreInput
	return r, nil
}

func (p *Parser) nextInput() (byte, bool) {
	if p.havePutback {
		p.havePutback = false
		return p.putbackByte, true
	}
	return p.feeder.NextInput()
}

func (p *Parser) putBack(b byte) {
	p.putbackByte = b
	p.havePutback = true
	p.parsedBytes--
}

// step feeds a single byte through the automaton, following the "classical
// JSON_checker" design: classify the byte, look up the next state, and
// either buffer the byte (while inside a string, number, or keyword) or
// perform the structural action the table cell names.
func (p *Parser) step(b byte) error {
	class, ok := classify(b)
	if !ok {
		return p.syntaxErrorf("illegal byte %#02x", b)
	}

	next := transitionTable[p.st][class]

	if next == sRC {
		if p.opts.Streaming() && p.stack.len() == 1 && p.stack.top() == modeDone {
			if p.st == sOK {
				next = transitionTable[sGO][class]
			} else {
				next = sOK
				p.putBack(b)
			}
		} else {
			next = __
		}
	}

	if next < 0 {
		return p.performAction(next, b)
	}

	if next >= sST && next <= sE3 {
		if err := p.bufferLexemeByte(next, b); err != nil {
			return err
		}
	} else if next == sOK {
		if ev := p.stateToEvent(p.st); ev != NeedMoreInput {
			p.event1 = ev
		}
	}
	p.st = next
	return nil
}

// bufferLexemeByte appends b (or the bytes it resolves to) to the value
// buffer as the automaton advances within a string, number, or keyword
// lexeme, following the same old-state dispatch as the reference automaton:
// what happens to b depends on the state the parser is leaving, not the one
// it is entering.
func (p *Parser) bufferLexemeByte(next state, b byte) error {
	old := p.st
	switch {
	case old >= sST:
		switch old {
		case sES:
			return p.resolveEscape(b)
		case sU4:
			return p.resolveHexDigit(b)
		default:
			// A pending high surrogate must be followed immediately by the
			// backslash of the \u escape carrying its low surrogate (old
			// is sST, next becomes sES); an ordinary string byte in that
			// same position (old sST, next sST) leaves it unpaired. Mid
			// hex-digit collection for that escape (old sU1/sU2/sU3) is
			// unaffected, since the pairing is only decided once the
			// escape's four digits have all arrived.
			if p.haveHighSurrogate && old == sST && next == sST {
				p.haveHighSurrogate = false
				return p.syntaxErrorf("unpaired UTF-16 high surrogate")
			}
			if !p.buf.appendByte(b) {
				return p.lexemeTooLongError()
			}
		}
	default:
		p.buf.reset()
		if next != sST {
			if !p.buf.appendByte(b) {
				return p.lexemeTooLongError()
			}
		}
	}
	return nil
}

// resolveEscape handles the byte following a backslash inside a string.
// The backslash itself was already appended to the buffer when ES was
// entered (bufferLexemeByte's default case, since the old state was ST);
// for the single-byte escapes it is popped and replaced by the escaped
// character, and for \u it is left in place (along with the 'u' the
// terminal default case appends) so resolveHexDigit can find it again once
// all four hex digits have arrived.
func (p *Parser) resolveEscape(b byte) error {
	if lit := escape.Single[b]; lit != 0 {
		if p.haveHighSurrogate {
			p.haveHighSurrogate = false
			return p.syntaxErrorf("unpaired UTF-16 high surrogate")
		}
		p.buf.truncateLast(1)
		if !p.buf.appendByte(lit) {
			return p.lexemeTooLongError()
		}
		return nil
	}
	if !p.buf.appendByte(b) {
		return p.lexemeTooLongError()
	}
	return nil
}

// resolveHexDigit appends the fourth hex digit of a \uXXXX escape and then
// collapses the run into its decoded UTF-8 form, combining it with a
// pending high surrogate if one is waiting.
func (p *Parser) resolveHexDigit(b byte) error {
	if !p.buf.appendByte(b) {
		return p.lexemeTooLongError()
	}
	if p.buf.len() < 6 {
		return p.syntaxErrorf("truncated \\u escape")
	}
	digits := p.buf.tail(4)
	r, err := escape.Hex4ToRune(digits)
	if err != nil {
		return p.syntaxErrorf("invalid \\u escape: %v", err)
	}

	switch {
	case escape.IsHighSurrogate(r):
		if p.haveHighSurrogate {
			p.haveHighSurrogate = false
			return p.syntaxErrorf("unpaired UTF-16 high surrogate")
		}
		p.highSurrogate = r
		p.haveHighSurrogate = true
		// Leave the raw \uXXXX bytes in the buffer; they are replaced once
		// the low surrogate that must follow has been scanned.
	case escape.IsLowSurrogate(r):
		if !p.haveHighSurrogate {
			return p.syntaxErrorf("unpaired UTF-16 low surrogate")
		}
		p.haveHighSurrogate = false
		if p.buf.len() < 12 {
			return p.syntaxErrorf("truncated surrogate pair")
		}
		combined := escape.CombineSurrogates(p.highSurrogate, r)
		p.buf.truncateLast(12)
		if !p.buf.appendRune(combined) {
			return p.lexemeTooLongError()
		}
	default:
		if p.haveHighSurrogate {
			p.haveHighSurrogate = false
			return p.syntaxErrorf("unpaired UTF-16 high surrogate")
		}
		p.buf.truncateLast(6)
		if !p.buf.appendRune(r) {
			return p.lexemeTooLongError()
		}
	}
	return nil
}

// performAction carries out a structural transition: every action either
// mutates the mode stack or reads its top, and produces the event (or
// pair of events, for a value immediately followed by a closing bracket)
// that Advance will see.
func (p *Parser) performAction(a state, b byte) error {
	switch a {
	case aRBraceEmpty: // "}" right after "{"
		if !p.stack.pop(modeKey) {
			return p.syntaxErrorf("unexpected '}'")
		}
		p.st = sOK
		p.event1 = EndObject

	case aRBrace: // "}"
		if !p.stack.pop(modeObject) {
			return p.syntaxErrorf("unexpected '}'")
		}
		if ev := p.stateToEvent(p.st); ev == NeedMoreInput {
			p.event1 = EndObject
		} else {
			p.event1 = ev
			p.event2 = EndObject
		}
		p.st = sOK

	case aRBracket: // "]"
		if !p.stack.pop(modeArray) {
			return p.syntaxErrorf("unexpected ']'")
		}
		if ev := p.stateToEvent(p.st); ev == NeedMoreInput {
			p.event1 = EndArray
		} else {
			p.event1 = ev
			p.event2 = EndArray
		}
		p.st = sOK

	case aLBrace: // "{"
		if !p.stack.push(modeKey) {
			return p.maxDepthError()
		}
		p.st = sOB
		p.event1 = StartObject

	case aLBracket: // "["
		if !p.stack.push(modeArray) {
			return p.maxDepthError()
		}
		p.st = sAR
		p.event1 = StartArray

	case aQuote: // closing quote of a string or field name
		if p.haveHighSurrogate {
			p.haveHighSurrogate = false
			return p.syntaxErrorf("unpaired UTF-16 high surrogate")
		}
		if p.stack.top() == modeKey {
			p.st = sCO
			p.event1 = FieldName
		} else {
			p.st = sOK
			p.event1 = ValueString
		}

	case aComma: // ","
		switch p.stack.top() {
		case modeObject:
			if !p.stack.replace(modeKey) {
				return p.syntaxErrorf("unexpected ','")
			}
			p.event1 = p.stateToEvent(p.st)
			p.st = sKE
		case modeArray:
			p.event1 = p.stateToEvent(p.st)
			p.st = sVA
		default:
			return p.syntaxErrorf("unexpected ','")
		}

	case aColon: // ":"
		if p.stack.top() != modeKey || !p.stack.replace(modeObject) {
			return p.syntaxErrorf("unexpected ':'")
		}
		p.st = sVA

	default:
		return p.syntaxErrorf("unexpected byte %q", b)
	}
	return nil
}

// stateToEvent reports the event produced when the lexeme in state st is
// completed: a number in sZE, sIN, sFR or sE3 by the byte that ends it, a
// keyword in sT3, sF4 or sN3 by its final letter. For any other state it
// returns NeedMoreInput.
func (p *Parser) stateToEvent(st state) Event {
	switch {
	case st == sIN || st == sZE:
		return ValueInt
	case st == sFR || st == sE3:
		return ValueFloat
	case st == sT3:
		return ValueTrue
	case st == sF4:
		return ValueFalse
	case st == sN3:
		return ValueNull
	default:
		return NeedMoreInput
	}
}

// errorOffset reports the 0-indexed byte offset of the byte currently being
// rejected. parsedBytes already counts that byte (it is incremented before
// step is called), so the byte's own offset is one less.
func (p *Parser) errorOffset() int64 { return p.parsedBytes - 1 }

func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.errorOffset(), Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) maxDepthError() error {
	return &MaxDepthExceededError{Offset: p.errorOffset(), MaxDepth: p.opts.MaxDepth()}
}

func (p *Parser) lexemeTooLongError() error {
	return &LexemeTooLongError{Offset: p.errorOffset(), Max: p.opts.MaxLexemeLength()}
}

// Bytes returns the raw bytes of the current value, valid after FieldName
// or ValueString, until the next call to Advance.
func (p *Parser) Bytes() ([]byte, error) {
	if !p.lastEvent.HasValue() {
		return nil, &WrongEventKindError{Got: p.lastEvent, Want: "bytes"}
	}
	return p.buf.bytes(), nil
}

// String returns the current value decoded as a string, valid after
// FieldName or ValueString.
func (p *Parser) String() (string, error) {
	b, err := p.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", InvalidUTF8Error{}
	}
	return string(b), nil
}

// Int returns the current value as a signed integer of the given bit
// width (8, 16, 32, or 64), valid after ValueInt.
func (p *Parser) Int(bits int) (int64, error) {
	lit, err := p.numericLiteral()
	if err != nil {
		return 0, err
	}
	if p.lastEvent != ValueInt {
		return 0, &NotAnIntegerError{Literal: lit}
	}
	v, err := strconv.ParseInt(lit, 10, bits)
	if err != nil {
		return 0, &NumberOutOfRangeError{Literal: lit, Bits: bits}
	}
	return v, nil
}

// Uint returns the current value as an unsigned integer of the given bit
// width (8, 16, 32, or 64), valid after ValueInt.
func (p *Parser) Uint(bits int) (uint64, error) {
	lit, err := p.numericLiteral()
	if err != nil {
		return 0, err
	}
	if p.lastEvent != ValueInt {
		return 0, &NotAnIntegerError{Literal: lit}
	}
	v, err := strconv.ParseUint(lit, 10, bits)
	if err != nil {
		return 0, &NumberOutOfRangeError{Literal: lit, Bits: bits}
	}
	return v, nil
}

// Float returns the current value as a 64-bit float, valid after ValueInt
// or ValueFloat.
func (p *Parser) Float() (float64, error) {
	lit, err := p.numericLiteral()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(lit, 64)
}

func (p *Parser) numericLiteral() (string, error) {
	if p.lastEvent != ValueInt && p.lastEvent != ValueFloat {
		return "", &WrongEventKindError{Got: p.lastEvent, Want: "number"}
	}
	return string(p.buf.bytes()), nil
}
