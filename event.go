// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

// Event is the type of a semantic event emitted by the parser. Events are
// the complete public vocabulary of the parser: every call to
// [Parser.Advance] returns exactly one of these values.
type Event byte

// Constants defining the valid Event values.
const (
	// NeedMoreInput reports that the feeder is drained but has not been
	// marked done; the caller must push more bytes and call Advance again.
	// It is a suspension signal, not a document-structural event.
	NeedMoreInput Event = iota

	StartObject // the "{" that opens an object
	EndObject   // the "}" that closes an object
	StartArray  // the "[" that opens an array
	EndArray    // the "]" that closes an array

	FieldName // an object member key; call Parser.String to read it

	ValueString // a string value; call Parser.String (or Bytes) to read it
	ValueInt    // an integer literal with no fraction or exponent
	ValueFloat  // a number literal with a fraction and/or exponent
	ValueTrue   // the literal true
	ValueFalse  // the literal false
	ValueNull   // the literal null

	// EndOfStream reports that the feeder is drained, has been marked done,
	// and the automaton has accepted a complete top-level value. Advance
	// returns this event repeatedly once it has been reached once.
	EndOfStream
)

var eventStr = [...]string{
	NeedMoreInput: "need more input",
	StartObject:   "start of object",
	EndObject:     "end of object",
	StartArray:    "start of array",
	EndArray:      "end of array",
	FieldName:     "field name",
	ValueString:   "string value",
	ValueInt:      "integer value",
	ValueFloat:    "float value",
	ValueTrue:     "true",
	ValueFalse:    "false",
	ValueNull:     "null",
	EndOfStream:   "end of stream",
}

func (e Event) String() string {
	if int(e) >= len(eventStr) {
		return "invalid event"
	}
	return eventStr[e]
}

// HasValue reports whether e is an event after which the value buffer holds
// meaningful content accessible through Parser.Bytes, Parser.String,
// Parser.Int, Parser.Uint, or Parser.Float.
func (e Event) HasValue() bool {
	switch e {
	case FieldName, ValueString, ValueInt, ValueFloat:
		return true
	default:
		return false
	}
}
