// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package tree builds an in-memory value tree from a rjson.Parser, for
// callers that want a complete document rather than an event stream.
package tree

import "strconv"

// A Value is an arbitrary JSON value: *Object, *Array, String, Integer,
// Number, Bool, or Null.
type Value interface{ isValue() }

// An Object is a collection of key-value members, preserving source order.
type Object struct {
	Members []Member
}

func (*Object) isValue() {}

// Find returns the value of the first member of o with the given key, and
// whether one was found.
func (o *Object) Find(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

func (*Array) isValue() {}

// An Integer is an integer literal with no fraction or exponent, stored in
// its original decimal text so the caller can choose its own width.
type Integer string

func (Integer) isValue() {}

// Int64 parses the literal as a signed 64-bit integer.
func (z Integer) Int64() (int64, error) { return strconv.ParseInt(string(z), 10, 64) }

// Uint64 parses the literal as an unsigned 64-bit integer.
func (z Integer) Uint64() (uint64, error) { return strconv.ParseUint(string(z), 10, 64) }

// A Number is a floating-point literal, stored in its original decimal
// text.
type Number string

func (Number) isValue() {}

// Float64 parses the literal as a 64-bit float.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

// A String is a string value, already fully decoded by the time the tree
// builder sees it, since escape and surrogate-pair resolution happens
// inline in the parser rather than in a separate unescaping pass over the
// finished lexeme. String is just a string and carries no Unescape method.
type String string

func (String) isValue() {}

// Null represents the null constant.
type Null struct{}

func (Null) isValue() {}
