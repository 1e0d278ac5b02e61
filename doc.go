// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package rjson implements a non-blocking, resumable JSON event parser.
//
// # Feeding and advancing
//
// A Parser does not own an io.Reader. It pulls bytes from a feeder.Feeder,
// which the caller chooses based on how its input arrives: feeder.SliceFeeder
// for a document already fully in memory, feeder.PushFeeder for bytes handed
// in from an event loop or a network read, or feeder.SyncFeeder /
// feeder.AsyncFeeder to drive an io.Reader synchronously or with context
// cancellation.
//
//	f := feeder.NewSliceFeeder(data)
//	p := rjson.NewParser(f, rjson.DefaultOptions())
//	for {
//	    ev, err := p.Advance()
//	    if err != nil {
//	        log.Fatalf("parse failed: %v", err)
//	    }
//	    if ev == rjson.EndOfStream {
//	        break
//	    }
//	    log.Printf("event: %v", ev)
//	}
//
// Advance consumes bytes until it can report the next Event. If the feeder
// has nothing buffered and has not been marked done, Advance returns
// NeedMoreInput; the caller pushes more bytes onto the feeder (for a
// PushFeeder) or refills it (for a SyncFeeder or AsyncFeeder) and calls
// Advance again. This lets a single Parser be suspended at any byte
// boundary and resumed later, including mid-string or mid-escape, without
// losing any state.
//
// # Events
//
// Each event corresponds to a piece of JSON syntax: StartObject/EndObject,
// StartArray/EndArray, FieldName, and one ValueX event per JSON scalar
// type. After an event for which Event.HasValue reports true, call Bytes,
// String, Int, Uint, or Float to read the decoded value; each is valid only
// until the next call to Advance.
//
// Once Advance has accepted a complete top-level value and the feeder is
// done, it returns EndOfStream on every subsequent call. If the feeder is
// marked done before a value is complete, Advance returns ErrUnexpectedEOF,
// and every malformed byte sequence is reported as a *SyntaxError carrying
// the offset at which it was detected. Once Advance returns a non-nil
// error, it returns that same error on every later call; the Parser is
// finished and must be discarded or Reset.
//
// # Streaming mode
//
// Options.WithStreaming(true) lets a single Parser accept a sequence of
// top-level values rather than exactly one, as long as consecutive values
// are self-delimiting or separated by whitespace.
//
// # Trees
//
// Package tree builds an in-memory Value tree from a Parser for callers
// that want the whole document rather than an event stream.
package rjson
