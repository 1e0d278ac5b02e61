// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package feeder defines the minimal byte source a Parser pulls from, plus
// the concrete adapters a caller chooses among depending on how its input
// arrives: pushed in from an event loop, already fully in memory, or read
// synchronously or asynchronously from an io.Reader.
package feeder

// Feeder is the byte source a Parser consumes. A Parser calls NextInput
// once per byte it needs; a Feeder that currently has nothing buffered
// returns ok=false, which the Parser surfaces to its own caller as
// NeedMoreInput rather than as an error. IsDone reports whether the Feeder
// will never be able to produce another byte; once IsDone returns true and
// NextInput has returned ok=false, the stream has ended for good.
//
// Implementations need not be safe for concurrent use.
type Feeder interface {
	// HasInput reports whether a call to NextInput would currently
	// succeed.
	HasInput() bool

	// IsDone reports whether the feeder is both out of buffered input and
	// will never receive more.
	IsDone() bool

	// NextInput returns the next input byte, or ok=false if none is
	// currently available.
	NextInput() (b byte, ok bool)
}

// Resetter is implemented by feeders that can be rewound to the state they
// were in when constructed, so a caller can reuse one allocation across a
// sequence of unrelated inputs.
type Resetter interface {
	Reset()
}
