// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package rjson

// Options control the resource limits and optional behaviors of a Parser.
// The zero Options is not valid; construct one with DefaultOptions and
// adjust it with the With* methods, which return the receiver to allow
// chaining.
type Options struct {
	maxDepth       int
	maxLexemeLen   int // 0 means unbounded
	maxPushBuffer  int
	growPushBuffer bool
	streaming      bool
}

// DefaultOptions returns the default parser configuration: a maximum
// nesting depth of 1024, no limit on lexeme length, a push buffer that may
// grow up to 1 MiB, and streaming mode disabled.
func DefaultOptions() Options {
	return Options{
		maxDepth:       1024,
		maxLexemeLen:   0,
		maxPushBuffer:  1 << 20,
		growPushBuffer: true,
		streaming:      false,
	}
}

// WithMaxDepth sets the maximum nesting depth of the parse stack. Exceeding
// it causes Advance to report a *MaxDepthExceededError.
func (o Options) WithMaxDepth(n int) Options { o.maxDepth = n; return o }

// WithMaxLexemeLength sets the maximum length in bytes of a single string
// or number lexeme. A value of 0 means unbounded. Exceeding it causes
// Advance to report a *LexemeTooLongError. Keywords (true, false, null)
// are not counted against the limit.
func (o Options) WithMaxLexemeLength(n int) Options { o.maxLexemeLen = n; return o }

// WithMaxPushBuffer sets the ceiling, in bytes, to which a growable push
// feeder may expand its ring buffer. It has no effect on feeders other than
// feeder.PushFeeder.
func (o Options) WithMaxPushBuffer(n int) Options { o.maxPushBuffer = n; return o }

// WithGrowablePushBuffer controls whether a push feeder is permitted to
// reallocate a larger ring when full, up to WithMaxPushBuffer's ceiling.
func (o Options) WithGrowablePushBuffer(ok bool) Options { o.growPushBuffer = ok; return o }

// WithStreaming enables streaming mode, in which the parser accepts a
// sequence of top-level JSON values rather than exactly one. Values must be
// self-delimiting (objects, arrays, strings) or separated by whitespace or
// another self-delimiting value or keyword.
func (o Options) WithStreaming(ok bool) Options { o.streaming = ok; return o }

// MaxDepth reports the configured maximum nesting depth.
func (o Options) MaxDepth() int { return o.maxDepth }

// MaxLexemeLength reports the configured maximum lexeme length, or 0 for
// unbounded.
func (o Options) MaxLexemeLength() int { return o.maxLexemeLen }

// MaxPushBuffer reports the configured push-buffer growth ceiling.
func (o Options) MaxPushBuffer() int { return o.maxPushBuffer }

// GrowablePushBuffer reports whether a push feeder may grow.
func (o Options) GrowablePushBuffer() bool { return o.growPushBuffer }

// Streaming reports whether streaming mode is enabled.
func (o Options) Streaming() bool { return o.streaming }
