// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package feeder

// PushFeeder is a Feeder for callers that receive JSON bytes from an event
// loop or a network read and want to hand them to a Parser as they arrive,
// rather than blocking a goroutine on an io.Reader. The caller pushes bytes
// with Push or PushSlice, checking IsFull before each push, and calls Done
// once no more bytes will ever arrive.
//
// The buffered bytes live in a circular byte slice rather than a growable
// queue; by default the slice doubles in size whenever it fills and a push
// is still pending, up to a configurable ceiling, so a caller that pushes
// faster than the parser drains does not have to stall on a fixed-size ring.
type PushFeeder struct {
	buf      []byte
	r, w     int
	n        int
	done     bool
	growable bool
	maxCap   int // 0 means unbounded growth
}

// NewPushFeeder returns a PushFeeder with a 1024-byte initial ring that may
// grow up to 1 MiB by doubling.
func NewPushFeeder() *PushFeeder {
	return &PushFeeder{
		buf:      make([]byte, 1024),
		growable: true,
		maxCap:   1 << 20,
	}
}

// WithGrowable controls whether the ring may reallocate larger when full.
// It returns the receiver to allow chaining.
func (p *PushFeeder) WithGrowable(ok bool) *PushFeeder { p.growable = ok; return p }

// WithMaxCapacity sets the ceiling, in bytes, to which the ring may grow.
// Zero means unbounded. It returns the receiver to allow chaining.
func (p *PushFeeder) WithMaxCapacity(n int) *PushFeeder { p.maxCap = n; return p }

// Push appends a single byte, reporting false if the ring is full and
// cannot grow.
func (p *PushFeeder) Push(b byte) bool {
	if p.full() && !p.grow() {
		return false
	}
	p.buf[p.w] = b
	p.w = (p.w + 1) % len(p.buf)
	p.n++
	return true
}

// PushSlice appends as many bytes of data as the ring has room for,
// growing it as permitted, and returns the number consumed. The caller
// must retry with the remainder of data on a subsequent call once the
// parser has drained some input.
func (p *PushFeeder) PushSlice(data []byte) int {
	i := 0
	for i < len(data) && p.Push(data[i]) {
		i++
	}
	return i
}

// IsFull reports whether the next Push would fail.
func (p *PushFeeder) IsFull() bool {
	if !p.full() {
		return false
	}
	return !p.growable || p.nextCap() <= len(p.buf)
}

// Done marks the feeder as having received all of its input. Previously
// pushed bytes already in the ring remain available to NextInput.
func (p *PushFeeder) Done() { p.done = true }

// Reset restores the feeder to its just-constructed state, discarding any
// buffered input but keeping the ring's current capacity.
func (p *PushFeeder) Reset() {
	p.r, p.w, p.n, p.done = 0, 0, 0, false
}

func (p *PushFeeder) full() bool { return p.n == len(p.buf) }

func (p *PushFeeder) nextCap() int {
	n := len(p.buf) * 2
	if n == 0 {
		n = 1024
	}
	if p.maxCap > 0 && n > p.maxCap {
		n = p.maxCap
	}
	return n
}

func (p *PushFeeder) grow() bool {
	if !p.growable {
		return false
	}
	newCap := p.nextCap()
	if newCap <= len(p.buf) {
		return false
	}
	nb := make([]byte, newCap)
	for i := 0; i < p.n; i++ {
		nb[i] = p.buf[(p.r+i)%len(p.buf)]
	}
	p.buf, p.r, p.w = nb, 0, p.n
	return true
}

// HasInput implements Feeder.
func (p *PushFeeder) HasInput() bool { return p.n > 0 }

// IsDone implements Feeder.
func (p *PushFeeder) IsDone() bool { return p.done && p.n == 0 }

// NextInput implements Feeder.
func (p *PushFeeder) NextInput() (byte, bool) {
	if p.n == 0 {
		return 0, false
	}
	b := p.buf[p.r]
	p.r = (p.r + 1) % len(p.buf)
	p.n--
	return b, true
}
