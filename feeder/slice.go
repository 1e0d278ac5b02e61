// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package feeder

// SliceFeeder is a Feeder over a byte slice already fully in memory. It is
// always done once exhausted, so a caller never needs to call a separate
// "end of input" method.
type SliceFeeder struct {
	data []byte
	pos  int
}

// NewSliceFeeder returns a Feeder over data. The caller must not modify
// data while the feeder is in use.
func NewSliceFeeder(data []byte) *SliceFeeder {
	return &SliceFeeder{data: data}
}

// HasInput implements Feeder.
func (s *SliceFeeder) HasInput() bool { return s.pos < len(s.data) }

// IsDone implements Feeder.
func (s *SliceFeeder) IsDone() bool { return !s.HasInput() }

// NextInput implements Feeder.
func (s *SliceFeeder) NextInput() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

// Reset rewinds the feeder to the start of data.
func (s *SliceFeeder) Reset() { s.pos = 0 }
