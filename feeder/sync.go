// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package feeder

import (
	"bufio"
	"io"
)

// SyncFeeder is a Feeder that blocks on an io.Reader. It exposes exactly
// one suspension point, FillBuf, which the caller invokes whenever a
// Parser reports NeedMoreInput; everything else is a non-blocking slice
// scan over whatever bufio last read.
type SyncFeeder struct {
	r      *bufio.Reader
	buf    []byte
	pos    int
	filled bool
}

// NewSyncFeeder returns a feeder reading from r with bufio's default
// buffer size.
func NewSyncFeeder(r io.Reader) *SyncFeeder {
	return &SyncFeeder{r: bufio.NewReader(r)}
}

// NewSyncFeederSize is like NewSyncFeeder but sizes the underlying
// bufio.Reader explicitly.
func NewSyncFeederSize(r io.Reader, size int) *SyncFeeder {
	return &SyncFeeder{r: bufio.NewReaderSize(r, size)}
}

// FillBuf discards the bytes already consumed by NextInput and reads the
// next chunk from the underlying reader, blocking until at least one byte
// is available or the reader reports an error (including io.EOF, which
// FillBuf does not itself return — IsDone reports that state instead).
func (s *SyncFeeder) FillBuf() error {
	if s.pos > 0 {
		if _, err := s.r.Discard(s.pos); err != nil {
			return err
		}
		s.pos = 0
	}
	_, err := s.r.Peek(1)
	s.filled = true
	if err != nil && err != io.EOF {
		return err
	}
	buf, _ := s.r.Peek(s.r.Buffered())
	s.buf = buf
	return nil
}

// HasInput implements Feeder.
func (s *SyncFeeder) HasInput() bool { return s.pos < len(s.buf) }

// IsDone implements Feeder.
func (s *SyncFeeder) IsDone() bool { return s.filled && len(s.buf) == 0 }

// NextInput implements Feeder.
func (s *SyncFeeder) NextInput() (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	b := s.buf[s.pos]
	s.pos++
	return b, true
}
