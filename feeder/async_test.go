// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package feeder_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/creachadair/rjson/feeder"
)

func TestAsyncFeederFillAndDrain(t *testing.T) {
	ctx := context.Background()
	f := feeder.NewAsyncFeeder(strings.NewReader("async"))

	if err := f.FillBuf(ctx); err != nil {
		t.Fatalf("FillBuf: %v", err)
	}
	for _, want := range []byte("async") {
		b, ok := f.NextInput()
		if !ok || b != want {
			t.Fatalf("NextInput() = (%q, %v), want (%q, true)", b, ok, want)
		}
	}
	if !f.IsDone() {
		if err := f.FillBuf(ctx); err != nil {
			t.Fatalf("FillBuf at EOF: %v", err)
		}
	}
	if !f.IsDone() {
		t.Error("IsDone should be true once FillBuf has observed EOF with no buffered bytes")
	}
}

type blockingReader struct {
	unblock chan struct{}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	<-r.unblock
	return 0, errors.New("blockingReader: should never get here in this test")
}

func TestAsyncFeederRespectsCancellation(t *testing.T) {
	r := &blockingReader{unblock: make(chan struct{})}
	defer close(r.unblock)

	f := feeder.NewAsyncFeeder(r)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := f.FillBuf(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("FillBuf returned %v, want context.DeadlineExceeded", err)
	}
}

// drainThenBlockReader serves one short read and then blocks on unblock for
// every read after that, so a test can exercise a second FillBuf call that
// has to discard and re-peek against a reader already drained once.
type drainThenBlockReader struct {
	first   []byte
	served  bool
	unblock chan struct{}
}

func (r *drainThenBlockReader) Read(p []byte) (int, error) {
	if !r.served {
		r.served = true
		return copy(p, r.first), nil
	}
	<-r.unblock
	return 0, errors.New("drainThenBlockReader: should never get here in this test")
}

func TestAsyncFeederCancellationAfterASuccessfulFillLeavesStateUntouched(t *testing.T) {
	r := &drainThenBlockReader{first: []byte("ab"), unblock: make(chan struct{})}
	defer close(r.unblock)

	f := feeder.NewAsyncFeeder(r)

	if err := f.FillBuf(context.Background()); err != nil {
		t.Fatalf("first FillBuf: %v", err)
	}
	for _, want := range []byte("ab") {
		b, ok := f.NextInput()
		if !ok || b != want {
			t.Fatalf("NextInput() = (%q, %v), want (%q, true)", b, ok, want)
		}
	}
	if f.HasInput() {
		t.Fatal("HasInput should be false once the first fill is fully drained")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := f.FillBuf(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("second FillBuf returned %v, want context.DeadlineExceeded", err)
	}

	// The cancelled refill must not have touched pos/buf: no bytes already
	// handed to the parser should come back, and no input should appear out
	// of a buffer that was never actually refilled.
	if f.HasInput() {
		t.Error("HasInput should still be false after a cancelled refill left pos/buf untouched")
	}
	if b, ok := f.NextInput(); ok {
		t.Errorf("NextInput() after cancellation replayed %q instead of reporting no input", b)
	}
}
