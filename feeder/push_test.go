// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package feeder_test

import (
	"testing"

	"github.com/creachadair/rjson/feeder"
)

func TestPushFeederEmptyAtBeginning(t *testing.T) {
	f := feeder.NewPushFeeder()
	if f.HasInput() {
		t.Error("HasInput should be false before anything is pushed")
	}
	if f.IsDone() {
		t.Error("IsDone should be false before Done is called")
	}
}

func TestPushFeederHasInput(t *testing.T) {
	f := feeder.NewPushFeeder()
	if !f.Push('a') {
		t.Fatal("Push should succeed on a fresh feeder")
	}
	if !f.HasInput() {
		t.Error("HasInput should be true after a successful push")
	}
	b, ok := f.NextInput()
	if !ok || b != 'a' {
		t.Errorf("NextInput() = (%q, %v), want ('a', true)", b, ok)
	}
	if f.HasInput() {
		t.Error("HasInput should be false after draining the only byte")
	}
}

func TestPushFeederIsFull(t *testing.T) {
	f := feeder.NewPushFeeder().WithGrowable(false).WithMaxCapacity(0)
	n := f.PushSlice(make([]byte, 1024))
	if n != 1024 {
		t.Fatalf("PushSlice consumed %d bytes, want 1024", n)
	}
	if !f.IsFull() {
		t.Error("IsFull should report true once the fixed-size ring is saturated")
	}
	if f.Push('x') {
		t.Error("Push should fail once the ring is full and not growable")
	}
}

func TestPushFeederFeedBuf(t *testing.T) {
	f := feeder.NewPushFeeder()
	data := []byte("hello, world")
	n := f.PushSlice(data)
	if n != len(data) {
		t.Fatalf("PushSlice consumed %d of %d bytes", n, len(data))
	}
	for i, want := range data {
		b, ok := f.NextInput()
		if !ok {
			t.Fatalf("NextInput ran dry at index %d", i)
		}
		if b != want {
			t.Errorf("byte %d = %q, want %q", i, b, want)
		}
	}
	if f.HasInput() {
		t.Error("HasInput should be false once every pushed byte is drained")
	}
}

func TestPushFeederIsDone(t *testing.T) {
	f := feeder.NewPushFeeder()
	f.Push('z')
	if f.IsDone() {
		t.Error("IsDone should be false while input remains and Done has not been called")
	}
	f.Done()
	if f.IsDone() {
		t.Error("IsDone should stay false until the buffered byte is drained")
	}
	f.NextInput()
	if !f.IsDone() {
		t.Error("IsDone should be true once Done is called and the ring drains")
	}
}

func TestPushFeederTooFull(t *testing.T) {
	f := feeder.NewPushFeeder().WithGrowable(false).WithMaxCapacity(0)
	n := f.PushSlice(make([]byte, 2048))
	if n != 1024 {
		t.Errorf("PushSlice consumed %d bytes, want 1024 (the fixed ring size)", n)
	}
}

func TestPushFeederGrowsOnDemand(t *testing.T) {
	f := feeder.NewPushFeeder().WithMaxCapacity(4096)
	data := make([]byte, 3000)
	for i := range data {
		data[i] = byte(i)
	}
	n := f.PushSlice(data)
	if n != len(data) {
		t.Fatalf("PushSlice consumed %d of %d bytes, growable feeder should not stall", n, len(data))
	}
	for i, want := range data {
		b, ok := f.NextInput()
		if !ok || b != want {
			t.Fatalf("byte %d = (%v, %v), want (%v, true)", i, b, ok, want)
		}
	}
}

func TestPushFeederRespectsMaxCapacity(t *testing.T) {
	f := feeder.NewPushFeeder().WithMaxCapacity(2048)
	n := f.PushSlice(make([]byte, 4096))
	if n != 2048 {
		t.Errorf("PushSlice consumed %d bytes, want exactly the 2048-byte ceiling", n)
	}
	if !f.IsFull() {
		t.Error("IsFull should report true once the feeder has grown to its ceiling")
	}
}

func TestPushFeederReset(t *testing.T) {
	f := feeder.NewPushFeeder()
	f.PushSlice([]byte("abc"))
	f.Done()
	f.Reset()
	if f.HasInput() || f.IsDone() {
		t.Error("Reset should clear both buffered input and the done flag")
	}
	if !f.Push('q') {
		t.Error("Push should succeed again after Reset")
	}
}
