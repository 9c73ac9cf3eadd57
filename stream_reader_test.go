// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import (
	"bytes"
	"testing"
)

func TestStreamReaderAlwaysOwned(t *testing.T) {
	r := NewStreamReader(bytes.NewReader([]byte("hello\r\n")))
	ref, err := r.ReadExact(5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Kind != Owned {
		t.Fatalf("got Kind %v, want Owned", ref.Kind)
	}
	if string(ref.Bytes) != "hello" {
		t.Fatalf("got %q, want %q", ref.Bytes, "hello")
	}
}

func TestStreamReaderReferenceInvalidatedByNextCall(t *testing.T) {
	r := NewStreamReader(bytes.NewReader([]byte("ab\r\ncd\r\n")))
	first, err := r.ReadExact(2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstCopy := first.Clone()
	if _, err := r.ReadExact(2, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(firstCopy) != "ab" {
		t.Fatalf("clone was not preserved across the next read: got %q", firstCopy)
	}
	if string(first.Bytes) != "cd" {
		t.Fatalf("Owned reference was not overwritten by the next read: got %q", first.Bytes)
	}
}

func TestStreamReaderReadUntilEOFFails(t *testing.T) {
	r := NewStreamReader(bytes.NewReader([]byte("abc")))
	if _, err := r.ReadUntil(isCRorLF, false); err == nil {
		t.Fatal("expected error: no terminator before end of input")
	}
}

func TestStreamReaderPeekDoesNotConsume(t *testing.T) {
	r := NewStreamReader(bytes.NewReader([]byte("x")))
	b1, ok1, err := r.Peek()
	if err != nil || !ok1 || b1 != 'x' {
		t.Fatalf("unexpected peek result: %q %v %v", b1, ok1, err)
	}
	b2, ok2, err := r.ReadByte()
	if err != nil || !ok2 || b2 != 'x' {
		t.Fatalf("unexpected read result: %q %v %v", b2, ok2, err)
	}
	if _, ok3, _ := r.Peek(); ok3 {
		t.Fatal("expected end of input after consuming the only byte")
	}
}
