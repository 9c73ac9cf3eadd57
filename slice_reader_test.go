// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import "testing"

func TestSliceReaderZeroCopy(t *testing.T) {
	src := []byte("hello\r\n")
	r := NewSliceReader(src)
	ref, err := r.ReadExact(5, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Kind != Borrowed {
		t.Fatalf("got Kind %v, want Borrowed", ref.Kind)
	}
	if &ref.Bytes[0] != &src[0] {
		t.Fatal("ReadExact copied instead of borrowing from the source slice")
	}
	if r.BytesConsumed() != 7 {
		t.Fatalf("got BytesConsumed %d, want 7", r.BytesConsumed())
	}
}

func TestSliceReaderReadUntil(t *testing.T) {
	r := NewSliceReader([]byte("abc\r\nrest"))
	ref, err := r.ReadUntil(isCRorLF, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(ref.Bytes) != "abc" {
		t.Fatalf("got %q, want %q", ref.Bytes, "abc")
	}
	b, ok, err := r.Peek()
	if err != nil || !ok || b != 'r' {
		t.Fatalf("got (%q, %v, %v), want ('r', true, nil)", b, ok, err)
	}
}

func TestSliceReaderShortInputFails(t *testing.T) {
	r := NewSliceReader([]byte("ab"))
	if _, err := r.ReadExact(5, false); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}

func TestSliceReaderReadLiteral(t *testing.T) {
	r := NewSliceReader([]byte("inf\r\n"))
	if err := r.ReadLiteral([]byte("inf")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r = NewSliceReader([]byte("nan"))
	if err := r.ReadLiteral([]byte("inf")); err == nil {
		t.Fatal("expected mismatch error")
	}
}
