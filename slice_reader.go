// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

// SliceReader borrows from an in-memory buffer without copying. Every
// Reference it returns is Borrowed and stays valid for as long as the
// caller's original buffer does (spec §4.1, §4.3).
type SliceReader struct {
	buf []byte
	pos int
}

// NewSliceReader wraps buf for zero-copy decoding. buf must not be modified
// while the SliceReader or any Reference it produced is still in use.
func NewSliceReader(buf []byte) *SliceReader {
	return &SliceReader{buf: buf}
}

// BytesConsumed returns how many bytes of the original buffer have been
// consumed so far.
func (s *SliceReader) BytesConsumed() int { return s.pos }

func (s *SliceReader) Peek() (byte, bool, error) {
	if s.pos >= len(s.buf) {
		return 0, false, nil
	}
	return s.buf[s.pos], true, nil
}

func (s *SliceReader) ReadByte() (byte, bool, error) {
	if s.pos >= len(s.buf) {
		return 0, false, nil
	}
	b := s.buf[s.pos]
	s.pos++
	return b, true, nil
}

func (s *SliceReader) ReadExact(n int, consumeCRLF bool) (Reference, error) {
	if s.pos+n > len(s.buf) {
		return Reference{}, errUnexpectedEOF()
	}
	ref := Reference{Kind: Borrowed, Bytes: s.buf[s.pos : s.pos+n]}
	s.pos += n
	if consumeCRLF {
		if err := readCRLF(s); err != nil {
			return Reference{}, err
		}
	}
	return ref, nil
}

func (s *SliceReader) ReadUntil(until func(byte) bool, consumeCRLF bool) (Reference, error) {
	start := s.pos
	for {
		if s.pos >= len(s.buf) {
			return Reference{}, errUnexpectedEOF()
		}
		if until(s.buf[s.pos]) {
			break
		}
		s.pos++
	}
	ref := Reference{Kind: Borrowed, Bytes: s.buf[start:s.pos]}
	if consumeCRLF {
		if err := readCRLF(s); err != nil {
			return Reference{}, err
		}
	}
	return ref, nil
}

func (s *SliceReader) ReadLiteral(lit []byte) error {
	if s.pos+len(lit) > len(s.buf) {
		return errUnexpectedEOF()
	}
	for i, want := range lit {
		if s.buf[s.pos+i] != want {
			return errExpectedValue(string(lit))
		}
	}
	s.pos += len(lit)
	return nil
}
