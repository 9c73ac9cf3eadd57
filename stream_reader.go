// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import (
	"bufio"
	"io"
)

// StreamReader pulls bytes from an io.Reader on demand, copying each frame
// into its own scratch buffer. Every Reference it returns is Owned: valid
// only until the next call into the StreamReader (spec §4.1, §4.3).
type StreamReader struct {
	src *bufio.Reader
	buf []byte

	// peeked holds a byte read ahead of consumption, so Peek never blocks
	// twice for the same byte.
	peeked    byte
	hasPeeked bool
}

// NewStreamReader wraps r, buffering reads through bufio.Reader the way the
// teacher's transport layer buffers socket reads.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{src: bufio.NewReader(r)}
}

func (s *StreamReader) Peek() (byte, bool, error) {
	if s.hasPeeked {
		return s.peeked, true, nil
	}
	b, err := s.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, errIO(err)
	}
	s.peeked = b
	s.hasPeeked = true
	return b, true, nil
}

func (s *StreamReader) ReadByte() (byte, bool, error) {
	if s.hasPeeked {
		s.hasPeeked = false
		return s.peeked, true, nil
	}
	b, err := s.src.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, errIO(err)
	}
	return b, true, nil
}

func (s *StreamReader) ReadExact(n int, consumeCRLF bool) (Reference, error) {
	s.buf = s.buf[:0]
	for len(s.buf) < n {
		b, ok, err := s.ReadByte()
		if err != nil {
			return Reference{}, err
		}
		if !ok {
			return Reference{}, errUnexpectedEOF()
		}
		s.buf = append(s.buf, b)
	}
	if consumeCRLF {
		if err := readCRLF(s); err != nil {
			return Reference{}, err
		}
	}
	return Reference{Kind: Owned, Bytes: s.buf}, nil
}

func (s *StreamReader) ReadUntil(until func(byte) bool, consumeCRLF bool) (Reference, error) {
	s.buf = s.buf[:0]
	for {
		b, ok, err := s.Peek()
		if err != nil {
			return Reference{}, err
		}
		if !ok {
			return Reference{}, errUnexpectedEOF()
		}
		if until(b) {
			break
		}
		if _, _, err := s.ReadByte(); err != nil {
			return Reference{}, err
		}
		s.buf = append(s.buf, b)
	}
	if consumeCRLF {
		if err := readCRLF(s); err != nil {
			return Reference{}, err
		}
	}
	return Reference{Kind: Owned, Bytes: s.buf}, nil
}

func (s *StreamReader) ReadLiteral(lit []byte) error {
	for _, want := range lit {
		got, ok, err := s.ReadByte()
		if err != nil {
			return err
		}
		if !ok {
			return errUnexpectedEOF()
		}
		if got != want {
			return errExpectedValue(string(lit))
		}
	}
	return nil
}
