// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import (
	"math"
	"strconv"
)

// Reader is the uniform byte source the Decoder is built on. Two concrete
// forms implement it: StreamReader (pulls from an io.Reader, copies into an
// internal scratch buffer) and SliceReader (borrows from an in-memory
// buffer with zero copies). Both deliver a Reference so callers can tell
// which lifetime they got (spec §4.1).
type Reader interface {
	// Peek returns the current byte without consuming it, or ok == false at
	// end of input.
	Peek() (b byte, ok bool, err error)

	// ReadByte returns and advances past the current byte, or ok == false
	// at end of input.
	ReadByte() (b byte, ok bool, err error)

	// ReadExact returns a reference to exactly n bytes, failing if fewer
	// remain. If consumeCRLF is true, the trailing "\r\n" is consumed (and
	// required) after those n bytes.
	ReadExact(n int, consumeCRLF bool) (Reference, error)

	// ReadUntil returns a reference to the bytes up to (not including) the
	// first byte for which until returns true. Fails at end of input before
	// a match. If consumeCRLF is true, the trailing "\r\n" is consumed (and
	// required) after the matched prefix.
	ReadUntil(until func(byte) bool, consumeCRLF bool) (Reference, error)

	// ReadLiteral succeeds iff the next len(lit) bytes equal lit exactly,
	// consuming them.
	ReadLiteral(lit []byte) error
}

func readCRLF(r Reader) error {
	return r.ReadLiteral(crlfBytes)
}

var crlfBytes = []byte{'\r', '\n'}

func isCRorLF(b byte) bool { return b == '\r' || b == '\n' }

// readUnsigned reads an unsigned decimal integer with no leading zero
// (except the literal "0" by itself), failing on overflow of the requested
// bit width.
func readUnsigned(r Reader, bits int) (uint64, error) {
	b, ok, err := r.Peek()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errUnexpectedEOF()
	}

	var max uint64 = ^uint64(0)
	if bits < 64 {
		max = uint64(1)<<uint(bits) - 1
	}

	switch {
	case b == '0':
		if _, _, err := r.ReadByte(); err != nil {
			return 0, err
		}
		if nb, ok, err := r.Peek(); err != nil {
			return 0, err
		} else if ok && nb >= '0' && nb <= '9' {
			return 0, errUnexpectedValue("number with leading zero")
		}
		return 0, nil
	case b >= '1' && b <= '9':
		if _, _, err := r.ReadByte(); err != nil {
			return 0, err
		}
		num := uint64(b - '0')
		for {
			nb, ok, err := r.Peek()
			if err != nil {
				return 0, err
			}
			if !ok || nb < '0' || nb > '9' {
				if num > max {
					return 0, errOverflow("integer")
				}
				return num, nil
			}
			digit := uint64(nb - '0')
			if num > (max-digit)/10 {
				return 0, errOverflow("integer")
			}
			num = num*10 + digit
			if _, _, err := r.ReadByte(); err != nil {
				return 0, err
			}
		}
	default:
		return 0, errExpectedValue("number")
	}
}

// readLength reads an unsigned decimal length/count prefix (spec §3's
// "unsigned decimal with no leading zero").
func readLength(r Reader) (int, error) {
	n, err := readUnsigned(r, 63)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// readSigned reads an optional '-' followed by an unsigned decimal.
func readSigned(r Reader, bits int) (int64, error) {
	b, ok, err := r.Peek()
	if err != nil {
		return 0, err
	}
	if ok && b == '-' {
		if _, _, err := r.ReadByte(); err != nil {
			return 0, err
		}
		u, err := readUnsigned(r, bits)
		if err != nil {
			return 0, err
		}
		if u > uint64(1)<<uint(bits-1) {
			return 0, errOverflow("integer")
		}
		return -int64(u), nil
	}
	u, err := readUnsigned(r, bits-1)
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

// readDouble reads "optional '-', optional 'inf' literal, otherwise
// digits/decimal-point/exponent until CR" (spec §4.1).
func readDouble(r Reader) (float64, error) {
	negative := false
	if b, ok, err := r.Peek(); err != nil {
		return 0, err
	} else if ok && b == '-' {
		negative = true
		if _, _, err := r.ReadByte(); err != nil {
			return 0, err
		}
	}

	if b, ok, err := r.Peek(); err != nil {
		return 0, err
	} else if ok && b == 'i' {
		if err := r.ReadLiteral([]byte("inf")); err != nil {
			return 0, err
		}
		if negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	ref, err := r.ReadUntil(isCRorLF, false)
	if err != nil {
		return 0, err
	}
	if len(ref.Bytes) == 0 {
		return 0, errExpectedValue("number")
	}
	s := string(ref.Bytes)
	if negative {
		s = "-" + s
	}
	v, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return 0, errExpectedValue("number")
	}
	return v, nil
}

// readBoolLiteral reads the single byte 't' or 'f' (the '#' marker has
// already been consumed) followed by CRLF.
func readBoolLiteral(r Reader) (bool, error) {
	b, ok, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, errUnexpectedEOF()
	}
	var v bool
	switch b {
	case 't':
		v = true
	case 'f':
		v = false
	default:
		return false, errExpectedValue("bool")
	}
	if err := readCRLF(r); err != nil {
		return false, err
	}
	return v, nil
}
