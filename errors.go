// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a nil Reader/Writer or other misuse of the
	// codec's own API, as opposed to a problem with the bytes on the wire.
	ErrInvalidArgument = errors.New("resp3: invalid argument")

	// ErrShortCount names an aggregate frame (array/set/map/tuple) whose
	// declared child count differs from the number of child frames decoded
	// or encoded. No Decoder or Encoder method returns it: neither driver
	// checks the calls the caller makes against a declared count.
	ErrShortCount = errors.New("resp3: aggregate declared count mismatch")
)

// Kind classifies the failures a Decoder or Encoder can report. Every
// failure has exactly one Kind (spec §4.6).
type Kind int

const (
	// KindIO wraps a failure returned by the underlying io.Reader/io.Writer.
	KindIO Kind = iota
	// KindUnexpectedEOF means the input ended before a frame could be completed.
	KindUnexpectedEOF
	// KindExpectedMarker means the next byte was not one of the markers the
	// requested category accepts.
	KindExpectedMarker
	// KindExpectedValue means a marker was fine but its payload (a number, a
	// literal like "inf", a bool tag) was malformed.
	KindExpectedValue
	// KindUnexpectedValue means a value was syntactically fine but not
	// acceptable in context (e.g. a negative number where unsigned was asked).
	KindUnexpectedValue
	// KindInvalidUTF8 means bytes asked to be decoded as a string were not
	// valid UTF-8.
	KindInvalidUTF8
	// KindOverflow means a decimal integer exceeded the requested width.
	KindOverflow
	// KindNaN means the encoder was asked to write a NaN float, which RESP3
	// has no representation for.
	KindNaN
	// KindCustom carries a caller-supplied message, for user Decode/Encode
	// implementations that need to report their own failures through the
	// same error type.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindUnexpectedEOF:
		return "unexpected eof"
	case KindExpectedMarker:
		return "expected marker"
	case KindExpectedValue:
		return "expected value"
	case KindUnexpectedValue:
		return "unexpected value"
	case KindInvalidUTF8:
		return "invalid utf8"
	case KindOverflow:
		return "overflow"
	case KindNaN:
		return "nan rejected"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Error is the codec's single error type. Every Decoder/Encoder failure is
// a *Error; the Kind field distinguishes the cases listed in spec §4.6.
type Error struct {
	Kind Kind

	// Expected names the category or shape that was being decoded/encoded
	// when the failure happened, e.g. "bool", "blob string", "map".
	Expected string

	// Offset is the byte offset of the last known-good UTF-8 prefix, valid
	// only when Kind == KindInvalidUTF8.
	Offset int

	// Msg carries the message for KindCustom.
	Msg string

	// Err wraps the underlying I/O failure, valid only when Kind == KindIO.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("resp3: io error: %v", e.Err)
	case KindUnexpectedEOF:
		return "resp3: unexpected end of input"
	case KindExpectedMarker:
		return fmt.Sprintf("resp3: expected marker for %s", e.Expected)
	case KindExpectedValue:
		return fmt.Sprintf("resp3: expected %s", e.Expected)
	case KindUnexpectedValue:
		return fmt.Sprintf("resp3: unexpected %s", e.Expected)
	case KindInvalidUTF8:
		return fmt.Sprintf("resp3: invalid utf8 at byte offset %d", e.Offset)
	case KindOverflow:
		return fmt.Sprintf("resp3: %s overflow", e.Expected)
	case KindNaN:
		return "resp3: NaN has no RESP3 representation"
	case KindCustom:
		return e.Msg
	default:
		return "resp3: unknown error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

func errIO(err error) error {
	return &Error{Kind: KindIO, Err: err}
}

func errUnexpectedEOF() error {
	return &Error{Kind: KindUnexpectedEOF}
}

func errExpectedMarker(expected string) error {
	return &Error{Kind: KindExpectedMarker, Expected: expected}
}

func errExpectedValue(expected string) error {
	return &Error{Kind: KindExpectedValue, Expected: expected}
}

func errUnexpectedValue(name string) error {
	return &Error{Kind: KindUnexpectedValue, Expected: name}
}

func errInvalidUTF8(offset int) error {
	return &Error{Kind: KindInvalidUTF8, Offset: offset}
}

func errOverflow(name string) error {
	return &Error{Kind: KindOverflow, Expected: name}
}

func errNaN() error {
	return &Error{Kind: KindNaN}
}

// NewCustomError builds a KindCustom *Error, for use by caller-written
// Decode/Encode implementations that need to surface their own failures
// through this package's error type (e.g. OkResponse rejecting anything
// other than "OK").
func NewCustomError(msg string) error {
	return &Error{Kind: KindCustom, Msg: msg}
}
