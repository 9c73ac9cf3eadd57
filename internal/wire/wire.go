// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wire holds the RESP3 marker bytes shared by the decoder and
// encoder drivers, so the two sides of the codec never drift out of sync
// on which byte means what.
package wire

// Marker bytes, one per RESP3 frame kind (spec §3).
const (
	SimpleString byte = '+'
	SimpleError  byte = '-'
	BlobString   byte = '$'
	BlobError    byte = '!'
	Verbatim     byte = '='
	Integer      byte = ':'
	Double       byte = ','
	Boolean      byte = '#'
	Null         byte = '_'
	Array        byte = '*'
	Set          byte = '~'
	Map          byte = '%'
	Attribute    byte = '|'
	Push         byte = '>'
	StreamEnd    byte = '.'
)

// CRLF is the two-byte terminator every RESP3 frame ends or sub-terminates with.
var CRLF = [2]byte{'\r', '\n'}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsCR reports whether b starts the CRLF terminator.
func IsCR(b byte) bool { return b == '\r' }
