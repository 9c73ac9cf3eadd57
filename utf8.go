// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import "unicode/utf8"

// validUTF8 reports whether b is entirely valid UTF-8; on failure it
// returns the byte offset of the longest valid prefix, matching Rust's
// str::from_utf8 error shape that the error taxonomy mirrors (spec §4.6).
func validUTF8(b []byte) (offset int, ok bool) {
	if utf8.Valid(b) {
		return 0, true
	}
	for offset < len(b) {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset, false
		}
		offset += size
	}
	return offset, false
}
