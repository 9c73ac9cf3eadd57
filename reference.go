// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

// RefKind distinguishes the two lifetimes a Reference can carry.
type RefKind int

const (
	// Borrowed means the bytes live inside the caller's original input
	// buffer and are valid for as long as that buffer is. Only SliceReader
	// ever produces this kind.
	Borrowed RefKind = iota
	// Owned means the bytes live in the Reader's own scratch buffer and are
	// only valid until the Reader's next read call. A caller that needs to
	// retain them past that point must copy.
	Owned
)

// Reference is the byte slice returned by every Reader read: either a
// zero-copy borrow into the original input, or a temporary view into the
// Reader's internal scratch buffer. This is the single mechanism that lets
// slice-backed decoding stay copy-free end to end (spec §4.1, §4.3).
type Reference struct {
	Kind  RefKind
	Bytes []byte
}

// String copies Bytes into a new string. Safe to call regardless of Kind,
// and safe to retain past the next Reader call.
func (r Reference) String() string { return string(r.Bytes) }

// Clone copies Bytes into a new, independently owned slice. Safe to call
// regardless of Kind, and safe to retain past the next Reader call.
func (r Reference) Clone() []byte {
	out := make([]byte, len(r.Bytes))
	copy(out, r.Bytes)
	return out
}
