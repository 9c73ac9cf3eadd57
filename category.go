// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import "code.hybscloud.com/resp3/internal/wire"

// Category is the fixed alphabet a value describes itself with: bool,
// signed/unsigned integer, float, string, byte slice, option, unit, seq,
// map, tuple, newtype, tagged variant, record (spec §2).
type Category int

const (
	CategoryBool Category = iota
	CategorySigned
	CategoryUnsigned
	CategoryFloat
	CategoryString
	CategoryBytes
	CategoryOption
	CategoryUnit
	CategorySeq
	CategoryMap
	CategoryTuple
	CategoryNewtype
	CategoryVariant
	CategoryRecord
	CategoryAttribute
	CategoryPush
)

// categoryForMarker reports which category a bare (unwrapped) decode call
// should expect for a given RESP3 marker byte, used by DecodeIgnored and
// other any-style dispatch that doesn't know the target type ahead of time
// (spec §4.3's marker table).
func categoryForMarker(m byte) (Category, bool) {
	switch m {
	case wire.SimpleString, wire.BlobString, wire.Verbatim:
		return CategoryString, true
	case wire.SimpleError, wire.BlobError:
		return CategoryString, true
	case wire.Boolean:
		return CategoryBool, true
	case wire.Integer:
		return CategorySigned, true
	case wire.Double:
		return CategoryFloat, true
	case wire.Null:
		return CategoryOption, true
	case wire.Array, wire.Set:
		return CategorySeq, true
	case wire.Map:
		return CategoryMap, true
	case wire.Attribute:
		return CategoryAttribute, true
	case wire.Push:
		return CategoryPush, true
	default:
		return 0, false
	}
}
