// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import "code.hybscloud.com/resp3/internal/wire"

// Decoder drives category-at-a-time decoding off a Reader. Unlike a
// serde-style Visitor, callers invoke the concrete Decode*/Begin* method
// that matches the Go type they're filling in, the same way encoding/gob or
// a hand-written UnmarshalJSON would.
type Decoder struct {
	r Reader

	// skipAttribute controls whether a leading '|' attribute frame is
	// silently discarded before the next value is inspected. It starts
	// true and is temporarily flipped false for the duration of an explicit
	// attribute capture (the attribute's own payload and the value it
	// precedes), restoring the caller's previous setting afterward — a single boolean plays the role of a LIFO stack because
	// attribute capture never recurses into itself (spec §4.4).
	skipAttribute bool
}

// NewDecoder returns a Decoder reading frames from r.
func NewDecoder(r Reader) *Decoder {
	return &Decoder{r: r, skipAttribute: true}
}

// peek returns the next marker byte, transparently discarding any leading
// attribute frames first when skipAttribute is set.
func (d *Decoder) peek() (byte, error) {
	b, ok, err := d.r.Peek()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errUnexpectedEOF()
	}
	if b == wire.Attribute && d.skipAttribute {
		if err := d.skipAttributeFrame(); err != nil {
			return 0, err
		}
		return d.peek()
	}
	return b, nil
}

// peekRaw returns the next marker byte without discarding an attribute
// frame, used by the few call sites that must see '|' themselves
// (BeginMap, DecodeWithAttribute).
func (d *Decoder) peekRaw() (byte, error) {
	b, ok, err := d.r.Peek()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errUnexpectedEOF()
	}
	return b, nil
}

func (d *Decoder) consume() error {
	_, _, err := d.r.ReadByte()
	return err
}

// skipAttributeFrame consumes a whole '|' frame (its key/value pairs
// included) by decoding and discarding every element generically.
func (d *Decoder) skipAttributeFrame() error {
	b, err := d.peekRaw()
	if err != nil {
		return err
	}
	if b != wire.Attribute {
		return errExpectedMarker("attribute")
	}
	if err := d.consume(); err != nil {
		return err
	}
	n, err := readLength(d.r)
	if err != nil {
		return err
	}
	if err := readCRLF(d.r); err != nil {
		return err
	}
	for i := 0; i < n*2; i++ {
		if err := d.DecodeIgnored(); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBool decodes a '#' boolean.
func (d *Decoder) DecodeBool() (bool, error) {
	b, err := d.peek()
	if err != nil {
		return false, err
	}
	if b != wire.Boolean {
		return false, errExpectedMarker("bool")
	}
	if err := d.consume(); err != nil {
		return false, err
	}
	return readBoolLiteral(d.r)
}

// DecodeInt64 decodes a ':' integer, allowing a leading '-'.
func (d *Decoder) DecodeInt64() (int64, error) {
	b, err := d.peek()
	if err != nil {
		return 0, err
	}
	if b != wire.Integer {
		return 0, errExpectedMarker("number")
	}
	if err := d.consume(); err != nil {
		return 0, err
	}
	v, err := readSigned(d.r, 64)
	if err != nil {
		return 0, err
	}
	if err := readCRLF(d.r); err != nil {
		return 0, err
	}
	return v, nil
}

// DecodeUint64 decodes a ':' integer, rejecting a leading '-'.
func (d *Decoder) DecodeUint64() (uint64, error) {
	b, err := d.peek()
	if err != nil {
		return 0, err
	}
	if b != wire.Integer {
		return 0, errExpectedMarker("number")
	}
	if err := d.consume(); err != nil {
		return 0, err
	}
	if nb, ok, err := d.r.Peek(); err != nil {
		return 0, err
	} else if ok && nb == '-' {
		return 0, errUnexpectedValue("signed number")
	}
	v, err := readUnsigned(d.r, 64)
	if err != nil {
		return 0, err
	}
	if err := readCRLF(d.r); err != nil {
		return 0, err
	}
	return v, nil
}

// DecodeFloat64 decodes either a ',' double or (for interoperability with
// servers that reply with a plain integer where a float was expected) a
// ':' integer reinterpreted as a float.
func (d *Decoder) DecodeFloat64() (float64, error) {
	b, err := d.peek()
	if err != nil {
		return 0, err
	}
	switch b {
	case wire.Double:
		if err := d.consume(); err != nil {
			return 0, err
		}
		v, err := readDouble(d.r)
		if err != nil {
			return 0, err
		}
		if err := readCRLF(d.r); err != nil {
			return 0, err
		}
		return v, nil
	case wire.Integer:
		if err := d.consume(); err != nil {
			return 0, err
		}
		v, err := readSigned(d.r, 64)
		if err != nil {
			return 0, err
		}
		if err := readCRLF(d.r); err != nil {
			return 0, err
		}
		return float64(v), nil
	default:
		return 0, errExpectedMarker("number|double")
	}
}

// stringMarker reports whether b is one of the five markers that carry
// string-shaped payload (spec §4.2).
func stringMarker(b byte) bool {
	switch b {
	case wire.SimpleString, wire.SimpleError, wire.BlobString, wire.BlobError, wire.Verbatim:
		return true
	default:
		return false
	}
}

func (d *Decoder) readStringPayload() (Reference, error) {
	b, err := d.peek()
	if err != nil {
		return Reference{}, err
	}
	if !stringMarker(b) {
		return Reference{}, errExpectedMarker("string|error")
	}
	if err := d.consume(); err != nil {
		return Reference{}, err
	}
	switch b {
	case wire.SimpleString, wire.SimpleError:
		return d.r.ReadUntil(isCRorLF, true)
	default: // BlobString, BlobError, Verbatim
		n, err := readLength(d.r)
		if err != nil {
			return Reference{}, err
		}
		if err := readCRLF(d.r); err != nil {
			return Reference{}, err
		}
		return d.r.ReadExact(n, true)
	}
}

// DecodeStringRef decodes any string-shaped value without copying when the
// underlying Reader can avoid it (SliceReader).
func (d *Decoder) DecodeStringRef() (Reference, error) {
	ref, err := d.readStringPayload()
	if err != nil {
		return Reference{}, err
	}
	if off, ok := validUTF8(ref.Bytes); !ok {
		return Reference{}, errInvalidUTF8(off)
	}
	return ref, nil
}

// DecodeString decodes any string-shaped value into an owned Go string.
func (d *Decoder) DecodeString() (string, error) {
	ref, err := d.DecodeStringRef()
	if err != nil {
		return "", err
	}
	return ref.String(), nil
}

// DecodeBytesRef decodes any string-shaped value as raw bytes, skipping the
// UTF-8 validity check (spec §4.2's byte-slice category).
func (d *Decoder) DecodeBytesRef() (Reference, error) {
	return d.readStringPayload()
}

// DecodeBytes decodes any string-shaped value into an owned []byte.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	ref, err := d.DecodeBytesRef()
	if err != nil {
		return nil, err
	}
	return ref.Clone(), nil
}

// DecodeOption reports whether the next value is RESP3 null ('_'),
// consuming it if so. If it returns false, the value itself is still
// pending and must be decoded with the matching Decode*/Begin* call.
func (d *Decoder) DecodeOption() (isNone bool, err error) {
	b, err := d.peek()
	if err != nil {
		return false, err
	}
	if b != wire.Null {
		return false, nil
	}
	if err := d.consume(); err != nil {
		return false, err
	}
	if err := readCRLF(d.r); err != nil {
		return false, err
	}
	return true, nil
}

// DecodeUnit decodes RESP3 null as a unit value, failing if the next marker
// isn't '_'.
func (d *Decoder) DecodeUnit() error {
	b, err := d.peek()
	if err != nil {
		return err
	}
	if b != wire.Null {
		return errExpectedMarker("null")
	}
	if err := d.consume(); err != nil {
		return err
	}
	return readCRLF(d.r)
}

// BeginSeq decodes an array or set header, returning its declared element
// count. The caller then makes exactly n further Decode*/Begin* calls.
func (d *Decoder) BeginSeq() (n int, err error) {
	b, err := d.peek()
	if err != nil {
		return 0, err
	}
	if b != wire.Array && b != wire.Set {
		return 0, errExpectedMarker("array|set")
	}
	if err := d.consume(); err != nil {
		return 0, err
	}
	n, err = readLength(d.r)
	if err != nil {
		return 0, err
	}
	return n, readCRLF(d.r)
}

// BeginTuple decodes a fixed-size aggregate the same way BeginSeq does; the
// wire format makes no distinction between a seq and a tuple (spec §4.2).
func (d *Decoder) BeginTuple() (n int, err error) {
	return d.BeginSeq()
}

// BeginMap decodes a map or attribute header, returning its declared pair
// count. The caller then makes exactly n key/value Decode* call pairs.
// Both '%' (map) and '|' (attribute) markers are accepted here, since an
// attribute's own payload is shaped exactly like a map (spec §4.4). A '|'
// header is returned only while attribute auto-skip is off (during
// DecodeWithAttribute); otherwise the attribute frame is discarded and the
// map header after it is read.
func (d *Decoder) BeginMap() (n int, err error) {
	b, err := d.peekRaw()
	if err != nil {
		return 0, err
	}
	if b == wire.Attribute && d.skipAttribute {
		if err := d.skipAttributeFrame(); err != nil {
			return 0, err
		}
		return d.BeginMap()
	}
	if b != wire.Map && b != wire.Attribute {
		return 0, errExpectedMarker("map")
	}
	if err := d.consume(); err != nil {
		return 0, err
	}
	n, err = readLength(d.r)
	if err != nil {
		return 0, err
	}
	return n, readCRLF(d.r)
}

// BeginRecord decodes a struct-shaped value the same way BeginMap does
// (spec §4.2).
func (d *Decoder) BeginRecord() (n int, err error) {
	return d.BeginMap()
}

// BeginPush decodes a '>' out-of-band push header, returning its declared
// element count (spec §4.5).
func (d *Decoder) BeginPush() (n int, err error) {
	b, err := d.peek()
	if err != nil {
		return 0, err
	}
	if b != wire.Push {
		return 0, errExpectedMarker("push")
	}
	if err := d.consume(); err != nil {
		return 0, err
	}
	n, err = readLength(d.r)
	if err != nil {
		return 0, err
	}
	return n, readCRLF(d.r)
}

// DecodeVariant decodes a tagged-variant frame — a map of exactly one
// pair whose key names the variant — and returns that name. The caller
// then decodes the variant's payload with whatever Decode*/Begin* call
// matches it.
func (d *Decoder) DecodeVariant() (name string, err error) {
	n, err := d.BeginMap()
	if err != nil {
		return "", err
	}
	if n != 1 {
		return "", errUnexpectedValue("tagged variant frame")
	}
	return d.DecodeString()
}

// DecodeTaggedString decodes a string-shaped value while requiring it to
// arrive on exactly the given marker, for the newtype wrapper types that
// disambiguate RESP3's otherwise-collapsed string markers (spec §4.2).
func (d *Decoder) DecodeTaggedString(marker byte) (string, error) {
	b, err := d.peek()
	if err != nil {
		return "", err
	}
	if b != marker {
		return "", errExpectedMarker(string(marker))
	}
	return d.DecodeString()
}

// DecodeWithAttribute decodes a value preceded by an explicit '|'
// attribute frame, capturing rather than discarding it. decodeAttr decodes
// the attribute's own map payload (via BeginMap) into A; decodeValue
// decodes the value that follows into V.
func DecodeWithAttribute[A any, V any](d *Decoder, decodeAttr func(*Decoder) (A, error), decodeValue func(*Decoder) (V, error)) (WithAttribute[A, V], error) {
	b, err := d.peekRaw()
	if err != nil {
		return WithAttribute[A, V]{}, err
	}
	if b != wire.Attribute {
		return WithAttribute[A, V]{}, errExpectedMarker("attribute")
	}
	last := d.skipAttribute
	d.skipAttribute = false
	attr, err := decodeAttr(d)
	if err != nil {
		d.skipAttribute = last
		return WithAttribute[A, V]{}, err
	}
	// skipAttribute stays disabled through the value decode too: the
	// attribute frame and the value it precedes are decoded as one
	// contiguous region with attribute auto-skip suspended throughout,
	// restored only once both are read (spec §4.4).
	val, err := decodeValue(d)
	d.skipAttribute = last
	if err != nil {
		return WithAttribute[A, V]{}, err
	}
	return WithAttribute[A, V]{Attr: attr, Value: val}, nil
}

// DecodePush decodes an out-of-band push message, applying decodeElems to
// its declared element count. decodeElems is called once with that count
// and decodes all of the elements with whatever calls match the caller's
// payload.
func DecodePush[P any](d *Decoder, decodeElems func(*Decoder, int) (P, error)) (Push[P], error) {
	n, err := d.BeginPush()
	if err != nil {
		return Push[P]{}, err
	}
	val, err := decodeElems(d, n)
	if err != nil {
		return Push[P]{}, err
	}
	return Push[P]{Elements: val}, nil
}

// DecodeIgnored decodes and discards one value of whatever category is
// next on the wire, without the caller needing to know its shape ahead of
// time. Used internally to skip attribute payloads, and exported for
// callers that need to skip a field they don't care about.
func (d *Decoder) DecodeIgnored() error {
	b, err := d.peek()
	if err != nil {
		return err
	}
	cat, ok := categoryForMarker(b)
	if !ok {
		return errExpectedValue("type header")
	}
	switch cat {
	case CategoryString:
		_, err := d.DecodeBytesRef()
		return err
	case CategoryBool:
		_, err := d.DecodeBool()
		return err
	case CategorySigned:
		_, err := d.DecodeInt64()
		return err
	case CategoryFloat:
		_, err := d.DecodeFloat64()
		return err
	case CategoryOption:
		_, err := d.DecodeOption()
		return err
	case CategorySeq:
		n, err := d.BeginSeq()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := d.DecodeIgnored(); err != nil {
				return err
			}
		}
		return nil
	case CategoryMap, CategoryAttribute:
		n, err := d.BeginMap()
		if err != nil {
			return err
		}
		for i := 0; i < n*2; i++ {
			if err := d.DecodeIgnored(); err != nil {
				return err
			}
		}
		return nil
	case CategoryPush:
		n, err := d.BeginPush()
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := d.DecodeIgnored(); err != nil {
				return err
			}
		}
		return nil
	default:
		return errExpectedValue("type header")
	}
}
