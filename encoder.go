// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import (
	"math"
	"strconv"

	"code.hybscloud.com/resp3/internal/wire"
)

// Encoder drives category-at-a-time encoding onto a Writer, the mirror
// image of Decoder.
type Encoder struct {
	w Writer

	// restrict, when non-zero, holds the marker byte a tagged string
	// wrapper (SimpleString/BlobString/SimpleError/BlobError) is currently
	// being written as. While set, every category method except
	// EncodeString itself rejects with an error — grounding the "restricted
	// sub-encoder" that accepts only a string payload (spec §4.2). A single
	// field suffices in place of a dedicated sub-encoder type because
	// restriction never nests: a tagged string wrapper never itself
	// contains another tagged wrapper.
	restrict byte

	// attributeHeader, when set, redirects the very next map header written
	// from '%' to '|': an attribute's own payload is shaped exactly like a
	// map, but must be framed with the attribute marker (spec §4.4). Cleared
	// as soon as that header is written.
	attributeHeader bool
}

// NewEncoder returns an Encoder writing frames to w.
func NewEncoder(w Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) checkUnrestricted(name string) error {
	if e.restrict != 0 {
		return errUnexpectedValue(name + " inside a tagged string")
	}
	return nil
}

// EncodeBool writes a '#' boolean.
func (e *Encoder) EncodeBool(v bool) error {
	if err := e.checkUnrestricted("bool"); err != nil {
		return err
	}
	if v {
		return e.writeLiteral(wire.Boolean, 't')
	}
	return e.writeLiteral(wire.Boolean, 'f')
}

func (e *Encoder) writeLiteral(marker, lit byte) error {
	if err := e.w.WriteByte(marker); err != nil {
		return err
	}
	if err := e.w.WriteByte(lit); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

// EncodeInt64 writes a ':' integer.
func (e *Encoder) EncodeInt64(v int64) error {
	if err := e.checkUnrestricted("number"); err != nil {
		return err
	}
	if err := e.w.WriteByte(wire.Integer); err != nil {
		return err
	}
	if err := writeSigned(e.w, v); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

// EncodeUint64 writes a ':' integer.
func (e *Encoder) EncodeUint64(v uint64) error {
	if err := e.checkUnrestricted("number"); err != nil {
		return err
	}
	if err := e.w.WriteByte(wire.Integer); err != nil {
		return err
	}
	if err := writeUnsigned(e.w, v); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

// EncodeFloat64 writes a ',' double, rejecting NaN (spec §4.6's KindNaN).
func (e *Encoder) EncodeFloat64(v float64) error {
	if err := e.checkUnrestricted("double"); err != nil {
		return err
	}
	if math.IsNaN(v) {
		return errNaN()
	}
	if err := e.w.WriteByte(wire.Double); err != nil {
		return err
	}
	switch {
	case math.IsInf(v, 1):
		if _, err := e.w.Write([]byte("inf")); err != nil {
			return err
		}
	case math.IsInf(v, -1):
		if _, err := e.w.Write([]byte("-inf")); err != nil {
			return err
		}
	default:
		if _, err := e.w.Write(strconv.AppendFloat(nil, v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return e.w.WriteCRLF()
}

// EncodeString writes a string under whichever marker is in effect: '+'
// when called directly, or the marker named by a restricted tagged-string
// context (SimpleString/BlobString/SimpleError/BlobError).
func (e *Encoder) EncodeString(v string) error {
	marker := e.restrict
	if marker == 0 {
		marker = wire.SimpleString
	}
	switch marker {
	case wire.SimpleString, wire.SimpleError:
		if err := e.w.WriteByte(marker); err != nil {
			return err
		}
		if _, err := e.w.Write([]byte(v)); err != nil {
			return err
		}
		return e.w.WriteCRLF()
	case wire.BlobString, wire.BlobError:
		if err := e.w.WriteByte(marker); err != nil {
			return err
		}
		if err := writeLength(e.w, len(v)); err != nil {
			return err
		}
		if err := e.w.WriteCRLF(); err != nil {
			return err
		}
		if _, err := e.w.Write([]byte(v)); err != nil {
			return err
		}
		return e.w.WriteCRLF()
	default:
		return errUnexpectedValue("string")
	}
}

// EncodeBytes writes raw bytes as a '$' blob string.
func (e *Encoder) EncodeBytes(v []byte) error {
	if err := e.checkUnrestricted("bytes"); err != nil {
		return err
	}
	if err := e.w.WriteByte(wire.BlobString); err != nil {
		return err
	}
	if err := writeLength(e.w, len(v)); err != nil {
		return err
	}
	if err := e.w.WriteCRLF(); err != nil {
		return err
	}
	if _, err := e.w.Write(v); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

// encodeTagged writes v under exactly marker, the mechanism tagged string
// wrapper types use (spec §4.2).
func (e *Encoder) encodeTagged(marker byte, v string) error {
	last := e.restrict
	e.restrict = marker
	err := e.EncodeString(v)
	e.restrict = last
	return err
}

// EncodeNone writes RESP3 null ('_').
func (e *Encoder) EncodeNone() error {
	if err := e.checkUnrestricted("none"); err != nil {
		return err
	}
	return e.writeNull()
}

// EncodeUnit writes RESP3 null ('_'), the unit value's wire form.
func (e *Encoder) EncodeUnit() error {
	if err := e.checkUnrestricted("unit"); err != nil {
		return err
	}
	return e.writeNull()
}

func (e *Encoder) writeNull() error {
	if err := e.w.WriteByte(wire.Null); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

// BeginSeq writes an array header declaring n elements. The caller then
// makes exactly n further Encode*/Begin* calls.
func (e *Encoder) BeginSeq(n int) error {
	if err := e.checkUnrestricted("seq"); err != nil {
		return err
	}
	return e.writeAggregateHeader(wire.Array, n)
}

// BeginSeqUnknown writes an array header with an undeclared length ("*?").
// The caller must close it with EndStream once every element is written
// (spec §4.2's streamed-aggregate form, kept encode-side only — see
// decode-side restriction in DecodeIgnored/BeginSeq).
func (e *Encoder) BeginSeqUnknown() error {
	if err := e.checkUnrestricted("seq"); err != nil {
		return err
	}
	return e.writeUnknownAggregateHeader(wire.Array)
}

// BeginTuple writes a fixed-size aggregate header the same way BeginSeq
// does; the wire format makes no distinction between a seq and a tuple.
func (e *Encoder) BeginTuple(n int) error {
	return e.BeginSeq(n)
}

// BeginMap writes a map header declaring n key/value pairs. The caller
// then makes exactly n key-then-value Encode* call pairs.
func (e *Encoder) BeginMap(n int) error {
	if err := e.checkUnrestricted("map"); err != nil {
		return err
	}
	return e.writeAggregateHeader(wire.Map, n)
}

// BeginMapUnknown writes a map header with an undeclared pair count ("%?").
func (e *Encoder) BeginMapUnknown() error {
	if err := e.checkUnrestricted("map"); err != nil {
		return err
	}
	return e.writeUnknownAggregateHeader(wire.Map)
}

// BeginRecord writes a struct-shaped header the same way BeginMap does.
func (e *Encoder) BeginRecord(n int) error {
	return e.BeginMap(n)
}

// BeginPush writes a '>' out-of-band push header declaring n elements.
func (e *Encoder) BeginPush(n int) error {
	if err := e.checkUnrestricted("push"); err != nil {
		return err
	}
	return e.writeAggregateHeader(wire.Push, n)
}

// EndStream writes the '.' terminator that closes an unknown-length
// aggregate opened with BeginSeqUnknown/BeginMapUnknown.
func (e *Encoder) EndStream() error {
	if err := e.w.WriteByte(wire.StreamEnd); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

func (e *Encoder) writeAggregateHeader(marker byte, n int) error {
	if marker == wire.Map && e.attributeHeader {
		marker = wire.Attribute
		e.attributeHeader = false
	}
	if err := e.w.WriteByte(marker); err != nil {
		return err
	}
	if err := writeLength(e.w, n); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

func (e *Encoder) writeUnknownAggregateHeader(marker byte) error {
	if err := e.w.WriteByte(marker); err != nil {
		return err
	}
	if _, err := e.w.Write([]byte("?")); err != nil {
		return err
	}
	return e.w.WriteCRLF()
}

// EncodeVariantUnit writes { name => null }, the tagged form of a unit
// enum variant (spec §4.2).
func (e *Encoder) EncodeVariantUnit(name string) error {
	if err := e.BeginMap(1); err != nil {
		return err
	}
	if err := e.EncodeString(name); err != nil {
		return err
	}
	return e.EncodeNone()
}

// EncodeVariant writes { name => <value written by encodeValue> }, the
// map-of-one framing every tagged variant shares (spec §4.2, ser.rs).
func (e *Encoder) EncodeVariant(name string, encodeValue func(*Encoder) error) error {
	if err := e.BeginMap(1); err != nil {
		return err
	}
	if err := e.EncodeString(name); err != nil {
		return err
	}
	return encodeValue(e)
}
