// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import (
	"strings"

	"code.hybscloud.com/resp3/internal/wire"
)

// SimpleString, BlobString, SimpleError and BlobError disambiguate the five
// RESP3 markers that otherwise collapse onto the same string category
// (spec §4.2): a bare string round-trips through '+', but a caller that
// needs exactly '$' or exactly one of the two error markers reaches for
// the matching wrapper type instead.
type SimpleString string
type BlobString string
type SimpleError string
type BlobError string

// DecodeSimpleString decodes a value that must arrive on '+'.
func DecodeSimpleString(d *Decoder) (SimpleString, error) {
	s, err := d.DecodeTaggedString(wire.SimpleString)
	return SimpleString(s), err
}

// DecodeBlobString decodes a value that must arrive on '$'.
func DecodeBlobString(d *Decoder) (BlobString, error) {
	s, err := d.DecodeTaggedString(wire.BlobString)
	return BlobString(s), err
}

// DecodeSimpleError decodes a value that must arrive on '-'.
func DecodeSimpleError(d *Decoder) (SimpleError, error) {
	s, err := d.DecodeTaggedString(wire.SimpleError)
	return SimpleError(s), err
}

// DecodeBlobError decodes a value that must arrive on '!'.
func DecodeBlobError(d *Decoder) (BlobError, error) {
	s, err := d.DecodeTaggedString(wire.BlobError)
	return BlobError(s), err
}

// Encode writes v tagged exactly as '+'.
func (v SimpleString) Encode(e *Encoder) error { return e.encodeTagged(wire.SimpleString, string(v)) }

// Encode writes v tagged exactly as '$'.
func (v BlobString) Encode(e *Encoder) error { return e.encodeTagged(wire.BlobString, string(v)) }

// Encode writes v tagged exactly as '-'.
func (v SimpleError) Encode(e *Encoder) error { return e.encodeTagged(wire.SimpleError, string(v)) }

// Encode writes v tagged exactly as '!'.
func (v BlobError) Encode(e *Encoder) error { return e.encodeTagged(wire.BlobError, string(v)) }

// WithAttribute pairs a decoded/encoded value with the attribute frame that
// preceded it on the wire, instead of silently discarding it the way a
// plain decode call does (spec §4.4).
type WithAttribute[A any, V any] struct {
	Attr  A
	Value V
}

// IntoInner splits a WithAttribute back into its attribute and value parts.
func (w WithAttribute[A, V]) IntoInner() (A, V) {
	return w.Attr, w.Value
}

// EncodeWithAttribute writes an explicit '|' attribute frame ahead of val,
// the inverse of DecodeWithAttribute. encodeAttr must write its payload as a
// single map-shaped header (BeginMap/BeginRecord) followed by its key/value
// pairs; that header is redirected from '%' to '|' so the result round-trips
// through DecodeWithAttribute (spec §4.4).
func EncodeWithAttribute[A any, V any](e *Encoder, wa WithAttribute[A, V], encodeAttr func(*Encoder, A) error, encodeValue func(*Encoder, V) error) error {
	last := e.restrict
	e.restrict = 0
	e.attributeHeader = true
	if err := encodeAttr(e, wa.Attr); err != nil {
		e.restrict = last
		e.attributeHeader = false
		return err
	}
	e.restrict = last
	return encodeValue(e, wa.Value)
}

// Push wraps the element payload of an out-of-band '>' push message (spec §4.5).
type Push[P any] struct {
	Elements P
}

// EncodePush writes a '>' push header for n elements, then invokes
// encodeElems to write the declared elements.
func EncodePush[P any](e *Encoder, n int, elements P, encodeElems func(*Encoder, P) error) error {
	if err := e.BeginPush(n); err != nil {
		return err
	}
	return encodeElems(e, elements)
}

// AttributeSkip explicitly decodes and discards one '|' attribute frame,
// the same way a plain decode call implicitly does by default.
type AttributeSkip struct{}

// DecodeAttributeSkip consumes one attribute frame, requiring the next
// marker to be '|'.
func DecodeAttributeSkip(d *Decoder) (AttributeSkip, error) {
	if err := d.skipAttributeFrame(); err != nil {
		return AttributeSkip{}, err
	}
	return AttributeSkip{}, nil
}

// AnySkip decodes and discards one value of whatever category is next,
// regardless of shape.
type AnySkip struct{}

// DecodeAnySkip consumes and discards the next value.
func DecodeAnySkip(d *Decoder) (AnySkip, error) {
	if err := d.DecodeIgnored(); err != nil {
		return AnySkip{}, err
	}
	return AnySkip{}, nil
}

// OkResponse decodes a string reply while requiring it to read "OK"
// case-insensitively, the shape command acknowledgements take (spec §4.5).
type OkResponse struct{}

// DecodeOkResponse decodes a string value and fails unless it reads "OK",
// matched case-insensitively.
func DecodeOkResponse(d *Decoder) (OkResponse, error) {
	s, err := d.DecodeString()
	if err != nil {
		return OkResponse{}, err
	}
	if !strings.EqualFold(s, "OK") {
		return OkResponse{}, NewCustomError("expected \"OK\" response, got " + s)
	}
	return OkResponse{}, nil
}

// Encode writes the literal simple string "+OK\r\n".
func (OkResponse) Encode(e *Encoder) error {
	return e.EncodeString("OK")
}
