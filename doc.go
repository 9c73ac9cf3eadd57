// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package resp3 implements a codec for RESP3, the framed, text-with-length
// wire format used by key-value database servers, and bridges it to a
// data-model-driven serialization pattern: a fixed alphabet of logical
// categories (bool, signed/unsigned integer, float, string, byte slice,
// option, unit, seq, map, tuple, newtype wrapper, tagged variant, record)
// that a user-defined type describes itself with by invoking the matching
// category method on a driver.
//
// The package exposes one driver per direction. Decoder consumes a Reader,
// inspects the current RESP3 marker, and calls back into the caller's own
// decode logic one category at a time. Encoder receives category calls from
// the caller's own encode logic and emits RESP3 bytes to a Writer.
//
// A small set of tag-bearing wrapper types (SimpleString, BlobString,
// SimpleError, BlobError, WithAttribute, Push, AttributeSkip, AnySkip,
// OkResponse) disambiguate RESP3 markers that would otherwise collapse onto
// the same category — a plain string, for instance, is ambiguous between
// RESP3's five text-bearing markers, so callers that care which one is on
// the wire use one of these wrappers instead of a bare string.
//
// This package does not provide transport, connection pooling, command
// dispatch, or a code generator to describe arbitrary Go types automatically
// — callers write the handful of Decode*/Encode* calls their type needs by
// hand, the same way one would hand-write a MarshalJSON/UnmarshalJSON pair.
package resp3
