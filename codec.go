// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resp3

import "io"

// DecodeFromStream returns a Decoder that pulls bytes from r on demand,
// copying each frame into scratch memory (spec §6).
func DecodeFromStream(r io.Reader) (*Decoder, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}
	return NewDecoder(NewStreamReader(r)), nil
}

// DecodeFromSlice returns a Decoder that borrows from buf without copying,
// for as long as buf is not modified concurrently (spec §6).
func DecodeFromSlice(buf []byte) (*Decoder, *SliceReader, error) {
	if buf == nil {
		return nil, nil, ErrInvalidArgument
	}
	sr := NewSliceReader(buf)
	return NewDecoder(sr), sr, nil
}

// EncodeToSink returns an Encoder that writes frames to w as they're
// produced (spec §6).
func EncodeToSink(w io.Writer) (*Encoder, error) {
	if w == nil {
		return nil, ErrInvalidArgument
	}
	return NewEncoder(NewWriter(w)), nil
}

// EncodeToVector returns an Encoder that accumulates frames in memory, and
// a function to retrieve the accumulated bytes once encoding is complete
// (spec §6).
func EncodeToVector() (*Encoder, func() []byte) {
	vw := NewVectorWriter()
	return NewEncoder(vw), vw.Bytes
}
