// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ucs2

import (
	"encoding/binary"
	"errors"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Encoding is a UCS-2 byte serialization usable with golang.org/x/text.
//
// Its decoder turns UCS-2 bytes into UTF-8 and its encoder turns UTF-8 into
// UCS-2 bytes, both through Encode / Decode. Encoders report
// *PositionError (wrapping ErrInvalidEncoding, ErrUnrepresentable or
// ErrIncomplete) with the offset of the offending byte in the UTF-8 input.
// Decoders only fail on a trailing odd byte.
//
// The x/text wrappers encoding.ReplaceUnsupported and
// encoding.HTMLEscapeUnsupported are not supported: they write single-byte
// replacements, which would corrupt a UCS-2 stream. Their encoders return the
// *PositionError unchanged.
type Encoding struct {
	name  string
	order binary.ByteOrder
	bom   bool
}

var (
	// LittleEndian is UCS-2LE without byte order mark.
	LittleEndian = &Encoding{name: "UCS-2LE", order: binary.LittleEndian}
	// BigEndian is UCS-2BE without byte order mark.
	BigEndian = &Encoding{name: "UCS-2BE", order: binary.BigEndian}
)

var _ encoding.Encoding = (*Encoding)(nil)

// WithBOM returns a copy of e whose encoder writes a byte order mark at the
// start of the stream and whose decoder drops a leading byte order mark
// written in e's byte order.
func (e *Encoding) WithBOM() *Encoding {
	c := *e
	c.bom = true
	return &c
}

// ByteOrder returns the order used to serialize each code unit.
func (e *Encoding) ByteOrder() binary.ByteOrder {
	return e.order
}

func (e *Encoding) String() string {
	if e.bom {
		return e.name + " (BOM)"
	}
	return e.name
}

// NewDecoder returns a decoder from UCS-2 bytes to UTF-8.
func (e *Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{order: e.order, bom: e.bom}}
}

// NewEncoder returns an encoder from UTF-8 to UCS-2 bytes.
func (e *Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{order: e.order, bom: e.bom}}
}

// NewUTF8Reader wraps r, which yields UCS-2 bytes in encoding enc, into a
// reader of UTF-8 bytes.
func NewUTF8Reader(r io.Reader, enc *Encoding) (io.Reader, error) {
	if enc == nil {
		return nil, errors.New("ucs2: nil encoding")
	}
	return enc.NewDecoder().Reader(r), nil
}

// NewUCS2Reader wraps r, which yields UTF-8 bytes, into a reader of UCS-2
// bytes in encoding enc.
func NewUCS2Reader(r io.Reader, enc *Encoding) (io.Reader, error) {
	if enc == nil {
		return nil, errors.New("ucs2: nil encoding")
	}
	return transform.NewReader(r, enc.NewEncoder()), nil
}

// NewUCS2Writer returns a writer that converts the UTF-8 bytes written to it
// into UCS-2 bytes in encoding enc, written to w. Close flushes the pending
// bytes and reports a truncated trailing sequence.
func NewUCS2Writer(w io.Writer, enc *Encoding) (io.WriteCloser, error) {
	if enc == nil {
		return nil, errors.New("ucs2: nil encoding")
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

// unitBatch bounds the stack buffer the transformers convert through.
const unitBatch = 256

type decoder struct {
	order   binary.ByteOrder
	bom     bool
	started bool
	pos     int64
}

func (d *decoder) Reset() {
	d.started = false
	d.pos = 0
}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() { d.pos += int64(nSrc) }()

	if d.bom && !d.started {
		if len(src) < 2 && !atEOF {
			return 0, 0, transform.ErrShortSrc
		}
		if len(src) >= 2 && d.order.Uint16(src) == bomUnit {
			nSrc = 2
		}
		d.started = true
	}

	var units [unitBatch]WChar
	for len(src)-nSrc >= 2 {
		k := min(unitBatch, (len(src)-nSrc)/2)
		for i := range k {
			units[i] = d.order.Uint16(src[nSrc+2*i:])
		}
		n, m, derr := Decode(dst[nDst:], units[:k])
		nDst += n
		nSrc += 2 * m
		if derr != nil {
			return nDst, nSrc, transform.ErrShortDst
		}
	}

	if nSrc < len(src) {
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, &PositionError{Status: Incomplete, Offset: d.pos + int64(nSrc)}
	}
	return nDst, nSrc, nil
}

type encoder struct {
	order   binary.ByteOrder
	bom     bool
	started bool
	pos     int64
}

func (e *encoder) Reset() {
	e.started = false
	e.pos = 0
}

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	defer func() { e.pos += int64(nSrc) }()

	if e.bom && !e.started {
		if len(dst) < 2 {
			return 0, 0, transform.ErrShortDst
		}
		e.order.PutUint16(dst, bomUnit)
		nDst = 2
		e.started = true
	}

	var units [unitBatch]WChar
	for nSrc < len(src) {
		room := (len(dst) - nDst) / 2
		if room == 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		n, m, eerr := Encode(units[:min(room, unitBatch)], src[nSrc:])
		for i := range n {
			e.order.PutUint16(dst[nDst+2*i:], units[i])
		}
		nDst += 2 * n
		nSrc += m

		switch status := StatusOf(eerr); status {
		case Success, InsufficientOutputSpace:
			// Loop: either done, or room is re-evaluated.
		case Incomplete:
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, &PositionError{Status: status, Offset: e.pos + int64(nSrc)}
		default:
			return nDst, nSrc, &PositionError{Status: status, Offset: e.pos + int64(nSrc)}
		}
	}
	return nDst, nSrc, nil
}
