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

// Package ucs2 converts between UTF-8 and UCS-2.
//
// UCS-2 is the fixed-width 16-bit encoding of the Basic Multilingual Plane.
// It has no surrogate pairs: a character above U+FFFF cannot be represented
// and is reported as Unrepresentable instead of being split in two units.
//
// The core entry points work on caller-owned buffers and never allocate:
//
//	units := make([]ucs2.WChar, 64)
//	nDst, nSrc, err := ucs2.Encode(units, []byte("Aé"))
//	// nDst == 2, nSrc == 3, err == nil, units[:2] == {0x0041, 0x00E9}
//
// A call converts as much of the input as fits and reports exact progress,
// even when it fails. A caller that gets ErrInsufficientOutputSpace grows
// (or drains) its output buffer and calls again with src[nSrc:].
//
// On top of the core, the package provides sizing helpers, allocating
// conveniences, and x/text Encodings (LittleEndian, BigEndian) to plug UCS-2
// byte streams into io.Reader / io.Writer chains.
package ucs2

// WChar is a single UCS-2 code unit.
//
// It is a plain alias of uint16: values are not checked and carry no meaning
// beyond the code point they hold.
type WChar = uint16

// MaxWChar is the largest scalar value a WChar can hold.
const MaxWChar = 0xFFFF

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	// bomUnit is the byte order mark as a code unit.
	bomUnit WChar = 0xFEFF
)

// RuneLen returns the number of UTF-8 bytes needed to encode u: 1, 2 or 3.
func RuneLen(u WChar) int {
	switch {
	case u < 0x80:
		return 1
	case u < 0x800:
		return 2
	default:
		return 3
	}
}

// IsSurrogate reports whether u lies in the UTF-16 surrogate range.
//
// Surrogates are not characters. The codec still converts them to and from
// their 3-byte form so that every 16-bit unit round-trips.
func IsSurrogate(u WChar) bool {
	return surrogateMin <= u && u <= surrogateMax
}
