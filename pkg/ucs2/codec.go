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

// Encode converts the UTF-8 bytes of src into UCS-2 code units written to dst.
//
// It returns the number of units written to dst and the number of bytes
// consumed from src. Both counts are exact on every return, so the caller can
// resume with dst[nDst:] (or a fresh buffer) and src[nSrc:].
//
// The returned error is nil when all of src was converted, otherwise one of:
//
//   - ErrInsufficientOutputSpace: dst is full and src has bytes left.
//   - ErrInvalidEncoding: src[nSrc:] does not start with valid UTF-8.
//   - ErrUnrepresentable: src[nSrc:] starts with a character above U+FFFF.
//   - ErrIncomplete: src ends with the valid prefix of a multi-byte sequence.
//
// Three-byte encodings of surrogate code points are accepted, so that Decode
// followed by Encode is the identity on any unit sequence.
func Encode(dst []WChar, src []byte) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst == len(dst) {
			return nDst, nSrc, ErrInsufficientOutputSpace
		}
		if b := src[nSrc]; b < 0x80 {
			dst[nDst] = WChar(b)
			nDst++
			nSrc++
			continue
		}
		u, size, status := decodeSequence(src[nSrc:])
		if status != Success {
			return nDst, nSrc, status.Err()
		}
		dst[nDst] = u
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

// decodeSequence decodes the multi-byte sequence at the start of p.
// p must be non-empty and p[0] must not be ASCII.
func decodeSequence(p []byte) (WChar, int, Status) {
	b0 := p[0]

	var size int
	var r rune
	switch {
	case b0 < 0xC2:
		// Stray continuation byte, or a lead byte that only starts overlong
		// 2-byte forms.
		return 0, 0, InvalidEncoding
	case b0 < 0xE0:
		size, r = 2, rune(b0&0x1F)
	case b0 < 0xF0:
		size, r = 3, rune(b0&0x0F)
	case b0 < 0xF5:
		size, r = 4, rune(b0&0x07)
	default:
		return 0, 0, InvalidEncoding
	}

	// The range of the second byte rejects overlong 3- and 4-byte forms and
	// 4-byte forms above U+10FFFF before the sequence is complete, so a
	// truncated sequence is only Incomplete when it could still be valid.
	lo, hi := byte(0x80), byte(0xBF)
	switch b0 {
	case 0xE0:
		lo = 0xA0
	case 0xF0:
		lo = 0x90
	case 0xF4:
		hi = 0x8F
	}

	for i := 1; i < size; i++ {
		if i >= len(p) {
			return 0, 0, Incomplete
		}
		c := p[i]
		if i == 1 {
			if c < lo || c > hi {
				return 0, 0, InvalidEncoding
			}
		} else if c&0xC0 != 0x80 {
			return 0, 0, InvalidEncoding
		}
		r = r<<6 | rune(c&0x3F)
	}

	if r > MaxWChar {
		return 0, 0, Unrepresentable
	}
	return WChar(r), size, Success
}

// Decode converts the UCS-2 code units of src into UTF-8 bytes written to dst.
//
// It returns the number of bytes written to dst and the number of units
// consumed from src. A unit is never split: when the full encoding of the next
// unit does not fit in dst, Decode stops with ErrInsufficientOutputSpace.
// Any 16-bit value is encodable, so no other error is returned.
func Decode(dst []byte, src []WChar) (nDst, nSrc int, err error) {
	for ; nSrc < len(src); nSrc++ {
		u := src[nSrc]
		switch {
		case u < 0x80:
			if nDst+1 > len(dst) {
				return nDst, nSrc, ErrInsufficientOutputSpace
			}
			dst[nDst] = byte(u)
			nDst++
		case u < 0x800:
			if nDst+2 > len(dst) {
				return nDst, nSrc, ErrInsufficientOutputSpace
			}
			dst[nDst] = 0xC0 | byte(u>>6)
			dst[nDst+1] = 0x80 | byte(u)&0x3F
			nDst += 2
		default:
			if nDst+3 > len(dst) {
				return nDst, nSrc, ErrInsufficientOutputSpace
			}
			dst[nDst] = 0xE0 | byte(u>>12)
			dst[nDst+1] = 0x80 | byte(u>>6)&0x3F
			dst[nDst+2] = 0x80 | byte(u)&0x3F
			nDst += 3
		}
	}
	return nDst, nSrc, nil
}

// ConvUTF8ToUCS2 is the cursor-counter form of Encode.
//
// On entry *inBytes is the number of bytes of in to convert and *outWords the
// number of units available in out (both are clamped to the slice lengths).
// On return *inBytes holds the bytes left unconsumed and *outWords the units
// left unused, whatever the status.
func ConvUTF8ToUCS2(in []byte, inBytes *int, out []WChar, outWords *int) Status {
	src := in[:clamp(*inBytes, len(in))]
	dst := out[:clamp(*outWords, len(out))]

	nDst, nSrc, err := Encode(dst, src)
	*inBytes = len(src) - nSrc
	*outWords = len(dst) - nDst
	return StatusOf(err)
}

// ConvUCS2ToUTF8 is the cursor-counter form of Decode, with the same
// counter semantics as ConvUTF8ToUCS2.
func ConvUCS2ToUTF8(in []WChar, inWords *int, out []byte, outBytes *int) Status {
	src := in[:clamp(*inWords, len(in))]
	dst := out[:clamp(*outBytes, len(out))]

	nDst, nSrc, err := Decode(dst, src)
	*inWords = len(src) - nSrc
	*outBytes = len(dst) - nDst
	return StatusOf(err)
}

func clamp(n, limit int) int {
	return max(0, min(n, limit))
}
