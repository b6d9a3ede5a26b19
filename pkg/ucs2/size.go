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

// UnitCount returns the number of code units Encode produces for src.
//
// When src cannot be fully converted, the returned count covers the valid
// prefix and the error is a *PositionError pointing at the first offending
// byte. A truncated trailing sequence is reported as Incomplete.
func UnitCount(src []byte) (int, error) {
	n := 0
	for i := 0; i < len(src); n++ {
		if src[i] < 0x80 {
			i++
			continue
		}
		_, size, status := decodeSequence(src[i:])
		if status != Success {
			return n, &PositionError{Status: status, Offset: int64(i)}
		}
		i += size
	}
	return n, nil
}

// ByteCount returns the number of bytes Decode produces for src.
func ByteCount(src []WChar) int {
	n := 0
	for _, u := range src {
		n += RuneLen(u)
	}
	return n
}

// Valid reports whether src is UTF-8 that converts entirely to UCS-2.
func Valid(src []byte) bool {
	_, err := UnitCount(src)
	return err == nil
}

// FromString converts s to a newly allocated slice of code units.
func FromString(s string) ([]WChar, error) {
	src := []byte(s)
	n, err := UnitCount(src)
	if err != nil {
		return nil, err
	}
	dst := make([]WChar, n)
	_, _, err = Encode(dst, src)
	return dst, err
}

// ToString converts src to a UTF-8 string.
func ToString(src []WChar) string {
	return string(AppendUTF8(nil, src))
}

// AppendUTF8 appends the UTF-8 encoding of src to dst and returns the
// extended slice.
func AppendUTF8(dst []byte, src []WChar) []byte {
	start := len(dst)
	need := ByteCount(src)
	if cap(dst)-start < need {
		grown := make([]byte, start, start+need)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:start+need]
	// The slice is sized exactly, so Decode cannot run out of space.
	_, _, _ = Decode(dst[start:], src)
	return dst
}
