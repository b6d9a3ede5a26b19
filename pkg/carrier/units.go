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

package carrier

import (
	"fmt"
	"sort"

	"github.com/benoit-pereira-da-silva/wchar/pkg/ucs2"
)

// Units is the UCS-2 side of a conversion pipeline.
//
// FromUTF8String encodes the token with ucs2.Encode. When the token cannot be
// fully represented, Value holds the units of the valid prefix and Error
// describes the failure (a *ucs2.PositionError whose offset is relative to
// the token), so a consumer can report it without dropping the item.
type Units struct {
	Value []ucs2.WChar
	Index int
	Error error
}

// UnitsFrom builds a Units from a UTF-8 token.
func UnitsFrom(from UTF8String) Units {
	return (*new(Units)).FromUTF8String(from)
}

// UTF8String decodes Value back to UTF-8.
func (u Units) UTF8String() UTF8String {
	return ucs2.ToString(u.Value)
}

func (u Units) FromUTF8String(s UTF8String) Units {
	src := []byte(s)
	// One unit per byte is always enough.
	dst := make([]ucs2.WChar, len(src))
	nDst, nSrc, err := ucs2.Encode(dst, src)

	res := Units{Value: dst[:nDst:nDst]}
	if err != nil {
		res.Error = &ucs2.PositionError{Status: ucs2.StatusOf(err), Offset: int64(nSrc)}
	}
	return res
}

func (u Units) WithIndex(idx int) Units {
	u.Index = idx
	return u
}

func (u Units) GetIndex() int {
	return u.Index
}

// Aggregate concatenates the units of items in Index order and joins their
// errors.
func (u Units) Aggregate(items []Units) Units {
	sorted := make([]Units, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	total := 0
	for _, it := range sorted {
		total += len(it.Value)
	}
	res := Units{Value: make([]ucs2.WChar, 0, total)}
	for _, it := range sorted {
		res.Value = append(res.Value, it.Value...)
		res.Error = joinErr(res.Error, it.Error)
	}
	return res
}

func (u Units) WithError(err error) Units {
	u.Error = joinErr(u.Error, err)
	return u
}

func (u Units) GetError() error {
	return u.Error
}

// ByteLen returns the size of u once decoded to UTF-8.
func (u Units) ByteLen() int {
	return ucs2.ByteCount(u.Value)
}

func (u Units) String() string {
	return fmt.Sprintf("Units{Index: %d, Len: %d, Error: %v}", u.Index, len(u.Value), u.Error)
}
