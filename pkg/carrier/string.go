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
	"sort"
	"strings"
)

// String is the UTF-8 side of a conversion pipeline: one scanned token, its
// sequence number and an optional per-item error.
type String struct {
	Value string
	Index int
	Error error
}

// StringFrom builds a String from a UTF-8 token.
func StringFrom(from UTF8String) String {
	return (*new(String)).FromUTF8String(from)
}

func (s String) UTF8String() UTF8String {
	return s.Value
}

func (s String) FromUTF8String(str UTF8String) String {
	return String{Value: str}
}

func (s String) WithIndex(idx int) String {
	s.Index = idx
	return s
}

func (s String) GetIndex() int {
	return s.Index
}

// Aggregate concatenates items in Index order and joins their errors.
// The input slice is left untouched.
func (s String) Aggregate(items []String) String {
	sorted := make([]String, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Index < sorted[j].Index
	})

	var b strings.Builder
	var err error
	for _, it := range sorted {
		b.WriteString(it.Value)
		err = joinErr(err, it.Error)
	}
	return String{Value: b.String(), Error: err}
}

func (s String) WithError(err error) String {
	s.Error = joinErr(s.Error, err)
	return s
}

func (s String) GetError() error {
	return s.Error
}
