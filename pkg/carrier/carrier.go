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

// Package carrier holds the values that flow through a textual pipeline.
//
// String carries a UTF-8 token, Units carries the same token as UCS-2 code
// units. Both satisfy Carrier, so a pipeline stage can turn one into the
// other and still keep the ordering index and per-item errors.
package carrier

import "errors"

// UTF8String is a symbolic alias: once inside a pipeline every piece of text
// is UTF-8, whatever the encoding of the stream it came from.
type UTF8String = string

// Carrier is the contract of pipeline values.
//
//   - UTF8String renders the carrier as UTF-8.
//   - FromUTF8String builds a new carrier from a UTF-8 token. It is called on
//     the zero value, so it must not depend on receiver state.
//   - WithIndex / GetIndex attach and read the token sequence number.
//   - Aggregate merges several carriers into one, ordered by index.
//   - WithError / GetError attach and read a per-item error. Errors are data:
//     a stage keeps forwarding items that carry one.
type Carrier[S any] interface {
	UTF8String() UTF8String
	FromUTF8String(s UTF8String) S
	WithIndex(index int) S
	GetIndex() int
	Aggregate(items []S) S
	WithError(err error) S
	GetError() error
}

// joinErr appends err to prev, keeping nil when both are nil.
func joinErr(prev, err error) error {
	switch {
	case err == nil:
		return prev
	case prev == nil:
		return err
	default:
		return errors.Join(prev, err)
	}
}
