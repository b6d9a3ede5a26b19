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
	"errors"
	"fmt"
)

// Status is the outcome of a conversion call.
//
// Every status other than Success comes with accurate partial progress: the
// counters returned next to it describe what was consumed and produced before
// the conversion stopped.
type Status uint8

const (
	// Success means the whole input was converted.
	Success Status = iota
	// InvalidEncoding means the input is not valid UTF-8: a bad leading byte,
	// a bad continuation byte or an overlong form.
	InvalidEncoding
	// Unrepresentable means the input holds a well-formed character above
	// U+FFFF.
	Unrepresentable
	// InsufficientOutputSpace means the output buffer filled up before the
	// input was consumed.
	InsufficientOutputSpace
	// Incomplete means the input ends in the middle of a sequence: a
	// multi-byte UTF-8 character, or a 2-byte unit of a serialized UCS-2
	// stream. The partial sequence is left unconsumed so that a streaming
	// caller can prepend it to the next chunk.
	Incomplete
)

var (
	ErrInvalidEncoding         = errors.New("ucs2: invalid UTF-8 encoding")
	ErrUnrepresentable         = errors.New("ucs2: character above U+FFFF is not representable")
	ErrInsufficientOutputSpace = errors.New("ucs2: insufficient output space")
	ErrIncomplete              = errors.New("ucs2: input ends inside a sequence")
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case InvalidEncoding:
		return "InvalidEncoding"
	case Unrepresentable:
		return "Unrepresentable"
	case InsufficientOutputSpace:
		return "InsufficientOutputSpace"
	case Incomplete:
		return "Incomplete"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Err returns the sentinel error for s, or nil for Success.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case InvalidEncoding:
		return ErrInvalidEncoding
	case Unrepresentable:
		return ErrUnrepresentable
	case InsufficientOutputSpace:
		return ErrInsufficientOutputSpace
	case Incomplete:
		return ErrIncomplete
	default:
		return fmt.Errorf("ucs2: unknown status %d", uint8(s))
	}
}

// StatusOf maps an error returned by this package back to its Status.
//
// nil maps to Success. Errors that do not wrap one of the package sentinels
// map to InvalidEncoding.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrInsufficientOutputSpace):
		return InsufficientOutputSpace
	case errors.Is(err, ErrUnrepresentable):
		return Unrepresentable
	case errors.Is(err, ErrIncomplete):
		return Incomplete
	default:
		return InvalidEncoding
	}
}

// PositionError locates a conversion failure in a larger input.
//
// Offset is counted in input units: bytes for UTF-8 input, and bytes of the
// serialized stream for the x/text transformers.
type PositionError struct {
	Status Status
	Offset int64
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Status.Err(), e.Offset)
}

// Unwrap exposes the sentinel so errors.Is works on a PositionError.
func (e *PositionError) Unwrap() error {
	return e.Status.Err()
}
