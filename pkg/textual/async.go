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

// Package textual streams tokens of text through channel-based stages.
//
// A stage reads carriers from an input channel and writes carriers to the
// channel it returns. The conversion stages of this package (EncodeUCS2,
// DecodeUCS2) turn UTF-8 tokens into UCS-2 code units and back, and
// IOReaderTranscoder feeds them from an io.Reader.
//
// Every stage follows the same rules:
//
//   - it never closes its input channel;
//   - it closes its output exactly once;
//   - every send and receive also selects on ctx.Done();
//   - a panic is recovered into the PanicStore carried by ctx.
//
// A consumer that stops reading early must cancel the context, otherwise
// upstream goroutines stay blocked on their sends.
package textual

import (
	"context"
	"runtime/debug"
)

// Async runs a single-worker 1:1 stage: each value of in is mapped by f and
// sent on the returned, unbuffered channel.
//
// The worker exits when in is closed, when ctx is done, or when f panics. In
// the last case the panic is stored in the PanicStore of ctx (one is attached
// when missing) and the output is closed early.
//
//	ctx, ps := WithPanicStore(parent)
//	for v := range Async(ctx, in, f) {
//		_ = v
//	}
//	if info, ok := ps.Load(); ok {
//		return info.Err()
//	}
func Async[T1 any, T2 any](ctx context.Context, in <-chan T1, f func(ctx context.Context, t T1) T2) <-chan T2 {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, ps := EnsurePanicStore(ctx)
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan T2)
	go func() {
		defer close(out)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				ps.Store(r, debug.Stack())
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				res := f(ctx, v)
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}

// closedChan returns an already closed channel, used where a stage must
// return a non-nil output but has nothing to emit.
func closedChan[T any]() <-chan T {
	ch := make(chan T)
	close(ch)
	return ch
}
