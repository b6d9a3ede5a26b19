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

package textual

import (
	"context"
	"runtime/debug"

	"github.com/benoit-pereira-da-silva/wchar/pkg/carrier"
)

// Transcoder is a stage turning a stream of S1 carriers into S2 carriers,
// for instance carrier.String into carrier.Units.
//
// Apply must return quickly and never return nil.
type Transcoder[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]] interface {
	Apply(ctx context.Context, in <-chan S1) <-chan S2
}

// TranscoderFunc adapts a function to Transcoder.
type TranscoderFunc[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2]] func(ctx context.Context, in <-chan S1) <-chan S2

// Apply calls f(ctx, in).
//
// A panic in f, or a nil channel returned by f, is stored in the PanicStore
// of ctx and a closed channel is returned instead.
func (f TranscoderFunc[S1, S2]) Apply(ctx context.Context, in <-chan S1) (out <-chan S2) {
	ctx, ps := EnsurePanicStore(ctx)
	defer func() {
		if r := recover(); r != nil {
			ps.Store(r, debug.Stack())
			out = closedChan[S2]()
		}
	}()

	out = f(ctx, in)
	if out == nil {
		ps.Store("textual: TranscoderFunc returned a nil channel", debug.Stack())
		out = closedChan[S2]()
	}
	return out
}

// Then chains next after t: the result reads S1 values and emits what next
// produces from t's output.
func Then[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2], S3 carrier.Carrier[S3]](t Transcoder[S1, S2], next Transcoder[S2, S3]) TranscoderFunc[S1, S3] {
	return func(ctx context.Context, in <-chan S1) <-chan S3 {
		return next.Apply(ctx, t.Apply(ctx, in))
	}
}
