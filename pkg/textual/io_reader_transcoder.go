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
	"bufio"
	"context"
	"io"
	"runtime/debug"
	"sync"
	"time"

	"github.com/benoit-pereira-da-silva/wchar/pkg/carrier"
)

// IOReaderTranscoder scans an io.Reader into tokens and feeds them to a
// Transcoder.
//
// Each token becomes an S1 through prototype.FromUTF8String(token).WithIndex(i)
// where i is the token sequence number, so the reader must yield UTF-8. Wrap
// a UCS-2 source with ucs2.NewUTF8Reader first.
//
//	t := NewIOReaderTranscoder[carrier.String, carrier.Units](EncodeUCS2(), r)
//	t.SetContext(ctx)
//	for units := range t.Start() {
//		_ = units
//	}
//	if err := t.Err(); err != nil {
//		return err
//	}
//
// Setters must be called before Start. Err reports scanner failures and
// recovered panics once the output channel has been drained.
type IOReaderTranscoder[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2], T Transcoder[S1, S2]] struct {
	reader       io.Reader
	splitFunc    bufio.SplitFunc
	maxTokenSize int
	transcoder   T

	// parent is the caller context with the panic store attached. ctx is
	// derived from it by each start and released by Stop.
	parent     context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	panicStore *PanicStore

	mu      sync.Mutex
	scanErr error
}

// NewIOReaderTranscoder returns an IOReaderTranscoder splitting reader with
// ScanLines.
func NewIOReaderTranscoder[S1 carrier.Carrier[S1], S2 carrier.Carrier[S2], T Transcoder[S1, S2]](transcoder T, reader io.Reader) *IOReaderTranscoder[S1, S2, T] {
	return &IOReaderTranscoder[S1, S2, T]{
		reader:     reader,
		splitFunc:  ScanLines,
		transcoder: transcoder,
	}
}

// SetContext sets the parent context of the run.
func (t *IOReaderTranscoder[S1, S2, T]) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	t.Stop()
	t.parent, t.panicStore = EnsurePanicStore(ctx)
}

// SetSplitFunc replaces the tokenizer. A nil split keeps the current one.
func (t *IOReaderTranscoder[S1, S2, T]) SetSplitFunc(split bufio.SplitFunc) {
	if split != nil {
		t.splitFunc = split
	}
}

// SetMaxTokenSize raises the largest token the scanner accepts
// (bufio.MaxScanTokenSize by default).
func (t *IOReaderTranscoder[S1, S2, T]) SetMaxTokenSize(n int) {
	t.maxTokenSize = n
}

// PanicStore returns the store attached to the run context. It is nil until
// SetContext or Start is called.
func (t *IOReaderTranscoder[S1, S2, T]) PanicStore() *PanicStore {
	return t.panicStore
}

// Err returns the scanner error, or the recovered panic of a stage, if any.
func (t *IOReaderTranscoder[S1, S2, T]) Err() error {
	t.mu.Lock()
	err := t.scanErr
	t.mu.Unlock()
	if err != nil {
		return err
	}
	if info, ok := t.panicStore.Load(); ok {
		return info.Err()
	}
	return nil
}

// derive replaces the run context with a fresh child of parent, releasing
// the previous one. A timeout <= 0 means no deadline.
func (t *IOReaderTranscoder[S1, S2, T]) derive(timeout time.Duration) {
	if t.parent == nil {
		t.SetContext(context.Background())
	}
	t.Stop()
	if timeout > 0 {
		t.ctx, t.cancel = context.WithTimeout(t.parent, timeout)
	} else {
		t.ctx, t.cancel = context.WithCancel(t.parent)
	}
}

func (t *IOReaderTranscoder[S1, S2, T]) setScanErr(err error) {
	t.mu.Lock()
	t.scanErr = err
	t.mu.Unlock()
}

// Start launches the scanning goroutine and the transcoder, and returns the
// transcoder output. Scanning stops at EOF, on a read error, or when the
// context is done.
func (t *IOReaderTranscoder[S1, S2, T]) Start() <-chan S2 {
	return t.start(0)
}

// StartWithTimeout is Start with a deadline on the whole run. A timeout <= 0
// means no deadline.
func (t *IOReaderTranscoder[S1, S2, T]) StartWithTimeout(timeout time.Duration) <-chan S2 {
	return t.start(timeout)
}

func (t *IOReaderTranscoder[S1, S2, T]) start(timeout time.Duration) <-chan S2 {
	t.derive(timeout)
	ctx, cancel, ps := t.ctx, t.cancel, t.panicStore

	scanner := bufio.NewScanner(t.reader)
	scanner.Split(t.splitFunc)
	if t.maxTokenSize > 0 {
		scanner.Buffer(make([]byte, 0, min(t.maxTokenSize, 64*1024)), t.maxTokenSize)
	}

	in := make(chan S1)
	out := t.apply(in)

	go func() {
		defer close(in)
		defer func() {
			if r := recover(); r != nil {
				ps.Store(r, debug.Stack())
				cancel()
			}
		}()

		prototype := *new(S1)
		for i := 0; ; i++ {
			if ctx.Err() != nil {
				return
			}
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					t.setScanErr(err)
				}
				return
			}
			item := prototype.FromUTF8String(scanner.Text()).WithIndex(i)
			select {
			case <-ctx.Done():
				return
			case in <- item:
			}
		}
	}()

	return out
}

// apply starts the transcoder, turning a panic or a nil output into a
// stored fault and a closed channel.
func (t *IOReaderTranscoder[S1, S2, T]) apply(in <-chan S1) (out <-chan S2) {
	defer func() {
		if r := recover(); r != nil {
			t.panicStore.Store(r, debug.Stack())
			t.cancel()
			out = closedChan[S2]()
		}
	}()
	out = t.transcoder.Apply(t.ctx, in)
	if out == nil {
		panic("textual: Transcoder.Apply returned a nil channel")
	}
	return out
}

// Stop cancels the run and releases its context. It is a no-op before Start.
func (t *IOReaderTranscoder[S1, S2, T]) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
}
