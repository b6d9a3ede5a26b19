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
	"fmt"
	"sync"
)

// PanicInfo is a recovered panic value and the stack captured at recovery.
type PanicInfo struct {
	Value any
	Stack []byte
}

// Err renders the panic as an error, for supervisors that report failures
// through a regular error path.
func (p PanicInfo) Err() error {
	return fmt.Errorf("textual: stage panicked: %v", p.Value)
}

// PanicStore records the first panic raised by any stage of a pipeline.
//
// Stages run in goroutines and have no error return, so a recovered panic is
// stored here and the stage closes its output. The supervisor checks the
// store once the output is drained.
//
// Store is write-once; Load may run concurrently with Store. A nil
// *PanicStore is valid and ignores everything.
type PanicStore struct {
	mu   sync.Mutex
	info PanicInfo
	set  bool
}

// Store records value and a copy of stack, unless a panic is already stored.
func (ps *PanicStore) Store(value any, stack []byte) {
	if ps == nil {
		return
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.set {
		return
	}
	ps.info = PanicInfo{Value: value, Stack: append([]byte(nil), stack...)}
	ps.set = true
}

// Load returns a snapshot of the stored panic, if any.
func (ps *PanicStore) Load() (PanicInfo, bool) {
	if ps == nil {
		return PanicInfo{}, false
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if !ps.set {
		return PanicInfo{}, false
	}
	info := ps.info
	info.Stack = append([]byte(nil), info.Stack...)
	return info, true
}

type panicStoreKey struct{}

// WithPanicStore returns a child of parent carrying a new PanicStore.
// A nil parent is replaced by context.Background().
func WithPanicStore(parent context.Context) (context.Context, *PanicStore) {
	if parent == nil {
		parent = context.Background()
	}
	ps := &PanicStore{}
	return context.WithValue(parent, panicStoreKey{}, ps), ps
}

// PanicStoreFromContext returns the PanicStore carried by ctx, or nil.
func PanicStoreFromContext(ctx context.Context) *PanicStore {
	if ctx == nil {
		return nil
	}
	ps, _ := ctx.Value(panicStoreKey{}).(*PanicStore)
	return ps
}

// EnsurePanicStore returns ctx unchanged when it already carries a store,
// otherwise a child carrying a new one.
func EnsurePanicStore(ctx context.Context) (context.Context, *PanicStore) {
	if ps := PanicStoreFromContext(ctx); ps != nil {
		return ctx, ps
	}
	return WithPanicStore(ctx)
}
