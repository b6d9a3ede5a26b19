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
	"strings"
	"sync"
	"testing"
)

func TestPanicStore_NilReceiverIsNoOp(t *testing.T) {
	var ps *PanicStore
	ps.Store("boom", []byte("stack"))
	if _, ok := ps.Load(); ok {
		t.Fatalf("expected ok=false for nil PanicStore")
	}
}

func TestPanicStore_FirstStoreWinsAndCopiesStack(t *testing.T) {
	ps := &PanicStore{}

	stack := []byte("stack1")
	ps.Store("first", stack)
	stack[0] = 'X'
	ps.Store("second", []byte("stack2"))

	info, ok := ps.Load()
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if got, want := info.Value, "first"; got != want {
		t.Fatalf("unexpected stored value: got %#v want %#v", got, want)
	}
	if got, want := string(info.Stack), "stack1"; got != want {
		t.Fatalf("unexpected stored stack: got %q want %q", got, want)
	}
	if !strings.Contains(info.Err().Error(), "first") {
		t.Fatalf("unexpected error text: %v", info.Err())
	}
}

func TestPanicStore_ConcurrentStore(t *testing.T) {
	ps := &PanicStore{}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ps.Store(i, nil)
		}(i)
	}
	wg.Wait()
	if _, ok := ps.Load(); !ok {
		t.Fatalf("expected a stored panic")
	}
}

func TestEnsurePanicStore_ReusesExistingStore(t *testing.T) {
	ctx, ps := WithPanicStore(context.Background())

	ctx2, ps2 := EnsurePanicStore(ctx)
	if ps2 != ps || ctx2 != ctx {
		t.Fatalf("expected the existing store and context to be reused")
	}

	_, ps3 := EnsurePanicStore(context.Background())
	if ps3 == nil || ps3 == ps {
		t.Fatalf("expected a fresh store")
	}
}
