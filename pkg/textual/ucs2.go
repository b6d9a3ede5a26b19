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

	"github.com/benoit-pereira-da-silva/wchar/pkg/carrier"
)

// EncodeUCS2 returns a stage converting each UTF-8 token to UCS-2 units.
//
// A token that cannot be fully converted is still emitted: it keeps the units
// of its valid prefix and carries the conversion error (see carrier.Units).
// Index and upstream errors are preserved.
func EncodeUCS2() TranscoderFunc[carrier.String, carrier.Units] {
	return func(ctx context.Context, in <-chan carrier.String) <-chan carrier.Units {
		return Async(ctx, in, func(_ context.Context, s carrier.String) carrier.Units {
			return carrier.UnitsFrom(s.Value).WithIndex(s.Index).WithError(s.Error)
		})
	}
}

// DecodeUCS2 returns a stage converting UCS-2 units back to UTF-8 tokens.
// It never adds an error: every unit has a UTF-8 form.
func DecodeUCS2() TranscoderFunc[carrier.Units, carrier.String] {
	return func(ctx context.Context, in <-chan carrier.Units) <-chan carrier.String {
		return Async(ctx, in, func(_ context.Context, u carrier.Units) carrier.String {
			return carrier.StringFrom(u.UTF8String()).WithIndex(u.Index).WithError(u.Error)
		})
	}
}
