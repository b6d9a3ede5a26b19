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

	"github.com/rs/zerolog"

	"github.com/benoit-pereira-da-silva/wchar/pkg/carrier"
)

// Log returns a pass-through stage that logs every carrier with the zerolog
// logger attached to the context (see zerolog.Logger.WithContext).
//
// Items carrying an error are logged at warn level, the others at debug
// level. Without a logger on the context nothing is written.
func Log[C carrier.Carrier[C]](label string) TranscoderFunc[C, C] {
	return func(ctx context.Context, in <-chan C) <-chan C {
		logger := zerolog.Ctx(ctx).With().Str("stage", label).Logger()
		return Async(ctx, in, func(_ context.Context, c C) C {
			if err := c.GetError(); err != nil {
				logger.Warn().Err(err).Int("index", c.GetIndex()).Str("text", c.UTF8String()).Msg("item carries an error")
			} else {
				logger.Debug().Int("index", c.GetIndex()).Str("text", c.UTF8String()).Msg("item")
			}
			return c
		})
	}
}
