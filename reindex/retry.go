// Copyright 2026 Mike Arbuzov
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

package reindex

import (
	"context"
	"log/slog"
	"time"
)

// RetryWithBackoff runs operation up to maxAttempts times, doubling the
// wait between attempts starting from baseDelay. Returns nil on the first
// success, the last attempt's error once attempts are exhausted, or the
// context error if ctx ends while waiting.
func RetryWithBackoff(ctx context.Context, operation func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	delay := baseDelay
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := operation()
		if err == nil {
			if attempt > 1 {
				slog.Debug("batch succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if attempt == maxAttempts {
			return err
		}

		slog.Debug("batch failed, backing off",
			"attempt", attempt, "maxAttempts", maxAttempts, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
