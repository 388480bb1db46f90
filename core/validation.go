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


package core

import "fmt"

// ValidateProfileRecord validates a ProfileRecord according to domain rules.
//
// Validation rules:
//   - LinkedInURL must be present and already in normalized form
//   - Name must not be empty
//
// NOT validated (populated by the pipeline):
//   - Vector (can be empty until the embedding processor runs)
//   - Id (derived from LinkedInURL on upsert)
//   - Investment lists may be populated even when IsInvestor is false;
//     ingestion sources disagree about this and the engine tolerates it
func ValidateProfileRecord(record *ProfileRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidProfileRecord)
	}

	if record.LinkedInURL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfileRecord, ErrEmptyLinkedInURL)
	}

	normalized, err := NormalizeLinkedInURL(record.LinkedInURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfileRecord, err)
	}
	if normalized != record.LinkedInURL {
		return fmt.Errorf("%w: %w: %q is not normalized", ErrInvalidProfileRecord, ErrInvalidLinkedInURL, record.LinkedInURL)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfileRecord, ErrEmptyName)
	}

	return nil
}
