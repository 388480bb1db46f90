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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfileRecord indicates a ProfileRecord failed validation.
	ErrInvalidProfileRecord = errors.New("invalid profile record")

	// ErrEmptyLinkedInURL indicates the LinkedInURL field is empty.
	ErrEmptyLinkedInURL = errors.New("linkedin url cannot be empty")

	// ErrInvalidLinkedInURL indicates the LinkedInURL could not be normalized.
	ErrInvalidLinkedInURL = errors.New("invalid linkedin url")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")
)
