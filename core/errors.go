// Copyright 2025 Poiesic Systems
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
	// ErrInvalidCandidate indicates a MovieCandidate failed validation.
	ErrInvalidCandidate = errors.New("invalid movie candidate")

	// ErrEmptyTitle indicates the candidate Title field is empty.
	ErrEmptyTitle = errors.New("candidate title cannot be empty")

	// ErrInvalidID indicates the candidate catalog ID is not positive.
	ErrInvalidID = errors.New("candidate id must be positive")

	// ErrNegativeVoteCount indicates the vote count is negative.
	ErrNegativeVoteCount = errors.New("vote count cannot be negative")

	// ErrInvalidScore indicates a similarity score outside [0,1].
	ErrInvalidScore = errors.New("embedding score must be in [0,1]")
)
