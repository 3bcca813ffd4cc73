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

import "fmt"

// ValidateCandidate validates a MovieCandidate according to domain rules.
//
// Validation rules:
//   - ID must be positive (catalog keys start at 1)
//   - Title must not be empty
//   - VoteCount must not be negative
//
// NOT validated:
//   - Overview and ReleaseDate (both may legitimately be empty)
//   - Keywords (empty until the keyword lookup runs)
func ValidateCandidate(candidate *MovieCandidate) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidate)
	}

	if candidate.ID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrInvalidID)
	}

	if candidate.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyTitle)
	}

	if candidate.VoteCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrNegativeVoteCount)
	}

	return nil
}

// ValidateScoredMovie validates a ScoredMovie according to domain rules.
func ValidateScoredMovie(scored *ScoredMovie) error {
	if scored == nil {
		return fmt.Errorf("%w: scored movie is nil", ErrInvalidCandidate)
	}

	if err := ValidateCandidate(&scored.Movie); err != nil {
		return err
	}

	if scored.EmbeddingScore < 0 || scored.EmbeddingScore > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrInvalidScore)
	}

	return nil
}
