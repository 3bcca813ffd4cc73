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


// Package search implements scene-based movie search.
//
// The Searcher type runs a multi-stage pipeline over a movie catalog:
//   - Scene analysis extracting structured terms from a free-text query
//   - Candidate retrieval with per-term precision gating
//   - Embedding similarity scoring with a lexical fallback
//   - Best-effort language model reranking of the top candidates
//
// Every stage past retrieval degrades gracefully, so a search returns
// ranked results whenever the catalog itself is reachable.
package search
