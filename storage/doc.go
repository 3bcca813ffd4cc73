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


// Package storage provides the storage abstraction layer for scenematch.
//
// The package defines the EmbeddingCache interface that decouples the
// scoring pipeline from the persistence backend. Embedding vectors are
// cached under content-derived IDs so repeated searches do not re-embed
// the same text.
//
// Public constructors in backend packages return the interface type:
//
//	cache, err := badger.NewEmbeddingCache(path)  // returns storage.EmbeddingCache
//
// Use in tests with in-memory storage:
//
//	cache, err := badger.NewMemoryCache()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
// All implementations must be thread-safe and accept context.Context
// for cancellation.
package storage
