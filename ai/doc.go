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


// Package ai provides abstractions for the AI services used in scenematch.
//
// This package defines interfaces for text embeddings, scene analysis and
// shortlist re-ranking. It follows the dependency inversion principle,
// allowing the search pipeline to depend on abstractions rather than
// concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - SceneAnalyzer: extracts structured scene semantics from a query
//   - Reranker: judges a small candidate shortlist against the query
//   - AIProvider: aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes three implementation sub-packages:
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/rules: deterministic keyword-rule scene analyzer, which also
//     serves as the offline fallback behind the LLM analyzer
//   - ai/mock: test doubles for unit testing without external dependencies
//
// # Capability Polymorphism
//
// Scene analysis is a capability-polymorphism case: the rule-based and the
// LLM-based analyzer conform to the SceneAnalyzer contract and are selected
// at construction time. The LLM variant delegates to a rules.Analyzer
// instance whenever extraction fails or parses badly, so callers never
// observe the failure.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	scene := provider.SceneAnalyzer().Analyze(ctx, "a ship hits an iceberg")
//	vector, err := provider.Embedder().EmbedText(ctx, "ship iceberg sinking")
package ai
