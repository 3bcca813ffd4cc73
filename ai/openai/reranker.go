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


package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/poiesic/scenematch/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Reranker implements ai.Reranker using OpenAI-compatible chat APIs.
type Reranker struct {
	client llms.Model
	logger *slog.Logger
}

// rerankPayload matches the JSON shape requested from the LLM.
type rerankPayload struct {
	Order       []int  `json:"order"`
	Confidences []int  `json:"confidences"`
	Explanation string `json:"explanation"`
}

var errEmptyRerankResponse = errors.New("empty rerank response")

// newReranker is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newReranker(config *ai.Config) (*Reranker, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Reranker{
		client: client,
		logger: slog.Default().With("component", "openai-reranker"),
	}, nil
}

// NewReranker creates a shortlist re-ranker using the provided configuration.
//
// Returns ai.Reranker interface to enforce abstraction.
func NewReranker(config *ai.Config) (ai.Reranker, error) {
	return newReranker(config)
}

// Rerank asks the instruction model for a best-match ordering of the
// shortlist. The returned decision is normalized but not validated against
// the candidate count; callers must validate indices and fall back to the
// original ordering on error.
func (r *Reranker) Rerank(ctx context.Context, query string, candidates []ai.RerankCandidate) (ai.RerankDecision, error) {
	if len(candidates) == 0 {
		return ai.RerankDecision{}, nil
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart("You are a movie-matching assistant. You must respond with strict JSON only, no explanations."),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildRerankPrompt(query, candidates)),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.2), llms.WithJSONMode())
	if err != nil {
		r.logger.Warn("rerank request failed", "err", err)
		return ai.RerankDecision{}, err
	}

	if len(response.Choices) < 1 {
		return ai.RerankDecision{}, errEmptyRerankResponse
	}

	responseText := stripCodeFences(response.Choices[0].Content)
	responseText = repairJSON(responseText)

	var payload rerankPayload
	if err := json.Unmarshal([]byte(responseText), &payload); err != nil {
		r.logger.Warn("error parsing rerank response", "response", responseText, "err", err)
		return ai.RerankDecision{}, err
	}

	// Default missing confidences to the midpoint rather than rejecting the
	// whole ordering.
	if len(payload.Confidences) < len(payload.Order) {
		for len(payload.Confidences) < len(payload.Order) {
			payload.Confidences = append(payload.Confidences, 50)
		}
	}

	r.logger.Debug("rerank decision received",
		"candidates", len(candidates),
		"ordered", len(payload.Order))

	return ai.RerankDecision{
		Order:       payload.Order,
		Confidences: payload.Confidences,
		Explanation: payload.Explanation,
	}, nil
}
