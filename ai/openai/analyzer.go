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
	"log/slog"

	"github.com/poiesic/scenematch/ai"
	"github.com/poiesic/scenematch/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// SceneAnalyzer implements ai.SceneAnalyzer using OpenAI-compatible chat APIs.
// Extraction failures of any kind delegate to the fallback analyzer, so
// Analyze never surfaces an error to callers.
type SceneAnalyzer struct {
	client   llms.Model
	fallback ai.SceneAnalyzer
	logger   *slog.Logger
}

// sceneDescription is an internal type used for JSON unmarshaling.
// It matches the structure requested from the LLM.
type sceneDescription struct {
	Entities    []string `json:"entities"`
	Events      []string `json:"events"`
	Environment []string `json:"environment"`
	Themes      []string `json:"themes"`
	TimeHint    string   `json:"time_hint"`
}

// newSceneAnalyzer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSceneAnalyzer(config *ai.Config, fallback ai.SceneAnalyzer) (*SceneAnalyzer, error) {
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

	return &SceneAnalyzer{
		client:   client,
		fallback: fallback,
		logger:   slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewSceneAnalyzer creates an LLM-based scene analyzer. The fallback is
// consulted whenever the model call fails or returns an unusable payload;
// it is required so the analyzer can honor the never-fails contract.
//
// Returns ai.SceneAnalyzer interface to enforce abstraction.
func NewSceneAnalyzer(config *ai.Config, fallback ai.SceneAnalyzer) (ai.SceneAnalyzer, error) {
	return newSceneAnalyzer(config, fallback)
}

// Analyze issues one structured-output request to the instruction model and
// validates the payload shape. Any failure falls back transparently.
func (a *SceneAnalyzer) Analyze(ctx context.Context, query string) core.SceneDescription {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildScenePrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.1), llms.WithJSONMode())
	if err != nil {
		a.logger.Warn("scene analysis request failed, using fallback", "err", err)
		return a.fallback.Analyze(ctx, query)
	}

	if len(response.Choices) < 1 {
		a.logger.Warn("no choices returned from model, using fallback")
		return a.fallback.Analyze(ctx, query)
	}

	responseText := stripCodeFences(response.Choices[0].Content)
	responseText = repairJSON(responseText)

	var parsed sceneDescription
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		a.logger.Warn("error parsing scene analysis response, using fallback",
			"response", responseText,
			"err", err)
		return a.fallback.Analyze(ctx, query)
	}

	// The payload must carry the entity and event sequences to count as a
	// structured extraction; a null for either means the model ignored the
	// schema and the rule table is more trustworthy.
	if parsed.Entities == nil || parsed.Events == nil {
		a.logger.Warn("scene analysis response missing required lists, using fallback")
		return a.fallback.Analyze(ctx, query)
	}

	scene := core.SceneDescription{
		Entities:    parsed.Entities,
		Events:      parsed.Events,
		Environment: parsed.Environment,
		Themes:      parsed.Themes,
		TimeHint:    core.ParseTimeHint(parsed.TimeHint),
	}
	if scene.Environment == nil {
		scene.Environment = []string{}
	}
	if scene.Themes == nil {
		scene.Themes = []string{}
	}

	a.logger.Debug("extracted scene",
		"entities", len(scene.Entities),
		"events", len(scene.Events),
		"environment", len(scene.Environment),
		"themes", len(scene.Themes),
		"timeHint", scene.TimeHint)

	return scene
}
