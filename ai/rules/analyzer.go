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


// Package rules implements a deterministic keyword-rule scene analyzer.
//
// The analyzer matches a curated table of bilingual trigger keywords
// against the lowercased query and appends the mapped English tag for
// every hit. It needs no network access and therefore doubles as the
// offline fallback behind the LLM-based analyzer.
package rules

import (
	"context"
	"strings"

	"github.com/poiesic/scenematch/ai"
	"github.com/poiesic/scenematch/core"
)

// Analyzer is a rule-table scene analyzer. The zero value is not usable;
// construct with NewAnalyzer.
type Analyzer struct {
	rules     []rule
	timeHints []timeHintRule
}

var _ ai.SceneAnalyzer = (*Analyzer)(nil)

// NewAnalyzer creates a rule-based analyzer over the built-in keyword table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		rules:     keywordRules,
		timeHints: timeHintRules,
	}
}

// Analyze matches the keyword table against the lowercased query.
// Tag insertion order follows table order. A query that matches nothing
// returns an empty scene with an unspecified time hint, which is a valid
// "found nothing specific" result. Analyze never fails.
func (a *Analyzer) Analyze(_ context.Context, query string) core.SceneDescription {
	scene := core.EmptyScene()

	lowered := strings.ToLower(query)
	if strings.TrimSpace(lowered) == "" {
		return scene
	}

	for _, r := range a.rules {
		if !strings.Contains(lowered, r.keyword) {
			continue
		}
		switch r.cat {
		case categoryEntity:
			scene.Entities = append(scene.Entities, r.tag)
		case categoryEvent:
			scene.Events = append(scene.Events, r.tag)
		case categoryEnvironment:
			scene.Environment = append(scene.Environment, r.tag)
		case categoryTheme:
			scene.Themes = append(scene.Themes, r.tag)
		}
	}

	for _, h := range a.timeHints {
		if strings.Contains(lowered, h.keyword) {
			scene.TimeHint = h.hint
			break
		}
	}

	return scene
}
