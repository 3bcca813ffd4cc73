package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/scenematch/ai"
)

const sceneResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "entities": {"type": "array", "items": {"type": "string"}},
    "events": {"type": "array", "items": {"type": "string"}},
    "environment": {"type": "array", "items": {"type": "string"}},
    "themes": {"type": "array", "items": {"type": "string"}},
    "time_hint": {"type": "string", "enum": ["historical", "modern", "future", "unspecified"]}
  },
  "required": ["entities", "events"],
  "additionalProperties": false
}`

const scenePromptTemplate = `Extract structured information from a half-remembered movie scene description and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- entities lists concrete objects, people and things in the scene.
- events lists actions that happen in the scene.
- environment lists locations and settings.
- themes lists genre, mood or topic words.
- Extract only what is explicitly stated or strongly implied. Do not hallucinate.
- Do NOT guess movie names.
- The query may be in any language; always answer with lowercase English terms.
- time_hint classifies the era of the scene; use "unspecified" when unclear.
- If nothing can be extracted, return empty arrays.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "a ship hits an iceberg and sinks, the man dies but the woman survives"
Output:
{
  "entities": ["ship", "iceberg", "man", "woman"],
  "events": ["collision", "sinking", "death", "survival"],
  "environment": ["ocean"],
  "themes": ["disaster", "romance"],
  "time_hint": "historical"
}

Example (Turkish input, English output):
Input: "gemi buzdağına çarpıyor ve batıyor"
Output:
{
  "entities": ["ship", "iceberg"],
  "events": ["collision", "sinking"],
  "environment": ["ocean"],
  "themes": ["disaster"],
  "time_hint": "unspecified"
}`

// buildScenePrompt creates the system prompt for scene extraction.
func buildScenePrompt() string {
	return fmt.Sprintf(scenePromptTemplate, sceneResponseSchema)
}

const rerankResponseSchema = `{
  "order": [1, 3, 2],
  "confidences": [95, 80, 60],
  "explanation": "Brief one-sentence explanation for the top match"
}`

const rerankPromptTemplate = `You are an expert at guessing movies from vague scene descriptions.

User scene (may be in any language, may contain noise): "%s"

Below is a list of candidate movies. Rank them from best match to worst match.

Candidates:
%s

Return ONLY valid JSON with this exact shape:
%s
- order is an array of 1-based indices into the candidates list (no duplicates)
- confidences is same length, each between 0 and 100 (higher = more confident)
- Do NOT add any extra keys or text.`

// buildRerankPrompt renders the shortlist into the re-ranking user prompt.
// Overviews are truncated so the prompt stays small.
func buildRerankPrompt(query string, candidates []ai.RerankCandidate) string {
	lines := make([]string, 0, len(candidates))
	for i, c := range candidates {
		year := "N/A"
		if c.Year > 0 {
			year = fmt.Sprintf("%d", c.Year)
		}
		overview := c.Overview
		if len(overview) > 220 {
			overview = overview[:220]
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s): %s", i+1, c.Title, year, overview))
	}
	return fmt.Sprintf(rerankPromptTemplate, query, strings.Join(lines, "\n"), rerankResponseSchema)
}
