package search

import (
	"strings"

	"github.com/poiesic/scenematch/core"
)

// minTermLength filters out fragments too short to be useful search terms.
const minTermLength = 3

// termTranslation pairs a Turkish scene term with its English equivalent
// so terms feed the English-language movie catalog. The table is ordered
// so query scans produce deterministic output.
type termTranslation struct {
	from string
	to   string
}

var termTranslations = []termTranslation{
	{"gemi", "ship"},
	{"buzdağı", "iceberg"},
	{"buzdagi", "iceberg"},
	{"batıyor", "sinking"},
	{"batma", "sinking"},
	{"palyaço", "clown"},
	{"palyaco", "clown"},
	{"köpekbalığı", "shark"},
	{"kopekbaligi", "shark"},
	{"deniz", "ocean"},
	{"okyanus", "ocean"},
	{"aşk", "love"},
	{"ask", "love"},
	{"uzay", "space"},
	{"korku", "horror"},
	{"savaş", "war"},
	{"savas", "war"},
	{"çarpışma", "collision"},
	{"carpisma", "collision"},
}

// translateTerm maps a lowercased term to English when a translation is
// known, otherwise returns it unchanged.
func translateTerm(term string) string {
	for _, tr := range termTranslations {
		if tr.from == term {
			return tr.to
		}
	}
	return term
}

// Canonicalize turns a structured scene description back into a flat
// search string. Scene terms are lowercased, translated to English where
// a translation is known, and deduplicated in first-occurrence order.
// The original query is then scanned for translatable terms the analyzer
// missed, and finally appended verbatim so no signal is lost.
//
// A query that yields no terms canonicalizes to the trimmed original query.
func Canonicalize(scene core.SceneDescription, originalQuery string) string {
	originalQuery = strings.TrimSpace(originalQuery)

	seen := make(map[string]bool)
	terms := make([]string, 0, 8)
	add := func(term string) {
		if len([]rune(term)) < minTermLength || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, term := range scene.AllTerms() {
		add(translateTerm(strings.ToLower(strings.TrimSpace(term))))
	}

	// Inflected forms like "buzdağına" still contain the bare term, so
	// the query is matched by substring rather than exact token.
	lowered := strings.ToLower(originalQuery)
	for _, tr := range termTranslations {
		if strings.Contains(lowered, tr.from) {
			add(tr.to)
		}
	}

	if len(terms) == 0 {
		return originalQuery
	}

	canonical := strings.Join(terms, " ")
	if originalQuery == "" {
		return canonical
	}
	return canonical + " " + originalQuery
}
