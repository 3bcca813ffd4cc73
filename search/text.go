package search

import "strings"

// Stop words to filter out when matching query terms against movie text
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "bir": true, "ve": true, "bu": true, "için": true,
}

// tokenizeAndFilter splits text into words, lowercases, trims punctuation, and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		// Lowercase and trim punctuation
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))

		// Skip stop words and empty strings
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// wordOverlapFraction returns the fraction of query words (after filtering)
// that appear as substrings of the document.
func wordOverlapFraction(document, query string) float64 {
	queryWords := tokenizeAndFilter(query)
	if len(queryWords) == 0 {
		return 0
	}

	doc := strings.ToLower(document)
	matched := 0
	for _, word := range queryWords {
		if strings.Contains(doc, word) {
			matched++
		}
	}

	return float64(matched) / float64(len(queryWords))
}
